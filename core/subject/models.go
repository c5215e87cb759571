package subject

import (
	"time"

	"github.com/trezcool/shule/core"
)

type Subject struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	Year       int       `json:"year"`
	Semester   int       `json:"semester"`
	FacultyID  int       `json:"faculty_id"` // 0: unassigned
	StudentIDs []int     `json:"student_ids"`
	CreatedAt  time.Time `json:"created_at"` // UTC
	UpdatedAt  time.Time `json:"updated_at"` // UTC
}

func (s *Subject) IsEnrolled(studentID int) bool {
	for _, id := range s.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// NewSubject contains information needed to create a new Subject.
type NewSubject struct {
	Name      string `json:"name" validate:"required"`
	Code      string `json:"code" validate:"required,alphanum_"`
	Year      int    `json:"year" validate:"omitempty,min=1"`
	Semester  int    `json:"semester" validate:"omitempty,min=1,max=2"`
	FacultyID int    `json:"faculty_id"`
}

func (ns *NewSubject) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Code = core.CleanString(ns.Code, true /* lower */)
	return core.Validate.Struct(ns)
}

// UpdateSubject defines what information may be provided to modify an existing Subject.
type UpdateSubject struct {
	Name      string `json:"name"`
	Code      string `json:"code" validate:"omitempty,alphanum_"`
	Year      int    `json:"year" validate:"omitempty,min=1"`
	Semester  int    `json:"semester" validate:"omitempty,min=1,max=2"`
	FacultyID int    `json:"faculty_id"` // not carried over: 0 (or omitted) unassigns the faculty
}

func (us *UpdateSubject) Validate(orig Subject) error {
	if name := core.CleanString(us.Name); name != "" {
		us.Name = name
	} else {
		us.Name = orig.Name
	}

	if code := core.CleanString(us.Code, true /* lower */); code != "" {
		us.Code = code
	} else {
		us.Code = orig.Code
	}

	if us.Year == 0 {
		us.Year = orig.Year
	}
	if us.Semester == 0 {
		us.Semester = orig.Semester
	}
	return core.Validate.Struct(us)
}
