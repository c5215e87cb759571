package assessment

import (
	"time"

	"github.com/trezcool/shule/core"
)

type Assessment struct {
	ID         int       `json:"id"`
	SubjectID  int       `json:"subject_id"`
	Name       string    `json:"name"`
	TotalMarks float64   `json:"total_marks"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"` // UTC
	UpdatedAt  time.Time `json:"updated_at"` // UTC
}

// NewAssessment contains information needed to create a new Assessment.
// A zero TotalMarks is legitimate (zero-weight assessments are not graded).
type NewAssessment struct {
	SubjectID  int       `json:"subject_id" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	TotalMarks float64   `json:"total_marks" validate:"gte=0"`
	Date       time.Time `json:"date" validate:"required"`
}

func (na *NewAssessment) Validate() error {
	na.Name = core.CleanString(na.Name)
	return core.Validate.Struct(na)
}
