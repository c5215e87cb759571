package subject

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("subject not found")

type (
	Repository interface {
		CreateSubject(ctx context.Context, sub Subject) (Subject, error)
		QueryAllSubjects(ctx context.Context) ([]Subject, error)
		GetSubjectByID(ctx context.Context, id int) (Subject, error)
		FindSubjectsByFaculty(ctx context.Context, facultyID int) ([]Subject, error)
		FindSubjectsByStudent(ctx context.Context, studentID int) ([]Subject, error)
		UpdateSubject(ctx context.Context, sub Subject) (Subject, error)
		DeleteSubject(ctx context.Context, id int) error
	}

	Service interface {
		Create(ctx context.Context, ns NewSubject) (Subject, error)
		QueryAll(ctx context.Context) ([]Subject, error)
		GetByID(ctx context.Context, id int) (Subject, error)
		FindByFaculty(ctx context.Context, facultyID int) ([]Subject, error)
		FindByStudent(ctx context.Context, studentID int) ([]Subject, error)
		Update(ctx context.Context, id int, us UpdateSubject) (Subject, error)
		Delete(ctx context.Context, id int) error
		Enroll(ctx context.Context, id, studentID int) (Subject, error)
		Unenroll(ctx context.Context, id, studentID int) (Subject, error)

		// user.SubjectCleaner
		UnassignFaculty(ctx context.Context, facultyID int) error
		UnenrollStudent(ctx context.Context, studentID int) error
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Create(ctx context.Context, ns NewSubject) (Subject, error) {
	now := time.Now().UTC()
	sub := Subject{
		Name:      ns.Name,
		Code:      ns.Code,
		Year:      ns.Year,
		Semester:  ns.Semester,
		FacultyID: ns.FacultyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateSubject(ctx, sub)
}

func (svc *service) QueryAll(ctx context.Context) ([]Subject, error) {
	return svc.repo.QueryAllSubjects(ctx)
}

func (svc *service) GetByID(ctx context.Context, id int) (Subject, error) {
	return svc.repo.GetSubjectByID(ctx, id)
}

func (svc *service) FindByFaculty(ctx context.Context, facultyID int) ([]Subject, error) {
	return svc.repo.FindSubjectsByFaculty(ctx, facultyID)
}

func (svc *service) FindByStudent(ctx context.Context, studentID int) ([]Subject, error) {
	return svc.repo.FindSubjectsByStudent(ctx, studentID)
}

func (svc *service) Update(ctx context.Context, id int, us UpdateSubject) (Subject, error) {
	sub, err := svc.repo.GetSubjectByID(ctx, id)
	if err != nil {
		return Subject{}, err
	}
	sub.Name = us.Name
	sub.Code = us.Code
	sub.Year = us.Year
	sub.Semester = us.Semester
	sub.FacultyID = us.FacultyID
	sub.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateSubject(ctx, sub)
}

func (svc *service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteSubject(ctx, id)
}

func (svc *service) Enroll(ctx context.Context, id, studentID int) (Subject, error) {
	sub, err := svc.repo.GetSubjectByID(ctx, id)
	if err != nil {
		return Subject{}, err
	}
	if sub.IsEnrolled(studentID) {
		return sub, nil
	}
	sub.StudentIDs = append(sub.StudentIDs, studentID)
	sub.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateSubject(ctx, sub)
}

func (svc *service) Unenroll(ctx context.Context, id, studentID int) (Subject, error) {
	sub, err := svc.repo.GetSubjectByID(ctx, id)
	if err != nil {
		return Subject{}, err
	}
	if !sub.IsEnrolled(studentID) {
		return sub, nil
	}
	ids := make([]int, 0, len(sub.StudentIDs)-1)
	for _, sid := range sub.StudentIDs {
		if sid != studentID {
			ids = append(ids, sid)
		}
	}
	sub.StudentIDs = ids
	sub.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateSubject(ctx, sub)
}

func (svc *service) UnassignFaculty(ctx context.Context, facultyID int) error {
	subs, err := svc.repo.FindSubjectsByFaculty(ctx, facultyID)
	if err != nil {
		return err
	}
	for _, sub := range subs {
		sub.FacultyID = 0
		sub.UpdatedAt = time.Now().UTC()
		if _, err = svc.repo.UpdateSubject(ctx, sub); err != nil {
			return err
		}
	}
	return nil
}

func (svc *service) UnenrollStudent(ctx context.Context, studentID int) error {
	subs, err := svc.repo.FindSubjectsByStudent(ctx, studentID)
	if err != nil {
		return err
	}
	for _, sub := range subs {
		if _, err = svc.Unenroll(ctx, sub.ID, studentID); err != nil {
			return err
		}
	}
	return nil
}
