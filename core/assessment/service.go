package assessment

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("assessment not found")

type (
	Repository interface {
		CreateAssessment(ctx context.Context, asmt Assessment) (Assessment, error)
		QueryAllAssessments(ctx context.Context) ([]Assessment, error)
		GetAssessmentByID(ctx context.Context, id int) (Assessment, error)
		FindAssessmentsBySubject(ctx context.Context, subjectID int) ([]Assessment, error)
		FindAssessmentsBySubjectFaculty(ctx context.Context, facultyID int) ([]Assessment, error)
	}

	Service interface {
		Create(ctx context.Context, na NewAssessment) (Assessment, error)
		QueryAll(ctx context.Context) ([]Assessment, error)
		GetByID(ctx context.Context, id int) (Assessment, error)
		FindBySubject(ctx context.Context, subjectID int) ([]Assessment, error)
		FindByFaculty(ctx context.Context, facultyID int) ([]Assessment, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Create(ctx context.Context, na NewAssessment) (Assessment, error) {
	now := time.Now().UTC()
	asmt := Assessment{
		SubjectID:  na.SubjectID,
		Name:       na.Name,
		TotalMarks: na.TotalMarks,
		Date:       na.Date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return svc.repo.CreateAssessment(ctx, asmt)
}

func (svc *service) QueryAll(ctx context.Context) ([]Assessment, error) {
	return svc.repo.QueryAllAssessments(ctx)
}

func (svc *service) GetByID(ctx context.Context, id int) (Assessment, error) {
	return svc.repo.GetAssessmentByID(ctx, id)
}

func (svc *service) FindBySubject(ctx context.Context, subjectID int) ([]Assessment, error) {
	return svc.repo.FindAssessmentsBySubject(ctx, subjectID)
}

func (svc *service) FindByFaculty(ctx context.Context, facultyID int) ([]Assessment, error) {
	return svc.repo.FindAssessmentsBySubjectFaculty(ctx, facultyID)
}
