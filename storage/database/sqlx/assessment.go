package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/assessment"
)

type assessmentRow struct {
	ID         int       `db:"id"`
	SubjectID  int       `db:"subject_id"`
	Name       string    `db:"name"`
	TotalMarks float64   `db:"total_marks"`
	Date       time.Time `db:"date"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r assessmentRow) unpack() assessment.Assessment {
	return assessment.Assessment{
		ID:         r.ID,
		SubjectID:  r.SubjectID,
		Name:       r.Name,
		TotalMarks: r.TotalMarks,
		Date:       r.Date,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func unpackAssessments(rows []assessmentRow) []assessment.Assessment {
	asmts := make([]assessment.Assessment, 0, len(rows))
	for _, r := range rows {
		asmts = append(asmts, r.unpack())
	}
	return asmts
}

type assessmentRepository struct {
	db *sqlx.DB
}

var _ assessment.Repository = (*assessmentRepository)(nil) // interface compliance check

func NewAssessmentRepository(db *sqlx.DB) assessment.Repository {
	return &assessmentRepository{db: db}
}

func (repo *assessmentRepository) CreateAssessment(ctx context.Context, asmt assessment.Assessment) (assessment.Assessment, error) {
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO assessment (subject_id, name, total_marks, date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		asmt.SubjectID, asmt.Name, asmt.TotalMarks, asmt.Date, asmt.CreatedAt, asmt.UpdatedAt,
	).Scan(&asmt.ID)
	if err != nil {
		return assessment.Assessment{}, errors.Wrap(err, "creating assessment")
	}
	return asmt, nil
}

func (repo *assessmentRepository) QueryAllAssessments(ctx context.Context) ([]assessment.Assessment, error) {
	var rows []assessmentRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM assessment ORDER BY date, id`); err != nil {
		return nil, errors.Wrap(err, "querying assessments")
	}
	return unpackAssessments(rows), nil
}

func (repo *assessmentRepository) GetAssessmentByID(ctx context.Context, id int) (assessment.Assessment, error) {
	var r assessmentRow
	if err := repo.db.GetContext(ctx, &r, `SELECT * FROM assessment WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return assessment.Assessment{}, assessment.ErrNotFound
		}
		return assessment.Assessment{}, errors.Wrap(err, "getting assessment")
	}
	return r.unpack(), nil
}

func (repo *assessmentRepository) FindAssessmentsBySubject(ctx context.Context, subjectID int) ([]assessment.Assessment, error) {
	var rows []assessmentRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM assessment WHERE subject_id = $1 ORDER BY date, id`, subjectID)
	if err != nil {
		return nil, errors.Wrap(err, "querying assessments by subject")
	}
	return unpackAssessments(rows), nil
}

func (repo *assessmentRepository) FindAssessmentsBySubjectFaculty(ctx context.Context, facultyID int) ([]assessment.Assessment, error) {
	var rows []assessmentRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT a.* FROM assessment a
		 JOIN subject s ON s.id = a.subject_id
		 WHERE s.faculty_id = $1 ORDER BY a.date, a.id`, facultyID)
	if err != nil {
		return nil, errors.Wrap(err, "querying assessments by faculty")
	}
	return unpackAssessments(rows), nil
}
