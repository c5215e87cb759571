package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/mark"
)

type markRow struct {
	ID           int       `db:"id"`
	StudentID    int       `db:"student_id"`
	SubjectID    int       `db:"subject_id"`
	AssessmentID int       `db:"assessment_id"`
	Obtained     float64   `db:"obtained"`
	Grade        string    `db:"grade"`
	Trend        string    `db:"trend"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r markRow) unpack() mark.Mark {
	return mark.Mark{
		ID:           r.ID,
		StudentID:    r.StudentID,
		SubjectID:    r.SubjectID,
		AssessmentID: r.AssessmentID,
		Obtained:     r.Obtained,
		Grade:        r.Grade,
		Trend:        r.Trend,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func unpackMarks(rows []markRow) []mark.Mark {
	marks := make([]mark.Mark, 0, len(rows))
	for _, r := range rows {
		marks = append(marks, r.unpack())
	}
	return marks
}

type markRepository struct {
	db *sqlx.DB
}

var _ mark.Repository = (*markRepository)(nil) // interface compliance check

func NewMarkRepository(db *sqlx.DB) mark.Repository {
	return &markRepository{db: db}
}

func (repo *markRepository) CreateMark(ctx context.Context, m mark.Mark) (mark.Mark, error) {
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO mark (student_id, subject_id, assessment_id, obtained, grade, trend, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		m.StudentID, m.SubjectID, m.AssessmentID, m.Obtained, m.Grade, m.Trend, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return mark.Mark{}, errors.Wrap(err, "creating mark")
	}
	return m, nil
}

func (repo *markRepository) UpdateMark(ctx context.Context, m mark.Mark) (mark.Mark, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE mark
		 SET student_id = $1, subject_id = $2, assessment_id = $3, obtained = $4, grade = $5, trend = $6, updated_at = $7
		 WHERE id = $8`,
		m.StudentID, m.SubjectID, m.AssessmentID, m.Obtained, m.Grade, m.Trend, m.UpdatedAt, m.ID,
	)
	if err != nil {
		return mark.Mark{}, errors.Wrap(err, "updating mark")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return mark.Mark{}, mark.ErrNotFound
	}
	return repo.GetMarkByID(ctx, m.ID)
}

func (repo *markRepository) GetMarkByID(ctx context.Context, id int) (mark.Mark, error) {
	var r markRow
	if err := repo.db.GetContext(ctx, &r, `SELECT * FROM mark WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mark.Mark{}, mark.ErrNotFound
		}
		return mark.Mark{}, errors.Wrap(err, "getting mark")
	}
	return r.unpack(), nil
}

func (repo *markRepository) FindMarksByStudent(ctx context.Context, studentID int) ([]mark.Mark, error) {
	var rows []markRow
	err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM mark WHERE student_id = $1 ORDER BY id`, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "querying marks by student")
	}
	return unpackMarks(rows), nil
}

func (repo *markRepository) FindMarksByStudentAndSubject(ctx context.Context, studentID, subjectID int) ([]mark.Mark, error) {
	var rows []markRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM mark WHERE student_id = $1 AND subject_id = $2 ORDER BY id`, studentID, subjectID)
	if err != nil {
		return nil, errors.Wrap(err, "querying marks by student and subject")
	}
	return unpackMarks(rows), nil
}

func (repo *markRepository) FindMarksBySubjectFaculty(ctx context.Context, facultyID int) ([]mark.Mark, error) {
	var rows []markRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT m.* FROM mark m
		 JOIN subject s ON s.id = m.subject_id
		 WHERE s.faculty_id = $1 ORDER BY m.id`, facultyID)
	if err != nil {
		return nil, errors.Wrap(err, "querying marks by faculty")
	}
	return unpackMarks(rows), nil
}

func (repo *markRepository) DeleteMarksByStudent(ctx context.Context, studentID int) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM mark WHERE student_id = $1`, studentID); err != nil {
		return errors.Wrap(err, "deleting marks by student")
	}
	return nil
}
