package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/subject"
)

type subjectRow struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Code      string    `db:"code"`
	Year      int       `db:"year"`
	Semester  int       `db:"semester"`
	FacultyID int       `db:"faculty_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r subjectRow) unpack() subject.Subject {
	return subject.Subject{
		ID:        r.ID,
		Name:      r.Name,
		Code:      r.Code,
		Year:      r.Year,
		Semester:  r.Semester,
		FacultyID: r.FacultyID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type subjectRepository struct {
	db *sqlx.DB
}

var _ subject.Repository = (*subjectRepository)(nil) // interface compliance check

func NewSubjectRepository(db *sqlx.DB) subject.Repository {
	return &subjectRepository{db: db}
}

func (repo *subjectRepository) loadStudentIDs(ctx context.Context, sub *subject.Subject) error {
	var ids []int
	err := repo.db.SelectContext(ctx, &ids,
		`SELECT student_id FROM subject_student WHERE subject_id = $1 ORDER BY student_id`, sub.ID)
	if err != nil {
		return errors.Wrap(err, "loading subject students")
	}
	sub.StudentIDs = ids
	return nil
}

func (repo *subjectRepository) saveStudentIDs(ctx context.Context, tx *sqlx.Tx, sub subject.Subject) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM subject_student WHERE subject_id = $1`, sub.ID); err != nil {
		return errors.Wrap(err, "clearing subject students")
	}
	for _, sid := range sub.StudentIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO subject_student (subject_id, student_id) VALUES ($1, $2)`, sub.ID, sid)
		if err != nil {
			return errors.Wrap(err, "saving subject students")
		}
	}
	return nil
}

func (repo *subjectRepository) unpackAll(ctx context.Context, rows []subjectRow) ([]subject.Subject, error) {
	subs := make([]subject.Subject, 0, len(rows))
	for _, r := range rows {
		sub := r.unpack()
		if err := repo.loadStudentIDs(ctx, &sub); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (repo *subjectRepository) CreateSubject(ctx context.Context, sub subject.Subject) (subject.Subject, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return subject.Subject{}, errors.Wrap(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO subject (name, code, year, semester, faculty_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		sub.Name, sub.Code, sub.Year, sub.Semester, sub.FacultyID, sub.CreatedAt, sub.UpdatedAt,
	).Scan(&sub.ID)
	if err != nil {
		return subject.Subject{}, errors.Wrap(err, "creating subject")
	}
	if err = repo.saveStudentIDs(ctx, tx, sub); err != nil {
		return subject.Subject{}, err
	}
	if err = tx.Commit(); err != nil {
		return subject.Subject{}, errors.Wrap(err, "committing subject creation")
	}
	return sub, nil
}

func (repo *subjectRepository) QueryAllSubjects(ctx context.Context) ([]subject.Subject, error) {
	var rows []subjectRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM subject ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying subjects")
	}
	return repo.unpackAll(ctx, rows)
}

func (repo *subjectRepository) GetSubjectByID(ctx context.Context, id int) (subject.Subject, error) {
	var r subjectRow
	if err := repo.db.GetContext(ctx, &r, `SELECT * FROM subject WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return subject.Subject{}, subject.ErrNotFound
		}
		return subject.Subject{}, errors.Wrap(err, "getting subject")
	}
	sub := r.unpack()
	if err := repo.loadStudentIDs(ctx, &sub); err != nil {
		return subject.Subject{}, err
	}
	return sub, nil
}

func (repo *subjectRepository) FindSubjectsByFaculty(ctx context.Context, facultyID int) ([]subject.Subject, error) {
	var rows []subjectRow
	err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM subject WHERE faculty_id = $1 ORDER BY id`, facultyID)
	if err != nil {
		return nil, errors.Wrap(err, "querying subjects by faculty")
	}
	return repo.unpackAll(ctx, rows)
}

func (repo *subjectRepository) FindSubjectsByStudent(ctx context.Context, studentID int) ([]subject.Subject, error) {
	var rows []subjectRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT s.* FROM subject s
		 JOIN subject_student ss ON ss.subject_id = s.id
		 WHERE ss.student_id = $1 ORDER BY s.id`, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "querying subjects by student")
	}
	return repo.unpackAll(ctx, rows)
}

func (repo *subjectRepository) UpdateSubject(ctx context.Context, sub subject.Subject) (subject.Subject, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return subject.Subject{}, errors.Wrap(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE subject SET name = $1, code = $2, year = $3, semester = $4, faculty_id = $5, updated_at = $6 WHERE id = $7`,
		sub.Name, sub.Code, sub.Year, sub.Semester, sub.FacultyID, sub.UpdatedAt, sub.ID,
	)
	if err != nil {
		return subject.Subject{}, errors.Wrap(err, "updating subject")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return subject.Subject{}, subject.ErrNotFound
	}
	if err = repo.saveStudentIDs(ctx, tx, sub); err != nil {
		return subject.Subject{}, err
	}
	if err = tx.Commit(); err != nil {
		return subject.Subject{}, errors.Wrap(err, "committing subject update")
	}
	return repo.GetSubjectByID(ctx, sub.ID)
}

func (repo *subjectRepository) DeleteSubject(ctx context.Context, id int) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM subject WHERE id = $1`, id); err != nil {
		return errors.Wrap(err, "deleting subject")
	}
	return nil
}
