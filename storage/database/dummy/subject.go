package dummydb

import (
	"context"

	"github.com/trezcool/shule/core/subject"
)

type subjectRepository struct {
	db *subjectTable
}

var _ subject.Repository = (*subjectRepository)(nil) // interface compliance check

func NewSubjectRepository(db *DB) subject.Repository {
	return &subjectRepository{db: db.subject}
}

func (repo *subjectRepository) query() []subject.Subject {
	subs := make([]subject.Subject, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		subs = append(subs, copySubject(*s))
	}
	return subs
}

// copySubject detaches the StudentIDs slice so callers cannot mutate the table.
func copySubject(s subject.Subject) subject.Subject {
	ids := make([]int, len(s.StudentIDs))
	copy(ids, s.StudentIDs)
	s.StudentIDs = ids
	return s
}

func (repo *subjectRepository) CreateSubject(_ context.Context, sub subject.Subject) (subject.Subject, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.nextID++
	sub.ID = repo.db.nextID
	repo.db.table[sub.ID] = &sub
	return copySubject(sub), nil
}

func (repo *subjectRepository) QueryAllSubjects(_ context.Context) ([]subject.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *subjectRepository) GetSubjectByID(_ context.Context, id int) (subject.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if sub, ok := repo.db.table[id]; ok {
		return copySubject(*sub), nil
	}
	return subject.Subject{}, subject.ErrNotFound
}

func (repo *subjectRepository) FindSubjectsByFaculty(_ context.Context, facultyID int) ([]subject.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var subs []subject.Subject
	for _, sub := range repo.query() {
		if sub.FacultyID == facultyID {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

func (repo *subjectRepository) FindSubjectsByStudent(_ context.Context, studentID int) ([]subject.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var subs []subject.Subject
	for _, sub := range repo.query() {
		if sub.IsEnrolled(studentID) {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

func (repo *subjectRepository) UpdateSubject(_ context.Context, sub subject.Subject) (subject.Subject, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[sub.ID]; !ok {
		return subject.Subject{}, subject.ErrNotFound
	}
	sub = copySubject(sub)
	repo.db.table[sub.ID] = &sub
	return copySubject(sub), nil
}

func (repo *subjectRepository) DeleteSubject(_ context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	delete(repo.db.table, id)
	return nil
}
