package dummydb

import (
	"context"

	"github.com/trezcool/shule/core/mark"
)

type markRepository struct {
	db     *markTable
	subjDB *subjectTable
}

var _ mark.Repository = (*markRepository)(nil) // interface compliance check

func NewMarkRepository(db *DB) mark.Repository {
	return &markRepository{db: db.mark, subjDB: db.subject}
}

func (repo *markRepository) query() []mark.Mark {
	marks := make([]mark.Mark, 0, len(repo.db.table))
	for _, m := range repo.db.table {
		marks = append(marks, *m)
	}
	return marks
}

func (repo *markRepository) CreateMark(_ context.Context, m mark.Mark) (mark.Mark, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.nextID++
	m.ID = repo.db.nextID
	repo.db.table[m.ID] = &m
	return m, nil
}

func (repo *markRepository) UpdateMark(_ context.Context, m mark.Mark) (mark.Mark, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.table[m.ID]
	if !ok {
		return mark.Mark{}, mark.ErrNotFound
	}
	m.CreatedAt = orig.CreatedAt
	repo.db.table[m.ID] = &m
	return m, nil
}

func (repo *markRepository) GetMarkByID(_ context.Context, id int) (mark.Mark, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if m, ok := repo.db.table[id]; ok {
		return *m, nil
	}
	return mark.Mark{}, mark.ErrNotFound
}

func (repo *markRepository) FindMarksByStudent(_ context.Context, studentID int) ([]mark.Mark, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var marks []mark.Mark
	for _, m := range repo.query() {
		if m.StudentID == studentID {
			marks = append(marks, m)
		}
	}
	return marks, nil
}

func (repo *markRepository) FindMarksByStudentAndSubject(_ context.Context, studentID, subjectID int) ([]mark.Mark, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var marks []mark.Mark
	for _, m := range repo.query() {
		if m.StudentID == studentID && m.SubjectID == subjectID {
			marks = append(marks, m)
		}
	}
	return marks, nil
}

func (repo *markRepository) FindMarksBySubjectFaculty(_ context.Context, facultyID int) ([]mark.Mark, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	repo.subjDB.RLock()
	defer repo.subjDB.RUnlock()

	taught := make(map[int]bool)
	for id, sub := range repo.subjDB.table {
		if sub.FacultyID == facultyID {
			taught[id] = true
		}
	}

	var marks []mark.Mark
	for _, m := range repo.query() {
		if taught[m.SubjectID] {
			marks = append(marks, m)
		}
	}
	return marks, nil
}

func (repo *markRepository) DeleteMarksByStudent(_ context.Context, studentID int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for id, m := range repo.db.table {
		if m.StudentID == studentID {
			delete(repo.db.table, id)
		}
	}
	return nil
}
