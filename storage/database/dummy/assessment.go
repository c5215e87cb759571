package dummydb

import (
	"context"

	"github.com/trezcool/shule/core/assessment"
)

type assessmentRepository struct {
	db     *assessmentTable
	subjDB *subjectTable
}

var _ assessment.Repository = (*assessmentRepository)(nil) // interface compliance check

func NewAssessmentRepository(db *DB) assessment.Repository {
	return &assessmentRepository{db: db.assessment, subjDB: db.subject}
}

func (repo *assessmentRepository) query() []assessment.Assessment {
	asmts := make([]assessment.Assessment, 0, len(repo.db.table))
	for _, a := range repo.db.table {
		asmts = append(asmts, *a)
	}
	return asmts
}

func (repo *assessmentRepository) CreateAssessment(_ context.Context, asmt assessment.Assessment) (assessment.Assessment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.nextID++
	asmt.ID = repo.db.nextID
	repo.db.table[asmt.ID] = &asmt
	return asmt, nil
}

func (repo *assessmentRepository) QueryAllAssessments(_ context.Context) ([]assessment.Assessment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *assessmentRepository) GetAssessmentByID(_ context.Context, id int) (assessment.Assessment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if asmt, ok := repo.db.table[id]; ok {
		return *asmt, nil
	}
	return assessment.Assessment{}, assessment.ErrNotFound
}

func (repo *assessmentRepository) FindAssessmentsBySubject(_ context.Context, subjectID int) ([]assessment.Assessment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var asmts []assessment.Assessment
	for _, asmt := range repo.query() {
		if asmt.SubjectID == subjectID {
			asmts = append(asmts, asmt)
		}
	}
	return asmts, nil
}

func (repo *assessmentRepository) FindAssessmentsBySubjectFaculty(_ context.Context, facultyID int) ([]assessment.Assessment, error) {
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

	var asmts []assessment.Assessment
	for _, asmt := range repo.query() {
		if taught[asmt.SubjectID] {
			asmts = append(asmts, asmt)
		}
	}
	return asmts, nil
}
