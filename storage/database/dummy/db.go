package dummydb

import (
	"sync"

	"github.com/trezcool/shule/core/assessment"
	"github.com/trezcool/shule/core/mark"
	"github.com/trezcool/shule/core/subject"
	"github.com/trezcool/shule/core/user"
)

type (
	DB struct {
		user       *userTable
		subject    *subjectTable
		assessment *assessmentTable
		mark       *markTable
	}

	userTable struct {
		sync.RWMutex
		table  map[int]*user.User
		nextID int
	}

	subjectTable struct {
		sync.RWMutex
		table  map[int]*subject.Subject
		nextID int
	}

	assessmentTable struct {
		sync.RWMutex
		table  map[int]*assessment.Assessment
		nextID int
	}

	markTable struct {
		sync.RWMutex
		table  map[int]*mark.Mark
		nextID int
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[int]*user.User)},
		subject:    &subjectTable{table: make(map[int]*subject.Subject)},
		assessment: &assessmentTable{table: make(map[int]*assessment.Assessment)},
		mark:       &markTable{table: make(map[int]*mark.Mark)},
	}
	return db, nil
}
