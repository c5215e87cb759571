package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/trezcool/shule/core/assessment"
	"github.com/trezcool/shule/core/mark"
	"github.com/trezcool/shule/core/subject"
	"github.com/trezcool/shule/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, uname, email, role string,
	parentEmail, parentPhone string,
) user.User {
	t.Helper()
	now := time.Now().UTC()
	usr := user.User{
		Name:        name,
		Username:    uname,
		Email:       email,
		Role:        role,
		ParentEmail: parentEmail,
		ParentPhone: parentPhone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := usr.SetPassword("Str0ngP4ss"); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateSubject(
	t *testing.T,
	repo subject.Repository,
	name, code string,
	facultyID int,
	studentIDs ...int,
) subject.Subject {
	t.Helper()
	now := time.Now().UTC()
	sub := subject.Subject{
		Name:       name,
		Code:       code,
		Year:       1,
		Semester:   1,
		FacultyID:  facultyID,
		StudentIDs: studentIDs,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	sub, err := repo.CreateSubject(context.Background(), sub)
	if err != nil {
		t.Fatalf("CreateSubject() failed: %v", err)
	}
	return sub
}

func CreateAssessment(
	t *testing.T,
	repo assessment.Repository,
	subjectID int,
	name string,
	totalMarks float64,
	date time.Time,
) assessment.Assessment {
	t.Helper()
	now := time.Now().UTC()
	asmt := assessment.Assessment{
		SubjectID:  subjectID,
		Name:       name,
		TotalMarks: totalMarks,
		Date:       date.UTC(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	asmt, err := repo.CreateAssessment(context.Background(), asmt)
	if err != nil {
		t.Fatalf("CreateAssessment() failed: %v", err)
	}
	return asmt
}

func CreateMark(
	t *testing.T,
	repo mark.Repository,
	studentID, subjectID, assessmentID int,
	obtained float64,
	grade, trend string,
) mark.Mark {
	t.Helper()
	now := time.Now().UTC()
	m := mark.Mark{
		StudentID:    studentID,
		SubjectID:    subjectID,
		AssessmentID: assessmentID,
		Obtained:     obtained,
		Grade:        grade,
		Trend:        trend,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m, err := repo.CreateMark(context.Background(), m)
	if err != nil {
		t.Fatalf("CreateMark() failed: %v", err)
	}
	return m
}
