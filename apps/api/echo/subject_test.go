package echoapi_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/shule/core/subject"
	"github.com/trezcool/shule/core/user"
	testutil "github.com/trezcool/shule/tests"
)

func Test_subjectApi(t *testing.T) {
	app := setup(t)

	faculty := testutil.CreateUser(t, usrRepo, "Prof Mo", "mo", "mo@test.cd", user.RoleFaculty, "", "")
	student := testutil.CreateUser(t, usrRepo, "Jo Doe", "jodoe", "jo@test.cd", user.RoleStudent, "", "")

	var created subject.Subject

	t.Run("create", func(t *testing.T) {
		body := marchallObj(t, subject.NewSubject{
			Name:      "Mathematics",
			Code:      "MATH101",
			Year:      1,
			Semester:  1,
			FacultyID: faculty.ID,
		})
		req, rec := newRequest(http.MethodPost, "/v1/subjects", body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotZero(t, created.ID)
		assert.Equal(t, "math101", created.Code) // normalized
	})

	t.Run("create: missing code", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/subjects", []byte(`{"name": "Physics"}`))
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		var fldErrs map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fldErrs))
		assert.Contains(t, fldErrs, "code")
	})

	t.Run("enroll and list students", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/subjects/"+itoa(created.ID)+"/students/"+itoa(student.ID))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var sub subject.Subject
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
		assert.True(t, sub.IsEnrolled(student.ID))

		// enrolling twice is a no-op
		req, rec = newRequest(http.MethodPost, "/v1/subjects/"+itoa(created.ID)+"/students/"+itoa(student.ID))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
		assert.Len(t, sub.StudentIDs, 1)

		tt := httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, []int{student.ID})}
		req, rec = newRequest(http.MethodGet, "/v1/subjects/"+itoa(created.ID)+"/students")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("query by faculty and by student", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/subjects/faculty/"+itoa(faculty.ID))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var subs []subject.Subject
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
		assert.Len(t, subs, 1)

		req, rec = newRequest(http.MethodGet, "/v1/subjects/student/"+itoa(student.ID))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		subs = nil
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
		assert.Len(t, subs, 1)
	})

	t.Run("unenroll", func(t *testing.T) {
		req, rec := newRequest(http.MethodDelete, "/v1/subjects/"+itoa(created.ID)+"/students/"+itoa(student.ID))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var sub subject.Subject
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
		assert.False(t, sub.IsEnrolled(student.ID))
	})

	t.Run("update", func(t *testing.T) {
		body := marchallObj(t, subject.UpdateSubject{Name: "Advanced Mathematics", Semester: 2})
		req, rec := newRequest(http.MethodPut, "/v1/subjects/"+itoa(created.ID), body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var sub subject.Subject
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
		assert.Equal(t, "Advanced Mathematics", sub.Name)
		assert.Equal(t, 2, sub.Semester)
		assert.Equal(t, "math101", sub.Code) // unchanged
	})

	t.Run("delete", func(t *testing.T) {
		req, rec := newRequest(http.MethodDelete, "/v1/subjects/"+itoa(created.ID))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		tt := httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "subject not found"})}
		req, rec = newRequest(http.MethodGet, "/v1/subjects/"+itoa(created.ID))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}
