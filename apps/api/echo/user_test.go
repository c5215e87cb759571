package echoapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/shule/core/user"
	testutil "github.com/trezcool/shule/tests"
)

func Test_userApi_crud(t *testing.T) {
	app := setup(t)
	ctx := context.Background()

	var created user.User

	t.Run("create", func(t *testing.T) {
		body := marchallObj(t, user.NewUser{
			Name:        "Jo Doe",
			Username:    "jodoe",
			Email:       "jo@test.cd",
			Password:    "Str0ngP4ss",
			Role:        user.RoleStudent,
			ParentEmail: "parent@test.cd",
		})
		req, rec := newRequest(http.MethodPost, "/v1/users", body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotZero(t, created.ID)
		assert.Equal(t, "jodoe", created.Username)
	})

	t.Run("create: duplicate username", func(t *testing.T) {
		body := marchallObj(t, user.NewUser{
			Name:     "Other Jo",
			Username: "jodoe",
			Email:    "other@test.cd",
			Password: "Str0ngP4ss",
			Role:     user.RoleStudent,
		})
		req, rec := newRequest(http.MethodPost, "/v1/users", body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		var fldErrs map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fldErrs))
		assert.Contains(t, fldErrs, "username")
	})

	t.Run("create: missing fields", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/users", []byte(`{"name": "No Body"}`))
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		var fldErrs map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fldErrs))
		assert.Contains(t, fldErrs, "username")
		assert.Contains(t, fldErrs, "password")
		assert.Contains(t, fldErrs, "role")
	})

	t.Run("retrieve", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/users/"+itoa(created.ID))
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var usr user.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usr))
		assert.Equal(t, created.ID, usr.ID)
	})

	t.Run("retrieve: not found", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "user not found"})}
		req, rec := newRequest(http.MethodGet, "/v1/users/999")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("update", func(t *testing.T) {
		body := marchallObj(t, user.UpdateUser{Name: "Jo B. Doe", Department: "Science"})
		req, rec := newRequest(http.MethodPut, "/v1/users/"+itoa(created.ID), body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var usr user.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usr))
		assert.Equal(t, "Jo B. Doe", usr.Name)
		assert.Equal(t, "jodoe", usr.Username) // unchanged
	})

	t.Run("query all and by role", func(t *testing.T) {
		testutil.CreateUser(t, usrRepo, "Prof Mo", "mo", "mo@test.cd", user.RoleFaculty, "", "")

		req, rec := newRequest(http.MethodGet, "/v1/users")
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var users []user.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
		assert.Len(t, users, 2)

		req, rec = newRequest(http.MethodGet, "/v1/users/role/"+user.RoleFaculty)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		users = nil
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
		require.Len(t, users, 1)
		assert.Equal(t, "mo", users[0].Username)
	})

	t.Run("delete cascades", func(t *testing.T) {
		student, err := usrRepo.GetUserByID(ctx, created.ID)
		require.NoError(t, err)
		faculty := testutil.CreateUser(t, usrRepo, "Prof Li", "li", "li@test.cd", user.RoleFaculty, "", "")
		subj := testutil.CreateSubject(t, subjRepo, "Mathematics", "math101", faculty.ID, student.ID)
		asmt := testutil.CreateAssessment(t, asmtRepo, subj.ID, "Quiz 1", 50, time.Now().UTC())
		testutil.CreateMark(t, markRepo, student.ID, subj.ID, asmt.ID, 30, "B", "New")

		req, rec := newRequest(http.MethodDelete, "/v1/users/"+itoa(student.ID))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		_, err = usrRepo.GetUserByID(ctx, student.ID)
		assert.Equal(t, user.ErrNotFound, err)

		refreshed, err := subjRepo.GetSubjectByID(ctx, subj.ID)
		require.NoError(t, err)
		assert.False(t, refreshed.IsEnrolled(student.ID))

		marks, err := markRepo.FindMarksByStudent(ctx, student.ID)
		require.NoError(t, err)
		assert.Empty(t, marks)
	})

	t.Run("delete: not found", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "user not found"})}
		req, rec := newRequest(http.MethodDelete, "/v1/users/999")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}
