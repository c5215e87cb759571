package echoapi_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/shule/core/mark"
	"github.com/trezcool/shule/core/user"
	emailsvc "github.com/trezcool/shule/services/email"
	smssvc "github.com/trezcool/shule/services/sms"
	testutil "github.com/trezcool/shule/tests"
)

func Test_markApi(t *testing.T) {
	app := setup(t)

	student := testutil.CreateUser(t, usrRepo, "Jo Doe", "jodoe", "jo@test.cd", user.RoleStudent, "parent@test.cd", "+243810000000")
	faculty := testutil.CreateUser(t, usrRepo, "Prof Mo", "mo", "mo@test.cd", user.RoleFaculty, "", "")
	subj := testutil.CreateSubject(t, subjRepo, "Mathematics", "math101", faculty.ID, student.ID)
	asmt := testutil.CreateAssessment(t, asmtRepo, subj.ID, "Algebra Quiz", 50, time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC))

	t.Run("record evaluates, persists and notifies", func(t *testing.T) {
		body := marchallObj(t, mark.NewMark{
			StudentID:    student.ID,
			SubjectID:    subj.ID,
			AssessmentID: asmt.ID,
			Obtained:     42.5,
		})
		req, rec := newRequest(http.MethodPost, "/v1/marks", body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var m mark.Mark
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
		assert.Equal(t, mark.GradeA, m.Grade)
		assert.Equal(t, mark.TrendNew, m.Trend)
		assert.NotZero(t, m.ID)

		msgs := emailsvc.GetSentMessages()
		assert.Len(t, msgs, 2) // student + parent
		texts := smssvc.GetSentTexts()
		assert.Len(t, texts, 1)
	})

	t.Run("unknown reference maps to 404", func(t *testing.T) {
		tests := []httpTest{
			{
				name:     "unknown assessment",
				body:     marchallObj(t, mark.NewMark{StudentID: student.ID, SubjectID: subj.ID, AssessmentID: 999, Obtained: 10}),
				wantCode: http.StatusNotFound,
				wantData: marchallObj(t, httpErr{Error: "assessment 999 not found"}),
			},
			{
				name:     "unknown student",
				body:     marchallObj(t, mark.NewMark{StudentID: 999, SubjectID: subj.ID, AssessmentID: asmt.ID, Obtained: 10}),
				wantCode: http.StatusNotFound,
				wantData: marchallObj(t, httpErr{Error: "student 999 not found"}),
			},
			{
				name:     "unknown subject",
				body:     marchallObj(t, mark.NewMark{StudentID: student.ID, SubjectID: 999, AssessmentID: asmt.ID, Obtained: 10}),
				wantCode: http.StatusNotFound,
				wantData: marchallObj(t, httpErr{Error: "subject 999 not found"}),
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req, rec := newRequest(http.MethodPost, "/v1/marks", tt.body)
				app.ServeHTTP(rec, req)
				checkCodeAndData(t, tt, rec)
			})
		}
	})

	t.Run("invalid payload maps to 400 field map", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/marks", []byte(`{"obtained": 10}`))
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

		var fldErrs map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fldErrs))
		assert.Contains(t, fldErrs, "student_id")
		assert.Contains(t, fldErrs, "subject_id")
		assert.Contains(t, fldErrs, "assessment_id")
	})

	t.Run("query by student", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/marks/student/"+itoa(student.ID))
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var marks []mark.Mark
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &marks))
		assert.Len(t, marks, 1)
	})

	t.Run("query by faculty", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/marks/faculty/"+itoa(faculty.ID))
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var marks []mark.Mark
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &marks))
		assert.Len(t, marks, 1)
	})

	t.Run("query by unknown student is empty", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: []byte(`[]`)}
		req, rec := newRequest(http.MethodGet, "/v1/marks/student/999")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}
