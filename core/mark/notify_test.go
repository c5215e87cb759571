package mark

import (
	"strings"
	"testing"

	"github.com/trezcool/shule/core/assessment"
	"github.com/trezcool/shule/core/subject"
	"github.com/trezcool/shule/core/user"
)

func TestComposeNotification(t *testing.T) {
	subj := subject.Subject{ID: 1, Name: "Mathematics"}
	asmt := assessment.Assessment{ID: 1, SubjectID: 1, Name: "Algebra Quiz", TotalMarks: 50}
	m := Mark{ID: 1, StudentID: 1, SubjectID: 1, AssessmentID: 1, Obtained: 42.5, Grade: GradeA, Trend: TrendImproved}

	t.Run("subject line", func(t *testing.T) {
		student := user.User{Name: "Jo Doe", Email: "jo@test.cd"}
		n := composeNotification(m, student, subj, asmt)
		if want := "Performance Update: Mathematics - Algebra Quiz"; n.subject != want {
			t.Errorf("subject = %q; want %q", n.subject, want)
		}
	})

	t.Run("student body carries score, grade and trend", func(t *testing.T) {
		student := user.User{Name: "Jo Doe", Email: "jo@test.cd"}
		n := composeNotification(m, student, subj, asmt)
		for _, want := range []string{
			"Dear Jo Doe,",
			"scored 42.5 / 50.0 in Algebra Quiz (Mathematics)",
			"Grade: A",
			"Performance Trend: Improved",
			"Great job! Your performance has improved compared to the last assessment. Keep it up!",
			"Shule Performance Tracker",
		} {
			if !strings.Contains(n.studentBody, want) {
				t.Errorf("studentBody missing %q:\n%s", want, n.studentBody)
			}
		}
	})

	t.Run("trend-keyed closing lines", func(t *testing.T) {
		student := user.User{Name: "Jo Doe", Email: "jo@test.cd"}
		tests := []struct {
			trend string
			want  string
		}{
			{TrendImproved, "Great job! Your performance has improved compared to the last assessment. Keep it up!"},
			{TrendDeclined, "Your performance has slightly declined. We encourage you to focus more on this subject."},
			{TrendSame, "Your performance is consistent. Try to push for an improvement in the next assessment!"},
			{TrendNew, "Your performance is consistent. Try to push for an improvement in the next assessment!"},
		}
		for _, tt := range tests {
			mm := m
			mm.Trend = tt.trend
			n := composeNotification(mm, student, subj, asmt)
			if !strings.Contains(n.studentBody, tt.want) {
				t.Errorf("trend %s: studentBody missing %q", tt.trend, tt.want)
			}
		}
	})

	t.Run("parent email present", func(t *testing.T) {
		student := user.User{Name: "Jo Doe", Email: "jo@test.cd", ParentEmail: "parent@test.cd"}
		n := composeNotification(m, student, subj, asmt)
		if n.parentBody == "" {
			t.Fatal("parentBody empty; want parent message")
		}
		for _, want := range []string{
			"Dear Parent,",
			"your child Jo Doe's performance",
			"Assessment: Algebra Quiz (Mathematics)",
			"Score: 42.5 / 50.0",
			"Your child's performance has improved. Keep encouraging them!",
		} {
			if !strings.Contains(n.parentBody, want) {
				t.Errorf("parentBody missing %q:\n%s", want, n.parentBody)
			}
		}
	})

	t.Run("no parent email, no parent message", func(t *testing.T) {
		student := user.User{Name: "Jo Doe", Email: "jo@test.cd"}
		n := composeNotification(m, student, subj, asmt)
		if n.parentBody != "" {
			t.Errorf("parentBody = %q; want empty", n.parentBody)
		}
	})

	t.Run("parent email equal to student email is skipped", func(t *testing.T) {
		student := user.User{Name: "Jo Doe", Email: "jo@test.cd", ParentEmail: "JO@TEST.CD"}
		n := composeNotification(m, student, subj, asmt)
		if n.parentBody != "" {
			t.Errorf("parentBody = %q; want empty", n.parentBody)
		}
	})

	t.Run("parent steady case has no closing line", func(t *testing.T) {
		student := user.User{Name: "Jo Doe", Email: "jo@test.cd", ParentEmail: "parent@test.cd"}
		mm := m
		mm.Trend = TrendSame
		n := composeNotification(mm, student, subj, asmt)
		if strings.Contains(n.parentBody, "improved") || strings.Contains(n.parentBody, "decline") {
			t.Errorf("parentBody carries a trend line for steady trend:\n%s", n.parentBody)
		}
	})

	t.Run("sms only when parent phone present", func(t *testing.T) {
		student := user.User{Name: "Jo Doe", Email: "jo@test.cd"}
		if n := composeNotification(m, student, subj, asmt); n.smsText != "" {
			t.Errorf("smsText = %q; want empty", n.smsText)
		}

		student.ParentPhone = "  "
		if n := composeNotification(m, student, subj, asmt); n.smsText != "" {
			t.Errorf("smsText = %q; want empty for blank phone", n.smsText)
		}

		student.ParentPhone = "+243810000000"
		n := composeNotification(m, student, subj, asmt)
		if want := "Tracker Alert: Jo Doe scored 42.5/50.0 in Mathematics. Grade: A. Trend: Improved."; n.smsText != want {
			t.Errorf("smsText = %q; want %q", n.smsText, want)
		}
	})
}
