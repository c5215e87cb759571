package mark

import (
	"fmt"
	"strings"

	"github.com/trezcool/shule/core/assessment"
	"github.com/trezcool/shule/core/subject"
	"github.com/trezcool/shule/core/user"
)

// notification holds the channel-specific bodies composed for an evaluated
// mark. Empty parentBody / smsText means the channel is skipped.
type notification struct {
	subject     string
	studentBody string
	parentBody  string
	smsText     string
}

// composeNotification builds the performance update messages for a freshly
// evaluated mark. Pure: presence of the optional bodies encodes the
// student/parent contact rules.
func composeNotification(m Mark, student user.User, subj subject.Subject, asmt assessment.Assessment) notification {
	n := notification{
		subject: fmt.Sprintf("Performance Update: %s - %s", subj.Name, asmt.Name),
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		"Dear %s,\n\nYou have scored %.1f / %.1f in %s (%s).\nGrade: %s\nPerformance Trend: %s\n\n",
		student.Name, m.Obtained, asmt.TotalMarks, asmt.Name, subj.Name, m.Grade, m.Trend,
	)
	switch m.Trend {
	case TrendImproved:
		sb.WriteString("Great job! Your performance has improved compared to the last assessment. Keep it up!\n")
	case TrendDeclined:
		sb.WriteString("Your performance has slightly declined. We encourage you to focus more on this subject.\n")
	default:
		sb.WriteString("Your performance is consistent. Try to push for an improvement in the next assessment!\n")
	}
	sb.WriteString("\nBest Regards,\nShule Performance Tracker")
	n.studentBody = sb.String()

	// parent email only when present and not the student's own address
	if student.ParentEmail != "" && !strings.EqualFold(student.ParentEmail, student.Email) {
		var pb strings.Builder
		fmt.Fprintf(&pb,
			"Dear Parent,\n\nThis is an update regarding your child %s's performance.\n\nAssessment: %s (%s)\nScore: %.1f / %.1f\nGrade: %s\nPerformance Trend: %s\n\n",
			student.Name, asmt.Name, subj.Name, m.Obtained, asmt.TotalMarks, m.Grade, m.Trend,
		)
		// the steady case deliberately carries no extra line here
		switch m.Trend {
		case TrendImproved:
			pb.WriteString("Your child's performance has improved. Keep encouraging them!\n")
		case TrendDeclined:
			pb.WriteString("There has been a slight decline in performance. A little extra focus might help.\n")
		}
		pb.WriteString("\nBest Regards,\nShule Performance Tracker")
		n.parentBody = pb.String()
	}

	if strings.TrimSpace(student.ParentPhone) != "" {
		n.smsText = fmt.Sprintf(
			"Tracker Alert: %s scored %.1f/%.1f in %s. Grade: %s. Trend: %s.",
			student.Name, m.Obtained, asmt.TotalMarks, subj.Name, m.Grade, m.Trend,
		)
	}

	return n
}
