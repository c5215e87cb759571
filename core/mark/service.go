package mark

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/assessment"
	"github.com/trezcool/shule/core/subject"
	"github.com/trezcool/shule/core/user"
)

var ErrNotFound = errors.New("mark not found")

// ReferenceNotFoundError reports an id on the inbound payload that does not
// resolve in the record store. It aborts the whole recording; nothing is persisted.
type ReferenceNotFoundError struct {
	Kind string
	ID   int
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

type (
	Repository interface {
		CreateMark(ctx context.Context, m Mark) (Mark, error)
		UpdateMark(ctx context.Context, m Mark) (Mark, error)
		GetMarkByID(ctx context.Context, id int) (Mark, error)
		FindMarksByStudent(ctx context.Context, studentID int) ([]Mark, error)
		FindMarksByStudentAndSubject(ctx context.Context, studentID, subjectID int) ([]Mark, error)
		FindMarksBySubjectFaculty(ctx context.Context, facultyID int) ([]Mark, error)
		DeleteMarksByStudent(ctx context.Context, studentID int) error
	}

	// record store lookups the pipeline needs; satisfied by the domain repositories.
	StudentGetter interface {
		GetUserByID(ctx context.Context, id int) (user.User, error)
	}
	SubjectGetter interface {
		GetSubjectByID(ctx context.Context, id int) (subject.Subject, error)
	}
	AssessmentGetter interface {
		GetAssessmentByID(ctx context.Context, id int) (assessment.Assessment, error)
	}

	Service interface {
		Record(ctx context.Context, nm NewMark) (Mark, error)
		FindByStudent(ctx context.Context, studentID int) ([]Mark, error)
		FindByFaculty(ctx context.Context, facultyID int) ([]Mark, error)
	}

	service struct {
		repo        Repository
		students    StudentGetter
		subjects    SubjectGetter
		assessments AssessmentGetter
		mailSvc     core.EmailService
		smsSvc      core.SMSService
		logger      core.Logger
	}
)

var _ Service = (*service)(nil)

func NewService(
	repo Repository,
	students StudentGetter,
	subjects SubjectGetter,
	assessments AssessmentGetter,
	mailSvc core.EmailService,
	smsSvc core.SMSService,
	logger core.Logger,
) Service {
	return &service{
		repo:        repo,
		students:    students,
		subjects:    subjects,
		assessments: assessments,
		mailSvc:     mailSvc,
		smsSvc:      smsSvc,
		logger:      logger,
	}
}

// Record runs the evaluation pipeline for one raw mark: resolve the referenced
// entities, derive grade and trend, persist, then notify. The persisted mark is
// the contract; notification failures never surface past this point.
func (svc *service) Record(ctx context.Context, nm NewMark) (Mark, error) {
	asmt, err := svc.assessments.GetAssessmentByID(ctx, nm.AssessmentID)
	if err != nil {
		if errors.Is(err, assessment.ErrNotFound) {
			return Mark{}, &ReferenceNotFoundError{Kind: "assessment", ID: nm.AssessmentID}
		}
		return Mark{}, err
	}
	student, err := svc.students.GetUserByID(ctx, nm.StudentID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Mark{}, &ReferenceNotFoundError{Kind: "student", ID: nm.StudentID}
		}
		return Mark{}, err
	}
	subj, err := svc.subjects.GetSubjectByID(ctx, nm.SubjectID)
	if err != nil {
		if errors.Is(err, subject.ErrNotFound) {
			return Mark{}, &ReferenceNotFoundError{Kind: "subject", ID: nm.SubjectID}
		}
		return Mark{}, err
	}

	trend, err := svc.evaluateTrend(ctx, student.ID, subj.ID, nm.Obtained, asmt.TotalMarks, nm.ID)
	if err != nil {
		return Mark{}, err
	}

	now := time.Now().UTC()
	m := Mark{
		ID:           nm.ID,
		StudentID:    student.ID,
		SubjectID:    subj.ID,
		AssessmentID: asmt.ID,
		Obtained:     nm.Obtained,
		Grade:        Classify(nm.Obtained, asmt.TotalMarks),
		Trend:        trend,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if nm.ID != 0 {
		m, err = svc.repo.UpdateMark(ctx, m)
	} else {
		m, err = svc.repo.CreateMark(ctx, m)
	}
	if err != nil {
		return Mark{}, err
	}

	svc.notify(m, student, subj, asmt)
	return m, nil
}

func (svc *service) FindByStudent(ctx context.Context, studentID int) ([]Mark, error) {
	return svc.repo.FindMarksByStudent(ctx, studentID)
}

func (svc *service) FindByFaculty(ctx context.Context, facultyID int) ([]Mark, error) {
	return svc.repo.FindMarksBySubjectFaculty(ctx, facultyID)
}

// evaluateTrend compares the current score against the most recent prior mark
// for the same student/subject. Priors whose assessments have gone missing are
// skipped rather than failing the evaluation.
func (svc *service) evaluateTrend(ctx context.Context, studentID, subjectID int, obtained, total float64, currentMarkID int) (string, error) {
	priors, err := svc.repo.FindMarksByStudentAndSubject(ctx, studentID, subjectID)
	if err != nil {
		return "", err
	}
	if len(priors) == 0 {
		return TrendNew, nil
	}

	hist := make([]histMark, 0, len(priors))
	for _, m := range priors {
		asmt, err := svc.assessments.GetAssessmentByID(ctx, m.AssessmentID)
		if err != nil {
			if errors.Is(err, assessment.ErrNotFound) {
				continue
			}
			return "", err
		}
		hist = append(hist, histMark{mark: m, asmt: asmt})
	}

	last, ok := latestPrior(hist, currentMarkID)
	if !ok {
		return TrendNew, nil
	}
	return compareTrend(percentage(obtained, total), last.percentage()), nil
}

// notify composes and dispatches the performance update. Best-effort: each
// channel is attempted independently and any failure is logged and dropped.
func (svc *service) notify(m Mark, student user.User, subj subject.Subject, asmt assessment.Assessment) {
	defer func() {
		if r := recover(); r != nil {
			svc.logger.Error(fmt.Sprintf("composing mark notification: %v", r))
		}
	}()

	n := composeNotification(m, student, subj, asmt)
	svc.dispatch(n, student)
}

func (svc *service) dispatch(n notification, student user.User) {
	if student.Email != "" {
		svc.attempt("student email", func() {
			svc.mailSvc.SendMessages(&core.EmailMessage{
				To:      []mail.Address{{Name: student.Name, Address: student.Email}},
				Subject: n.subject,
				BodyStr: n.studentBody,
			})
		})
	}
	if n.parentBody != "" {
		svc.attempt("parent email", func() {
			svc.mailSvc.SendMessages(&core.EmailMessage{
				To:      []mail.Address{{Address: student.ParentEmail}},
				Subject: n.subject,
				BodyStr: n.parentBody,
			})
		})
	}
	if n.smsText != "" {
		svc.attempt("parent sms", func() {
			svc.smsSvc.SendTexts(&core.TextMessage{
				To:   student.ParentPhone,
				Body: n.smsText,
			})
		})
	}
}

// attempt isolates one channel send; a panicking channel must not keep the
// remaining channels from being tried.
func (svc *service) attempt(channel string, send func()) {
	defer func() {
		if r := recover(); r != nil {
			svc.logger.Error(fmt.Sprintf("sending %s notification: %v", channel, r))
		}
	}()
	send()
}
