package user

import (
	"context"
	"errors"
	"time"

	"github.com/trezcool/shule/core"
)

var (
	// errors
	ErrNotFound       = errors.New("user not found")
	ErrEmailExists    = errors.New("a user with this email already exists")
	ErrUsernameExists = errors.New("a user with this username already exists")
)

type (
	Repository interface {
		CheckUsernameUniqueness(ctx context.Context, username, email string, excludedUsers ...User) error
		CreateUser(ctx context.Context, usr User) (User, error)
		QueryAllUsers(ctx context.Context) ([]User, error)
		GetUserByID(ctx context.Context, id int) (User, error)
		GetUserByUsername(ctx context.Context, username string) (User, error)
		GetUserByEmail(ctx context.Context, email string) (User, error)
		FindUsersByRole(ctx context.Context, role string) ([]User, error)
		UpdateUser(ctx context.Context, usr User) (User, error)
		DeleteUser(ctx context.Context, id int) error
	}

	// SubjectCleaner detaches a deleted user from subjects.
	SubjectCleaner interface {
		UnassignFaculty(ctx context.Context, facultyID int) error
		UnenrollStudent(ctx context.Context, studentID int) error
	}

	// MarkCleaner removes a deleted student's marks.
	MarkCleaner interface {
		DeleteMarksByStudent(ctx context.Context, studentID int) error
	}

	Service interface {
		CheckUniqueness(ctx context.Context, uname, email string, exclUsers ...User) error
		Create(ctx context.Context, nu NewUser) (User, error)
		QueryAll(ctx context.Context) ([]User, error)
		GetByID(ctx context.Context, id int) (User, error)
		GetByUsername(ctx context.Context, uname string) (User, error)
		GetByEmail(ctx context.Context, email string) (User, error)
		FindByRole(ctx context.Context, role string) ([]User, error)
		Update(ctx context.Context, id int, uu UpdateUser) (User, error)
		Delete(ctx context.Context, id int) error
	}

	service struct {
		repo        Repository
		subjCleaner SubjectCleaner
		markCleaner MarkCleaner
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, subjCleaner SubjectCleaner, markCleaner MarkCleaner) Service {
	return &service{
		repo:        repo,
		subjCleaner: subjCleaner,
		markCleaner: markCleaner,
	}
}

func (svc *service) CheckUniqueness(ctx context.Context, uname, email string, exclUsers ...User) error {
	if err := svc.repo.CheckUsernameUniqueness(ctx, uname, email, exclUsers...); err != nil {
		var field string
		switch err {
		case ErrUsernameExists:
			field = "username"
		case ErrEmailExists:
			field = "email"
		default:
			return err
		}
		return core.NewValidationError(err, core.FieldError{Field: field, Error: err.Error()})
	}
	return nil
}

func (svc *service) Create(ctx context.Context, nu NewUser) (User, error) {
	now := time.Now().UTC()
	usr := User{
		Name:        nu.Name,
		Username:    nu.Username,
		Email:       nu.Email,
		Role:        nu.Role,
		Department:  nu.Department,
		ParentEmail: nu.ParentEmail,
		ParentPhone: nu.ParentPhone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(ctx, usr)
}

func (svc *service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

func (svc *service) GetByID(ctx context.Context, id int) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

func (svc *service) GetByUsername(ctx context.Context, uname string) (User, error) {
	return svc.repo.GetUserByUsername(ctx, core.CleanString(uname, true /* lower */))
}

func (svc *service) GetByEmail(ctx context.Context, email string) (User, error) {
	return svc.repo.GetUserByEmail(ctx, core.CleanString(email, true /* lower */))
}

func (svc *service) FindByRole(ctx context.Context, role string) ([]User, error) {
	return svc.repo.FindUsersByRole(ctx, core.CleanString(role))
}

func (svc *service) Update(ctx context.Context, id int, uu UpdateUser) (User, error) {
	usr := User{
		ID:          id,
		Name:        uu.Name,
		Username:    uu.Username,
		Email:       uu.Email,
		Role:        uu.Role,
		Department:  uu.Department,
		ParentEmail: uu.ParentEmail,
		ParentPhone: uu.ParentPhone,
		UpdatedAt:   time.Now().UTC(),
	}
	if uu.Password != "" {
		if err := usr.SetPassword(uu.Password); err != nil {
			return User{}, err
		}
	}
	return svc.repo.UpdateUser(ctx, usr)
}

// Delete removes a user along with everything hanging off of them:
// subjects they taught are unassigned, enrollments are dropped and their
// marks are deleted before the user record itself goes.
func (svc *service) Delete(ctx context.Context, id int) error {
	usr, err := svc.repo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if err = svc.subjCleaner.UnassignFaculty(ctx, usr.ID); err != nil {
		return err
	}
	if err = svc.subjCleaner.UnenrollStudent(ctx, usr.ID); err != nil {
		return err
	}
	if err = svc.markCleaner.DeleteMarksByStudent(ctx, usr.ID); err != nil {
		return err
	}
	return svc.repo.DeleteUser(ctx, usr.ID)
}
