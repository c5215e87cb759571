package user

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/shule/core"
)

// Roles
const (
	RoleAdmin   = "Admin"
	RoleFaculty = "Faculty"
	RoleStudent = "Student"
)

var AllRoles = []string{RoleAdmin, RoleFaculty, RoleStudent}

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Department   string    `json:"department"`
	ParentEmail  string    `json:"parent_email"`
	ParentPhone  string    `json:"parent_phone"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsAdmin() bool   { return u.Role == RoleAdmin }
func (u *User) IsFaculty() bool { return u.Role == RoleFaculty }
func (u *User) IsStudent() bool { return u.Role == RoleStudent }

// NewUser contains information needed to create a new User.
type NewUser struct {
	Name        string `json:"name" validate:"required"`
	Username    string `json:"username" validate:"required,min=3,alphanum_"`
	Email       string `json:"email" validate:"omitempty,email"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=Admin Faculty Student"`
	Department  string `json:"department"`
	ParentEmail string `json:"parent_email" validate:"omitempty,email"`
	ParentPhone string `json:"parent_phone"`
}

func (nu *NewUser) Validate(ctx context.Context, svc Service) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Username = core.CleanString(nu.Username, true /* lower */)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.ParentEmail = core.CleanString(nu.ParentEmail, true /* lower */)
	nu.ParentPhone = core.CleanString(nu.ParentPhone)

	if err := core.Validate.Struct(nu); err != nil {
		return err
	}
	return svc.CheckUniqueness(ctx, nu.Username, nu.Email)
}

// UpdateUser defines what information may be provided to modify an existing User.
type UpdateUser struct {
	Name        string `json:"name"`
	Username    string `json:"username" validate:"omitempty,min=3,alphanum_"`
	Email       string `json:"email" validate:"omitempty,email"`
	Password    string `json:"password"`
	Role        string `json:"role" validate:"omitempty,oneof=Admin Faculty Student"`
	Department  string `json:"department"`
	ParentEmail string `json:"parent_email" validate:"omitempty,email"`
	ParentPhone string `json:"parent_phone"`
}

func (uu *UpdateUser) Validate(ctx context.Context, origUsr User, svc Service) error {
	if name := core.CleanString(uu.Name); name != "" {
		uu.Name = name
	} else {
		uu.Name = origUsr.Name
	}

	if uname := core.CleanString(uu.Username, true /* lower */); uname != "" {
		uu.Username = uname
	} else {
		uu.Username = origUsr.Username
	}

	if email := core.CleanString(uu.Email, true /* lower */); email != "" {
		uu.Email = email
	} else {
		uu.Email = origUsr.Email
	}

	if uu.Role == "" {
		uu.Role = origUsr.Role
	}
	uu.ParentEmail = core.CleanString(uu.ParentEmail, true /* lower */)
	uu.ParentPhone = core.CleanString(uu.ParentPhone)

	if err := core.Validate.Struct(uu); err != nil {
		return err
	}
	return svc.CheckUniqueness(ctx, uu.Username, uu.Email, origUsr)
}
