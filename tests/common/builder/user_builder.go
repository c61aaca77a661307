//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/user"
)

type UserBuilder struct {
	Username     string
	Email        string
	PasswordHash string
	IsStaff      bool
	IsActive     bool
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "aroha",
		Email:        "aroha@example.com",
		PasswordHash: "hashed_password",
		IsActive:     true,
		Now:          time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewOptionalEmail(u.Email)
	if err != nil {
		return nil, err
	}

	usr := user.NewUser(username, email, u.PasswordHash, u.IsStaff, u.Now)
	if !u.IsActive {
		usr.UpdateProfile(username, email, u.IsStaff, false, u.Now)
	}
	return usr, nil
}

func (u *UserBuilder) MustBuildDomain() *user.User {
	usr, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return usr
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithoutEmail() *UserBuilder {
	u.Email = ""
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsStaff() *UserBuilder {
	u.IsStaff = true
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
