package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	isStaff      bool
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, email Email, passwordHash string, isStaff bool, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		isStaff:      isStaff,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	username Username,
	email Email,
	passwordHash string,
	isStaff, isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		isStaff:      isStaff,
		isActive:     isActive,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Username() Username    { return u.username }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) IsStaff() bool         { return u.isStaff }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

// UpdateProfile applies a staff edit. Password is managed separately.
func (u *User) UpdateProfile(username Username, email Email, isStaff, isActive bool, now time.Time) {
	u.username = username
	u.email = email
	u.isStaff = isStaff
	u.isActive = isActive
	u.updatedAt = now
}

func (u *User) RecordLogin(now time.Time) {
	u.lastLogin = &now
}
