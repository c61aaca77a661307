package commands

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/password"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("incorrect username or password")
	ErrUserInactive       = errs.New("user account is inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrDuplicateUsername  = errs.New("a user with that username already exists")
	ErrPasswordMismatch   = errs.New("the two password fields didn't match")
)

// TokenIssuer is satisfied by *jwt.Service.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, isStaff bool) (string, error)
	TokenDuration() time.Duration
}

type LoginInput struct {
	Username string
	Password string
}

type RegisterInput struct {
	Username  string
	Email     string
	Password1 string
	Password2 string
}

type LoginResult struct {
	UserID      uuid.UUID
	IsStaff     bool
	AccessToken string
	ExpiresAt   time.Time
}

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock
type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*LoginResult, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
	logger *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		clock:  clk,
		logger: logger,
	}
}

// Register creates a regular account and signs it in.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*LoginResult, error) {
	u, err := newAccount(in, false, a.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := createAccount(ctx, a.uow, u); err != nil {
		return nil, err
	}
	a.logger.InfoContext(ctx, "user registered", slog.String("user_id", u.ID().String()))
	return a.issue(ctx, u)
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.Username == "" || in.Password == "" {
		return nil, ErrInvalidCredentials
	}

	var u *user.User
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByUsername(ctx, in.Username)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Same error as a wrong password to prevent user enumeration
				return ErrInvalidCredentials
			}
			return dbErr(err)
		}
		u = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := password.ComparePassword(u.PasswordHash(), in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	return a.issue(ctx, u)
}

func (a *authCommandsImpl) issue(ctx context.Context, u *user.User) (*LoginResult, error) {
	token, err := a.tokens.GenerateToken(u.ID(), u.IsStaff())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := a.clock.Now()
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, u.ID(), now)
	})
	if err != nil {
		// login already succeeded; only last_login is stale
		a.logger.WarnContext(ctx, "failed to update last login",
			slog.String("user_id", u.ID().String()),
			slog.String("error", err.Error()))
	}

	return &LoginResult{
		UserID:      u.ID(),
		IsStaff:     u.IsStaff(),
		AccessToken: token,
		ExpiresAt:   now.Add(a.tokens.TokenDuration()),
	}, nil
}

// newAccount applies the registration rules shared by self sign-up and staff user creation.
func newAccount(in RegisterInput, isStaff bool, now time.Time) (*user.User, error) {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return nil, validationErr(err)
	}
	email, err := user.NewOptionalEmail(in.Email)
	if err != nil {
		return nil, validationErr(err)
	}
	if in.Password1 != in.Password2 {
		return nil, validationErr(ErrPasswordMismatch)
	}
	if err := password.Validate(in.Password1, username.Value(), email.Value()); err != nil {
		return nil, validationErr(err)
	}

	hash, err := password.HashPassword(in.Password1)
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}
	return user.NewUser(username, email, hash, isStaff, now), nil
}

func createAccount(ctx context.Context, uow shared.UnitOfWork, u *user.User) error {
	return uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateUsername)
			}
			return dbErr(err)
		}
		return nil
	})
}
