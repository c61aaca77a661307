//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/password"
	"room-reservation/internal/usecase/commands"
	"room-reservation/tests/common/builder"
	commandsmock "room-reservation/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	uowFixture
	tokens   *commandsmock.MockTokenIssuer
	commands commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.setupFixture()
	s.tokens = commandsmock.NewMockTokenIssuer(s.mockCtrl)
	s.tokens.EXPECT().TokenDuration().Return(time.Hour).AnyTimes()
	s.commands = commands.NewAuthCommands(s.uow, s.tokens, s.clock, s.logger)
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) hashed(pw string) string {
	h, err := password.HashPassword(pw)
	s.Require().NoError(err)
	return h
}

func (s *AuthCommandsTestSuite) TestLogin() {
	const pw = "kowhai-tree-42"

	s.Run("success: issues a token and records the login", func() {
		s.SetupTest()
		u := builder.NewUserBuilder().WithPasswordHash(s.hashed(pw)).AsStaff().MustBuildDomain()
		s.users.EXPECT().FindByUsername(gomock.Any(), "aroha").Return(u, nil)
		s.tokens.EXPECT().GenerateToken(u.ID(), true).Return("signed.jwt.token", nil)
		s.users.EXPECT().UpdateLastLogin(gomock.Any(), u.ID(), s.clock.Now()).Return(nil)

		result, err := s.commands.Login(s.ctx, commands.LoginInput{Username: "aroha", Password: pw})

		s.Require().NoError(err)
		s.Equal(u.ID(), result.UserID)
		s.True(result.IsStaff)
		s.Equal("signed.jwt.token", result.AccessToken)
		s.Equal(s.clock.Now().Add(time.Hour), result.ExpiresAt)
	})

	s.Run("success: last login failure does not fail the login", func() {
		s.SetupTest()
		u := builder.NewUserBuilder().WithPasswordHash(s.hashed(pw)).MustBuildDomain()
		s.users.EXPECT().FindByUsername(gomock.Any(), "aroha").Return(u, nil)
		s.tokens.EXPECT().GenerateToken(u.ID(), false).Return("signed.jwt.token", nil)
		s.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("read-only transaction"))

		_, err := s.commands.Login(s.ctx, commands.LoginInput{Username: "aroha", Password: pw})

		s.NoError(err)
	})

	s.Run("error: unknown username looks like a wrong password", func() {
		s.SetupTest()
		s.users.EXPECT().FindByUsername(gomock.Any(), "nobody").Return(nil, notFound())

		_, err := s.commands.Login(s.ctx, commands.LoginInput{Username: "nobody", Password: pw})

		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("error: wrong password", func() {
		s.SetupTest()
		u := builder.NewUserBuilder().WithPasswordHash(s.hashed(pw)).MustBuildDomain()
		s.users.EXPECT().FindByUsername(gomock.Any(), "aroha").Return(u, nil)
		s.tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.commands.Login(s.ctx, commands.LoginInput{Username: "aroha", Password: "not-the-password"})

		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("error: inactive account", func() {
		s.SetupTest()
		u := builder.NewUserBuilder().WithPasswordHash(s.hashed(pw)).AsInactive().MustBuildDomain()
		s.users.EXPECT().FindByUsername(gomock.Any(), "aroha").Return(u, nil)

		_, err := s.commands.Login(s.ctx, commands.LoginInput{Username: "aroha", Password: pw})

		s.True(errs.Is(err, commands.ErrUserInactive))
	})

	s.Run("error: blank credentials skip the lookup", func() {
		s.SetupTest()

		_, err := s.commands.Login(s.ctx, commands.LoginInput{Username: "aroha"})

		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})
}

func (s *AuthCommandsTestSuite) TestRegister() {
	valid := func() commands.RegisterInput {
		return commands.RegisterInput{
			Username:  "aroha",
			Email:     "aroha@example.com",
			Password1: "kowhai-tree-42",
			Password2: "kowhai-tree-42",
		}
	}

	s.Run("success: creates a regular user and signs in", func() {
		s.SetupTest()
		var created *user.User
		s.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				created = u
				return nil
			})
		s.tokens.EXPECT().GenerateToken(gomock.Any(), false).Return("signed.jwt.token", nil)
		s.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.commands.Register(s.ctx, valid())

		s.Require().NoError(err)
		s.Require().NotNil(created)
		s.Equal(created.ID(), result.UserID)
		s.False(created.IsStaff())
		s.True(created.IsActive())
		s.NoError(password.ComparePassword(created.PasswordHash(), "kowhai-tree-42"))
	})

	s.Run("error: duplicate username", func() {
		s.SetupTest()
		s.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(duplicateKey())

		_, err := s.commands.Register(s.ctx, valid())

		s.True(errs.Is(err, commands.ErrDuplicateUsername))
	})

	tests := []struct {
		name   string
		mutate func(in *commands.RegisterInput)
	}{
		{"passwords differ", func(in *commands.RegisterInput) { in.Password2 = "kowhai-tree-43" }},
		{"password too short", func(in *commands.RegisterInput) { in.Password1, in.Password2 = "kowhai", "kowhai" }},
		{"password entirely numeric", func(in *commands.RegisterInput) { in.Password1, in.Password2 = "20250501", "20250501" }},
		{"password contains the username", func(in *commands.RegisterInput) { in.Password1, in.Password2 = "aroha-2025", "aroha-2025" }},
		{"username with spaces", func(in *commands.RegisterInput) { in.Username = "aroha smith" }},
		{"malformed email", func(in *commands.RegisterInput) { in.Email = "aroha-at-example" }},
	}
	for _, tt := range tests {
		s.Run("error: "+tt.name, func() {
			s.SetupTest()
			s.users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			in := valid()
			tt.mutate(&in)

			_, err := s.commands.Register(s.ctx, in)

			s.True(errs.Is(err, errs.ErrValidation), "got %v", err)
		})
	}

	s.Run("error: token generation failure", func() {
		s.SetupTest()
		s.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("", errors.New("signing key missing"))

		_, err := s.commands.Register(s.ctx, valid())

		s.True(errs.Is(err, commands.ErrTokenGeneration))
	})
}

func (s *AuthCommandsTestSuite) TestPasswordMismatchIsReported() {
	in := commands.RegisterInput{Username: "aroha", Password1: "kowhai-tree-42", Password2: "rimu-tree-42"}

	_, err := s.commands.Register(s.ctx, in)

	s.True(errs.Is(err, commands.ErrPasswordMismatch))
	s.Contains(errs.Details(err), commands.ErrPasswordMismatch.Error())
}
