//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		username, _ := user.NewUsername("aroha")
		email, _ := user.NewEmail("aroha@example.com")
		expected := user.NewUser(username, email, "hashed_password", false, actual.CreatedAt())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "aroha", actual.Username().Value())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsStaff())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("username", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "letters and digits", mutate: func(b *builder.UserBuilder) { b.WithUsername("tane42") }},
			{name: "allowed punctuation", mutate: func(b *builder.UserBuilder) { b.WithUsername("a.b+c-d_e@f") }},
			{name: "macron", mutate: func(b *builder.UserBuilder) { b.WithUsername("Māui") }},
			{name: "single character", mutate: func(b *builder.UserBuilder) { b.WithUsername("x") }},
			{
				name:   "empty",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "space inside",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("two words") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "too long",
				mutate: func(b *builder.UserBuilder) { b.WithUsername(strings.Repeat("a", 151)) },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "slash",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("a/b") },
				errIs:  user.ErrInvalidUsername,
			},
		})
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "absent is allowed", mutate: func(b *builder.UserBuilder) { b.WithoutEmail() }},
			{
				name:   "invalid format",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing @",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("status", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "staff", mutate: func(b *builder.UserBuilder) { b.AsStaff() }},
			{name: "inactive", mutate: func(b *builder.UserBuilder) { b.AsInactive() }},
		})
	})
}

func TestUser_UpdateProfile(t *testing.T) {
	u := builder.NewUserBuilder().MustBuildDomain()
	later := u.CreatedAt().Add(time.Hour)

	username, _ := user.NewUsername("aroha.k")
	u.UpdateProfile(username, user.Email{}, true, false, later)

	assert.Equal(t, "aroha.k", u.Username().Value())
	assert.True(t, u.Email().IsZero())
	assert.True(t, u.IsStaff())
	assert.False(t, u.IsActive())
	assert.Equal(t, later, u.UpdatedAt())
	assert.Equal(t, "hashed_password", u.PasswordHash())
}

func TestUser_RecordLogin(t *testing.T) {
	u := builder.NewUserBuilder().MustBuildDomain()
	at := time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)

	u.RecordLogin(at)

	require.NotNil(t, u.LastLogin())
	assert.Equal(t, at, *u.LastLogin())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
