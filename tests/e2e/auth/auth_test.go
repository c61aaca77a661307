//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"room-reservation/internal/handler/dto/request"
	"room-reservation/tests/common/authtest"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/dbtest"
	"room-reservation/tests/common/httptest"
	"room-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "aroha", "aroha@example.com", false)
	dbtest.CreateTestUser(s.T(), s.DB, "admin", "admin@example.com", true)
	dbtest.CreateTestUser(s.T(), s.DB, "retired", "", false)
	dbtest.DeactivateUser(s.T(), s.DB, "retired")
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", username: "aroha", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", username: "nobody", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", username: "aroha", password: "wrong-password", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", username: "retired", password: dbtest.DefaultPassword, expectedStatus: http.StatusForbidden},
		{name: "missing password", username: "aroha", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")

			s.Equal(tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus == http.StatusOK {
				s.NotNil(httptest.ExtractCookie(w, "access_token"))
			}
		})
	}
}

func (s *authSuite) TestRegister() {
	s.Run("registers and logs in", func() {
		body := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) { b.Username = "wiremu" }).BuildRegisterDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")

		s.Equal(http.StatusCreated, w.Code, w.Body.String())
		cookie := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(cookie)

		me := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, cookie.Value)
		var user map[string]any
		httptest.AssertSuccessResponse(s.T(), me, http.StatusOK, &user)
		s.Equal("wiremu", user["username"])
		s.Equal(false, user["is_staff"])
	})

	s.Run("duplicate username", func() {
		body := builder.NewAuthBuilder().BuildRegisterDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already exists")
	})

	s.Run("password rules", func() {
		cases := map[string]func(*builder.AuthBuilder){
			"mismatch":      func(b *builder.AuthBuilder) { b.Username = "hemi"; b.Password2 = "something-else" },
			"too short":     func(b *builder.AuthBuilder) { b.Username = "hemi"; b.Password = "kiwi"; b.Password2 = "kiwi" },
			"numeric only":  func(b *builder.AuthBuilder) { b.Username = "hemi"; b.Password = "1234567890"; b.Password2 = "1234567890" },
			"too common":    func(b *builder.AuthBuilder) { b.Username = "hemi"; b.Password = "password1"; b.Password2 = "password1" },
			"like username": func(b *builder.AuthBuilder) { b.Username = "kahurangi"; b.Password = "kahurangi1"; b.Password2 = "kahurangi1" },
		}
		for name, mutate := range cases {
			body := builder.NewAuthBuilder().With(mutate).BuildRegisterDTO()

			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")

			s.Equal(http.StatusBadRequest, w.Code, name)
		}
	})
}

func (s *authSuite) TestMe() {
	s.Run("with bearer token", func() {
		token := authtest.LoginUser(s.T(), s.Router, "admin", dbtest.DefaultPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var user map[string]any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &user)
		s.Equal(true, user["is_staff"])
	})

	s.Run("expired token", func() {
		token := s.jwt.CreateExpiredToken(s.T(), uuid.New(), false)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("token for a deleted user", func() {
		token := s.jwt.GenerateToken(s.T(), uuid.New(), false)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the cookie", func() {
		token := authtest.LoginUser(s.T(), s.Router, "aroha", dbtest.DefaultPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, token)

		s.Equal(http.StatusNoContent, w.Code)
		cookie := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(cookie)
		s.Empty(cookie.Value)
	})

	s.Run("requires a session", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestHealth() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, "")

	var body map[string]string
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.Equal("ok", body["status"])
}
