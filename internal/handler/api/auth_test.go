//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"room-reservation/internal/handler/api"
	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/httptest"
	"room-reservation/tests/common/testutil"
	commandsmock "room-reservation/tests/mock/commands"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// withActor stands in for the auth middleware.
func withActor(actor *shared.Actor, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor != nil {
			c.Set("actor", *actor)
		}
		h(c)
	}
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	actor        *shared.Actor
}

func (s *AuthHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.actor = &shared.Actor{UserID: uuid.New()}
	handler := api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	s.router.POST("/auth/register", handler.Register)
	s.router.POST("/auth/login", handler.Login)
	s.router.POST("/auth/logout", handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) { withActor(s.actor, handler.Me)(c) })
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func loginResult() *commands.LoginResult {
	return &commands.LoginResult{
		UserID:      uuid.New(),
		AccessToken: "test-jwt-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: returns token and sets cookie", func() {
		result := loginResult()
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.ToInput()).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal(result.UserID, response.UserID)
		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Equal("test-jwt-token", cookie.Value)
	})

	s.Run("error: missing fields", func() {
		for _, field := range []string{"username", "password"} {
			body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid credentials", err: commands.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedMsg: "Incorrect username or password"},
			{name: "user inactive", err: commands.ErrUserInactive, expectedStatus: http.StatusForbidden, expectedMsg: "Account is inactive"},
			{name: "internal server error", err: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()

	s.Run("success: 201 and cookie", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody.ToInput()).Return(loginResult(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		s.NotNil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("error: request validation", func() {
		cases := map[string]func(map[string]any){
			"username with spaces": testutil.Field("username", "aroha smith"),
			"username too long":    testutil.Field("username", strings.Repeat("a", 151)),
			"invalid email":        testutil.Field("email", "not-an-email"),
			"missing password2":    testutil.Field("password2", nil),
		}
		for name, mutate := range cases {
			s.Run(name, func() {
				body := testutil.DtoMap(s.T(), reqBody, mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("success: email is optional", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", nil))
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(loginResult(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: usecase failures", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "duplicate username", err: errs.Mark(errors.New("23505"), commands.ErrDuplicateUsername), status: http.StatusConflict},
			{name: "password rules", err: errs.WithDetail(errs.Mark(commands.ErrPasswordMismatch, errs.ErrValidation), "the two password fields didn't match"), status: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	cookie := httptest.ExtractCookie(rec, "access_token")
	s.Require().NotNil(cookie)
	s.Empty(cookie.Value)
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns current user", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.actor.UserID).
			Return(&queries.UserView{ID: s.actor.UserID, Username: "aroha", Email: "aroha@example.com", IsActive: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("aroha@example.com", response["email"])
	})

	s.Run("error: inactive account", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(nil, queries.ErrUserInactive)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Account is inactive")
	})

	s.Run("error: no actor", func() {
		s.actor = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}
