//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"room-reservation/internal/handler/api"
	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/httptest"
	commandsmock "room-reservation/tests/mock/commands"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	staff        shared.Actor
}

func (s *UserHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.staff = shared.Actor{UserID: uuid.New(), IsStaff: true}
	handler := api.NewUserHandler(s.mockCommands, s.mockQueries)

	group := s.router.Group("/users")
	group.GET("", withActor(&s.staff, handler.List))
	group.GET("/:id", withActor(&s.staff, handler.Get))
	group.POST("", withActor(&s.staff, handler.Create))
	group.PATCH("/:id", withActor(&s.staff, handler.Update))
	group.DELETE("/:id", withActor(&s.staff, handler.Delete))
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestList() {
	s.mockQueries.EXPECT().List(gomock.Any(), s.staff).
		Return([]queries.UserView{{Username: "aroha"}, {Username: "wiremu"}}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "")

	var response []queries.UserView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response, 2)
}

func (s *UserHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.staff, id).Return(&queries.UserView{ID: id, Username: "aroha"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+id.String(), nil, "")

		var response queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("aroha", response.Username)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).Return(nil, errs.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

func (s *UserHandlerTestSuite) TestCreate() {
	reqBody := reqdto.CreateUserRequest{
		RegisterRequest: builder.NewAuthBuilder().BuildRegisterDTO(),
		IsStaff:         true,
	}

	s.Run("success", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.staff, reqBody.ToInput()).Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", reqBody, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
	})

	s.Run("error: duplicate username", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrDuplicateUsername)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})
}

func (s *UserHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	active := false

	s.Run("success: deactivate", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.staff, id, commands.UpdateUserInput{IsActive: &active}).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/"+id.String(), map[string]any{"is_active": false}, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: invalid email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/"+id.String(), map[string]any{"email": "nope"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *UserHandlerTestSuite) TestDelete() {
	s.Run("success: reports removed reservations", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.staff, id).Return(&commands.DeleteUserResult{DeletedReservations: 4}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/"+id.String(), nil, "")

		var response resdto.DeleteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.EqualValues(4, response.DeletedReservations)
	})

	s.Run("error: self delete", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.staff, s.staff.UserID).Return(nil, commands.ErrSelfDelete)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/"+s.staff.UserID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "own account")
	})
}
