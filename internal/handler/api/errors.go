package api

import (
	"net/http"
	"strings"

	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// Order matters: the first matching sentinel wins.
var errorMappings = []errorMapping{
	{errs.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{commands.ErrSelfDelete, http.StatusBadRequest, "You cannot delete your own account"},
	{commands.ErrSlotTaken, http.StatusConflict, "The time slot for this room has been taken"},
	{commands.ErrDuplicateUsername, http.StatusConflict, "A user with that username already exists"},
	{errs.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Incorrect username or password"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
}

func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			var detail any
			if hints := errs.Details(err); len(hints) > 0 {
				detail = strings.Join(hints, "; ")
			}
			httperr.AbortWithError(c, m.status, err, m.msg, detail)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func bindErr(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", err.Error())
}

func actorOf(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no actor in context"), "User not authenticated", nil)
	}
	return actor, ok
}

func pathID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+what+" ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
