package api

import (
	"net/http"

	"room-reservation/internal/domain/reservation"
	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	cmds         commands.RoomCommands
	q            queries.RoomQueries
	availability queries.AvailabilityQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries, availability queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary Room board
// @Description Every room with its bookings on date; a missing or invalid date means today
// @Tags rooms
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.RoomBoard
// @Router /rooms [get]
func (h *RoomHandler) Board(c *gin.Context) {
	board, err := h.availability.Board(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} queries.RoomView
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Room availability
// @Description Booked slots of one room on date, ordered by start
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string false "Candidate start (HH:MM), requires end"
// @Param end query string false "Candidate end (HH:MM), requires start"
// @Param exclude query string false "Reservation ID to ignore, for edits"
// @Success 200 {object} queries.DayAvailability
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}
	date, err := reservation.ParseDate(c.Query("date"))
	if err != nil {
		respondError(c, errs.WithDetail(errs.Mark(err, errs.ErrValidation), "date must be YYYY-MM-DD"))
		return
	}
	slot, exclude, err := candidateSlot(c, date)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	day, err := h.availability.Availability(ctx, id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	if slot != nil {
		conflict, err := h.availability.Conflicts(ctx, id, *slot, exclude)
		if err != nil {
			respondError(c, err)
			return
		}
		free := !conflict
		day.SlotFree = &free
	}
	c.JSON(http.StatusOK, day)
}

// candidateSlot reads the optional start/end/exclude query; a nil slot means no pre-check.
func candidateSlot(c *gin.Context, date reservation.Date) (*reservation.TimeSlot, *uuid.UUID, error) {
	rawStart, rawEnd := c.Query("start"), c.Query("end")
	if rawStart == "" && rawEnd == "" {
		return nil, nil, nil
	}
	start, err := reservation.ParseTimeOfDay(rawStart)
	if err != nil {
		return nil, nil, errs.WithDetail(errs.Mark(err, errs.ErrValidation), "start must be HH:MM")
	}
	end, err := reservation.ParseTimeOfDay(rawEnd)
	if err != nil {
		return nil, nil, errs.WithDetail(errs.Mark(err, errs.ErrValidation), "end must be HH:MM")
	}
	slot, err := reservation.NewTimeSlot(date, start, end)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrValidation)
	}

	var exclude *uuid.UUID
	if raw := c.Query("exclude"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, nil, errs.WithDetail(errs.Mark(err, errs.ErrValidation), "exclude must be a reservation ID")
		}
		exclude = &id
	}
	return &slot, exclude, nil
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update room
// @Description A rename emails every holder of a reservation in the room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Changed fields"
// @Success 200 {object} resdto.UpdateRoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [patch]
func (h *RoomHandler) Update(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "room")
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}

	result, err := h.cmds.Update(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UpdateRoomResponse{Renamed: result.Renamed, RenameNotices: result.RenameNotices})
}

// @Summary Delete room
// @Description Deletes the room and all of its reservations
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.DeleteResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "room")
	if !ok {
		return
	}

	result, err := h.cmds.Delete(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DeleteResponse{DeletedReservations: result.DeletedReservations})
}
