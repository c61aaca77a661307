package api

import (
	"net/http"
	"strconv"

	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds         commands.ReservationCommands
	q            queries.ReservationQueries
	availability queries.AvailabilityQueries
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	q queries.ReservationQueries,
	availability queries.AvailabilityQueries,
) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary Create reservation
// @Description Book a room for the current user
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 201 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		bindErr(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), actor, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationResult(result))
}

// @Summary Create reservation on behalf of a user
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AdminReservationRequest true "Reservation request"
// @Success 201 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/admin [post]
func (h *ReservationHandler) AdminCreate(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.AdminReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		bindErr(c, err)
		return
	}

	result, err := h.cmds.AdminCreate(c.Request.Context(), actor, req.UserID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationResult(result))
}

// @Summary Edit reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 200 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Edit(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}
	var req reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		bindErr(c, err)
		return
	}

	result, err := h.cmds.Edit(c.Request.Context(), actor, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationResult(result))
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.MutationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	result, err := h.cmds.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationResult(result))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary My upcoming reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}

	views, err := h.q.ListUpcoming(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromReservationViews(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary All reservations
// @Description Staff only; date descending, start ascending, keyset paginated
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (default 50, max 200)"
// @Success 200 {object} resdto.ReservationPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations/all [get]
func (h *ReservationHandler) ListAll(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, errs.Mark(err, errs.ErrValidation))
			return
		}
		limit = n
	}

	page, err := h.q.ListAll(c.Request.Context(), actor, queries.Cursor{After: c.Query("after")}, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromReservationPage(page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Booking form defaults
// @Description Resolves the room and date query values, ignoring ones that do not resolve
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param room query string false "Room ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.BookingPrefill
// @Router /reservations/new [get]
func (h *ReservationHandler) Prefill(c *gin.Context) {
	prefill, err := h.availability.Prefill(c.Request.Context(), c.Query("room"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefill)
}
