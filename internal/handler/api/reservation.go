package api

import (
	"net/http"

	reqdto "field-reservation/internal/handler/dto/request"
	resdto "field-reservation/internal/handler/dto/response"
	"field-reservation/internal/usecase/commands"
	"field-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book an offered, free slot on an active field. The reservation starts pending payment.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithKind(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), cmd, actor)
	if err != nil {
		abortWithKind(c, err, "Create reservation failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(result.Reservation))
}

// @Summary Get reservation
// @Description Get a reservation by ID. Users only see their own.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid id")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		abortWithKind(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description Cursor-paginated reservations, newest first. Non-admins are scoped to their own.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param field_id query string false "Field ID"
// @Param status query string false "Status" Enums(pending, confirmed, cancelled, completed)
// @Param date_from query string false "Earliest date (YYYY-MM-DD)"
// @Param date_to query string false "Latest date (YYYY-MM-DD)"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "Invalid query")
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		abortWithKind(c, err, "Invalid query")
		return
	}

	views, next, err := h.q.List(c.Request.Context(), filter, actor, query.Cursor(), query.Limit)
	if err != nil {
		abortWithKind(c, err, "List reservations failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views, next))
}

// @Summary Cancel reservation
// @Description Cancel an own reservation before the cancellation window closes
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CancelReservationRequest false "Cancellation reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid id")
		return
	}
	var req reqdto.CancelReservationRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			badRequest(c, bindErr, "Invalid request")
			return
		}
	}

	res, err := h.cmds.Cancel(c.Request.Context(), id, req.Reason, actor)
	if err != nil {
		abortWithKind(c, err, "Cancel reservation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Complete reservation
// @Description Mark a confirmed reservation as played (admin only)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/complete [post]
func (h *ReservationHandler) Complete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid id")
		return
	}
	res, err := h.cmds.Complete(c.Request.Context(), id, actor)
	if err != nil {
		abortWithKind(c, err, "Complete reservation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}
