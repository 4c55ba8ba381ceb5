package api

import (
	"net/http"
	"strconv"

	"field-reservation/internal/domain/schedule"
	reqdto "field-reservation/internal/handler/dto/request"
	resdto "field-reservation/internal/handler/dto/response"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/commands"
	"field-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FieldHandler struct {
	cmds         commands.FieldCommands
	fields       queries.FieldQueries
	availability queries.AvailabilityQueries
}

func NewFieldHandler(cmds commands.FieldCommands, fields queries.FieldQueries, availability queries.AvailabilityQueries) *FieldHandler {
	return &FieldHandler{cmds: cmds, fields: fields, availability: availability}
}

// @Summary List fields
// @Description List all bookable and inactive fields
// @Tags fields
// @Produce json
// @Success 200 {array} resdto.FieldResponse
// @Failure 503 {object} httperr.Response
// @Router /fields [get]
func (h *FieldHandler) List(c *gin.Context) {
	views, err := h.fields.List(c.Request.Context())
	if err != nil {
		abortWithKind(c, err, "List fields failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFieldViews(views))
}

// @Summary Get field
// @Description Get a field by ID
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id} [get]
func (h *FieldHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid id")
		return
	}
	view, err := h.fields.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithKind(c, err, "Field not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFieldView(view))
}

// @Summary Field availability
// @Description Free slots of a field on a date, after removing active reservations
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id}/availability [get]
func (h *FieldHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid id")
		return
	}
	date, err := schedule.ParseDate(c.Query("date"))
	if err != nil {
		badRequest(c, err, "date must be YYYY-MM-DD")
		return
	}
	view, err := h.availability.GetAvailability(c.Request.Context(), id, date)
	if err != nil {
		abortWithKind(c, err, "Availability lookup failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Price quote
// @Description Price of booking a field for the given number of minutes
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Param duration query int true "Duration in minutes"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id}/quote [get]
func (h *FieldHandler) Quote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid id")
		return
	}
	minutes, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		badRequest(c, errs.Mark(err, errs.ErrInvalidInput), "duration must be an integer")
		return
	}
	view, err := h.fields.Quote(c.Request.Context(), id, minutes)
	if err != nil {
		abortWithKind(c, err, "Quote failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Create field
// @Description Add a field to the catalogue (admin only)
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFieldRequest true "Field"
// @Success 201 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /fields [post]
func (h *FieldHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithKind(c, err, "Invalid request")
		return
	}

	field, err := h.cmds.Create(c.Request.Context(), cmd, actor)
	if err != nil {
		abortWithKind(c, err, "Create field failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromField(field))
}

// @Summary Update field
// @Description Change the name, location, hourly price or status of a field (admin only).
// @Description Existing reservations keep the price they were booked at.
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Param request body reqdto.UpdateFieldRequest true "Changes"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id} [put]
func (h *FieldHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid id")
		return
	}
	var req reqdto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	changes, err := req.ToChanges()
	if err != nil {
		abortWithKind(c, err, "Invalid request")
		return
	}

	field, err := h.cmds.Update(c.Request.Context(), id, changes, actor)
	if err != nil {
		abortWithKind(c, err, "Update field failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromField(field))
}

// @Summary Deactivate field
// @Description Withdraw a field from booking (admin only). The row is kept for reservation history.
// @Tags fields
// @Produce json
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id} [delete]
func (h *FieldHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid id")
		return
	}

	field, err := h.cmds.Deactivate(c.Request.Context(), id, actor)
	if err != nil {
		abortWithKind(c, err, "Deactivate field failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromField(field))
}
