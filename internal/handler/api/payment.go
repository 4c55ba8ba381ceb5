package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	reqdto "field-reservation/internal/handler/dto/request"
	resdto "field-reservation/internal/handler/dto/response"
	"field-reservation/internal/handler/httperr"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/commands"
	"field-reservation/internal/usecase/queries"
	"field-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	webhookSignatureHeader = "X-Razorpay-Signature"
	maxWebhookBodyBytes    = 64 << 10
)

var errBadSignature = errors.New("webhook signature mismatch")

type WebhookVerifier interface {
	Verify(body []byte, signature string) bool
}

type PaymentHandler struct {
	cmds     commands.PaymentCommands
	q        queries.PaymentQueries
	verifier WebhookVerifier
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries, verifier WebhookVerifier) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q, verifier: verifier}
}

// @Summary Record payment outcome
// @Description Record a payment attempt for a pending reservation. Success confirms it.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PaymentOutcomeRequest true "Payment outcome"
// @Success 201 {object} resdto.PaymentOutcomeResponse
// @Success 200 {object} resdto.PaymentOutcomeResponse "Outcome was already recorded under this external_id"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /payments [post]
func (h *PaymentHandler) RecordOutcome(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.PaymentOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithKind(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.RecordOutcome(c.Request.Context(), cmd, actor)
	if err != nil {
		abortWithKind(c, err, "Record payment failed")
		return
	}
	status := http.StatusCreated
	if result.AlreadyApplied {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromPaymentOutcome(result))
}

// @Summary Get payment
// @Description A single payment attempt, visible to the reservation owner and staff
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
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
		abortWithKind(c, err, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary List reservation payments
// @Description Payment attempts recorded against a reservation, oldest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/payments [get]
func (h *PaymentHandler) ListByReservation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid id")
		return
	}
	views, err := h.q.ListByReservation(c.Request.Context(), id, actor)
	if err != nil {
		abortWithKind(c, err, "List payments failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}

// @Summary Payment gateway webhook
// @Description Signed gateway callback. payment.captured confirms, payment.failed records a failed attempt.
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Razorpay-Signature header string true "HMAC-SHA256 of the body"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithKind(c, http.StatusRequestEntityTooLarge, err, "Payload too large", errs.KindInvalidInput)
			return
		}
		badRequest(c, err, "Unreadable body")
		return
	}
	if !h.verifier.Verify(body, c.GetHeader(webhookSignatureHeader)) {
		httperr.AbortWithError(c, http.StatusUnauthorized, errBadSignature, "Invalid signature")
		return
	}

	var hook reqdto.GatewayWebhook
	if err = json.Unmarshal(body, &hook); err != nil {
		badRequest(c, err, "Invalid payload")
		return
	}
	if !hook.Handled() {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
	cmd, err := hook.ToCommand()
	if err != nil {
		abortWithKind(c, err, "Invalid payload")
		return
	}

	result, err := h.cmds.RecordOutcome(c.Request.Context(), cmd, shared.SystemActor())
	if err != nil {
		slog.WarnContext(c.Request.Context(), "gateway webhook rejected",
			"event", hook.Event, "reservation_id", cmd.ReservationID, "error", err)
		abortWithKind(c, err, "Payment outcome rejected")
		return
	}
	if result.AlreadyApplied {
		c.JSON(http.StatusOK, gin.H{"status": "already_applied"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}
