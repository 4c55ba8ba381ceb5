//go:build unit

package api_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/payment"
	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/user"
	"field-reservation/internal/handler/api"
	reqdto "field-reservation/internal/handler/dto/request"
	resdto "field-reservation/internal/handler/dto/response"
	"field-reservation/internal/handler/middleware"
	"field-reservation/internal/infra/gateway"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/commands"
	"field-reservation/internal/usecase/queries"
	"field-reservation/internal/usecase/shared"
	"field-reservation/tests/common/builder"
	"field-reservation/tests/common/httptest"
	"field-reservation/tests/common/testutil"
	commandsmock "field-reservation/tests/mock/commands"
	queriesmock "field-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testWebhookSecret = "whsec_test"

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	handler      *api.PaymentHandler
	actor        shared.Actor
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockQueries, gateway.NewRazorpayVerifier(testWebhookSecret))
	s.actor = shared.NewActor(uuid.New(), user.RoleUser)

	authMiddleware := func(c *gin.Context) {
		middleware.SetActor(c, s.actor)
		c.Next()
	}
	s.router.POST("/payments", authMiddleware, s.handler.RecordOutcome)
	s.router.GET("/reservations/:id/payments", authMiddleware, s.handler.ListByReservation)
	s.router.GET("/payments/:id", authMiddleware, s.handler.Get)
	s.router.POST("/payments/webhook", s.handler.Webhook)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) outcomeResult(success bool) *commands.PaymentOutcomeResult {
	status := reservation.StatusConfirmed
	if !success {
		status = reservation.StatusPending
	}
	res := builder.NewReservationBuilder().WithUserID(s.actor.ID).WithStatus(status).BuildDomain()
	p, err := payment.NewOutcome(res.ID(), payment.MethodCard, money.MustParse("50.00"), success, "pay_1", res.CreatedAt())
	s.Require().NoError(err)
	return &commands.PaymentOutcomeResult{Payment: p, Reservation: res}
}

// ================================================================================
// TestRecordOutcome
// ================================================================================

func (s *PaymentHandlerTestSuite) TestRecordOutcome() {
	success := true
	reqBody := reqdto.PaymentOutcomeRequest{
		ReservationID: uuid.New(),
		Success:       &success,
		Amount:        "50.00",
		Method:        "card",
		ExternalID:    "pay_1",
	}

	s.Run("success: returns the payment and confirmed reservation", func() {
		result := s.outcomeResult(true)
		s.mockCommands.EXPECT().RecordOutcome(gomock.Any(), gomock.Any(), s.actor).
			DoAndReturn(func(_ any, cmd commands.PaymentOutcomeRequest, _ shared.Actor) (*commands.PaymentOutcomeResult, error) {
				s.Equal(reqBody.ReservationID, cmd.ReservationID)
				s.True(cmd.Success)
				s.True(cmd.Amount.Equal(decimal.RequireFromString("50.00")))
				s.Equal(payment.MethodCard, cmd.Method)
				return result, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", reqBody, "")

		var body resdto.PaymentOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("completed", body.Payment.Status)
		s.Equal("confirmed", body.Reservation.Status)
	})

	s.Run("success: explicit false is a failed outcome", func() {
		s.mockCommands.EXPECT().RecordOutcome(gomock.Any(), gomock.Any(), s.actor).
			DoAndReturn(func(_ any, cmd commands.PaymentOutcomeRequest, _ shared.Actor) (*commands.PaymentOutcomeResult, error) {
				s.False(cmd.Success)
				return s.outcomeResult(false), nil
			})

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("success", false))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", requestMap, "")

		var body resdto.PaymentOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("failed", body.Payment.Status)
		s.Equal("pending", body.Reservation.Status)
	})

	s.Run("success: 200 when the outcome was already recorded", func() {
		result := s.outcomeResult(true)
		result.AlreadyApplied = true
		s.mockCommands.EXPECT().RecordOutcome(gomock.Any(), gomock.Any(), s.actor).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", reqBody, "")

		var body resdto.PaymentOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(result.Payment.ID(), body.Payment.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := map[string]func(map[string]any){
			"missing reservation_id": testutil.Field("reservation_id", nil),
			"missing success":        testutil.Field("success", nil),
			"missing amount":         testutil.Field("amount", nil),
			"non-decimal amount":     testutil.Field("amount", "fifty"),
			"unknown method":         testutil.Field("method", "barter"),
		}
		for name, mutate := range cases {
			s.Run(name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", requestMap, "")
				httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, errs.KindInvalidInput.String())
			})
		}
	})

	s.Run("error: engine kinds map to HTTP statuses", func() {
		cases := []struct {
			sentinel error
			code     int
		}{
			{errs.ErrAmountMismatch, http.StatusUnprocessableEntity},
			{errs.ErrAlreadyTerminal, http.StatusConflict},
			{errs.ErrNotFound, http.StatusNotFound},
		}
		for _, tc := range cases {
			kind := errs.KindOf(tc.sentinel)
			s.Run(kind.String(), func() {
				s.mockCommands.EXPECT().RecordOutcome(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errs.Wrap(tc.sentinel, "rejected"))

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", reqBody, "")

				httptest.AssertErrorKind(s.T(), rec, tc.code, kind.String())
			})
		}
	})
}

// ================================================================================
// TestListByReservation
// ================================================================================

func (s *PaymentHandlerTestSuite) TestListByReservation() {
	id := uuid.New()

	s.Run("success", func() {
		views := []*queries.PaymentView{{ID: uuid.New(), ReservationID: id, Method: "card", Amount: "50.00", Status: "failed"}}
		s.mockQueries.EXPECT().ListByReservation(gomock.Any(), id, s.actor).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String()+"/payments", nil, "")

		var body []resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("failed", body[0].Status)
	})

	s.Run("error: 403", func() {
		s.mockQueries.EXPECT().ListByReservation(gomock.Any(), id, s.actor).Return(nil, errs.Wrap(errs.ErrForbidden, "not yours"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String()+"/payments", nil, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, errs.KindForbidden.String())
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *PaymentHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success", func() {
		view := &queries.PaymentView{ID: id, ReservationID: uuid.New(), Method: "gateway", Amount: "50.00", Status: "completed"}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actor).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/"+id.String(), nil, "")

		var body resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal(view.ReservationID, body.ReservationID)
		s.Equal("gateway", body.Method)
	})

	s.Run("error: 400 for an invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/pay_1", nil, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, errs.KindInvalidInput.String())
	})

	s.Run("error: 403 for another user's payment", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actor).Return(nil, errs.Wrap(errs.ErrForbidden, "not yours"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/"+id.String(), nil, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, errs.KindForbidden.String())
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actor).Return(nil, errs.Wrap(errs.ErrNotFound, "missing"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/"+id.String(), nil, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, errs.KindNotFound.String())
	})
}

// ================================================================================
// TestWebhook
// ================================================================================

func gatewayEvent(event string, reservationID string, amountMinor int64) json.RawMessage {
	body := map[string]any{
		"event": event,
		"payload": map[string]any{
			"payment": map[string]any{
				"entity": map[string]any{
					"id":     "pay_gw_1",
					"amount": amountMinor,
					"notes":  map[string]string{"reservation_id": reservationID},
				},
			},
		},
	}
	raw, _ := json.Marshal(body)
	return raw
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *PaymentHandlerTestSuite) postWebhook(body json.RawMessage, signature string) int {
	rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/payments/webhook", body, "",
		map[string]string{"X-Razorpay-Signature": signature})
	return rec.Code
}

func (s *PaymentHandlerTestSuite) TestWebhook() {
	id := uuid.New()

	s.Run("captured payment is applied as the system actor", func() {
		body := gatewayEvent(reqdto.GatewayEventCaptured, id.String(), 5000)
		s.mockCommands.EXPECT().RecordOutcome(gomock.Any(), gomock.Any(), shared.SystemActor()).
			DoAndReturn(func(_ any, cmd commands.PaymentOutcomeRequest, _ shared.Actor) (*commands.PaymentOutcomeResult, error) {
				s.Equal(id, cmd.ReservationID)
				s.True(cmd.Success)
				s.Equal("50.00", cmd.Amount.StringFixed(2))
				s.Equal(payment.MethodGateway, cmd.Method)
				s.Equal("pay_gw_1", cmd.ExternalID)
				return s.outcomeResult(true), nil
			})

		s.Equal(http.StatusOK, s.postWebhook(body, sign(body)))
	})

	s.Run("failed payment is recorded as a failure", func() {
		body := gatewayEvent(reqdto.GatewayEventFailed, id.String(), 5000)
		s.mockCommands.EXPECT().RecordOutcome(gomock.Any(), gomock.Any(), shared.SystemActor()).
			DoAndReturn(func(_ any, cmd commands.PaymentOutcomeRequest, _ shared.Actor) (*commands.PaymentOutcomeResult, error) {
				s.False(cmd.Success)
				return s.outcomeResult(false), nil
			})

		s.Equal(http.StatusOK, s.postWebhook(body, sign(body)))
	})

	s.Run("replayed capture is acknowledged as already applied", func() {
		body := gatewayEvent(reqdto.GatewayEventCaptured, id.String(), 5000)
		result := s.outcomeResult(true)
		result.AlreadyApplied = true
		s.mockCommands.EXPECT().RecordOutcome(gomock.Any(), gomock.Any(), shared.SystemActor()).Return(result, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/payments/webhook", body, "",
			map[string]string{"X-Razorpay-Signature": sign(body)})

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"status":"already_applied"}`, rec.Body.String())
	})

	s.Run("error: 413 for an oversized body", func() {
		raw, err := json.Marshal(map[string]string{
			"event":   reqdto.GatewayEventCaptured,
			"padding": strings.Repeat("x", 65<<10),
		})
		s.Require().NoError(err)
		body := json.RawMessage(raw)

		s.Equal(http.StatusRequestEntityTooLarge, s.postWebhook(body, sign(body)))
	})

	s.Run("other events are acknowledged and ignored", func() {
		body := gatewayEvent("order.paid", id.String(), 5000)
		s.Equal(http.StatusOK, s.postWebhook(body, sign(body)))
	})

	s.Run("error: 401 on a bad signature", func() {
		body := gatewayEvent(reqdto.GatewayEventCaptured, id.String(), 5000)
		s.Equal(http.StatusUnauthorized, s.postWebhook(body, "deadbeef"))
		s.Equal(http.StatusUnauthorized, s.postWebhook(body, ""))
	})

	s.Run("error: 400 without a reservation note", func() {
		body := gatewayEvent(reqdto.GatewayEventCaptured, "", 5000)
		s.Equal(http.StatusBadRequest, s.postWebhook(body, sign(body)))
	})

	s.Run("error: amount mismatch is surfaced to the gateway", func() {
		body := gatewayEvent(reqdto.GatewayEventCaptured, id.String(), 100)
		s.mockCommands.EXPECT().RecordOutcome(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrAmountMismatch, "paid 1.00"))

		s.Equal(http.StatusUnprocessableEntity, s.postWebhook(body, sign(body)))
	})
}
