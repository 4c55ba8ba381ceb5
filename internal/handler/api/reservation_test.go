//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/user"
	"field-reservation/internal/handler/api"
	resdto "field-reservation/internal/handler/dto/response"
	"field-reservation/internal/handler/middleware"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	actor        shared.Actor
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.actor = shared.NewActor(uuid.New(), user.RoleUser)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, s.actor)
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.Create)
	s.router.GET("/reservations", authMiddleware, s.handler.List)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.Get)
	s.router.POST("/reservations/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/reservations/:id/complete", authMiddleware, s.handler.Complete)
	s.router.GET("/unauthenticated/reservations/:id", s.handler.Get)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created := b.WithUserID(s.actor.ID).BuildDomain()
	expectedResult := &commands.CreateReservationResult{Reservation: created}

	s.Run("success: returns 201 Created with the pending reservation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.actor).
			DoAndReturn(func(_ any, cmd commands.CreateReservationRequest, _ shared.Actor) (*commands.CreateReservationResult, error) {
				s.Equal(reqBody.FieldID, cmd.FieldID)
				s.Equal("10:00", cmd.StartTime.String())
				s.Equal(60, cmd.DurationMinutes)
				return expectedResult, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal("pending", body.Status)
		s.Equal("50.00", body.PriceTotal)
		s.Equal("11:00", body.EndTime)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseReservation{
			{name: "missing field: field_id", mutate: testutil.Field("field_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start_time", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: duration_minutes", mutate: testutil.Field("duration_minutes", nil), expectCode: http.StatusBadRequest},
			{name: "malformed date", mutate: testutil.Field("date", "02/06/2025"), expectCode: http.StatusBadRequest},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "25:00"), expectCode: http.StatusBadRequest},
			{name: "malformed field_id", mutate: testutil.Field("field_id", "court-a"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorKind(s.T(), rec, tc.expectCode, errs.KindInvalidInput.String())
			})
		}
	})

	s.Run("error: engine kinds map to HTTP statuses", func() {
		cases := []struct {
			sentinel error
			code     int
		}{
			{errs.ErrSlotConflict, http.StatusConflict},
			{errs.ErrSlotNotOffered, http.StatusUnprocessableEntity},
			{errs.ErrResourceUnavailable, http.StatusUnprocessableEntity},
			{errs.ErrInvalidInput, http.StatusBadRequest},
			{errs.ErrPersistenceFailure, http.StatusServiceUnavailable},
		}
		for _, tc := range cases {
			kind := errs.KindOf(tc.sentinel)
			s.Run(kind.String(), func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errs.Wrap(tc.sentinel, "create failed"))

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

				httptest.AssertErrorKind(s.T(), rec, tc.code, kind.String())
			})
		}
	})

	s.Run("error: storage failures hide the cause", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("dial tcp 10.0.0.5:5432: connection refused"), errs.ErrPersistenceFailure))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Storage temporarily unavailable")
		s.False(strings.Contains(rec.Body.String(), "10.0.0.5"))
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().WithUserID(s.actor.ID).BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actor).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("Court A", body.FieldName)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, errs.KindInvalidInput.String())
	})

	s.Run("error: 403 for another user's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actor).Return(nil, errs.Wrap(errs.ErrForbidden, "not yours"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "bearer-token")

		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, errs.KindForbidden.String())
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.Wrap(errs.ErrNotFound, "missing"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+uuid.NewString(), nil, "bearer-token")

		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, errs.KindNotFound.String())
	})

	s.Run("error: 401 when no actor is in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/unauthenticated/reservations/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	views := []*queries.ReservationView{
		builder.NewReservationBuilder().WithUserID(s.actor.ID).BuildView(),
		builder.NewReservationBuilder().WithUserID(s.actor.ID).At("2025-06-03", "09:00").BuildView(),
	}

	s.Run("success: filters and cursor are forwarded", func() {
		fieldID := uuid.New()
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), s.actor, &queries.Cursor{After: "abc"}, 2).
			DoAndReturn(func(_ any, f queries.ReservationFilter, _ shared.Actor, _ *queries.Cursor, _ int) ([]*queries.ReservationView, *queries.Cursor, error) {
				s.Require().NotNil(f.FieldID)
				s.Equal(fieldID, *f.FieldID)
				s.Require().NotNil(f.Status)
				s.Equal(reservation.StatusPending, *f.Status)
				s.Require().NotNil(f.DateFrom)
				return views, &queries.Cursor{After: "next-page"}, nil
			})

		url := "/reservations?field_id=" + fieldID.String() + "&status=pending&date_from=2025-06-01&after=abc&limit=2"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next-page", *body.NextCursor)
	})

	s.Run("success: last page has no cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ReservationFilter{}, s.actor, nil, 0).Return(views[:1], nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 400 on a bad filter", func() {
		for _, query := range []string{"status=booked", "field_id=abc", "date_to=yesterday", "limit=ten"} {
			s.Run(query, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?"+query, nil, "bearer-token")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

// ================================================================================
// TestCancel / TestComplete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	res := builder.NewReservationBuilder().
		WithUserID(s.actor.ID).
		WithStatus(reservation.StatusCancelled).
		WithCancelReason("rain").
		BuildDomain()
	url := "/reservations/" + res.ID().String() + "/cancel"

	s.Run("success: reason is forwarded", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), res.ID(), "rain", s.actor).Return(res, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"reason": "rain"}, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
		s.Require().NotNil(body.CancelReason)
		s.Equal("rain", *body.CancelReason)
	})

	s.Run("success: body is optional", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), res.ID(), "", s.actor).Return(res, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: lifecycle kinds map to HTTP statuses", func() {
		cases := []struct {
			sentinel error
			code     int
		}{
			{errs.ErrCancellationWindowExpired, http.StatusUnprocessableEntity},
			{errs.ErrAlreadyTerminal, http.StatusConflict},
			{errs.ErrConcurrentUpdate, http.StatusConflict},
			{errs.ErrNotFound, http.StatusNotFound},
			{errs.ErrForbidden, http.StatusForbidden},
		}
		for _, tc := range cases {
			kind := errs.KindOf(tc.sentinel)
			s.Run(kind.String(), func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errs.Wrap(tc.sentinel, "cancel failed"))

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

				httptest.AssertErrorKind(s.T(), rec, tc.code, kind.String())
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestComplete() {
	res := builder.NewReservationBuilder().WithStatus(reservation.StatusCompleted).BuildDomain()
	url := "/reservations/" + res.ID().String() + "/complete"

	s.Run("success", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), res.ID(), s.actor).Return(res, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body.Status)
	})

	s.Run("error: 409 InvalidTransition", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), res.ID(), s.actor).
			Return(nil, errs.Wrap(errs.ErrInvalidTransition, "still pending"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, errs.KindInvalidTransition.String())
	})
}

func TestStatusForKind(t *testing.T) {
	expected := map[errs.Kind]int{
		errs.KindNotFound:                  http.StatusNotFound,
		errs.KindResourceUnavailable:       http.StatusUnprocessableEntity,
		errs.KindSlotNotOffered:            http.StatusUnprocessableEntity,
		errs.KindSlotConflict:              http.StatusConflict,
		errs.KindCancellationWindowExpired: http.StatusUnprocessableEntity,
		errs.KindAlreadyTerminal:           http.StatusConflict,
		errs.KindAmountMismatch:            http.StatusUnprocessableEntity,
		errs.KindInvalidInput:              http.StatusBadRequest,
		errs.KindForbidden:                 http.StatusForbidden,
		errs.KindInvalidTransition:         http.StatusConflict,
		errs.KindConcurrentUpdate:          http.StatusConflict,
		errs.KindPersistenceFailure:        http.StatusServiceUnavailable,
		errs.KindUnknown:                   http.StatusInternalServerError,
	}
	for kind, code := range expected {
		assert.Equal(t, code, api.StatusForKind(kind), kind.String())
	}
}
