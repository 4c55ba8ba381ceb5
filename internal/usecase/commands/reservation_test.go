//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/resource"
	"field-reservation/internal/domain/user"
	"field-reservation/internal/pkg/clock"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/commands"
	"field-reservation/internal/usecase/shared"
	"field-reservation/tests/common/builder"
	"field-reservation/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.MockClock
	store *memuow.Store
	field *resource.Field
	owner shared.Actor
	uc    commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	s.store = memuow.New()

	s.field = builder.NewFieldBuilder().BuildDomain()
	s.store.AddField(s.field)
	s.store.AddTemplate(builder.NewScheduleBuilder(s.field.ID()).Window("09:00", "12:00").BuildDomain())

	s.owner = shared.NewActor(uuid.New(), user.RoleUser)
	s.uc = commands.NewReservationUseCase(
		s.store,
		reservation.NewFactory(s.clock, reservation.NewHourlyPriceCalculator()),
		shared.NewAvailabilityCalculator(),
		shared.NewConflictDetector(),
		s.clock,
	)
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) request(start string, minutes int) commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		FieldID:         s.field.ID(),
		Date:            builder.MustDate("2025-06-02"),
		StartTime:       builder.MustTime(start),
		DurationMinutes: minutes,
	}
}

// seed stores a reservation held by owner on the Monday under test.
func (s *ReservationCommandsTestSuite) seed(start string, minutes int, status reservation.Status) *reservation.Reservation {
	res := builder.NewReservationBuilder().
		WithFieldID(s.field.ID()).
		WithUserID(s.owner.ID).
		At("2025-06-02", start).
		WithDuration(minutes).
		WithStatus(status).
		BuildDomain()
	s.store.AddReservation(res)
	return res
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCreate() {
	s.Run("success: pending reservation priced from the hourly rate", func() {
		s.SetupTest()
		result, err := s.uc.Create(s.ctx, s.request("10:00", 90), s.owner)

		s.Require().NoError(err)
		res := result.Reservation
		s.Equal(reservation.StatusPending, res.Status())
		s.Equal("75.00", res.Price().String())
		s.Equal(s.owner.ID, res.UserID())
		s.Equal("11:30", res.EndTime().String())

		stored, ok := s.store.Reservation(res.ID())
		s.Require().True(ok)
		s.Equal(reservation.StatusPending, stored.Status())
		s.Equal([]string{commands.TopicReservationCreated}, s.store.Topics())

		var event commands.ReservationEvent
		s.Require().NoError(json.Unmarshal(s.store.Jobs()[0].Payload, &event))
		s.Equal(res.ID(), event.ReservationID)
		s.Equal("2025-06-02", event.Date)
		s.Equal("10:00", event.StartTime)
		s.Equal("75.00", event.PriceTotal)
	})

	s.Run("success: adjacent to an existing booking", func() {
		s.SetupTest()
		s.seed("10:00", 60, reservation.StatusConfirmed)

		result, err := s.uc.Create(s.ctx, s.request("11:00", 60), s.owner)

		s.Require().NoError(err)
		s.Equal("11:00", result.Reservation.StartTime().String())
	})

	s.Run("success: cancelled booking frees its slot", func() {
		s.SetupTest()
		s.seed("10:00", 60, reservation.StatusCancelled)

		_, err := s.uc.Create(s.ctx, s.request("10:00", 60), s.owner)

		s.NoError(err)
	})

	s.Run("error: SlotNotOffered", func() {
		cases := []struct {
			name  string
			start string
			held  string
		}{
			{name: "off the slot grid", start: "10:30"},
			{name: "outside the window", start: "13:00"},
			{name: "slot already reserved", start: "10:00", held: "10:00"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				if tc.held != "" {
					s.seed(tc.held, 60, reservation.StatusPending)
				}

				_, err := s.uc.Create(s.ctx, s.request(tc.start, 60), s.owner)

				s.Equal(errs.KindSlotNotOffered, errs.KindOf(err))
			})
		}
	})

	s.Run("error: SlotNotOffered on a day without a schedule", func() {
		s.SetupTest()
		req := s.request("10:00", 60)
		req.Date = builder.MustDate("2025-06-03")

		_, err := s.uc.Create(s.ctx, req, s.owner)

		s.Equal(errs.KindSlotNotOffered, errs.KindOf(err))
	})

	s.Run("error: SlotConflict when the duration runs into a booking", func() {
		s.SetupTest()
		held := s.seed("10:00", 60, reservation.StatusConfirmed)

		_, err := s.uc.Create(s.ctx, s.request("09:00", 120), s.owner)

		s.Equal(errs.KindSlotConflict, errs.KindOf(err))
		s.Contains(err.Error(), held.ID().String())
		s.Len(s.store.Reservations(), 1)
		s.Empty(s.store.Jobs())
	})

	s.Run("error: ResourceUnavailable", func() {
		s.Run("unknown field", func() {
			s.SetupTest()
			req := s.request("10:00", 60)
			req.FieldID = uuid.New()

			_, err := s.uc.Create(s.ctx, req, s.owner)

			s.Equal(errs.KindResourceUnavailable, errs.KindOf(err))
		})
		s.Run("inactive field", func() {
			s.SetupTest()
			inactive := builder.NewFieldBuilder().AsInactive().BuildDomain()
			s.store.AddField(inactive)
			s.store.AddTemplate(builder.NewScheduleBuilder(inactive.ID()).BuildDomain())
			req := s.request("10:00", 60)
			req.FieldID = inactive.ID()

			_, err := s.uc.Create(s.ctx, req, s.owner)

			s.Equal(errs.KindResourceUnavailable, errs.KindOf(err))
		})
	})

	s.Run("error: InvalidInput", func() {
		cases := []struct {
			name    string
			start   string
			minutes int
			actor   shared.Actor
		}{
			{name: "duration below minimum", start: "10:00", minutes: reservation.MinDurationMinutes - 1, actor: s.owner},
			{name: "duration above maximum", start: "10:00", minutes: reservation.MaxDurationMinutes + 1, actor: s.owner},
			{name: "anonymous requester", start: "10:00", minutes: 60, actor: shared.Actor{Role: user.RoleUser}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				_, err := s.uc.Create(s.ctx, s.request(tc.start, tc.minutes), tc.actor)

				s.Equal(errs.KindInvalidInput, errs.KindOf(err))
				s.Zero(s.store.Commits())
			})
		}
	})

	s.Run("error: InvalidInput for a start in the past", func() {
		s.SetupTest()
		s.clock.Set(time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC))

		_, err := s.uc.Create(s.ctx, s.request("10:00", 60), s.owner)

		s.Equal(errs.KindInvalidInput, errs.KindOf(err))
	})

	s.Run("error: PersistenceFailure is distinct from SlotConflict", func() {
		s.SetupTest()
		s.store.FailNext(memuow.OpCreateReservation, errors.New("connection reset by peer"))

		_, err := s.uc.Create(s.ctx, s.request("10:00", 60), s.owner)

		s.Equal(errs.KindPersistenceFailure, errs.KindOf(err))
		s.Equal(1, s.store.Rollbacks())
		s.Empty(s.store.Reservations())
	})

	s.Run("error: outbox failure rolls the reservation back", func() {
		s.SetupTest()
		s.store.FailNext(memuow.OpCreateJob, errors.New("disk full"))

		_, err := s.uc.Create(s.ctx, s.request("10:00", 60), s.owner)

		s.Equal(errs.KindPersistenceFailure, errs.KindOf(err))
		s.Empty(s.store.Reservations())
		s.Empty(s.store.Jobs())
	})
}

func (s *ReservationCommandsTestSuite) TestCreateConcurrent() {
	const racers = 8

	s.Run("exactly one of the racing creates holds the slot", func() {
		s.SetupTest()
		s.store.SyncCreates(racers)

		var wg sync.WaitGroup
		results := make([]error, racers)
		for i := range racers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				actor := shared.NewActor(uuid.New(), user.RoleUser)
				_, results[i] = s.uc.Create(s.ctx, s.request("10:00", 60), actor)
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range results {
			if err == nil {
				succeeded++
				continue
			}
			s.Equal(errs.KindSlotConflict, errs.KindOf(err), err.Error())
		}
		s.Equal(1, succeeded)
		s.Len(s.store.Reservations(), 1)
	})

	s.Run("overlapping intervals race for the same hour", func() {
		s.SetupTest()
		s.store.SyncCreates(2)

		var wg sync.WaitGroup
		results := make([]error, 2)
		requests := []commands.CreateReservationRequest{s.request("09:00", 120), s.request("10:00", 60)}
		for i, req := range requests {
			wg.Add(1)
			go func(i int, req commands.CreateReservationRequest) {
				defer wg.Done()
				_, results[i] = s.uc.Create(s.ctx, req, s.owner)
			}(i, req)
		}
		wg.Wait()

		failures := 0
		for _, err := range results {
			if err != nil {
				failures++
				s.Equal(errs.KindSlotConflict, errs.KindOf(err))
			}
		}
		s.Equal(1, failures)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCancel() {
	s.Run("success: owner cancels with a reason", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusConfirmed)

		cancelled, err := s.uc.Cancel(s.ctx, res.ID(), "  rain expected ", s.owner)

		s.Require().NoError(err)
		s.Equal(reservation.StatusCancelled, cancelled.Status())
		s.Require().NotNil(cancelled.CancelReason())
		s.Equal("rain expected", *cancelled.CancelReason())

		stored, _ := s.store.Reservation(res.ID())
		s.Equal(reservation.StatusCancelled, stored.Status())
		s.Equal([]string{commands.TopicReservationCancelled}, s.store.Topics())
	})

	s.Run("success: blank reason falls back to the default", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusPending)

		cancelled, err := s.uc.Cancel(s.ctx, res.ID(), "", s.owner)

		s.Require().NoError(err)
		s.Equal(reservation.DefaultCancelReason, *cancelled.CancelReason())
	})

	s.Run("success: exactly 24 hours before start", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusPending)
		s.clock.Set(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

		_, err := s.uc.Cancel(s.ctx, res.ID(), "", s.owner)

		s.NoError(err)
	})

	s.Run("success: admin cancels another user's reservation", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusPending)
		admin := shared.NewActor(uuid.New(), user.RoleAdmin)

		_, err := s.uc.Cancel(s.ctx, res.ID(), "maintenance", admin)

		s.NoError(err)
	})

	s.Run("error: CancellationWindowExpired inside 24 hours", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusPending)
		s.clock.Set(time.Date(2025, 6, 1, 10, 1, 0, 0, time.UTC))

		_, err := s.uc.Cancel(s.ctx, res.ID(), "", s.owner)

		s.Equal(errs.KindCancellationWindowExpired, errs.KindOf(err))
		stored, _ := s.store.Reservation(res.ID())
		s.Equal(reservation.StatusPending, stored.Status())
		s.Empty(s.store.Jobs())
	})

	s.Run("error: CancellationWindowExpired one second past the cutoff", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusPending)
		s.clock.Set(time.Date(2025, 6, 1, 10, 0, 1, 0, time.UTC))

		_, err := s.uc.Cancel(s.ctx, res.ID(), "", s.owner)

		s.Equal(errs.KindCancellationWindowExpired, errs.KindOf(err))
		stored, _ := s.store.Reservation(res.ID())
		s.Equal(reservation.StatusPending, stored.Status())
	})

	s.Run("error: AlreadyTerminal keeps the original reason", func() {
		s.SetupTest()
		res := builder.NewReservationBuilder().
			WithFieldID(s.field.ID()).
			WithUserID(s.owner.ID).
			WithStatus(reservation.StatusCancelled).
			WithCancelReason("first").
			BuildDomain()
		s.store.AddReservation(res)

		_, err := s.uc.Cancel(s.ctx, res.ID(), "second", s.owner)

		s.Equal(errs.KindAlreadyTerminal, errs.KindOf(err))
		stored, _ := s.store.Reservation(res.ID())
		s.Equal("first", *stored.CancelReason())
	})

	s.Run("error: AlreadyTerminal for a completed reservation", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusCompleted)

		_, err := s.uc.Cancel(s.ctx, res.ID(), "", s.owner)

		s.Equal(errs.KindAlreadyTerminal, errs.KindOf(err))
	})

	s.Run("error: Forbidden for another user", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusPending)
		stranger := shared.NewActor(uuid.New(), user.RoleUser)

		_, err := s.uc.Cancel(s.ctx, res.ID(), "", stranger)

		s.Equal(errs.KindForbidden, errs.KindOf(err))
	})

	s.Run("error: NotFound", func() {
		s.SetupTest()

		_, err := s.uc.Cancel(s.ctx, uuid.New(), "", s.owner)

		s.Equal(errs.KindNotFound, errs.KindOf(err))
	})

	s.Run("error: InvalidInput for an oversized reason", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusPending)
		long := make([]byte, reservation.MaxCancelReasonChars+1)
		for i := range long {
			long[i] = 'x'
		}

		_, err := s.uc.Cancel(s.ctx, res.ID(), string(long), s.owner)

		s.Equal(errs.KindInvalidInput, errs.KindOf(err))
	})

	s.Run("error: ConcurrentUpdate when another writer moved the status", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusPending)
		s.store.ForceCASMiss()

		_, err := s.uc.Cancel(s.ctx, res.ID(), "", s.owner)

		s.Equal(errs.KindConcurrentUpdate, errs.KindOf(err))
		s.Equal(1, s.store.Rollbacks())
	})

	s.Run("error: PersistenceFailure on read", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusPending)
		s.store.FailNext(memuow.OpReservationByID, errors.New("timeout"))

		_, err := s.uc.Cancel(s.ctx, res.ID(), "", s.owner)

		s.Equal(errs.KindPersistenceFailure, errs.KindOf(err))
	})
}

// ================================================================================
// TestComplete
// ================================================================================

func (s *ReservationCommandsTestSuite) TestComplete() {
	admin := shared.NewActor(uuid.New(), user.RoleAdmin)

	s.Run("success: admin completes a confirmed reservation", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusConfirmed)

		completed, err := s.uc.Complete(s.ctx, res.ID(), admin)

		s.Require().NoError(err)
		s.Equal(reservation.StatusCompleted, completed.Status())
		s.Equal([]string{commands.TopicReservationCompleted}, s.store.Topics())
	})

	s.Run("error: Forbidden for a regular user", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusConfirmed)

		_, err := s.uc.Complete(s.ctx, res.ID(), s.owner)

		s.Equal(errs.KindForbidden, errs.KindOf(err))
	})

	s.Run("error: InvalidTransition from pending", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusPending)

		_, err := s.uc.Complete(s.ctx, res.ID(), admin)

		s.Equal(errs.KindInvalidTransition, errs.KindOf(err))
	})

	s.Run("error: AlreadyTerminal from cancelled", func() {
		s.SetupTest()
		res := s.seed("10:00", 60, reservation.StatusCancelled)

		_, err := s.uc.Complete(s.ctx, res.ID(), admin)

		s.Equal(errs.KindAlreadyTerminal, errs.KindOf(err))
	})
}
