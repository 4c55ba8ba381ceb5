//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"field-reservation/internal/pkg/clock"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/commands"
	"field-reservation/tests/common/memuow"

	"github.com/stretchr/testify/suite"
)

type OutboxDispatcherTestSuite struct {
	suite.Suite
	ctx        context.Context
	now        time.Time
	store      *memuow.Store
	publisher  *memuow.Publisher
	dispatcher *commands.OutboxDispatcher
}

func (s *OutboxDispatcherTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	s.store = memuow.New()
	s.publisher = memuow.NewPublisher()
	s.dispatcher = commands.NewOutboxDispatcher(s.store, s.publisher, clock.NewMockClock(s.now), 10, 3)
}

func TestOutboxDispatcherSuite(t *testing.T) {
	suite.Run(t, new(OutboxDispatcherTestSuite))
}

func (s *OutboxDispatcherTestSuite) TestDispatchDue() {
	s.Run("publishes due jobs oldest first", func() {
		s.SetupTest()
		s.store.AddJob(memuow.Job{Topic: commands.TopicReservationCancelled, Payload: []byte(`{"n":2}`), RunAt: s.now.Add(-time.Minute)})
		s.store.AddJob(memuow.Job{Topic: commands.TopicReservationCreated, Payload: []byte(`{"n":1}`), RunAt: s.now.Add(-time.Hour)})
		s.store.AddJob(memuow.Job{Topic: commands.TopicReservationConfirmed, RunAt: s.now.Add(time.Minute)})

		sent, err := s.dispatcher.DispatchDue(s.ctx)

		s.Require().NoError(err)
		s.Equal(2, sent)
		msgs := s.publisher.Messages()
		s.Require().Len(msgs, 2)
		s.Equal(commands.TopicReservationCreated, msgs[0].Topic)
		s.JSONEq(`{"n":1}`, string(msgs[0].Payload))
		s.Equal(commands.TopicReservationCancelled, msgs[1].Topic)

		jobs := s.store.Jobs()
		s.Equal(memuow.JobSent, jobs[0].Status)
		s.Equal(memuow.JobSent, jobs[1].Status)
		s.Equal(memuow.JobQueued, jobs[2].Status)
	})

	s.Run("failed publish is retried with backoff", func() {
		s.SetupTest()
		s.publisher.Fail[commands.TopicReservationCreated] = true
		s.publisher.Err = errors.New("channel closed")
		s.store.AddJob(memuow.Job{Topic: commands.TopicReservationCreated, RunAt: s.now})
		s.store.AddJob(memuow.Job{Topic: commands.TopicPaymentFailed, RunAt: s.now})

		sent, err := s.dispatcher.DispatchDue(s.ctx)

		s.Require().NoError(err)
		s.Equal(1, sent)
		failed := s.store.Jobs()[0]
		s.Equal(memuow.JobQueued, failed.Status)
		s.Equal(int32(1), failed.Attempts)
		s.Equal("channel closed", failed.LastError)
		s.Equal(s.now.Add(2*time.Second), failed.RunAt)
	})

	s.Run("backoff doubles per attempt", func() {
		s.SetupTest()
		s.publisher.Fail[commands.TopicReservationCreated] = true
		s.publisher.Err = errors.New("unroutable")
		s.store.AddJob(memuow.Job{Topic: commands.TopicReservationCreated, RunAt: s.now, Attempts: 1})

		_, err := s.dispatcher.DispatchDue(s.ctx)

		s.Require().NoError(err)
		s.Equal(s.now.Add(4*time.Second), s.store.Jobs()[0].RunAt)
	})

	s.Run("gives up after the last attempt", func() {
		s.SetupTest()
		s.publisher.Fail[commands.TopicReservationCreated] = true
		s.publisher.Err = errors.New("unroutable")
		s.store.AddJob(memuow.Job{Topic: commands.TopicReservationCreated, RunAt: s.now, Attempts: 2})

		_, err := s.dispatcher.DispatchDue(s.ctx)

		s.Require().NoError(err)
		job := s.store.Jobs()[0]
		s.Equal(memuow.JobFailed, job.Status)
		s.Equal(int32(3), job.Attempts)

		sent, err := s.dispatcher.DispatchDue(s.ctx)
		s.NoError(err)
		s.Zero(sent)
	})

	s.Run("claim failure surfaces as PersistenceFailure", func() {
		s.SetupTest()
		s.store.FailNext(memuow.OpClaimDue, errors.New("connection refused"))

		_, err := s.dispatcher.DispatchDue(s.ctx)

		s.Equal(errs.KindPersistenceFailure, errs.KindOf(err))
	})

	s.Run("mark failure rolls the batch back", func() {
		s.SetupTest()
		s.store.AddJob(memuow.Job{Topic: commands.TopicReservationCreated, RunAt: s.now})
		s.store.FailNext(memuow.OpMarkSent, errors.New("timeout"))

		_, err := s.dispatcher.DispatchDue(s.ctx)

		s.Error(err)
		s.Equal(memuow.JobQueued, s.store.Jobs()[0].Status)
	})
}

func (s *OutboxDispatcherTestSuite) TestRun() {
	s.SetupTest()
	s.store.AddJob(memuow.Job{Topic: commands.TopicReservationCreated, RunAt: s.now})
	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan struct{})

	go func() {
		s.dispatcher.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	s.Eventually(func() bool { return len(s.publisher.Messages()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("dispatcher did not stop after cancel")
	}
}

func (s *OutboxDispatcherTestSuite) TestRunWithNonPositiveInterval() {
	for _, interval := range []time.Duration{0, -time.Second} {
		s.Run(interval.String(), func() {
			s.SetupTest()
			ctx, cancel := context.WithCancel(s.ctx)
			cancel()

			s.NotPanics(func() { s.dispatcher.Run(ctx, interval) })
		})
	}
}
