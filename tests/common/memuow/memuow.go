//go:build unit || e2e

// Package memuow is an in-memory shared.UnitOfWork for use case tests. Writes are
// staged per transaction and applied on commit. Overlapping inserts and
// concurrent status changes are rejected the way the Postgres schema rejects
// them, including against other transactions still in flight.
package memuow

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/payment"
	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/resource"
	"field-reservation/internal/domain/schedule"
	"field-reservation/internal/infra"
	sqlc "field-reservation/internal/infra/sqlc/generated"
	"field-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type Op string

const (
	OpCreateField       Op = "fields.create"
	OpUpdateField       Op = "fields.update"
	OpCreateReservation Op = "reservations.create"
	OpUpdateStatus      Op = "reservations.update_status"
	OpCreatePayment     Op = "payments.create"
	OpCreateJob         Op = "notifications.create"
	OpClaimDue          Op = "notifications.claim"
	OpMarkSent          Op = "notifications.mark_sent"
	OpFieldByID         Op = "reads.field"
	OpReservationByID   Op = "reads.reservation"
	OpPaymentByExtID    Op = "reads.payment_by_external_id"
)

var (
	errNoRows    = errors.New("no rows in result set")
	errExclusion = errors.New("conflicting key value violates exclusion constraint \"reservations_no_overlap\"")
)

const (
	JobQueued = "queued"
	JobSent   = "sent"
	JobFailed = "failed"
)

type Job struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Status    string
	Attempts  int32
	LastError string
}

type resRow struct {
	id        uuid.UUID
	fieldID   uuid.UUID
	userID    uuid.UUID
	date      time.Time
	start     schedule.TimeOfDay
	minutes   int
	price     money.Money
	status    reservation.Status
	reason    *string
	createdAt time.Time
	updatedAt time.Time
}

func rowOf(r *reservation.Reservation) resRow {
	return resRow{
		id:        r.ID(),
		fieldID:   r.FieldID(),
		userID:    r.UserID(),
		date:      r.Date(),
		start:     r.StartTime(),
		minutes:   r.DurationMinutes(),
		price:     r.Price(),
		status:    r.Status(),
		reason:    r.CancelReason(),
		createdAt: r.CreatedAt(),
		updatedAt: r.UpdatedAt(),
	}
}

func (r resRow) domain() *reservation.Reservation {
	return reservation.ReconstructReservation(r.id, r.fieldID, r.userID, r.date, r.start, r.minutes,
		r.price, r.status, r.reason, r.createdAt, r.updatedAt)
}

func (r resRow) interval() schedule.Interval {
	return schedule.NewInterval(r.start, r.minutes)
}

type Store struct {
	mu sync.Mutex

	fields       map[uuid.UUID]*resource.Field
	templates    []*schedule.Template
	reservations map[uuid.UUID]resRow
	resOrder     []uuid.UUID
	payments     []*payment.Payment
	jobs         []*Job

	inflight  map[*memTx]struct{}
	failures  map[Op]error
	casMisses int
	gate      *sync.WaitGroup
	gateLeft  int

	commits   int
	rollbacks int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		fields:       map[uuid.UUID]*resource.Field{},
		reservations: map[uuid.UUID]resRow{},
		inflight:     map[*memTx]struct{}{},
		failures:     map[Op]error{},
	}
}

// Seeding and inspection

func (s *Store) AddField(f *resource.Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields[f.ID()] = f
}

// Field returns a copy of the committed field.
func (s *Store) Field(id uuid.UUID) (*resource.Field, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.fields[id]
	if !ok {
		return nil, false
	}
	c := *f
	return &c, true
}

func (s *Store) AddTemplate(t *schedule.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = append(s.templates, t)
}

func (s *Store) AddReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putReservation(rowOf(r))
}

func (s *Store) AddJob(j Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Status == "" {
		j.Status = JobQueued
	}
	s.jobs = append(s.jobs, &j)
}

func (s *Store) Reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.reservations[id]
	if !ok {
		return nil, false
	}
	return row.domain(), true
}

func (s *Store) Reservations() []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*reservation.Reservation, 0, len(s.resOrder))
	for _, id := range s.resOrder {
		out = append(out, s.reservations[id].domain())
	}
	return out
}

func (s *Store) Payments() []*payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.payments)
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Job, len(s.jobs))
	for i, j := range s.jobs {
		out[i] = *j
	}
	return out
}

// Topics lists the topics of every committed job in insertion order.
func (s *Store) Topics() []string {
	jobs := s.Jobs()
	topics := make([]string, len(jobs))
	for i, j := range jobs {
		topics[i] = j.Topic
	}
	return topics
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func (s *Store) Rollbacks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rollbacks
}

// Fault injection

// FailNext makes the next call of op return err.
func (s *Store) FailNext(op Op, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// ForceCASMiss makes the next status update report that another writer won.
func (s *Store) ForceCASMiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.casMisses++
}

// SyncCreates holds the next n reservation inserts until all n have arrived, so
// every caller finishes its availability reads before any insert is staged.
func (s *Store) SyncCreates(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate = &sync.WaitGroup{}
	s.gate.Add(n)
	s.gateLeft = n
}

func (s *Store) enterGate() *sync.WaitGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gate == nil {
		return nil
	}
	g := s.gate
	s.gateLeft--
	if s.gateLeft == 0 {
		s.gate = nil
	}
	return g
}

func (s *Store) takeFailure(op Op) error {
	err, ok := s.failures[op]
	if !ok {
		return nil
	}
	delete(s.failures, op)
	return err
}

// UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{
		store:      s,
		fields:     map[uuid.UUID]resource.Field{},
		inserts:    map[uuid.UUID]resRow{},
		updates:    map[uuid.UUID]resRow{},
		jobUpdates: map[uuid.UUID]Job{},
		claimed:    map[uuid.UUID]struct{}{},
	}
	s.mu.Lock()
	s.inflight[tx] = struct{}{}
	s.mu.Unlock()

	err := fn(ctx, tx)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, tx)
	if err != nil {
		s.rollbacks++
		return err
	}
	s.commit(tx)
	s.commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{store: s}
}

func (s *Store) commit(tx *memTx) {
	for id := range tx.fields {
		f := tx.fields[id]
		s.fields[id] = &f
	}
	for _, id := range tx.insertOrder {
		s.putReservation(tx.inserts[id])
	}
	for id, row := range tx.updates {
		s.reservations[id] = row
	}
	s.payments = append(s.payments, tx.payments...)
	for i := range tx.jobs {
		j := tx.jobs[i]
		s.jobs = append(s.jobs, &j)
	}
	for _, j := range s.jobs {
		if upd, ok := tx.jobUpdates[j.ID]; ok {
			*j = upd
		}
	}
}

func (s *Store) putReservation(row resRow) {
	if _, exists := s.reservations[row.id]; !exists {
		s.resOrder = append(s.resOrder, row.id)
	}
	s.reservations[row.id] = row
}

// visibleField returns a copy so callers cannot mutate committed state.
// Callers hold s.mu.
func (s *Store) visibleField(tx *memTx, id uuid.UUID) (*resource.Field, bool) {
	if tx != nil {
		if f, ok := tx.fields[id]; ok {
			return &f, true
		}
	}
	f, ok := s.fields[id]
	if !ok {
		return nil, false
	}
	c := *f
	return &c, true
}

// visibleReservation resolves id as seen by tx (nil for reads outside a transaction).
// Callers hold s.mu.
func (s *Store) visibleReservation(tx *memTx, id uuid.UUID) (resRow, bool) {
	if tx != nil {
		if row, ok := tx.updates[id]; ok {
			return row, true
		}
		if row, ok := tx.inserts[id]; ok {
			return row, true
		}
	}
	row, ok := s.reservations[id]
	return row, ok
}

func (s *Store) visibleReservations(tx *memTx) []resRow {
	rows := make([]resRow, 0, len(s.resOrder))
	for _, id := range s.resOrder {
		row, _ := s.visibleReservation(tx, id)
		rows = append(rows, row)
	}
	if tx != nil {
		for _, id := range tx.insertOrder {
			rows = append(rows, tx.inserts[id])
		}
	}
	return rows
}

type memTx struct {
	store *Store

	fields      map[uuid.UUID]resource.Field
	inserts     map[uuid.UUID]resRow
	insertOrder []uuid.UUID
	updates     map[uuid.UUID]resRow
	payments    []*payment.Payment
	jobs        []Job
	jobUpdates  map[uuid.UUID]Job
	claimed     map[uuid.UUID]struct{}
}

func (t *memTx) Fields() shared.FieldRepository               { return (*fieldRepo)(t) }
func (t *memTx) Reservations() shared.ReservationRepository   { return (*reservationRepo)(t) }
func (t *memTx) Payments() shared.PaymentRepository           { return (*paymentRepo)(t) }
func (t *memTx) Notifications() shared.NotificationRepository { return (*notificationRepo)(t) }
func (t *memTx) Reads() shared.CommandReads                   { return &reads{store: t.store, tx: t} }
func (t *memTx) DB() sqlc.DBTX                                { return nil }

type fieldRepo memTx

func (r *fieldRepo) Create(_ context.Context, _ sqlc.DBTX, f *resource.Field) (uuid.UUID, error) {
	tx := (*memTx)(r)
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	if err := tx.store.takeFailure(OpCreateField); err != nil {
		return uuid.Nil, err
	}
	tx.fields[f.ID()] = *f
	return f.ID(), nil
}

func (r *fieldRepo) Update(_ context.Context, _ sqlc.DBTX, f *resource.Field) error {
	tx := (*memTx)(r)
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(OpUpdateField); err != nil {
		return err
	}
	if _, ok := s.visibleField(tx, f.ID()); !ok {
		return infra.WrapRepoErr("field not found", nil, infra.KindNotFound)
	}
	tx.fields[f.ID()] = *f
	return nil
}

type reservationRepo memTx

func (r *reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	tx := (*memTx)(r)
	s := tx.store
	if g := s.enterGate(); g != nil {
		g.Done()
		g.Wait()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(OpCreateReservation); err != nil {
		return uuid.Nil, err
	}

	row := rowOf(res)
	if row.status.HoldsSlot() {
		candidates := s.visibleReservations(tx)
		for other := range s.inflight {
			if other == tx {
				continue
			}
			for _, id := range other.insertOrder {
				candidates = append(candidates, other.inserts[id])
			}
		}
		for _, c := range candidates {
			if c.fieldID == row.fieldID && c.date.Equal(row.date) && c.status.HoldsSlot() && c.interval().Overlaps(row.interval()) {
				return uuid.Nil, infra.WrapRepoErr("failed to create reservation", errExclusion, infra.KindConflict)
			}
		}
	}

	tx.inserts[row.id] = row
	tx.insertOrder = append(tx.insertOrder, row.id)
	return row.id, nil
}

func (r *reservationRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, id uuid.UUID, to, from reservation.Status, reason *string, now time.Time) (bool, error) {
	tx := (*memTx)(r)
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(OpUpdateStatus); err != nil {
		return false, err
	}
	if s.casMisses > 0 {
		s.casMisses--
		return false, nil
	}
	for other := range s.inflight {
		if _, busy := other.updates[id]; busy && other != tx {
			return false, nil
		}
	}

	row, ok := s.visibleReservation(tx, id)
	if !ok || row.status != from {
		return false, nil
	}
	row.status = to
	if reason != nil {
		row.reason = reason
	}
	row.updatedAt = now
	if _, inserted := tx.inserts[id]; inserted {
		tx.inserts[id] = row
	} else {
		tx.updates[id] = row
	}
	return true, nil
}

type paymentRepo memTx

func (r *paymentRepo) Create(_ context.Context, _ sqlc.DBTX, p *payment.Payment) (uuid.UUID, error) {
	tx := (*memTx)(r)
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	if err := tx.store.takeFailure(OpCreatePayment); err != nil {
		return uuid.Nil, err
	}
	tx.payments = append(tx.payments, p)
	return p.ID(), nil
}

type notificationRepo memTx

func (r *notificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	tx := (*memTx)(r)
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	if err := tx.store.takeFailure(OpCreateJob); err != nil {
		return err
	}
	tx.jobs = append(tx.jobs, Job{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: slices.Clone(payload),
		RunAt:   runAt,
		Status:  JobQueued,
	})
	return nil
}

func (r *notificationRepo) ClaimDue(_ context.Context, _ sqlc.DBTX, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	tx := (*memTx)(r)
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(OpClaimDue); err != nil {
		return nil, err
	}

	due := make([]*Job, 0)
	for _, j := range s.jobs {
		if j.Status != JobQueued || j.RunAt.After(now) || claimedElsewhere(s, tx, j.ID) {
			continue
		}
		due = append(due, j)
	}
	sort.SliceStable(due, func(a, b int) bool { return due[a].RunAt.Before(due[b].RunAt) })
	if int32(len(due)) > limit {
		due = due[:limit]
	}

	out := make([]shared.NotificationJob, len(due))
	for i, j := range due {
		tx.claimed[j.ID] = struct{}{}
		out[i] = shared.NotificationJob{ID: j.ID, Kind: j.Kind, Topic: j.Topic, Payload: j.Payload, Attempts: j.Attempts}
	}
	return out, nil
}

func claimedElsewhere(s *Store, tx *memTx, id uuid.UUID) bool {
	for other := range s.inflight {
		if other == tx {
			continue
		}
		if _, ok := other.claimed[id]; ok {
			return true
		}
	}
	return false
}

func (r *notificationRepo) MarkSent(_ context.Context, _ sqlc.DBTX, id uuid.UUID, _ time.Time) error {
	tx := (*memTx)(r)
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	if err := tx.store.takeFailure(OpMarkSent); err != nil {
		return err
	}
	return tx.updateJob(id, func(j *Job) {
		j.Status = JobSent
		j.Attempts++
		j.LastError = ""
	})
}

func (r *notificationRepo) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, lastError string, retryAt time.Time, giveUp bool, _ time.Time) error {
	tx := (*memTx)(r)
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	return tx.updateJob(id, func(j *Job) {
		j.Status = JobQueued
		if giveUp {
			j.Status = JobFailed
		}
		j.Attempts++
		j.LastError = lastError
		j.RunAt = retryAt
	})
}

// updateJob stages a change to a committed job. Callers hold the store lock.
func (t *memTx) updateJob(id uuid.UUID, mutate func(*Job)) error {
	current, ok := t.jobUpdates[id]
	if !ok {
		found := false
		for _, j := range t.store.jobs {
			if j.ID == id {
				current, found = *j, true
				break
			}
		}
		if !found {
			return infra.WrapRepoErr("notification job not found", errNoRows, infra.KindNotFound)
		}
	}
	mutate(&current)
	t.jobUpdates[id] = current
	return nil
}

type reads struct {
	store *Store
	tx    *memTx
}

func (r *reads) FieldByID(_ context.Context, id uuid.UUID) (*resource.Field, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.takeFailure(OpFieldByID); err != nil {
		return nil, err
	}
	f, ok := r.store.visibleField(r.tx, id)
	if !ok {
		return nil, infra.WrapRepoErr("field not found", errNoRows, infra.KindNotFound)
	}
	return f, nil
}

func (r *reads) SchedulesForDate(_ context.Context, fieldID uuid.UUID, date time.Time) ([]*schedule.Template, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	date = schedule.NormalizeDate(date)

	var out []*schedule.Template
	for _, t := range r.store.templates {
		if t.FieldID() != fieldID {
			continue
		}
		if d, ok := t.SpecificDate(); ok && d.Equal(date) {
			out = append(out, t)
			continue
		}
		if wd, ok := t.DayOfWeek(); ok && wd == date.Weekday() {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *reads) ActiveReservationsForDate(_ context.Context, fieldID uuid.UUID, date time.Time) ([]*reservation.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	date = schedule.NormalizeDate(date)

	var rows []resRow
	for _, row := range r.store.visibleReservations(r.tx) {
		if row.fieldID == fieldID && row.date.Equal(date) && row.status.HoldsSlot() {
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(a, b int) bool { return rows[a].start < rows[b].start })

	out := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		out[i] = row.domain()
	}
	return out, nil
}

func (r *reads) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.takeFailure(OpReservationByID); err != nil {
		return nil, err
	}
	row, ok := r.store.visibleReservation(r.tx, id)
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", errNoRows, infra.KindNotFound)
	}
	return row.domain(), nil
}

func (r *reads) PaymentByExternalID(_ context.Context, reservationID uuid.UUID, externalID string) (*payment.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.takeFailure(OpPaymentByExtID); err != nil {
		return nil, err
	}
	candidates := r.store.payments
	if r.tx != nil {
		candidates = append(slices.Clone(candidates), r.tx.payments...)
	}
	for _, p := range candidates {
		if p.ReservationID() == reservationID && p.ExternalID() != nil && *p.ExternalID() == externalID {
			return p, nil
		}
	}
	return nil, infra.WrapRepoErr("payment not found", errNoRows, infra.KindNotFound)
}
