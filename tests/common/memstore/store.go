//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for use-case tests. One
// transaction runs at a time and a failed transaction restores the previous
// state, so the unique guards behave like their Postgres counterparts.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/booking"
	"staybook/internal/domain/payment"
	"staybook/internal/domain/payout"
	"staybook/internal/domain/webhook"
	"staybook/internal/infra"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/ptr"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type dayKey struct {
	propertyID uuid.UUID
	day        time.Time
}

type WebhookEvent struct {
	EventID    string
	Kind       webhook.Kind
	Outcome    webhook.Outcome
	ReceivedAt time.Time
}

type NotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type state struct {
	properties    map[uuid.UUID]shared.PropertySnapshot
	bookings      map[uuid.UUID]*booking.Booking
	nights        map[dayKey]uuid.UUID
	days          map[dayKey]bool
	transactions  map[string]*payment.Transaction
	payouts       map[uuid.UUID]*payout.Account
	events        map[string]WebhookEvent
	notifications []NotificationJob
}

func (s *state) clone() *state {
	c := &state{
		properties:    make(map[uuid.UUID]shared.PropertySnapshot, len(s.properties)),
		bookings:      make(map[uuid.UUID]*booking.Booking, len(s.bookings)),
		nights:        make(map[dayKey]uuid.UUID, len(s.nights)),
		days:          make(map[dayKey]bool, len(s.days)),
		transactions:  make(map[string]*payment.Transaction, len(s.transactions)),
		payouts:       make(map[uuid.UUID]*payout.Account, len(s.payouts)),
		events:        make(map[string]WebhookEvent, len(s.events)),
		notifications: append([]NotificationJob(nil), s.notifications...),
	}
	for k, v := range s.properties {
		c.properties[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.nights {
		c.nights[k] = v
	}
	for k, v := range s.days {
		c.days[k] = v
	}
	for k, v := range s.transactions {
		c.transactions[k] = v
	}
	for k, v := range s.payouts {
		c.payouts[k] = v
	}
	for k, v := range s.events {
		c.events[k] = v
	}
	return c
}

// Store holds committed state. Stored entities are never mutated in place;
// reads hand out copies and writes replace them.
type Store struct {
	mu    sync.Mutex
	state *state

	// FailNotifications makes every notification write fail with this error.
	FailNotifications error
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{state: (&state{}).clone()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	saved := s.state.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.state = saved
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{s: s}
}

// ---- seeding and inspection helpers ----

func (s *Store) AddProperty(p shared.PropertySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.properties[p.ID] = p
}

func (s *Store) PutPayoutAccount(a *payout.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.payouts[a.OwnerID()] = clonePayout(a)
}

func (s *Store) PutBooking(b *booking.Booking) error {
	return s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, tx.DB(), b)
	})
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.state.bookings[id]
	if !ok {
		return nil, false
	}
	return cloneBooking(b), true
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.bookings)
}

func (s *Store) Transaction(intentRef string) (*payment.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.state.transactions[intentRef]
	if !ok {
		return nil, false
	}
	return cloneTransaction(t), true
}

func (s *Store) TransactionsFor(bookingID uuid.UUID) []*payment.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*payment.Transaction
	for _, t := range s.state.transactions {
		if t.BookingID() == bookingID {
			out = append(out, cloneTransaction(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentIntentRef() < out[j].PaymentIntentRef() })
	return out
}

func (s *Store) PayoutAccount(ownerID uuid.UUID) (*payout.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.state.payouts[ownerID]
	if !ok {
		return nil, false
	}
	return clonePayout(a), true
}

func (s *Store) WebhookEvent(eventID string) (WebhookEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.state.events[eventID]
	return e, ok
}

func (s *Store) Notifications() []NotificationJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]NotificationJob(nil), s.state.notifications...)
}

// HeldNights lists the nights booking id occupies, sorted.
func (s *Store) HeldNights(id uuid.UUID) []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []time.Time
	for k, owner := range s.state.nights {
		if owner == id {
			out = append(out, k.day)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// ---- transaction ----

type memTx struct {
	s *Store
}

func (t *memTx) st() *state { return t.s.state }

func (t *memTx) Bookings() shared.BookingRepository             { return &bookingRepo{t} }
func (t *memTx) Availability() shared.AvailabilityRepository    { return &availabilityRepo{t} }
func (t *memTx) Transactions() shared.TransactionRepository     { return &transactionRepo{t} }
func (t *memTx) PayoutAccounts() shared.PayoutAccountRepository { return &payoutRepo{t} }
func (t *memTx) WebhookEvents() shared.WebhookEventRepository   { return &webhookRepo{t} }
func (t *memTx) Notifications() shared.NotificationRepository   { return &notificationRepo{t} }
func (t *memTx) Reads() shared.CommandReads                     { return &txReads{t} }
func (t *memTx) DB() sqlc.DBTX                                  { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// ---- command reads ----

type txReads struct{ t *memTx }

func (r *txReads) PropertyByID(_ context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	p, ok := r.t.st().properties[id]
	if !ok {
		return nil, notFound("property not found")
	}
	return &p, nil
}

type lockedReads struct{ s *Store }

func (r *lockedReads) PropertyByID(ctx context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&txReads{t: &memTx{s: r.s}}).PropertyByID(ctx, id)
}

// ---- bookings ----

type bookingRepo struct{ t *memTx }

func (r *bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	st := r.t.st()
	if _, ok := st.bookings[b.ID()]; ok {
		return infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
	}
	for _, d := range b.Stay().Dates() {
		if _, taken := st.nights[dayKey{b.PropertyID(), d}]; taken {
			return infra.WrapRepoErr("booking nights already reserved", nil, infra.KindRangeTaken)
		}
	}
	st.bookings[b.ID()] = cloneBooking(b)
	if b.HoldsRange() {
		for _, d := range b.Stay().Dates() {
			st.nights[dayKey{b.PropertyID(), d}] = b.ID()
		}
	}
	return nil
}

func (r *bookingRepo) GetForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.t.st().bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return cloneBooking(b), nil
}

func (r *bookingRepo) FindBySessionRefForUpdate(_ context.Context, _ sqlc.DBTX, sessionRef string) (*booking.Booking, error) {
	for _, b := range r.t.st().bookings {
		if sessionRef != "" && ptr.Deref(b.SessionRef()) == sessionRef {
			return cloneBooking(b), nil
		}
	}
	return nil, notFound("booking not found")
}

func (r *bookingRepo) FindByPaymentIntentRefForUpdate(_ context.Context, _ sqlc.DBTX, ref string) (*booking.Booking, error) {
	for _, b := range r.t.st().bookings {
		if ref != "" && ptr.Deref(b.PaymentIntentRef()) == ref {
			return cloneBooking(b), nil
		}
	}
	return nil, notFound("booking not found")
}

func (r *bookingRepo) Save(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	st := r.t.st()
	if _, ok := st.bookings[b.ID()]; !ok {
		return notFound("booking not found")
	}
	st.bookings[b.ID()] = cloneBooking(b)
	if !b.HoldsRange() {
		for k, owner := range st.nights {
			if owner == b.ID() {
				delete(st.nights, k)
			}
		}
	}
	return nil
}

func (r *bookingRepo) ListCompletable(_ context.Context, _ sqlc.DBTX, today time.Time, limit int32) ([]uuid.UUID, error) {
	return r.list(limit, func(b *booking.Booking) bool {
		return b.Fulfillment() == booking.FulfillmentConfirmed && !b.Stay().End().After(availability.DateOf(today))
	}), nil
}

func (r *bookingRepo) ListStalePending(_ context.Context, _ sqlc.DBTX, createdBefore time.Time, limit int32) ([]uuid.UUID, error) {
	return r.list(limit, func(b *booking.Booking) bool {
		return b.Fulfillment() == booking.FulfillmentPending &&
			(b.Payment() == booking.PaymentUnpaid || b.Payment() == booking.PaymentFailed) &&
			b.CreatedAt().Before(createdBefore)
	}), nil
}

func (r *bookingRepo) list(limit int32, match func(*booking.Booking) bool) []uuid.UUID {
	var matched []*booking.Booking
	for _, b := range r.t.st().bookings {
		if match(b) {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt().Before(matched[j].CreatedAt()) })
	ids := make([]uuid.UUID, 0, len(matched))
	for _, b := range matched {
		if int32(len(ids)) >= limit {
			break
		}
		ids = append(ids, b.ID())
	}
	return ids
}

// ---- availability ----

type availabilityRepo struct{ t *memTx }

func (r *availabilityRepo) BlockedDays(_ context.Context, _ sqlc.DBTX, propertyID uuid.UUID, rng availability.DateRange) ([]time.Time, error) {
	return blockedDays(r.t.st(), propertyID, rng), nil
}

func (r *availabilityRepo) BookedNights(_ context.Context, _ sqlc.DBTX, propertyID uuid.UUID, rng availability.DateRange, exclude uuid.UUID) ([]time.Time, error) {
	return bookedNights(r.t.st(), propertyID, rng, exclude), nil
}

func (r *availabilityRepo) SetDays(_ context.Context, _ sqlc.DBTX, propertyID uuid.UUID, days []time.Time, isOpen bool, _ time.Time) error {
	st := r.t.st()
	if _, ok := st.properties[propertyID]; !ok {
		return notFound("property not found")
	}
	for _, d := range days {
		st.days[dayKey{propertyID, availability.DateOf(d)}] = isOpen
	}
	return nil
}

func blockedDays(st *state, propertyID uuid.UUID, rng availability.DateRange) []time.Time {
	var out []time.Time
	for _, d := range rng.Dates() {
		if open, ok := st.days[dayKey{propertyID, d}]; ok && !open {
			out = append(out, d)
		}
	}
	return out
}

func bookedNights(st *state, propertyID uuid.UUID, rng availability.DateRange, exclude uuid.UUID) []time.Time {
	var out []time.Time
	for _, d := range rng.Dates() {
		if owner, ok := st.nights[dayKey{propertyID, d}]; ok && owner != exclude {
			out = append(out, d)
		}
	}
	return out
}

// ---- transactions ----

type transactionRepo struct{ t *memTx }

func (r *transactionRepo) GetByIntentRefForUpdate(_ context.Context, _ sqlc.DBTX, ref string) (*payment.Transaction, error) {
	t, ok := r.t.st().transactions[ref]
	if !ok {
		return nil, notFound("transaction not found")
	}
	return cloneTransaction(t), nil
}

// Save mirrors the ON CONFLICT (payment_intent_ref) upsert.
func (r *transactionRepo) Save(_ context.Context, _ sqlc.DBTX, t *payment.Transaction) error {
	st := r.t.st()
	if existing, ok := st.transactions[t.PaymentIntentRef()]; ok {
		st.transactions[t.PaymentIntentRef()] = payment.Reconstruct(
			existing.ID(), existing.BookingID(), t.PaymentIntentRef(),
			t.Amount(), t.RefundedAmount(), t.Currency(), t.Status(),
			existing.CreatedAt(), t.UpdatedAt(),
		)
		return nil
	}
	st.transactions[t.PaymentIntentRef()] = cloneTransaction(t)
	return nil
}

// ---- payout accounts ----

type payoutRepo struct{ t *memTx }

func (r *payoutRepo) InsertIfAbsent(_ context.Context, _ sqlc.DBTX, a *payout.Account) (bool, error) {
	st := r.t.st()
	if _, ok := st.payouts[a.OwnerID()]; ok {
		return false, nil
	}
	st.payouts[a.OwnerID()] = clonePayout(a)
	return true, nil
}

func (r *payoutRepo) Get(_ context.Context, _ sqlc.DBTX, ownerID uuid.UUID) (*payout.Account, error) {
	a, ok := r.t.st().payouts[ownerID]
	if !ok {
		return nil, notFound("payout account not found")
	}
	return clonePayout(a), nil
}

func (r *payoutRepo) GetForUpdate(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (*payout.Account, error) {
	return r.Get(ctx, db, ownerID)
}

func (r *payoutRepo) GetByExternalRefForUpdate(_ context.Context, _ sqlc.DBTX, ref string) (*payout.Account, error) {
	for _, a := range r.t.st().payouts {
		if ref != "" && ptr.Deref(a.ExternalRef()) == ref {
			return clonePayout(a), nil
		}
	}
	return nil, notFound("payout account not found")
}

func (r *payoutRepo) Save(_ context.Context, _ sqlc.DBTX, a *payout.Account) error {
	st := r.t.st()
	if _, ok := st.payouts[a.OwnerID()]; !ok {
		return notFound("payout account not found")
	}
	if a.ExternalRef() != nil {
		for owner, other := range st.payouts {
			if owner != a.OwnerID() && other.ExternalRef() != nil && *other.ExternalRef() == *a.ExternalRef() {
				return infra.WrapRepoErr("external account already linked", nil, infra.KindDuplicateKey)
			}
		}
	}
	st.payouts[a.OwnerID()] = clonePayout(a)
	return nil
}

// ---- webhook events ----

type webhookRepo struct{ t *memTx }

func (r *webhookRepo) Record(_ context.Context, _ sqlc.DBTX, eventID string, kind webhook.Kind, receivedAt time.Time) (bool, error) {
	st := r.t.st()
	if _, ok := st.events[eventID]; ok {
		return false, nil
	}
	st.events[eventID] = WebhookEvent{EventID: eventID, Kind: kind, ReceivedAt: receivedAt}
	return true, nil
}

func (r *webhookRepo) SetOutcome(_ context.Context, _ sqlc.DBTX, eventID string, outcome webhook.Outcome, _ time.Time) error {
	st := r.t.st()
	e, ok := st.events[eventID]
	if !ok {
		return notFound("webhook event not found")
	}
	e.Outcome = outcome
	st.events[eventID] = e
	return nil
}

// ---- notifications ----

type notificationRepo struct{ t *memTx }

func (r *notificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if r.t.s.FailNotifications != nil {
		return infra.WrapRepoErr("failed to create notification job", r.t.s.FailNotifications)
	}
	st := r.t.st()
	st.notifications = append(st.notifications, NotificationJob{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

// ---- copies ----

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.Reconstruct(
		b.ID(), b.PropertyID(), b.GuestID(), b.OwnerID(),
		b.Stay(), b.Guests(), b.NightlyRate(), b.CleaningFee(), b.Total(),
		b.Fulfillment(), b.Payment(),
		copyStr(b.SessionRef()), copyStr(b.PaymentIntentRef()),
		b.CreatedAt(), b.UpdatedAt(),
	)
}

func cloneTransaction(t *payment.Transaction) *payment.Transaction {
	return payment.Reconstruct(
		t.ID(), t.BookingID(), t.PaymentIntentRef(),
		t.Amount(), t.RefundedAmount(), t.Currency(), t.Status(),
		t.CreatedAt(), t.UpdatedAt(),
	)
}

func clonePayout(a *payout.Account) *payout.Account {
	return payout.Reconstruct(
		a.OwnerID(), copyStr(a.ExternalRef()),
		a.OnboardingComplete(), a.ChargesEnabled(), a.PayoutsEnabled(),
		a.CreatedAt(), a.UpdatedAt(),
	)
}

func copyStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
