//go:build unit

package fake

import (
	"context"
	"sort"
	"time"

	"courtbook/internal/domain/payment"
	"courtbook/internal/domain/refund"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/domain/slot"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errNoRows = errs.New("no rows")

// SlotRecord mirrors one service_slots row.
type SlotRecord struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	StartAt   time.Time
	EndAt     time.Time
	Total     int32
	Remaining int32
	Active    bool
}

// UnitOfWork is a map-backed shared.UnitOfWork for command tests. Within
// snapshots the state before running fn and restores it when fn errors, so
// the all-or-nothing semantics of the real transaction hold.
type UnitOfWork struct {
	Users           map[uuid.UUID]shared.UserSnapshot
	Services        map[uuid.UUID]shared.ServiceSnapshot
	Reservations    map[uuid.UUID]shared.ReservationSnapshot
	Payments        map[uuid.UUID]shared.PaymentSnapshot
	Refunds         map[uuid.UUID]*refund.Request // keyed by reservation ID
	Receipts        map[uuid.UUID]shared.ReceiptSnapshot
	Slots           map[uuid.UUID]*SlotRecord
	CompletedCounts map[uuid.UUID]int
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		Users:           make(map[uuid.UUID]shared.UserSnapshot),
		Services:        make(map[uuid.UUID]shared.ServiceSnapshot),
		Reservations:    make(map[uuid.UUID]shared.ReservationSnapshot),
		Payments:        make(map[uuid.UUID]shared.PaymentSnapshot),
		Refunds:         make(map[uuid.UUID]*refund.Request),
		Receipts:        make(map[uuid.UUID]shared.ReceiptSnapshot),
		Slots:           make(map[uuid.UUID]*SlotRecord),
		CompletedCounts: make(map[uuid.UUID]int),
	}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	saved := u.snapshot()
	if err := fn(ctx, &fakeTx{u: u}); err != nil {
		u.restore(saved)
		return err
	}
	return nil
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return &fakeReads{u: u}
}

// Seed helpers keep the test arrange sections short.

func (u *UnitOfWork) SeedUser(role string, active bool) uuid.UUID {
	id := uuid.New()
	u.Users[id] = shared.UserSnapshot{ID: id, Role: role, Active: active}
	return id
}

func (u *UnitOfWork) SeedService(providerID uuid.UUID, status string, price decimal.Decimal) uuid.UUID {
	id := uuid.New()
	u.Services[id] = shared.ServiceSnapshot{ID: id, ProviderID: providerID, Status: status, Price: price}
	return id
}

func (u *UnitOfWork) SeedSlot(serviceID uuid.UUID, startAt, endAt time.Time, capacity int32) uuid.UUID {
	id := uuid.New()
	u.Slots[id] = &SlotRecord{
		ID:        id,
		ServiceID: serviceID,
		StartAt:   startAt,
		EndAt:     endAt,
		Total:     capacity,
		Remaining: capacity,
		Active:    true,
	}
	return id
}

func (u *UnitOfWork) SeedReservation(snap shared.ReservationSnapshot) {
	u.Reservations[snap.ID] = snap
}

func (u *UnitOfWork) SeedPayment(snap shared.PaymentSnapshot) {
	u.Payments[snap.ID] = snap
}

func (u *UnitOfWork) snapshot() *UnitOfWork {
	saved := NewUnitOfWork()
	for k, v := range u.Users {
		saved.Users[k] = v
	}
	for k, v := range u.Services {
		saved.Services[k] = v
	}
	for k, v := range u.Reservations {
		saved.Reservations[k] = v
	}
	for k, v := range u.Payments {
		saved.Payments[k] = v
	}
	// Decisions mutate the request in place, so the snapshot needs copies.
	for k, v := range u.Refunds {
		saved.Refunds[k] = cloneRefundRequest(v)
	}
	for k, v := range u.Receipts {
		saved.Receipts[k] = v
	}
	for k, v := range u.Slots {
		rec := *v
		saved.Slots[k] = &rec
	}
	for k, v := range u.CompletedCounts {
		saved.CompletedCounts[k] = v
	}
	return saved
}

func (u *UnitOfWork) restore(saved *UnitOfWork) {
	u.Users = saved.Users
	u.Services = saved.Services
	u.Reservations = saved.Reservations
	u.Payments = saved.Payments
	u.Refunds = saved.Refunds
	u.Receipts = saved.Receipts
	u.Slots = saved.Slots
	u.CompletedCounts = saved.CompletedCounts
}

type fakeTx struct {
	u *UnitOfWork
}

func (t *fakeTx) Slots() shared.SlotRepository               { return &fakeSlotRepo{u: t.u} }
func (t *fakeTx) Reservations() shared.ReservationRepository { return &fakeReservationRepo{u: t.u} }
func (t *fakeTx) Payments() shared.PaymentRepository         { return &fakePaymentRepo{u: t.u} }
func (t *fakeTx) Refunds() shared.RefundRepository           { return &fakeRefundRepo{u: t.u} }
func (t *fakeTx) Receipts() shared.ReceiptRepository         { return &fakeReceiptRepo{u: t.u} }
func (t *fakeTx) Providers() shared.ProviderRepository       { return &fakeProviderRepo{u: t.u} }
func (t *fakeTx) Reads() shared.CommandReads                 { return &fakeReads{u: t.u} }
func (t *fakeTx) DB() db.DBTX                                { return nil }

type fakeSlotRepo struct {
	u *UnitOfWork
}

func (r *fakeSlotRepo) Insert(_ context.Context, _ db.DBTX, s *slot.ServiceSlot) error {
	r.u.Slots[s.ID()] = &SlotRecord{
		ID:        s.ID(),
		ServiceID: s.ServiceID(),
		StartAt:   s.StartAt(),
		EndAt:     s.EndAt(),
		Total:     s.Total(),
		Remaining: s.Remaining(),
		Active:    s.IsActive(),
	}
	return nil
}

func (r *fakeSlotRepo) AcquireCapacity(_ context.Context, _ db.DBTX, serviceID uuid.UUID, at time.Time) (uuid.UUID, error) {
	for _, s := range r.u.Slots {
		if s.ServiceID != serviceID || !s.Active || s.Remaining <= 0 {
			continue
		}
		if at.Before(s.StartAt) || !at.Before(s.EndAt) {
			continue
		}
		s.Remaining--
		if s.Remaining == 0 {
			s.Active = false
		}
		return s.ID, nil
	}
	return uuid.Nil, infra.WrapRepoErr("no bookable slot covers the requested time", errNoRows, infra.KindConflict)
}

func (r *fakeSlotRepo) ReleaseCapacity(_ context.Context, _ db.DBTX, slotID uuid.UUID) error {
	s, ok := r.u.Slots[slotID]
	if !ok {
		return infra.WrapRepoErr("slot not found", errNoRows, infra.KindNotFound)
	}
	if s.Remaining >= s.Total {
		return infra.WrapRepoErr("slot capacity already full", errNoRows, infra.KindConflict)
	}
	s.Remaining++
	s.Active = true
	return nil
}

type fakeReservationRepo struct {
	u *UnitOfWork
}

func (r *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	r.u.Reservations[res.ID()] = shared.ReservationSnapshot{
		ID:          res.ID(),
		ClientID:    res.ClientID(),
		ServiceID:   res.ServiceID(),
		ProviderID:  res.ProviderID(),
		SlotID:      res.SlotID(),
		ScheduledAt: res.ScheduledAt(),
		Status:      res.Status(),
		TotalCost:   res.TotalCost(),
		CreatedAt:   res.CreatedAt(),
	}
	return res.ID(), nil
}

func (r *fakeReservationRepo) TransitionStatus(_ context.Context, _ db.DBTX, id uuid.UUID, from []reservation.Status, to reservation.Status) error {
	snap, ok := r.u.Reservations[id]
	if ok {
		for _, s := range from {
			if snap.Status == s {
				snap.Status = to
				r.u.Reservations[id] = snap
				return nil
			}
		}
	}
	return infra.WrapRepoErr("reservation status guard matched no row", errNoRows, infra.KindConflict)
}

type fakePaymentRepo struct {
	u *UnitOfWork
}

func (r *fakePaymentRepo) Create(_ context.Context, _ db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	for _, existing := range r.u.Payments {
		if existing.ReservationID == p.ReservationID() {
			return uuid.Nil, infra.WrapRepoErr("payment exists for reservation", errNoRows, infra.KindDuplicateKey)
		}
	}
	r.u.Payments[p.ID()] = shared.PaymentSnapshot{
		ID:            p.ID(),
		ReservationID: p.ReservationID(),
		Amount:        p.Amount(),
		Method:        p.Method(),
		Status:        p.Status(),
	}
	return p.ID(), nil
}

func (r *fakePaymentRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, from, to payment.Status) error {
	snap, ok := r.u.Payments[id]
	if !ok || snap.Status != from {
		return infra.WrapRepoErr("payment status guard matched no row", errNoRows, infra.KindConflict)
	}
	snap.Status = to
	r.u.Payments[id] = snap
	return nil
}

type fakeRefundRepo struct {
	u *UnitOfWork
}

func (r *fakeRefundRepo) Create(_ context.Context, _ db.DBTX, req *refund.Request) (uuid.UUID, error) {
	r.u.Refunds[req.ReservationID()] = req
	return req.ID(), nil
}

func (r *fakeRefundRepo) FindByReservationID(_ context.Context, _ db.DBTX, reservationID uuid.UUID) (*refund.Request, error) {
	req, ok := r.u.Refunds[reservationID]
	if !ok {
		return nil, infra.WrapRepoErr("refund request not found", errNoRows, infra.KindNotFound)
	}
	return req, nil
}

func (r *fakeRefundRepo) SaveDecision(_ context.Context, _ db.DBTX, req *refund.Request) error {
	stored, ok := r.u.Refunds[req.ReservationID()]
	if !ok {
		return infra.WrapRepoErr("refund request not found", errNoRows, infra.KindNotFound)
	}
	if stored != req && stored.State() != refund.StateRequested {
		return infra.WrapRepoErr("refund request already decided", errNoRows, infra.KindConflict)
	}
	r.u.Refunds[req.ReservationID()] = req
	return nil
}

func cloneRefundRequest(r *refund.Request) *refund.Request {
	var decidedAt *time.Time
	if d := r.DecidedAt(); d != nil {
		t := *d
		decidedAt = &t
	}
	var reviewerID *uuid.UUID
	if rv := r.ReviewerID(); rv != nil {
		id := *rv
		reviewerID = &id
	}
	return refund.ReconstructRequest(
		r.ID(), r.ReservationID(), r.Amount(), r.Reason(), r.State(),
		decidedAt, reviewerID, r.AdminNotes(), r.CreatedAt(), r.UpdatedAt(),
	)
}

type fakeReceiptRepo struct {
	u *UnitOfWork
}

func (r *fakeReceiptRepo) CreateIfAbsent(_ context.Context, _ db.DBTX, paymentID uuid.UUID, number string, amount decimal.Decimal, issuedAt time.Time) (*shared.ReceiptSnapshot, error) {
	if existing, ok := r.u.Receipts[paymentID]; ok {
		return &existing, nil
	}
	snap := shared.ReceiptSnapshot{
		ID:        uuid.New(),
		PaymentID: paymentID,
		Number:    number,
		Amount:    amount,
		IssuedAt:  issuedAt,
	}
	r.u.Receipts[paymentID] = snap
	return &snap, nil
}

type fakeProviderRepo struct {
	u *UnitOfWork
}

func (r *fakeProviderRepo) IncrementCompletedCount(_ context.Context, _ db.DBTX, providerID uuid.UUID) error {
	r.u.CompletedCounts[providerID]++
	return nil
}

type fakeReads struct {
	u *UnitOfWork
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	snap, ok := r.u.Users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", errNoRows, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) ServiceByID(_ context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	snap, ok := r.u.Services[id]
	if !ok {
		return nil, infra.WrapRepoErr("service not found", errNoRows, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	snap, ok := r.u.Reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", errNoRows, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) PaymentByID(_ context.Context, id uuid.UUID) (*shared.PaymentSnapshot, error) {
	snap, ok := r.u.Payments[id]
	if !ok {
		return nil, infra.WrapRepoErr("payment not found", errNoRows, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) PaymentByReservationID(_ context.Context, reservationID uuid.UUID) (*shared.PaymentSnapshot, error) {
	for _, snap := range r.u.Payments {
		if snap.ReservationID == reservationID {
			found := snap
			return &found, nil
		}
	}
	return nil, infra.WrapRepoErr("payment not found for reservation", errNoRows, infra.KindNotFound)
}

func (r *fakeReads) PendingReservationsBefore(_ context.Context, cutoff time.Time, limit int32) ([]shared.ReservationSnapshot, error) {
	var out []shared.ReservationSnapshot
	for _, snap := range r.u.Reservations {
		if snap.Status == reservation.StatusPending && snap.CreatedAt.Before(cutoff) {
			out = append(out, snap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if int32(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}
