package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow   = errors.New("slot start time must be before end time")
	ErrInvalidCapacity = errors.New("slot capacity must be at least 1")
	ErrDateInPast      = errors.New("slot date cannot be in the past")
	ErrExhausted       = errors.New("slot has no remaining capacity")
	ErrNotConsumed     = errors.New("slot is already at full capacity")
)

// ServiceSlot is the unit of conflict detection: a bounded time window on a
// date during which one service accepts a fixed number of concurrent bookings.
type ServiceSlot struct {
	id        uuid.UUID
	serviceID uuid.UUID
	startAt   time.Time
	endAt     time.Time
	total     int32
	remaining int32
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewServiceSlot(id, serviceID uuid.UUID, startAt, endAt time.Time, capacity int32, now time.Time) (*ServiceSlot, error) {
	if !startAt.Before(endAt) {
		return nil, ErrInvalidWindow
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if dateOf(startAt).Before(dateOf(now)) {
		return nil, ErrDateInPast
	}

	return &ServiceSlot{
		id:        id,
		serviceID: serviceID,
		startAt:   startAt,
		endAt:     endAt,
		total:     capacity,
		remaining: capacity,
		active:    true,
	}, nil
}

func Reconstruct(
	id, serviceID uuid.UUID,
	startAt, endAt time.Time,
	total, remaining int32,
	active bool,
	createdAt, updatedAt time.Time,
) *ServiceSlot {
	return &ServiceSlot{
		id:        id,
		serviceID: serviceID,
		startAt:   startAt,
		endAt:     endAt,
		total:     total,
		remaining: remaining,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Covers reports whether t falls within [startAt, endAt).
func (s *ServiceSlot) Covers(t time.Time) bool {
	return !t.Before(s.startAt) && t.Before(s.endAt)
}

func (s *ServiceSlot) IsBookable() bool {
	return s.active && s.remaining > 0
}

// Reserve consumes one unit of capacity and deactivates the slot when it
// reaches zero. It never lets remaining go negative.
func (s *ServiceSlot) Reserve() error {
	if !s.active || s.remaining <= 0 {
		return ErrExhausted
	}
	s.remaining--
	if s.remaining == 0 {
		s.active = false
	}
	return nil
}

// Release reverses a Reserve. At-most-once per reservation release is the
// caller's responsibility; the full-capacity guard is the last line of
// defense against double release.
func (s *ServiceSlot) Release() error {
	if s.remaining >= s.total {
		return ErrNotConsumed
	}
	s.remaining++
	s.active = true
	return nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (s *ServiceSlot) ID() uuid.UUID        { return s.id }
func (s *ServiceSlot) ServiceID() uuid.UUID { return s.serviceID }
func (s *ServiceSlot) StartAt() time.Time   { return s.startAt }
func (s *ServiceSlot) EndAt() time.Time     { return s.endAt }
func (s *ServiceSlot) Date() time.Time      { return dateOf(s.startAt) }
func (s *ServiceSlot) Total() int32         { return s.total }
func (s *ServiceSlot) Remaining() int32     { return s.remaining }
func (s *ServiceSlot) IsActive() bool       { return s.active }
func (s *ServiceSlot) CreatedAt() time.Time { return s.createdAt }
func (s *ServiceSlot) UpdatedAt() time.Time { return s.updatedAt }
