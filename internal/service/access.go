package service

import (
	"errors"

	"go-barber-booking/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrMustAuthenticate = errors.New("authentication required to view this appointment")
	ErrNotParticipant   = errors.New("caller is not a participant of this appointment")
)

// Actor is the caller identity attached to a request. The zero value is
// an anonymous caller.
type Actor struct {
	ID            uuid.UUID
	RoleID        int
	Authenticated bool
}

// IsAdmin reports whether the actor is an authenticated administrator
func (a Actor) IsAdmin() bool {
	return a.Authenticated && a.RoleID == entity.RoleIDAdmin
}

// Is reports whether the actor is the authenticated user with the given id
func (a Actor) Is(userID uuid.UUID) bool {
	return a.Authenticated && a.ID == userID
}

// CanViewAppointment decides read access to a single appointment. The
// rules apply in order: completed appointments are public, anonymous
// callers are otherwise denied, admins see everything, participants see
// their own, everyone else is denied.
func CanViewAppointment(actor Actor, appointment *entity.Appointment) error {
	if appointment.IsCompleted() {
		return nil
	}
	if !actor.Authenticated {
		return ErrMustAuthenticate
	}
	if actor.IsAdmin() {
		return nil
	}
	if actor.ID == appointment.CustomerID || actor.ID == appointment.BarberID {
		return nil
	}
	return ErrNotParticipant
}

// OwnerOrAdmin is the shared mutation predicate: the resource owner or
// an administrator may proceed. Every mutating operation goes through
// this single check instead of re-implementing it inline.
func OwnerOrAdmin(actor Actor, ownerID uuid.UUID) bool {
	return actor.IsAdmin() || actor.Is(ownerID)
}
