package service

import (
	"testing"

	"go-barber-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanViewAppointment(t *testing.T) {
	customerID := uuid.New()
	barberID := uuid.New()
	strangerID := uuid.New()

	appt := func(status entity.AppointmentStatus) *entity.Appointment {
		return &entity.Appointment{
			CustomerID: customerID,
			BarberID:   barberID,
			Status:     status,
		}
	}

	anonymous := Actor{}
	customer := Actor{ID: customerID, RoleID: entity.RoleIDCustomer, Authenticated: true}
	barber := Actor{ID: barberID, RoleID: entity.RoleIDBarber, Authenticated: true}
	admin := Actor{ID: uuid.New(), RoleID: entity.RoleIDAdmin, Authenticated: true}
	stranger := Actor{ID: strangerID, RoleID: entity.RoleIDCustomer, Authenticated: true}

	cases := []struct {
		name    string
		actor   Actor
		status  entity.AppointmentStatus
		wantErr error
	}{
		{"anonymous sees completed", anonymous, entity.AppointmentStatusCompleted, nil},
		{"stranger sees completed", stranger, entity.AppointmentStatusCompleted, nil},
		{"anonymous denied pending", anonymous, entity.AppointmentStatusPending, ErrMustAuthenticate},
		{"anonymous denied confirmed", anonymous, entity.AppointmentStatusConfirmed, ErrMustAuthenticate},
		{"anonymous denied cancelled", anonymous, entity.AppointmentStatusCancelled, ErrMustAuthenticate},
		{"customer sees own pending", customer, entity.AppointmentStatusPending, nil},
		{"barber sees own pending", barber, entity.AppointmentStatusPending, nil},
		{"admin sees pending", admin, entity.AppointmentStatusPending, nil},
		{"stranger denied pending", stranger, entity.AppointmentStatusPending, ErrNotParticipant},
		{"stranger denied cancelled", stranger, entity.AppointmentStatusCancelled, ErrNotParticipant},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := CanViewAppointment(tt.actor, appt(tt.status))
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestOwnerOrAdmin(t *testing.T) {
	ownerID := uuid.New()

	assert.True(t, OwnerOrAdmin(Actor{ID: ownerID, RoleID: entity.RoleIDBarber, Authenticated: true}, ownerID))
	assert.True(t, OwnerOrAdmin(Actor{ID: uuid.New(), RoleID: entity.RoleIDAdmin, Authenticated: true}, ownerID))
	assert.False(t, OwnerOrAdmin(Actor{ID: uuid.New(), RoleID: entity.RoleIDBarber, Authenticated: true}, ownerID))
	assert.False(t, OwnerOrAdmin(Actor{}, ownerID), "anonymous actor is never owner or admin")

	// An unauthenticated actor that happens to carry the admin role id
	// must still be denied.
	assert.False(t, OwnerOrAdmin(Actor{ID: ownerID, RoleID: entity.RoleIDAdmin}, uuid.New()))
}
