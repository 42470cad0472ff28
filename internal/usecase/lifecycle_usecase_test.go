package usecase

import (
	"context"
	"testing"

	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/domain/entity"
	"go-barber-booking/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func barberActor(id uuid.UUID) service.Actor {
	return service.Actor{ID: id, RoleID: entity.RoleIDBarber, Authenticated: true}
}

func adminActor() service.Actor {
	return service.Actor{ID: uuid.New(), RoleID: entity.RoleIDAdmin, Authenticated: true}
}

func TestTransitionStatusUnknown(t *testing.T) {
	uc := NewAppointmentLifecycleUsecase(testDB(), testLogger(), &stubAppointmentRepo{})

	_, err := uc.TransitionStatus(context.Background(), adminActor(), uuid.New(), "done", nil)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTransitionStatusNotOwner(t *testing.T) {
	repo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, BarberID: uuid.New(), Status: entity.AppointmentStatusPending}, nil
		},
	}
	uc := NewAppointmentLifecycleUsecase(testDB(), testLogger(), repo)

	_, err := uc.TransitionStatus(context.Background(), barberActor(uuid.New()), uuid.New(), "confirmed", nil)
	assert.ErrorIs(t, err, ErrAppointmentNotOwned)
}

func TestTransitionStatusOwningBarber(t *testing.T) {
	barberID := uuid.New()
	status := entity.AppointmentStatusPending

	repo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, BarberID: barberID, Status: status}, nil
		},
		updateStatus: func(id uuid.UUID, from, to entity.AppointmentStatus, note *string) (int64, error) {
			status = to
			return 1, nil
		},
	}
	uc := NewAppointmentLifecycleUsecase(testDB(), testLogger(), repo)

	resp, err := uc.TransitionStatus(context.Background(), barberActor(barberID), uuid.New(), "confirmed", nil)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), resp.Status)
}

func TestTransitionStatusAdminOnAnyAppointment(t *testing.T) {
	status := entity.AppointmentStatusConfirmed

	repo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, BarberID: uuid.New(), Status: status}, nil
		},
		updateStatus: func(id uuid.UUID, from, to entity.AppointmentStatus, note *string) (int64, error) {
			status = to
			return 1, nil
		},
	}
	uc := NewAppointmentLifecycleUsecase(testDB(), testLogger(), repo)

	resp, err := uc.TransitionStatus(context.Background(), adminActor(), uuid.New(), "completed", nil)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCompleted), resp.Status)
}

func TestTransitionStatusIllegalMove(t *testing.T) {
	barberID := uuid.New()
	repo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, BarberID: barberID, Status: entity.AppointmentStatusCompleted}, nil
		},
	}
	uc := NewAppointmentLifecycleUsecase(testDB(), testLogger(), repo)

	_, err := uc.TransitionStatus(context.Background(), barberActor(barberID), uuid.New(), "confirmed", nil)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestTransitionStatusLostRace(t *testing.T) {
	barberID := uuid.New()
	repo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, BarberID: barberID, Status: entity.AppointmentStatusPending}, nil
		},
		updateStatus: func(id uuid.UUID, from, to entity.AppointmentStatus, note *string) (int64, error) {
			return 0, nil
		},
	}
	uc := NewAppointmentLifecycleUsecase(testDB(), testLogger(), repo)

	_, err := uc.TransitionStatus(context.Background(), barberActor(barberID), uuid.New(), "cancelled", nil)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestTransitionStatusNotFound(t *testing.T) {
	repo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) { return nil, nil },
	}
	uc := NewAppointmentLifecycleUsecase(testDB(), testLogger(), repo)

	_, err := uc.TransitionStatus(context.Background(), adminActor(), uuid.New(), "confirmed", nil)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAttachPhotosInvalidKind(t *testing.T) {
	uc := NewAppointmentLifecycleUsecase(testDB(), testLogger(), &stubAppointmentRepo{})

	_, err := uc.AttachPhotos(context.Background(), adminActor(), uuid.New(), &dto.AttachPhotosRequest{
		Kind:   "during",
		Photos: []dto.PhotoRequest{{URL: "https://example.com/1.jpg"}},
	})
	assert.ErrorIs(t, err, ErrInvalidPhotoKind)
}

func TestGetBarberAppointmentsInvalidFilter(t *testing.T) {
	uc := NewAppointmentLifecycleUsecase(testDB(), testLogger(), &stubAppointmentRepo{})

	_, err := uc.GetBarberAppointments(context.Background(), uuid.New(), "finished")
	assert.ErrorIs(t, err, ErrInvalidStatusFilter)
}
