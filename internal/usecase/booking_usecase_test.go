package usecase

import (
	"testing"

	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAppointmentBarberNotFound(t *testing.T) {
	userRepo := &stubUserRepo{
		findActiveBarberByID: func(id uuid.UUID) (*entity.User, error) { return nil, nil },
	}
	uc := NewCustomerBookingUsecase(testDB(), testLogger(), &stubAppointmentRepo{}, &stubServiceRepo{}, userRepo)

	_, err := uc.CreateAppointment(authedContext(uuid.New()), &dto.CreateAppointmentRequest{
		BarberID: uuid.New(),
		Date:     "2026-09-01",
		Time:     "10:00",
		Services: []dto.LineItemRequest{{ServiceID: uuid.New()}},
	})

	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestCreateAppointmentInvalidDate(t *testing.T) {
	uc := NewCustomerBookingUsecase(testDB(), testLogger(), &stubAppointmentRepo{}, &stubServiceRepo{}, &stubUserRepo{})

	_, err := uc.CreateAppointment(authedContext(uuid.New()), &dto.CreateAppointmentRequest{
		BarberID: uuid.New(),
		Date:     "01-09-2026",
		Time:     "10:00",
		Services: []dto.LineItemRequest{{ServiceID: uuid.New()}},
	})

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestCreateAppointmentUnresolvedService(t *testing.T) {
	barberID := uuid.New()
	knownID := uuid.New()
	unknownID := uuid.New()

	userRepo := &stubUserRepo{
		findActiveBarberByID: func(id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: barberID, RoleID: entity.RoleIDBarber, IsActive: true}, nil
		},
	}
	serviceRepo := &stubServiceRepo{
		findActiveByIDs: func(ids []uuid.UUID, _ uuid.UUID) ([]entity.Service, error) {
			// Only one of the two requested ids resolves
			return []entity.Service{{ID: knownID, BarberID: barberID}}, nil
		},
	}
	uc := NewCustomerBookingUsecase(testDB(), testLogger(), &stubAppointmentRepo{}, serviceRepo, userRepo)

	_, err := uc.CreateAppointment(authedContext(uuid.New()), &dto.CreateAppointmentRequest{
		BarberID: barberID,
		Date:     "2026-09-01",
		Time:     "10:00",
		Services: []dto.LineItemRequest{{ServiceID: knownID}, {ServiceID: unknownID}},
	})

	assert.ErrorIs(t, err, ErrInvalidServiceSelection)
}

func TestGetMyAppointmentsStatusFilter(t *testing.T) {
	customerID := uuid.New()
	var gotStatus entity.AppointmentStatus

	repo := &stubAppointmentRepo{
		findByCust: func(id uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error) {
			gotStatus = status
			return []entity.Appointment{{ID: uuid.New(), CustomerID: id, Status: status}}, nil
		},
	}
	uc := NewCustomerBookingUsecase(testDB(), testLogger(), repo, &stubServiceRepo{}, &stubUserRepo{})

	list, err := uc.GetMyAppointments(authedContext(customerID), "pending")
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusPending, gotStatus)
	assert.Equal(t, 1, list.Total)

	_, err = uc.GetMyAppointments(authedContext(customerID), "done")
	assert.ErrorIs(t, err, ErrInvalidStatusFilter)
}

func TestCancelAppointment(t *testing.T) {
	customerID := uuid.New()
	appointmentID := uuid.New()
	status := entity.AppointmentStatusPending

	repo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, CustomerID: customerID, Status: status}, nil
		},
		updateStatus: func(id uuid.UUID, from, to entity.AppointmentStatus, note *string) (int64, error) {
			assert.Equal(t, entity.AppointmentStatusPending, from)
			assert.Equal(t, entity.AppointmentStatusCancelled, to)
			status = to
			return 1, nil
		},
	}
	uc := NewCustomerBookingUsecase(testDB(), testLogger(), repo, &stubServiceRepo{}, &stubUserRepo{})

	resp, err := uc.CancelAppointment(authedContext(customerID), appointmentID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCancelled), resp.Status)
}

func TestCancelAppointmentNotOwned(t *testing.T) {
	repo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, CustomerID: uuid.New(), Status: entity.AppointmentStatusPending}, nil
		},
	}
	uc := NewCustomerBookingUsecase(testDB(), testLogger(), repo, &stubServiceRepo{}, &stubUserRepo{})

	_, err := uc.CancelAppointment(authedContext(uuid.New()), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotOwned)
}

func TestCancelAppointmentTerminal(t *testing.T) {
	customerID := uuid.New()
	repo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, CustomerID: customerID, Status: entity.AppointmentStatusCompleted}, nil
		},
	}
	uc := NewCustomerBookingUsecase(testDB(), testLogger(), repo, &stubServiceRepo{}, &stubUserRepo{})

	_, err := uc.CancelAppointment(authedContext(customerID), uuid.New())
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCancelAppointmentLostRace(t *testing.T) {
	customerID := uuid.New()
	repo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, CustomerID: customerID, Status: entity.AppointmentStatusConfirmed}, nil
		},
		updateStatus: func(id uuid.UUID, from, to entity.AppointmentStatus, note *string) (int64, error) {
			// Someone else moved the appointment first
			return 0, nil
		},
	}
	uc := NewCustomerBookingUsecase(testDB(), testLogger(), repo, &stubServiceRepo{}, &stubUserRepo{})

	_, err := uc.CancelAppointment(authedContext(customerID), uuid.New())
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCancelAppointmentNotFound(t *testing.T) {
	repo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) { return nil, nil },
	}
	uc := NewCustomerBookingUsecase(testDB(), testLogger(), repo, &stubServiceRepo{}, &stubUserRepo{})

	_, err := uc.CancelAppointment(authedContext(uuid.New()), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
