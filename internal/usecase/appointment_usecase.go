package usecase

import (
	"context"

	"go-barber-booking/internal/converter"
	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/domain/repository"
	"go-barber-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AppointmentUsecase serves the reads that are not bound to a single
// role: the detail view with its ordered access rule, and the public
// feed of completed appointments.
type AppointmentUsecase interface {
	GetAppointment(ctx context.Context, actor service.Actor, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	GetCompletedAppointments(ctx context.Context, barberID *uuid.UUID) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// GetAppointment loads one appointment and applies the read-access rule:
// completed appointments are public, everything else is visible to the
// participants and administrators only.
func (u *appointmentUsecase) GetAppointment(ctx context.Context, actor service.Actor, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := service.CanViewAppointment(actor, appointment); err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// GetCompletedAppointments is the public showcase feed, optionally
// narrowed to one barber
func (u *appointmentUsecase) GetCompletedAppointments(ctx context.Context, barberID *uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindCompleted(u.db.WithContext(ctx), barberID)
	if err != nil {
		u.log.Warnf("Failed to find completed appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
