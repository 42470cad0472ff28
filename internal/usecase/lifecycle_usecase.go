package usecase

import (
	"context"
	"errors"

	"go-barber-booking/internal/converter"
	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/domain/entity"
	"go-barber-booking/internal/domain/repository"
	"go-barber-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrIllegalTransition       = errors.New("illegal status transition")
	ErrInvalidStatus           = errors.New("unknown appointment status")
	ErrAppointmentNotCompleted = errors.New("appointment is not completed")
	ErrInvalidPhotoKind        = errors.New("photo kind must be before or after")
)

// AppointmentLifecycleUsecase owns the status field and everything gated
// by it: transitions, the provider note and photo attachment. All
// operations require the owning barber or an administrator.
type AppointmentLifecycleUsecase interface {
	GetBarberAppointments(ctx context.Context, barberID uuid.UUID, statusFilter string) (*dto.AppointmentListResponse, error)
	TransitionStatus(ctx context.Context, actor service.Actor, appointmentID uuid.UUID, newStatus string, note *string) (*dto.AppointmentResponse, error)
	AttachPhotos(ctx context.Context, actor service.Actor, appointmentID uuid.UUID, req *dto.AttachPhotosRequest) (*dto.AppointmentResponse, error)
}

type appointmentLifecycleUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentLifecycleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) AppointmentLifecycleUsecase {
	return &appointmentLifecycleUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// GetBarberAppointments returns all appointments of one barber,
// optionally filtered by status
func (u *appointmentLifecycleUsecase) GetBarberAppointments(ctx context.Context, barberID uuid.UUID, statusFilter string) (*dto.AppointmentListResponse, error) {
	status := entity.AppointmentStatus(statusFilter)
	if statusFilter != "" && !status.IsValid() {
		return nil, ErrInvalidStatusFilter
	}

	appointments, err := u.appointmentRepo.FindByBarberID(u.db.WithContext(ctx), barberID, status)
	if err != nil {
		u.log.Warnf("Failed to find appointments for barber %s: %+v", barberID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// TransitionStatus moves an appointment along the lifecycle. The move
// must be present in the transition table; anything else fails with
// ErrIllegalTransition, including any move out of a terminal state. An
// optional note overwrites the appointment's note.
func (u *appointmentLifecycleUsecase) TransitionStatus(ctx context.Context, actor service.Actor, appointmentID uuid.UUID, newStatus string, note *string) (*dto.AppointmentResponse, error) {
	target := entity.AppointmentStatus(newStatus)
	if !target.IsValid() {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !service.OwnerOrAdmin(actor, appointment.BarberID) {
		return nil, ErrAppointmentNotOwned
	}
	if !appointment.Status.CanTransitionTo(target) {
		return nil, ErrIllegalTransition
	}

	rows, err := u.appointmentRepo.UpdateStatus(u.db.WithContext(ctx), appointmentID, appointment.Status, target, note)
	if err != nil {
		u.log.Warnf("Failed to transition appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if rows == 0 {
		// A concurrent transition won; the status we validated against
		// is gone.
		return nil, ErrIllegalTransition
	}

	u.log.Infof("Appointment transitioned: id=%s, %s -> %s", appointmentID, appointment.Status, target)

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	return converter.AppointmentToResponse(full), nil
}

// AttachPhotos appends photos to one of the before/after sequences.
// Photos exist only on completed appointments; the status is re-checked
// under a row lock so a concurrent transition cannot slip photos onto a
// non-completed appointment, and concurrent appends keep stable
// positions.
func (u *appointmentLifecycleUsecase) AttachPhotos(ctx context.Context, actor service.Actor, appointmentID uuid.UUID, req *dto.AttachPhotosRequest) (*dto.AppointmentResponse, error) {
	kind := entity.PhotoKind(req.Kind)
	if !kind.IsValid() {
		return nil, ErrInvalidPhotoKind
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByIDForUpdate(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to lock appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !service.OwnerOrAdmin(actor, appointment.BarberID) {
		return nil, ErrAppointmentNotOwned
	}
	if !appointment.IsCompleted() {
		return nil, ErrAppointmentNotCompleted
	}

	var count int64
	if err := tx.Model(&entity.AppointmentPhoto{}).
		Where("appointment_id = ? AND kind = ?", appointmentID, kind).
		Count(&count).Error; err != nil {
		u.log.Warnf("Failed to count photos for appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	photos := make([]entity.AppointmentPhoto, len(req.Photos))
	for i, photo := range req.Photos {
		photos[i] = entity.AppointmentPhoto{
			AppointmentID: appointmentID,
			Kind:          kind,
			URL:           photo.URL,
			Description:   photo.Description,
			Position:      int(count) + i,
		}
	}

	if err := u.appointmentRepo.AppendPhotos(tx, photos); err != nil {
		u.log.Warnf("Failed to append photos to appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Photos attached: appointment=%s, kind=%s, count=%d", appointmentID, kind, len(photos))

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	return converter.AppointmentToResponse(full), nil
}
