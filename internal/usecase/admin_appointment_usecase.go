package usecase

import (
	"context"
	"time"

	"go-barber-booking/internal/converter"
	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/domain/entity"
	"go-barber-booking/internal/domain/repository"
	"go-barber-booking/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdminAppointmentUsecase covers the administrator-only operations:
// the global listing, the full-field update and hard deletion.
type AdminAppointmentUsecase interface {
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error
}

type adminAppointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	serviceRepo     repository.ServiceRepository
}

func NewAdminAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	serviceRepo repository.ServiceRepository,
) AdminAppointmentUsecase {
	return &adminAppointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
	}
}

func (u *adminAppointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointment applies an allow-listed partial update. A status
// change still goes through the transition table. A services change
// recomputes the total against the barber's current catalog.
func (u *adminAppointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
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

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		appointment.Date = date
	}
	if req.Time != nil {
		appointment.Time = *req.Time
	}

	if req.Status != nil {
		target := entity.AppointmentStatus(*req.Status)
		if !target.IsValid() {
			return nil, ErrInvalidStatus
		}
		if target != appointment.Status {
			if !appointment.Status.CanTransitionTo(target) {
				return nil, ErrIllegalTransition
			}
			appointment.Status = target
		}
	}

	if len(req.Services) > 0 {
		items, total, err := u.priceSelection(tx, appointment.BarberID, req.Services)
		if err != nil {
			return nil, err
		}
		if err := u.appointmentRepo.ReplaceItems(tx, appointmentID, items); err != nil {
			u.log.Warnf("Failed to replace items for appointment %s: %+v", appointmentID, err)
			return nil, err
		}
		appointment.TotalPrice = total
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment updated by admin: id=%s", appointmentID)

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	return converter.AppointmentToResponse(full), nil
}

func (u *adminAppointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	rows, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", appointmentID, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	u.log.Infof("Appointment deleted: id=%s", appointmentID)
	return nil
}

// priceSelection validates a replacement service selection against the
// barber's active catalog and prices it, same rules as appointment
// creation
func (u *adminAppointmentUsecase) priceSelection(db *gorm.DB, barberID uuid.UUID, selection []dto.LineItemRequest) ([]entity.AppointmentItem, decimal.Decimal, error) {
	requested := make([]uuid.UUID, 0, len(selection))
	seen := make(map[uuid.UUID]bool, len(selection))
	for _, item := range selection {
		if !seen[item.ServiceID] {
			seen[item.ServiceID] = true
			requested = append(requested, item.ServiceID)
		}
	}

	catalog, err := u.serviceRepo.FindActiveByIDs(db, requested, barberID)
	if err != nil {
		u.log.Warnf("Failed to resolve services for barber %s: %+v", barberID, err)
		return nil, decimal.Zero, err
	}

	resolved := make(map[uuid.UUID]bool, len(catalog))
	for _, svc := range catalog {
		resolved[svc.ID] = true
	}
	for _, id := range requested {
		if !resolved[id] {
			return nil, decimal.Zero, ErrInvalidServiceSelection
		}
	}

	items := make([]entity.AppointmentItem, len(selection))
	for i, item := range selection {
		items[i] = entity.AppointmentItem{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
		}
	}

	priced, total, err := service.PriceItems(catalog, items)
	if err != nil {
		return nil, decimal.Zero, ErrInvalidServiceSelection
	}
	return priced, total, nil
}
