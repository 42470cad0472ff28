package usecase

import (
	"context"
	"errors"
	"time"

	"go-barber-booking/internal/converter"
	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/delivery/http/middleware"
	"go-barber-booking/internal/domain/entity"
	"go-barber-booking/internal/domain/repository"
	"go-barber-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrAppointmentNotOwned     = errors.New("appointment does not belong to you")
	ErrBarberNotFound          = errors.New("barber not found or inactive")
	ErrInvalidServiceSelection = errors.New("one or more selected services are invalid or not offered by this barber")
	ErrInvalidDateFormat       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidStatusFilter     = errors.New("invalid status filter")
)

type CustomerBookingUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, statusFilter string) (*dto.AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
}

type customerBookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	serviceRepo     repository.ServiceRepository
	userRepo        repository.UserRepository
}

func NewCustomerBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	serviceRepo repository.ServiceRepository,
	userRepo repository.UserRepository,
) CustomerBookingUsecase {
	return &customerBookingUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		userRepo:        userRepo,
	}
}

// CreateAppointment validates a booking request and persists the
// appointment with its priced line items.
//
// Flow:
// 1. Resolve the barber; must exist, hold the barber role and be active
// 2. Resolve selected services against the barber's active catalog;
//    every submitted id must resolve (duplicates in the request are fine)
// 3. Snapshot prices and compute the total
// 4. Insert the appointment with status pending, all in one transaction
func (u *customerBookingUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	customerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	// Step 1: barber must be an active barber
	barber, err := u.userRepo.FindActiveBarberByID(u.db.WithContext(ctx), req.BarberID)
	if err != nil {
		u.log.Warnf("Failed to find barber %s: %+v", req.BarberID, err)
		return nil, err
	}
	if barber == nil {
		return nil, ErrBarberNotFound
	}

	// Step 2: requested service ids must be a subset of the barber's
	// active catalog. Membership is per id, so a duplicated id in the
	// request does not fail the count.
	requested := make([]uuid.UUID, 0, len(req.Services))
	seen := make(map[uuid.UUID]bool, len(req.Services))
	for _, item := range req.Services {
		if !seen[item.ServiceID] {
			seen[item.ServiceID] = true
			requested = append(requested, item.ServiceID)
		}
	}

	catalog, err := u.serviceRepo.FindActiveByIDs(u.db.WithContext(ctx), requested, req.BarberID)
	if err != nil {
		u.log.Warnf("Failed to resolve services for barber %s: %+v", req.BarberID, err)
		return nil, err
	}

	resolved := make(map[uuid.UUID]bool, len(catalog))
	for _, svc := range catalog {
		resolved[svc.ID] = true
	}
	for _, id := range requested {
		if !resolved[id] {
			return nil, ErrInvalidServiceSelection
		}
	}

	// Step 3: price the line items against the resolved catalog
	items := make([]entity.AppointmentItem, len(req.Services))
	for i, item := range req.Services {
		items[i] = entity.AppointmentItem{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
		}
	}

	pricedItems, totalPrice, err := service.PriceItems(catalog, items)
	if err != nil {
		// The subset check above already covered this; treat it as a
		// selection failure rather than an internal error.
		u.log.Warnf("Price computation failed for barber %s: %+v", req.BarberID, err)
		return nil, ErrInvalidServiceSelection
	}

	// Step 4: persist appointment and items atomically
	appointment := &entity.Appointment{
		CustomerID: customerID,
		BarberID:   req.BarberID,
		Date:       date,
		Time:       req.Time,
		TotalPrice: totalPrice,
		Status:     entity.AppointmentStatusPending,
		Items:      pricedItems,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Errorf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Reload with customer/barber/service summaries for the response
	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%s, barber=%s, total=%s", appointment.ID, req.BarberID, totalPrice)
	return converter.AppointmentToResponse(full), nil
}

// GetMyAppointments returns all appointments of the logged-in customer,
// optionally filtered by status
func (u *customerBookingUsecase) GetMyAppointments(ctx context.Context, statusFilter string) (*dto.AppointmentListResponse, error) {
	customerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	status := entity.AppointmentStatus(statusFilter)
	if statusFilter != "" && !status.IsValid() {
		return nil, ErrInvalidStatusFilter
	}

	appointments, err := u.appointmentRepo.FindByCustomerID(u.db.WithContext(ctx), customerID, status)
	if err != nil {
		u.log.Warnf("Failed to find appointments for customer %s: %+v", customerID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// CancelAppointment is the customer-initiated cancellation. It is gated
// by customer ownership and goes through the same transition table as
// the barber paths: only pending and confirmed appointments can be
// cancelled.
func (u *customerBookingUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	customerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.CustomerID != customerID {
		return nil, ErrAppointmentNotOwned
	}
	if !appointment.Status.CanTransitionTo(entity.AppointmentStatusCancelled) {
		return nil, ErrIllegalTransition
	}

	rows, err := u.appointmentRepo.UpdateStatus(
		u.db.WithContext(ctx),
		appointmentID,
		appointment.Status,
		entity.AppointmentStatusCancelled,
		nil,
	)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if rows == 0 {
		// Status changed between read and update; the move we validated
		// no longer applies.
		return nil, ErrIllegalTransition
	}

	u.log.Infof("Appointment cancelled by customer: id=%s", appointmentID)

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	return converter.AppointmentToResponse(full), nil
}
