package repository

import (
	"go-barber-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindByIDForUpdate loads the appointment row under a row lock.
	// Callers must run it inside a transaction.
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error)
	FindByBarberID(db *gorm.DB, barberID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindCompleted(db *gorm.DB, barberID *uuid.UUID) ([]entity.Appointment, error)
	// UpdateStatus moves an appointment from one status to another with a
	// conditional UPDATE. Returns affected rows: 0 means the appointment
	// was no longer in the expected status (lost race or stale read).
	UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus, note *string) (int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	// ReplaceItems swaps the full line-item set of an appointment.
	ReplaceItems(db *gorm.DB, appointmentID uuid.UUID, items []entity.AppointmentItem) error
	AppendPhotos(db *gorm.DB, photos []entity.AppointmentPhoto) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
