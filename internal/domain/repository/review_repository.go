package repository

import (
	"go-barber-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	// Upsert inserts the review or, when the appointment already has one,
	// replaces rating and comment in place keeping the original created_at.
	Upsert(db *gorm.DB, review *entity.Review) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Review, error)
	// FindReviewedByBarber returns completed appointments of one barber
	// that carry a review, newest review first, paginated.
	FindReviewedByBarber(db *gorm.DB, barberID uuid.UUID, limit, offset int) ([]entity.Appointment, int64, error)
	FindReviewedByCustomer(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error)
	// RatingSummary returns the mean rating and review count for a barber.
	// A barber with no reviews yields (0, 0, nil).
	RatingSummary(db *gorm.DB, barberID uuid.UUID) (float64, int64, error)
}
