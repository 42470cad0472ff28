package repository

import (
	"errors"
	"time"

	"go-barber-booking/internal/domain/entity"
	domainRepo "go-barber-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

// Upsert relies on the unique index on appointment_id: a second write
// replaces rating and comment, bumps updated_at and keeps created_at.
func (r *reviewRepository) Upsert(db *gorm.DB, review *entity.Review) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "appointment_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"rating":     review.Rating,
			"comment":    review.Comment,
			"updated_at": time.Now(),
		}),
	}).Create(review).Error
}

func (r *reviewRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	err := db.Where("appointment_id = ?", appointmentID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindReviewedByBarber(db *gorm.DB, barberID uuid.UUID, limit, offset int) ([]entity.Appointment, int64, error) {
	base := db.Model(&entity.Appointment{}).
		Joins("JOIN reviews ON reviews.appointment_id = appointments.id").
		Where("appointments.barber_id = ? AND appointments.status = ?", barberID, entity.AppointmentStatusCompleted)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appointments []entity.Appointment
	err := withDetails(db).
		Joins("JOIN reviews ON reviews.appointment_id = appointments.id").
		Where("appointments.barber_id = ? AND appointments.status = ?", barberID, entity.AppointmentStatusCompleted).
		Order("reviews.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *reviewRepository) FindReviewedByCustomer(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := withDetails(db).
		Joins("JOIN reviews ON reviews.appointment_id = appointments.id").
		Where("appointments.customer_id = ? AND appointments.status = ?", customerID, entity.AppointmentStatusCompleted).
		Order("reviews.created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// RatingSummary averages over every review of the barber, not just one
// page. COALESCE keeps the zero-review case at 0 instead of NULL.
func (r *reviewRepository) RatingSummary(db *gorm.DB, barberID uuid.UUID) (float64, int64, error) {
	var result struct {
		Average float64
		Total   int64
	}
	err := db.Model(&entity.Review{}).
		Select("COALESCE(AVG(reviews.rating), 0) AS average, COUNT(reviews.id) AS total").
		Joins("JOIN appointments ON appointments.id = reviews.appointment_id").
		Where("appointments.barber_id = ?", barberID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Average, result.Total, nil
}
