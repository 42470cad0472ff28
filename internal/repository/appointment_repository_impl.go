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

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

// withDetails preloads the cross-referenced customer/barber/service
// summaries plus photos and review, in stable order.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("Barber").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Items.Service").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Review")
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := withDetails(db).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	query := withDetails(db).Where("customer_id = ?", customerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []entity.Appointment
	err := query.Order("date DESC, time DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByBarberID(db *gorm.DB, barberID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	query := withDetails(db).Where("barber_id = ?", barberID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []entity.Appointment
	err := query.Order("date DESC, time DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := withDetails(db).Order("date DESC, time DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindCompleted(db *gorm.DB, barberID *uuid.UUID) ([]entity.Appointment, error) {
	query := withDetails(db).Where("status = ?", entity.AppointmentStatusCompleted)
	if barberID != nil {
		query = query.Where("barber_id = ?", *barberID)
	}

	var appointments []entity.Appointment
	err := query.Order("date DESC, time DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus performs the transition as a conditional UPDATE guarded by
// the expected current status, so two racing transitions cannot both win.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus, note *string) (int64, error) {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if note != nil {
		updates["note"] = *note
	}

	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Customer", "Barber", "Items", "Photos", "Review").Save(appointment).Error
}

func (r *appointmentRepository) ReplaceItems(db *gorm.DB, appointmentID uuid.UUID, items []entity.AppointmentItem) error {
	if err := db.Where("appointment_id = ?", appointmentID).Delete(&entity.AppointmentItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].AppointmentID = appointmentID
	}
	return db.Create(&items).Error
}

func (r *appointmentRepository) AppendPhotos(db *gorm.DB, photos []entity.AppointmentPhoto) error {
	return db.Create(&photos).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Select(clause.Associations).Where("id = ?", id).Delete(&entity.Appointment{ID: id})
	return result.RowsAffected, result.Error
}
