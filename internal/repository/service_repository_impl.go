package repository

import (
	"errors"

	"go-barber-booking/internal/domain/entity"
	domainRepo "go-barber-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceRepository struct{}

func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) Create(db *gorm.DB, service *entity.Service) error {
	return db.Create(service).Error
}

func (r *serviceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error) {
	var service entity.Service
	err := db.Preload("Barber").Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) FindAll(db *gorm.DB) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Preload("Barber").Order("name ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindByBarberID(db *gorm.DB, barberID uuid.UUID) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Where("barber_id = ?", barberID).
		Order("name ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindActiveByIDs(db *gorm.DB, ids []uuid.UUID, barberID uuid.UUID) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Where("id IN ? AND barber_id = ? AND is_active = ?", ids, barberID, true).
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) Update(db *gorm.DB, service *entity.Service) error {
	return db.Save(service).Error
}

func (r *serviceRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Service{})
	return result.RowsAffected, result.Error
}
