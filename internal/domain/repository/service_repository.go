package repository

import (
	"go-barber-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error)
	FindAll(db *gorm.DB) ([]entity.Service, error)
	FindByBarberID(db *gorm.DB, barberID uuid.UUID) ([]entity.Service, error)
	// FindActiveByIDs resolves the given service ids against the active
	// catalog of one barber. Services owned by other barbers or inactive
	// services are simply absent from the result.
	FindActiveByIDs(db *gorm.DB, ids []uuid.UUID, barberID uuid.UUID) ([]entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
