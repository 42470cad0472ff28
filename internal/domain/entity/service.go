package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service represents a single offering in a barber's catalog
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BarberID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"barber_id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Duration    int             `gorm:"not null" json:"duration"` // minutes
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive    bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Barber User `gorm:"foreignKey:BarberID" json:"barber,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
