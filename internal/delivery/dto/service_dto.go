package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceRequest struct {
	BarberID    uuid.UUID       `json:"barber_id" validate:"omitempty"` // admins set this; barbers create for themselves
	Name        string          `json:"name" validate:"required,min=2,max=255"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Duration    int             `json:"duration" validate:"required,min=1"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=2,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Duration    *int             `json:"duration" validate:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty"`
	IsActive    *bool            `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type ServiceResponse struct {
	ID          uuid.UUID            `json:"id"`
	Barber      *UserSummaryResponse `json:"barber,omitempty"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Duration    int                  `json:"duration"`
	Price       decimal.Decimal      `json:"price"`
	IsActive    bool                 `json:"is_active"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}
