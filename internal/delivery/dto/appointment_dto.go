package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type LineItemRequest struct {
	ServiceID uuid.UUID `json:"service_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"omitempty,min=1"`
}

type CreateAppointmentRequest struct {
	BarberID uuid.UUID         `json:"barber_id" validate:"required"`
	Date     string            `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string            `json:"time" validate:"required,datetime=15:04"`
	Services []LineItemRequest `json:"services" validate:"required,min=1,dive"`
}

type TransitionStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=confirmed completed cancelled"`
	Note   *string `json:"note" validate:"omitempty,max=1000"`
}

type PhotoRequest struct {
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type AttachPhotosRequest struct {
	Kind   string         `json:"kind" validate:"required,oneof=before after"`
	Photos []PhotoRequest `json:"photos" validate:"required,min=1,dive"`
}

// UpdateAppointmentRequest is the admin-only full update. Fields outside
// this allow-list are rejected at decode time.
type UpdateAppointmentRequest struct {
	Date     *string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time     *string           `json:"time" validate:"omitempty,datetime=15:04"`
	Status   *string           `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Services []LineItemRequest `json:"services" validate:"omitempty,min=1,dive"`
}

// Response DTOs

type AppointmentItemResponse struct {
	ServiceID uuid.UUID       `json:"service_id"`
	Name      string          `json:"name,omitempty"`
	Duration  int             `json:"duration,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type PhotoResponse struct {
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type PhotosResponse struct {
	Before []PhotoResponse `json:"before"`
	After  []PhotoResponse `json:"after"`
}

type AppointmentResponse struct {
	ID         uuid.UUID                 `json:"id"`
	Customer   *UserSummaryResponse      `json:"customer,omitempty"`
	Barber     *UserSummaryResponse      `json:"barber,omitempty"`
	Date       string                    `json:"date"`
	Time       string                    `json:"time"`
	Services   []AppointmentItemResponse `json:"services"`
	TotalPrice decimal.Decimal           `json:"total_price"`
	Status     string                    `json:"status"`
	Note       string                    `json:"note,omitempty"`
	Photos     PhotosResponse            `json:"photos"`
	Review     *ReviewResponse           `json:"review,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
	UpdatedAt  time.Time                 `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
