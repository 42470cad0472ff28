package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// Response DTOs

type ReviewResponse struct {
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BarberReviewResponse is one entry in a barber's public review feed
type BarberReviewResponse struct {
	AppointmentID uuid.UUID            `json:"appointment_id"`
	Customer      *UserSummaryResponse `json:"customer,omitempty"`
	Services      []string             `json:"services"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Review        ReviewResponse       `json:"review"`
}

type BarberReviewListResponse struct {
	Reviews       []BarberReviewResponse `json:"reviews"`
	Total         int64                  `json:"total"`
	AverageRating float64                `json:"average_rating"`
	CurrentPage   int                    `json:"current_page"`
	TotalPages    int                    `json:"total_pages"`
}

// CustomerReviewResponse is one of the caller's own past reviews
type CustomerReviewResponse struct {
	AppointmentID uuid.UUID            `json:"appointment_id"`
	Barber        *UserSummaryResponse `json:"barber,omitempty"`
	Services      []string             `json:"services"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Review        ReviewResponse       `json:"review"`
}

type CustomerReviewListResponse struct {
	Reviews []CustomerReviewResponse `json:"reviews"`
	Total   int                      `json:"total"`
}
