package usecase

import (
	"context"
	"testing"
	"time"

	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedAppointment(customerID uuid.UUID) *entity.Appointment {
	return &entity.Appointment{
		ID:         uuid.New(),
		CustomerID: customerID,
		BarberID:   uuid.New(),
		Status:     entity.AppointmentStatusCompleted,
	}
}

func TestAddReviewRatingBounds(t *testing.T) {
	uc := NewReviewUsecase(testDB(), testLogger(), &stubAppointmentRepo{}, &stubReviewRepo{}, testRatingCache())

	for _, rating := range []int{0, 6, -1} {
		_, err := uc.AddOrUpdateReview(authedContext(uuid.New()), uuid.New(), &dto.ReviewRequest{
			Rating:  rating,
			Comment: "great cut",
		})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
}

func TestAddReviewBlankComment(t *testing.T) {
	uc := NewReviewUsecase(testDB(), testLogger(), &stubAppointmentRepo{}, &stubReviewRepo{}, testRatingCache())

	_, err := uc.AddOrUpdateReview(authedContext(uuid.New()), uuid.New(), &dto.ReviewRequest{
		Rating:  5,
		Comment: "   \t  ",
	})
	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestAddReviewNotOwned(t *testing.T) {
	repo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) {
			return completedAppointment(uuid.New()), nil
		},
	}
	uc := NewReviewUsecase(testDB(), testLogger(), repo, &stubReviewRepo{}, testRatingCache())

	_, err := uc.AddOrUpdateReview(authedContext(uuid.New()), uuid.New(), &dto.ReviewRequest{
		Rating:  4,
		Comment: "nice",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotOwned)
}

func TestAddReviewNotCompleted(t *testing.T) {
	customerID := uuid.New()
	repo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, CustomerID: customerID, Status: entity.AppointmentStatusConfirmed}, nil
		},
	}
	uc := NewReviewUsecase(testDB(), testLogger(), repo, &stubReviewRepo{}, testRatingCache())

	_, err := uc.AddOrUpdateReview(authedContext(customerID), uuid.New(), &dto.ReviewRequest{
		Rating:  4,
		Comment: "nice",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotCompleted)
}

func TestAddReviewReplacesInPlace(t *testing.T) {
	customerID := uuid.New()
	appointment := completedAppointment(customerID)
	createdAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	stored := &entity.Review{
		AppointmentID: appointment.ID,
		Rating:        2,
		Comment:       "rushed",
		CreatedAt:     createdAt,
	}

	appointmentRepo := &stubAppointmentRepo{
		findByID: func(id uuid.UUID) (*entity.Appointment, error) { return appointment, nil },
	}
	reviewRepo := &stubReviewRepo{
		upsert: func(review *entity.Review) error {
			// Replacement keeps the original created_at
			stored.Rating = review.Rating
			stored.Comment = review.Comment
			stored.UpdatedAt = time.Now()
			return nil
		},
		findByAppointmentID: func(appointmentID uuid.UUID) (*entity.Review, error) {
			return stored, nil
		},
	}
	uc := NewReviewUsecase(testDB(), testLogger(), appointmentRepo, reviewRepo, testRatingCache())

	resp, err := uc.AddOrUpdateReview(authedContext(customerID), appointment.ID, &dto.ReviewRequest{
		Rating:  5,
		Comment: "  came back, much better  ",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Rating)
	assert.Equal(t, "came back, much better", resp.Comment)
	assert.Equal(t, createdAt, resp.CreatedAt)
}

func TestGetBarberReviewsNoReviews(t *testing.T) {
	reviewRepo := &stubReviewRepo{
		findReviewedByBarber: func(barberID uuid.UUID, limit, offset int) ([]entity.Appointment, int64, error) {
			return nil, 0, nil
		},
		ratingSummary: func(barberID uuid.UUID) (float64, int64, error) {
			return 0, 0, nil
		},
	}
	uc := NewReviewUsecase(testDB(), testLogger(), &stubAppointmentRepo{}, reviewRepo, testRatingCache())

	resp, err := uc.GetBarberReviews(context.Background(), uuid.New(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Reviews)
	assert.Zero(t, resp.Total)
	assert.Zero(t, resp.AverageRating)
	assert.Zero(t, resp.TotalPages)
}

func TestGetBarberReviewsPagination(t *testing.T) {
	var gotLimit, gotOffset int

	reviewRepo := &stubReviewRepo{
		findReviewedByBarber: func(barberID uuid.UUID, limit, offset int) ([]entity.Appointment, int64, error) {
			gotLimit, gotOffset = limit, offset
			return []entity.Appointment{}, 25, nil
		},
		ratingSummary: func(barberID uuid.UUID) (float64, int64, error) {
			return 4.25, 25, nil
		},
	}
	uc := NewReviewUsecase(testDB(), testLogger(), &stubAppointmentRepo{}, reviewRepo, testRatingCache())

	resp, err := uc.GetBarberReviews(context.Background(), uuid.New(), 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 20, gotOffset)
	assert.Equal(t, int64(25), resp.Total)
	assert.Equal(t, 3, resp.CurrentPage)
	assert.Equal(t, 3, resp.TotalPages)
	// Average rounds to one decimal place
	assert.InDelta(t, 4.3, resp.AverageRating, 1e-9)
}

func TestGetBarberReviewsDefaultsPage(t *testing.T) {
	var gotOffset int
	reviewRepo := &stubReviewRepo{
		findReviewedByBarber: func(barberID uuid.UUID, limit, offset int) ([]entity.Appointment, int64, error) {
			gotOffset = offset
			return nil, 0, nil
		},
		ratingSummary: func(barberID uuid.UUID) (float64, int64, error) { return 0, 0, nil },
	}
	uc := NewReviewUsecase(testDB(), testLogger(), &stubAppointmentRepo{}, reviewRepo, testRatingCache())

	_, err := uc.GetBarberReviews(context.Background(), uuid.New(), 0, -5)
	require.NoError(t, err)
	assert.Zero(t, gotOffset)
}
