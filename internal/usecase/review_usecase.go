package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"go-barber-booking/internal/converter"
	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/delivery/http/middleware"
	"go-barber-booking/internal/domain/entity"
	"go-barber-booking/internal/domain/repository"
	"go-barber-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyComment  = errors.New("comment must not be empty")
)

type ReviewUsecase interface {
	AddOrUpdateReview(ctx context.Context, appointmentID uuid.UUID, req *dto.ReviewRequest) (*dto.ReviewResponse, error)
	GetBarberReviews(ctx context.Context, barberID uuid.UUID, page, limit int) (*dto.BarberReviewListResponse, error)
	GetMyReviews(ctx context.Context) (*dto.CustomerReviewListResponse, error)
}

type reviewUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	reviewRepo      repository.ReviewRepository
	ratingCache     *service.RatingCache
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	reviewRepo repository.ReviewRepository,
	ratingCache *service.RatingCache,
) ReviewUsecase {
	return &reviewUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		reviewRepo:      reviewRepo,
		ratingCache:     ratingCache,
	}
}

// AddOrUpdateReview writes the single review slot of an appointment.
// Only the appointment's customer may write, only once the appointment
// is completed. A second write replaces rating and comment in place,
// keeping the original created_at.
func (u *reviewUsecase) AddOrUpdateReview(ctx context.Context, appointmentID uuid.UUID, req *dto.ReviewRequest) (*dto.ReviewResponse, error) {
	customerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, ErrEmptyComment
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.CustomerID != customerID {
		return nil, ErrAppointmentNotOwned
	}
	if !appointment.IsCompleted() {
		return nil, ErrAppointmentNotCompleted
	}

	review := &entity.Review{
		AppointmentID: appointmentID,
		Rating:        req.Rating,
		Comment:       comment,
	}

	if err := u.reviewRepo.Upsert(u.db.WithContext(ctx), review); err != nil {
		u.log.Warnf("Failed to upsert review for appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	// Drop the cached aggregate; the next feed read recomputes it
	if err := u.ratingCache.Invalidate(ctx, appointment.BarberID); err != nil {
		u.log.Warnf("Failed to invalidate rating cache for barber %s (non-fatal): %+v", appointment.BarberID, err)
	}

	stored, err := u.reviewRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil || stored == nil {
		u.log.Warnf("Failed to reload review for appointment %s: %+v", appointmentID, err)
		return converter.ReviewToResponse(review), nil
	}

	u.log.Infof("Review written: appointment=%s, rating=%d", appointmentID, req.Rating)
	return converter.ReviewToResponse(stored), nil
}

// GetBarberReviews returns the paginated public review feed of a barber
// together with the mean rating over all of the barber's reviews,
// rounded to one decimal place. A barber with no reviews gets total 0
// and average 0.
func (u *reviewUsecase) GetBarberReviews(ctx context.Context, barberID uuid.UUID, page, limit int) (*dto.BarberReviewListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	appointments, total, err := u.reviewRepo.FindReviewedByBarber(u.db.WithContext(ctx), barberID, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find reviews for barber %s: %+v", barberID, err)
		return nil, err
	}

	summary, err := u.ratingSummary(ctx, barberID)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return &dto.BarberReviewListResponse{
		Reviews:       converter.ReviewedAppointmentsToBarberFeed(appointments),
		Total:         total,
		AverageRating: summary.Average,
		CurrentPage:   page,
		TotalPages:    totalPages,
	}, nil
}

// GetMyReviews returns the logged-in customer's own reviews
func (u *reviewUsecase) GetMyReviews(ctx context.Context) (*dto.CustomerReviewListResponse, error) {
	customerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.reviewRepo.FindReviewedByCustomer(u.db.WithContext(ctx), customerID)
	if err != nil {
		u.log.Warnf("Failed to find reviews for customer %s: %+v", customerID, err)
		return nil, err
	}

	reviews := converter.ReviewedAppointmentsToCustomerFeed(appointments)
	return &dto.CustomerReviewListResponse{
		Reviews: reviews,
		Total:   len(reviews),
	}, nil
}

// ratingSummary reads the cached aggregate or recomputes it from the
// database. Cache failures degrade to a database read, never an error.
func (u *reviewUsecase) ratingSummary(ctx context.Context, barberID uuid.UUID) (service.RatingSummary, error) {
	cached, err := u.ratingCache.Get(ctx, barberID)
	if err != nil {
		u.log.Warnf("Failed to read rating cache for barber %s (non-fatal): %+v", barberID, err)
	}
	if cached != nil {
		return *cached, nil
	}

	average, count, err := u.reviewRepo.RatingSummary(u.db.WithContext(ctx), barberID)
	if err != nil {
		u.log.Warnf("Failed to compute rating summary for barber %s: %+v", barberID, err)
		return service.RatingSummary{}, err
	}

	summary := service.RatingSummary{
		Average: math.Round(average*10) / 10,
		Total:   count,
	}

	if err := u.ratingCache.Set(ctx, barberID, summary); err != nil {
		u.log.Warnf("Failed to store rating cache for barber %s (non-fatal): %+v", barberID, err)
	}
	return summary, nil
}
