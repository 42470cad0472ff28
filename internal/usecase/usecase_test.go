package usecase

import (
	"context"
	"io"
	"time"

	"go-barber-booking/internal/delivery/http/middleware"
	"go-barber-booking/internal/domain/entity"
	"go-barber-booking/internal/domain/repository"
	"go-barber-booking/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// testDB is a bare gorm handle. The stub repositories below never touch
// it; it only has to survive WithContext.
func testDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// testRatingCache points at a closed port. Every cache operation fails,
// which the review usecase treats as a miss.
func testRatingCache() *service.RatingCache {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})
	return service.NewRatingCache(client, time.Minute)
}

func authedContext(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}

// Stub repositories override only the methods a test exercises. Calling
// anything else panics, which is exactly what a test should do when the
// usecase reaches further than expected.

type stubAppointmentRepo struct {
	repository.AppointmentRepository

	findByID     func(id uuid.UUID) (*entity.Appointment, error)
	findByCust   func(customerID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error)
	findByBarber func(barberID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error)
	updateStatus func(id uuid.UUID, from, to entity.AppointmentStatus, note *string) (int64, error)
}

func (s *stubAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return s.findByID(id)
}

func (s *stubAppointmentRepo) FindByCustomerID(db *gorm.DB, customerID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	return s.findByCust(customerID, status)
}

func (s *stubAppointmentRepo) FindByBarberID(db *gorm.DB, barberID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	return s.findByBarber(barberID, status)
}

func (s *stubAppointmentRepo) UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus, note *string) (int64, error) {
	return s.updateStatus(id, from, to, note)
}

type stubUserRepo struct {
	repository.UserRepository

	findActiveBarberByID func(id uuid.UUID) (*entity.User, error)
	findActiveBarbers    func() ([]entity.User, error)
}

func (s *stubUserRepo) FindActiveBarberByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return s.findActiveBarberByID(id)
}

func (s *stubUserRepo) FindActiveBarbers(db *gorm.DB) ([]entity.User, error) {
	return s.findActiveBarbers()
}

type stubServiceRepo struct {
	repository.ServiceRepository

	findActiveByIDs func(ids []uuid.UUID, barberID uuid.UUID) ([]entity.Service, error)
	findByID        func(id uuid.UUID) (*entity.Service, error)
	update          func(svc *entity.Service) error
	create          func(svc *entity.Service) error
}

func (s *stubServiceRepo) FindActiveByIDs(db *gorm.DB, ids []uuid.UUID, barberID uuid.UUID) ([]entity.Service, error) {
	return s.findActiveByIDs(ids, barberID)
}

func (s *stubServiceRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error) {
	return s.findByID(id)
}

func (s *stubServiceRepo) Update(db *gorm.DB, svc *entity.Service) error {
	return s.update(svc)
}

func (s *stubServiceRepo) Create(db *gorm.DB, svc *entity.Service) error {
	return s.create(svc)
}

type stubReviewRepo struct {
	repository.ReviewRepository

	upsert               func(review *entity.Review) error
	findByAppointmentID  func(appointmentID uuid.UUID) (*entity.Review, error)
	findReviewedByBarber func(barberID uuid.UUID, limit, offset int) ([]entity.Appointment, int64, error)
	ratingSummary        func(barberID uuid.UUID) (float64, int64, error)
}

func (s *stubReviewRepo) Upsert(db *gorm.DB, review *entity.Review) error {
	return s.upsert(review)
}

func (s *stubReviewRepo) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Review, error) {
	return s.findByAppointmentID(appointmentID)
}

func (s *stubReviewRepo) FindReviewedByBarber(db *gorm.DB, barberID uuid.UUID, limit, offset int) ([]entity.Appointment, int64, error) {
	return s.findReviewedByBarber(barberID, limit, offset)
}

func (s *stubReviewRepo) RatingSummary(db *gorm.DB, barberID uuid.UUID) (float64, int64, error) {
	return s.ratingSummary(barberID)
}
