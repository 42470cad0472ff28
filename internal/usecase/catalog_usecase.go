package usecase

import (
	"context"
	"errors"

	"go-barber-booking/internal/converter"
	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/domain/entity"
	"go-barber-booking/internal/domain/repository"
	"go-barber-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrServiceNotOwned = errors.New("service does not belong to you")
)

// CatalogUsecase manages the read side of barbers and the CRUD of their
// service catalogs. The booking engine consults this catalog through
// the repositories, not through this usecase.
type CatalogUsecase interface {
	GetBarbers(ctx context.Context) (*dto.BarberListResponse, error)
	GetBarber(ctx context.Context, barberID uuid.UUID) (*dto.UserResponse, error)
	GetBarberServices(ctx context.Context, barberID uuid.UUID) (*dto.ServiceListResponse, error)
	GetAllServices(ctx context.Context) (*dto.ServiceListResponse, error)
	GetService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceResponse, error)
	CreateService(ctx context.Context, actor service.Actor, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, actor service.Actor, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, actor service.Actor, serviceID uuid.UUID) error
}

type catalogUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	serviceRepo repository.ServiceRepository
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	serviceRepo repository.ServiceRepository,
) CatalogUsecase {
	return &catalogUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
	}
}

func (u *catalogUsecase) GetBarbers(ctx context.Context) (*dto.BarberListResponse, error) {
	barbers, err := u.userRepo.FindActiveBarbers(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find barbers: %+v", err)
		return nil, err
	}

	return &dto.BarberListResponse{
		Barbers: converter.UsersToResponses(barbers),
		Total:   len(barbers),
	}, nil
}

func (u *catalogUsecase) GetBarber(ctx context.Context, barberID uuid.UUID) (*dto.UserResponse, error) {
	barber, err := u.userRepo.FindActiveBarberByID(u.db.WithContext(ctx), barberID)
	if err != nil {
		u.log.Warnf("Failed to find barber %s: %+v", barberID, err)
		return nil, err
	}
	if barber == nil {
		return nil, ErrBarberNotFound
	}

	return converter.UserToResponse(barber), nil
}

func (u *catalogUsecase) GetBarberServices(ctx context.Context, barberID uuid.UUID) (*dto.ServiceListResponse, error) {
	barber, err := u.userRepo.FindActiveBarberByID(u.db.WithContext(ctx), barberID)
	if err != nil {
		u.log.Warnf("Failed to find barber %s: %+v", barberID, err)
		return nil, err
	}
	if barber == nil {
		return nil, ErrBarberNotFound
	}

	services, err := u.serviceRepo.FindByBarberID(u.db.WithContext(ctx), barberID)
	if err != nil {
		u.log.Warnf("Failed to find services for barber %s: %+v", barberID, err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *catalogUsecase) GetAllServices(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find services: %+v", err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *catalogUsecase) GetService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", serviceID, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	return converter.ServiceToResponse(svc), nil
}

// CreateService adds a catalog entry. Barbers create for themselves;
// administrators may create for any barber by setting barber_id.
func (u *catalogUsecase) CreateService(ctx context.Context, actor service.Actor, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	barberID := req.BarberID
	if !actor.IsAdmin() || barberID == uuid.Nil {
		barberID = actor.ID
	}

	barber, err := u.userRepo.FindActiveBarberByID(u.db.WithContext(ctx), barberID)
	if err != nil {
		u.log.Warnf("Failed to find barber %s: %+v", barberID, err)
		return nil, err
	}
	if barber == nil {
		return nil, ErrBarberNotFound
	}

	svc := &entity.Service{
		BarberID:    barberID,
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		IsActive:    true,
	}

	if err := u.serviceRepo.Create(u.db.WithContext(ctx), svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	u.log.Infof("Service created: id=%s, barber=%s", svc.ID, barberID)
	return converter.ServiceToResponse(svc), nil
}

func (u *catalogUsecase) UpdateService(ctx context.Context, actor service.Actor, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", serviceID, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if !service.OwnerOrAdmin(actor, svc.BarberID) {
		return nil, ErrServiceNotOwned
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Duration != nil {
		svc.Duration = *req.Duration
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := u.serviceRepo.Update(u.db.WithContext(ctx), svc); err != nil {
		u.log.Warnf("Failed to update service %s: %+v", serviceID, err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *catalogUsecase) DeleteService(ctx context.Context, actor service.Actor, serviceID uuid.UUID) error {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", serviceID, err)
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}
	if !service.OwnerOrAdmin(actor, svc.BarberID) {
		return ErrServiceNotOwned
	}

	if _, err := u.serviceRepo.Delete(u.db.WithContext(ctx), serviceID); err != nil {
		u.log.Warnf("Failed to delete service %s: %+v", serviceID, err)
		return err
	}

	u.log.Infof("Service deleted: id=%s", serviceID)
	return nil
}
