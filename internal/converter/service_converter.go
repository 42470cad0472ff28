package converter

import (
	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/domain/entity"
)

// ServiceToResponse converts a Service entity to ServiceResponse DTO
func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:          service.ID,
		Barber:      UserToSummary(&service.Barber),
		Name:        service.Name,
		Description: service.Description,
		Duration:    service.Duration,
		Price:       service.Price,
		IsActive:    service.IsActive,
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
}

// ServicesToResponses converts a slice of Service entities
func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i, service := range services {
		resp := ServiceToResponse(&service)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
