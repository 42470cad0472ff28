package converter

import (
	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// AppointmentToResponse converts an Appointment entity, with whatever
// cross-references were preloaded, to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:         appointment.ID,
		Customer:   UserToSummary(&appointment.Customer),
		Barber:     UserToSummary(&appointment.Barber),
		Date:       appointment.Date.Format(dateLayout),
		Time:       appointment.Time,
		Services:   itemsToResponses(appointment.Items),
		TotalPrice: appointment.TotalPrice,
		Status:     string(appointment.Status),
		Note:       appointment.Note,
		Photos: dto.PhotosResponse{
			Before: photosToResponses(appointment.PhotosOfKind(entity.PhotoKindBefore)),
			After:  photosToResponses(appointment.PhotosOfKind(entity.PhotoKindAfter)),
		},
		Review:    ReviewToResponse(appointment.Review),
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		resp := AppointmentToResponse(&appointments[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

func itemsToResponses(items []entity.AppointmentItem) []dto.AppointmentItemResponse {
	responses := make([]dto.AppointmentItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.AppointmentItemResponse{
			ServiceID: item.ServiceID,
			Name:      item.Service.Name,
			Duration:  item.Service.Duration,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
		}
	}
	return responses
}

func photosToResponses(photos []entity.AppointmentPhoto) []dto.PhotoResponse {
	responses := make([]dto.PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		responses = append(responses, dto.PhotoResponse{
			URL:         photo.URL,
			Description: photo.Description,
			UploadedAt:  photo.UploadedAt,
		})
	}
	return responses
}

func serviceNames(items []entity.AppointmentItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.Service.Name != "" {
			names = append(names, item.Service.Name)
		}
	}
	return names
}
