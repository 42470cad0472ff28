package converter

import (
	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/domain/entity"
)

// ReviewToResponse converts a Review entity to ReviewResponse DTO
func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}
	return &dto.ReviewResponse{
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

// ReviewedAppointmentsToBarberFeed converts completed+reviewed
// appointments to the barber's public review feed entries
func ReviewedAppointmentsToBarberFeed(appointments []entity.Appointment) []dto.BarberReviewResponse {
	responses := make([]dto.BarberReviewResponse, 0, len(appointments))
	for i := range appointments {
		appointment := &appointments[i]
		if appointment.Review == nil {
			continue
		}
		responses = append(responses, dto.BarberReviewResponse{
			AppointmentID: appointment.ID,
			Customer:      UserToSummary(&appointment.Customer),
			Services:      serviceNames(appointment.Items),
			Date:          appointment.Date.Format(dateLayout),
			Time:          appointment.Time,
			Review:        *ReviewToResponse(appointment.Review),
		})
	}
	return responses
}

// ReviewedAppointmentsToCustomerFeed converts the customer's own
// reviewed appointments to feed entries
func ReviewedAppointmentsToCustomerFeed(appointments []entity.Appointment) []dto.CustomerReviewResponse {
	responses := make([]dto.CustomerReviewResponse, 0, len(appointments))
	for i := range appointments {
		appointment := &appointments[i]
		if appointment.Review == nil {
			continue
		}
		responses = append(responses, dto.CustomerReviewResponse{
			AppointmentID: appointment.ID,
			Barber:        UserToSummary(&appointment.Barber),
			Services:      serviceNames(appointment.Items),
			Date:          appointment.Date.Format(dateLayout),
			Time:          appointment.Time,
			Review:        *ReviewToResponse(appointment.Review),
		})
	}
	return responses
}
