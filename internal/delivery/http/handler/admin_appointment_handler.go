package handler

import (
	"net/http"

	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/usecase"
	"go-barber-booking/pkg/response"
	"go-barber-booking/pkg/validator"
)

type AdminAppointmentHandler struct {
	adminUsecase usecase.AdminAppointmentUsecase
	validator    *validator.CustomValidator
}

func NewAdminAppointmentHandler(adminUsecase usecase.AdminAppointmentUsecase, validator *validator.CustomValidator) *AdminAppointmentHandler {
	return &AdminAppointmentHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

// GetAllAppointments handles the admin overview of every appointment
// @Summary List all appointments
// @Description List every appointment in the system (admin only)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/appointments [get]
func (h *AdminAppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.adminUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments", err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// UpdateAppointment handles the admin full update
// @Summary Update an appointment
// @Description Update appointment fields; status changes still follow the lifecycle rules
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentRequest true "Update Appointment Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/appointments/{id} [put]
func (h *AdminAppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.adminUsecase.UpdateAppointment(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Unknown appointment status", nil)
		case usecase.ErrIllegalTransition:
			response.Error(w, http.StatusConflict, "Illegal status transition", nil)
		case usecase.ErrInvalidServiceSelection:
			response.Error(w, http.StatusBadRequest, "One or more selected services are invalid", nil)
		default:
			response.InternalServerError(w, "Failed to update appointment", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

// DeleteAppointment handles the admin hard delete
// @Summary Delete an appointment
// @Description Delete an appointment and its line items, photos, and review
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/appointments/{id} [delete]
func (h *AdminAppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.adminUsecase.DeleteAppointment(r.Context(), appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}
