package handler

import (
	"net/http"

	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/delivery/http/middleware"
	"go-barber-booking/internal/service"
	"go-barber-booking/internal/usecase"
	"go-barber-booking/pkg/response"
	"go-barber-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	bookingUsecase     usecase.CustomerBookingUsecase
	lifecycleUsecase   usecase.AppointmentLifecycleUsecase
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(
	bookingUsecase usecase.CustomerBookingUsecase,
	lifecycleUsecase usecase.AppointmentLifecycleUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookingUsecase:     bookingUsecase,
		lifecycleUsecase:   lifecycleUsecase,
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// CreateAppointment handles appointment booking by customers
// @Summary Book an appointment
// @Description Book an appointment with a barber for the selected services
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrBarberNotFound:
			response.NotFound(w, "Barber not found or inactive")
		case usecase.ErrInvalidServiceSelection:
			response.Error(w, http.StatusBadRequest, "One or more selected services are invalid", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// GetMyAppointments handles listing the customer's own appointments
// @Summary List my appointments
// @Description List appointments of the authenticated customer, optionally filtered by status
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {object} response.Response
// @Router /appointments/my [get]
func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.bookingUsecase.GetMyAppointments(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatusFilter:
			response.Error(w, http.StatusBadRequest, "Invalid status filter", nil)
		default:
			response.InternalServerError(w, "Failed to get appointments", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetBarberAppointments handles listing the barber's own appointments
// @Summary List barber appointments
// @Description List appointments of the authenticated barber, optionally filtered by status
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {object} response.Response
// @Router /appointments/barber [get]
func (h *AppointmentHandler) GetBarberAppointments(w http.ResponseWriter, r *http.Request) {
	barberID, ok := requestUserID(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.lifecycleUsecase.GetBarberAppointments(r.Context(), barberID, r.URL.Query().Get("status"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatusFilter:
			response.Error(w, http.StatusBadRequest, "Invalid status filter", nil)
		default:
			response.InternalServerError(w, "Failed to get appointments", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetCompletedAppointments handles the public feed of completed work
// @Summary List completed appointments
// @Description Public showcase of completed appointments, optionally narrowed to one barber
// @Tags Appointments
// @Produce json
// @Param barber_id query string false "Barber ID"
// @Success 200 {object} response.Response
// @Router /appointments/completed [get]
func (h *AppointmentHandler) GetCompletedAppointments(w http.ResponseWriter, r *http.Request) {
	var barberID *uuid.UUID
	if raw := r.URL.Query().Get("barber_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid barber ID", nil)
			return
		}
		barberID = &id
	}

	appointments, err := h.appointmentUsecase.GetCompletedAppointments(r.Context(), barberID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments", err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetAppointment handles the appointment detail view
// @Summary Get appointment detail
// @Description Get one appointment; completed appointments are public, others require participation
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	actor := middleware.GetActorFromContext(r.Context())

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), actor, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case service.ErrMustAuthenticate:
			response.Unauthorized(w, "Authentication required to view this appointment")
		case service.ErrNotParticipant:
			response.Forbidden(w, "You are not a participant of this appointment")
		default:
			response.InternalServerError(w, "Failed to get appointment", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// TransitionStatus handles status changes by the barber or an admin
// @Summary Transition appointment status
// @Description Move an appointment through its lifecycle (pending, confirmed, completed, cancelled)
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.TransitionStatusRequest true "Transition Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.TransitionStatusRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor := middleware.GetActorFromContext(r.Context())

	appointment, err := h.lifecycleUsecase.TransitionStatus(r.Context(), actor, appointmentID, req.Status, req.Note)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Unknown appointment status", nil)
		case usecase.ErrIllegalTransition:
			response.Error(w, http.StatusConflict, "Illegal status transition", nil)
		default:
			response.InternalServerError(w, "Failed to transition appointment", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

// AttachPhotos handles before or after photo uploads by the barber
// @Summary Attach photos to an appointment
// @Description Append before or after photos to a completed appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.AttachPhotosRequest true "Attach Photos Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/photos [post]
func (h *AppointmentHandler) AttachPhotos(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.AttachPhotosRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor := middleware.GetActorFromContext(r.Context())

	appointment, err := h.lifecycleUsecase.AttachPhotos(r.Context(), actor, appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrInvalidPhotoKind:
			response.Error(w, http.StatusBadRequest, "Photo kind must be before or after", nil)
		case usecase.ErrAppointmentNotCompleted:
			response.Error(w, http.StatusConflict, "Photos can only be attached to completed appointments", nil)
		default:
			response.InternalServerError(w, "Failed to attach photos", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Photos attached successfully", appointment)
}

// CancelAppointment handles cancellation by the owning customer
// @Summary Cancel my appointment
// @Description Cancel an appointment that has not yet been completed
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/cancel [patch]
func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.bookingUsecase.CancelAppointment(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrIllegalTransition:
			response.Error(w, http.StatusConflict, "Appointment can no longer be cancelled", nil)
		default:
			response.InternalServerError(w, "Failed to cancel appointment", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

func parseIDVar(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

func requestUserID(r *http.Request) (uuid.UUID, bool) {
	return middleware.GetUserIDFromContext(r.Context())
}
