package handler

import (
	"net/http"
	"strconv"

	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/usecase"
	"go-barber-booking/pkg/response"
	"go-barber-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		validator:     validator,
	}
}

// AddReview handles review creation and replacement by the customer
// @Summary Review an appointment
// @Description Add a review to a completed appointment; reviewing again replaces the previous review
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.ReviewRequest true "Review Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/review [post]
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.ReviewRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.AddOrUpdateReview(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrInvalidRating:
			response.Error(w, http.StatusBadRequest, "Rating must be between 1 and 5", nil)
		case usecase.ErrEmptyComment:
			response.Error(w, http.StatusBadRequest, "Comment must not be empty", nil)
		case usecase.ErrAppointmentNotCompleted:
			response.Error(w, http.StatusConflict, "Only completed appointments can be reviewed", nil)
		default:
			response.InternalServerError(w, "Failed to save review", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Review saved successfully", review)
}

// GetBarberReviews handles the public review feed of one barber
// @Summary List barber reviews
// @Description Paginated reviews of a barber with the average rating
// @Tags Reviews
// @Produce json
// @Param id path string true "Barber ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /barbers/{id}/reviews [get]
func (h *ReviewHandler) GetBarberReviews(w http.ResponseWriter, r *http.Request) {
	barberID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid barber ID", nil)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	reviews, err := h.reviewUsecase.GetBarberReviews(r.Context(), barberID, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get reviews", err)
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}

// GetMyReviews handles listing the customer's own reviews
// @Summary List my reviews
// @Description List reviews written by the authenticated customer
// @Tags Reviews
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reviews/my [get]
func (h *ReviewHandler) GetMyReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewUsecase.GetMyReviews(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reviews", err)
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}
