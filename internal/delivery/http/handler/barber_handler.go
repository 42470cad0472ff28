package handler

import (
	"net/http"

	"go-barber-booking/internal/usecase"
	"go-barber-booking/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BarberHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewBarberHandler(catalogUsecase usecase.CatalogUsecase) *BarberHandler {
	return &BarberHandler{catalogUsecase: catalogUsecase}
}

// GetBarbers handles the public barber directory
// @Summary List barbers
// @Description List all active barbers
// @Tags Barbers
// @Produce json
// @Success 200 {object} response.Response
// @Router /barbers [get]
func (h *BarberHandler) GetBarbers(w http.ResponseWriter, r *http.Request) {
	barbers, err := h.catalogUsecase.GetBarbers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get barbers", err)
		return
	}

	response.Success(w, http.StatusOK, "Barbers retrieved successfully", barbers)
}

// GetBarber handles the barber detail view
// @Summary Get barber detail
// @Description Get one active barber
// @Tags Barbers
// @Produce json
// @Param id path string true "Barber ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /barbers/{id} [get]
func (h *BarberHandler) GetBarber(w http.ResponseWriter, r *http.Request) {
	barberID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid barber ID", nil)
		return
	}

	barber, err := h.catalogUsecase.GetBarber(r.Context(), barberID)
	if err != nil {
		switch err {
		case usecase.ErrBarberNotFound:
			response.NotFound(w, "Barber not found")
		default:
			response.InternalServerError(w, "Failed to get barber", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Barber retrieved successfully", barber)
}

// GetBarberServices handles the service catalog of one barber
// @Summary List barber services
// @Description List the service catalog of one barber
// @Tags Barbers
// @Produce json
// @Param id path string true "Barber ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /barbers/{id}/services [get]
func (h *BarberHandler) GetBarberServices(w http.ResponseWriter, r *http.Request) {
	barberID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid barber ID", nil)
		return
	}

	services, err := h.catalogUsecase.GetBarberServices(r.Context(), barberID)
	if err != nil {
		switch err {
		case usecase.ErrBarberNotFound:
			response.NotFound(w, "Barber not found")
		default:
			response.InternalServerError(w, "Failed to get services", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}
