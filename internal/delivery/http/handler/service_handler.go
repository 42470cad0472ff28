package handler

import (
	"net/http"

	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/delivery/http/middleware"
	"go-barber-booking/internal/usecase"
	"go-barber-booking/pkg/response"
	"go-barber-booking/pkg/validator"
)

type ServiceHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewServiceHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *ServiceHandler {
	return &ServiceHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

// GetServices handles the public service listing
// @Summary List services
// @Description List all services across barbers
// @Tags Services
// @Produce json
// @Success 200 {object} response.Response
// @Router /services [get]
func (h *ServiceHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogUsecase.GetAllServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get services", err)
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

// GetService handles the service detail view
// @Summary Get service detail
// @Description Get one service
// @Tags Services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /services/{id} [get]
func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	service, err := h.catalogUsecase.GetService(r.Context(), serviceID)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to get service", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", service)
}

// CreateService handles catalog entry creation
// @Summary Create a service
// @Description Create a catalog entry; barbers create for themselves, admins for any barber
// @Tags Services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /services [post]
func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor := middleware.GetActorFromContext(r.Context())

	service, err := h.catalogUsecase.CreateService(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrBarberNotFound:
			response.NotFound(w, "Barber not found or inactive")
		default:
			response.InternalServerError(w, "Failed to create service", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", service)
}

// UpdateService handles catalog entry updates
// @Summary Update a service
// @Description Update a catalog entry owned by the caller, or any entry as admin
// @Tags Services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Update Service Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /services/{id} [put]
func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	var req dto.UpdateServiceRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor := middleware.GetActorFromContext(r.Context())

	service, err := h.catalogUsecase.UpdateService(r.Context(), actor, serviceID, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrServiceNotOwned:
			response.Forbidden(w, "Service does not belong to you")
		default:
			response.InternalServerError(w, "Failed to update service", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", service)
}

// DeleteService handles catalog entry deletion
// @Summary Delete a service
// @Description Delete a catalog entry owned by the caller, or any entry as admin
// @Tags Services
// @Security BearerAuth
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /services/{id} [delete]
func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	actor := middleware.GetActorFromContext(r.Context())

	if err := h.catalogUsecase.DeleteService(r.Context(), actor, serviceID); err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrServiceNotOwned:
			response.Forbidden(w, "Service does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete service", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}
