package http

import (
	"net/http"

	"go-barber-booking/internal/delivery/http/handler"
	"go-barber-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	authHandler             *handler.AuthHandler
	barberHandler           *handler.BarberHandler
	serviceHandler          *handler.ServiceHandler
	appointmentHandler      *handler.AppointmentHandler
	adminAppointmentHandler *handler.AdminAppointmentHandler
	reviewHandler           *handler.ReviewHandler
	authMiddleware          *middleware.AuthMiddleware
	corsMiddleware          *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	barberHandler *handler.BarberHandler,
	serviceHandler *handler.ServiceHandler,
	appointmentHandler *handler.AppointmentHandler,
	adminAppointmentHandler *handler.AdminAppointmentHandler,
	reviewHandler *handler.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		authHandler:             authHandler,
		barberHandler:           barberHandler,
		serviceHandler:          serviceHandler,
		appointmentHandler:      appointmentHandler,
		adminAppointmentHandler: adminAppointmentHandler,
		reviewHandler:           reviewHandler,
		authMiddleware:          authMiddleware,
		corsMiddleware:          corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public catalog
	api.HandleFunc("/barbers", r.barberHandler.GetBarbers).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{id}", r.barberHandler.GetBarber).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{id}/services", r.barberHandler.GetBarberServices).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{id}/reviews", r.reviewHandler.GetBarberReviews).Methods(http.MethodGet)
	api.HandleFunc("/services", r.serviceHandler.GetServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", r.serviceHandler.GetService).Methods(http.MethodGet)

	// Public showcase; registered before the {id} detail route so the
	// literal path wins
	api.HandleFunc("/appointments/completed", r.appointmentHandler.GetCompletedAppointments).Methods(http.MethodGet)

	// Customer routes
	customer := api.PathPrefix("/appointments").Subrouter()
	customer.Use(r.authMiddleware.Authenticate)
	customer.Use(middleware.RequireCustomer)
	customer.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	customer.HandleFunc("/my", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	customer.HandleFunc("/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPatch)
	customer.HandleFunc("/{id}/review", r.reviewHandler.AddReview).Methods(http.MethodPost)

	reviews := api.PathPrefix("/reviews").Subrouter()
	reviews.Use(r.authMiddleware.Authenticate)
	reviews.Use(middleware.RequireCustomer)
	reviews.HandleFunc("/my", r.reviewHandler.GetMyReviews).Methods(http.MethodGet)

	// Barber routes
	barber := api.PathPrefix("/appointments").Subrouter()
	barber.Use(r.authMiddleware.Authenticate)
	barber.Use(middleware.RequireBarber)
	barber.HandleFunc("/barber", r.appointmentHandler.GetBarberAppointments).Methods(http.MethodGet)

	lifecycle := api.PathPrefix("/appointments").Subrouter()
	lifecycle.Use(r.authMiddleware.Authenticate)
	lifecycle.Use(middleware.RequireBarberOrAdmin)
	lifecycle.HandleFunc("/{id}/status", r.appointmentHandler.TransitionStatus).Methods(http.MethodPatch)
	lifecycle.HandleFunc("/{id}/photos", r.appointmentHandler.AttachPhotos).Methods(http.MethodPost)

	// Service catalog management
	catalog := api.PathPrefix("/services").Subrouter()
	catalog.Use(r.authMiddleware.Authenticate)
	catalog.Use(middleware.RequireBarberOrAdmin)
	catalog.HandleFunc("", r.serviceHandler.CreateService).Methods(http.MethodPost)
	catalog.HandleFunc("/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)
	catalog.HandleFunc("/{id}", r.serviceHandler.DeleteService).Methods(http.MethodDelete)

	// Appointment detail: completed appointments are public, so this
	// route takes optional credentials and lets the usecase decide
	detail := api.PathPrefix("/appointments").Subrouter()
	detail.Use(r.authMiddleware.OptionalAuthenticate)
	detail.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/barbers", r.authHandler.CreateBarber).Methods(http.MethodPost)
	admin.HandleFunc("/appointments", r.adminAppointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.adminAppointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	admin.HandleFunc("/appointments/{id}", r.adminAppointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
