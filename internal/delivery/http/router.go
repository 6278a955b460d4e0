package http

import (
	"net/http"

	"clinic-appointment-api/internal/delivery/http/handler"
	"clinic-appointment-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	profileHandler     *handler.ProfileHandler
	appointmentHandler *handler.AppointmentHandler
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	auditHandler       *handler.AuditHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	appointmentHandler *handler.AppointmentHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	auditHandler *handler.AuditHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		profileHandler:     profileHandler,
		appointmentHandler: appointmentHandler,
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		auditHandler:       auditHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
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
	auth.HandleFunc("/token", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/token/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Everything below needs a valid access token
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Own profile
	protected.HandleFunc("/profile", r.profileHandler.GetMyProfile).Methods(http.MethodGet)
	protected.HandleFunc("/profile", r.profileHandler.UpdateMyProfile).Methods(http.MethodPut)

	// Any profile by id, access checked per actor in the usecase
	protected.HandleFunc("/profiles/{id}", r.profileHandler.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/{id}", r.profileHandler.UpdateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/profiles/{id}", r.profileHandler.DeleteProfile).Methods(http.MethodDelete)

	// Appointments, visibility scoped per actor in the usecase
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	// Patient directory (doctors and admins)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequireAdminOrDoctor)
	patients.HandleFunc("", r.patientHandler.List).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Doctor directory: the listing is open to every role, detail and
	// management are admin only
	protected.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)

	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.Use(middleware.RequireAdmin)
	doctors.HandleFunc("/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	doctors.HandleFunc("/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)

	// Audit trail (admin only)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.Use(middleware.RequireAdmin)
	users.HandleFunc("/{id}/audit-logs", r.auditHandler.GetUserTrail).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
