package routes

import (
	"net/http"

	"MediCare/cache"
	"MediCare/config"
	"MediCare/controllers"
	"MediCare/database"
	"MediCare/handlers"
	"MediCare/metrics"
	"MediCare/middlewares"
	"MediCare/repositories"
	"MediCare/services"
	"MediCare/utils"

	"github.com/gin-gonic/gin"
)

// Dependencies are the long-lived components the router is built on.
type Dependencies struct {
	Config   *config.AppConfig
	Store    *database.Store
	Sessions cache.Cache
	// Metrics may be nil; /metrics is then not served.
	Metrics *metrics.Metrics
	// Notifier defaults to services.LogNotifier.
	Notifier services.Notifier
}

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(deps Dependencies) (http.Handler, error) {
	cfg := deps.Config
	deletes, transitions := cfg.Policies()
	latency := services.NewLatency(cfg.SimulateLatency)

	tokens, err := utils.NewTokenIssuer(cfg.SymmetricKey, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middlewares.Observe(deps.Metrics)...)
	router.Use(middlewares.CorsMiddleware(middlewares.DefaultCorsConfig(cfg.CORSOrigins)))
	router.Use(middlewares.SecurityHeaders())
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))

	// Initialize repositories, services, and handlers
	userRepo := repositories.NewUserRepository(deps.Store, deletes)
	sessionRepo := repositories.NewSessionRepository(deps.Sessions)

	authService := services.NewAuthService(userRepo, sessionRepo, tokens, latency, deps.Metrics)
	userService := services.NewUserService(userRepo, authService, cfg.PasswordCost, latency, deps.Metrics)
	doctorService := services.NewDoctorService(repositories.NewDoctorRepository(deps.Store, deletes), cfg.PasswordCost, latency, deps.Metrics)
	patientService := services.NewPatientService(repositories.NewPatientRepository(deps.Store, deletes), cfg.PasswordCost, latency, deps.Metrics)
	departmentService := services.NewDepartmentService(repositories.NewDepartmentRepository(deps.Store, deletes), latency, deps.Metrics)
	appointmentService := services.NewAppointmentService(
		repositories.NewAppointmentRepository(deps.Store, deletes),
		deps.Notifier,
		transitions,
		latency,
		deps.Metrics,
	)
	prescriptionService := services.NewPrescriptionService(repositories.NewPrescriptionRepository(deps.Store), latency)
	billService := services.NewBillService(repositories.NewBillingRepository(deps.Store), latency, deps.Metrics)
	dashboardService := services.NewDashboardService(repositories.NewDashboardRepository(deps.Store), latency)

	requireSession := middlewares.TokenAuthMiddleware(authService)
	api := router.Group("/api")

	// Register routes
	authController := controllers.NewAuthController(
		handlers.NewAuthHandler(authService),
		handlers.NewUserHandler(userService),
	)
	authController.RegisterRoutes(api, requireSession)

	controllers.SetupClinicRoutes(api, requireSession, controllers.ClinicHandlers{
		Departments:   handlers.NewDepartmentHandler(departmentService),
		Doctors:       handlers.NewDoctorHandler(doctorService),
		Patients:      handlers.NewPatientHandler(patientService),
		Appointments:  handlers.NewAppointmentHandler(appointmentService, patientService, doctorService),
		Prescriptions: handlers.NewPrescriptionHandler(prescriptionService, doctorService),
		Bills:         handlers.NewBillingHandler(billService),
		Dashboard:     handlers.NewDashboardHandler(dashboardService),
	})

	controllers.SetupRootRoute(router, deps.Metrics)

	return router, nil
}
