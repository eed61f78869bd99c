// Package router defines how HTTP routes are registered for the API.  Route
// paths and the per-route role allow-lists mirror the access matrix of the
// hospital system: admins manage everything, doctors manage clinical data,
// patients book appointments and read their own profile.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/handler"
	"github.com/medicore/hospital-api/internal/middleware"
)

// Handlers bundles every handler the router wires up.
type Handlers struct {
	Auth                  *handler.AuthHandler
	Confirmation          *handler.ConfirmationHandler
	Patients              *handler.PatientHandler
	Doctors               *handler.DoctorHandler
	Appointments          *handler.AppointmentHandler
	Billings              *handler.BillingHandler
	Specializations       *handler.SpecializationHandler
	DoctorSpecializations *handler.DoctorSpecializationHandler
	MedicalRecords        *handler.MedicalRecordHandler
	Staff                 *handler.StaffHandler
	Roles                 *handler.RoleHandler
	UserRoles             *handler.UserRoleHandler
}

// Register wires every route onto the Echo instance.  Public routes are the
// health probe, metrics, auth and the confirmation link; everything else
// sits behind JWTAuth plus a per-route role allow-list.  The Redis client
// may be nil, which disables rate limiting and caching.
func Register(e *echo.Echo, h Handlers, cfg config.Config, users middleware.UserStore, rdb *redis.Client) {
	e.Use(middleware.Metrics())

	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Public auth endpoints, rate limited so signup/login cannot be brute
	// forced.  The confirmation link is public too: it arrives by email.
	rl := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)
	e.POST("/api/auth/signup", h.Auth.Signup, rl)
	e.POST("/api/auth/login", h.Auth.Login, rl)
	e.GET("/api/confirmation/confirm-account", h.Confirmation.ConfirmAccount, rl)

	api := e.Group("/api")
	api.Use(middleware.JWTAuth(cfg.JWTSecret, users))

	admin := middleware.RequireRole("admin")
	adminDoctor := middleware.RequireRole("admin", "doctor")
	anyRole := middleware.RequireRole("patient", "admin", "doctor")
	cache := middleware.CacheGET(config.LoadCacheConfig(), rdb)

	// Patients.  The profile routes are addressed by user id and are the
	// only patient-role writes in the system besides booking.
	api.GET("/patients", h.Patients.List, adminDoctor)
	api.POST("/patients", h.Patients.Create, admin)
	api.GET("/patients/getPatientProfile/:id", h.Patients.GetProfile, middleware.RequireRole("patient"))
	api.PUT("/patients/updatePatientProfile/:id", h.Patients.UpdateProfile, middleware.RequireRole("patient"))
	api.GET("/patients/:id", h.Patients.Get, anyRole)
	api.PUT("/patients/:id", h.Patients.Update, middleware.RequireRole("admin", "patient"))
	api.DELETE("/patients/:id", h.Patients.Delete, admin)

	// Doctors.  The listing is cached: it is the hottest read in the system.
	api.GET("/doctors", h.Doctors.List, anyRole, cache)
	api.POST("/doctors", h.Doctors.Create, admin)
	api.GET("/doctors/:id", h.Doctors.Get, adminDoctor)
	api.PUT("/doctors/:id", h.Doctors.Update, adminDoctor)
	api.DELETE("/doctors/:id", h.Doctors.Delete, adminDoctor)

	// Doctor ↔ specialization join.
	ds := api.Group("/doctorSpecialization")
	ds.GET("/:doctorId/specializations", h.DoctorSpecializations.ListForDoctor, anyRole)
	ds.POST("/:doctorId/specializations", h.DoctorSpecializations.BulkAssign, admin)
	ds.DELETE("/:doctorId/specializations/:specializationId", h.DoctorSpecializations.RemovePair, admin)
	ds.GET("/specialization/:specializationId", h.DoctorSpecializations.ListDoctors, anyRole)
	ds.POST("/:doctorId/specialization", h.DoctorSpecializations.AssignOne, admin)
	ds.PUT("/:doctorId/specialization", h.DoctorSpecializations.EditPair, admin)
	ds.DELETE("/:doctorId/specialization/:specializationId", h.DoctorSpecializations.RemovePair, admin)

	// Specialization catalog.
	api.GET("/specializations", h.Specializations.List, anyRole, cache)
	api.POST("/specializations", h.Specializations.Create, admin)
	api.GET("/specializations/:id", h.Specializations.Get, adminDoctor)
	api.PUT("/specializations/:id", h.Specializations.Update, admin)
	api.DELETE("/specializations/:id", h.Specializations.Delete, admin)

	// Appointments.
	api.GET("/appointments", h.Appointments.List, anyRole)
	api.POST("/appointments", h.Appointments.Create, anyRole)
	api.GET("/appointments/:id", h.Appointments.Get, adminDoctor)
	api.PUT("/appointments/:id", h.Appointments.Update, adminDoctor)
	api.DELETE("/appointments/:id", h.Appointments.Delete, admin)

	// Billings.
	api.POST("/billings", h.Billings.Create, adminDoctor)
	api.GET("/billings/:patient_id", h.Billings.ListByPatient, anyRole)
	api.PUT("/billings/:id", h.Billings.Update, adminDoctor)
	api.DELETE("/billings/:id", h.Billings.Delete, admin)

	// Medical records, always scoped by patient.
	api.GET("/medicalRecords/:patientId", h.MedicalRecords.ListForPatient, adminDoctor)
	api.POST("/medicalRecords/:patientId", h.MedicalRecords.Create, adminDoctor)
	api.GET("/medicalRecords/:patientId/:recordId", h.MedicalRecords.Get, adminDoctor)
	api.PUT("/medicalRecords/:patientId/:recordId", h.MedicalRecords.Update, adminDoctor)
	api.DELETE("/medicalRecords/:patientId/:recordId", h.MedicalRecords.Delete, adminDoctor)

	// Staff and role administration.
	api.GET("/staff", h.Staff.List, admin)
	api.POST("/staff", h.Staff.Create, admin)
	api.GET("/staff/:id", h.Staff.Get, admin)
	api.PUT("/staff/:id", h.Staff.Update, admin)
	api.DELETE("/staff/:id", h.Staff.Delete, admin)

	api.GET("/roles", h.Roles.List, admin)
	api.POST("/roles", h.Roles.Create, admin)
	api.GET("/roles/:id", h.Roles.Get, admin)
	api.PUT("/roles/:id", h.Roles.Update, admin)
	api.DELETE("/roles/:id", h.Roles.Delete, admin)

	api.POST("/userRoles/:userId/:roleId", h.UserRoles.Assign, admin)
	api.DELETE("/userRoles/:userId/:roleId", h.UserRoles.Remove, admin)
	api.GET("/userRoles/:userId", h.UserRoles.ListForUser)
}
