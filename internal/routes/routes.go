package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-scheduler/internal/handlers"
	"github.com/BruksfildServices01/dental-scheduler/internal/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	appointmentHandler *handlers.AppointmentHandler,
	identity middleware.IdentityResolver,
	log *zap.Logger,
) {

	r.GET("/health", handlers.Health)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.Identity(identity, log))

	requireUser := middleware.RequireUser()

	// ------------------------------
	// PATIENT
	// ------------------------------
	api.GET("/patient/calendar", requireUser, appointmentHandler.PatientCalendar)
	api.GET("/patient/appointments", requireUser, appointmentHandler.PatientAppointments)

	// ------------------------------
	// SLOTS / BOOKING
	// ------------------------------
	api.GET("/slot", appointmentHandler.Slots)
	api.POST("/appointment", middleware.RequireUserOrRole(), appointmentHandler.Create)
	api.DELETE("/appointment/:id", appointmentHandler.Cancel)

	// ------------------------------
	// LISTINGS / DETAILS
	// ------------------------------
	api.GET("/viewhistoryappoinment/:id", appointmentHandler.History)
	api.GET("/viewallappointment", appointmentHandler.ViewAll)
	api.GET("/appointmentdetails/:id", appointmentHandler.Details)
	api.GET("/viewappointmentdetails/:id", appointmentHandler.ViewDetail)

	// ------------------------------
	// DENTIST
	// ------------------------------
	api.GET("/dentist/calendar", requireUser, appointmentHandler.DentistCalendar)
	api.GET("/dentist/appointments", appointmentHandler.DentistAppointments)
}
