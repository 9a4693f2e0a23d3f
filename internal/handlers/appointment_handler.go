package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/dental-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-scheduler/internal/httperr"
	"github.com/BruksfildServices01/dental-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/dental-scheduler/internal/middleware"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler maps the appointment routes onto domain.Service. Routes
// that need a caller are guarded by the identity middleware before they get
// here.
type AppointmentHandler struct {
	service domain.Service
	log     *zap.Logger
}

func NewAppointmentHandler(service domain.Service, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		log:     log.Named("appointment_handler"),
	}
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) respond(c *gin.Context, res *httpresp.Result, err error) {
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	if res == nil {
		httperr.Internal(c, "Empty response from appointment service")
		return
	}
	httpresp.Write(c, res)
}

func uuidParam(c *gin.Context, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		httperr.BadRequest(c, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads page and limit as ints, defaulting to 0 and 5.
func pageParams(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(domain.DefaultPage)))
	if err != nil {
		httperr.BadRequest(c, "Invalid page or limit")
		return 0, 0, false
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(domain.DefaultLimit)))
	if err != nil {
		httperr.BadRequest(c, "Invalid page or limit")
		return 0, 0, false
	}

	return page, limit, true
}

func calendarQuery(c *gin.Context) domain.CalendarQuery {
	return domain.CalendarQuery{
		Start:  c.Query("start"),
		End:    c.Query("end"),
		View:   c.Query("view"),
		UserID: middleware.UserID(c),
	}
}

// ======================================================
// PATIENT
// ======================================================

func (h *AppointmentHandler) PatientCalendar(c *gin.Context) {
	res, err := h.service.GetAppointmentsByStartDateAndEndDate(c.Request.Context(), calendarQuery(c))
	h.respond(c, res, err)
}

func (h *AppointmentHandler) PatientAppointments(c *gin.Context) {
	res, err := h.service.GetAppointmentByPagination(
		c.Request.Context(),
		c.Query("page"),
		c.Query("limit"),
		middleware.UserID(c),
	)
	h.respond(c, res, err)
}

// ======================================================
// SLOTS
// ======================================================

func (h *AppointmentHandler) Slots(c *gin.Context) {
	res, err := h.service.GetAppointmentsByDentistIDAndDate(
		c.Request.Context(),
		c.Query("dentist"),
		c.Query("date"),
		c.Query("treatment"),
	)
	h.respond(c, res, err)
}

// ======================================================
// CREATE / CANCEL
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var dto domain.AppointmentDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.service.CreateAppointment(
		c.Request.Context(),
		dto,
		middleware.UserID(c),
		middleware.UserRole(c),
	)
	h.respond(c, res, err)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	res, err := h.service.CancelAppointment(c.Request.Context(), c.Param("id"))
	h.respond(c, res, err)
}

// ======================================================
// HISTORY / LISTINGS
// ======================================================

func (h *AppointmentHandler) History(c *gin.Context) {
	id, ok := uuidParam(c, c.Param("id"))
	if !ok {
		return
	}

	res, err := h.service.GetHistoryAppointmentByUserID(c.Request.Context(), id)
	h.respond(c, res, err)
}

func (h *AppointmentHandler) ViewAll(c *gin.Context) {
	page, limit, ok := pageParams(c)
	if !ok {
		return
	}

	res, err := h.service.ViewAllAppointment(c.Request.Context(), page, limit)
	h.respond(c, res, err)
}

// ======================================================
// DENTIST
// ======================================================

func (h *AppointmentHandler) DentistCalendar(c *gin.Context) {
	res, err := h.service.GetAppointmentsByStartDateAndEndDateOfDentist(c.Request.Context(), calendarQuery(c))
	h.respond(c, res, err)
}

// DentistAppointments takes dentistId from the query string; a missing one is
// forwarded as the nil UUID.
func (h *AppointmentHandler) DentistAppointments(c *gin.Context) {
	dentistID := uuid.Nil
	if raw := c.Query("dentistId"); raw != "" {
		id, ok := uuidParam(c, raw)
		if !ok {
			return
		}
		dentistID = id
	}

	page, limit, ok := pageParams(c)
	if !ok {
		return
	}

	res, err := h.service.GetAppointmentByDentistID(c.Request.Context(), page, limit, dentistID)
	h.respond(c, res, err)
}

// ======================================================
// DETAILS
// ======================================================

func (h *AppointmentHandler) Details(c *gin.Context) {
	id, ok := uuidParam(c, c.Param("id"))
	if !ok {
		return
	}

	page, limit, ok := pageParams(c)
	if !ok {
		return
	}

	res, err := h.service.GetAppointmentDetail(c.Request.Context(), id, page, limit)
	h.respond(c, res, err)
}

func (h *AppointmentHandler) ViewDetail(c *gin.Context) {
	id, ok := uuidParam(c, c.Param("id"))
	if !ok {
		return
	}

	res, err := h.service.ViewAppointmentDetail(c.Request.Context(), id)
	h.respond(c, res, err)
}

// Health is mounted outside /api.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
