package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/dental-scheduler/internal/httpresp"
)

// Service is everything the HTTP layer needs from the appointment domain.
// String arguments arrive exactly as the client sent them; parsing and
// validating them is the implementation's job.
type Service interface {
	GetAppointmentsByStartDateAndEndDate(ctx context.Context, q CalendarQuery) (*httpresp.Result, error)
	GetAppointmentByPagination(ctx context.Context, page, limit, userID string) (*httpresp.Result, error)
	GetAppointmentsByDentistIDAndDate(ctx context.Context, dentist, date, treatment string) (*httpresp.Result, error)
	CreateAppointment(ctx context.Context, dto AppointmentDto, userID, role string) (*httpresp.Result, error)
	CancelAppointment(ctx context.Context, id string) (*httpresp.Result, error)
	GetHistoryAppointmentByUserID(ctx context.Context, userID uuid.UUID) (*httpresp.Result, error)
	ViewAllAppointment(ctx context.Context, page, limit int) (*httpresp.Result, error)
	GetAppointmentsByStartDateAndEndDateOfDentist(ctx context.Context, q CalendarQuery) (*httpresp.Result, error)
	GetAppointmentByDentistID(ctx context.Context, page, limit int, dentistID uuid.UUID) (*httpresp.Result, error)
	GetAppointmentDetail(ctx context.Context, id uuid.UUID, page, limit int) (*httpresp.Result, error)
	ViewAppointmentDetail(ctx context.Context, id uuid.UUID) (*httpresp.Result, error)
}
