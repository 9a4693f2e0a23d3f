package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/dental-scheduler/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetTreatment(ctx context.Context, id uuid.UUID) (*models.Treatment, error)

	// -------- Appointment (create) --------
	// CreateAppointment inserts ap unless a scheduled appointment of the same
	// dentist overlaps it (time_conflict). Check and insert are atomic.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Appointment (state change / detail) --------
	GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Calendars --------
	ListForCustomerInPeriod(
		ctx context.Context,
		customerID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListForDentistInPeriod(
		ctx context.Context,
		dentistID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// scheduled appointments only, ordered by start
	ListBookedForDentist(
		ctx context.Context,
		dentistID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Paged listings --------
	PageForCustomer(ctx context.Context, customerID uuid.UUID, p PageRequest) ([]models.Appointment, int64, error)
	PageForDentist(ctx context.Context, dentistID uuid.UUID, p PageRequest) ([]models.Appointment, int64, error)
	PageAll(ctx context.Context, p PageRequest) ([]models.Appointment, int64, error)

	HistoryForCustomer(ctx context.Context, customerID uuid.UUID, before time.Time) ([]models.Appointment, error)
}
