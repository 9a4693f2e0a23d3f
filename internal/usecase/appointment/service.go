package appointment

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/dental-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/dental-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-scheduler/internal/httperr"
	"github.com/BruksfildServices01/dental-scheduler/internal/models"
	"github.com/BruksfildServices01/dental-scheduler/internal/timezone"
)

type Dispatcher interface {
	Dispatch(ev audit.Event)
}

// Service implements domain.Service on top of a Repository.
type Service struct {
	repo     domain.Repository
	audit    Dispatcher
	hours    domain.ClinicHours
	timezone string
	now      func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(
	repo domain.Repository,
	audit Dispatcher,
	hours domain.ClinicHours,
	tz string,
	opts ...Option,
) *Service {
	s := &Service{
		repo:     repo,
		audit:    audit,
		hours:    hours,
		timezone: tz,
	}
	s.now = func() time.Time { return timezone.NowIn(s.timezone) }

	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ domain.Service = (*Service)(nil)

// ======================================================
// HELPERS
// ======================================================

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, httperr.ErrBusiness("invalid_id")
	}
	return id, nil
}

func (s *Service) location() *time.Location {
	return timezone.Location(s.timezone)
}

func (s *Service) toView(ap models.Appointment) domain.AppointmentView {
	loc := s.location()
	return domain.AppointmentView{
		ID:            ap.ID,
		Date:          ap.StartTime.In(loc).Format("2006-01-02"),
		StartTime:     ap.StartTime.In(loc).Format("15:04"),
		EndTime:       ap.EndTime.In(loc).Format("15:04"),
		Status:        ap.Status,
		Note:          ap.Note,
		TreatmentID:   ap.TreatmentID,
		TreatmentName: ap.Treatment.Name,
		DentistID:     ap.DentistID,
		DentistName:   ap.Dentist.Name,
		CustomerID:    ap.CustomerID,
		CustomerName:  ap.Customer.Name,
		CreatedAt:     ap.CreatedAt,
	}
}

func (s *Service) toViews(aps []models.Appointment) []domain.AppointmentView {
	out := make([]domain.AppointmentView, 0, len(aps))
	for _, ap := range aps {
		out = append(out, s.toView(ap))
	}
	return out
}
