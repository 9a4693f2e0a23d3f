package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/dental-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/dental-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-scheduler/internal/httperr"
	"github.com/BruksfildServices01/dental-scheduler/internal/models"
)

var _ domain.Repository = (*fakeRepository)(nil)

// fakeRepository keeps users, treatments and appointments in maps. Func
// fields override single calls.
type fakeRepository struct {
	users        map[uuid.UUID]models.User
	treatments   map[uuid.UUID]models.Treatment
	appointments map[uuid.UUID]*models.Appointment

	CreateAppointmentFunc func(ctx context.Context, ap *models.Appointment) error
	PageForCustomerFunc   func(ctx context.Context, customerID uuid.UUID, p domain.PageRequest) ([]models.Appointment, int64, error)
	ListInPeriodFunc      func(ctx context.Context, id uuid.UUID, start, end time.Time) ([]models.Appointment, error)

	mu      sync.Mutex
	created []models.Appointment
	updated []models.Appointment
	pages   []domain.PageRequest
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:        map[uuid.UUID]models.User{},
		treatments:   map[uuid.UUID]models.Treatment{},
		appointments: map[uuid.UUID]*models.Appointment{},
	}
}

func (f *fakeRepository) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeRepository) GetTreatment(_ context.Context, id uuid.UUID) (*models.Treatment, error) {
	t, ok := f.treatments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

// CreateAppointment checks overlaps and inserts under one lock, like the
// transaction of the gorm repository.
func (f *fakeRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.CreateAppointmentFunc != nil {
		return f.CreateAppointmentFunc(ctx, ap)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, other := range f.appointments {
		if other.DentistID == ap.DentistID &&
			other.Status == string(domain.StatusScheduled) &&
			other.StartTime.Before(ap.EndTime) &&
			other.EndTime.After(ap.StartTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	ap.ID = uuid.New()
	f.created = append(f.created, *ap)
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepository) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, errAppointmentNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.updated = append(f.updated, *ap)
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepository) ListForCustomerInPeriod(ctx context.Context, id uuid.UUID, start, end time.Time) ([]models.Appointment, error) {
	return f.ListInPeriodFunc(ctx, id, start, end)
}

func (f *fakeRepository) ListForDentistInPeriod(ctx context.Context, id uuid.UUID, start, end time.Time) ([]models.Appointment, error) {
	return f.ListInPeriodFunc(ctx, id, start, end)
}

func (f *fakeRepository) ListBookedForDentist(_ context.Context, dentistID uuid.UUID, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.DentistID == dentistID && ap.Status == string(domain.StatusScheduled) &&
			ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepository) PageForCustomer(ctx context.Context, customerID uuid.UUID, p domain.PageRequest) ([]models.Appointment, int64, error) {
	f.pages = append(f.pages, p)
	if f.PageForCustomerFunc != nil {
		return f.PageForCustomerFunc(ctx, customerID, p)
	}
	return nil, 0, nil
}

func (f *fakeRepository) PageForDentist(_ context.Context, _ uuid.UUID, p domain.PageRequest) ([]models.Appointment, int64, error) {
	f.pages = append(f.pages, p)
	return nil, 0, nil
}

func (f *fakeRepository) PageAll(_ context.Context, p domain.PageRequest) ([]models.Appointment, int64, error) {
	f.pages = append(f.pages, p)
	return nil, 0, nil
}

func (f *fakeRepository) HistoryForCustomer(_ context.Context, customerID uuid.UUID, before time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CustomerID == customerID && (ap.StartTime.Before(before) || ap.Status != string(domain.StatusScheduled)) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

type fakeDispatcher struct {
	mu     sync.Mutex
	events []audit.Event
}

func (d *fakeDispatcher) Dispatch(ev audit.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, ev)
}

func (d *fakeDispatcher) actions() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.events))
	for _, ev := range d.events {
		out = append(out, ev.Action)
	}
	return out
}
