package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/dental-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-scheduler/internal/httperr"
	"github.com/BruksfildServices01/dental-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}

// detailed preloads everything an appointment view renders.
func (r *AppointmentGormRepository) detailed(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Dentist").
		Preload("Treatment")
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AppointmentGormRepository) GetTreatment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Treatment, error) {

	var treatment models.Treatment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", id).
		First(&treatment).Error; err != nil {
		return nil, err
	}
	return &treatment, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// the dentist row lock serialises bookings of one dentist
		var dentist models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&dentist, "id = ?", ap.DentistID).Error; err != nil {
			return notFound(err, "dentist_not_found")
		}

		if err := assertNoTimeConflict(tx, ap.DentistID, ap.StartTime, ap.EndTime); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Create(ap).Error
	})
}

func assertNoTimeConflict(
	tx *gorm.DB,
	dentistID uuid.UUID,
	start time.Time,
	end time.Time,
) error {

	var count int64
	if err := tx.
		Model(&models.Appointment{}).
		Where(
			"dentist_id = ? AND status = ? AND start_time < ? AND end_time > ?",
			dentistID,
			string(domain.StatusScheduled),
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.detailed(ctx).First(&ap, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "appointment_not_found")
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit("Customer", "Dentist", "Treatment").
		Save(ap).Error
}

// --------------------------------------------------
// Calendars
// --------------------------------------------------

func (r *AppointmentGormRepository) listInPeriod(
	ctx context.Context,
	column string,
	id uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.detailed(ctx).
		Where(
			column+" = ? AND start_time >= ? AND start_time < ?",
			id, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListForCustomerInPeriod(
	ctx context.Context,
	customerID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	return r.listInPeriod(ctx, "customer_id", customerID, start, end)
}

func (r *AppointmentGormRepository) ListForDentistInPeriod(
	ctx context.Context,
	dentistID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	return r.listInPeriod(ctx, "dentist_id", dentistID, start, end)
}

func (r *AppointmentGormRepository) ListBookedForDentist(
	ctx context.Context,
	dentistID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"dentist_id = ? AND status = ? AND start_time < ? AND end_time > ?",
			dentistID, string(domain.StatusScheduled), end, start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Paged listings
// --------------------------------------------------

func (r *AppointmentGormRepository) page(
	ctx context.Context,
	scope func(*gorm.DB) *gorm.DB,
	p domain.PageRequest,
) ([]models.Appointment, int64, error) {

	var total int64
	if err := scope(r.db.WithContext(ctx).Model(&models.Appointment{})).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Appointment
	if err := scope(r.detailed(ctx)).
		Order("start_time DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *AppointmentGormRepository) PageForCustomer(
	ctx context.Context,
	customerID uuid.UUID,
	p domain.PageRequest,
) ([]models.Appointment, int64, error) {
	return r.page(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("customer_id = ?", customerID)
	}, p)
}

func (r *AppointmentGormRepository) PageForDentist(
	ctx context.Context,
	dentistID uuid.UUID,
	p domain.PageRequest,
) ([]models.Appointment, int64, error) {
	return r.page(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("dentist_id = ?", dentistID)
	}, p)
}

func (r *AppointmentGormRepository) PageAll(
	ctx context.Context,
	p domain.PageRequest,
) ([]models.Appointment, int64, error) {
	return r.page(ctx, func(q *gorm.DB) *gorm.DB { return q }, p)
}

func (r *AppointmentGormRepository) HistoryForCustomer(
	ctx context.Context,
	customerID uuid.UUID,
	before time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.detailed(ctx).
		Where(
			"customer_id = ? AND (start_time < ? OR status <> ?)",
			customerID, before, string(domain.StatusScheduled),
		).
		Order("start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
