package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/dental-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-scheduler/internal/httperr"
	"github.com/BruksfildServices01/dental-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/dental-scheduler/internal/models"
	"github.com/BruksfildServices01/dental-scheduler/internal/timezone"
)

func (s *Service) GetAppointmentsByDentistIDAndDate(
	ctx context.Context,
	dentist, date, treatment string,
) (*httpresp.Result, error) {

	dentistID, err := parseID(dentist)
	if err != nil {
		return nil, err
	}
	treatmentID, err := parseID(treatment)
	if err != nil {
		return nil, err
	}

	day, err := timezone.ParseDate(s.timezone, date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if _, err := s.dentist(ctx, dentistID); err != nil {
		return nil, err
	}

	tr, err := s.treatment(ctx, treatmentID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := s.hours.DayBounds(day)
	booked, err := s.repo.ListBookedForDentist(ctx, dentistID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := domain.FreeSlots(
		s.hours,
		day,
		time.Duration(tr.DurationMin)*time.Minute,
		booked,
	)

	// slots already behind us today are not offered
	now := s.now()
	free := slots[:0]
	for _, slot := range slots {
		start, _ := timezone.ParseDateTime(s.timezone, date, slot.Start)
		if start.After(now) {
			free = append(free, slot)
		}
	}

	return httpresp.OK(domain.Availability{
		DentistID:   dentistID.String(),
		TreatmentID: treatmentID.String(),
		Date:        date,
		Slots:       free,
	}, "Get slots successfully"), nil
}

func (s *Service) treatment(ctx context.Context, id uuid.UUID) (*models.Treatment, error) {
	tr, err := s.repo.GetTreatment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("treatment_not_found")
		}
		return nil, err
	}
	return tr, nil
}

func (s *Service) dentist(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.user(ctx, id, "dentist_not_found")
	if err != nil {
		return nil, err
	}
	if domain.ParseRole(u.Role) != domain.RoleDentist {
		return nil, httperr.ErrBusiness("dentist_not_found")
	}
	return u, nil
}

func (s *Service) user(ctx context.Context, id uuid.UUID, code string) (*models.User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(code)
		}
		return nil, err
	}
	return u, nil
}
