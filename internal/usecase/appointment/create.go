package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/dental-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/dental-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-scheduler/internal/httperr"
	"github.com/BruksfildServices01/dental-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/dental-scheduler/internal/models"
	"github.com/BruksfildServices01/dental-scheduler/internal/timezone"
)

func (s *Service) CreateAppointment(
	ctx context.Context,
	dto domain.AppointmentDto,
	userID, role string,
) (*httpresp.Result, error) {

	// --------------------------------------------------
	// Who books, for whom
	// --------------------------------------------------
	r := domain.ParseRole(role)
	if !r.CanBook() {
		return nil, httperr.ErrBusiness("forbidden_role")
	}

	creatorID, _ := uuid.Parse(strings.TrimSpace(userID))

	var customerID uuid.UUID
	var err error
	if r.BooksForOthers() {
		if strings.TrimSpace(dto.CustomerID) == "" {
			return nil, httperr.ErrBusiness("missing_customer")
		}
		customerID, err = parseID(dto.CustomerID)
	} else {
		customerID, err = parseID(userID)
	}
	if err != nil {
		return nil, err
	}

	dentistID, err := parseID(dto.DentistID)
	if err != nil {
		return nil, err
	}
	treatmentID, err := parseID(dto.TreatmentID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Date / time in clinic timezone
	// --------------------------------------------------
	if _, err := timezone.ParseDate(s.timezone, dto.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	start, err := timezone.ParseDateTime(s.timezone, dto.Date, dto.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if !start.After(s.now()) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// Participants
	// --------------------------------------------------
	customer, err := s.user(ctx, customerID, "customer_not_found")
	if err != nil {
		return nil, err
	}
	dentist, err := s.dentist(ctx, dentistID)
	if err != nil {
		return nil, err
	}
	tr, err := s.treatment(ctx, treatmentID)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(tr.DurationMin) * time.Minute)

	if !s.hours.IsWithinWorkingHours(start, end) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	ap := &models.Appointment{
		CustomerID:  customer.ID,
		DentistID:   dentist.ID,
		TreatmentID: tr.ID,
		CreatorID:   creatorID,
		StartTime:   start,
		EndTime:     end,
		Status:      string(domain.InitialStatus()),
		Note:        strings.TrimSpace(dto.Note),
	}

	// --------------------------------------------------
	// Insert, rejecting overlaps
	// --------------------------------------------------
	if err := s.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			s.audit.Dispatch(audit.Event{
				UserID:   optionalID(creatorID),
				Action:   "appointment_conflict",
				Entity:   "appointment",
				Metadata: map[string]any{"dentist_id": dentistID, "start": start, "end": end},
			})
		}
		return nil, err
	}

	ap.Customer = *customer
	ap.Dentist = *dentist
	ap.Treatment = *tr

	s.audit.Dispatch(audit.Event{
		UserID:   optionalID(creatorID),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return httpresp.Created(s.toView(*ap), "Create appointment successfully"), nil
}

func optionalID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
