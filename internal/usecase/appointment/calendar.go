package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/dental-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-scheduler/internal/httperr"
	"github.com/BruksfildServices01/dental-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/dental-scheduler/internal/models"
	"github.com/BruksfildServices01/dental-scheduler/internal/timezone"
)

type periodLister func(ctx context.Context, id uuid.UUID, start, end time.Time) ([]models.Appointment, error)

func (s *Service) GetAppointmentsByStartDateAndEndDate(
	ctx context.Context,
	q domain.CalendarQuery,
) (*httpresp.Result, error) {
	return s.calendar(ctx, q, s.repo.ListForCustomerInPeriod, func(ap models.Appointment) string {
		return ap.Treatment.Name + " - " + ap.Dentist.Name
	})
}

func (s *Service) GetAppointmentsByStartDateAndEndDateOfDentist(
	ctx context.Context,
	q domain.CalendarQuery,
) (*httpresp.Result, error) {
	return s.calendar(ctx, q, s.repo.ListForDentistInPeriod, func(ap models.Appointment) string {
		return ap.Treatment.Name + " - " + ap.Customer.Name
	})
}

func (s *Service) calendar(
	ctx context.Context,
	q domain.CalendarQuery,
	list periodLister,
	title func(models.Appointment) string,
) (*httpresp.Result, error) {

	userID, err := parseID(q.UserID)
	if err != nil {
		return nil, err
	}

	start, err := s.parseBound(q.Start, false)
	if err != nil {
		return nil, err
	}
	end, err := s.parseBound(q.End, true)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	aps, err := list(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	events := make([]domain.CalendarEvent, 0, len(aps))
	for _, ap := range aps {
		events = append(events, domain.CalendarEvent{
			ID:     ap.ID,
			Title:  title(ap),
			Start:  ap.StartTime,
			End:    ap.EndTime,
			Status: ap.Status,
		})
	}

	return httpresp.OK(domain.Calendar{
		View:   q.View,
		Start:  q.Start,
		End:    q.End,
		Events: events,
	}, "Get calendar successfully"), nil
}

// parseBound accepts YYYY-MM-DD (an end date includes the whole day) or an
// RFC 3339 timestamp, which is used as is.
func (s *Service) parseBound(raw string, isEnd bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	if t, err := timezone.ParseDate(s.timezone, raw); err == nil {
		if isEnd {
			return t.AddDate(0, 0, 1), nil
		}
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	return time.Time{}, httperr.ErrBusiness("invalid_date")
}
