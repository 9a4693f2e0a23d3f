package appointment

import (
	"context"

	"github.com/BruksfildServices01/dental-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/dental-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-scheduler/internal/httpresp"
)

func (s *Service) CancelAppointment(
	ctx context.Context,
	id string,
) (*httpresp.Result, error) {

	appointmentID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ap, err := s.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, s.now()); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return httpresp.OK(s.toView(*ap), "Cancel appointment successfully"), nil
}
