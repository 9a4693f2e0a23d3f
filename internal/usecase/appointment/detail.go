package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/dental-scheduler/internal/httpresp"
)

func (s *Service) ViewAppointmentDetail(
	ctx context.Context,
	id uuid.UUID,
) (*httpresp.Result, error) {

	ap, err := s.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	return httpresp.OK(s.toView(*ap), "Get appointment successfully"), nil
}
