package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/dental-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/dental-scheduler/internal/models"
)

func (s *Service) pageResult(
	aps []models.Appointment,
	total int64,
	p domain.PageRequest,
) *httpresp.Result {
	return httpresp.OK(httpresp.Page[domain.AppointmentView]{
		Items: s.toViews(aps),
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
	}, "Get appointments successfully")
}

func (s *Service) GetAppointmentByPagination(
	ctx context.Context,
	page, limit, userID string,
) (*httpresp.Result, error) {

	customerID, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	p, err := domain.ParsePageRequest(page, limit)
	if err != nil {
		return nil, err
	}

	aps, total, err := s.repo.PageForCustomer(ctx, customerID, p)
	if err != nil {
		return nil, err
	}

	return s.pageResult(aps, total, p), nil
}

func (s *Service) ViewAllAppointment(
	ctx context.Context,
	page, limit int,
) (*httpresp.Result, error) {

	p, err := domain.NewPageRequest(page, limit)
	if err != nil {
		return nil, err
	}

	aps, total, err := s.repo.PageAll(ctx, p)
	if err != nil {
		return nil, err
	}

	return s.pageResult(aps, total, p), nil
}

func (s *Service) GetAppointmentByDentistID(
	ctx context.Context,
	page, limit int,
	dentistID uuid.UUID,
) (*httpresp.Result, error) {

	p, err := domain.NewPageRequest(page, limit)
	if err != nil {
		return nil, err
	}

	aps, total, err := s.repo.PageForDentist(ctx, dentistID, p)
	if err != nil {
		return nil, err
	}

	return s.pageResult(aps, total, p), nil
}

// GetAppointmentDetail pages through the detailed appointments of customer id.
func (s *Service) GetAppointmentDetail(
	ctx context.Context,
	id uuid.UUID,
	page, limit int,
) (*httpresp.Result, error) {

	p, err := domain.NewPageRequest(page, limit)
	if err != nil {
		return nil, err
	}

	aps, total, err := s.repo.PageForCustomer(ctx, id, p)
	if err != nil {
		return nil, err
	}

	return s.pageResult(aps, total, p), nil
}

// GetHistoryAppointmentByUserID lists past or closed appointments, newest first.
func (s *Service) GetHistoryAppointmentByUserID(
	ctx context.Context,
	userID uuid.UUID,
) (*httpresp.Result, error) {

	aps, err := s.repo.HistoryForCustomer(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}

	return httpresp.OK(s.toViews(aps), "Get appointment history successfully"), nil
}
