package service

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"context"
	"fmt"
	"time"
)

type AlertService interface {
	GetAlerts(ctx context.Context, filter repository.AlertFilter) ([]model.Alert, error)
	ResolveAlert(ctx context.Context, id uint) (model.Alert, error)
}

type alertService struct {
	alertRepository repository.AlertRepository
	now             func() time.Time
}

func (a *alertService) GetAlerts(ctx context.Context, filter repository.AlertFilter) ([]model.Alert, error) {
	alerts, err := a.alertRepository.GetAlerts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("AlertService.GetAlerts: %w", err)
	}
	return alerts, nil
}

// ResolveAlert is idempotent, an already resolved alert is returned unchanged.
func (a *alertService) ResolveAlert(ctx context.Context, id uint) (model.Alert, error) {
	alert, err := a.alertRepository.ResolveAlertById(ctx, id, a.now())
	if err != nil {
		return model.Alert{}, fmt.Errorf("AlertService.ResolveAlert: %w", err)
	}
	return alert, nil
}

func NewAlertService(alertRepository repository.AlertRepository) AlertService {
	return &alertService{
		alertRepository: alertRepository,
		now:             time.Now,
	}
}
