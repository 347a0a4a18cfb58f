package alert

import (
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// Engine keeps at most one unresolved alert per (endpoint, alert type).
type Engine interface {
	// Evaluate must be called after the result has been persisted.
	Evaluate(ctx context.Context, cfg model.EndpointConfig, result model.ProbeResult) ([]model.AlertEvent, error)
}

type engine struct {
	results        repository.ProbeResultRepository
	alerts         repository.AlertRepository
	downtimeWindow time.Duration
	now            func() time.Time
}

func (e *engine) Evaluate(ctx context.Context, cfg model.EndpointConfig, result model.ProbeResult) ([]model.AlertEvent, error) {
	var (
		events []model.AlertEvent
		errs   error
	)
	for _, step := range []func(context.Context, model.EndpointConfig, model.ProbeResult) ([]model.AlertEvent, error){
		e.evaluateConsecutiveErrors,
		e.evaluateResponseTime,
		e.evaluateDowntime,
	} {
		ev, err := step(ctx, cfg, result)
		events = append(events, ev...)
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		return events, fmt.Errorf("Engine.Evaluate: %w", errs)
	}
	return events, nil
}

func (e *engine) evaluateConsecutiveErrors(ctx context.Context, cfg model.EndpointConfig, result model.ProbeResult) ([]model.AlertEvent, error) {
	if result.IsSuccess() {
		return e.resolve(ctx, cfg.Name, model.AlertTypeConsecutiveErrors)
	}

	threshold := cfg.ErrorThreshold()
	recent, err := e.results.GetRecentResults(ctx, cfg.Name, threshold)
	if err != nil {
		return nil, fmt.Errorf("consecutive errors: %w", err)
	}
	if len(recent) < threshold {
		return nil, nil
	}
	for _, r := range recent {
		if r.IsSuccess() {
			return nil, nil
		}
	}
	return e.trigger(ctx, model.Alert{
		EndpointName: cfg.Name,
		AlertType:    model.AlertTypeConsecutiveErrors,
		AlertMessage: fmt.Sprintf("Endpoint %s has %d consecutive errors", cfg.Name, threshold),
		AlertData: map[string]interface{}{
			"threshold":        threshold,
			"last_status_code": result.StatusCode,
			"last_message":     result.Message,
		},
	})
}

func (e *engine) evaluateResponseTime(ctx context.Context, cfg model.EndpointConfig, result model.ProbeResult) ([]model.AlertEvent, error) {
	critical := cfg.CriticalThreshold()
	if result.LatencyMs >= critical {
		return e.trigger(ctx, model.Alert{
			EndpointName: cfg.Name,
			AlertType:    model.AlertTypeResponseTime,
			AlertMessage: fmt.Sprintf("Endpoint %s response time (%dms) exceeds critical threshold (%dms)", cfg.Name, result.LatencyMs, critical),
			AlertData: map[string]interface{}{
				"threshold_ms":     critical,
				"response_time_ms": result.LatencyMs,
			},
		})
	}

	active, err := e.alerts.FindActiveAlert(ctx, cfg.Name, model.AlertTypeResponseTime)
	if err != nil {
		return nil, fmt.Errorf("response time: %w", err)
	}
	if active == nil {
		return nil, nil
	}
	// clears once the last N checks all stayed under the critical threshold
	n := cfg.ErrorThreshold()
	recent, err := e.results.GetRecentResults(ctx, cfg.Name, n)
	if err != nil {
		return nil, fmt.Errorf("response time: %w", err)
	}
	if len(recent) < n {
		return nil, nil
	}
	for _, r := range recent {
		if r.LatencyMs >= critical {
			return nil, nil
		}
	}
	return e.resolve(ctx, cfg.Name, model.AlertTypeResponseTime)
}

func (e *engine) evaluateDowntime(ctx context.Context, cfg model.EndpointConfig, result model.ProbeResult) ([]model.AlertEvent, error) {
	if e.downtimeWindow <= 0 {
		return nil, nil
	}
	if result.IsSuccess() {
		return e.resolve(ctx, cfg.Name, model.AlertTypeDowntime)
	}

	lastSuccess, err := e.results.GetLastSuccessAt(ctx, cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("downtime: %w", err)
	}
	since := cfg.CreatedAt
	if lastSuccess != nil {
		since = *lastSuccess
	}
	if since.IsZero() || e.now().Sub(since) < e.downtimeWindow {
		return nil, nil
	}
	data := map[string]interface{}{
		"window_minutes": int(e.downtimeWindow.Minutes()),
	}
	if lastSuccess != nil {
		data["last_success_at"] = lastSuccess.Format(time.RFC3339)
	}
	return e.trigger(ctx, model.Alert{
		EndpointName: cfg.Name,
		AlertType:    model.AlertTypeDowntime,
		AlertMessage: fmt.Sprintf("Endpoint %s has had no successful check for %s", cfg.Name, e.now().Sub(since).Truncate(time.Minute)),
		AlertData:    data,
	})
}

func (e *engine) trigger(ctx context.Context, alert model.Alert) ([]model.AlertEvent, error) {
	active, err := e.alerts.FindActiveAlert(ctx, alert.EndpointName, alert.AlertType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", alert.AlertType, err)
	}
	if active != nil {
		return nil, nil
	}
	alert.TriggeredAt = e.now()
	created, err := e.alerts.CreateAlert(ctx, alert)
	if err != nil {
		// lost a race against a concurrent writer, the unresolved alert is already there
		if errors.Is(err, apperrors.ErrActiveAlertExists) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", alert.AlertType, err)
	}
	return []model.AlertEvent{{Kind: model.AlertEventTriggered, Alert: created}}, nil
}

func (e *engine) resolve(ctx context.Context, endpointName string, alertType string) ([]model.AlertEvent, error) {
	at := e.now()
	n, err := e.alerts.ResolveActiveAlerts(ctx, endpointName, alertType, at)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", alertType, err)
	}
	if n == 0 {
		return nil, nil
	}
	return []model.AlertEvent{{
		Kind: model.AlertEventResolved,
		Alert: model.Alert{
			EndpointName: endpointName,
			AlertType:    alertType,
			IsResolved:   true,
			ResolvedAt:   &at,
		},
	}}, nil
}

func NewEngine(results repository.ProbeResultRepository, alerts repository.AlertRepository, downtimeWindow time.Duration, now func() time.Time) Engine {
	if now == nil {
		now = time.Now
	}
	return &engine{
		results:        results,
		alerts:         alerts,
		downtimeWindow: downtimeWindow,
		now:            now,
	}
}
