package notification

import (
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const baselineAlertName = "Internet/Baseline"

const (
	customProbeName       = "Custom Test"
	customSignedProbeName = "Custom Test BPJS"
)

type PolicyConfig struct {
	NoteworthyCodes     []string
	EndpointCooldown    time.Duration
	CriticalCooldown    time.Duration
	SlowCooldown        time.Duration
	DiagnosisCooldown   time.Duration
	ConsecutiveCooldown time.Duration
	OfflineCooldown     time.Duration
	OfflineMinutes      int
}

// Policy decides which notifications an observation produces. Every message goes through the Gate,
// so delivery problems are logged and never returned to the caller.
type Policy interface {
	OnResult(ctx context.Context, cfg model.EndpointConfig, result model.ProbeResult)
	OnAlertEvents(ctx context.Context, events []model.AlertEvent)
	OnCycle(ctx context.Context, summary model.CycleSummary)
	OnCustomProbe(ctx context.Context, url string, result model.CustomProbeResult)
	OnDeviceOffline(ctx context.Context, device model.DeviceStatus)
}

type policy struct {
	gate   Gate
	cfg    PolicyConfig
	logger *zap.Logger
	now    func() time.Time
}

func (p *policy) OnResult(ctx context.Context, cfg model.EndpointConfig, result model.ProbeResult) {
	now := p.now()
	if cfg.Signed && p.isNoteworthy(result.StatusCode) {
		p.attempt(ctx, Key(CategoryEndpoint, cfg.Name, result.StatusCode, cfg.URL), p.cfg.EndpointCooldown,
			EndpointAlertMessage(cfg.Name, result.StatusCode, result.Message, cfg.URL, now))
	}

	switch {
	case result.IsTransportFailure():
		p.attempt(ctx, Key(CategoryCritical, cfg.Name, cfg.URL), p.cfg.CriticalCooldown,
			CriticalAlertMessage(cfg.Name, errorDescription(result), cfg.URL, now))
	case cfg.Group == model.GroupBaseline && !result.IsSuccess():
		p.attempt(ctx, Key(CategoryCritical, baselineAlertName, cfg.URL), p.cfg.CriticalCooldown,
			CriticalAlertMessage(baselineAlertName, fmt.Sprintf("%s returned %s: %s", cfg.Name, result.StatusCode, result.Message), cfg.URL, now))
	}

	if result.Severity == model.SeverityCritical && !result.IsTransportFailure() {
		p.attempt(ctx, Key(CategorySlow, cfg.Name, cfg.URL), p.cfg.SlowCooldown,
			SlowResponseMessage(cfg.Name, result.LatencyMs, cfg.URL, now))
	}
}

func (p *policy) OnAlertEvents(ctx context.Context, events []model.AlertEvent) {
	for _, event := range events {
		if event.Kind != model.AlertEventTriggered {
			continue
		}
		switch event.Alert.AlertType {
		case model.AlertTypeConsecutiveErrors:
			p.attempt(ctx, Key(CategoryConsecutive, event.Alert.EndpointName), p.cfg.ConsecutiveCooldown, AlertTriggeredMessage(event.Alert))
		case model.AlertTypeDowntime:
			p.attempt(ctx, Key(CategoryDowntime, event.Alert.EndpointName), p.cfg.CriticalCooldown, AlertTriggeredMessage(event.Alert))
		}
	}
}

func (p *policy) OnCycle(ctx context.Context, summary model.CycleSummary) {
	bpjsStatus := groupStatus(summary, model.GroupBpjs)
	baselineStatus := groupStatus(summary, model.GroupBaseline)
	msg, ok := DiagnosisMessage(bpjsStatus, baselineStatus, p.now())
	if !ok {
		return
	}
	p.attempt(ctx, Key(CategoryDiagnosis, bpjsStatus, baselineStatus), p.cfg.DiagnosisCooldown, msg)
}

func (p *policy) OnCustomProbe(ctx context.Context, url string, result model.CustomProbeResult) {
	now := p.now()
	if result.IsTransportFailure() {
		p.attempt(ctx, Key(CategoryCritical, customProbeName, url), p.cfg.CriticalCooldown,
			CriticalAlertMessage(customProbeName, result.Message, url, now))
		return
	}
	if !p.isNoteworthy(result.Code) {
		return
	}
	name := customProbeName
	if result.IsSigned {
		name = customSignedProbeName
	}
	p.attempt(ctx, Key(CategoryEndpoint, name, result.Code, url), p.cfg.EndpointCooldown,
		EndpointAlertMessage(name, result.Code, result.Message, url, now))
}

func (p *policy) OnDeviceOffline(ctx context.Context, device model.DeviceStatus) {
	p.attempt(ctx, Key(CategoryOffline, device.DeviceID), p.cfg.OfflineCooldown,
		DeviceOfflineMessage(device, p.cfg.OfflineMinutes, p.now()))
}

func (p *policy) isNoteworthy(code string) bool {
	return code != "" && slices.Contains(p.cfg.NoteworthyCodes, code)
}

func (p *policy) attempt(ctx context.Context, key string, cooldown time.Duration, message string) {
	_, err := p.gate.Attempt(ctx, key, cooldown, message)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrDeliveryDisabled):
		p.logger.Debug("notification dropped, no delivery channel configured", zap.String("cooldown_key", key))
	default:
		p.logger.Error("notification failed", zap.String("cooldown_key", key), zap.Error(err))
	}
}

func groupStatus(summary model.CycleSummary, group string) string {
	if g, ok := summary.Groups[group]; ok && g.Error > 0 {
		return model.OutcomeError
	}
	return model.OutcomeSuccess
}

func errorDescription(result model.ProbeResult) string {
	if result.ErrorDetails != "" {
		return result.Message + ": " + result.ErrorDetails
	}
	if result.HTTPStatus > 0 {
		return result.Message + " (HTTP " + strconv.Itoa(result.HTTPStatus) + ")"
	}
	return result.Message
}

func NewPolicy(gate Gate, cfg PolicyConfig, logger *zap.Logger, now func() time.Time) Policy {
	if now == nil {
		now = time.Now
	}
	return &policy{
		gate:   gate,
		cfg:    cfg,
		logger: logger,
		now:    now,
	}
}
