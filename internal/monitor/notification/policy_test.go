package notification_test

import (
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	mock_notification "BPJS_Monitoring_Service/internal/monitor/mocks/notification"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/notification"
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var policyConfig = notification.PolicyConfig{
	NoteworthyCodes:     []string{"201", "404"},
	EndpointCooldown:    30 * time.Minute,
	CriticalCooldown:    60 * time.Minute,
	SlowCooldown:        120 * time.Minute,
	DiagnosisCooldown:   90 * time.Minute,
	ConsecutiveCooldown: 60 * time.Minute,
	OfflineCooldown:     15 * time.Minute,
	OfflineMinutes:      5,
}

func TestPolicy_OnResult(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	signed := model.EndpointConfig{Name: "Referensi Poli", URL: "https://apijkn.bpjs-kesehatan.go.id/poli", Group: model.GroupBpjs, Signed: true}
	baseline := model.EndpointConfig{Name: "Google DNS", URL: "https://dns.google", Group: model.GroupBaseline}

	testCases := []struct {
		name       string
		cfg        model.EndpointConfig
		result     model.ProbeResult
		setupMocks func(gate *mock_notification.MockGate)
	}{
		{
			name:   "healthy result sends nothing",
			cfg:    signed,
			result: model.ProbeResult{StatusCode: "200", Outcome: model.OutcomeSuccess, Severity: model.SeverityGood},
			setupMocks: func(gate *mock_notification.MockGate) {
				gate.EXPECT().Attempt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
		},
		{
			name:   "noteworthy code on signed endpoint",
			cfg:    signed,
			result: model.ProbeResult{StatusCode: "404", Message: "Data tidak ditemukan", Outcome: model.OutcomeError, Severity: model.SeverityExcellent},
			setupMocks: func(gate *mock_notification.MockGate) {
				gate.EXPECT().Attempt(gomock.Any(), notification.Key(notification.CategoryEndpoint, signed.Name, "404", signed.URL), 30*time.Minute,
					notification.EndpointAlertMessage(signed.Name, "404", "Data tidak ditemukan", signed.URL, now)).Return(true, nil)
			},
		},
		{
			name:   "transport failure sends critical alert",
			cfg:    signed,
			result: model.ProbeResult{StatusCode: model.CodeTimeout, Message: "Timeout", Outcome: model.OutcomeTimeout, Severity: model.SeverityCritical},
			setupMocks: func(gate *mock_notification.MockGate) {
				gate.EXPECT().Attempt(gomock.Any(), notification.Key(notification.CategoryCritical, signed.Name, signed.URL), time.Hour, gomock.Any()).Return(true, nil)
			},
		},
		{
			name:   "failing baseline endpoint",
			cfg:    baseline,
			result: model.ProbeResult{StatusCode: "503", Message: "Service Unavailable", Outcome: model.OutcomeError, Severity: model.SeverityGood},
			setupMocks: func(gate *mock_notification.MockGate) {
				gate.EXPECT().Attempt(gomock.Any(), notification.Key(notification.CategoryCritical, "Internet/Baseline", baseline.URL), time.Hour, gomock.Any()).Return(true, nil)
			},
		},
		{
			name:   "critical latency sends slow response alert",
			cfg:    signed,
			result: model.ProbeResult{StatusCode: "200", Outcome: model.OutcomeSuccess, Severity: model.SeverityCritical, LatencyMs: 2500},
			setupMocks: func(gate *mock_notification.MockGate) {
				gate.EXPECT().Attempt(gomock.Any(), notification.Key(notification.CategorySlow, signed.Name, signed.URL), 2*time.Hour,
					notification.SlowResponseMessage(signed.Name, 2500, signed.URL, now)).Return(true, nil)
			},
		},
		{
			name:   "delivery error is swallowed",
			cfg:    signed,
			result: model.ProbeResult{StatusCode: model.CodeError, Message: "Connection error", Outcome: model.OutcomeError, Severity: model.SeverityCritical},
			setupMocks: func(gate *mock_notification.MockGate) {
				gate.EXPECT().Attempt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.Join(apperrors.ErrDeliveryFailed, errors.New("fonnte down")))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gate := mock_notification.NewMockGate(ctrl)
			tc.setupMocks(gate)
			p := notification.NewPolicy(gate, policyConfig, zap.NewNop(), func() time.Time { return now })
			p.OnResult(context.Background(), tc.cfg, tc.result)
		})
	}
}

func TestPolicy_OnAlertEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := mock_notification.NewMockGate(ctrl)
	p := notification.NewPolicy(gate, policyConfig, zap.NewNop(), time.Now)

	triggered := model.Alert{EndpointName: "Diagnosa", AlertType: model.AlertTypeConsecutiveErrors}
	gate.EXPECT().Attempt(gomock.Any(), notification.Key(notification.CategoryConsecutive, "Diagnosa"), time.Hour, notification.AlertTriggeredMessage(triggered)).Return(true, nil)

	p.OnAlertEvents(context.Background(), []model.AlertEvent{
		{Kind: model.AlertEventTriggered, Alert: triggered},
		{Kind: model.AlertEventResolved, Alert: model.Alert{EndpointName: "Diagnosa", AlertType: model.AlertTypeDowntime}},
		{Kind: model.AlertEventTriggered, Alert: model.Alert{EndpointName: "Diagnosa", AlertType: model.AlertTypeResponseTime}},
	})
}

func TestPolicy_OnCycle(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		name     string
		groups   map[string]model.GroupSummary
		expected string
	}{
		{
			name:   "all healthy",
			groups: map[string]model.GroupSummary{model.GroupBpjs: {Total: 2, Success: 2}, model.GroupBaseline: {Total: 1, Success: 1}},
		},
		{
			name:     "only bpjs failing",
			groups:   map[string]model.GroupSummary{model.GroupBpjs: {Total: 2, Success: 1, Error: 1}, model.GroupBaseline: {Total: 1, Success: 1}},
			expected: notification.Key(notification.CategoryDiagnosis, model.OutcomeError, model.OutcomeSuccess),
		},
		{
			name:     "both failing",
			groups:   map[string]model.GroupSummary{model.GroupBpjs: {Total: 2, Error: 2}, model.GroupBaseline: {Total: 1, Error: 1}},
			expected: notification.Key(notification.CategoryDiagnosis, model.OutcomeError, model.OutcomeError),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gate := mock_notification.NewMockGate(ctrl)
			if tc.expected == "" {
				gate.EXPECT().Attempt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			} else {
				gate.EXPECT().Attempt(gomock.Any(), tc.expected, 90*time.Minute, gomock.Any()).Return(true, nil)
			}
			p := notification.NewPolicy(gate, policyConfig, zap.NewNop(), func() time.Time { return now })
			p.OnCycle(context.Background(), model.CycleSummary{Groups: tc.groups})
		})
	}
}

func TestPolicy_OnCustomProbe(t *testing.T) {
	url := "https://apijkn.bpjs-kesehatan.go.id/peserta"
	testCases := []struct {
		name     string
		result   model.CustomProbeResult
		expected string
	}{
		{
			name:     "signed noteworthy code",
			result:   model.CustomProbeResult{Code: "201", IsSigned: true},
			expected: notification.Key(notification.CategoryEndpoint, "Custom Test BPJS", "201", url),
		},
		{
			name:     "unsigned noteworthy code",
			result:   model.CustomProbeResult{Code: "404"},
			expected: notification.Key(notification.CategoryEndpoint, "Custom Test", "404", url),
		},
		{
			name:     "exception",
			result:   model.CustomProbeResult{Code: model.CodeTimeout, ErrorType: "connection_timeout"},
			expected: notification.Key(notification.CategoryCritical, "Custom Test", url),
		},
		{
			name:   "ordinary response",
			result: model.CustomProbeResult{Code: "200"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gate := mock_notification.NewMockGate(ctrl)
			if tc.expected == "" {
				gate.EXPECT().Attempt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			} else {
				gate.EXPECT().Attempt(gomock.Any(), tc.expected, gomock.Any(), gomock.Any()).Return(true, nil)
			}
			p := notification.NewPolicy(gate, policyConfig, zap.NewNop(), time.Now)
			p.OnCustomProbe(context.Background(), url, tc.result)
		})
	}
}

func TestPolicy_OnDeviceOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := mock_notification.NewMockGate(ctrl)
	p := notification.NewPolicy(gate, policyConfig, zap.NewNop(), time.Now)

	gate.EXPECT().Attempt(gomock.Any(), notification.Key(notification.CategoryOffline, "esp32-ward-3"), 15*time.Minute, gomock.Any()).Return(false, nil)

	p.OnDeviceOffline(context.Background(), model.DeviceStatus{DeviceID: "esp32-ward-3", Status: model.DeviceStatusOffline})
}
