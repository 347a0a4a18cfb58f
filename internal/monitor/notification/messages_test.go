package notification

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosisMessage(t *testing.T) {
	at := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		name     string
		bpjs     string
		baseline string
		contains string
		ok       bool
	}{
		{name: "both failing", bpjs: model.OutcomeError, baseline: model.OutcomeError, contains: "INTERNET CONNECTION ISSUE", ok: true},
		{name: "bpjs failing", bpjs: model.OutcomeError, baseline: model.OutcomeSuccess, contains: "BPJS API SPECIFIC ISSUE", ok: true},
		{name: "baseline failing", bpjs: model.OutcomeSuccess, baseline: model.OutcomeError, contains: "PARTIAL CONNECTION ISSUE", ok: true},
		{name: "healthy", bpjs: model.OutcomeSuccess, baseline: model.OutcomeSuccess, ok: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg, ok := DiagnosisMessage(tc.bpjs, tc.baseline, at)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Contains(t, msg, tc.contains)
				assert.Contains(t, msg, "2025-01-01 10:00:00")
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestEndpointAlertMessage(t *testing.T) {
	msg := EndpointAlertMessage("Diagnosa", "201", "Data tidak ditemukan", "https://example.test/diagnosa", time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, "🚨 BPJS Monitoring Alert\nEndpoint: Diagnosa\nStatus: 201\nMessage: Data tidak ditemukan\nURL: https://example.test/diagnosa\nTime: 2025-01-01 10:00:00", msg)
}

func TestDeviceOfflineMessage(t *testing.T) {
	at := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	msg := DeviceOfflineMessage(model.DeviceStatus{DeviceID: "esp-01"}, 5, at)
	assert.Contains(t, msg, "Last Data: never")

	last := at.Add(-10 * time.Minute)
	msg = DeviceOfflineMessage(model.DeviceStatus{DeviceID: "esp-01", LastSeenAt: &last}, 5, at)
	assert.Contains(t, msg, "Last Data: 2025-01-01 09:50:00")
}
