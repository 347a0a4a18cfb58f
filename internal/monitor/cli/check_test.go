package cli

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatResult(t *testing.T) {
	testCases := []struct {
		name     string
		result   model.ProbeResult
		expected string
	}{
		{
			name: "Success",
			result: model.ProbeResult{
				EndpointName: "peserta",
				Outcome:      model.OutcomeSuccess,
				StatusCode:   "200",
				LatencyMs:    350,
			},
			expected: "peserta | success | code=200 | 350ms",
		},
		{
			name: "Timeout",
			result: model.ProbeResult{
				EndpointName: "rujukan",
				Outcome:      model.OutcomeTimeout,
				StatusCode:   model.CodeTimeout,
				LatencyMs:    10000,
			},
			expected: "rujukan | timeout | code=TIMEOUT | 10000ms",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatResult(tc.result))
		})
	}
}

func TestPrintSummary(t *testing.T) {
	results := []model.ProbeResult{
		{EndpointName: "peserta", Group: model.GroupBpjs, Outcome: model.OutcomeSuccess, StatusCode: "200", LatencyMs: 120, Severity: model.SeverityExcellent},
		{EndpointName: "google", Group: model.GroupBaseline, Outcome: model.OutcomeError, StatusCode: "503", LatencyMs: 80, Severity: model.SeverityExcellent},
	}
	summary := model.Summarize(results)
	summary.StartedAt = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	printSummary(&buf, summary)

	out := buf.String()
	assert.Contains(t, out, "Monitoring cycle 2024-05-01 08:00:00")
	assert.Contains(t, out, "peserta | success | code=200 | 120ms")
	assert.Contains(t, out, "google | error | code=503 | 80ms")
	assert.Contains(t, out, "1/2 up, uptime 50.00%, avg 100.00ms")
}

func TestPrintProbeResult(t *testing.T) {
	var buf bytes.Buffer
	printProbeResult(&buf, "https://example.com/health", model.CustomProbeResult{
		ResponseTime: 42,
		Code:         "404",
		Message:      "Not Found",
		Status:       model.CustomStatusNotFound,
		Severity:     model.SeverityExcellent,
		Help:         "Check the path of the url.",
	})

	out := buf.String()
	assert.Contains(t, out, "https://example.com/health")
	assert.Contains(t, out, "not_found")
	assert.Contains(t, out, "42ms (excellent)")
	assert.Contains(t, out, "Check the path of the url.")
	assert.NotContains(t, out, "body")
}
