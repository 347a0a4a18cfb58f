package classifier

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity(t *testing.T) {
	testCases := []struct {
		latency  int64
		expected string
	}{
		{latency: 2500, expected: model.SeverityCritical},
		{latency: 2000, expected: model.SeverityCritical},
		{latency: 1999, expected: model.SeveritySlow},
		{latency: 1000, expected: model.SeveritySlow},
		{latency: 999, expected: model.SeverityGood},
		{latency: 500, expected: model.SeverityGood},
		{latency: 499, expected: model.SeverityExcellent},
		{latency: 0, expected: model.SeverityExcellent},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Severity(tc.latency, 1000, 2000), "latency %d", tc.latency)
	}
}

func TestEmbeddedStatus(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		expectCode  string
		expectMsg   string
		expectFound bool
	}{
		{name: "string code", body: `{"metaData":{"code":"200","message":"OK"}}`, expectCode: "200", expectMsg: "OK", expectFound: true},
		{name: "numeric code", body: `{"metaData":{"code":201,"message":"Data tidak ditemukan"}}`, expectCode: "201", expectMsg: "Data tidak ditemukan", expectFound: true},
		{name: "lowercase envelope", body: `{"metadata":{"code":"404","message":"Not Found"}}`, expectCode: "404", expectMsg: "Not Found", expectFound: true},
		{name: "no envelope", body: `{"status":"ok"}`},
		{name: "null code", body: `{"metaData":{"code":null}}`},
		{name: "not json", body: `<html></html>`},
		{name: "empty"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg, ok := EmbeddedStatus([]byte(tc.body))
			assert.Equal(t, tc.expectFound, ok)
			assert.Equal(t, tc.expectCode, code)
			assert.Equal(t, tc.expectMsg, msg)
		})
	}
}

func TestClassify(t *testing.T) {
	dataCfg := model.EndpointConfig{Name: "Diagnosa", Method: model.MethodGet}
	pingCfg := model.EndpointConfig{Name: "Google", Method: model.MethodPing}

	testCases := []struct {
		name           string
		result         model.ProbeResult
		cfg            model.EndpointConfig
		expectOutcome  string
		expectSeverity string
		expectCode     string
		expectEmbedded bool
	}{
		{
			name:           "embedded 200 with slow latency is a critical success",
			result:         model.ProbeResult{StatusCode: "200", HTTPStatus: 200, LatencyMs: 2500, Body: []byte(`{"metaData":{"code":"200","message":"OK"}}`)},
			cfg:            dataCfg,
			expectOutcome:  model.OutcomeSuccess,
			expectSeverity: model.SeverityCritical,
			expectCode:     "200",
			expectEmbedded: true,
		},
		{
			name:           "embedded code overrides transport status",
			result:         model.ProbeResult{StatusCode: "200", HTTPStatus: 200, LatencyMs: 100, Body: []byte(`{"metaData":{"code":201,"message":"Data tidak ada"}}`)},
			cfg:            dataCfg,
			expectOutcome:  model.OutcomeError,
			expectSeverity: model.SeverityExcellent,
			expectCode:     "201",
			expectEmbedded: true,
		},
		{
			name:           "liveness accepts redirects",
			result:         model.ProbeResult{StatusCode: "301", HTTPStatus: 301, LatencyMs: 600},
			cfg:            pingCfg,
			expectOutcome:  model.OutcomeSuccess,
			expectSeverity: model.SeverityGood,
			expectCode:     "301",
		},
		{
			name:           "liveness rejects 4xx",
			result:         model.ProbeResult{StatusCode: "404", HTTPStatus: 404, LatencyMs: 10},
			cfg:            pingCfg,
			expectOutcome:  model.OutcomeError,
			expectSeverity: model.SeverityExcellent,
			expectCode:     "404",
		},
		{
			name:           "data check requires exact status",
			result:         model.ProbeResult{StatusCode: "204", HTTPStatus: 204, LatencyMs: 1200},
			cfg:            dataCfg,
			expectOutcome:  model.OutcomeError,
			expectSeverity: model.SeveritySlow,
			expectCode:     "204",
		},
		{
			name:           "data check honours expected status",
			result:         model.ProbeResult{StatusCode: "204", HTTPStatus: 204, LatencyMs: 10},
			cfg:            model.EndpointConfig{Method: model.MethodGet, ExpectedStatus: 204},
			expectOutcome:  model.OutcomeSuccess,
			expectSeverity: model.SeverityExcellent,
			expectCode:     "204",
		},
		{
			name:           "per endpoint thresholds",
			result:         model.ProbeResult{StatusCode: "200", HTTPStatus: 200, LatencyMs: 800},
			cfg:            model.EndpointConfig{Method: model.MethodGet, WarningThresholdMs: 600, CriticalThresholdMs: 800},
			expectOutcome:  model.OutcomeSuccess,
			expectSeverity: model.SeverityCritical,
			expectCode:     "200",
		},
		{
			name:           "timeout is critical",
			result:         model.ProbeResult{StatusCode: model.CodeTimeout, Outcome: model.OutcomeTimeout, LatencyMs: 10000},
			cfg:            dataCfg,
			expectOutcome:  model.OutcomeTimeout,
			expectSeverity: model.SeverityCritical,
			expectCode:     model.CodeTimeout,
		},
		{
			name:           "connection error is critical",
			result:         model.ProbeResult{StatusCode: model.CodeError, Outcome: model.OutcomeError, LatencyMs: 3},
			cfg:            dataCfg,
			expectOutcome:  model.OutcomeError,
			expectSeverity: model.SeverityCritical,
			expectCode:     model.CodeError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Classify(tc.result, tc.cfg)
			assert.Equal(t, tc.expectOutcome, c.Outcome)
			assert.Equal(t, tc.expectSeverity, c.Severity)
			assert.Equal(t, tc.expectCode, c.Code)
			assert.Equal(t, tc.expectEmbedded, c.Embedded)
		})
	}
}

func TestApply(t *testing.T) {
	res := Apply(model.ProbeResult{
		EndpointName: "Peserta",
		StatusCode:   "200",
		HTTPStatus:   200,
		LatencyMs:    120,
		Body:         []byte(`{"metaData":{"code":"200","message":"Sukses"}}`),
	}, model.EndpointConfig{Method: model.MethodGet})

	assert.Equal(t, "Peserta", res.EndpointName)
	assert.Equal(t, model.OutcomeSuccess, res.Outcome)
	assert.Equal(t, model.SeverityExcellent, res.Severity)
	assert.Equal(t, "Sukses", res.Message)
}
