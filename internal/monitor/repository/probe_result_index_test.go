package repository

import (
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const esErrorBody = `{
	"error": {
		"type": "search_phase_exception",
		"reason": "bad query"
	}
}`

func TestProbeResultIndex_GetUptimePercentage(t *testing.T) {
	startTime := time.Now().Add(-24 * time.Hour)
	endTime := time.Now()

	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		mockErr        error
		output         float64
		expectErr      bool
		expectESErr    bool
	}{
		{
			name:           "Success Should return percentage",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"aggregations":{"uptime_percentage":{"value":0.98765}}}`,
			output:         98.77,
		},
		{
			name:           "Success No data should return zero",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"aggregations":{"uptime_percentage":{"value":null}}}`,
			output:         0,
		},
		{
			name:           "Failure Elasticsearch returns error response",
			mockStatusCode: http.StatusBadRequest,
			mockBody:       esErrorBody,
			expectErr:      true,
			expectESErr:    true,
		},
		{
			name:      "Failure Transport error",
			mockErr:   errors.New("connection refused"),
			expectErr: true,
		},
		{
			name:           "Failure Malformed response",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"aggregations":`,
			expectErr:      true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newMockEsClient(t, tc.mockStatusCode, tc.mockBody, tc.mockErr)
			idx := NewProbeResultIndex(client)

			uptime, err := idx.GetUptimePercentage(context.Background(), "Diagnosa", startTime, endTime)
			if tc.expectErr {
				assert.Error(t, err)
				if tc.expectESErr {
					var esErr *apperrors.ElasticSearchError
					require.ErrorAs(t, err, &esErr)
					assert.Equal(t, "search_phase_exception", esErr.Type)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.output, uptime)
		})
	}
}

func TestProbeResultIndex_GetEndpointReports(t *testing.T) {
	body := `{
		"aggregations": {
			"endpoints": {
				"buckets": [
					{"key": "Diagnosa", "doc_count": 4, "success": {"value": 3}, "avg_latency": {"value": 812.456}},
					{"key": "Poli", "doc_count": 2, "success": {"value": 0}, "avg_latency": {"value": null}}
				]
			}
		}
	}`
	client, _ := newMockEsClient(t, http.StatusOK, body, nil)
	idx := NewProbeResultIndex(client)

	reports, err := idx.GetEndpointReports(context.Background(), time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	assert.Equal(t, []EndpointReport{
		{EndpointName: "Diagnosa", Checks: 4, Success: 3, UptimePercentage: 75, AvgLatencyMs: 812.46},
		{EndpointName: "Poli", Checks: 2, Success: 0, UptimePercentage: 0, AvgLatencyMs: 0},
	}, reports)

	client, _ = newMockEsClient(t, http.StatusInternalServerError, esErrorBody, nil)
	_, err = NewProbeResultIndex(client).GetEndpointReports(context.Background(), time.Now().Add(-time.Hour), time.Now())
	assert.Error(t, err)
}

func TestProbeResultIndex_IndexResult(t *testing.T) {
	result := model.ProbeResult{
		ID:           "result-1",
		EndpointName: "Diagnosa",
		StatusCode:   "200",
		Outcome:      model.OutcomeSuccess,
		LatencyMs:    120,
		CheckedAt:    time.Now(),
		Body:         []byte("not indexed"),
	}

	client, rt := newMockEsClient(t, http.StatusCreated, `{"result":"created"}`, nil)
	idx := NewProbeResultIndex(client)
	require.NoError(t, idx.IndexResult(context.Background(), result))

	require.NotEmpty(t, rt.Requests)
	req := rt.Requests[len(rt.Requests)-1]
	assert.Contains(t, req.URL.Path, "/probe_results/_doc/result-1")
	raw, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "Diagnosa", doc["endpoint_name"])
	assert.Equal(t, float64(1), doc["success_numeric"])
	assert.NotContains(t, doc, "Body")

	client, _ = newMockEsClient(t, http.StatusBadRequest, esErrorBody, nil)
	err = NewProbeResultIndex(client).IndexResult(context.Background(), result)
	var esErr *apperrors.ElasticSearchError
	assert.ErrorAs(t, err, &esErr)
}
