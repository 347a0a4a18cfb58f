package repository

import (
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
)

const esProbeResultIndexName = "probe_results"

type EndpointReport struct {
	EndpointName     string  `json:"endpoint_name"`
	Checks           int64   `json:"checks"`
	Success          int64   `json:"success"`
	UptimePercentage float64 `json:"uptime_percentage"`
	AvgLatencyMs     float64 `json:"avg_latency_ms"`
}

type ProbeResultIndex interface {
	EnsureIndex(ctx context.Context) error
	IndexResult(ctx context.Context, result model.ProbeResult) error
	// GetUptimePercentage returns 0 when the endpoint has no result in the range.
	GetUptimePercentage(ctx context.Context, endpointName string, startTime time.Time, endTime time.Time) (float64, error)
	GetEndpointReports(ctx context.Context, startTime time.Time, endTime time.Time) ([]EndpointReport, error)
}

type probeResultIndex struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esProbeResultDocument struct {
	model.ProbeResult
	SuccessNumeric int `json:"success_numeric"`
}

const esProbeResultMapping = `{
  "mappings": {
    "properties": {
      "id": {"type": "keyword"},
      "endpoint_name": {"type": "keyword"},
      "group": {"type": "keyword"},
      "url": {"type": "keyword"},
      "method": {"type": "keyword"},
      "status_code": {"type": "keyword"},
      "http_status": {"type": "integer"},
      "latency_ms": {"type": "long"},
      "outcome": {"type": "keyword"},
      "severity": {"type": "keyword"},
      "message": {"type": "text"},
      "error_details": {"type": "text"},
      "checked_at": {"type": "date"},
      "success_numeric": {"type": "integer"}
    }
  }
}`

func decodeESError(res io.Reader, statusCode int) error {
	var e esErrorResponse
	if err := json.NewDecoder(res).Decode(&e); err != nil {
		return fmt.Errorf("decode err response: %w", err)
	}
	return apperrors.NewElasticSearchError(statusCode, e.Error.Type, e.Error.Reason)
}

func (p *probeResultIndex) EnsureIndex(ctx context.Context) error {
	res, err := p.es.Indices.Exists([]string{esProbeResultIndexName}, p.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("ProbeResultIndex.EnsureIndex: %w", err)
	}
	res.Body.Close()
	if res.StatusCode == 200 {
		return nil
	}

	res, err = p.es.Indices.Create(esProbeResultIndexName,
		p.es.Indices.Create.WithContext(ctx),
		p.es.Indices.Create.WithBody(strings.NewReader(esProbeResultMapping)))
	if err != nil {
		return fmt.Errorf("ProbeResultIndex.EnsureIndex: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("ProbeResultIndex.EnsureIndex: %w", decodeESError(res.Body, res.StatusCode))
	}
	return nil
}

func (p *probeResultIndex) IndexResult(ctx context.Context, result model.ProbeResult) error {
	doc := esProbeResultDocument{ProbeResult: result}
	if result.IsSuccess() {
		doc.SuccessNumeric = 1
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("ProbeResultIndex.IndexResult encode document: %w", err)
	}
	res, err := p.es.Index(esProbeResultIndexName, &buf,
		p.es.Index.WithContext(ctx),
		p.es.Index.WithDocumentID(result.ID))
	if err != nil {
		return fmt.Errorf("ProbeResultIndex.IndexResult: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("ProbeResultIndex.IndexResult: %w", decodeESError(res.Body, res.StatusCode))
	}
	return nil
}

type esUptimePercentageResponse struct {
	Aggregations struct {
		UptimePercentage struct {
			Value *float64 `json:"value"`
		} `json:"uptime_percentage"`
	} `json:"aggregations"`
}

func (p *probeResultIndex) GetUptimePercentage(ctx context.Context, endpointName string, startTime time.Time, endTime time.Time) (float64, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{
					{
						"term": map[string]interface{}{
							"endpoint_name": endpointName,
						},
					},
					{
						"range": map[string]interface{}{
							"checked_at": map[string]interface{}{
								"gte": startTime,
								"lt":  endTime,
							},
						},
					},
				},
			},
		},
		"aggs": map[string]interface{}{
			"uptime_percentage": map[string]interface{}{
				"avg": map[string]interface{}{
					"field": "success_numeric",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, fmt.Errorf("ProbeResultIndex.GetUptimePercentage encode query: %w", err)
	}
	res, err := p.es.Search(
		p.es.Search.WithContext(ctx),
		p.es.Search.WithIndex(esProbeResultIndexName),
		p.es.Search.WithBody(&buf))
	if err != nil {
		return 0, fmt.Errorf("ProbeResultIndex.GetUptimePercentage: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, fmt.Errorf("ProbeResultIndex.GetUptimePercentage: %w", decodeESError(res.Body, res.StatusCode))
	}

	var uptimeResponse esUptimePercentageResponse
	if err = json.NewDecoder(res.Body).Decode(&uptimeResponse); err != nil {
		return 0, fmt.Errorf("ProbeResultIndex.GetUptimePercentage decode response: %w", err)
	}
	if uptimeResponse.Aggregations.UptimePercentage.Value == nil {
		return 0, nil
	}
	return model.Round2(*uptimeResponse.Aggregations.UptimePercentage.Value * 100), nil
}

type esEndpointReportResponse struct {
	Aggregations struct {
		Endpoints struct {
			Buckets []struct {
				Key      string `json:"key"`
				DocCount int64  `json:"doc_count"`
				Success  struct {
					Value float64 `json:"value"`
				} `json:"success"`
				AvgLatency struct {
					Value *float64 `json:"value"`
				} `json:"avg_latency"`
			} `json:"buckets"`
		} `json:"endpoints"`
	} `json:"aggregations"`
}

func (p *probeResultIndex) GetEndpointReports(ctx context.Context, startTime time.Time, endTime time.Time) ([]EndpointReport, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"checked_at": map[string]interface{}{
					"gte": startTime,
					"lt":  endTime,
				},
			},
		},
		"aggs": map[string]interface{}{
			"endpoints": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "endpoint_name",
					"size":  1000,
					"order": map[string]interface{}{"_key": "asc"},
				},
				"aggs": map[string]interface{}{
					"success": map[string]interface{}{
						"sum": map[string]interface{}{"field": "success_numeric"},
					},
					"avg_latency": map[string]interface{}{
						"avg": map[string]interface{}{"field": "latency_ms"},
					},
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("ProbeResultIndex.GetEndpointReports encode query: %w", err)
	}
	res, err := p.es.Search(
		p.es.Search.WithContext(ctx),
		p.es.Search.WithIndex(esProbeResultIndexName),
		p.es.Search.WithBody(&buf))
	if err != nil {
		return nil, fmt.Errorf("ProbeResultIndex.GetEndpointReports: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("ProbeResultIndex.GetEndpointReports: %w", decodeESError(res.Body, res.StatusCode))
	}

	var reportResponse esEndpointReportResponse
	if err = json.NewDecoder(res.Body).Decode(&reportResponse); err != nil {
		return nil, fmt.Errorf("ProbeResultIndex.GetEndpointReports decode response: %w", err)
	}
	reports := make([]EndpointReport, 0, len(reportResponse.Aggregations.Endpoints.Buckets))
	for _, bucket := range reportResponse.Aggregations.Endpoints.Buckets {
		r := EndpointReport{
			EndpointName:     bucket.Key,
			Checks:           bucket.DocCount,
			Success:          int64(bucket.Success.Value),
			UptimePercentage: model.UptimePercentage(int(bucket.Success.Value), int(bucket.DocCount)),
		}
		if bucket.AvgLatency.Value != nil {
			r.AvgLatencyMs = model.Round2(*bucket.AvgLatency.Value)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func NewProbeResultIndex(esClient *elasticsearch.Client) ProbeResultIndex {
	return &probeResultIndex{
		es: esClient,
	}
}
