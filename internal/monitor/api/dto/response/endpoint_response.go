package response

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"time"
)

type EndpointResponse struct {
	ID                        string            `json:"id"`
	Name                      string            `json:"name"`
	URL                       string            `json:"url"`
	Method                    string            `json:"method"`
	Group                     string            `json:"group"`
	Description               string            `json:"description,omitempty"`
	Signed                    bool              `json:"signed"`
	TimeoutSeconds            int               `json:"timeout_seconds"`
	CustomHeaders             map[string]string `json:"custom_headers,omitempty"`
	ExpectedStatus            int               `json:"expected_status,omitempty"`
	WarningThresholdMs        int64             `json:"warning_threshold_ms"`
	CriticalThresholdMs       int64             `json:"critical_threshold_ms"`
	ConsecutiveErrorThreshold int               `json:"consecutive_error_threshold"`
	IsActive                  bool              `json:"is_active"`
	CreatedAt                 time.Time         `json:"created_at"`
	UpdatedAt                 time.Time         `json:"updated_at"`
}

// CustomHeaders may carry credentials, so only header names are exposed.
func NewEndpointResponse(cfg model.EndpointConfig) EndpointResponse {
	var headers map[string]string
	if len(cfg.CustomHeaders) > 0 {
		headers = make(map[string]string, len(cfg.CustomHeaders))
		for k := range cfg.CustomHeaders {
			headers[k] = "***"
		}
	}
	return EndpointResponse{
		ID:                        cfg.ID,
		Name:                      cfg.Name,
		URL:                       cfg.URL,
		Method:                    cfg.Method,
		Group:                     cfg.Group,
		Description:               cfg.Description,
		Signed:                    cfg.Signed,
		TimeoutSeconds:            cfg.TimeoutSeconds,
		CustomHeaders:             headers,
		ExpectedStatus:            cfg.ExpectedStatus,
		WarningThresholdMs:        cfg.WarningThresholdMs,
		CriticalThresholdMs:       cfg.CriticalThresholdMs,
		ConsecutiveErrorThreshold: cfg.ConsecutiveErrorThreshold,
		IsActive:                  cfg.IsActive,
		CreatedAt:                 cfg.CreatedAt,
		UpdatedAt:                 cfg.UpdatedAt,
	}
}
