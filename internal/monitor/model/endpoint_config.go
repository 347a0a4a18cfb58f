package model

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	MethodGet    = "GET"
	MethodHead   = "HEAD"
	MethodPing   = "PING"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodPatch  = "PATCH"
	MethodDelete = "DELETE"
)

const (
	GroupBpjs     = "bpjs"
	GroupBaseline = "baseline"
)

const (
	DefaultTimeoutSeconds            = 10
	DefaultWarningThresholdMs        = 1000
	DefaultCriticalThresholdMs       = 2000
	DefaultConsecutiveErrorThreshold = 3
)

type EndpointConfig struct {
	ID                        string            `gorm:"default:(-)" json:"id" yaml:"-"`
	Name                      string            `json:"name" yaml:"name"`
	URL                       string            `json:"url" yaml:"url"`
	Method                    string            `json:"method" yaml:"method"`
	Group                     string            `json:"group" yaml:"group"`
	Description               string            `json:"description" yaml:"description"`
	Signed                    bool              `json:"signed" yaml:"signed"`
	TimeoutSeconds            int               `json:"timeout_seconds" yaml:"timeout_seconds"`
	CustomHeaders             map[string]string `gorm:"serializer:json" json:"custom_headers" yaml:"custom_headers"`
	ExpectedStatus            int               `json:"expected_status" yaml:"expected_status"`
	WarningThresholdMs        int64             `json:"warning_threshold_ms" yaml:"warning_threshold_ms"`
	CriticalThresholdMs       int64             `json:"critical_threshold_ms" yaml:"critical_threshold_ms"`
	ConsecutiveErrorThreshold int               `json:"consecutive_error_threshold" yaml:"consecutive_error_threshold"`
	IsActive                  bool              `json:"is_active" yaml:"is_active"`
	CreatedAt                 time.Time         `json:"created_at" yaml:"-"`
	UpdatedAt                 time.Time         `json:"updated_at" yaml:"-"`
}

// IsLiveness reports whether the endpoint is only checked for reachability.
func (e EndpointConfig) IsLiveness() bool {
	m := strings.ToUpper(e.Method)
	return m == MethodPing || m == MethodHead
}

func (e EndpointConfig) Timeout() time.Duration {
	if e.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(e.TimeoutSeconds) * time.Second
}

func (e EndpointConfig) WarningThreshold() int64 {
	if e.WarningThresholdMs <= 0 {
		return DefaultWarningThresholdMs
	}
	return e.WarningThresholdMs
}

func (e EndpointConfig) CriticalThreshold() int64 {
	if e.CriticalThresholdMs <= 0 {
		return DefaultCriticalThresholdMs
	}
	return e.CriticalThresholdMs
}

func (e EndpointConfig) ErrorThreshold() int {
	if e.ConsecutiveErrorThreshold <= 0 {
		return DefaultConsecutiveErrorThreshold
	}
	return e.ConsecutiveErrorThreshold
}

// WithDefaults fills zero-valued tunables, used when configs come from the api or the seed file.
func (e EndpointConfig) WithDefaults() EndpointConfig {
	if e.Method == "" {
		e.Method = MethodGet
	}
	e.Method = strings.ToUpper(e.Method)
	if e.Group == "" {
		e.Group = GroupBpjs
	}
	if e.TimeoutSeconds <= 0 {
		e.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if e.WarningThresholdMs <= 0 {
		e.WarningThresholdMs = DefaultWarningThresholdMs
	}
	if e.CriticalThresholdMs <= 0 {
		e.CriticalThresholdMs = DefaultCriticalThresholdMs
	}
	if e.ConsecutiveErrorThreshold <= 0 {
		e.ConsecutiveErrorThreshold = DefaultConsecutiveErrorThreshold
	}
	return e
}

var methods = map[string]struct{}{
	MethodGet: {}, MethodHead: {}, MethodPing: {}, MethodPost: {}, MethodPut: {}, MethodPatch: {}, MethodDelete: {},
}

// Validate checks the fields a probe cannot run without.
func (e EndpointConfig) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("name is empty")
	}
	u, err := url.Parse(e.URL)
	if err != nil {
		return fmt.Errorf("endpoint %s: %w", e.Name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint %s: url %q is not an absolute http url", e.Name, e.URL)
	}
	if _, ok := methods[strings.ToUpper(e.Method)]; e.Method != "" && !ok {
		return fmt.Errorf("endpoint %s: unsupported method %s", e.Name, e.Method)
	}
	if e.Group != "" && e.Group != GroupBpjs && e.Group != GroupBaseline {
		return fmt.Errorf("endpoint %s: unknown group %s", e.Name, e.Group)
	}
	if e.WarningThresholdMs > 0 && e.CriticalThresholdMs > 0 && e.CriticalThresholdMs < e.WarningThresholdMs {
		return fmt.Errorf("endpoint %s: critical threshold below warning threshold", e.Name)
	}
	return nil
}
