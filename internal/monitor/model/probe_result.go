package model

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

const (
	SeverityExcellent = "excellent"
	SeverityGood      = "good"
	SeveritySlow      = "slow"
	SeverityCritical  = "critical"
)

// Status code sentinels for probes that never received a response.
const (
	CodeTimeout = "TIMEOUT"
	CodeError   = "ERROR"
)

type ProbeResult struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	EndpointName string    `json:"endpoint_name"`
	Group        string    `json:"group"`
	URL          string    `json:"url"`
	Method       string    `json:"method"`
	StatusCode   string    `json:"status_code"`
	HTTPStatus   int       `json:"http_status"`
	LatencyMs    int64     `json:"latency_ms"`
	Outcome      string    `json:"outcome"`
	Severity     string    `json:"severity"`
	Message      string    `json:"message"`
	ErrorDetails string    `json:"error_details,omitempty"`
	CheckedAt    time.Time `json:"checked_at"`

	Body []byte `gorm:"-" json:"-"`
}

func (p ProbeResult) IsSuccess() bool {
	return p.Outcome == OutcomeSuccess
}

// IsTransportFailure reports whether no response was received at all.
func (p ProbeResult) IsTransportFailure() bool {
	return p.StatusCode == CodeTimeout || p.StatusCode == CodeError
}
