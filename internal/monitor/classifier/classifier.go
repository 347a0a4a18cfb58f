package classifier

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

const goodThresholdMs = 500

type Classification struct {
	Outcome  string
	Severity string
	Code     string
	Message  string
	// Embedded is true when Code comes from the response body instead of the transport status.
	Embedded bool
}

type embeddedMeta struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
}

type envelope struct {
	MetaData *embeddedMeta `json:"metaData"`
	Metadata *embeddedMeta `json:"metadata"`
}

// EmbeddedStatus extracts the nested metaData code and message from a JSON body.
// Codes may be sent either as numbers or strings.
func EmbeddedStatus(body []byte) (code string, message string, ok bool) {
	if len(body) == 0 {
		return "", "", false
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", "", false
	}
	meta := env.MetaData
	if meta == nil {
		meta = env.Metadata
	}
	if meta == nil || len(meta.Code) == 0 {
		return "", "", false
	}
	raw := strings.TrimSpace(string(meta.Code))
	if raw == "null" {
		return "", "", false
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	return raw, meta.Message, true
}

// Severity buckets latency with inclusive lower bounds.
func Severity(latencyMs, warningMs, criticalMs int64) string {
	switch {
	case latencyMs >= criticalMs:
		return model.SeverityCritical
	case latencyMs >= warningMs:
		return model.SeveritySlow
	case latencyMs >= goodThresholdMs:
		return model.SeverityGood
	default:
		return model.SeverityExcellent
	}
}

func Classify(result model.ProbeResult, cfg model.EndpointConfig) Classification {
	if result.IsTransportFailure() {
		outcome := result.Outcome
		if outcome != model.OutcomeTimeout {
			outcome = model.OutcomeError
		}
		return Classification{
			Outcome:  outcome,
			Severity: model.SeverityCritical,
			Code:     result.StatusCode,
			Message:  result.Message,
		}
	}

	c := Classification{
		Severity: Severity(result.LatencyMs, cfg.WarningThreshold(), cfg.CriticalThreshold()),
		Code:     strconv.Itoa(result.HTTPStatus),
		Message:  statusMessage(result.HTTPStatus),
		Outcome:  model.OutcomeError,
	}
	if code, msg, ok := EmbeddedStatus(result.Body); ok {
		c.Code = code
		c.Embedded = true
		if msg != "" {
			c.Message = msg
		}
		if code == "200" {
			c.Outcome = model.OutcomeSuccess
		}
		return c
	}

	if cfg.IsLiveness() {
		if result.HTTPStatus >= 200 && result.HTTPStatus < 400 {
			c.Outcome = model.OutcomeSuccess
		}
		return c
	}
	expected := cfg.ExpectedStatus
	if expected == 0 {
		expected = http.StatusOK
	}
	if result.HTTPStatus == expected {
		c.Outcome = model.OutcomeSuccess
	}
	return c
}

// Apply returns a copy of the result with the classification filled in.
func Apply(result model.ProbeResult, cfg model.EndpointConfig) model.ProbeResult {
	c := Classify(result, cfg)
	result.Outcome = c.Outcome
	result.Severity = c.Severity
	result.StatusCode = c.Code
	result.Message = c.Message
	return result
}

func statusMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "HTTP " + strconv.Itoa(status)
}
