package model

// Custom probe statuses, finer grained than outcomes.
const (
	CustomStatusSuccess     = "success"
	CustomStatusError       = "error"
	CustomStatusTimeout     = "timeout"
	CustomStatusNotFound    = "not_found"
	CustomStatusAuthError   = "auth_error"
	CustomStatusClientError = "client_error"
	CustomStatusServerError = "server_error"
)

type CustomProbeRequest struct {
	URL            string
	Method         string
	TimeoutSeconds int
}

type CustomProbeResult struct {
	ResponseTime int64  `json:"response_time"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	Status       string `json:"status"`
	Severity     string `json:"severity"`
	BodyPreview  string `json:"body_preview,omitempty"`
	IsSigned     bool   `json:"is_signed"`
	HTTPStatus   int    `json:"http_status,omitempty"`
	Help         string `json:"help,omitempty"`
	ErrorType    string `json:"error_type,omitempty"`
}

func (c CustomProbeResult) IsTransportFailure() bool {
	return c.ErrorType != ""
}
