package request

type EndpointRequest struct {
	Name                      string            `json:"name" binding:"required,max=255" validate:"required,max=255"`
	URL                       string            `json:"url" binding:"required,url" validate:"required,url"`
	Method                    string            `json:"method" binding:"omitempty,oneof=GET HEAD PING POST PUT PATCH DELETE" validate:"omitempty,oneof=GET HEAD PING POST PUT PATCH DELETE"`
	Group                     string            `json:"group" binding:"omitempty,oneof=bpjs baseline" validate:"omitempty,oneof=bpjs baseline"`
	Description               string            `json:"description"`
	Signed                    bool              `json:"signed"`
	TimeoutSeconds            int               `json:"timeout_seconds" binding:"omitempty,gte=1,lte=120" validate:"omitempty,gte=1,lte=120"`
	CustomHeaders             map[string]string `json:"custom_headers"`
	ExpectedStatus            int               `json:"expected_status" binding:"omitempty,gte=100,lte=599" validate:"omitempty,gte=100,lte=599"`
	WarningThresholdMs        int64             `json:"warning_threshold_ms" binding:"omitempty,gte=1" validate:"omitempty,gte=1"`
	CriticalThresholdMs       int64             `json:"critical_threshold_ms" binding:"omitempty,gte=1" validate:"omitempty,gte=1"`
	ConsecutiveErrorThreshold int               `json:"consecutive_error_threshold" binding:"omitempty,gte=1" validate:"omitempty,gte=1"`
	IsActive                  *bool             `json:"is_active"`
}
