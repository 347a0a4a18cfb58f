package request

import "encoding/json"

type UpdateEndpointRequest struct {
	URL                       *string           `json:"url" binding:"omitempty,url"`
	Method                    *string           `json:"method" binding:"omitempty,oneof=GET HEAD PING POST PUT PATCH DELETE"`
	Group                     *string           `json:"group" binding:"omitempty,oneof=bpjs baseline"`
	Description               *string           `json:"description"`
	Signed                    *bool             `json:"signed"`
	TimeoutSeconds            *int              `json:"timeout_seconds" binding:"omitempty,gte=1,lte=120"`
	CustomHeaders             map[string]string `json:"custom_headers"`
	ExpectedStatus            *int              `json:"expected_status" binding:"omitempty,gte=100,lte=599"`
	WarningThresholdMs        *int64            `json:"warning_threshold_ms" binding:"omitempty,gte=1"`
	CriticalThresholdMs       *int64            `json:"critical_threshold_ms" binding:"omitempty,gte=1"`
	ConsecutiveErrorThreshold *int              `json:"consecutive_error_threshold" binding:"omitempty,gte=1"`
	IsActive                  *bool             `json:"is_active"`
}

// Fields returns the column updates for the fields present in the request.
func (u UpdateEndpointRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.URL != nil {
		fields["url"] = *u.URL
	}
	if u.Method != nil {
		fields["method"] = *u.Method
	}
	if u.Group != nil {
		fields["group"] = *u.Group
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Signed != nil {
		fields["signed"] = *u.Signed
	}
	if u.TimeoutSeconds != nil {
		fields["timeout_seconds"] = *u.TimeoutSeconds
	}
	if u.CustomHeaders != nil {
		// map updates bypass the gorm serializer, the column gets the encoded document
		b, _ := json.Marshal(u.CustomHeaders)
		fields["custom_headers"] = string(b)
	}
	if u.ExpectedStatus != nil {
		fields["expected_status"] = *u.ExpectedStatus
	}
	if u.WarningThresholdMs != nil {
		fields["warning_threshold_ms"] = *u.WarningThresholdMs
	}
	if u.CriticalThresholdMs != nil {
		fields["critical_threshold_ms"] = *u.CriticalThresholdMs
	}
	if u.ConsecutiveErrorThreshold != nil {
		fields["consecutive_error_threshold"] = *u.ConsecutiveErrorThreshold
	}
	if u.IsActive != nil {
		fields["is_active"] = *u.IsActive
	}
	return fields
}
