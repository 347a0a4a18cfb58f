package model

import "time"

const (
	AlertTypeConsecutiveErrors = "consecutive_errors"
	AlertTypeResponseTime      = "response_time"
	AlertTypeDowntime          = "downtime"
)

type Alert struct {
	ID           uint                   `gorm:"primaryKey" json:"id"`
	EndpointName string                 `json:"endpoint_name"`
	AlertType    string                 `json:"alert_type"`
	AlertMessage string                 `json:"alert_message"`
	AlertData    map[string]interface{} `gorm:"serializer:json" json:"alert_data"`
	IsResolved   bool                   `json:"is_resolved"`
	TriggeredAt  time.Time              `json:"triggered_at"`
	ResolvedAt   *time.Time             `json:"resolved_at"`
}

func (Alert) TableName() string {
	return "monitoring_alerts"
}

const (
	AlertEventTriggered = "triggered"
	AlertEventResolved  = "resolved"
)

type AlertEvent struct {
	Kind  string
	Alert Alert
}
