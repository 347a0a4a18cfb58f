package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrEndpointNotFound          = errors.New("endpoint not found")
	ErrEndpointNameAlreadyExists = errors.New("endpoint name already exists")
	ErrAlertNotFound             = errors.New("alert not found")
	ErrActiveAlertExists         = errors.New("unresolved alert already exists")
	ErrCycleInProgress           = errors.New("monitoring cycle already in progress")
	ErrInvalidEndpointConfig     = errors.New("invalid endpoint config")
	ErrDeliveryFailed            = errors.New("notification delivery failed")
	ErrDeliveryDisabled          = errors.New("notification delivery disabled")
)

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, typeReason string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       typeReason,
		Reason:     reason,
	}
}
