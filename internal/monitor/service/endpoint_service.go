package service

import (
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"context"
	"fmt"
	"strings"
	"time"
)

type EndpointService interface {
	CreateEndpoint(ctx context.Context, cfg model.EndpointConfig) (model.EndpointConfig, error)
	GetEndpoint(ctx context.Context, name string) (model.EndpointConfig, error)
	GetEndpoints(ctx context.Context, group string, activeOnly bool, limit int, offset int) ([]model.EndpointConfig, error)
	UpdateEndpoint(ctx context.Context, name string, fields map[string]interface{}) (model.EndpointConfig, error)
	DeleteEndpoint(ctx context.Context, name string) error
	SeedEndpoints(ctx context.Context, cfgs []model.EndpointConfig) (int64, error)
	GetRecentResults(ctx context.Context, name string, n int) ([]model.ProbeResult, error)
	GetUptimePercentage(ctx context.Context, name string, startTime time.Time, endTime time.Time) (float64, error)
}

type endpointService struct {
	endpointRepository    repository.EndpointConfigRepository
	probeResultRepository repository.ProbeResultRepository
	probeResultIndex      repository.ProbeResultIndex
}

func (e *endpointService) CreateEndpoint(ctx context.Context, cfg model.EndpointConfig) (model.EndpointConfig, error) {
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("EndpointService.CreateEndpoint: %w: %w", apperrors.ErrInvalidEndpointConfig, err)
	}
	created, err := e.endpointRepository.CreateEndpoint(ctx, cfg.WithDefaults())
	if err != nil {
		return cfg, fmt.Errorf("EndpointService.CreateEndpoint: %w", err)
	}
	return created, nil
}

func (e *endpointService) GetEndpoint(ctx context.Context, name string) (model.EndpointConfig, error) {
	cfg, err := e.endpointRepository.GetEndpointByName(ctx, name)
	if err != nil {
		return cfg, fmt.Errorf("EndpointService.GetEndpoint: %w", err)
	}
	return cfg, nil
}

func (e *endpointService) GetEndpoints(ctx context.Context, group string, activeOnly bool, limit int, offset int) ([]model.EndpointConfig, error) {
	cfgs, err := e.endpointRepository.GetEndpoints(ctx, group, activeOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("EndpointService.GetEndpoints: %w", err)
	}
	return cfgs, nil
}

// UpdateEndpoint validates the stored config with the changes applied before writing them.
func (e *endpointService) UpdateEndpoint(ctx context.Context, name string, fields map[string]interface{}) (model.EndpointConfig, error) {
	current, err := e.endpointRepository.GetEndpointByName(ctx, name)
	if err != nil {
		return model.EndpointConfig{}, fmt.Errorf("EndpointService.UpdateEndpoint: %w", err)
	}
	if method, ok := fields["method"].(string); ok {
		fields["method"] = strings.ToUpper(method)
	}
	if err = applyFields(current, fields).Validate(); err != nil {
		return model.EndpointConfig{}, fmt.Errorf("EndpointService.UpdateEndpoint: %w: %w", apperrors.ErrInvalidEndpointConfig, err)
	}
	updated, err := e.endpointRepository.UpdateEndpoint(ctx, name, fields)
	if err != nil {
		return model.EndpointConfig{}, fmt.Errorf("EndpointService.UpdateEndpoint: %w", err)
	}
	return updated, nil
}

func (e *endpointService) DeleteEndpoint(ctx context.Context, name string) error {
	if err := e.endpointRepository.DeleteEndpointByName(ctx, name); err != nil {
		return fmt.Errorf("EndpointService.DeleteEndpoint: %w", err)
	}
	return nil
}

// SeedEndpoints upserts by name. Nothing is written when one entry is invalid.
func (e *endpointService) SeedEndpoints(ctx context.Context, cfgs []model.EndpointConfig) (int64, error) {
	seen := make(map[string]struct{}, len(cfgs))
	prepared := make([]model.EndpointConfig, 0, len(cfgs))
	for _, cfg := range cfgs {
		if err := cfg.Validate(); err != nil {
			return 0, fmt.Errorf("EndpointService.SeedEndpoints: %w: %w", apperrors.ErrInvalidEndpointConfig, err)
		}
		if _, ok := seen[cfg.Name]; ok {
			return 0, fmt.Errorf("EndpointService.SeedEndpoints: %w: duplicate endpoint %s", apperrors.ErrInvalidEndpointConfig, cfg.Name)
		}
		seen[cfg.Name] = struct{}{}
		prepared = append(prepared, cfg.WithDefaults())
	}
	n, err := e.endpointRepository.UpsertEndpoints(ctx, prepared)
	if err != nil {
		return 0, fmt.Errorf("EndpointService.SeedEndpoints: %w", err)
	}
	return n, nil
}

func (e *endpointService) GetRecentResults(ctx context.Context, name string, n int) ([]model.ProbeResult, error) {
	results, err := e.probeResultRepository.GetRecentResults(ctx, name, n)
	if err != nil {
		return nil, fmt.Errorf("EndpointService.GetRecentResults: %w", err)
	}
	return results, nil
}

func (e *endpointService) GetUptimePercentage(ctx context.Context, name string, startTime time.Time, endTime time.Time) (float64, error) {
	res, err := e.probeResultIndex.GetUptimePercentage(ctx, name, startTime, endTime)
	if err != nil {
		return 0, fmt.Errorf("EndpointService.GetUptimePercentage: %w", err)
	}
	return res, nil
}

// applyFields overlays the columns that take part in validation.
func applyFields(cfg model.EndpointConfig, fields map[string]interface{}) model.EndpointConfig {
	if v, ok := fields["url"].(string); ok {
		cfg.URL = v
	}
	if v, ok := fields["method"].(string); ok {
		cfg.Method = v
	}
	if v, ok := fields["group"].(string); ok {
		cfg.Group = v
	}
	if v, ok := fields["warning_threshold_ms"].(int64); ok {
		cfg.WarningThresholdMs = v
	}
	if v, ok := fields["critical_threshold_ms"].(int64); ok {
		cfg.CriticalThresholdMs = v
	}
	return cfg
}

func NewEndpointService(endpointRepository repository.EndpointConfigRepository, probeResultRepository repository.ProbeResultRepository, probeResultIndex repository.ProbeResultIndex) EndpointService {
	return &endpointService{
		endpointRepository:    endpointRepository,
		probeResultRepository: probeResultRepository,
		probeResultIndex:      probeResultIndex,
	}
}
