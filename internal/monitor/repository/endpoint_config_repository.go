package repository

import (
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EndpointConfigRepository interface {
	CreateEndpoint(ctx context.Context, cfg model.EndpointConfig) (model.EndpointConfig, error)
	UpsertEndpoints(ctx context.Context, cfgs []model.EndpointConfig) (int64, error)
	GetEndpointByName(ctx context.Context, name string) (model.EndpointConfig, error)
	GetEndpoints(ctx context.Context, group string, activeOnly bool, limit int, offset int) ([]model.EndpointConfig, error)
	GetActiveEndpoints(ctx context.Context) ([]model.EndpointConfig, error)
	UpdateEndpoint(ctx context.Context, name string, fields map[string]interface{}) (model.EndpointConfig, error)
	DeleteEndpointByName(ctx context.Context, name string) error
}

// columns overwritten when a seed file re-declares an existing endpoint
var upsertColumns = []string{
	"url", "method", "group", "description", "signed", "timeout_seconds", "custom_headers", "expected_status",
	"warning_threshold_ms", "critical_threshold_ms", "consecutive_error_threshold", "is_active", "updated_at",
}

type endpointConfigRepository struct {
	db *gorm.DB
}

func (e *endpointConfigRepository) CreateEndpoint(ctx context.Context, cfg model.EndpointConfig) (model.EndpointConfig, error) {
	result := e.db.WithContext(ctx).Create(&cfg)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return cfg, fmt.Errorf("EndpointConfigRepository.CreateEndpoint: %w", apperrors.ErrEndpointNameAlreadyExists)
		}
		return cfg, fmt.Errorf("EndpointConfigRepository.CreateEndpoint: %w", result.Error)
	}
	return cfg, nil
}

func (e *endpointConfigRepository) UpsertEndpoints(ctx context.Context, cfgs []model.EndpointConfig) (int64, error) {
	if len(cfgs) == 0 {
		return 0, nil
	}
	result := e.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(&cfgs)
	if result.Error != nil {
		return 0, fmt.Errorf("EndpointConfigRepository.UpsertEndpoints: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (e *endpointConfigRepository) GetEndpointByName(ctx context.Context, name string) (model.EndpointConfig, error) {
	var cfg model.EndpointConfig
	result := e.db.WithContext(ctx).First(&cfg, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return cfg, fmt.Errorf("EndpointConfigRepository.GetEndpointByName: %w", apperrors.ErrEndpointNotFound)
		}
		return cfg, fmt.Errorf("EndpointConfigRepository.GetEndpointByName: %w", result.Error)
	}
	return cfg, nil
}

func (e *endpointConfigRepository) GetEndpoints(ctx context.Context, group string, activeOnly bool, limit int, offset int) ([]model.EndpointConfig, error) {
	query := e.db.WithContext(ctx)
	if group != "" {
		query = query.Where(`"group" = ?`, group)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	query = query.Order("created_at asc").Limit(limit).Offset(offset)
	var cfgs []model.EndpointConfig
	if result := query.Find(&cfgs); result.Error != nil {
		return nil, fmt.Errorf("EndpointConfigRepository.GetEndpoints: %w", result.Error)
	}
	return cfgs, nil
}

// GetActiveEndpoints keeps creation order so every cycle probes endpoints in the same sequence.
func (e *endpointConfigRepository) GetActiveEndpoints(ctx context.Context) ([]model.EndpointConfig, error) {
	var cfgs []model.EndpointConfig
	result := e.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at asc").Find(&cfgs)
	if result.Error != nil {
		return nil, fmt.Errorf("EndpointConfigRepository.GetActiveEndpoints: %w", result.Error)
	}
	return cfgs, nil
}

func (e *endpointConfigRepository) UpdateEndpoint(ctx context.Context, name string, fields map[string]interface{}) (model.EndpointConfig, error) {
	var cfg model.EndpointConfig
	result := e.db.WithContext(ctx).Model(&cfg).Clauses(clause.Returning{}).Where("name = ?", name).Updates(fields)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return cfg, fmt.Errorf("EndpointConfigRepository.UpdateEndpoint: %w", apperrors.ErrEndpointNameAlreadyExists)
		}
		return cfg, fmt.Errorf("EndpointConfigRepository.UpdateEndpoint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return cfg, fmt.Errorf("EndpointConfigRepository.UpdateEndpoint: %w", apperrors.ErrEndpointNotFound)
	}
	return cfg, nil
}

func (e *endpointConfigRepository) DeleteEndpointByName(ctx context.Context, name string) error {
	result := e.db.WithContext(ctx).Where("name = ?", name).Delete(&model.EndpointConfig{})
	if result.Error != nil {
		return fmt.Errorf("EndpointConfigRepository.DeleteEndpointByName: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("EndpointConfigRepository.DeleteEndpointByName: %w", apperrors.ErrEndpointNotFound)
	}
	return nil
}

func NewEndpointConfigRepository(db *gorm.DB) EndpointConfigRepository {
	return &endpointConfigRepository{
		db: db,
	}
}
