package repository

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type ProbeResultRepository interface {
	CreateResult(ctx context.Context, result model.ProbeResult) error
	// GetRecentResults returns at most n results of the endpoint, most recent first.
	GetRecentResults(ctx context.Context, endpointName string, n int) ([]model.ProbeResult, error)
	GetLastSuccessAt(ctx context.Context, endpointName string) (*time.Time, error)
}

type probeResultRepository struct {
	db *gorm.DB
}

func (p *probeResultRepository) CreateResult(ctx context.Context, result model.ProbeResult) error {
	if err := p.db.WithContext(ctx).Create(&result).Error; err != nil {
		return fmt.Errorf("ProbeResultRepository.CreateResult: %w", err)
	}
	return nil
}

func (p *probeResultRepository) GetRecentResults(ctx context.Context, endpointName string, n int) ([]model.ProbeResult, error) {
	var results []model.ProbeResult
	err := p.db.WithContext(ctx).
		Where("endpoint_name = ?", endpointName).
		Order("checked_at desc").
		Limit(n).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("ProbeResultRepository.GetRecentResults: %w", err)
	}
	return results, nil
}

func (p *probeResultRepository) GetLastSuccessAt(ctx context.Context, endpointName string) (*time.Time, error) {
	var result model.ProbeResult
	err := p.db.WithContext(ctx).
		Where("endpoint_name = ? AND outcome = ?", endpointName, model.OutcomeSuccess).
		Order("checked_at desc").
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ProbeResultRepository.GetLastSuccessAt: %w", err)
	}
	return &result.CheckedAt, nil
}

func NewProbeResultRepository(db *gorm.DB) ProbeResultRepository {
	return &probeResultRepository{
		db: db,
	}
}
