package repository

import (
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AlertFilter struct {
	EndpointName string
	AlertType    string
	ActiveOnly   bool
	Limit        int
	Offset       int
}

type AlertRepository interface {
	// CreateAlert fails with ErrActiveAlertExists when the endpoint already has an unresolved alert of the same type.
	CreateAlert(ctx context.Context, alert model.Alert) (model.Alert, error)
	FindActiveAlert(ctx context.Context, endpointName string, alertType string) (*model.Alert, error)
	ResolveActiveAlerts(ctx context.Context, endpointName string, alertType string, resolvedAt time.Time) (int64, error)
	ResolveAlertById(ctx context.Context, id uint, resolvedAt time.Time) (model.Alert, error)
	GetAlerts(ctx context.Context, filter AlertFilter) ([]model.Alert, error)
}

type alertRepository struct {
	db *gorm.DB
}

func (a *alertRepository) CreateAlert(ctx context.Context, alert model.Alert) (model.Alert, error) {
	result := a.db.WithContext(ctx).Create(&alert)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return alert, fmt.Errorf("AlertRepository.CreateAlert: %w", apperrors.ErrActiveAlertExists)
		}
		return alert, fmt.Errorf("AlertRepository.CreateAlert: %w", result.Error)
	}
	return alert, nil
}

func (a *alertRepository) FindActiveAlert(ctx context.Context, endpointName string, alertType string) (*model.Alert, error) {
	var alert model.Alert
	err := a.db.WithContext(ctx).
		Where("endpoint_name = ? AND alert_type = ? AND is_resolved = ?", endpointName, alertType, false).
		Order("triggered_at desc").
		First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("AlertRepository.FindActiveAlert: %w", err)
	}
	return &alert, nil
}

func (a *alertRepository) ResolveActiveAlerts(ctx context.Context, endpointName string, alertType string, resolvedAt time.Time) (int64, error) {
	result := a.db.WithContext(ctx).Model(&model.Alert{}).
		Where("endpoint_name = ? AND alert_type = ? AND is_resolved = ?", endpointName, alertType, false).
		Updates(map[string]interface{}{"is_resolved": true, "resolved_at": resolvedAt})
	if result.Error != nil {
		return 0, fmt.Errorf("AlertRepository.ResolveActiveAlerts: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ResolveAlertById leaves an already resolved alert untouched.
func (a *alertRepository) ResolveAlertById(ctx context.Context, id uint, resolvedAt time.Time) (model.Alert, error) {
	var alert model.Alert
	result := a.db.WithContext(ctx).Model(&alert).Clauses(clause.Returning{}).
		Where("id = ? AND is_resolved = ?", id, false).
		Updates(map[string]interface{}{"is_resolved": true, "resolved_at": resolvedAt})
	if result.Error != nil {
		return alert, fmt.Errorf("AlertRepository.ResolveAlertById: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return alert, nil
	}
	err := a.db.WithContext(ctx).First(&alert, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return alert, fmt.Errorf("AlertRepository.ResolveAlertById: %w", apperrors.ErrAlertNotFound)
		}
		return alert, fmt.Errorf("AlertRepository.ResolveAlertById: %w", err)
	}
	return alert, nil
}

func (a *alertRepository) GetAlerts(ctx context.Context, filter AlertFilter) ([]model.Alert, error) {
	query := a.db.WithContext(ctx)
	if filter.EndpointName != "" {
		query = query.Where("endpoint_name = ?", filter.EndpointName)
	}
	if filter.AlertType != "" {
		query = query.Where("alert_type = ?", filter.AlertType)
	}
	if filter.ActiveOnly {
		query = query.Where("is_resolved = ?", false)
	}
	var alerts []model.Alert
	err := query.Order("triggered_at desc").Limit(filter.Limit).Offset(filter.Offset).Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("AlertRepository.GetAlerts: %w", err)
	}
	return alerts, nil
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{
		db: db,
	}
}
