package repository

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type SensorRepository interface {
	// GetDevicesLastSeen returns the latest reading time of every device that ever reported.
	GetDevicesLastSeen(ctx context.Context) ([]model.DeviceLastSeen, error)
}

type sensorRepository struct {
	db *gorm.DB
}

type deviceLastSeenRow struct {
	DeviceID string
	LastAt   time.Time
}

func (s *sensorRepository) GetDevicesLastSeen(ctx context.Context) ([]model.DeviceLastSeen, error) {
	var rows []deviceLastSeenRow
	err := s.db.WithContext(ctx).
		Model(&model.SensorReading{}).
		Select("device_id, MAX(recorded_at) AS last_at").
		Group("device_id").
		Order("device_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("SensorRepository.GetDevicesLastSeen: %w", err)
	}
	devices := make([]model.DeviceLastSeen, len(rows))
	for i, row := range rows {
		lastAt := row.LastAt
		devices[i] = model.DeviceLastSeen{DeviceID: row.DeviceID, LastAt: &lastAt}
	}
	return devices, nil
}

func NewSensorRepository(db *gorm.DB) SensorRepository {
	return &sensorRepository{
		db: db,
	}
}
