package service

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/notification"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
)

type DeviceService interface {
	GetDeviceStatuses(ctx context.Context) ([]model.DeviceStatus, error)
	// SweepOfflineDevices notifies about every device without a reading in the offline window and returns them.
	SweepOfflineDevices(ctx context.Context) ([]model.DeviceStatus, error)
}

type deviceService struct {
	sensorRepository repository.SensorRepository
	policy           notification.Policy
	devices          []string
	offlineAfter     time.Duration
	logger           *zap.Logger
	now              func() time.Time
}

func (d *deviceService) GetDeviceStatuses(ctx context.Context) ([]model.DeviceStatus, error) {
	lastSeen, err := d.lastSeen(ctx)
	if err != nil {
		return nil, fmt.Errorf("DeviceService.GetDeviceStatuses: %w", err)
	}
	now := d.now()
	statuses := make([]model.DeviceStatus, 0, len(lastSeen))
	for _, device := range lastSeen {
		statuses = append(statuses, device.StatusAt(now))
	}
	return statuses, nil
}

func (d *deviceService) SweepOfflineDevices(ctx context.Context) ([]model.DeviceStatus, error) {
	lastSeen, err := d.lastSeen(ctx)
	if err != nil {
		return nil, fmt.Errorf("DeviceService.SweepOfflineDevices: %w", err)
	}
	now := d.now()
	cutoff := now.Add(-d.offlineAfter)
	var offline []model.DeviceStatus
	for _, device := range lastSeen {
		if device.LastAt != nil && device.LastAt.After(cutoff) {
			continue
		}
		status := device.StatusAt(now)
		status.Status = model.DeviceStatusOffline
		offline = append(offline, status)
		d.policy.OnDeviceOffline(ctx, status)
	}
	d.logger.Info("device sweep finished", zap.Int("devices", len(lastSeen)), zap.Int("offline", len(offline)))
	return offline, nil
}

// lastSeen merges the configured devices with the ones that ever reported, ordered by id.
func (d *deviceService) lastSeen(ctx context.Context) ([]model.DeviceLastSeen, error) {
	rows, err := d.sensorRepository.GetDevicesLastSeen(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.DeviceLastSeen, len(rows)+len(d.devices))
	for _, id := range d.devices {
		byID[id] = model.DeviceLastSeen{DeviceID: id}
	}
	for _, row := range rows {
		byID[row.DeviceID] = row
	}
	out := make([]model.DeviceLastSeen, 0, len(byID))
	for _, device := range byID {
		out = append(out, device)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeviceID < out[j].DeviceID })
	return out, nil
}

func NewDeviceService(sensorRepository repository.SensorRepository, policy notification.Policy, devices []string, offlineMinutes int, logger *zap.Logger) DeviceService {
	if offlineMinutes <= 0 {
		offlineMinutes = 5
	}
	return &deviceService{
		sensorRepository: sensorRepository,
		policy:           policy,
		devices:          devices,
		offlineAfter:     time.Duration(offlineMinutes) * time.Minute,
		logger:           logger,
		now:              time.Now,
	}
}
