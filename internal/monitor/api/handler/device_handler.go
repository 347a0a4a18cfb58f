package handler

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DeviceHandler interface {
	GetDevices() gin.HandlerFunc
}

type deviceHandler struct {
	logger        *zap.Logger
	deviceService service.DeviceService
}

func (d *deviceHandler) GetDevices() gin.HandlerFunc {
	return func(c *gin.Context) {
		devices, err := d.deviceService.GetDeviceStatuses(c)
		if err != nil {
			err = fmt.Errorf("DeviceHandler.GetDevices: %w", err)
			internalError(d.logger, c, err, "failed to get device statuses")
			return
		}
		if devices == nil {
			devices = []model.DeviceStatus{}
		}
		c.JSON(http.StatusOK, devices)
	}
}

func NewDeviceHandler(logger *zap.Logger, deviceService service.DeviceService) DeviceHandler {
	return &deviceHandler{
		logger:        logger,
		deviceService: deviceService,
	}
}
