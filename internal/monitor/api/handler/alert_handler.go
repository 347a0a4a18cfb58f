package handler

import (
	"BPJS_Monitoring_Service/internal/monitor/api/dto/response"
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"BPJS_Monitoring_Service/internal/monitor/service"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AlertHandler interface {
	GetAlerts() gin.HandlerFunc
	ResolveAlert() gin.HandlerFunc
}

type alertHandler struct {
	logger       *zap.Logger
	alertService service.AlertService
}

func (a *alertHandler) GetAlerts() gin.HandlerFunc {
	return func(c *gin.Context) {
		l, o, ok := parsePaging(c)
		if !ok {
			return
		}
		alertType := c.Query("alert_type")
		if alertType != "" && alertType != model.AlertTypeConsecutiveErrors && alertType != model.AlertTypeResponseTime && alertType != model.AlertTypeDowntime {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid alert type",
			})
			return
		}
		activeOnly, err := strconv.ParseBool(c.DefaultQuery("active_only", "false"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Active only must be a boolean",
			})
			return
		}
		alerts, err := a.alertService.GetAlerts(c, repository.AlertFilter{
			EndpointName: c.Query("endpoint_name"),
			AlertType:    alertType,
			ActiveOnly:   activeOnly,
			Limit:        l,
			Offset:       o,
		})
		if err != nil {
			err = fmt.Errorf("AlertHandler.GetAlerts: %w", err)
			internalError(a.logger, c, err, "failed to get alerts")
			return
		}
		if alerts == nil {
			alerts = []model.Alert{}
		}
		c.JSON(http.StatusOK, alerts)
	}
}

func (a *alertHandler) ResolveAlert() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Alert id must be a positive integer",
			})
			return
		}
		alert, err := a.alertService.ResolveAlert(c, uint(id))
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrAlertNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Alert not found",
				})
			default:
				err = fmt.Errorf("AlertHandler.ResolveAlert: %w", err)
				internalError(a.logger, c, err, fmt.Sprintf("failed to resolve alert %d", id))
			}
			return
		}
		c.JSON(http.StatusOK, alert)
	}
}

func NewAlertHandler(logger *zap.Logger, alertService service.AlertService) AlertHandler {
	return &alertHandler{
		logger:       logger,
		alertService: alertService,
	}
}
