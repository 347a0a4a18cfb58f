package handler

import (
	"BPJS_Monitoring_Service/internal/monitor/api/dto/request"
	"BPJS_Monitoring_Service/internal/monitor/api/dto/response"
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/service"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProbeHandler interface {
	CustomProbe() gin.HandlerFunc
	RunCycle() gin.HandlerFunc
}

type probeHandler struct {
	logger       *zap.Logger
	probeService service.ProbeService
	cycleService service.CycleService
}

func (p *probeHandler) CustomProbe() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ProbeRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := p.probeService.CustomProbe(c, model.CustomProbeRequest{
			URL:            req.URL,
			Method:         strings.ToUpper(req.Method),
			TimeoutSeconds: req.TimeoutSeconds,
		})
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidEndpointConfig):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: invalidConfigMessage(err),
				})
			default:
				err = fmt.Errorf("ProbeHandler.CustomProbe: %w", err)
				internalError(p.logger, c, err, fmt.Sprintf("failed to probe %s", req.URL))
			}
			return
		}
		if res.IsTransportFailure() {
			loggingError(p.logger, c, errors.New(res.Message), fmt.Sprintf("custom probe of %s failed", req.URL), zap.WarnLevel)
			c.JSON(http.StatusInternalServerError, res)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// RunCycle runs a full cycle outside the schedule. The cycle outlives a client disconnect.
func (p *probeHandler) RunCycle() gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := p.cycleService.RunCycle(context.WithoutCancel(c.Request.Context()))
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrCycleInProgress):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Monitoring cycle already in progress",
				})
			case errors.Is(err, apperrors.ErrInvalidEndpointConfig):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: invalidConfigMessage(err),
				})
			default:
				err = fmt.Errorf("ProbeHandler.RunCycle: %w", err)
				internalError(p.logger, c, err, "failed to run monitoring cycle")
			}
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func NewProbeHandler(logger *zap.Logger, probeService service.ProbeService, cycleService service.CycleService) ProbeHandler {
	return &probeHandler{
		logger:       logger,
		probeService: probeService,
		cycleService: cycleService,
	}
}
