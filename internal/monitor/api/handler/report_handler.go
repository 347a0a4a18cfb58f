package handler

import (
	"BPJS_Monitoring_Service/internal/monitor/api/dto/request"
	"BPJS_Monitoring_Service/internal/monitor/api/dto/response"
	"BPJS_Monitoring_Service/internal/monitor/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler interface {
	SendReport() gin.HandlerFunc
}

type reportHandler struct {
	logger            *zap.Logger
	reportService     service.ReportService
	defaultRecipients []string
}

func (r *reportHandler) SendReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if !bindJSON(c, &req) {
			return
		}
		startTime, endTime, msg := parseDateRange(req.StartDate, req.EndDate)
		if msg != "" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: msg,
			})
			return
		}
		recipients := r.defaultRecipients
		if req.Email != "" {
			recipients = []string{req.Email}
		}
		if len(recipients) == 0 {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "The Email field is required",
			})
			return
		}
		if err := r.reportService.SendReport(c, startTime, endTime, recipients); err != nil {
			err = fmt.Errorf("ReportHandler.SendReport: %w", err)
			internalError(r.logger, c, err, "failed to send report")
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

func NewReportHandler(logger *zap.Logger, reportService service.ReportService, defaultRecipients []string) ReportHandler {
	return &reportHandler{
		logger:            logger,
		reportService:     reportService,
		defaultRecipients: defaultRecipients,
	}
}
