package routes

import (
	"BPJS_Monitoring_Service/internal/monitor/api/handler"
	"BPJS_Monitoring_Service/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const (
	ScopeProbesRun   = "probes:run"
	ScopeAlertsRead  = "alerts:read"
	ScopeAlertsWrite = "alerts:write"
	ScopeDevicesRead = "devices:read"
	ScopeReportsSend = "reports:send"
)

func AddProbeRoutes(r *gin.Engine, handler handler.ProbeHandler, m middleware.AuthMiddleware) {
	r.POST("/probe", m.CheckUserPermission(ScopeProbesRun), handler.CustomProbe())
	r.POST("/cycles", m.CheckUserPermission(ScopeProbesRun), handler.RunCycle())
}

func AddAlertRoutes(r *gin.Engine, handler handler.AlertHandler, m middleware.AuthMiddleware) {
	alertRoutes := r.Group("/alerts")
	alertRoutes.GET("", m.CheckUserPermission(ScopeAlertsRead), handler.GetAlerts())
	alertRoutes.POST("/:id/resolve", m.CheckUserPermission(ScopeAlertsWrite), handler.ResolveAlert())
}

func AddDeviceRoutes(r *gin.Engine, handler handler.DeviceHandler, m middleware.AuthMiddleware) {
	r.GET("/devices", m.CheckUserPermission(ScopeDevicesRead), handler.GetDevices())
}

func AddReportRoutes(r *gin.Engine, handler handler.ReportHandler, m middleware.AuthMiddleware) {
	r.POST("/reports", m.CheckUserPermission(ScopeReportsSend), handler.SendReport())
}
