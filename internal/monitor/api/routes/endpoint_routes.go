package routes

import (
	"BPJS_Monitoring_Service/internal/monitor/api/handler"
	"BPJS_Monitoring_Service/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const (
	ScopeEndpointsRead  = "endpoints:read"
	ScopeEndpointsWrite = "endpoints:write"
)

func AddEndpointRoutes(r *gin.Engine, handler handler.EndpointHandler, m middleware.AuthMiddleware) {
	endpointRoutes := r.Group("/endpoints")
	endpointRoutes.POST("", m.CheckUserPermission(ScopeEndpointsWrite), handler.CreateEndpoint())
	endpointRoutes.GET("", m.CheckUserPermission(ScopeEndpointsRead), handler.GetEndpoints())
	endpointRoutes.POST("/import", m.CheckUserPermission(ScopeEndpointsWrite), handler.ImportEndpointsFromExcelFile())
	endpointRoutes.GET("/export", m.CheckUserPermission(ScopeEndpointsRead), handler.ExportEndpointsToExcelFile())
	endpointRoutes.GET("/:name", m.CheckUserPermission(ScopeEndpointsRead), handler.GetEndpoint())
	endpointRoutes.PATCH("/:name", m.CheckUserPermission(ScopeEndpointsWrite), handler.UpdateEndpoint())
	endpointRoutes.DELETE("/:name", m.CheckUserPermission(ScopeEndpointsWrite), handler.DeleteEndpoint())
	endpointRoutes.GET("/:name/results", m.CheckUserPermission(ScopeEndpointsRead), handler.GetRecentResults())
	endpointRoutes.GET("/:name/uptime", m.CheckUserPermission(ScopeEndpointsRead), handler.GetUptimePercentage())
}
