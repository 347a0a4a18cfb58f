package handler

import (
	"BPJS_Monitoring_Service/internal/monitor/api/dto/request"
	"BPJS_Monitoring_Service/internal/monitor/api/dto/response"
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/service"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type EndpointHandler interface {
	CreateEndpoint() gin.HandlerFunc
	GetEndpoints() gin.HandlerFunc
	GetEndpoint() gin.HandlerFunc
	UpdateEndpoint() gin.HandlerFunc
	DeleteEndpoint() gin.HandlerFunc
	ImportEndpointsFromExcelFile() gin.HandlerFunc
	ExportEndpointsToExcelFile() gin.HandlerFunc
	GetRecentResults() gin.HandlerFunc
	GetUptimePercentage() gin.HandlerFunc
}

type endpointHandler struct {
	logger          *zap.Logger
	endpointService service.EndpointService
	validator       *validator.Validate
}

// invalidConfigMessage drops the call-site prefixes and keeps the validation detail.
func invalidConfigMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, apperrors.ErrInvalidEndpointConfig.Error()); i >= 0 {
		msg = msg[i:]
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func (e *endpointHandler) CreateEndpoint() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.EndpointRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := e.endpointService.CreateEndpoint(c, toEndpointConfig(req))
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrEndpointNameAlreadyExists):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Endpoint name already exists",
				})
			case errors.Is(err, apperrors.ErrInvalidEndpointConfig):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: invalidConfigMessage(err),
				})
			default:
				err = fmt.Errorf("EndpointHandler.CreateEndpoint: %w", err)
				internalError(e.logger, c, err, "failed to create endpoint")
			}
			return
		}
		c.JSON(http.StatusCreated, response.NewEndpointResponse(res))
	}
}

func toEndpointConfig(req request.EndpointRequest) model.EndpointConfig {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return model.EndpointConfig{
		Name:                      req.Name,
		URL:                       req.URL,
		Method:                    strings.ToUpper(req.Method),
		Group:                     req.Group,
		Description:               req.Description,
		Signed:                    req.Signed,
		TimeoutSeconds:            req.TimeoutSeconds,
		CustomHeaders:             req.CustomHeaders,
		ExpectedStatus:            req.ExpectedStatus,
		WarningThresholdMs:        req.WarningThresholdMs,
		CriticalThresholdMs:       req.CriticalThresholdMs,
		ConsecutiveErrorThreshold: req.ConsecutiveErrorThreshold,
		IsActive:                  isActive,
	}
}

func (e *endpointHandler) GetEndpoints() gin.HandlerFunc {
	return func(c *gin.Context) {
		l, o, ok := parsePaging(c)
		if !ok {
			return
		}
		group := c.Query("group")
		if group != "" && group != model.GroupBpjs && group != model.GroupBaseline {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid group",
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
		cfgs, err := e.endpointService.GetEndpoints(c, group, activeOnly, l, o)
		if err != nil {
			err = fmt.Errorf("EndpointHandler.GetEndpoints: %w", err)
			internalError(e.logger, c, err, "failed to get endpoints")
			return
		}
		res := make([]response.EndpointResponse, 0, len(cfgs))
		for _, cfg := range cfgs {
			res = append(res, response.NewEndpointResponse(cfg))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (e *endpointHandler) GetEndpoint() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		cfg, err := e.endpointService.GetEndpoint(c, name)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrEndpointNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Endpoint not found",
				})
			default:
				err = fmt.Errorf("EndpointHandler.GetEndpoint: %w", err)
				internalError(e.logger, c, err, fmt.Sprintf("failed to get endpoint %s", name))
			}
			return
		}
		c.JSON(http.StatusOK, response.NewEndpointResponse(cfg))
	}
}

func (e *endpointHandler) UpdateEndpoint() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateEndpointRequest
		if !bindJSON(c, &req) {
			return
		}
		fields := req.Fields()
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "No fields to update",
			})
			return
		}
		name := c.Param("name")
		updated, err := e.endpointService.UpdateEndpoint(c, name, fields)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrEndpointNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Endpoint not found",
				})
			case errors.Is(err, apperrors.ErrInvalidEndpointConfig):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: invalidConfigMessage(err),
				})
			default:
				err = fmt.Errorf("EndpointHandler.UpdateEndpoint: %w", err)
				internalError(e.logger, c, err, fmt.Sprintf("failed to update endpoint %s", name))
			}
			return
		}
		c.JSON(http.StatusOK, response.NewEndpointResponse(updated))
	}
}

func (e *endpointHandler) DeleteEndpoint() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		err := e.endpointService.DeleteEndpoint(c, name)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrEndpointNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Endpoint not found",
				})
			default:
				err = fmt.Errorf("EndpointHandler.DeleteEndpoint: %w", err)
				internalError(e.logger, c, err, fmt.Sprintf("failed to delete endpoint %s", name))
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Endpoint deleted",
		})
	}
}

func (e *endpointHandler) GetRecentResults() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		n, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if n <= 0 {
			n = 10
		}
		results, err := e.endpointService.GetRecentResults(c, name, n)
		if err != nil {
			err = fmt.Errorf("EndpointHandler.GetRecentResults: %w", err)
			internalError(e.logger, c, err, fmt.Sprintf("failed to get results of endpoint %s", name))
			return
		}
		if results == nil {
			results = []model.ProbeResult{}
		}
		c.JSON(http.StatusOK, results)
	}
}

func (e *endpointHandler) GetUptimePercentage() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		startTime, endTime, msg := parseDateRange(c.Query("start_date"), c.Query("end_date"))
		if msg != "" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: msg,
			})
			return
		}
		res, err := e.endpointService.GetUptimePercentage(c, name, startTime, endTime)
		if err != nil {
			err = fmt.Errorf("EndpointHandler.GetUptimePercentage: %w", err)
			internalError(e.logger, c, err, fmt.Sprintf("failed to get uptime percentage of endpoint %s", name))
			return
		}
		c.JSON(http.StatusOK, response.UptimeResponse{
			EndpointName:     name,
			UptimePercentage: res,
		})
	}
}

func (e *endpointHandler) ExportEndpointsToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		l, o, ok := parsePaging(c)
		if !ok {
			return
		}
		group := c.Query("group")
		if group != "" && group != model.GroupBpjs && group != model.GroupBaseline {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid group",
			})
			return
		}
		cfgs, err := e.endpointService.GetEndpoints(c, group, false, l, o)
		if err != nil {
			err = fmt.Errorf("EndpointHandler.ExportEndpointsToExcelFile: %w", err)
			internalError(e.logger, c, err, "failed to export endpoints")
			return
		}
		file, err := generateEndpointsExcelFile(cfgs)
		if err != nil {
			err = fmt.Errorf("EndpointHandler.ExportEndpointsToExcelFile: %w", err)
			internalError(e.logger, c, err, "failed to export endpoints")
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("endpoints-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("EndpointHandler.ExportEndpointsToExcelFile: %w", err)
			internalError(e.logger, c, err, "failed to export endpoints")
			return
		}
		c.Status(http.StatusOK)
	}
}

var endpointColumns = []string{
	"name", "url", "method", "group", "description", "signed", "timeout_seconds", "expected_status",
	"warning_threshold_ms", "critical_threshold_ms", "consecutive_error_threshold", "is_active",
}

// Custom headers are never exported.
func generateEndpointsExcelFile(cfgs []model.EndpointConfig) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Endpoints"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, err
	}
	headers := make([]interface{}, 0, len(endpointColumns))
	for _, col := range endpointColumns {
		headers = append(headers, col)
	}
	if err = f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		f.Close()
		return nil, err
	}
	for i, cfg := range cfgs {
		rowData := []interface{}{
			cfg.Name,
			cfg.URL,
			cfg.Method,
			cfg.Group,
			cfg.Description,
			cfg.Signed,
			cfg.TimeoutSeconds,
			cfg.ExpectedStatus,
			cfg.WarningThresholdMs,
			cfg.CriticalThresholdMs,
			cfg.ConsecutiveErrorThreshold,
			cfg.IsActive,
		}
		startCell := fmt.Sprintf("A%d", i+2)
		if err = f.SetSheetRow(sheetName, startCell, &rowData); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func (e *endpointHandler) ImportEndpointsFromExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		ext := filepath.Ext(file.Filename)
		if ext != ".xlsx" && ext != ".xls" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "File must be excel file",
			})
			return
		}
		importSheet := c.Query("sheet_name")

		validEndpoints, invalidEndpoints, err := e.extractEndpointsFromExcelFile(file, importSheet)
		if err != nil {
			switch {
			case errors.Is(err, errEmptyFile):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "File is empty",
				})
			case errors.Is(err, errSheetNotFound):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Sheet not found",
				})
			case errors.Is(err, errMissingRequiredColumn):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Missing required column",
				})
			default:
				err = fmt.Errorf("EndpointHandler.ImportEndpointsFromExcelFile: %w", err)
				internalError(e.logger, c, err, "failed to import endpoints")
			}
			return
		}

		var imported int64
		if len(validEndpoints) > 0 {
			imported, err = e.endpointService.SeedEndpoints(c, validEndpoints)
			if err != nil {
				switch {
				case errors.Is(err, apperrors.ErrInvalidEndpointConfig):
					c.JSON(http.StatusBadRequest, response.Response{
						Message: invalidConfigMessage(err),
					})
				default:
					err = fmt.Errorf("EndpointHandler.ImportEndpointsFromExcelFile: %w", err)
					internalError(e.logger, c, err, "failed to import endpoints")
				}
				return
			}
		}
		c.JSON(http.StatusOK, response.ImportEndpointResponse{
			ImportedCount:   imported,
			FailedCount:     len(invalidEndpoints),
			FailedEndpoints: invalidEndpoints,
		})
	}
}

var errSheetNotFound = errors.New("sheet not found")
var errEmptyFile = errors.New("file is empty")
var errMissingRequiredColumn = errors.New("missing required column")

func (e *endpointHandler) extractEndpointsFromExcelFile(file *multipart.FileHeader, importSheet string) (validEndpoints []model.EndpointConfig, invalidEndpoints []string, err error) {
	fileContent, err := file.Open()
	if err != nil {
		return
	}
	defer fileContent.Close()

	xlsx, err := excelize.OpenReader(fileContent)
	if err != nil {
		return
	}
	defer xlsx.Close()

	if importSheet == "" {
		importSheet = xlsx.GetSheetName(0)
	} else {
		index, _ := xlsx.GetSheetIndex(importSheet)
		if index == -1 {
			err = errSheetNotFound
			return
		}
	}

	rows, err := xlsx.GetRows(importSheet)
	if err != nil {
		return
	}
	if len(rows) < 2 {
		err = errEmptyFile
		return
	}

	columnMap := make(map[string]int)
	for i, cell := range rows[0] {
		columnMap[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	requiredColumns := []string{"name", "url"}
	for _, requiredColumn := range requiredColumns {
		if _, ok := columnMap[requiredColumn]; !ok {
			err = errMissingRequiredColumn
			return
		}
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		cell := func(column string) string {
			idx, ok := columnMap[column]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		name := cell("name")
		if name == "" && cell("url") == "" {
			continue
		}
		req, parseErr := endpointRequestFromRow(cell)
		if parseErr != nil {
			invalidEndpoints = append(invalidEndpoints, name)
			continue
		}
		if parseErr = e.validator.Struct(req); parseErr != nil {
			invalidEndpoints = append(invalidEndpoints, name)
			continue
		}
		cfg := toEndpointConfig(req)
		if parseErr = cfg.Validate(); parseErr != nil {
			invalidEndpoints = append(invalidEndpoints, name)
			continue
		}
		validEndpoints = append(validEndpoints, cfg)
	}
	return
}

func endpointRequestFromRow(cell func(string) string) (request.EndpointRequest, error) {
	req := request.EndpointRequest{
		Name:        cell("name"),
		URL:         cell("url"),
		Method:      strings.ToUpper(cell("method")),
		Group:       strings.ToLower(cell("group")),
		Description: cell("description"),
	}
	var err error
	if v := cell("signed"); v != "" {
		if req.Signed, err = strconv.ParseBool(v); err != nil {
			return req, err
		}
	}
	if v := cell("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return req, err
		}
		req.IsActive = &active
	}
	ints := map[string]*int{
		"timeout_seconds":             &req.TimeoutSeconds,
		"expected_status":             &req.ExpectedStatus,
		"consecutive_error_threshold": &req.ConsecutiveErrorThreshold,
	}
	for column, dst := range ints {
		if v := cell(column); v != "" {
			if *dst, err = strconv.Atoi(v); err != nil {
				return req, err
			}
		}
	}
	int64s := map[string]*int64{
		"warning_threshold_ms":  &req.WarningThresholdMs,
		"critical_threshold_ms": &req.CriticalThresholdMs,
	}
	for column, dst := range int64s {
		if v := cell(column); v != "" {
			if *dst, err = strconv.ParseInt(v, 10, 64); err != nil {
				return req, err
			}
		}
	}
	return req, nil
}

func NewEndpointHandler(logger *zap.Logger, endpointService service.EndpointService) EndpointHandler {
	return &endpointHandler{
		logger:          logger,
		endpointService: endpointService,
		validator:       validator.New(),
	}
}
