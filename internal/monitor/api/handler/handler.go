package handler

import (
	"BPJS_Monitoring_Service/internal/monitor/api/dto/response"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const dateLayout = "2006-01-02"

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "url":
		return fmt.Sprintf("The %s field is not a valid url", err.Field())
	case "datetime":
		return fmt.Sprintf("The %s field is not a valid datetime, use YYYY-MM-DD format", err.Field())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("The %s field must be at most %s characters", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

// bindJSON writes the 400 response itself and reports whether the handler should continue.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: formatValidationError(validatorError[0]),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
		}
		return false
	}
	return true
}

func parsePaging(c *gin.Context) (limit int, offset int, ok bool) {
	o, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Offset must be an integer",
		})
		return 0, 0, false
	}
	l, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Limit must be an integer",
		})
		return 0, 0, false
	}
	if o < 0 {
		o = 0
	}
	if l <= 0 {
		l = 10
	}
	return l, o, true
}

// parseDateRange returns [start, end+1day) so the end date is inclusive.
func parseDateRange(startDate string, endDate string) (time.Time, time.Time, string) {
	startTime, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, "Invalid start date"
	}
	endTime, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, "Invalid end date"
	}
	if endTime.Before(startTime) {
		return time.Time{}, time.Time{}, "Invalid end date"
	}
	return startTime, endTime.AddDate(0, 0, 1), ""
}

func loggingError(logger *zap.Logger, c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	userId := c.GetHeader("X-User-Id")
	if userId != "" {
		data = append(data, zap.String("user_id", userId))
	}
	logger.Log(logLevel, errDescription, data...)
}

func internalError(logger *zap.Logger, c *gin.Context, err error, errDescription string) {
	loggingError(logger, c, err, errDescription, zap.ErrorLevel)
	c.JSON(http.StatusInternalServerError, response.Response{
		Message: "Internal server error",
	})
}
