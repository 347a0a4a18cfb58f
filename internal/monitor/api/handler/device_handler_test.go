package handler

import (
	mockservice "BPJS_Monitoring_Service/internal/monitor/mocks/service"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestDeviceHandler_GetDevices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	minutes := 12

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockDeviceService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			setupMocks: func(mockService *mockservice.MockDeviceService) {
				mockService.EXPECT().GetDeviceStatuses(gomock.Any()).Return([]model.DeviceStatus{
					{DeviceID: "ESP32_001", Status: model.DeviceStatusOffline, LastSeenMinutes: &minutes},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"last_seen_minutes":12`,
		},
		{
			name: "Success No Devices",
			setupMocks: func(mockService *mockservice.MockDeviceService) {
				mockService.EXPECT().GetDeviceStatuses(gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "Error Service Fails",
			setupMocks: func(mockService *mockservice.MockDeviceService) {
				mockService.EXPECT().GetDeviceStatuses(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockDeviceService(ctrl)
			tc.setupMocks(mockService)

			handler := NewDeviceHandler(zap.NewNop(), mockService)

			w, c := setupTestContext(t, http.MethodGet, "/devices", nil)

			handler.GetDevices()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}
