package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCheckUserPermission(t *testing.T) {
	testCases := []struct {
		name           string
		apiKey         string
		requiredScope  string
		headers        map[string]string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success scope present",
			requiredScope:  "alerts:read",
			headers:        map[string]string{HeaderUserScopes: "endpoints:read, alerts:read"},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
		{
			name:           "Failure no scopes header",
			requiredScope:  "alerts:read",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"X-User-Scopes header is empty"}`,
		},
		{
			name:           "Failure missing scope",
			requiredScope:  "endpoints:delete",
			headers:        map[string]string{HeaderUserScopes: "endpoints:read"},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"message":"Permission denied"}`,
		},
		{
			name:           "Success valid api key",
			apiKey:         "k3y",
			requiredScope:  "cycles:run",
			headers:        map[string]string{HeaderAPIKey: "k3y"},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
		{
			name:           "Failure wrong api key",
			apiKey:         "k3y",
			requiredScope:  "cycles:run",
			headers:        map[string]string{HeaderAPIKey: "nope", HeaderUserScopes: "cycles:run"},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Invalid api key"}`,
		},
		{
			name:           "Api key ignored when not configured",
			requiredScope:  "cycles:run",
			headers:        map[string]string{HeaderAPIKey: "anything", HeaderUserScopes: "cycles:run"},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)

			m := NewAuthMiddleware(tc.apiKey)
			router.GET("/test", m.CheckUserPermission(tc.requiredScope), func(ctx *gin.Context) {
				ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}
