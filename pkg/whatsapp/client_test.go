package whatsapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	testCases := []struct {
		name           string
		token          string
		handler        http.HandlerFunc
		expectedStatus bool
		expectErr      bool
	}{
		{
			name:  "Success gateway accepted the message",
			token: "secret-token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/send", r.URL.Path)
				assert.Equal(t, "secret-token", r.Header.Get("Authorization"))
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "628111", r.PostForm.Get("target"))
				assert.Equal(t, "endpoint down", r.PostForm.Get("message"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"status":true,"detail":"success! message in queue"}`))
			},
			expectedStatus: true,
		},
		{
			name:  "Gateway rejected the message",
			token: "secret-token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"status":false,"reason":"invalid token"}`))
			},
			expectedStatus: false,
		},
		{
			name:  "Error body is not json",
			token: "secret-token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`<html>bad gateway</html>`))
			},
			expectErr: true,
		},
		{
			name:      "Error missing token",
			token:     "",
			handler:   func(w http.ResponseWriter, r *http.Request) { t.Fatal("request must not be sent") },
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			c := NewClient(server.URL, tc.token, 2*time.Second)
			res, err := c.Send(context.Background(), "628111", "endpoint down")
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, res.Status)
			assert.NotEmpty(t, res.Raw)
		})
	}
}
