package registry

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
endpoints:
  - name: Referensi Poli
    url: ${BPJS_BASE_URL}/vclaim-rest/referensi/poli/ANA
    method: GET
    group: bpjs
    signed: true
    timeout_seconds: 15
    custom_headers:
      X-Trace: monitor
    warning_threshold_ms: 1500
  - name: Google
    url: https://www.google.com
    method: PING
    group: baseline
    is_active: false
`

func TestParse(t *testing.T) {
	t.Setenv("BPJS_BASE_URL", "https://apijkn.bpjs-kesehatan.go.id")

	cfgs, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, cfgs, 2)

	assert.Equal(t, model.EndpointConfig{
		Name:               "Referensi Poli",
		URL:                "https://apijkn.bpjs-kesehatan.go.id/vclaim-rest/referensi/poli/ANA",
		Method:             "GET",
		Group:              model.GroupBpjs,
		Signed:             true,
		TimeoutSeconds:     15,
		CustomHeaders:      map[string]string{"X-Trace": "monitor"},
		WarningThresholdMs: 1500,
		IsActive:           true,
	}, cfgs[0])
	assert.False(t, cfgs[1].IsActive)
	assert.True(t, cfgs[1].IsLiveness())
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "unknown field", input: "endpoints:\n  - name: a\n    uri: https://x\n"},
		{name: "wrong type", input: "endpoints:\n  - name: a\n    timeout_seconds: ten\n"},
		{name: "not a list", input: "endpoints: {}\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	cfgs, err := Parse(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, cfgs)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoints:\n  - name: Google\n    url: https://www.google.com\n"), 0o600))

	cfgs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfgs, 1)
	assert.True(t, cfgs[0].IsActive)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
