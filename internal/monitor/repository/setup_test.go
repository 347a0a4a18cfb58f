package repository

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

type mockRoundTripper struct {
	Response *http.Response
	Err      error
	Requests []*http.Request
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func newMockEsClient(t *testing.T, statusCode int, body string, err error) (*elasticsearch.Client, *mockRoundTripper) {
	rt := &mockRoundTripper{Err: err}
	if err == nil {
		header := http.Header{}
		header.Set("Content-Type", "application/json")
		header.Set("X-Elastic-Product", "Elasticsearch")
		rt.Response = &http.Response{
			StatusCode: statusCode,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     header,
		}
	}
	client, e := elasticsearch.NewClient(elasticsearch.Config{
		Transport:    rt,
		DisableRetry: true,
	})
	require.NoError(t, e)
	return client, rt
}
