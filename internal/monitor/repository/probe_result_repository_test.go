package repository

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var probeResultColumns = []string{"id", "endpoint_name", "status_code", "latency_ms", "outcome", "checked_at"}

func TestProbeResultRepository_CreateResult(t *testing.T) {
	result := model.ProbeResult{
		ID:           "result-1",
		EndpointName: "Diagnosa",
		StatusCode:   model.CodeTimeout,
		Outcome:      model.OutcomeTimeout,
		CheckedAt:    time.Now(),
		Body:         []byte("ignored"),
	}
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		expectErr bool
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "probe_results"`)).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "probe_results"`)).
					WillReturnError(errors.New("db error"))
				mock.ExpectRollback()
			},
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewProbeResultRepository(db)
			tc.mockSetup(mock)

			err := repo.CreateResult(context.Background(), result)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProbeResultRepository_GetRecentResults(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewProbeResultRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "probe_results" WHERE endpoint_name = $1 ORDER BY checked_at desc LIMIT $2`)).
		WithArgs("Diagnosa", 3).
		WillReturnRows(sqlmock.NewRows(probeResultColumns).
			AddRow("r3", "Diagnosa", "ERROR", 10, model.OutcomeError, now).
			AddRow("r2", "Diagnosa", "TIMEOUT", 10000, model.OutcomeTimeout, now.Add(-5*time.Minute)))

	results, err := repo.GetRecentResults(context.Background(), "Diagnosa", 3)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "r3", results[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProbeResultRepository_GetLastSuccessAt(t *testing.T) {
	checkedAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		name      string
		rows      *sqlmock.Rows
		expectNil bool
	}{
		{
			name: "Found",
			rows: sqlmock.NewRows(probeResultColumns).AddRow("r1", "Diagnosa", "200", 100, model.OutcomeSuccess, checkedAt),
		},
		{
			name:      "Never succeeded",
			rows:      sqlmock.NewRows(probeResultColumns),
			expectNil: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewProbeResultRepository(db)

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "probe_results" WHERE endpoint_name = $1 AND outcome = $2 ORDER BY checked_at desc`)).
				WithArgs("Diagnosa", model.OutcomeSuccess, 1).
				WillReturnRows(tc.rows)

			at, err := repo.GetLastSuccessAt(context.Background(), "Diagnosa")
			require.NoError(t, err)
			if tc.expectNil {
				assert.Nil(t, at)
			} else {
				require.NotNil(t, at)
				assert.True(t, checkedAt.Equal(*at))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
