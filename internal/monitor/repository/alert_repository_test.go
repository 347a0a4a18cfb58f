package repository

import (
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alertColumns = []string{"id", "endpoint_name", "alert_type", "alert_message", "alert_data", "is_resolved", "triggered_at", "resolved_at"}

func TestAlertRepository_CreateAlert(t *testing.T) {
	testErr := errors.New("test error")
	alert := model.Alert{
		EndpointName: "Diagnosa",
		AlertType:    model.AlertTypeConsecutiveErrors,
		AlertMessage: "Endpoint Diagnosa has 3 consecutive errors",
		AlertData:    map[string]interface{}{"threshold": 3},
		TriggeredAt:  time.Now(),
	}

	testCases := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "monitoring_alerts"`)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error Unresolved Alert Already Exists",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "monitoring_alerts"`)).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "monitoring_alerts_one_unresolved_idx"})
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrActiveAlertExists,
		},
		{
			name: "Error Generic Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "monitoring_alerts"`)).
					WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewAlertRepository(db)
			tc.mockSetup(mock)

			created, err := repo.CreateAlert(context.Background(), alert)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(7), created.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAlertRepository_FindActiveAlert(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		name        string
		rows        *sqlmock.Rows
		queryErr    error
		expectAlert bool
		expectErr   bool
	}{
		{
			name:        "Found",
			rows:        sqlmock.NewRows(alertColumns).AddRow(1, "Diagnosa", model.AlertTypeResponseTime, "slow", `{"threshold_ms":2000}`, false, now, nil),
			expectAlert: true,
		},
		{
			name: "Not Found",
			rows: sqlmock.NewRows(alertColumns),
		},
		{
			name:      "Database Error",
			queryErr:  errors.New("db down"),
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewAlertRepository(db)

			expect := mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "monitoring_alerts" WHERE endpoint_name = $1 AND alert_type = $2 AND is_resolved = $3 ORDER BY triggered_at desc`)).
				WithArgs("Diagnosa", model.AlertTypeResponseTime, false, 1)
			if tc.queryErr != nil {
				expect.WillReturnError(tc.queryErr)
			} else {
				expect.WillReturnRows(tc.rows)
			}

			alert, err := repo.FindActiveAlert(context.Background(), "Diagnosa", model.AlertTypeResponseTime)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.expectAlert {
				require.NotNil(t, alert)
				assert.Equal(t, uint(1), alert.ID)
				assert.Equal(t, float64(2000), alert.AlertData["threshold_ms"])
			} else {
				assert.Nil(t, alert)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAlertRepository_ResolveActiveAlerts(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAlertRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "monitoring_alerts" SET "is_resolved"=$1,"resolved_at"=$2 WHERE endpoint_name = $3 AND alert_type = $4 AND is_resolved = $5`)).
		WithArgs(true, sqlmock.AnyArg(), "Diagnosa", model.AlertTypeConsecutiveErrors, false).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	n, err := repo.ResolveActiveAlerts(context.Background(), "Diagnosa", model.AlertTypeConsecutiveErrors, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_ResolveAlertById(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success Resolves active alert",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "monitoring_alerts" SET`)).
					WillReturnRows(sqlmock.NewRows(alertColumns).AddRow(3, "Diagnosa", model.AlertTypeResponseTime, "slow", nil, true, now, now))
				mock.ExpectCommit()
			},
		},
		{
			name: "Success Already resolved is a no-op",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "monitoring_alerts" SET`)).
					WillReturnRows(sqlmock.NewRows(alertColumns))
				mock.ExpectCommit()
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "monitoring_alerts" WHERE id = $1`)).
					WithArgs(uint(3), 1).
					WillReturnRows(sqlmock.NewRows(alertColumns).AddRow(3, "Diagnosa", model.AlertTypeResponseTime, "slow", nil, true, now, now))
			},
		},
		{
			name: "Error Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "monitoring_alerts" SET`)).
					WillReturnRows(sqlmock.NewRows(alertColumns))
				mock.ExpectCommit()
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "monitoring_alerts" WHERE id = $1`)).
					WithArgs(uint(3), 1).
					WillReturnRows(sqlmock.NewRows(alertColumns))
			},
			expectedError: apperrors.ErrAlertNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewAlertRepository(db)
			tc.mockSetup(mock)

			alert, err := repo.ResolveAlertById(context.Background(), 3, now)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.True(t, alert.IsResolved)
				assert.NotNil(t, alert.ResolvedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAlertRepository_GetAlerts(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAlertRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "monitoring_alerts" WHERE endpoint_name = $1 AND is_resolved = $2 ORDER BY triggered_at desc LIMIT $3`)).
		WithArgs("Diagnosa", false, 20).
		WillReturnRows(sqlmock.NewRows(alertColumns).AddRow(1, "Diagnosa", model.AlertTypeDowntime, "down", nil, false, time.Now(), nil))

	alerts, err := repo.GetAlerts(context.Background(), AlertFilter{EndpointName: "Diagnosa", ActiveOnly: true, Limit: 20})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, model.AlertTypeDowntime, alerts[0].AlertType)
	assert.NoError(t, mock.ExpectationsWereMet())
}
