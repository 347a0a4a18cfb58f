package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensorRepository_GetDevicesLastSeen(t *testing.T) {
	last := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	db, mock := setupTestDB(t)
	repo := NewSensorRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT device_id, MAX(recorded_at) AS last_at FROM "sensors"`)).
		WillReturnRows(sqlmock.NewRows([]string{"device_id", "last_at"}).
			AddRow("esp-01", last).
			AddRow("esp-02", last.Add(-time.Hour)))

	devices, err := repo.GetDevicesLastSeen(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "esp-01", devices[0].DeviceID)
	require.NotNil(t, devices[0].LastAt)
	assert.True(t, last.Equal(*devices[0].LastAt))
	// each device gets its own timestamp
	assert.NotEqual(t, *devices[0].LastAt, *devices[1].LastAt)
	assert.NoError(t, mock.ExpectationsWereMet())

	db, mock = setupTestDB(t)
	repo = NewSensorRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT device_id`)).WillReturnError(errors.New("db error"))
	_, err = repo.GetDevicesLastSeen(context.Background())
	assert.Error(t, err)
}
