package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCooldownRepository_IsCooling(t *testing.T) {
	testCases := []struct {
		name       string
		setupMocks func(mock redismock.ClientMock)
		expected   bool
		expectErr  bool
	}{
		{
			name: "Key present",
			setupMocks: func(mock redismock.ClientMock) {
				mock.ExpectExists("cooldown:endpoint_alert_abc").SetVal(1)
			},
			expected: true,
		},
		{
			name: "Key absent",
			setupMocks: func(mock redismock.ClientMock) {
				mock.ExpectExists("cooldown:endpoint_alert_abc").SetVal(0)
			},
			expected: false,
		},
		{
			name: "Redis error",
			setupMocks: func(mock redismock.ClientMock) {
				mock.ExpectExists("cooldown:endpoint_alert_abc").SetErr(errors.New("redis down"))
			},
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			repo := NewRedisCooldownRepository(db, nil)
			tc.setupMocks(mock)

			cooling, err := repo.IsCooling(context.Background(), "endpoint_alert_abc")
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cooling)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisCooldownRepository_StartCooldown(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	db, mock := redismock.NewClientMock()
	repo := NewRedisCooldownRepository(db, func() time.Time { return now })

	mock.ExpectSet("cooldown:slow_response_abc", "2025-01-01T12:00:00Z", 2*time.Hour).SetVal("OK")
	assert.NoError(t, repo.StartCooldown(context.Background(), "slow_response_abc", 2*time.Hour))

	mock.ExpectSet("cooldown:slow_response_abc", "2025-01-01T12:00:00Z", 2*time.Hour).SetErr(errors.New("redis down"))
	assert.Error(t, repo.StartCooldown(context.Background(), "slow_response_abc", 2*time.Hour))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCooldownRepository_Lock(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewRedisCooldownRepository(db, nil)

	mock.ExpectSetNX("lock:diagnosis_abc", 1, 30*time.Second).SetVal(true)
	mock.ExpectSetNX("lock:diagnosis_abc", 1, 30*time.Second).SetVal(false)
	mock.ExpectDel("lock:diagnosis_abc").SetVal(1)

	ok, err := repo.Lock(context.Background(), "diagnosis_abc", 30*time.Second)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Lock(context.Background(), "diagnosis_abc", 30*time.Second)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, repo.Unlock(context.Background(), "diagnosis_abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
