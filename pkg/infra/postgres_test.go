package infra

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

const (
	testDBName     = "bpjs_monitoring"
	testDBUser     = "monitor"
	testDBPassword = "monitor-test"
)

func startPostgres(t *testing.T) PostgresConfig {
	postgresContainer, err := postgres.Run(context.Background(),
		"postgres:17.4",
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		postgres.WithDatabase(testDBName),
		postgres.BasicWaitStrategies(),
	)
	t.Cleanup(func() {
		if e := testcontainers.TerminateContainer(postgresContainer); e != nil {
			t.Logf("failed to terminate container: %s", e)
		}
	})
	require.NoError(t, err)

	host, err := postgresContainer.Host(context.Background())
	require.NoError(t, err)
	port, err := postgresContainer.MappedPort(context.Background(), "5432")
	require.NoError(t, err)

	return PostgresConfig{
		Host:     host,
		Port:     port.Int(),
		User:     testDBUser,
		Password: testDBPassword,
		DBName:   testDBName,
	}
}

func TestNewPostgresConnection(t *testing.T) {
	cfg := startPostgres(t)

	wrongPassword := cfg
	wrongPassword.Password = "wrong password"

	withPool := cfg
	withPool.MaxOpenConns = 3

	testCases := []struct {
		name             string
		input            PostgresConfig
		expectedErr      bool
		expectedMaxConns int
	}{
		{
			name:        "valid input",
			input:       cfg,
			expectedErr: false,
		},
		{
			name:             "max open conns",
			input:            withPool,
			expectedErr:      false,
			expectedMaxConns: 3,
		},
		{
			name:        "wrong password",
			input:       wrongPassword,
			expectedErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, e := NewPostgresConnection(tc.input)
			if tc.expectedErr {
				assert.Error(t, e)
				return
			}
			require.NoError(t, e)
			sqlDB, e := db.DB()
			require.NoError(t, e)
			defer sqlDB.Close()
			if tc.expectedMaxConns > 0 {
				assert.Equal(t, tc.expectedMaxConns, sqlDB.Stats().MaxOpenConnections)
			}
		})
	}
}

func TestMigrations(t *testing.T) {
	db, err := NewPostgresConnection(startPostgres(t))
	require.NoError(t, err)

	schema, err := os.ReadFile("../../migrations/001_init.sql")
	require.NoError(t, err)
	require.NoError(t, db.Exec(string(schema)).Error)

	for _, table := range []string{"endpoint_configs", "probe_results", "monitoring_alerts", "sensors"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	insertAlert := func(tx *gorm.DB, resolved bool) error {
		return tx.Exec(`INSERT INTO monitoring_alerts (endpoint_name, alert_type, alert_message, is_resolved, triggered_at)
			VALUES (?, ?, ?, ?, ?)`, "Poli", "downtime", "down", resolved, time.Now()).Error
	}
	require.NoError(t, insertAlert(db, false))
	assert.Error(t, insertAlert(db, false), "second unresolved alert of the same type")
	assert.NoError(t, insertAlert(db, true))
}
