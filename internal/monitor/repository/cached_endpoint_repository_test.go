package repository_test

import (
	mock_repository "BPJS_Monitoring_Service/internal/monitor/mocks/repository"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cacheKey = "endpoints:active"

func TestCachedEndpointConfigRepository_GetActiveEndpoints(t *testing.T) {
	cfgs := []model.EndpointConfig{
		{ID: "id-1", Name: "Diagnosa", URL: "https://example.test/diagnosa", Method: "GET", Signed: true, IsActive: true},
		{ID: "id-2", Name: "Google", URL: "https://www.google.com", Method: "PING", IsActive: true},
	}
	cached, err := json.Marshal(cfgs)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		setupMocks func(redisMock redismock.ClientMock, repo *mock_repository.MockEndpointConfigRepository)
		expectErr  bool
	}{
		{
			name: "Cache hit",
			setupMocks: func(redisMock redismock.ClientMock, repo *mock_repository.MockEndpointConfigRepository) {
				redisMock.ExpectGet(cacheKey).SetVal(string(cached))
			},
		},
		{
			name: "Cache miss loads from database",
			setupMocks: func(redisMock redismock.ClientMock, repo *mock_repository.MockEndpointConfigRepository) {
				redisMock.ExpectGet(cacheKey).RedisNil()
				repo.EXPECT().GetActiveEndpoints(gomock.Any()).Return(cfgs, nil)
				redisMock.ExpectSet(cacheKey, cached, time.Minute).SetVal("OK")
			},
		},
		{
			name: "Database error",
			setupMocks: func(redisMock redismock.ClientMock, repo *mock_repository.MockEndpointConfigRepository) {
				redisMock.ExpectGet(cacheKey).RedisNil()
				repo.EXPECT().GetActiveEndpoints(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectErr: true,
		},
		{
			name: "Redis error",
			setupMocks: func(redisMock redismock.ClientMock, repo *mock_repository.MockEndpointConfigRepository) {
				redisMock.ExpectGet(cacheKey).SetErr(errors.New("redis down"))
			},
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db, redisMock := redismock.NewClientMock()
			mockRepo := mock_repository.NewMockEndpointConfigRepository(ctrl)
			tc.setupMocks(redisMock, mockRepo)

			repo := repository.NewCachedEndpointConfigRepository(db, mockRepo, time.Minute)
			res, err := repo.GetActiveEndpoints(context.Background())
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, cfgs, res)
			}
			assert.NoError(t, redisMock.ExpectationsWereMet())
		})
	}
}

func TestCachedEndpointConfigRepository_InvalidatesOnWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, redisMock := redismock.NewClientMock()
	mockRepo := mock_repository.NewMockEndpointConfigRepository(ctrl)
	repo := repository.NewCachedEndpointConfigRepository(db, mockRepo, time.Minute)
	ctx := context.Background()

	redisMock.ExpectDel(cacheKey).SetVal(1)
	mockRepo.EXPECT().CreateEndpoint(gomock.Any(), gomock.Any()).Return(model.EndpointConfig{Name: "x"}, nil)
	_, err := repo.CreateEndpoint(ctx, model.EndpointConfig{Name: "x"})
	assert.NoError(t, err)

	redisMock.ExpectDel(cacheKey).SetVal(1)
	mockRepo.EXPECT().UpdateEndpoint(gomock.Any(), "x", gomock.Any()).Return(model.EndpointConfig{Name: "x"}, nil)
	_, err = repo.UpdateEndpoint(ctx, "x", map[string]interface{}{"is_active": false})
	assert.NoError(t, err)

	redisMock.ExpectDel(cacheKey).SetVal(1)
	mockRepo.EXPECT().DeleteEndpointByName(gomock.Any(), "x").Return(nil)
	assert.NoError(t, repo.DeleteEndpointByName(ctx, "x"))

	redisMock.ExpectDel(cacheKey).SetVal(0)
	mockRepo.EXPECT().UpsertEndpoints(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	_, err = repo.UpsertEndpoints(ctx, []model.EndpointConfig{{Name: "x"}})
	assert.NoError(t, err)

	redisMock.ExpectDel(cacheKey).SetErr(errors.New("redis down"))
	assert.Error(t, repo.DeleteEndpointByName(ctx, "x"))

	assert.NoError(t, redisMock.ExpectationsWereMet())
}
