package service

import (
	mock_repository "BPJS_Monitoring_Service/internal/monitor/mocks/repository"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"BPJS_Monitoring_Service/pkg/mail"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func TestReportService_SendReport(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	recipients := []string{"ops@example.com"}
	reports := []repository.EndpointReport{
		{EndpointName: "Poli", Checks: 288, Success: 280, UptimePercentage: 97.22, AvgLatencyMs: 412.5},
		{EndpointName: "Google", Checks: 288, Success: 288, UptimePercentage: 100, AvgLatencyMs: 35},
	}

	testCases := []struct {
		name       string
		setupMocks func(index *mock_repository.MockProbeResultIndex, sender *mail.MockSender)
		expectErr  bool
	}{
		{
			name: "Success",
			setupMocks: func(index *mock_repository.MockProbeResultIndex, sender *mail.MockSender) {
				index.EXPECT().GetEndpointReports(ctx, start, end).Return(reports, nil)
				sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(msg mail.Message) error {
					assert.Equal(t, recipients, msg.To)
					assert.Contains(t, msg.Subject, "2025-01-01 00:00")
					assert.Contains(t, msg.TextBody, "Checks: 576")
					assert.Contains(t, msg.TextBody, "Overall Uptime: 98.61%")
					assert.Contains(t, msg.HTMLBody, "Poli")
					require.Len(t, msg.Attachments, 1)
					assert.Equal(t, "endpoint-report-2025-01-01.xlsx", msg.Attachments[0].Name)

					f, err := excelize.OpenReader(msg.Attachments[0].Content)
					require.NoError(t, err)
					defer f.Close()
					rows, err := f.GetRows("Report")
					require.NoError(t, err)
					require.Len(t, rows, 3)
					assert.Equal(t, "endpoint_name", rows[0][0])
					assert.Equal(t, "Google", rows[2][0])
					return nil
				})
			},
		},
		{
			name: "Error index",
			setupMocks: func(index *mock_repository.MockProbeResultIndex, sender *mail.MockSender) {
				index.EXPECT().GetEndpointReports(ctx, start, end).Return(nil, errors.New("es down"))
			},
			expectErr: true,
		},
		{
			name: "Error mail",
			setupMocks: func(index *mock_repository.MockProbeResultIndex, sender *mail.MockSender) {
				index.EXPECT().GetEndpointReports(ctx, start, end).Return(reports, nil)
				sender.EXPECT().Send(gomock.Any()).Return(errors.New("smtp down"))
			},
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			index := mock_repository.NewMockProbeResultIndex(ctrl)
			sender := mail.NewMockSender(ctrl)
			tc.setupMocks(index, sender)
			s := NewReportService(index, sender)

			err := s.SendReport(ctx, start, end, recipients)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
