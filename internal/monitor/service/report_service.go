package service

import (
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"BPJS_Monitoring_Service/pkg/mail"
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const reportTimeLayout = "2006-01-02 15:04"

type ReportService interface {
	SendReport(ctx context.Context, startDate time.Time, endDate time.Time, recipients []string) error
}

type reportService struct {
	probeResultIndex repository.ProbeResultIndex
	mailSender       mail.Sender
}

func (r *reportService) SendReport(ctx context.Context, startDate time.Time, endDate time.Time, recipients []string) error {
	reports, err := r.probeResultIndex.GetEndpointReports(ctx, startDate, endDate)
	if err != nil {
		return fmt.Errorf("ReportService.SendReport: %w", err)
	}
	attachment, err := generateReportWorkbook(reports)
	if err != nil {
		return fmt.Errorf("ReportService.SendReport: %w", err)
	}
	err = r.mailSender.Send(mail.Message{
		To:       recipients,
		Subject:  fmt.Sprintf("BPJS Endpoint Report From %s To %s", startDate.Format(reportTimeLayout), endDate.Format(reportTimeLayout)),
		HTMLBody: generateReportHTMLBody(reports),
		TextBody: generateReportTextBody(reports),
		Attachments: []mail.Attachment{{
			Name:    fmt.Sprintf("endpoint-report-%s.xlsx", startDate.Format("2006-01-02")),
			Content: attachment,
		}},
	})
	if err != nil {
		return fmt.Errorf("ReportService.SendReport: %w", err)
	}
	return nil
}

type reportTotals struct {
	endpoints int
	checks    int64
	success   int64
	uptime    float64
}

func totals(reports []repository.EndpointReport) reportTotals {
	t := reportTotals{endpoints: len(reports)}
	for _, r := range reports {
		t.checks += r.Checks
		t.success += r.Success
	}
	if t.checks > 0 {
		t.uptime = float64(t.success) * 100 / float64(t.checks)
	}
	return t
}

func generateReportTextBody(reports []repository.EndpointReport) string {
	t := totals(reports)
	var b strings.Builder
	fmt.Fprintf(&b, "--- SUMMARY ---\nEndpoints: %d\nChecks: %d\nSuccessful: %d\nOverall Uptime: %.2f%%\n\n", t.endpoints, t.checks, t.success, t.uptime)
	b.WriteString("--- ENDPOINTS ---\n")
	for _, r := range reports {
		fmt.Fprintf(&b, "%s | checks=%d | uptime=%.2f%% | avg=%.0fms\n", r.EndpointName, r.Checks, r.UptimePercentage, r.AvgLatencyMs)
	}
	return b.String()
}

func generateReportHTMLBody(reports []repository.EndpointReport) string {
	const cell = `style="border: 1px solid #dddddd; text-align: left; padding: 8px;"`
	const head = `style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;"`
	t := totals(reports)
	var b strings.Builder
	b.WriteString("<body>\n")
	fmt.Fprintf(&b, "<p>Endpoints: %d, checks: %d, overall uptime: %.2f%%</p>\n", t.endpoints, t.checks, t.uptime)
	b.WriteString(`<table style="width:100%; border-collapse: collapse;">` + "\n")
	fmt.Fprintf(&b, "<tr><td %s>Endpoint</td><td %s>Checks</td><td %s>Success</td><td %s>Uptime</td><td %s>Avg Response</td></tr>\n", head, head, head, head, head)
	for _, r := range reports {
		fmt.Fprintf(&b, "<tr><td %s>%s</td><td %s>%d</td><td %s>%d</td><td %s>%.2f%%</td><td %s>%.0f ms</td></tr>\n",
			cell, r.EndpointName, cell, r.Checks, cell, r.Success, cell, r.UptimePercentage, cell, r.AvgLatencyMs)
	}
	b.WriteString("</table>\n</body>")
	return b.String()
}

func generateReportWorkbook(reports []repository.EndpointReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheetName := "Report"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}
	headers := []interface{}{"endpoint_name", "checks", "success", "uptime_percentage", "avg_latency_ms"}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}
	for i, r := range reports {
		row := []interface{}{r.EndpointName, r.Checks, r.Success, r.UptimePercentage, r.AvgLatencyMs}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}

func NewReportService(probeResultIndex repository.ProbeResultIndex, mailSender mail.Sender) ReportService {
	return &reportService{
		probeResultIndex: probeResultIndex,
		mailSender:       mailSender,
	}
}
