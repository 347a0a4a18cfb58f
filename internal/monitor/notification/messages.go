package notification

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"fmt"
	"strings"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

func EndpointAlertMessage(endpointName, code, message, url string, at time.Time) string {
	var b strings.Builder
	b.WriteString("🚨 BPJS Monitoring Alert\n")
	fmt.Fprintf(&b, "Endpoint: %s\n", endpointName)
	fmt.Fprintf(&b, "Status: %s\n", code)
	fmt.Fprintf(&b, "Message: %s\n", message)
	fmt.Fprintf(&b, "URL: %s\n", url)
	fmt.Fprintf(&b, "Time: %s", at.Format(timeLayout))
	return b.String()
}

func CriticalAlertMessage(endpointName, errDesc, url string, at time.Time) string {
	var b strings.Builder
	b.WriteString("🔥 CRITICAL ERROR\n")
	fmt.Fprintf(&b, "Endpoint: %s\n", endpointName)
	fmt.Fprintf(&b, "Error: %s\n", errDesc)
	fmt.Fprintf(&b, "URL: %s\n", url)
	fmt.Fprintf(&b, "Time: %s", at.Format(timeLayout))
	return b.String()
}

func SlowResponseMessage(endpointName string, latencyMs int64, url string, at time.Time) string {
	var b strings.Builder
	b.WriteString("⏰ Slow Response Alert\n")
	fmt.Fprintf(&b, "Endpoint: %s\n", endpointName)
	fmt.Fprintf(&b, "Response Time: %dms\n", latencyMs)
	fmt.Fprintf(&b, "URL: %s\n", url)
	fmt.Fprintf(&b, "Time: %s", at.Format(timeLayout))
	return b.String()
}

func AlertTriggeredMessage(alert model.Alert) string {
	var b strings.Builder
	b.WriteString("📟 Monitoring Alert Triggered\n")
	fmt.Fprintf(&b, "Endpoint: %s\n", alert.EndpointName)
	fmt.Fprintf(&b, "Type: %s\n", alert.AlertType)
	fmt.Fprintf(&b, "Detail: %s\n", alert.AlertMessage)
	fmt.Fprintf(&b, "Time: %s", alert.TriggeredAt.Format(timeLayout))
	return b.String()
}

func DeviceOfflineMessage(device model.DeviceStatus, offlineMinutes int, at time.Time) string {
	var b strings.Builder
	b.WriteString("📴 Device Offline\n")
	fmt.Fprintf(&b, "Device: %s\n", device.DeviceID)
	if device.LastSeenAt != nil {
		fmt.Fprintf(&b, "Last Data: %s\n", device.LastSeenAt.Format(timeLayout))
	} else {
		b.WriteString("Last Data: never\n")
	}
	fmt.Fprintf(&b, "Threshold: %d minutes\n", offlineMinutes)
	fmt.Fprintf(&b, "Time: %s", at.Format(timeLayout))
	return b.String()
}

// DiagnosisMessage explains which side is failing. ok is false when both groups are healthy.
func DiagnosisMessage(bpjsStatus, baselineStatus string, at time.Time) (msg string, ok bool) {
	var b strings.Builder
	b.WriteString("🔍 NETWORK DIAGNOSIS\n")
	fmt.Fprintf(&b, "Time: %s\n\n", at.Format(timeLayout))
	switch {
	case bpjsStatus == model.OutcomeError && baselineStatus == model.OutcomeError:
		b.WriteString("❌ INTERNET CONNECTION ISSUE\n")
		b.WriteString("• BPJS API: Failed ❌\n")
		b.WriteString("• Baseline APIs: Failed ❌\n")
		b.WriteString("• Diagnosis: Internet connection problem\n")
		b.WriteString("• Action: Check your internet connection")
	case bpjsStatus == model.OutcomeError:
		b.WriteString("⚠️ BPJS API SPECIFIC ISSUE\n")
		b.WriteString("• BPJS API: Failed ❌\n")
		b.WriteString("• Baseline APIs: Working ✅\n")
		b.WriteString("• Diagnosis: BPJS server issue\n")
		b.WriteString("• Action: Problem is on BPJS side, not your connection")
	case baselineStatus == model.OutcomeError:
		b.WriteString("🔄 PARTIAL CONNECTION ISSUE\n")
		b.WriteString("• BPJS API: Working ✅\n")
		b.WriteString("• Baseline APIs: Failed ❌\n")
		b.WriteString("• Diagnosis: Partial internet/DNS issue\n")
		b.WriteString("• Action: Check DNS settings or specific network routes")
	default:
		return "", false
	}
	return b.String(), true
}
