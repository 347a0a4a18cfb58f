package model

import (
	"math"
	"time"
)

type GroupSummary struct {
	Total            int     `json:"total"`
	Success          int     `json:"success"`
	Error            int     `json:"error"`
	UptimePercentage float64 `json:"uptime_percentage"`
}

type CycleSummary struct {
	Total            int                     `json:"total"`
	Success          int                     `json:"success"`
	Error            int                     `json:"error"`
	AvgLatencyMs     float64                 `json:"avg_response_time"`
	UptimePercentage float64                 `json:"uptime_percentage"`
	Groups           map[string]GroupSummary `json:"groups"`
	Results          []ProbeResult           `json:"endpoints"`
	StartedAt        time.Time               `json:"started_at"`
	FinishedAt       time.Time               `json:"finished_at"`
}

// UptimePercentage is 0 when there is no data, never NaN.
func UptimePercentage(success, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round2(float64(success) / float64(total) * 100)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summarize aggregates results in order. Timeouts count as errors.
func Summarize(results []ProbeResult) CycleSummary {
	s := CycleSummary{
		Groups:  make(map[string]GroupSummary),
		Results: results,
	}
	var totalLatency int64
	for _, r := range results {
		s.Total++
		totalLatency += r.LatencyMs
		g := s.Groups[r.Group]
		g.Total++
		if r.IsSuccess() {
			s.Success++
			g.Success++
		} else {
			s.Error++
			g.Error++
		}
		s.Groups[r.Group] = g
	}
	for name, g := range s.Groups {
		g.UptimePercentage = UptimePercentage(g.Success, g.Total)
		s.Groups[name] = g
	}
	if s.Total > 0 {
		s.AvgLatencyMs = Round2(float64(totalLatency) / float64(s.Total))
	}
	s.UptimePercentage = UptimePercentage(s.Success, s.Total)
	return s
}
