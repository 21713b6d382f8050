package service

import (
	"context"
	"time"

	"github.com/lifewood/careers-backend/internal/recruit"
)

const dayLabel = "2006-01-02"

// TrendDataset is one chart series: a status label plus per-day counts
// aligned with TrendReport.Labels.
type TrendDataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

// TrendReport is the 7-day application trend payload for the admin dashboard.
type TrendReport struct {
	Labels   []string       `json:"labels"`
	Datasets []TrendDataset `json:"datasets"`
}

// trendStatuses are the charted series, in dashboard order. Statuses outside
// the first three collapse into Other. Applications still in the Received
// state (or with no status at all) are charted in no series; the dashboard
// only tracks post-review outcomes today.
var trendStatuses = []string{
	recruit.StatusHired,
	recruit.StatusRejected,
	recruit.StatusInterviewScheduled,
	"Other",
}

// ApplicationTrends buckets the last 7 UTC calendar days (ending today) of
// applications by submission day and status.
func (s *Service) ApplicationTrends(ctx context.Context, now time.Time) (*TrendReport, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -6)

	labels := make([]string, 7)
	counts := make(map[string]map[string]int, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i).Format(dayLabel)
		labels[i] = d
		counts[d] = make(map[string]int, len(trendStatuses))
	}

	apps, err := s.apps.ListSubmittedSince(ctx, start)
	if err != nil {
		return nil, err
	}
	for _, a := range apps {
		day := a.SubmittedAt.UTC().Format(dayLabel)
		dayCounts, ok := counts[day]
		if !ok {
			continue
		}
		status := a.Status
		if status == "" || status == recruit.StatusReceived {
			continue
		}
		switch status {
		case recruit.StatusHired, recruit.StatusRejected, recruit.StatusInterviewScheduled:
		default:
			status = "Other"
		}
		dayCounts[status]++
	}

	report := &TrendReport{Labels: labels}
	for _, status := range trendStatuses {
		data := make([]int, 7)
		for i, day := range labels {
			data[i] = counts[day][status]
		}
		report.Datasets = append(report.Datasets, TrendDataset{Label: status, Data: data})
	}
	return report, nil
}
