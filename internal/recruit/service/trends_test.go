package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lifewood/careers-backend/internal/recruit"
	"github.com/lifewood/careers-backend/internal/recruit/repository"
)

func seedTrendApp(t *testing.T, apps *repository.MemoryApplicationRepo, submitted time.Time, status string) {
	t.Helper()
	_, err := apps.Create(context.Background(), &recruit.Application{
		FirstName: "A", LastName: "B", Email: "a@b.c",
		Position: "P", Age: "30", Degree: "D",
		SubmittedAt: submitted,
		Status:      status,
	})
	require.NoError(t, err)
}

func datasetByLabel(t *testing.T, report *TrendReport, label string) []int {
	t.Helper()
	for _, ds := range report.Datasets {
		if ds.Label == label {
			return ds.Data
		}
	}
	t.Fatalf("no dataset labeled %q", label)
	return nil
}

func TestApplicationTrendsWindow(t *testing.T) {
	svc, apps := newTestService()
	now := time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	seedTrendApp(t, apps, today.Add(2*time.Hour), recruit.StatusHired)
	seedTrendApp(t, apps, today.AddDate(0, 0, -3), recruit.StatusRejected)
	seedTrendApp(t, apps, today.AddDate(0, 0, -3).Add(time.Hour), recruit.StatusRejected)
	seedTrendApp(t, apps, today.AddDate(0, 0, -6), recruit.StatusInterviewScheduled)
	// outside the window: never charted
	seedTrendApp(t, apps, today.AddDate(0, 0, -7), recruit.StatusHired)

	report, err := svc.ApplicationTrends(context.Background(), now)
	require.NoError(t, err)

	require.Equal(t, []string{
		"2026-08-24", "2026-08-25", "2026-08-26", "2026-08-27",
		"2026-08-28", "2026-08-29", "2026-08-30",
	}, report.Labels)

	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 1}, datasetByLabel(t, report, recruit.StatusHired))
	require.Equal(t, []int{0, 0, 0, 2, 0, 0, 0}, datasetByLabel(t, report, recruit.StatusRejected))
	require.Equal(t, []int{1, 0, 0, 0, 0, 0, 0}, datasetByLabel(t, report, recruit.StatusInterviewScheduled))
	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, datasetByLabel(t, report, "Other"))
}

func TestApplicationTrendsOtherBucket(t *testing.T) {
	svc, apps := newTestService()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	seedTrendApp(t, apps, today, recruit.StatusUnderReview)
	seedTrendApp(t, apps, today, recruit.StatusOfferExtended)

	report, err := svc.ApplicationTrends(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 2}, datasetByLabel(t, report, "Other"))
}

func TestApplicationTrendsSkipsUnreviewed(t *testing.T) {
	svc, apps := newTestService()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	seedTrendApp(t, apps, today, "")
	seedTrendApp(t, apps, today, recruit.StatusReceived)

	report, err := svc.ApplicationTrends(context.Background(), now)
	require.NoError(t, err)
	for _, ds := range report.Datasets {
		require.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, ds.Data, "dataset %s", ds.Label)
	}
}

func TestApplicationTrendsDatasetShape(t *testing.T) {
	svc, _ := newTestService()

	report, err := svc.ApplicationTrends(context.Background(), time.Now())
	require.NoError(t, err)
	require.Len(t, report.Labels, 7)
	require.Len(t, report.Datasets, 4)
	for _, ds := range report.Datasets {
		require.Len(t, ds.Data, 7)
	}
}
