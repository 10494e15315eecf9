package analytics

import (
	"sort"
	"time"

	"mentorloop/models"
)

const defaultRecentDays = 30

// Summarize computes summary statistics over a booking collection. It is a
// pure function: derived on demand, never stored. names maps requester ids to
// display names for the top-requester ranking; missing entries fall back to
// the raw id. recentDays bounds the trailing window for RecentCount, with 30
// as the default when non-positive.
func Summarize(bookings []models.Booking, names map[string]string, now time.Time, recentDays int) models.AnalyticsSummary {
	if recentDays <= 0 {
		recentDays = defaultRecentDays
	}

	summary := models.AnalyticsSummary{
		TotalBookings: len(bookings),
		MonthlyTrends: []models.MonthlyTrend{},
		TopRequesters: []models.RequesterStat{},
	}

	recentCutoff := now.AddDate(0, 0, -recentDays)
	var responseHoursSum float64
	var respondedCount int

	type monthKey struct {
		year  int
		month int
	}
	trends := make(map[monthKey]*models.MonthlyTrend)
	requesterCounts := make(map[string]int)

	for _, b := range bookings {
		switch b.Status {
		case models.StatusPending:
			summary.PendingCount++
		case models.StatusApproved:
			summary.ApprovedCount++
		case models.StatusDenied:
			summary.DeniedCount++
		case models.StatusCancelled:
			summary.CancelledCount++
		}

		if b.CreatedAt.After(recentCutoff) {
			summary.RecentCount++
		}

		if b.Status != models.StatusPending {
			responseHoursSum += b.UpdatedAt.Sub(b.CreatedAt).Hours()
			respondedCount++
		}

		key := monthKey{year: b.CreatedAt.Year(), month: int(b.CreatedAt.Month())}
		trend, ok := trends[key]
		if !ok {
			trend = &models.MonthlyTrend{Year: key.year, Month: key.month}
			trends[key] = trend
		}
		trend.Total++
		switch b.Status {
		case models.StatusApproved:
			trend.Approved++
		case models.StatusDenied:
			trend.Denied++
		case models.StatusPending:
			trend.Pending++
		}

		requesterCounts[b.RequesterID]++
	}

	// Approval rate over responded bookings only; 0, never NaN, when nothing
	// has been approved or denied yet.
	if denom := summary.ApprovedCount + summary.DeniedCount; denom > 0 {
		summary.ApprovalRate = float64(summary.ApprovedCount) / float64(denom)
	}

	if respondedCount > 0 {
		avg := responseHoursSum / float64(respondedCount)
		summary.AvgResponseTimeHours = &avg
	}

	for _, trend := range trends {
		summary.MonthlyTrends = append(summary.MonthlyTrends, *trend)
	}
	sort.Slice(summary.MonthlyTrends, func(i, j int) bool {
		a, b := summary.MonthlyTrends[i], summary.MonthlyTrends[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Month < b.Month
	})

	for id, count := range requesterCounts {
		name := names[id]
		if name == "" {
			name = id
		}
		summary.TopRequesters = append(summary.TopRequesters, models.RequesterStat{
			RequesterID: id,
			Name:        name,
			Count:       count,
		})
	}
	// Count descending, name ascending on ties, so the ranking is stable
	// across recomputation.
	sort.Slice(summary.TopRequesters, func(i, j int) bool {
		a, b := summary.TopRequesters[i], summary.TopRequesters[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})

	return summary
}
