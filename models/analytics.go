package models

// MonthlyTrend holds per-month booking counts, keyed by the calendar month of
// the booking's creation.
type MonthlyTrend struct {
	Year     int `json:"year"`
	Month    int `json:"month"`
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Denied   int `json:"denied"`
	Pending  int `json:"pending"`
}

// RequesterStat ranks one requester by how many bookings they have made.
type RequesterStat struct {
	RequesterID string `json:"requesterId"`
	Name        string `json:"name"`
	Count       int    `json:"count"`
}

// AnalyticsSummary is derived on demand from a booking collection and never
// stored. AvgResponseTimeHours is nil, not zero, when no booking has been
// responded to yet.
type AnalyticsSummary struct {
	TotalBookings        int             `json:"totalBookings"`
	PendingCount         int             `json:"pendingCount"`
	ApprovedCount        int             `json:"approvedCount"`
	DeniedCount          int             `json:"deniedCount"`
	CancelledCount       int             `json:"cancelledCount"`
	ApprovalRate         float64         `json:"approvalRate"`
	RecentCount          int             `json:"recentCount"`
	AvgResponseTimeHours *float64        `json:"avgResponseTimeHours"`
	MonthlyTrends        []MonthlyTrend  `json:"monthlyTrends"`
	TopRequesters        []RequesterStat `json:"topRequesters"`
}
