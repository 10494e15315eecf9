package handlers

// HandlerBundle groups handler sets for route registration.
type HandlerBundle struct {
	Booking       *BookingHandler
	Notifications *NotificationHandler
	Analytics     *AnalyticsHandler
	Export        *ExportHandler
}
