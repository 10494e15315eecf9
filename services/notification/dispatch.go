package notification

import (
	"context"
	"encoding/json"

	"mentorloop/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeBookingAlert is the asynq task type for booking event alerts.
const TypeBookingAlert = "alert:booking_event"

// AsynqDispatcher queues one alert task per event. Delivery itself happens in
// the background worker, so a slow or failing push provider can never stall a
// reconciler tick.
type AsynqDispatcher struct {
	Client *asynq.Client
}

func NewAsynqDispatcher(client *asynq.Client) *AsynqDispatcher {
	return &AsynqDispatcher{Client: client}
}

// Dispatch enqueues the alert. Enqueue failures are logged and dropped: the
// feed publication already carries the event, the alert is best-effort.
func (d *AsynqDispatcher) Dispatch(ctx context.Context, actor models.Actor, event models.NotificationEvent) {
	payload, err := json.Marshal(models.AlertPayload{
		ActorID:   actor.ID,
		EventID:   event.ID,
		Kind:      event.Kind,
		BookingID: event.BookingID,
		Timestamp: event.Timestamp,
	})
	if err != nil {
		zap.L().Error("failed to marshal alert payload", zap.Error(err))
		return
	}

	task := asynq.NewTask(TypeBookingAlert, payload)
	if _, err := d.Client.EnqueueContext(ctx, task); err != nil {
		zap.L().Warn("failed to enqueue booking alert",
			zap.String("actorId", actor.ID),
			zap.String("eventId", event.ID),
			zap.Error(err),
		)
	}
}
