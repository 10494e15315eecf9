package notification

import (
	"context"
	"fmt"

	"mentorloop/database/repository"
	"mentorloop/utils"

	"firebase.google.com/go/v4/messaging"
)

// PushService delivers transient alerts to an actor's device. Used only by
// the alert worker; the reconciler never touches FCM directly.
type PushService interface {
	SendPushNotification(ctx context.Context, actorID, title, body string, data map[string]string) error
}

// DefaultPushService is the FCM-backed implementation.
type DefaultPushService struct {
	Actors repository.ActorRepository
}

// SendPushNotification looks up the actor's FCM token and sends a push.
func (s *DefaultPushService) SendPushNotification(ctx context.Context, actorID, title, body string, data map[string]string) error {
	actor, err := s.Actors.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("SendPushNotification: could not find actor %s: %w", actorID, err)
	}
	if actor.FCMToken == "" {
		return fmt.Errorf("SendPushNotification: actor %s has no FCM token", actorID)
	}

	msg := &messaging.Message{
		Token: actor.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}
