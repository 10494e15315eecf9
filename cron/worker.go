package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"mentorloop/config"
	"mentorloop/models"
	"mentorloop/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// alertCopy maps event kinds to the push title and body template. The body
// verb reads from the receiving side's perspective.
var alertCopy = map[string]struct {
	title string
	body  string
}{
	models.EventNewRequest: {"New Booking Request", "You have a new session request awaiting your review."},
	models.EventApproved:   {"Booking Approved", "Your session request was approved."},
	models.EventDenied:     {"Booking Declined", "Your session request was declined."},
}

// InitAlertWorker runs the async alert delivery worker in background.
func InitAlertWorker(pushSvc notification.PushService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAlertQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeBookingAlert, handleAlertTask(pushSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[AlertWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AlertWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AlertWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleAlertTask(pushSvc notification.PushService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.AlertPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[AlertHandler] invalid payload: %v", err)
			return err
		}

		tmpl, ok := alertCopy[p.Kind]
		if !ok {
			log.Printf("[AlertHandler] unknown event kind: %s", p.Kind)
			return nil
		}

		data := map[string]string{
			"eventId":   p.EventID,
			"kind":      p.Kind,
			"bookingId": p.BookingID,
			"timestamp": p.Timestamp.Format(time.RFC3339),
		}

		if err := pushSvc.SendPushNotification(ctx, p.ActorID, tmpl.title, tmpl.body, data); err != nil {
			log.Printf("[AlertHandler] failed to send push: %v", err)
			return fmt.Errorf("send alert for event %s: %w", p.EventID, err)
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAlertQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[AlertWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
