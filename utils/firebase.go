package utils

import (
	"context"
	"log"

	"mentorloop/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMClient delivers push notifications. Only the alert worker sends through
// it; request handlers never touch FCM directly.
var FCMClient *messaging.Client

// FirebaseInit builds the Firebase app from the configured service account
// file and keeps its Messaging client for the alert worker.
func FirebaseInit() {
	ctx := context.Background()

	app, err := firebase.NewApp(ctx, nil,
		option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile))
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}
	FCMClient = client
}
