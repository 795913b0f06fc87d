package database

import (
	"context"
	"log"

	"roadbuddy/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseApp is the initialized Firebase application.
var FirebaseApp *firebase.App

// FirestoreClient is the global Firestore client instance.
var FirestoreClient *firestore.Client

// InitDB initializes the Firebase app and the Firestore connection.
func InitDB() {
	ctx := context.Background()

	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("failed to initialize Firebase app: %v", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("failed to connect to Firestore: %v", err)
	}

	FirebaseApp = app
	FirestoreClient = client
	log.Println("Connected to Firestore successfully!")
}

// GetClient returns the global Firestore client.
func GetClient() *firestore.Client {
	if FirestoreClient == nil {
		InitDB()
	}
	return FirestoreClient
}
