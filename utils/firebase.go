// utils/firebase.go
package utils

import (
	"context"
	"log"

	"roadbuddy/database"

	"firebase.google.com/go/v4/auth"
)

var AuthClient *auth.Client

// FirebaseInit initializes the Firebase Auth client used to verify ID tokens
// and create accounts with the identity provider.
func FirebaseInit() {
	ctx := context.Background()

	app := database.FirebaseApp
	if app == nil {
		database.InitDB()
		app = database.FirebaseApp
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	AuthClient = client
}

// GetAuthClient returns the Firebase Auth client.
func GetAuthClient() *auth.Client {
	if AuthClient == nil {
		FirebaseInit()
	}
	return AuthClient
}
