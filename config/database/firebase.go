package database

import (
	"DineWheel/config/environment"
	"context"
	"encoding/base64"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

var FirebaseApp *firebase.App
var FirestoreClient *firestore.Client

// InitFirebase initializes the Firestore client used for settings and
// history persistence. Without credentials the app still runs, it just
// keeps everything in memory for the session.
func InitFirebase() {
	encodedCredentials := environment.GetFirebaseKey()
	if encodedCredentials == "" {
		log.Println("⚠️  FIREBASE_CREDENTIALS_BASE64 not set, running without persistence")
		return
	}

	decodedCredentials, err := base64.StdEncoding.DecodeString(encodedCredentials)
	if err != nil {
		log.Fatalf("Failed to decode Firebase credentials: %v", err)
	}

	projectID := environment.GetFirebaseProjectID()
	if projectID == "" {
		log.Fatal("FIREBASE_PROJECT_ID environment variable is missing")
	}

	ctx := context.Background()
	firestoreOpt := option.WithCredentialsJSON(decodedCredentials)

	config := &firebase.Config{
		ProjectID: projectID,
	}
	app, err := firebase.NewApp(ctx, config, firestoreOpt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	FirebaseApp = app
	log.Println("Firebase initialized successfully")

	FirestoreClient, err = app.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	log.Println("Firestore client initialized successfully")
}

// GetFirestoreClient returns the Firestore client instance, nil when
// persistence is disabled
func GetFirestoreClient() *firestore.Client {
	return FirestoreClient
}
