package environment

import "os"

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}

// GetOverpassURL returns the geodata endpoint, overridable for tests and mirrors
func GetOverpassURL() string {
	if url := os.Getenv("OVERPASS_URL"); url != "" {
		return url
	}
	return "https://overpass-api.de/api/interpreter"
}

// GetUserID returns the identity used to scope settings and history in
// Firestore. This is a single-user tool, so identity is deployment
// configuration rather than request data.
func GetUserID() string {
	if id := os.Getenv("DINEWHEEL_USER_ID"); id != "" {
		return id
	}
	return "local"
}

func GetPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}
