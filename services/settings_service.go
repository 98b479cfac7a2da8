package services

import (
	"DineWheel/config/database"
	"DineWheel/models"
	"DineWheel/utils"
	"context"
	"log"
	"net/http"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SettingsService loads and saves the per-user search preferences
type SettingsService struct {
	FirestoreClient *firestore.Client
}

// NewSettingsService initializes SettingsService with Firestore
func NewSettingsService() *SettingsService {
	return &SettingsService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// GetSettings returns the stored settings for the user, falling back to
// the defaults for missing users, missing keys, or disabled persistence
func (s *SettingsService) GetSettings(ctx context.Context, userID string) (models.Settings, error) {
	settings := models.DefaultSettings()

	if s.FirestoreClient == nil {
		return settings, nil
	}

	doc, err := s.FirestoreClient.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return settings, nil
		}
		log.Printf("Error fetching settings for user %s: %v", userID, err)
		return models.Settings{}, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch settings")
	}

	data := doc.Data()
	if radius, ok := data["searchRadiusMiles"].(float64); ok && radius > 0 {
		settings.SearchRadiusMiles = radius
	}
	if encoded, ok := data["priceRange"].(string); ok {
		priceRange, err := models.ParsePriceRange(encoded)
		if err != nil {
			log.Printf("Ignoring malformed stored price range for user %s: %v", userID, err)
		} else {
			settings.PriceRange = priceRange
		}
	}
	if dietary, ok := data["dietaryFilter"].(string); ok {
		settings.DietaryFilter = dietary
	}

	return settings, nil
}

// SaveSettings validates and stores the settings for the user
func (s *SettingsService) SaveSettings(ctx context.Context, userID string, settings models.Settings) error {
	if settings.SearchRadiusMiles <= 0 {
		return utils.NewCustomError(http.StatusBadRequest, "Search radius must be greater than zero")
	}
	if !settings.PriceRange.IsZero() {
		priceRange := settings.PriceRange
		if priceRange.Min < 1 || priceRange.Max > 4 || priceRange.Min > priceRange.Max {
			return utils.NewCustomError(http.StatusBadRequest, "Price range must satisfy 1 <= min <= max <= 4")
		}
	}

	if s.FirestoreClient == nil {
		log.Println("Persistence disabled, settings kept for this session only")
		return nil
	}

	_, err := s.FirestoreClient.Collection("users").Doc(userID).Set(ctx, map[string]interface{}{
		"searchRadiusMiles": settings.SearchRadiusMiles,
		"priceRange":        settings.PriceRange.String(),
		"dietaryFilter":     settings.DietaryFilter,
	}, firestore.MergeAll)
	if err != nil {
		log.Printf("Error saving settings for user %s: %v", userID, err)
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to save settings")
	}

	return nil
}
