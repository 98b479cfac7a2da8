package services

import (
	"DineWheel/config/database"
	"DineWheel/models"
	"DineWheel/utils"
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/mmcloughlin/geohash"
	"google.golang.org/api/iterator"
	"google.golang.org/genproto/googleapis/type/latlng"
)

// historyLimit caps the log at the most recent picks
const historyLimit = 20

// HistoryService keeps a newest-first log of past picks, bounded at
// historyLimit entries. Entries are never edited, only evicted when the
// cap pushes them off the tail. Each append is mirrored to Firestore when
// persistence is available.
type HistoryService struct {
	FirestoreClient *firestore.Client

	mu      sync.Mutex
	entries []models.HistoryEntry
}

// NewHistoryService initializes HistoryService and restores the persisted
// log when a Firestore client is available
func NewHistoryService(userID string) *HistoryService {
	service := &HistoryService{
		FirestoreClient: database.GetFirestoreClient(),
	}

	if service.FirestoreClient != nil {
		if err := service.Load(context.Background(), userID); err != nil {
			log.Printf("Error loading history for user %s: %v", userID, err)
		}
	}
	return service
}

// Append snapshots the candidate with the current timestamp, prepends it,
// and truncates the tail beyond the cap
func (s *HistoryService) Append(ctx context.Context, userID string, candidate models.Candidate) models.HistoryEntry {
	entry := models.HistoryEntry{
		Candidate: candidate,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.entries = append([]models.HistoryEntry{entry}, s.entries...)
	if len(s.entries) > historyLimit {
		s.entries = s.entries[:historyLimit]
	}
	s.mu.Unlock()

	s.persist(ctx, userID, entry)
	return entry
}

// Get returns the entry at the given position, newest first
func (s *HistoryService) Get(index int) (models.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return models.HistoryEntry{}, utils.NewCustomError(http.StatusNotFound, "History entry not found")
	}
	return s.entries[index], nil
}

// Entries returns a copy of the full log, newest first
func (s *HistoryService) Entries() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.HistoryEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// persist mirrors one entry to the user's history collection. Persistence
// failures are logged and skipped, the in-memory log stays authoritative.
func (s *HistoryService) persist(ctx context.Context, userID string, entry models.HistoryEntry) {
	if s.FirestoreClient == nil {
		return
	}

	geoHash := geohash.Encode(entry.Candidate.Location.Latitude, entry.Candidate.Location.Longitude)

	data := map[string]interface{}{
		"name":           entry.Candidate.Name,
		"distance_miles": entry.Candidate.DistanceMiles,
		"price_level":    entry.Candidate.PriceLevel,
		"location": &latlng.LatLng{
			Latitude:  entry.Candidate.Location.Latitude,
			Longitude: entry.Candidate.Location.Longitude,
		},
		"geohash":   geoHash,
		"osm_id":    entry.Candidate.OSMID,
		"osm_type":  entry.Candidate.OSMType,
		"osm_url":   entry.Candidate.OSMURL,
		"map_url":   entry.Candidate.MapURL,
		"timestamp": entry.Timestamp,
	}

	_, _, err := s.FirestoreClient.Collection("users").Doc(userID).Collection("history").Add(ctx, data)
	if err != nil {
		log.Printf("Error persisting history entry for user %s: %v", userID, err)
	}
}

// Load restores the newest entries from Firestore into the in-memory log
func (s *HistoryService) Load(ctx context.Context, userID string) error {
	iter := s.FirestoreClient.Collection("users").Doc(userID).Collection("history").
		OrderBy("timestamp", firestore.Desc).
		Limit(historyLimit).
		Documents(ctx)

	var entries []models.HistoryEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return utils.NewCustomError(http.StatusInternalServerError, "Failed to load history")
		}
		entries = append(entries, entryFromDoc(doc.Data()))
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	log.Printf("Loaded %d history entries for user %s", len(entries), userID)
	return nil
}

func entryFromDoc(data map[string]interface{}) models.HistoryEntry {
	entry := models.HistoryEntry{}

	if name, ok := data["name"].(string); ok {
		entry.Candidate.Name = name
	}
	if distance, ok := data["distance_miles"].(string); ok {
		entry.Candidate.DistanceMiles = distance
	}
	if level, ok := data["price_level"].(int64); ok {
		entry.Candidate.PriceLevel = int(level)
	}
	if geoPoint, ok := data["location"].(*latlng.LatLng); ok {
		entry.Candidate.Location = models.GeoLocation{
			Latitude:  geoPoint.Latitude,
			Longitude: geoPoint.Longitude,
		}
	}
	if osmID, ok := data["osm_id"].(int64); ok {
		entry.Candidate.OSMID = osmID
	}
	if osmType, ok := data["osm_type"].(string); ok {
		entry.Candidate.OSMType = osmType
	}
	if osmURL, ok := data["osm_url"].(string); ok {
		entry.Candidate.OSMURL = osmURL
	}
	if mapURL, ok := data["map_url"].(string); ok {
		entry.Candidate.MapURL = mapURL
	}
	if timestamp, ok := data["timestamp"].(string); ok {
		entry.Timestamp = timestamp
	}
	return entry
}
