package services

import (
	"DineWheel/models"
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBuildLocationQuery(t *testing.T) {
	tests := []struct {
		name        string
		radiusMiles float64
		wantMeters  float64
	}{
		{"half mile default", 0.5, 804.67},
		{"one mile", 1.0, 1609.34},
		{"two and a half miles", 2.5, 4023.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := BuildLocationQuery(40.7128, -74.0060, tt.radiusMiles)

			if query.Latitude != 40.7128 || query.Longitude != -74.0060 {
				t.Errorf("coordinates not propagated: got (%v, %v)", query.Latitude, query.Longitude)
			}
			if math.Abs(query.RadiusMeters-tt.wantMeters) > 1e-9 {
				t.Errorf("RadiusMeters = %v, want %v", query.RadiusMeters, tt.wantMeters)
			}
		})
	}
}

func TestBuildOverpassQuery(t *testing.T) {
	query := BuildOverpassQuery(models.LocationQuery{Latitude: 40.7128, Longitude: -74.0060, RadiusMeters: 804.67})

	if !strings.HasPrefix(query, "[out:json];") {
		t.Errorf("query missing JSON output directive: %s", query)
	}
	if !strings.HasSuffix(query, "out center;") {
		t.Errorf("query missing center output: %s", query)
	}
	for _, kind := range []string{"node", "way", "relation"} {
		want := kind + `["amenity"="restaurant"](around:804.67,40.712800,-74.006000)`
		if !strings.Contains(query, want) {
			t.Errorf("query missing %s clause, got %s", kind, query)
		}
	}
}

func TestPriceLevelFromTags(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want int
	}{
		{"no price tag", map[string]string{}, 2},
		{"empty price tag", map[string]string{"price": ""}, 2},
		{"single symbol", map[string]string{"price": "$"}, 1},
		{"two symbols", map[string]string{"price": "$$"}, 2},
		{"three symbols", map[string]string{"price": "$$$"}, 3},
		{"too many symbols clamped", map[string]string{"price": "$$$$$$"}, 4},
		{"numeric", map[string]string{"price": "3"}, 3},
		{"numeric with spaces", map[string]string{"price": " 1 "}, 1},
		{"numeric below range clamped", map[string]string{"price": "0"}, 1},
		{"numeric above range clamped", map[string]string{"price": "12"}, 4},
		{"negative clamped", map[string]string{"price": "-2"}, 1},
		{"unparsable falls back", map[string]string{"price": "cheap"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := priceLevelFromTags(tt.tags)
			if got != tt.want {
				t.Errorf("priceLevelFromTags(%v) = %d, want %d", tt.tags, got, tt.want)
			}
			if got < 1 || got > 4 {
				t.Errorf("price level %d outside [1,4]", got)
			}
		})
	}
}

func TestNormalizeElements(t *testing.T) {
	elements := []models.OverpassElement{
		{
			Type: "node", ID: 101, Lat: 40.71, Lon: -74.0,
			Tags: map[string]string{"amenity": "restaurant", "name": "Node Diner", "price": "$$$"},
		},
		{
			Type: "way", ID: 202,
			Center: &models.LatLon{Lat: 40.72, Lon: -74.01},
			Tags:   map[string]string{"amenity": "restaurant", "name": "Way Bistro"},
		},
		{
			// no name, unusable for display
			Type: "node", ID: 303, Lat: 40.73, Lon: -74.02,
			Tags: map[string]string{"amenity": "restaurant"},
		},
		{
			// not a restaurant
			Type: "node", ID: 404, Lat: 40.74, Lon: -74.03,
			Tags: map[string]string{"amenity": "cinema", "name": "Movie Hall"},
		},
	}

	candidates := NormalizeElements(elements, 0.5)

	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}

	node := candidates[0]
	if node.Name != "Node Diner" || node.PriceLevel != 3 {
		t.Errorf("unexpected first candidate: %+v", node)
	}
	if node.Location.Latitude != 40.71 || node.Location.Longitude != -74.0 {
		t.Errorf("node should use direct coordinates, got %+v", node.Location)
	}
	if node.OSMURL != "https://www.openstreetmap.org/node/101" {
		t.Errorf("unexpected OSM URL %s", node.OSMURL)
	}
	if node.DistanceMiles != "0.5" {
		t.Errorf("DistanceMiles = %s, want 0.5", node.DistanceMiles)
	}
	if !strings.Contains(node.MapURL, "#map=18/") {
		t.Errorf("map URL missing fixed zoom: %s", node.MapURL)
	}

	way := candidates[1]
	if way.Location.Latitude != 40.72 || way.Location.Longitude != -74.01 {
		t.Errorf("way should use center coordinates, got %+v", way.Location)
	}
	if way.PriceLevel != 2 {
		t.Errorf("missing price tag should default to 2, got %d", way.PriceLevel)
	}
	if way.OSMURL != "https://www.openstreetmap.org/way/202" {
		t.Errorf("unexpected OSM URL %s", way.OSMURL)
	}
}

func TestNormalizeElementsDistanceFormat(t *testing.T) {
	elements := []models.OverpassElement{
		{Type: "node", ID: 1, Tags: map[string]string{"amenity": "restaurant", "name": "A"}},
	}

	candidates := NormalizeElements(elements, 2.25)
	if candidates[0].DistanceMiles != "2.2" {
		t.Errorf("DistanceMiles = %s, want one decimal place 2.2", candidates[0].DistanceMiles)
	}
}

func TestFetchPlaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("unexpected content type %s", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if data := r.PostFormValue("data"); !strings.HasPrefix(data, "[out:json];") {
			t.Errorf("form data is not an Overpass query: %s", data)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements":[{"type":"node","id":7,"lat":1.5,"lon":2.5,"tags":{"amenity":"restaurant","name":"Testaurant"}}]}`))
	}))
	defer server.Close()

	service := &OverpassService{Endpoint: server.URL, HTTPClient: server.Client()}
	elements, err := service.FetchPlaces(context.Background(), models.LocationQuery{Latitude: 1.5, Longitude: 2.5, RadiusMeters: 800})
	if err != nil {
		t.Fatalf("FetchPlaces returned error: %v", err)
	}
	if len(elements) != 1 || elements[0].Tags["name"] != "Testaurant" {
		t.Errorf("unexpected elements: %+v", elements)
	}
}

func TestFetchPlacesNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	service := &OverpassService{Endpoint: server.URL, HTTPClient: server.Client()}
	_, err := service.FetchPlaces(context.Background(), models.LocationQuery{RadiusMeters: 800})
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestFetchPlacesBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	service := &OverpassService{Endpoint: server.URL, HTTPClient: server.Client()}
	_, err := service.FetchPlaces(context.Background(), models.LocationQuery{RadiusMeters: 800})
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
}
