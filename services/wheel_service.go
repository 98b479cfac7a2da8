package services

import (
	"DineWheel/models"
	"DineWheel/utils"
	"context"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// MaxWheelOptions bounds how many candidates fit on one wheel
const MaxWheelOptions = 8

// WheelService owns the wheel session state: the current options, the
// candidate lookup for resolving a spun winner, and the request
// generation counter that lets a newer fetch supersede a stale one.
type WheelService struct {
	OverpassService *OverpassService

	mu         sync.Mutex
	generation uint64
	state      models.WheelState
	candidates map[string]models.Candidate
	rng        *rand.Rand
}

// NewWheelService initializes WheelService with the Overpass client
func NewWheelService() *WheelService {
	return &WheelService{
		OverpassService: NewOverpassService(),
		candidates:      make(map[string]models.Candidate),
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// FilterByPrice keeps candidates whose price level falls inside the range,
// both ends inclusive. An unset range disables filtering entirely.
func FilterByPrice(candidates []models.Candidate, priceRange models.PriceRange) []models.Candidate {
	if priceRange.IsZero() {
		return candidates
	}

	filtered := make([]models.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.PriceLevel >= priceRange.Min && candidate.PriceLevel <= priceRange.Max {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}

// DedupeByName drops candidates whose name was already seen, keeping the
// first occurrence and the original order
func DedupeByName(candidates []models.Candidate) []models.Candidate {
	seen := make(map[string]bool, len(candidates))
	deduped := make([]models.Candidate, 0, len(candidates))

	for _, candidate := range candidates {
		if seen[candidate.Name] {
			continue
		}
		seen[candidate.Name] = true
		deduped = append(deduped, candidate)
	}
	return deduped
}

// FetchAndBuildWheel runs the whole pipeline: build the geofenced query,
// fetch raw elements, normalize, filter, dedupe, and build a fresh wheel.
// Results of a fetch that has been superseded by a newer one are
// discarded and the previous wheel is left untouched.
func (s *WheelService) FetchAndBuildWheel(ctx context.Context, latitude, longitude float64, settings models.Settings) (models.WheelState, error) {
	generation := s.nextGeneration()

	query := BuildLocationQuery(latitude, longitude, settings.SearchRadiusMiles)
	elements, err := s.OverpassService.FetchPlaces(ctx, query)
	if err != nil {
		return models.WheelState{}, err
	}
	if len(elements) == 0 {
		return models.WheelState{}, utils.NewCustomError(http.StatusNotFound, "No restaurants found nearby")
	}

	candidates := NormalizeElements(elements, settings.SearchRadiusMiles)
	if len(candidates) == 0 {
		return models.WheelState{}, utils.NewCustomError(http.StatusNotFound, "Restaurants found but none had usable names")
	}

	candidates = DedupeByName(FilterByPrice(candidates, settings.PriceRange))

	return s.commitWheel(generation, candidates)
}

// BuildWheel shuffles the candidates uniformly and takes the first eight
// as wheel options, without touching the session state
func (s *WheelService) BuildWheel(candidates []models.Candidate) models.WheelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildLocked(candidates)
}

// Spin draws one option uniformly at random from the current wheel
func (s *WheelService) Spin() (models.WheelOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Options) == 0 {
		return models.WheelOption{}, utils.NewCustomError(http.StatusConflict, "Wheel has no options to spin")
	}

	winner := s.state.Options[s.rng.Intn(len(s.state.Options))]
	log.Printf("Wheel spin landed on %q", winner.Name)
	return winner, nil
}

// AddOption inserts an option into the current wheel. A full wheel evicts
// its last entry first, so the new option replaces the last slot.
func (s *WheelService) AddOption(option models.WheelOption) models.WheelState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Options) >= MaxWheelOptions {
		s.state.Options = s.state.Options[:MaxWheelOptions-1]
	}
	s.state.Options = append(s.state.Options, option)
	return s.snapshotLocked()
}

// State returns a copy of the current wheel
func (s *WheelService) State() models.WheelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// CandidateByName resolves a wheel option back to its full candidate
func (s *WheelService) CandidateByName(name string) (models.Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	candidate, ok := s.candidates[name]
	return candidate, ok
}

func (s *WheelService) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// commitWheel atomically replaces the wheel and candidate lookup, unless a
// newer fetch was issued while this one was in flight
func (s *WheelService) commitWheel(generation uint64, candidates []models.Candidate) (models.WheelState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		log.Printf("Discarding stale fetch result (generation %d, latest %d)", generation, s.generation)
		return models.WheelState{}, utils.NewCustomError(http.StatusConflict, "Fetch superseded by a newer request")
	}

	s.state = s.buildLocked(candidates)
	s.candidates = make(map[string]models.Candidate, len(candidates))
	for _, candidate := range candidates {
		s.candidates[candidate.Name] = candidate
	}
	return s.snapshotLocked(), nil
}

// buildLocked does the uniform shuffle and projection; callers hold the lock
func (s *WheelService) buildLocked(candidates []models.Candidate) models.WheelState {
	shuffled := make([]models.Candidate, len(candidates))
	copy(shuffled, candidates)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	size := len(shuffled)
	if size > MaxWheelOptions {
		size = MaxWheelOptions
	}

	options := make([]models.WheelOption, 0, size)
	for _, candidate := range shuffled[:size] {
		options = append(options, models.WheelOption{Name: candidate.Name, MapURL: candidate.MapURL})
	}
	return models.WheelState{Options: options}
}

func (s *WheelService) snapshotLocked() models.WheelState {
	options := make([]models.WheelOption, len(s.state.Options))
	copy(options, s.state.Options)
	return models.WheelState{Options: options}
}
