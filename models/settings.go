package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Settings are the per-user search preferences
type Settings struct {
	SearchRadiusMiles float64    `json:"search_radius_miles"`
	PriceRange        PriceRange `json:"price_range"`
	// DietaryFilter is accepted and stored but not applied anywhere yet
	DietaryFilter string `json:"dietary_filter"`
}

// PriceRange is an inclusive price level window. The zero value means
// "no price filtering".
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DefaultSettings returns the settings used before a user has saved any
func DefaultSettings() Settings {
	return Settings{
		SearchRadiusMiles: 0.5,
		PriceRange:        PriceRange{Min: 2, Max: 3},
		DietaryFilter:     "",
	}
}

func (p PriceRange) IsZero() bool {
	return p.Min == 0 && p.Max == 0
}

// String encodes the range in the stored "min,max" form
func (p PriceRange) String() string {
	return fmt.Sprintf("%d,%d", p.Min, p.Max)
}

// ParsePriceRange decodes the stored "min,max" form. An empty string is
// not an error and yields the zero value.
func ParsePriceRange(value string) (PriceRange, error) {
	if strings.TrimSpace(value) == "" {
		return PriceRange{}, nil
	}

	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return PriceRange{}, fmt.Errorf("invalid price range %q", value)
	}

	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return PriceRange{}, fmt.Errorf("invalid price range %q: %w", value, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return PriceRange{}, fmt.Errorf("invalid price range %q: %w", value, err)
	}

	return PriceRange{Min: min, Max: max}, nil
}
