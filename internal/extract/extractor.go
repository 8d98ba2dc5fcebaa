// Package extract pulls disease and location entities out of raw query text.
package extract

import (
	"strings"

	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/models"
)

// CityAlias maps a lowercase alias found in query text to its canonical
// city name. Aliases are scanned in slice order; the first hit wins.
type CityAlias struct {
	Alias string
	City  string
}

// DefaultCityAliases covers the metros the hospital directory knows about.
func DefaultCityAliases() []CityAlias {
	return []CityAlias{
		{"delhi", "Delhi"},
		{"mumbai", "Mumbai"},
		{"bombay", "Mumbai"},
		{"bangalore", "Bangalore"},
		{"bengaluru", "Bangalore"},
		{"hyderabad", "Hyderabad"},
		{"pune", "Pune"},
		{"kolkata", "Kolkata"},
		{"chennai", "Chennai"},
		{"ncr", "Delhi"},
	}
}

// DefaultDiseases lists the recognized disease terms, scanned in order.
func DefaultDiseases() []string {
	return []string{
		"diabetes",
		"hypertension",
		"asthma",
		"heart disease",
		"cancer",
		"kidney disease",
		"liver disease",
		"arthritis",
		"thyroid",
	}
}

// Extractor finds known entities by case-insensitive substring scan.
// Vocabularies are injected at construction so tests and future data
// sources can swap them without touching the matching logic.
type Extractor struct {
	cities   []CityAlias
	diseases []string
	log      logger.Logger
}

func New(cities []CityAlias, diseases []string, log logger.Logger) *Extractor {
	return &Extractor{
		cities:   cities,
		diseases: diseases,
		log:      log.With(map[string]interface{}{"component": "extractor"}),
	}
}

// NewDefault builds an Extractor with the built-in vocabularies.
func NewDefault(log logger.Logger) *Extractor {
	return New(DefaultCityAliases(), DefaultDiseases(), log)
}

// Extract scans the query for the first matching disease and the first
// matching city alias. Absent entities stay as empty strings.
func (e *Extractor) Extract(query string) models.Entities {
	lower := strings.ToLower(query)

	var out models.Entities
	for _, d := range e.diseases {
		if strings.Contains(lower, d) {
			out.Disease = d
			break
		}
	}
	for _, c := range e.cities {
		if strings.Contains(lower, c.Alias) {
			out.Location = c.City
			break
		}
	}

	e.log.Debug("Entities extracted", map[string]interface{}{
		"disease":  out.DiseaseLabel(),
		"location": out.Location,
	})
	return out
}
