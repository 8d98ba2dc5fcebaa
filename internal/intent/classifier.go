// Package intent classifies queries into independent routing flags.
package intent

import (
	"strings"

	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/models"
)

// DefaultHealthKeywords trigger the health information route.
func DefaultHealthKeywords() []string {
	return []string{"what is", "symptom", "symptoms", "disease", "bimari", "health", "info"}
}

// DefaultHospitalKeywords trigger the hospital lookup route.
func DefaultHospitalKeywords() []string {
	return []string{"hospital", "doctor", "where", "best hospital", "admit", "treatment"}
}

// DefaultCostKeywords trigger the cost estimation route.
func DefaultCostKeywords() []string {
	return []string{"cost", "price", "kitna", "kharcha", "expense", "fees", "charges"}
}

// Classifier evaluates the three keyword predicates independently.
// A query may fire any subset of flags, including none.
type Classifier struct {
	health   []string
	hospital []string
	cost     []string
	log      logger.Logger
}

func New(health, hospital, cost []string, log logger.Logger) *Classifier {
	return &Classifier{
		health:   health,
		hospital: hospital,
		cost:     cost,
		log:      log.With(map[string]interface{}{"component": "classifier"}),
	}
}

// NewDefault builds a Classifier with the built-in keyword sets.
func NewDefault(log logger.Logger) *Classifier {
	return New(DefaultHealthKeywords(), DefaultHospitalKeywords(), DefaultCostKeywords(), log)
}

// Classify runs each predicate as a case-insensitive substring scan.
func (c *Classifier) Classify(query string) models.IntentSet {
	lower := strings.ToLower(query)

	set := models.IntentSet{
		Health:   containsAny(lower, c.health),
		Hospital: containsAny(lower, c.hospital),
		Cost:     containsAny(lower, c.cost),
	}

	c.log.Debug("Intents classified", map[string]interface{}{
		"intents": set.Fired(),
	})
	return set
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
