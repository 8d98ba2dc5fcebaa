// Package supervisor routes a raw query through entity extraction,
// intent classification and the three section handlers, then composes
// the final answer text.
package supervisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/common/metrics"
	"healthcost-assistant/internal/extract"
	"healthcost-assistant/internal/handlers/cost"
	"healthcost-assistant/internal/handlers/health"
	"healthcost-assistant/internal/handlers/hospital"
	"healthcost-assistant/internal/intent"
	"healthcost-assistant/internal/models"
)

const (
	// EmptyQueryMessage is returned for blank input.
	EmptyQueryMessage = "Please enter a valid question."

	// HelpMessage is returned when no intent fires.
	HelpMessage = "I could not understand what you need.\n\n" +
		"You can ask things like:\n" +
		"- 'What are symptoms of diabetes?'\n" +
		"- 'Find hospitals in Delhi for heart treatment'\n" +
		"- 'How much does diabetes treatment cost per year?'"
)

// Outcome values recorded in metrics and the detailed result.
const (
	OutcomeAnswered = "answered"
	OutcomeHelp     = "help"
	OutcomeEmpty    = "empty"
)

// Result carries the composed answer plus everything the API layer and
// logs want to know about how it was produced.
type Result struct {
	RequestID string           `json:"request_id"`
	Answer    string           `json:"answer"`
	Outcome   string           `json:"outcome"`
	Intents   models.IntentSet `json:"intents"`
	Entities  models.Entities  `json:"entities"`
	Sections  []models.Section `json:"sections,omitempty"`
	Failures  []string         `json:"failures,omitempty"`
}

type Supervisor struct {
	extractor  *extract.Extractor
	classifier *intent.Classifier
	health     *health.Handler
	hospital   *hospital.Handler
	cost       *cost.Handler
	logger     logger.Logger
}

func New(
	extractor *extract.Extractor,
	classifier *intent.Classifier,
	healthHandler *health.Handler,
	hospitalHandler *hospital.Handler,
	costHandler *cost.Handler,
	log logger.Logger,
) *Supervisor {
	return &Supervisor{
		extractor:  extractor,
		classifier: classifier,
		health:     healthHandler,
		hospital:   hospitalHandler,
		cost:       costHandler,
		logger:     log.With(map[string]interface{}{"component": "supervisor"}),
	}
}

// Process is the plain-string entry point.
func (s *Supervisor) Process(ctx context.Context, query string) string {
	return s.ProcessDetailed(ctx, query).Answer
}

// ProcessDetailed runs the full pipeline once. Extraction and
// classification each run exactly once per query; their results are
// shared by every handler. A failing handler never aborts the others:
// its output section already carries the fixed fallback text.
func (s *Supervisor) ProcessDetailed(ctx context.Context, query string) *Result {
	start := time.Now()
	result := &Result{RequestID: uuid.New().String()}
	log := s.logger.With(map[string]interface{}{"requestId": result.RequestID})

	query = strings.TrimSpace(query)
	if query == "" {
		result.Answer = EmptyQueryMessage
		result.Outcome = OutcomeEmpty
		metrics.RecordQuery(OutcomeEmpty, time.Since(start).Seconds())
		return result
	}

	result.Entities = s.extractor.Extract(query)
	result.Intents = s.classifier.Classify(query)
	metrics.RecordIntents(result.Intents.Fired())

	log.Info("query classified", map[string]interface{}{
		"intents":  result.Intents.Fired(),
		"disease":  result.Entities.DiseaseLabel(),
		"location": result.Entities.Location,
	})

	if !result.Intents.Any() {
		result.Answer = HelpMessage
		result.Outcome = OutcomeHelp
		metrics.RecordQuery(OutcomeHelp, time.Since(start).Seconds())
		return result
	}

	// Fixed dispatch order: health, hospital, cost.
	if result.Intents.Health {
		s.dispatch(result, health.FailureSection(), func() (models.Section, error) {
			out, err := s.health.Execute(ctx, &health.Input{Query: query, Entities: result.Entities})
			return out.Section, err
		})
	}
	if result.Intents.Hospital {
		s.dispatch(result, hospital.FailureSection(), func() (models.Section, error) {
			out, err := s.hospital.Execute(ctx, &hospital.Input{Query: query, Entities: result.Entities})
			return out.Section, err
		})
	}
	if result.Intents.Cost {
		s.dispatch(result, cost.FailureSection(), func() (models.Section, error) {
			out, err := s.cost.Execute(ctx, &cost.Input{Query: query, Entities: result.Entities})
			return out.Section, err
		})
	}

	bodies := make([]string, 0, len(result.Sections))
	for _, sec := range result.Sections {
		bodies = append(bodies, sec.Body)
	}
	result.Answer = strings.Join(bodies, "\n\n")
	result.Outcome = OutcomeAnswered

	metrics.RecordQuery(OutcomeAnswered, time.Since(start).Seconds())
	metrics.SectionsComposed.Observe(float64(len(result.Sections)))

	log.Info("query answered", map[string]interface{}{
		"sections": len(result.Sections),
		"failures": len(result.Failures),
	})
	return result
}

// dispatch runs one handler, records its section, and keeps failure
// detail for the detailed result. A panicking collaborator is
// contained here so the remaining handlers still run.
func (s *Supervisor) dispatch(result *Result, fallback models.Section, run func() (models.Section, error)) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("handler panicked", map[string]interface{}{
				"section": fallback.Label,
				"panic":   fmt.Sprint(r),
			})
			result.Sections = append(result.Sections, fallback)
			result.Failures = append(result.Failures, fmt.Sprintf("%s: panic: %v", fallback.Label, r))
		}
	}()

	section, err := run()
	result.Sections = append(result.Sections, section)
	if err != nil {
		result.Failures = append(result.Failures, err.Error())
	}
}
