package supervisor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/extract"
	"healthcost-assistant/internal/handlers/cost"
	"healthcost-assistant/internal/handlers/health"
	"healthcost-assistant/internal/handlers/hospital"
	"healthcost-assistant/internal/intent"
	"healthcost-assistant/internal/services/costs"
	"healthcost-assistant/internal/services/hospitals"
)

type stubProvider struct {
	info   string
	err    error
	topics []string
}

func (s *stubProvider) DiseaseInfo(_ context.Context, topic string) (string, error) {
	s.topics = append(s.topics, topic)
	return s.info, s.err
}

func newTestSupervisor(t *testing.T, provider health.InfoProvider) *Supervisor {
	log := logger.NewTestLogger(t)

	healthCfg := &health.Config{Timeout: 5 * time.Second}
	hospitalCfg := &hospital.Config{HospitalType: "Private", Limit: 5, Timeout: 5 * time.Second}
	costCfg := &cost.Config{
		DefaultDisease: "diabetes",
		HospitalTier:   "private",
		HospitalDays:   3,
		OPDVisits:      12,
		Timeout:        5 * time.Second,
	}

	return New(
		extract.NewDefault(log),
		intent.NewDefault(log),
		health.NewHandler(healthCfg, provider, log),
		hospital.NewHandler(hospitalCfg, hospitals.NewSampleStore(), log),
		cost.NewHandler(costCfg, costs.New(log), log),
		log,
	)
}

func TestProcess_EmptyQuery(t *testing.T) {
	s := newTestSupervisor(t, &stubProvider{info: "x"})

	assert.Equal(t, "Please enter a valid question.", s.Process(context.Background(), ""))
	assert.Equal(t, "Please enter a valid question.", s.Process(context.Background(), "   \t\n"))
}

func TestProcess_HelpMessageWhenNoIntentFires(t *testing.T) {
	s := newTestSupervisor(t, &stubProvider{info: "x"})

	got := s.Process(context.Background(), "hello there")
	assert.Equal(t, HelpMessage, got)
	assert.Contains(t, got, "'What are symptoms of diabetes?'")
}

func TestProcess_HealthOnly(t *testing.T) {
	p := &stubProvider{info: "Diabetes is a chronic condition."}
	s := newTestSupervisor(t, p)

	got := s.Process(context.Background(), "What are symptoms of diabetes?")
	assert.Equal(t, "📋 HEALTH INFORMATION\nDiabetes is a chronic condition.", got)
	assert.Equal(t, []string{"diabetes"}, p.topics)
}

func TestProcess_HospitalOnly(t *testing.T) {
	s := newTestSupervisor(t, &stubProvider{info: "x"})

	got := s.Process(context.Background(), "Find hospitals in Delhi for heart treatment")
	assert.True(t, strings.HasPrefix(got, "🏥 HOSPITAL RECOMMENDATIONS\n"))
	assert.Contains(t, got, "1. Apollo Hospitals (Delhi, Delhi)")
	assert.Contains(t, got, "2. Max Healthcare (Delhi, Delhi)")
	assert.NotContains(t, got, "AIIMS")
	assert.NotContains(t, got, "📋")
	assert.NotContains(t, got, "💰")
}

func TestProcess_CostAndHospital(t *testing.T) {
	s := newTestSupervisor(t, &stubProvider{info: "x"})

	got := s.Process(context.Background(), "How much does diabetes treatment cost per year?")

	// treatment fires hospital, cost fires cost; sections stay in
	// dispatch order.
	hospitalIdx := strings.Index(got, "🏥 HOSPITAL RECOMMENDATIONS")
	costIdx := strings.Index(got, "💰 COST ESTIMATES")
	assert.Equal(t, 0, hospitalIdx)
	assert.Greater(t, costIdx, hospitalIdx)
	assert.NotContains(t, got, "📋")
	assert.Contains(t, got, "- Estimated Annual Total: ₹79212")
}

func TestProcess_SectionOrderIsFixed(t *testing.T) {
	p := &stubProvider{info: "short info"}
	s := newTestSupervisor(t, p)

	got := s.ProcessDetailed(context.Background(), "what is the cost of hospital treatment for asthma symptoms")

	assert.Len(t, got.Sections, 3)
	assert.Equal(t, "health", got.Sections[0].Label)
	assert.Equal(t, "hospital", got.Sections[1].Label)
	assert.Equal(t, "cost", got.Sections[2].Label)
}

func TestProcess_HealthFailureDoesNotAbortOthers(t *testing.T) {
	p := &stubProvider{err: errors.New("model unavailable")}
	s := newTestSupervisor(t, p)

	got := s.ProcessDetailed(context.Background(), "what is the cost of diabetes health care")

	assert.Equal(t, OutcomeAnswered, got.Outcome)
	assert.Contains(t, got.Answer, "Sorry, could not fetch disease information.")
	assert.Contains(t, got.Answer, "- Annual Medicines: ₹30000")
	assert.Len(t, got.Failures, 1)
}

type panickingProvider struct{}

func (panickingProvider) DiseaseInfo(context.Context, string) (string, error) {
	panic("collaborator blew up")
}

func TestProcess_PanicInHandlerIsContained(t *testing.T) {
	s := newTestSupervisor(t, panickingProvider{})

	got := s.ProcessDetailed(context.Background(), "what is the cost of diabetes")

	assert.Equal(t, OutcomeAnswered, got.Outcome)
	assert.Contains(t, got.Answer, "Sorry, could not fetch disease information.")
	assert.Contains(t, got.Answer, "💰 COST ESTIMATES")
	assert.Len(t, got.Failures, 1)
	assert.Contains(t, got.Failures[0], "panic")
}

func TestProcess_ExtractionRunsOnce(t *testing.T) {
	p := &stubProvider{info: "info"}
	s := newTestSupervisor(t, p)

	got := s.ProcessDetailed(context.Background(), "diabetes symptoms and treatment cost in bombay")

	assert.Equal(t, "diabetes", got.Entities.Disease)
	assert.Equal(t, "Mumbai", got.Entities.Location)
	// Health handler received the extracted disease, not a re-extraction.
	assert.Equal(t, []string{"diabetes"}, p.topics)
}

func TestProcess_Idempotent(t *testing.T) {
	p := &stubProvider{info: "stable answer"}
	s := newTestSupervisor(t, p)

	q := "What are symptoms of asthma?"
	first := s.Process(context.Background(), q)
	second := s.Process(context.Background(), q)
	assert.Equal(t, first, second)
}

func TestProcessDetailed_Metadata(t *testing.T) {
	p := &stubProvider{info: "info"}
	s := newTestSupervisor(t, p)

	got := s.ProcessDetailed(context.Background(), "What are symptoms of diabetes?")

	assert.NotEmpty(t, got.RequestID)
	assert.Equal(t, OutcomeAnswered, got.Outcome)
	assert.True(t, got.Intents.Health)
	assert.False(t, got.Intents.Hospital)
	assert.Empty(t, got.Failures)
}
