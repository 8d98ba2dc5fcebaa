// internal/services/healthinfo/service.go
package healthinfo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/common/metrics"
)

const cacheKeyPrefix = "healthinfo:"

// Cache is the subset of the Redis client the service needs. A nil
// Cache disables caching entirely.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// Service answers disease information requests, consulting the cache
// before calling the model.
type Service struct {
	gen   Generator
	cache Cache
	ttl   time.Duration
	log   logger.Logger
}

func NewService(gen Generator, cache Cache, ttl time.Duration, log logger.Logger) *Service {
	return &Service{
		gen:   gen,
		cache: cache,
		ttl:   ttl,
		log:   log.With(map[string]interface{}{"component": "healthinfo"}),
	}
}

// DiseaseInfo returns structured information about a disease or, when
// no disease was detected, about the raw query topic.
func (s *Service) DiseaseInfo(ctx context.Context, topic string) (string, error) {
	key := cacheKeyPrefix + strings.ToLower(strings.TrimSpace(topic))

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
			metrics.CacheHits.WithLabelValues("hit").Inc()
			s.log.Debug("Cache hit", map[string]interface{}{"key": key})
			return cached, nil
		}
		metrics.CacheHits.WithLabelValues("miss").Inc()
	}

	answer, err := s.generate(ctx, diseaseInfoPrompt(topic))
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, answer, s.ttl); err != nil {
			s.log.Warn("Cache write failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
	return answer, nil
}

// HealthTips returns practical daily tips for managing a condition.
// Tips are not cached; they are meant to vary between requests.
func (s *Service) HealthTips(ctx context.Context, condition string) (string, error) {
	return s.generate(ctx, healthTipsPrompt(condition))
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	answer, err := s.gen.Generate(ctx, prompt)
	metrics.LLMCallDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}
	return answer, nil
}

func diseaseInfoPrompt(topic string) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are a medical information assistant.

Provide comprehensive information about the disease: %s

Answer in this structure:

1. Overview:
- 2-3 short sentences about what this disease is.

2. Common Symptoms:
- Bullet list of 5-7 common symptoms.

3. Risk Factors:
- Bullet list of important risk factors.

4. Prevention & Lifestyle Tips:
- 4-6 practical tips (diet, exercise, habits).

5. When to See a Doctor:
- Clear guidance when a patient should visit a doctor or emergency.

Keep the language simple and patient-friendly.
Use Indian healthcare context where helpful.
Do NOT give medication names or prescriptions.
`, topic))
}

func healthTipsPrompt(condition string) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are a health coach.

Give 5 practical daily health tips for managing: %s

Each tip should be:
- Short title
- One line explanation

Cover:
- Diet
- Exercise
- Sleep
- Stress management
- Regular check-ups

Do NOT mention medicines. Keep tone friendly and motivating.
`, condition))
}
