package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/models"
)

func TestClassify(t *testing.T) {
	c := NewDefault(logger.NewTestLogger(t))

	tests := []struct {
		name  string
		query string
		want  models.IntentSet
	}{
		{
			name:  "health only",
			query: "What are symptoms of diabetes?",
			want:  models.IntentSet{Health: true},
		},
		{
			name:  "hospital via hospital and treatment keywords",
			query: "Find hospitals in Delhi for heart treatment",
			want:  models.IntentSet{Hospital: true},
		},
		{
			name:  "cost and hospital via treatment keyword",
			query: "How much does diabetes treatment cost per year?",
			want:  models.IntentSet{Hospital: true, Cost: true},
		},
		{
			name:  "hindi cost keyword",
			query: "dawai ka kharcha batao",
			want:  models.IntentSet{Cost: true},
		},
		{
			name:  "case insensitive",
			query: "HOSPITAL near me",
			want:  models.IntentSet{Hospital: true},
		},
		{
			name:  "all three",
			query: "what is the cost of hospital treatment for asthma symptoms",
			want:  models.IntentSet{Health: true, Hospital: true, Cost: true},
		},
		{
			name:  "none",
			query: "hello there",
			want:  models.IntentSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.query)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_IndependentPredicates(t *testing.T) {
	c := NewDefault(logger.NewTestLogger(t))

	set := c.Classify("hospital fees info")
	assert.True(t, set.Health)
	assert.True(t, set.Hospital)
	assert.True(t, set.Cost)
	assert.Equal(t, []string{"health", "hospital", "cost"}, set.Fired())
}

func TestClassify_EmptySet(t *testing.T) {
	c := NewDefault(logger.NewTestLogger(t))

	set := c.Classify("random chatter")
	assert.False(t, set.Any())
	assert.Empty(t, set.Fired())
}

func TestClassify_InjectedKeywords(t *testing.T) {
	c := New([]string{"wellness"}, []string{"clinic"}, []string{"bill"}, logger.NewNoOpLogger())

	set := c.Classify("clinic bill for wellness check")
	assert.Equal(t, models.IntentSet{Health: true, Hospital: true, Cost: true}, set)

	set = c.Classify("hospital cost info")
	assert.Equal(t, models.IntentSet{}, set)
}

func BenchmarkClassify(b *testing.B) {
	c := NewDefault(logger.NewNoOpLogger())
	for i := 0; i < b.N; i++ {
		c.Classify("How much does diabetes treatment cost per year?")
	}
}
