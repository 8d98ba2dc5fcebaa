package hospital

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/models"
	"healthcost-assistant/internal/services/hospitals"
)

type failingStore struct{}

func (failingStore) Search(context.Context, hospitals.Criteria) ([]models.Hospital, error) {
	return nil, errors.New("connection refused")
}

func newTestHandler(t *testing.T, store hospitals.Store) *Handler {
	cfg := &Config{HospitalType: "Private", Limit: 5, Timeout: 5 * time.Second}
	return NewHandler(cfg, store, logger.NewTestLogger(t))
}

func TestExecute_RendersNumberedBlocks(t *testing.T) {
	h := newTestHandler(t, hospitals.NewSampleStore())

	out, err := h.Execute(context.Background(), &Input{
		Query:    "find hospitals in delhi",
		Entities: models.Entities{Location: "Delhi"},
	})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, out.Status)
	assert.Len(t, out.Hospitals, 2)

	want := "🏥 HOSPITAL RECOMMENDATIONS\n" +
		"\n1. Apollo Hospitals (Delhi, Delhi)\n   Type: Private\n   Specialties: Cardiology, Oncology, Neurology, Endocrinology\n   Beds: 500\n   Contact: +91-11-47444444\n" +
		"\n2. Max Healthcare (Delhi, Delhi)\n   Type: Private\n   Specialties: Cardiology, Orthopedics, Pediatrics, General Medicine\n   Beds: 450\n   Contact: +91-11-45018000\n"
	assert.Equal(t, want, out.Section.Body)
}

func TestExecute_AppliesConfiguredTypeAndLimit(t *testing.T) {
	h := newTestHandler(t, hospitals.NewSampleStore())
	h.config.Limit = 1

	out, err := h.Execute(context.Background(), &Input{
		Entities: models.Entities{Location: "Mumbai"},
	})

	assert.NoError(t, err)
	assert.Len(t, out.Hospitals, 1)
	assert.Equal(t, "Fortis Healthcare", out.Hospitals[0].Name)
}

func TestExecute_NoMatchesProducesNotFoundSection(t *testing.T) {
	h := newTestHandler(t, hospitals.NewSampleStore())

	out, err := h.Execute(context.Background(), &Input{
		Entities: models.Entities{Location: "Chennai"},
	})

	assert.Error(t, err)
	assert.Equal(t, models.StatusNotFound, out.Status)
	assert.Equal(t, "🏥 HOSPITAL RECOMMENDATIONS\nNo hospitals found for given criteria.", out.Section.Body)
}

func TestExecute_StoreErrorProducesNotFoundSection(t *testing.T) {
	h := newTestHandler(t, failingStore{})

	out, err := h.Execute(context.Background(), &Input{
		Entities: models.Entities{Location: "Delhi"},
	})

	assert.Error(t, err)
	assert.Equal(t, models.StatusError, out.Status)
	assert.Equal(t, "🏥 HOSPITAL RECOMMENDATIONS\nNo hospitals found for given criteria.", out.Section.Body)
}
