// internal/handlers/cost/handler.go
package cost

import (
	"context"
	"strconv"

	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/models"
	"healthcost-assistant/internal/services/costs"
)

const (
	TaskType = "cost-estimate"

	sectionHeader = "💰 COST ESTIMATES"
	failureBody   = "Could not calculate healthcare cost."
)

type Handler struct {
	config    *Config
	estimator *costs.Estimator
	logger    logger.Logger
}

func NewHandler(config *Config, estimator *costs.Estimator, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		estimator: estimator,
		logger: log.With(map[string]interface{}{
			"taskType": TaskType,
		}),
	}
}

// Execute produces the cost estimates section. When no disease was
// detected the configured default disease is used; the substitution is
// never shown to the user. The estimator is table-driven and cannot
// fail, so the fixed failure body exists only for contract symmetry.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	disease := input.Entities.Disease
	if disease == "" {
		disease = h.config.DefaultDisease
	}

	h.logger.Info("estimating healthcare cost", map[string]interface{}{
		"disease": disease,
		"tier":    h.config.HospitalTier,
	})

	summary := h.estimator.Estimate(disease, h.config.HospitalTier, h.config.HospitalDays, h.config.OPDVisits)

	body := sectionHeader + "\n" +
		"- Hospitalization (approx): ₹" + formatINR(summary.Hospitalization) + "\n" +
		"- Annual Medicines: ₹" + formatINR(summary.AnnualMedicines) + "\n" +
		"- Annual OPD Visits: ₹" + formatINR(summary.AnnualOPDVisits) + "\n" +
		"- Estimated Annual Total: ₹" + formatINR(summary.EstimatedAnnualTotal) + "\n"

	return &Output{
		Status:  models.StatusSuccess,
		Section: models.Section{Label: "cost", Body: body},
		Summary: &summary,
	}, nil
}

// FailureSection is the fixed fallback body used when estimation is
// unavailable.
func FailureSection() models.Section {
	return models.Section{Label: "cost", Body: sectionHeader + "\n" + failureBody}
}

func formatINR(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
