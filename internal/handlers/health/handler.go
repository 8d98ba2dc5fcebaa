// internal/handlers/health/handler.go
package health

import (
	"context"

	commonerrors "healthcost-assistant/internal/common/errors"
	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/common/metrics"
	"healthcost-assistant/internal/models"
)

const (
	TaskType = "health-info"

	sectionHeader = "📋 HEALTH INFORMATION"
	failureBody   = "Sorry, could not fetch disease information."
)

// InfoProvider is the health information collaborator contract.
type InfoProvider interface {
	DiseaseInfo(ctx context.Context, topic string) (string, error)
}

type Handler struct {
	config   *Config
	provider InfoProvider
	logger   logger.Logger
}

func NewHandler(config *Config, provider InfoProvider, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		provider: provider,
		logger: log.With(map[string]interface{}{
			"taskType": TaskType,
		}),
	}
}

// Execute produces the health information section. When no disease was
// detected the full query text goes to the model so it can reason over
// the complete context. Failures are swallowed into a fixed apology
// body; the returned error carries the detail for the caller's logs.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	topic := input.Entities.Disease
	if topic == "" {
		topic = input.Query
	}

	h.logger.Info("fetching health information", map[string]interface{}{
		"disease": input.Entities.DiseaseLabel(),
	})

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	info, err := h.provider.DiseaseInfo(ctx, topic)
	if err != nil {
		stdErr := commonerrors.NewHealthInfoFailedError(err)
		metrics.RecordCollaboratorFailure(TaskType, string(stdErr.Code))
		h.logger.Error("health information failed", map[string]interface{}{
			"error": err.Error(),
		})
		return &Output{
			Status:  models.StatusError,
			Section: models.Section{Label: "health", Body: sectionHeader + "\n" + failureBody},
		}, stdErr
	}

	return &Output{
		Status:  models.StatusSuccess,
		Section: models.Section{Label: "health", Body: sectionHeader + "\n" + info},
	}, nil
}

// FailureSection is the fixed fallback body for a failed collaborator
// call.
func FailureSection() models.Section {
	return models.Section{Label: "health", Body: sectionHeader + "\n" + failureBody}
}
