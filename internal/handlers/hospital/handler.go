// internal/handlers/hospital/handler.go
package hospital

import (
	"context"
	"fmt"
	"strings"

	commonerrors "healthcost-assistant/internal/common/errors"
	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/common/metrics"
	"healthcost-assistant/internal/models"
	"healthcost-assistant/internal/services/hospitals"
)

const (
	TaskType = "hospital-lookup"

	sectionHeader = "🏥 HOSPITAL RECOMMENDATIONS"
	notFoundBody  = "No hospitals found for given criteria."
)

type Handler struct {
	config *Config
	store  hospitals.Store
	logger logger.Logger
}

func NewHandler(config *Config, store hospitals.Store, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  store,
		logger: log.With(map[string]interface{}{
			"taskType": TaskType,
		}),
	}
}

// Execute produces the hospital recommendations section. Hospitals are
// rendered as numbered blocks in the order the store returned them.
// Lookup failures and empty results both fall back to the fixed
// not-found body.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	criteria := hospitals.Criteria{
		City:    input.Entities.Location,
		Disease: input.Entities.Disease,
		Type:    h.config.HospitalType,
		Limit:   h.config.Limit,
	}

	h.logger.Info("looking up hospitals", map[string]interface{}{
		"city":    criteria.City,
		"disease": input.Entities.DiseaseLabel(),
	})

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	found, err := h.store.Search(ctx, criteria)
	if err != nil {
		stdErr := commonerrors.NewHospitalLookupFailedError(err)
		metrics.RecordCollaboratorFailure(TaskType, string(stdErr.Code))
		h.logger.Error("hospital lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
		return &Output{
			Status:  models.StatusError,
			Section: models.Section{Label: "hospital", Body: sectionHeader + "\n" + notFoundBody},
		}, stdErr
	}

	if len(found) == 0 {
		stdErr := commonerrors.NewHospitalNotFoundError(fmt.Sprintf("city=%s disease=%s", criteria.City, criteria.Disease))
		return &Output{
			Status:  models.StatusNotFound,
			Section: models.Section{Label: "hospital", Body: sectionHeader + "\n" + notFoundBody},
		}, stdErr
	}

	return &Output{
		Status:    models.StatusSuccess,
		Section:   models.Section{Label: "hospital", Body: renderHospitals(found)},
		Hospitals: found,
	}, nil
}

// FailureSection is the fixed fallback body for a failed collaborator
// call.
func FailureSection() models.Section {
	return models.Section{Label: "hospital", Body: sectionHeader + "\n" + notFoundBody}
}

func renderHospitals(found []models.Hospital) string {
	var b strings.Builder
	b.WriteString(sectionHeader + "\n")
	for i, h := range found {
		fmt.Fprintf(&b, "\n%d. %s (%s, %s)\n   Type: %s\n   Specialties: %s\n   Beds: %d\n   Contact: %s\n",
			i+1, h.Name, h.City, h.State, h.Type, h.Specialties, h.Beds, h.Contact)
	}
	return b.String()
}
