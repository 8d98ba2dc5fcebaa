// internal/services/hospitals/directory.go
package hospitals

import (
	"context"

	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/models"
)

// Directory prefers the database-backed store and falls back to the
// bundled sample data when no database is configured or the lookup
// fails. Callers always get a usable answer.
type Directory struct {
	primary  Store
	fallback Store
	log      logger.Logger
}

// NewDirectory builds a Directory. primary may be nil.
func NewDirectory(primary Store, log logger.Logger) *Directory {
	return &Directory{
		primary:  primary,
		fallback: NewSampleStore(),
		log:      log.With(map[string]interface{}{"component": "hospital-directory"}),
	}
}

func (d *Directory) Search(ctx context.Context, c Criteria) ([]models.Hospital, error) {
	if d.primary == nil {
		return d.fallback.Search(ctx, c)
	}

	out, err := d.primary.Search(ctx, c)
	if err != nil {
		d.log.Warn("Database lookup failed, using sample data", map[string]interface{}{
			"error": err.Error(),
		})
		return d.fallback.Search(ctx, c)
	}
	return out, nil
}
