// Package hospitals provides the hospital directory lookup.
package hospitals

import (
	"context"
	"strings"

	"healthcost-assistant/internal/models"
)

// Criteria filters a directory search. Empty fields match everything.
// Disease matches either the specialties column or private hospitals,
// which typically cover most conditions.
type Criteria struct {
	City    string
	Disease string
	Type    string
	Limit   int
}

// Store is the directory lookup abstraction. Both the Postgres store
// and the in-memory sample data implement it.
type Store interface {
	Search(ctx context.Context, c Criteria) ([]models.Hospital, error)
}

// matches applies the shared filter semantics used by the in-memory
// store and mirrored in the SQL the Postgres store builds.
func matches(h models.Hospital, c Criteria) bool {
	if c.City != "" && !strings.Contains(strings.ToLower(h.City), strings.ToLower(c.City)) {
		return false
	}
	if c.Type != "" && !strings.Contains(strings.ToLower(h.Type), strings.ToLower(c.Type)) {
		return false
	}
	if c.Disease != "" {
		specialtyHit := strings.Contains(strings.ToLower(h.Specialties), strings.ToLower(c.Disease))
		privateHit := strings.Contains(strings.ToLower(h.Type), "private")
		if !specialtyHit && !privateHit {
			return false
		}
	}
	return true
}
