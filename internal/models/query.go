// internal/models/query.go
package models

// Status is the tri-state result contract every collaborator returns.
// The supervisor and its adapters branch only on this value.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusNotFound Status = "not_found"
	StatusError    Status = "error"
)

// DiseaseGeneral is the label used in logs and prompts when no specific
// disease was detected in a query. It never appears in user-facing text
// and is never stored in Entities.Disease (absence is the empty string).
const DiseaseGeneral = "general"

// Entities holds whatever the extractor could pull out of a raw query.
// An empty Disease means "no specific disease detected"; each caller
// applies its own documented substitution (health: raw query, cost:
// fixed default disease).
type Entities struct {
	Disease  string `json:"disease,omitempty"`
	Location string `json:"location,omitempty"`
}

func (e Entities) HasDisease() bool { return e.Disease != "" }

func (e Entities) HasLocation() bool { return e.Location != "" }

// DiseaseLabel returns the disease for log fields, substituting the
// "general" label when nothing was detected.
func (e Entities) DiseaseLabel() string {
	if e.Disease == "" {
		return DiseaseGeneral
	}
	return e.Disease
}

// IntentSet holds the three independent routing flags. They are not
// mutually exclusive; any subset including the empty set is valid.
type IntentSet struct {
	Health   bool `json:"health"`
	Hospital bool `json:"hospital"`
	Cost     bool `json:"cost"`
}

func (s IntentSet) Any() bool { return s.Health || s.Hospital || s.Cost }

// Fired lists the set flags in the fixed dispatch order.
func (s IntentSet) Fired() []string {
	out := make([]string, 0, 3)
	if s.Health {
		out = append(out, "health")
	}
	if s.Hospital {
		out = append(out, "hospital")
	}
	if s.Cost {
		out = append(out, "cost")
	}
	return out
}

// Section is one labeled block of a composed answer. Body already
// includes the header line; Label is kept for logging and metrics.
type Section struct {
	Label string `json:"label"`
	Body  string `json:"body"`
}
