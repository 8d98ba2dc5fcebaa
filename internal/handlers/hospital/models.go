// internal/handlers/hospital/models.go
package hospital

import "healthcost-assistant/internal/models"

type Input struct {
	Query    string          `json:"query"`
	Entities models.Entities `json:"entities"`
}

// Output always carries a renderable Section, even on failure. The
// error returned next to it is for logs and metrics only.
type Output struct {
	Status    models.Status     `json:"status"`
	Section   models.Section    `json:"section"`
	Hospitals []models.Hospital `json:"hospitals,omitempty"`
}
