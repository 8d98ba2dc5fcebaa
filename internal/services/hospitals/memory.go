// internal/services/hospitals/memory.go
package hospitals

import (
	"context"

	"healthcost-assistant/internal/models"
)

// SampleHospitals is the bundled directory used when no database is
// configured or the database lookup fails.
func SampleHospitals() []models.Hospital {
	return []models.Hospital{
		{Name: "Apollo Hospitals", City: "Delhi", State: "Delhi", Type: "Private", Specialties: "Cardiology, Oncology, Neurology, Endocrinology", Beds: 500, Contact: "+91-11-47444444"},
		{Name: "Max Healthcare", City: "Delhi", State: "Delhi", Type: "Private", Specialties: "Cardiology, Orthopedics, Pediatrics, General Medicine", Beds: 450, Contact: "+91-11-45018000"},
		{Name: "Fortis Healthcare", City: "Mumbai", State: "Maharashtra", Type: "Private", Specialties: "General, Trauma, Surgery, Orthopedics", Beds: 350, Contact: "+91-22-67676767"},
		{Name: "AIIMS Delhi", City: "Delhi", State: "Delhi", Type: "Government", Specialties: "Teaching Hospital, All Specialties", Beds: 1600, Contact: "+91-11-26165050"},
		{Name: "Lilavati Hospital", City: "Mumbai", State: "Maharashtra", Type: "Private", Specialties: "Cardiology, Gastroenterology, Nephrology", Beds: 600, Contact: "+91-22-68644444"},
		{Name: "Hinduja Hospital", City: "Mumbai", State: "Maharashtra", Type: "Private", Specialties: "Cardiology, Urology, Neurology, Oncology", Beds: 700, Contact: "+91-22-67888888"},
	}
}

// MemoryStore searches a fixed slice of hospitals in insertion order.
type MemoryStore struct {
	hospitals []models.Hospital
}

func NewMemoryStore(hospitals []models.Hospital) *MemoryStore {
	return &MemoryStore{hospitals: hospitals}
}

// NewSampleStore builds a MemoryStore over the bundled sample data.
func NewSampleStore() *MemoryStore {
	return NewMemoryStore(SampleHospitals())
}

func (s *MemoryStore) Search(_ context.Context, c Criteria) ([]models.Hospital, error) {
	var out []models.Hospital
	for _, h := range s.hospitals {
		if !matches(h, c) {
			continue
		}
		out = append(out, h)
		if c.Limit > 0 && len(out) >= c.Limit {
			break
		}
	}
	return out, nil
}
