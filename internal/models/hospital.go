// internal/models/hospital.go
package models

// Hospital is one row of the hospital directory, rendered verbatim in
// the order the lookup returned it.
type Hospital struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	State       string `json:"state"`
	Type        string `json:"type"`
	Specialties string `json:"specialties"`
	Beds        int    `json:"beds"`
	Contact     string `json:"contact"`
}

// CostSummary carries the four figures the cost section displays, all
// in INR and rounded to two decimals.
type CostSummary struct {
	Hospitalization      float64 `json:"hospitalization"`
	AnnualMedicines      float64 `json:"annual_medicines"`
	AnnualOPDVisits      float64 `json:"annual_opd_visits"`
	EstimatedAnnualTotal float64 `json:"estimated_annual_total"`
}
