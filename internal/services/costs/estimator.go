// Package costs estimates Indian healthcare expenses from fixed rate tables.
package costs

import (
	"math"
	"strings"

	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/models"
)

// RoomRate holds the per-day bed charge and per-visit OPD fee for one
// hospital tier.
type RoomRate struct {
	PerDay   float64
	OPDVisit float64
}

// MedicineCost holds itemized monthly medicine prices for one disease.
type MedicineCost struct {
	Items        map[string]float64
	MonthlyTotal float64
}

// HospitalizationBreakdown itemizes a single admission estimate.
type HospitalizationBreakdown struct {
	RoomCharges float64 `json:"room_charges"`
	Medicines   float64 `json:"medicines"`
	Tests       float64 `json:"tests"`
	DoctorFees  float64 `json:"doctor_fees"`
	Other       float64 `json:"other"`
	Procedure   float64 `json:"procedure"`
	Total       float64 `json:"total"`
}

func defaultRoomRates() map[string]RoomRate {
	return map[string]RoomRate{
		"district":      {PerDay: 350, OPDVisit: 94},
		"tertiary":      {PerDay: 600, OPDVisit: 304},
		"private":       {PerDay: 6000, OPDVisit: 1251},
		"metro_private": {PerDay: 8000, OPDVisit: 1500},
	}
}

// fallbackRate applies when the tier is not in the table.
var fallbackRate = RoomRate{PerDay: 1000, OPDVisit: 300}

func defaultMedicineCosts() map[string]MedicineCost {
	return map[string]MedicineCost{
		"diabetes": {
			Items:        map[string]float64{"insulin": 1500, "metformin": 200, "test_strips": 800},
			MonthlyTotal: 2500,
		},
		"hypertension": {
			Items:        map[string]float64{"ace_inhibitor": 300, "beta_blocker": 250},
			MonthlyTotal: 550,
		},
		"asthma": {
			Items:        map[string]float64{"inhaler": 600, "preventive": 400},
			MonthlyTotal: 1000,
		},
		"heart disease": {
			Items:        map[string]float64{"statins": 500, "aspirin": 50, "beta_blocker": 300},
			MonthlyTotal: 850,
		},
	}
}

// Proportional components charged on top of room charges.
const (
	medicinesShare  = 0.24
	testsShare      = 0.10
	doctorFeesShare = 0.17
	otherShare      = 0.39
)

// Estimator computes cost figures from its rate tables. It has no
// external dependencies and never fails on lookups; unknown tiers use
// the fallback rate and unknown diseases contribute zero medicines.
type Estimator struct {
	roomRates map[string]RoomRate
	medicines map[string]MedicineCost
	log       logger.Logger
}

func New(log logger.Logger) *Estimator {
	return &Estimator{
		roomRates: defaultRoomRates(),
		medicines: defaultMedicineCosts(),
		log:       log.With(map[string]interface{}{"component": "cost-estimator"}),
	}
}

func (e *Estimator) rateFor(tier string) RoomRate {
	if r, ok := e.roomRates[strings.ToLower(tier)]; ok {
		return r
	}
	return fallbackRate
}

// Hospitalization estimates one admission of the given length. Stays
// shorter than a day are billed as one day.
func (e *Estimator) Hospitalization(tier string, days int, procedureCost float64) HospitalizationBreakdown {
	rate := e.rateFor(tier)
	if days < 1 {
		days = 1
	}
	room := rate.PerDay * float64(days)

	b := HospitalizationBreakdown{
		RoomCharges: round2(room),
		Medicines:   round2(room * medicinesShare),
		Tests:       round2(room * testsShare),
		DoctorFees:  round2(room * doctorFeesShare),
		Other:       round2(room * otherShare),
		Procedure:   round2(procedureCost),
	}
	b.Total = round2(b.RoomCharges + b.Medicines + b.Tests + b.DoctorFees + b.Other + b.Procedure)
	return b
}

// AnnualMedicines returns the yearly medicine cost for a disease. The
// second return reports whether the disease is in the table.
func (e *Estimator) AnnualMedicines(disease string) (float64, bool) {
	m, ok := e.medicines[strings.ToLower(disease)]
	if !ok {
		return 0, false
	}
	return round2(m.MonthlyTotal * 12), true
}

// MonthlyMedicines returns the itemized monthly breakdown for a disease.
func (e *Estimator) MonthlyMedicines(disease string) (MedicineCost, bool) {
	m, ok := e.medicines[strings.ToLower(disease)]
	return m, ok
}

// AnnualOPD estimates yearly outpatient visit fees at the given tier.
func (e *Estimator) AnnualOPD(tier string, visits int) float64 {
	rate := e.rateFor(tier)
	return round2(rate.OPDVisit * float64(visits))
}

// Estimate composes the annual summary the cost section displays. An
// unknown disease contributes nothing to medicines but the rest of the
// estimate is still produced.
func (e *Estimator) Estimate(disease, tier string, days, opdVisits int) models.CostSummary {
	hosp := e.Hospitalization(tier, days, 0)
	medicines, known := e.AnnualMedicines(disease)
	opd := e.AnnualOPD(tier, opdVisits)

	if !known {
		e.log.Warn("Disease missing from medicine tables", map[string]interface{}{
			"disease": disease,
		})
	}

	return models.CostSummary{
		Hospitalization:      hosp.Total,
		AnnualMedicines:      medicines,
		AnnualOPDVisits:      opd,
		EstimatedAnnualTotal: round2(hosp.Total + medicines + opd),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
