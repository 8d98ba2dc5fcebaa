// internal/handlers/cost/config.go
package cost

import "time"

type Config struct {
	DefaultDisease string
	HospitalTier   string
	HospitalDays   int
	OPDVisits      int
	Timeout        time.Duration
}

func LoadConfig() *Config {
	return &Config{
		DefaultDisease: "diabetes",
		HospitalTier:   "private",
		HospitalDays:   3,
		OPDVisits:      12,
		Timeout:        30 * time.Second,
	}
}
