// internal/handlers/hospital/config.go
package hospital

import "time"

type Config struct {
	HospitalType string
	Limit        int
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		HospitalType: "Private",
		Limit:        5,
		Timeout:      30 * time.Second,
	}
}
