// internal/workers/assessment/calculate-carbon-footprint/config.go
package calculatecarbonfootprint

import "time"

type Config struct {
	FactorOverrides map[string]float64
	Timeout         time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
