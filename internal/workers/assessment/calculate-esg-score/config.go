// internal/workers/assessment/calculate-esg-score/config.go
package calculateesgscore

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
