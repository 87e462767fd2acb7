// internal/workers/assessment/validate-esg-data/config.go
package validateesgdata

import "time"

type Config struct {
	EstablishedYearCutoff int
	Timeout               time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
