// internal/workers/assessment/generate-assessment/config.go
package generateassessment

import "time"

type Config struct {
	EstablishedYearCutoff int
	FactorOverrides       map[string]float64
	ResultIndex           string
	CacheTTL              time.Duration
	Timeout               time.Duration
}

func LoadConfig() *Config {
	return &Config{
		ResultIndex: "esg-assessments",
		CacheTTL:    15 * time.Minute,
		Timeout:     60 * time.Second,
	}
}
