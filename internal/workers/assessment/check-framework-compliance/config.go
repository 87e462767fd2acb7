// internal/workers/assessment/check-framework-compliance/config.go
package checkframeworkcompliance

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
