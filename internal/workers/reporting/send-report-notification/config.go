// internal/workers/reporting/send-report-notification/config.go
package sendreportnotification

import "time"

type Config struct {
	EmailEnabled bool
	SNSEnabled   bool
	FromEmail    string
	TopicARN     string
	AWSRegion    string
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
