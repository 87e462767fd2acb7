// internal/workers/reporting/send-report-notification/models.go
package sendreportnotification

type Input struct {
	CompanyID      string  `json:"companyId"`
	CompanyName    string  `json:"companyName"`
	RecipientEmail string  `json:"recipientEmail,omitempty"`
	AssessmentID   string  `json:"assessmentId"`
	OverallScore   float64 `json:"overallScore"`
	IsValid        bool    `json:"isValid"`
	TotalEmissions float64 `json:"totalEmissions"`
	OverallRanking string  `json:"overallRanking,omitempty"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"` // "sent", "failed", "disabled"
	SentAt         string `json:"sentAt"` // ISO 8601
}

// Statuses
const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)
