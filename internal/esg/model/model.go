// internal/esg/model/model.go
package model

// CompanyProfile describes the assessed business entity.
type CompanyProfile struct {
	Name            string `json:"name"`
	Sector          Sector `json:"sector"`
	Employees       int    `json:"employees"`
	EstablishedYear int    `json:"establishedYear"`
}

// UtilityReading is one utility's consumption at a location. Consumption is
// per month in the utility's native unit (kWh for electricity and cooling,
// kg for gas and LPG, m3 for water).
type UtilityReading struct {
	MonthlyConsumption float64 `json:"monthlyConsumption"`
	Provider           string  `json:"provider,omitempty"`
}

// LocationRecord is one facility with its metered utilities. Locations
// aggregate additively into company totals.
type LocationRecord struct {
	Name           string                         `json:"name"`
	TotalFloorArea float64                        `json:"totalFloorArea"`
	Utilities      map[UtilityKind]UtilityReading `json:"utilities"`
}

// Reading returns the utility reading for kind, if present.
func (l LocationRecord) Reading(kind UtilityKind) (UtilityReading, bool) {
	r, ok := l.Utilities[kind]
	return r, ok
}

// MonthlyConsumption returns the monthly consumption for kind, or 0 when the
// utility is not metered at this location.
func (l LocationRecord) MonthlyConsumption(kind UtilityKind) float64 {
	return l.Utilities[kind].MonthlyConsumption
}

// AnswerRecord is one questionnaire response, keyed externally by question id.
type AnswerRecord struct {
	Question   string      `json:"question"`
	Answer     AnswerValue `json:"answer"`
	Frameworks []string    `json:"frameworks"`
	Category   Category    `json:"category"`
}

// TaskRecord is one ESG improvement task.
type TaskRecord struct {
	Title      string       `json:"title"`
	Category   TaskCategory `json:"category"`
	Status     TaskStatus   `json:"status"`
	Priority   TaskPriority `json:"priority"`
	Frameworks []string     `json:"frameworks"`
}

// References reports whether the task is tagged with the given framework.
func (t TaskRecord) References(framework string) bool {
	for _, f := range t.Frameworks {
		if f == framework {
			return true
		}
	}
	return false
}
