// internal/esg/validate/validator.go

// Package validate inspects raw assessment inputs and grades their
// completeness and quality. It never fails: every problem becomes a
// ValidationIssue, and an assessment is always producible, just flagged.
package validate

import (
	"fmt"
	"sort"

	"esg-workers/internal/esg/model"
)

// Policy constants. The penalty weights and the validity threshold are
// deliberate product choices carried over unchanged; do not re-derive them.
const (
	errorPenalty   = 10.0
	warningPenalty = 3.0
	infoPenalty    = 1.0

	validityThreshold = 60.0

	companyWeight  = 25.0
	locationWeight = 25.0
	answerWeight   = 30.0
	taskWeight     = 20.0

	minEstablishedYear = 1900
	// DefaultEstablishedYearCutoff is the upper bound for plausible
	// establishment years. It is a fixed constant, overridable through
	// Config, rather than derived from the clock.
	DefaultEstablishedYearCutoff = 2024

	maxPlausibleFloorArea = 1_000_000 // sqm

	minAreaPerEmployee = 5.0
	maxAreaPerEmployee = 100.0

	lowCompletionRate  = 30.0 // percent
	unansweredFraction = 0.5
)

// Config carries the validator's tunable policy.
type Config struct {
	// EstablishedYearCutoff bounds plausible establishment years;
	// zero means DefaultEstablishedYearCutoff.
	EstablishedYearCutoff int
}

// Validator grades assessment inputs. Stateless between calls; safe for
// concurrent use.
type Validator struct {
	yearCutoff int
}

// New builds a validator.
func New(cfg Config) *Validator {
	cutoff := cfg.EstablishedYearCutoff
	if cutoff == 0 {
		cutoff = DefaultEstablishedYearCutoff
	}
	return &Validator{yearCutoff: cutoff}
}

// Validate runs every check over the four input collections and returns the
// accumulated issues with completeness and quality scores. The result is
// advisory: errors gate isValid, but engines still run over flagged data.
func (v *Validator) Validate(
	company model.CompanyProfile,
	locations []model.LocationRecord,
	answers map[string]model.AnswerRecord,
	tasks []model.TaskRecord,
) model.ValidationResult {
	var issues []model.ValidationIssue

	issues = append(issues, v.checkCompany(company)...)
	issues = append(issues, v.checkLocations(locations)...)
	issues = append(issues, v.checkAnswers(answers)...)
	issues = append(issues, v.checkTasks(tasks)...)
	issues = append(issues, v.checkConsistency(company, locations, answers, tasks)...)

	completeness := v.completeness(company, locations, answers, tasks)
	summary := model.Summarize(issues)
	quality := qualityScore(completeness, summary)

	return model.ValidationResult{
		IsValid:           summary.Errors == 0 && completeness >= validityThreshold,
		CompletenessScore: model.Round1(completeness),
		QualityScore:      model.Round1(quality),
		Issues:            issues,
		Summary:           summary,
	}
}

func qualityScore(completeness float64, summary model.IssueSummary) float64 {
	quality := completeness -
		errorPenalty*float64(summary.Errors) -
		warningPenalty*float64(summary.Warnings) -
		infoPenalty*float64(summary.Info)
	if quality < 0 {
		return 0
	}
	if quality > 100 {
		return 100
	}
	return quality
}

// ---- company ----

func (v *Validator) checkCompany(company model.CompanyProfile) []model.ValidationIssue {
	var issues []model.ValidationIssue

	missing := func(field string) {
		issues = append(issues, model.ValidationIssue{
			Severity:   model.SeverityError,
			Field:      "company." + field,
			Message:    fmt.Sprintf("Required field '%s' is missing or empty", field),
			Suggestion: fmt.Sprintf("Please provide %s information", field),
		})
	}

	if company.Name == "" {
		missing("name")
	}
	if company.Sector == "" {
		missing("sector")
	}
	if company.Employees == 0 {
		missing("employees")
	}
	if company.EstablishedYear == 0 {
		missing("establishedYear")
	}

	if company.Employees <= 0 {
		issues = append(issues, model.ValidationIssue{
			Severity:   model.SeverityWarning,
			Field:      "company.employees",
			Message:    "Employee count should be a positive number",
			Value:      company.Employees,
			Suggestion: "Provide accurate employee count for better calculations",
		})
	}

	if company.EstablishedYear < minEstablishedYear || company.EstablishedYear > v.yearCutoff {
		issues = append(issues, model.ValidationIssue{
			Severity:   model.SeverityWarning,
			Field:      "company.establishedYear",
			Message:    "Establishment year seems invalid",
			Value:      company.EstablishedYear,
			Suggestion: fmt.Sprintf("Provide a valid year between %d and %d", minEstablishedYear, v.yearCutoff),
		})
	}

	if company.Sector != "" && !company.Sector.Known() {
		issues = append(issues, model.ValidationIssue{
			Severity:   model.SeverityWarning,
			Field:      "company.sector",
			Message:    "Sector not recognized for benchmarking",
			Value:      string(company.Sector),
			Suggestion: "Use one of the supported business sectors",
		})
	}

	return issues
}

// ---- locations ----

func (v *Validator) checkLocations(locations []model.LocationRecord) []model.ValidationIssue {
	if len(locations) == 0 {
		return []model.ValidationIssue{{
			Severity:   model.SeverityError,
			Field:      "locations",
			Message:    "At least one location is required for carbon footprint calculations",
			Suggestion: "Add facility information with utility consumption data",
		}}
	}

	var issues []model.ValidationIssue
	for i, loc := range locations {
		prefix := fmt.Sprintf("locations[%d]", i)

		if loc.Name == "" {
			issues = append(issues, missingLocationField(prefix, "name"))
		}
		if loc.TotalFloorArea == 0 {
			issues = append(issues, missingLocationField(prefix, "totalFloorArea"))
		}
		if len(loc.Utilities) == 0 {
			issues = append(issues, missingLocationField(prefix, "utilities"))
		}

		if loc.TotalFloorArea <= 0 {
			issues = append(issues, model.ValidationIssue{
				Severity:   model.SeverityError,
				Field:      prefix + ".totalFloorArea",
				Message:    "Floor area must be a positive number",
				Value:      loc.TotalFloorArea,
				Suggestion: "Provide floor area in square meters",
			})
		} else if loc.TotalFloorArea > maxPlausibleFloorArea {
			issues = append(issues, model.ValidationIssue{
				Severity:   model.SeverityWarning,
				Field:      prefix + ".totalFloorArea",
				Message:    "Floor area seems unusually large",
				Value:      loc.TotalFloorArea,
				Suggestion: "Verify floor area is in square meters",
			})
		}

		// A nil map means utilities were never supplied; per-utility checks
		// only apply once a utilities section exists, even an empty one.
		if loc.Utilities != nil {
			issues = append(issues, v.checkUtilities(loc.Utilities, prefix)...)
		}
	}
	return issues
}

func missingLocationField(prefix, field string) model.ValidationIssue {
	return model.ValidationIssue{
		Severity:   model.SeverityError,
		Field:      prefix + "." + field,
		Message:    fmt.Sprintf("Required location field '%s' is missing", field),
		Suggestion: fmt.Sprintf("Provide %s for accurate calculations", field),
	}
}

func (v *Validator) checkUtilities(utilities map[model.UtilityKind]model.UtilityReading, prefix string) []model.ValidationIssue {
	var issues []model.ValidationIssue

	for _, kind := range model.MandatoryUtilities {
		field := fmt.Sprintf("%s.utilities.%s", prefix, kind)
		reading, ok := utilities[kind]
		if !ok {
			issues = append(issues, model.ValidationIssue{
				Severity:   model.SeverityWarning,
				Field:      field,
				Message:    fmt.Sprintf("Missing %s consumption data", kind),
				Suggestion: fmt.Sprintf("Add %s data for complete carbon footprint calculation", kind),
			})
			continue
		}
		switch {
		case reading.MonthlyConsumption < 0:
			issues = append(issues, model.ValidationIssue{
				Severity:   model.SeverityError,
				Field:      field + ".monthlyConsumption",
				Message:    fmt.Sprintf("%s consumption must be non-negative", kind),
				Value:      reading.MonthlyConsumption,
				Suggestion: "Provide monthly consumption as a positive number",
			})
		case reading.MonthlyConsumption == 0:
			issues = append(issues, model.ValidationIssue{
				Severity:   model.SeverityWarning,
				Field:      field + ".monthlyConsumption",
				Message:    fmt.Sprintf("Zero %s consumption seems unusual", kind),
				Suggestion: "Verify consumption data is accurate",
			})
		}
	}

	for _, kind := range model.OptionalUtilities {
		reading, ok := utilities[kind]
		if ok && reading.MonthlyConsumption < 0 {
			issues = append(issues, model.ValidationIssue{
				Severity: model.SeverityError,
				Field:    fmt.Sprintf("%s.utilities.%s.monthlyConsumption", prefix, kind),
				Message:  fmt.Sprintf("%s consumption cannot be negative", kind),
				Value:    reading.MonthlyConsumption,
			})
		}
	}

	return issues
}

// ---- answers ----

func (v *Validator) checkAnswers(answers map[string]model.AnswerRecord) []model.ValidationIssue {
	if len(answers) == 0 {
		return []model.ValidationIssue{{
			Severity:   model.SeverityError,
			Field:      "scopingAnswers",
			Message:    "ESG scoping questionnaire responses are required",
			Suggestion: "Complete ESG assessment questionnaire",
		}}
	}

	var issues []model.ValidationIssue
	unanswered := 0

	for _, questionID := range sortedKeys(answers) {
		answer := answers[questionID]
		prefix := "scopingAnswers." + questionID

		if answer.Question == "" {
			issues = append(issues, missingAnswerField(prefix, "question"))
		}
		if answer.Frameworks == nil {
			issues = append(issues, missingAnswerField(prefix, "frameworks"))
		}
		if answer.Category == "" {
			issues = append(issues, missingAnswerField(prefix, "category"))
		}

		if !answer.Answer.Answered() {
			unanswered++
			issues = append(issues, model.ValidationIssue{
				Severity:   model.SeverityInfo,
				Field:      prefix + ".answer",
				Message:    "Question not answered",
				Suggestion: "Complete answer for better ESG scoring",
			})
		}

		if answer.Category != "" && !answer.Category.Valid() {
			issues = append(issues, model.ValidationIssue{
				Severity:   model.SeverityWarning,
				Field:      prefix + ".category",
				Message:    "Invalid ESG category",
				Value:      string(answer.Category),
				Suggestion: "Use one of: environmental, social, governance",
			})
		}
	}

	if float64(unanswered) > float64(len(answers))*unansweredFraction {
		issues = append(issues, model.ValidationIssue{
			Severity:   model.SeverityWarning,
			Field:      "scopingAnswers",
			Message:    "Many questions remain unanswered",
			Suggestion: "Complete more questions for accurate ESG assessment",
		})
	}

	return issues
}

func missingAnswerField(prefix, field string) model.ValidationIssue {
	return model.ValidationIssue{
		Severity: model.SeverityWarning,
		Field:    prefix + "." + field,
		Message:  fmt.Sprintf("Missing %s in answer data", field),
	}
}

// ---- tasks ----

func (v *Validator) checkTasks(tasks []model.TaskRecord) []model.ValidationIssue {
	if len(tasks) == 0 {
		return []model.ValidationIssue{{
			Severity:   model.SeverityWarning,
			Field:      "tasks",
			Message:    "No tasks found",
			Suggestion: "Create ESG improvement tasks for better compliance tracking",
		}}
	}

	var issues []model.ValidationIssue
	completed := 0
	highPriorityIncomplete := 0

	for i, task := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		for _, check := range []struct {
			field string
			empty bool
		}{
			{"title", task.Title == ""},
			{"category", task.Category == ""},
			{"status", task.Status == ""},
			{"priority", task.Priority == ""},
		} {
			if check.empty {
				field := check.field
				issues = append(issues, model.ValidationIssue{
					Severity:   model.SeverityWarning,
					Field:      prefix + "." + field,
					Message:    fmt.Sprintf("Task missing %s", field),
					Suggestion: fmt.Sprintf("Provide %s for better task management", field),
				})
			}
		}

		if task.Status != "" && !task.Status.Valid() {
			issues = append(issues, model.ValidationIssue{
				Severity:   model.SeverityWarning,
				Field:      prefix + ".status",
				Message:    "Invalid task status",
				Value:      string(task.Status),
				Suggestion: "Use one of: todo, in_progress, pending_review, completed",
			})
		}
		if task.Status == model.StatusCompleted {
			completed++
		}
		if task.Priority == model.PriorityHigh && task.Status != model.StatusCompleted {
			highPriorityIncomplete++
		}
	}

	completionRate := float64(completed) / float64(len(tasks)) * 100
	if completionRate < lowCompletionRate {
		issues = append(issues, model.ValidationIssue{
			Severity:   model.SeverityInfo,
			Field:      "tasks",
			Message:    "Low task completion rate",
			Value:      fmt.Sprintf("%.1f%%", completionRate),
			Suggestion: "Focus on completing more ESG improvement tasks",
		})
	}

	if highPriorityIncomplete > 0 {
		issues = append(issues, model.ValidationIssue{
			Severity:   model.SeverityWarning,
			Field:      "tasks",
			Message:    fmt.Sprintf("%d high-priority tasks incomplete", highPriorityIncomplete),
			Suggestion: "Prioritize completing high-impact ESG tasks",
		})
	}

	return issues
}

// ---- cross-consistency ----

func (v *Validator) checkConsistency(
	company model.CompanyProfile,
	locations []model.LocationRecord,
	answers map[string]model.AnswerRecord,
	tasks []model.TaskRecord,
) []model.ValidationIssue {
	var issues []model.ValidationIssue

	var totalArea float64
	for _, loc := range locations {
		totalArea += loc.TotalFloorArea
	}

	if totalArea > 0 && company.Employees > 0 {
		areaPerEmployee := totalArea / float64(company.Employees)
		// Typical office space runs 10-25 sqm per employee.
		if areaPerEmployee < minAreaPerEmployee || areaPerEmployee > maxAreaPerEmployee {
			qualifier := "low"
			if areaPerEmployee > maxAreaPerEmployee {
				qualifier = "high"
			}
			issues = append(issues, model.ValidationIssue{
				Severity:   model.SeverityWarning,
				Field:      "consistency.areaPerEmployee",
				Message:    fmt.Sprintf("Very %s floor area per employee", qualifier),
				Value:      fmt.Sprintf("%.1f sqm/employee", areaPerEmployee),
				Suggestion: "Verify floor area and employee count accuracy",
			})
		}
	}

	answerFrameworks := map[string]bool{}
	for _, a := range answers {
		for _, f := range a.Frameworks {
			answerFrameworks[f] = true
		}
	}
	taskFrameworks := map[string]bool{}
	for _, t := range tasks {
		for _, f := range t.Frameworks {
			taskFrameworks[f] = true
		}
	}

	if len(answerFrameworks) > 0 && len(taskFrameworks) > 0 {
		var missing []string
		for f := range answerFrameworks {
			if !taskFrameworks[f] {
				missing = append(missing, f)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			issues = append(issues, model.ValidationIssue{
				Severity:   model.SeverityInfo,
				Field:      "consistency.frameworks",
				Message:    "Some frameworks from answers not found in tasks",
				Value:      missing,
				Suggestion: "Ensure tasks cover all applicable frameworks",
			})
		}
	}

	return issues
}

// ---- completeness ----

func (v *Validator) completeness(
	company model.CompanyProfile,
	locations []model.LocationRecord,
	answers map[string]model.AnswerRecord,
	tasks []model.TaskRecord,
) float64 {
	var earned float64

	// Company bucket: fraction of the four profile fields populated.
	companyFields := 0
	if company.Name != "" {
		companyFields++
	}
	if company.Sector != "" {
		companyFields++
	}
	if company.Employees != 0 {
		companyFields++
	}
	if company.EstablishedYear != 0 {
		companyFields++
	}
	earned += float64(companyFields) / 4 * companyWeight

	// Location bucket: average per-location field fraction. An absent
	// bucket earns nothing but still counts its full weight in the total.
	if len(locations) > 0 {
		var locationFraction float64
		for _, loc := range locations {
			fields := 0
			if loc.Name != "" {
				fields++
			}
			if loc.TotalFloorArea != 0 {
				fields++
			}
			if len(loc.Utilities) > 0 {
				fields++
			}
			locationFraction += float64(fields) / 3
		}
		earned += locationFraction / float64(len(locations)) * locationWeight
	}

	// Answer bucket: answered fraction.
	if len(answers) > 0 {
		answered := 0
		for _, a := range answers {
			if a.Answer.Answered() {
				answered++
			}
		}
		earned += float64(answered) / float64(len(answers)) * answerWeight
	}

	// Task bucket: fraction of tasks with title, category, and status set.
	if len(tasks) > 0 {
		complete := 0
		for _, t := range tasks {
			if t.Title != "" && t.Category != "" && t.Status != "" {
				complete++
			}
		}
		earned += float64(complete) / float64(len(tasks)) * taskWeight
	}

	return earned
}

func sortedKeys(answers map[string]model.AnswerRecord) []string {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
