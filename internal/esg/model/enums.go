// internal/esg/model/enums.go
package model

// Sector identifies the business sector of an assessed company.
type Sector string

const (
	SectorHospitality          Sector = "hospitality"
	SectorConstruction         Sector = "construction"
	SectorManufacturing        Sector = "manufacturing"
	SectorEducation            Sector = "education"
	SectorHealthcare           Sector = "healthcare"
	SectorLogistics            Sector = "logistics"
	SectorRetail               Sector = "retail"
	SectorProfessionalServices Sector = "professional_services"
)

// Sectors lists every recognized business sector.
var Sectors = []Sector{
	SectorHospitality,
	SectorConstruction,
	SectorManufacturing,
	SectorEducation,
	SectorHealthcare,
	SectorLogistics,
	SectorRetail,
	SectorProfessionalServices,
}

// Known reports whether the sector is one of the recognized values.
// Unknown sectors still produce an assessment, with fallback weighting
// and "unknown" benchmark classifications.
func (s Sector) Known() bool {
	for _, v := range Sectors {
		if s == v {
			return true
		}
	}
	return false
}

// Category is one of the three assessed ESG dimensions.
type Category string

const (
	CategoryEnvironmental Category = "environmental"
	CategorySocial        Category = "social"
	CategoryGovernance    Category = "governance"
)

// Categories lists the three ESG dimensions in canonical order.
var Categories = []Category{CategoryEnvironmental, CategorySocial, CategoryGovernance}

// Valid reports whether c is one of the three canonical categories.
func (c Category) Valid() bool {
	return c == CategoryEnvironmental || c == CategorySocial || c == CategoryGovernance
}

// UtilityKind identifies a metered utility at a location.
type UtilityKind string

const (
	UtilityElectricity     UtilityKind = "electricity"
	UtilityWater           UtilityKind = "water"
	UtilityDistrictCooling UtilityKind = "districtCooling"
	UtilityNaturalGas      UtilityKind = "naturalGas"
	UtilityLPG             UtilityKind = "lpg"
	UtilityDiesel          UtilityKind = "diesel"
	UtilityPetrol          UtilityKind = "petrol"
)

// MandatoryUtilities are expected at every location; their absence is a
// validation warning, not an error.
var MandatoryUtilities = []UtilityKind{UtilityElectricity, UtilityWater}

// OptionalUtilities may be present; negative readings are still errors.
var OptionalUtilities = []UtilityKind{UtilityDistrictCooling, UtilityNaturalGas, UtilityLPG}

// TaskStatus tracks the lifecycle of an ESG improvement task.
type TaskStatus string

const (
	StatusTodo          TaskStatus = "todo"
	StatusInProgress    TaskStatus = "in_progress"
	StatusPendingReview TaskStatus = "pending_review"
	StatusCompleted     TaskStatus = "completed"
)

// Valid reports whether s is a recognized task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusPendingReview, StatusCompleted:
		return true
	}
	return false
}

// TaskCategory classifies an ESG improvement task. Only the three categories
// matching an ESG dimension contribute to category scores; operational
// categories (energy, water, waste, supply chain) are tracked for compliance
// but scored through their frameworks.
type TaskCategory string

const (
	TaskGovernance    TaskCategory = "governance"
	TaskEnergy        TaskCategory = "energy"
	TaskWater         TaskCategory = "water"
	TaskWaste         TaskCategory = "waste"
	TaskSupplyChain   TaskCategory = "supply_chain"
	TaskSocial        TaskCategory = "social"
	TaskEnvironmental TaskCategory = "environmental"
)

// Valid reports whether c is a recognized task category.
func (c TaskCategory) Valid() bool {
	switch c {
	case TaskGovernance, TaskEnergy, TaskWater, TaskWaste, TaskSupplyChain, TaskSocial, TaskEnvironmental:
		return true
	}
	return false
}

// TaskPriority weights a task's contribution to scoring.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// Weight returns the scoring weight for the priority. Unrecognized
// priorities weigh the same as low.
func (p TaskPriority) Weight() float64 {
	switch p {
	case PriorityHigh:
		return 3.0
	case PriorityMedium:
		return 2.0
	default:
		return 1.0
	}
}

// Severity grades a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"   // blocks trustworthy reporting
	SeverityWarning Severity = "warning" // degrades data quality
	SeverityInfo    Severity = "info"    // informational only
)

// Performance classifies a measured intensity against a sector benchmark band.
type Performance string

const (
	PerformanceEfficient   Performance = "efficient"
	PerformanceAverage     Performance = "average"
	PerformanceInefficient Performance = "inefficient"
	PerformanceUnknown     Performance = "unknown"
)
