// internal/esg/footprint/engine.go

// Package footprint computes annual Scope 1 and Scope 2 greenhouse-gas
// emissions from location utility consumption.
package footprint

import (
	"esg-workers/internal/esg/emission"
	"esg-workers/internal/esg/model"
)

// kgPerTonne converts factor arithmetic (kg CO2e) into reported tonnes.
const kgPerTonne = 1000.0

// Engine is a pure footprint engine over a read-only factor table; safe for
// concurrent use.
type Engine struct {
	factors emission.FactorSet
}

// NewEngine builds a footprint engine over the given factor table.
func NewEngine(factors emission.FactorSet) *Engine {
	return &Engine{factors: factors}
}

// Footprint computes the company's annual emissions. Missing utilities
// contribute zero; intensity denominators (floor area, employees) are
// guarded so the engine never divides by zero.
func (e *Engine) Footprint(locations []model.LocationRecord, company model.CompanyProfile) model.CarbonFootprint {
	var scope1, scope2, totalArea float64

	for _, loc := range locations {
		totalArea += loc.TotalFloorArea
		scope1 += e.scope1(loc)
		scope2 += e.scope2(loc)
	}

	total := scope1 + scope2

	var perSqm float64
	if totalArea > 0 {
		perSqm = total / totalArea
	}

	var perEmployee float64
	if company.Employees > 0 {
		perEmployee = total / float64(company.Employees)
	}

	return model.CarbonFootprint{
		TotalAnnual:          model.Round2(total),
		Scope1:               model.Round2(scope1),
		Scope2:               model.Round2(scope2),
		EmissionsPerSqm:      model.Round2(perSqm),
		EmissionsPerEmployee: model.Round2(perEmployee),
		IntensityPerSqm:      perSqm,
	}
}

// scope1 covers direct on-site combustion: natural gas and LPG.
func (e *Engine) scope1(loc model.LocationRecord) float64 {
	return e.annualTonnes(loc, model.UtilityNaturalGas) +
		e.annualTonnes(loc, model.UtilityLPG)
}

// scope2 covers purchased energy: grid electricity and district cooling.
func (e *Engine) scope2(loc model.LocationRecord) float64 {
	return e.annualTonnes(loc, model.UtilityElectricity) +
		e.annualTonnes(loc, model.UtilityDistrictCooling)
}

func (e *Engine) annualTonnes(loc model.LocationRecord, kind model.UtilityKind) float64 {
	reading, ok := loc.Reading(kind)
	if !ok {
		return 0
	}
	annual := reading.MonthlyConsumption * 12
	return annual * e.factors.Factor(kind) / kgPerTonne
}
