// internal/esg/emission/factors.go

// Package emission holds the per-utility emission factor table used by the
// footprint engine. The defaults are UAE grid and fuel averages; deployments
// may override individual factors through configuration.
package emission

import (
	"fmt"

	"esg-workers/internal/esg/model"
)

// FactorSet maps a utility kind to its emission factor. Units:
// electricity and district cooling kg CO2e/kWh, natural gas and LPG
// kg CO2e/kg, diesel and petrol kg CO2e/litre.
type FactorSet map[model.UtilityKind]float64

// DefaultFactors returns the built-in UAE emission factor table. Diesel and
// petrol are reserved for fleet accounting and not yet wired into the
// footprint engine.
func DefaultFactors() FactorSet {
	return FactorSet{
		model.UtilityElectricity:     0.469,
		model.UtilityNaturalGas:      2.75,
		model.UtilityLPG:             3.03,
		model.UtilityDistrictCooling: 0.385,
		model.UtilityDiesel:          2.68,
		model.UtilityPetrol:          2.31,
	}
}

// Factor returns the emission factor for kind, or 0 when the utility does
// not carry one (water has no direct emission factor).
func (f FactorSet) Factor(kind model.UtilityKind) float64 {
	return f[kind]
}

// Merge returns a copy of f with the non-zero entries of overrides applied.
func (f FactorSet) Merge(overrides map[string]float64) FactorSet {
	merged := make(FactorSet, len(f))
	for k, v := range f {
		merged[k] = v
	}
	for k, v := range overrides {
		if v != 0 {
			merged[model.UtilityKind(k)] = v
		}
	}
	return merged
}

// Validate checks the table for contract errors. A negative factor or a
// missing entry for a footprint-relevant utility is invalid static
// configuration and fails loudly at startup.
func (f FactorSet) Validate() error {
	required := []model.UtilityKind{
		model.UtilityElectricity,
		model.UtilityNaturalGas,
		model.UtilityLPG,
		model.UtilityDistrictCooling,
	}
	for _, kind := range required {
		v, ok := f[kind]
		if !ok {
			return fmt.Errorf("emission factor for %q missing", kind)
		}
		if v < 0 {
			return fmt.Errorf("emission factor for %q is negative: %v", kind, v)
		}
	}
	for kind, v := range f {
		if v < 0 {
			return fmt.Errorf("emission factor for %q is negative: %v", kind, v)
		}
	}
	return nil
}
