// internal/esg/score/weights.go
package score

import (
	"fmt"
	"math"

	"esg-workers/internal/esg/model"
)

// weightTolerance is the permitted drift when checking that a sector's
// category weights sum to 1.0.
const weightTolerance = 1e-9

// CategoryWeights is the per-sector weighting of the three ESG dimensions.
type CategoryWeights struct {
	Environmental float64
	Social        float64
	Governance    float64
}

// Weight returns the weight for one ESG dimension.
func (w CategoryWeights) Weight(c model.Category) float64 {
	switch c {
	case model.CategoryEnvironmental:
		return w.Environmental
	case model.CategorySocial:
		return w.Social
	default:
		return w.Governance
	}
}

// DefaultWeights applies to unknown sectors and to sectors without a
// dedicated entry.
var DefaultWeights = CategoryWeights{Environmental: 0.40, Social: 0.30, Governance: 0.30}

// WeightTable maps sectors to their category weights.
type WeightTable map[model.Sector]CategoryWeights

// DefaultWeightTable returns the built-in sector weighting.
func DefaultWeightTable() WeightTable {
	return WeightTable{
		model.SectorHospitality:   {Environmental: 0.45, Social: 0.35, Governance: 0.20},
		model.SectorManufacturing: {Environmental: 0.50, Social: 0.30, Governance: 0.20},
		model.SectorConstruction:  {Environmental: 0.45, Social: 0.35, Governance: 0.20},
		model.SectorHealthcare:    {Environmental: 0.35, Social: 0.45, Governance: 0.20},
		model.SectorEducation:     {Environmental: 0.30, Social: 0.50, Governance: 0.20},
		model.SectorLogistics:     {Environmental: 0.50, Social: 0.25, Governance: 0.25},
	}
}

// Validate checks that every entry, and the default, sums to 1.0. Weights
// that do not sum to 1.0 are invalid static configuration and fail loudly
// at startup.
func (t WeightTable) Validate() error {
	check := func(name string, w CategoryWeights) error {
		sum := w.Environmental + w.Social + w.Governance
		if math.Abs(sum-1.0) > weightTolerance {
			return fmt.Errorf("sector weights for %s sum to %v, want 1.0", name, sum)
		}
		if w.Environmental < 0 || w.Social < 0 || w.Governance < 0 {
			return fmt.Errorf("sector weights for %s contain a negative weight", name)
		}
		return nil
	}
	if err := check("default", DefaultWeights); err != nil {
		return err
	}
	for sector, w := range t {
		if err := check(string(sector), w); err != nil {
			return err
		}
	}
	return nil
}

// weightsFor resolves the weighting for a sector, falling back to the
// default for unknown or unlisted sectors.
func (t WeightTable) weightsFor(sector model.Sector) CategoryWeights {
	if w, ok := t[sector]; ok {
		return w
	}
	return DefaultWeights
}
