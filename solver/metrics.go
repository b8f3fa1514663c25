package solver

const (
	// overheadRate scales the quadratic coordination overhead on base cost.
	overheadRate = 4e-6
	// penaltyRate scales the squared FTE-vs-target deviation.
	penaltyRate = 0.06
)

// Mix is a candidate staffing mix: headcounts per engagement type.
// Coordinates are non-negative by construction (sampling and clamping
// never produce negatives); the type itself does not enforce it.
type Mix struct {
	FT int `json:"ft"` // full-time employees
	PT int `json:"pt"` // part-time employees
	CT int `json:"ct"` // contractors
}

// Headcount returns the total number of people in the mix.
func (m Mix) Headcount() int {
	return m.FT + m.PT + m.CT
}

// MixMetrics is the derived metric record for one mix under fixed
// parameters. Immutable once computed: downstream consumers read,
// never write.
type MixMetrics struct {
	Mix
	FTE             float64 `json:"fte"`              // full-time-equivalent capacity
	EffectiveTarget float64 `json:"effective_target"` // growth-adjusted headcount target
	Cost            float64 `json:"cost"`             // base payroll plus coordination overhead
	Risk            float64 `json:"risk"`             // compliance/continuity risk index
	Retention       float64 `json:"retention"`        // retention strength index
	Penalty         float64 `json:"penalty"`          // squared deviation of FTE from target
}

// Evaluate computes all derived metrics for a mix. Pure and deterministic:
// same mix and parameters always yield the identical record, and no state
// survives the call. Degenerate inputs (zero headcount, non-positive
// target) produce well-defined values, never errors.
//
// Formulas:
//
//	fte       = ft + 0.5*pt + ct
//	effTarget = target * (1 + growth/100)
//	cost      = base + 4e-6 * headcount^2 * base
//	risk      = riskFactor * (0.65 + 1.35*contractorRatio) * (1.2 - 0.7*strictness)
//	retention = (0.7 + 1.6*benefits) * (0.65 + 0.9*ftRatio) * (1 - 0.55*contractorRatio)
//	penalty   = (fte - effTarget)^2 * 0.06
func Evaluate(mix Mix, params Parameters) MixMetrics {
	fte := float64(mix.FT) + 0.5*float64(mix.PT) + float64(mix.CT)
	effTarget := float64(params.TargetTotal) * (1 + params.GrowthPct/100)

	base := float64(mix.FT)*params.CostFullTime +
		float64(mix.PT)*params.CostPartTime +
		float64(mix.CT)*params.CostContractor
	head := float64(mix.Headcount())
	cost := base + overheadRate*head*head*base

	// Ratio denominators floor at 1 so the empty mix divides cleanly.
	denom := float64(max(1, mix.Headcount()))
	contractorRatio := float64(mix.CT) / denom
	ftRatio := float64(mix.FT) / denom

	risk := params.RiskFactor *
		(0.65 + 1.35*contractorRatio) *
		(1.2 - 0.7*params.PolicyStrictness)

	retention := (0.7 + 1.6*params.BenefitRichness) *
		(0.65 + 0.9*ftRatio) *
		(1 - 0.55*contractorRatio)

	deviation := fte - effTarget
	penalty := deviation * deviation * penaltyRate

	return MixMetrics{
		Mix:             mix,
		FTE:             fte,
		EffectiveTarget: effTarget,
		Cost:            cost,
		Risk:            risk,
		Retention:       retention,
		Penalty:         penalty,
	}
}
