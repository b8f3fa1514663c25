package solver

import (
	"fmt"
	"sort"
)

// Built-in parameter presets for common planning postures.
// Each returns a valid Parameters ready for use with Generate.

// Risk tier names, mapping regulatory complexity to a risk factor.
const (
	RiskTierLow    = "low"
	RiskTierMedium = "medium"
	RiskTierHigh   = "high"
)

// riskTierFactors maps tier names to risk factor multipliers.
var riskTierFactors = map[string]float64{
	RiskTierLow:    0.6,
	RiskTierMedium: 1.0,
	RiskTierHigh:   1.5,
}

// IsValidRiskTier reports whether name is a recognized risk tier.
func IsValidRiskTier(name string) bool {
	_, ok := riskTierFactors[name]
	return ok
}

// RiskTierFactor returns the risk factor for a named tier.
// Panics on unrecognized names; callers validate with IsValidRiskTier first.
func RiskTierFactor(name string) float64 {
	factor, ok := riskTierFactors[name]
	if !ok {
		panic(fmt.Sprintf("unknown risk tier %q", name))
	}
	return factor
}

// DefaultParameters returns the standard planning posture: a mid-size org
// with moderate growth and balanced weights, slightly risk-averse.
func DefaultParameters() Parameters {
	return Parameters{
		TargetTotal:      140,
		GrowthPct:        10,
		CostFullTime:     98000,
		CostPartTime:     52000,
		CostContractor:   125000,
		BenefitRichness:  0.55,
		PolicyStrictness: 0.60,
		RiskFactor:       riskTierFactors[RiskTierMedium],
		Weights:          Weights{Cost: 1.0, Risk: 1.2, Retention: 1.0},
	}
}

// PresetBaseline is DefaultParameters under its registry name.
func PresetBaseline() Parameters {
	return DefaultParameters()
}

// PresetExpansion models an aggressive growth phase: larger target, high
// growth, richer benefits, retention weighted up so hiring quality holds.
func PresetExpansion() Parameters {
	return Parameters{
		TargetTotal:      220,
		GrowthPct:        25,
		CostFullTime:     98000,
		CostPartTime:     52000,
		CostContractor:   125000,
		BenefitRichness:  0.65,
		PolicyStrictness: 0.50,
		RiskFactor:       riskTierFactors[RiskTierMedium],
		Weights:          Weights{Cost: 0.8, Risk: 1.0, Retention: 1.4},
	}
}

// PresetDownsizing models a contraction: shrinking target, negative growth,
// cost weighted up, retention deprioritized.
func PresetDownsizing() Parameters {
	return Parameters{
		TargetTotal:      90,
		GrowthPct:        -12,
		CostFullTime:     98000,
		CostPartTime:     52000,
		CostContractor:   125000,
		BenefitRichness:  0.45,
		PolicyStrictness: 0.70,
		RiskFactor:       riskTierFactors[RiskTierMedium],
		Weights:          Weights{Cost: 1.6, Risk: 1.0, Retention: 0.7},
	}
}

// PresetComplianceFirst models a heavily regulated environment: high risk
// tier, strict policy, risk weighted dominant.
func PresetComplianceFirst() Parameters {
	return Parameters{
		TargetTotal:      140,
		GrowthPct:        5,
		CostFullTime:     98000,
		CostPartTime:     52000,
		CostContractor:   125000,
		BenefitRichness:  0.55,
		PolicyStrictness: 0.85,
		RiskFactor:       riskTierFactors[RiskTierHigh],
		Weights:          Weights{Cost: 0.9, Risk: 2.0, Retention: 0.9},
	}
}

// PresetLeanCost models a cost-minimization posture: thin benefits, cost
// weighted dominant, low regulatory complexity.
func PresetLeanCost() Parameters {
	return Parameters{
		TargetTotal:      120,
		GrowthPct:        0,
		CostFullTime:     98000,
		CostPartTime:     52000,
		CostContractor:   125000,
		BenefitRichness:  0.35,
		PolicyStrictness: 0.60,
		RiskFactor:       riskTierFactors[RiskTierLow],
		Weights:          Weights{Cost: 2.2, Risk: 0.8, Retention: 0.6},
	}
}

// presetConstructors maps preset names to their constructors.
var presetConstructors = map[string]func() Parameters{
	"baseline":         PresetBaseline,
	"expansion":        PresetExpansion,
	"downsizing":       PresetDownsizing,
	"compliance-first": PresetComplianceFirst,
	"lean-cost":        PresetLeanCost,
}

// IsValidPreset reports whether name is a registered preset.
func IsValidPreset(name string) bool {
	_, ok := presetConstructors[name]
	return ok
}

// Preset returns the named preset's parameters.
// Panics on unrecognized names; callers validate with IsValidPreset first.
func Preset(name string) Parameters {
	ctor, ok := presetConstructors[name]
	if !ok {
		panic(fmt.Sprintf("unknown preset %q", name))
	}
	return ctor()
}

// PresetNames returns all registered preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presetConstructors))
	for name := range presetConstructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
