package solver

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Parameters is the full set of business levers for one generation run.
// Loaded from YAML via LoadParameters(path), assembled from flags, or
// imported from a dashboard JSON document. Treated as immutable for the
// duration of a run: every consumer receives it by value.
type Parameters struct {
	// TargetTotal is the desired total headcount before growth adjustment.
	TargetTotal int `yaml:"target_total" json:"target_total"`
	// GrowthPct adjusts the target, in percent. Negative means downsizing.
	GrowthPct float64 `yaml:"growth_pct" json:"growth_pct"`

	// Fully-loaded annual cost per head, by engagement type.
	CostFullTime   float64 `yaml:"cost_full_time" json:"cost_full_time"`
	CostPartTime   float64 `yaml:"cost_part_time" json:"cost_part_time"`
	CostContractor float64 `yaml:"cost_contractor" json:"cost_contractor"`

	// BenefitRichness and PolicyStrictness are unit-interval levers.
	BenefitRichness  float64 `yaml:"benefit_richness" json:"benefit_richness"`
	PolicyStrictness float64 `yaml:"policy_strictness" json:"policy_strictness"`

	// RiskFactor is the regulatory-complexity multiplier on risk.
	// See RiskTierFactor for the named tiers.
	RiskFactor float64 `yaml:"risk_factor" json:"risk_factor"`

	Weights Weights `yaml:"weights" json:"weights"`
}

// LoadParameters reads and parses a YAML parameters file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadParameters(path string) (*Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameters: %w", err)
	}
	var params Parameters
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&params); err != nil {
		return nil, fmt.Errorf("parsing parameters: %w", err)
	}
	return &params, nil
}

// Validate checks that all fields describe a plannable business.
// The generator itself never errors on degenerate input; validation is
// the caller's gate for catching bad user input before a run.
func (p *Parameters) Validate() error {
	if p.TargetTotal <= 0 {
		return fmt.Errorf("target_total must be positive, got %d", p.TargetTotal)
	}
	if math.IsNaN(p.GrowthPct) || math.IsInf(p.GrowthPct, 0) {
		return fmt.Errorf("growth_pct must be a finite number, got %f", p.GrowthPct)
	}
	if err := validateFinitePositive("cost_full_time", p.CostFullTime); err != nil {
		return err
	}
	if err := validateFinitePositive("cost_part_time", p.CostPartTime); err != nil {
		return err
	}
	if err := validateFinitePositive("cost_contractor", p.CostContractor); err != nil {
		return err
	}
	if err := validateUnitInterval("benefit_richness", p.BenefitRichness); err != nil {
		return err
	}
	if err := validateUnitInterval("policy_strictness", p.PolicyStrictness); err != nil {
		return err
	}
	if err := validateFinitePositive("risk_factor", p.RiskFactor); err != nil {
		return err
	}
	if err := validateFiniteNonNegative("weights.cost", p.Weights.Cost); err != nil {
		return err
	}
	if err := validateFiniteNonNegative("weights.risk", p.Weights.Risk); err != nil {
		return err
	}
	if err := validateFiniteNonNegative("weights.retention", p.Weights.Retention); err != nil {
		return err
	}
	return nil
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val <= 0 {
		return fmt.Errorf("%s must be positive, got %f", name, val)
	}
	return nil
}

func validateFiniteNonNegative(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < 0 {
		return fmt.Errorf("%s must be non-negative, got %f", name, val)
	}
	return nil
}

func validateUnitInterval(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < 0 || val > 1 {
		return fmt.Errorf("%s must be in [0, 1], got %f", name, val)
	}
	return nil
}
