package solver

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ParametersFromJSON overlays fields from a JSON parameter document onto
// base and returns the result. Documents come from the planning dashboard's
// export, which writes only the levers the user touched, so every key is
// optional: present keys override, absent keys keep the base value, and
// unknown keys are ignored. A "risk_tier" name is honored when
// "risk_factor" is absent.
func ParametersFromJSON(base Parameters, doc []byte) (Parameters, error) {
	if !gjson.ValidBytes(doc) {
		return base, fmt.Errorf("parameter document is not valid JSON")
	}

	params := base
	if v := gjson.GetBytes(doc, "target_total"); v.Exists() {
		params.TargetTotal = int(v.Int())
	}
	if v := gjson.GetBytes(doc, "growth_pct"); v.Exists() {
		params.GrowthPct = v.Float()
	}
	if v := gjson.GetBytes(doc, "cost_full_time"); v.Exists() {
		params.CostFullTime = v.Float()
	}
	if v := gjson.GetBytes(doc, "cost_part_time"); v.Exists() {
		params.CostPartTime = v.Float()
	}
	if v := gjson.GetBytes(doc, "cost_contractor"); v.Exists() {
		params.CostContractor = v.Float()
	}
	if v := gjson.GetBytes(doc, "benefit_richness"); v.Exists() {
		params.BenefitRichness = v.Float()
	}
	if v := gjson.GetBytes(doc, "policy_strictness"); v.Exists() {
		params.PolicyStrictness = v.Float()
	}
	if v := gjson.GetBytes(doc, "risk_factor"); v.Exists() {
		params.RiskFactor = v.Float()
	} else if v := gjson.GetBytes(doc, "risk_tier"); v.Exists() {
		tier := v.String()
		if !IsValidRiskTier(tier) {
			return base, fmt.Errorf("unknown risk_tier %q in parameter document", tier)
		}
		params.RiskFactor = RiskTierFactor(tier)
	}
	if v := gjson.GetBytes(doc, "weights.cost"); v.Exists() {
		params.Weights.Cost = v.Float()
	}
	if v := gjson.GetBytes(doc, "weights.risk"); v.Exists() {
		params.Weights.Risk = v.Float()
	}
	if v := gjson.GetBytes(doc, "weights.retention"); v.Exists() {
		params.Weights.Retention = v.Float()
	}
	return params, nil
}
