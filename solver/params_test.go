package solver

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeParamsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadParameters(t *testing.T) {
	// GIVEN a complete YAML parameters file
	path := writeParamsFile(t, `
target_total: 180
growth_pct: -5
cost_full_time: 101000
cost_part_time: 54000
cost_contractor: 130000
benefit_richness: 0.4
policy_strictness: 0.8
risk_factor: 1.5
weights:
  cost: 1.1
  risk: 0.9
  retention: 1.3
`)

	// WHEN loaded
	params, err := LoadParameters(path)
	require.NoError(t, err)

	// THEN every field round-trips and the result validates
	assert.Equal(t, 180, params.TargetTotal)
	assert.Equal(t, -5.0, params.GrowthPct)
	assert.Equal(t, 101000.0, params.CostFullTime)
	assert.Equal(t, 54000.0, params.CostPartTime)
	assert.Equal(t, 130000.0, params.CostContractor)
	assert.Equal(t, 0.4, params.BenefitRichness)
	assert.Equal(t, 0.8, params.PolicyStrictness)
	assert.Equal(t, 1.5, params.RiskFactor)
	assert.Equal(t, Weights{Cost: 1.1, Risk: 0.9, Retention: 1.3}, params.Weights)
	assert.NoError(t, params.Validate())
}

func TestLoadParameters_RejectsUnknownKeys(t *testing.T) {
	// Strict decoding catches typos instead of silently dropping levers.
	path := writeParamsFile(t, `
target_total: 180
groth_pct: 5
`)

	_, err := LoadParameters(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing parameters")
}

func TestLoadParameters_MissingFile(t *testing.T) {
	_, err := LoadParameters(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestParametersValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Parameters)
		wantErr string
	}{
		{"defaults are valid", func(p *Parameters) {}, ""},
		{"zero target", func(p *Parameters) { p.TargetTotal = 0 }, "target_total"},
		{"negative target", func(p *Parameters) { p.TargetTotal = -3 }, "target_total"},
		{"NaN growth", func(p *Parameters) { p.GrowthPct = math.NaN() }, "growth_pct"},
		{"zero full-time cost", func(p *Parameters) { p.CostFullTime = 0 }, "cost_full_time"},
		{"negative part-time cost", func(p *Parameters) { p.CostPartTime = -1 }, "cost_part_time"},
		{"infinite contractor cost", func(p *Parameters) { p.CostContractor = math.Inf(1) }, "cost_contractor"},
		{"benefit above one", func(p *Parameters) { p.BenefitRichness = 1.2 }, "benefit_richness"},
		{"negative strictness", func(p *Parameters) { p.PolicyStrictness = -0.1 }, "policy_strictness"},
		{"zero risk factor", func(p *Parameters) { p.RiskFactor = 0 }, "risk_factor"},
		{"negative cost weight", func(p *Parameters) { p.Weights.Cost = -1 }, "weights.cost"},
		{"NaN retention weight", func(p *Parameters) { p.Weights.Retention = math.NaN() }, "weights.retention"},
		{"zero weights are legal", func(p *Parameters) { p.Weights = Weights{} }, ""},
		{"negative growth is legal", func(p *Parameters) { p.GrowthPct = -50 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultParameters()
			tt.mutate(&params)

			err := params.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
