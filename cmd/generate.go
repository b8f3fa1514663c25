package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/workforce-sim/workforce-sim/export"
	"github.com/workforce-sim/workforce-sim/solver"
	"github.com/workforce-sim/workforce-sim/solver/trace"
)

var (
	// Run shape flags
	samples    int    // Number of scenarios to aim for in the population
	seed       int64  // Master seed for both generation phases
	logLevel   string // Log verbosity level
	traceLevel string // Annealing walk trace level (none, steps)
	topN       int    // Leaderboard rows to print
	outDir     string // Artifact directory (empty = print only)
	showPareto bool   // Compute and report the Pareto-efficient subset

	// Parameter sources, lowest to highest precedence
	presetName     string // Named preset to start from
	paramsPath     string // YAML parameters file
	paramsJSONPath string // Dashboard-exported JSON parameter document

	// Individual lever overrides; applied only when set on the command line
	targetTotal      int
	growthPct        float64
	costFullTime     float64
	costPartTime     float64
	costContractor   float64
	benefitRichness  float64
	policyStrictness float64
	riskTier         string
	riskFactor       float64
	weightCost       float64
	weightRisk       float64
	weightRetention  float64
)

// recommendedMinSamples is the floor below which the population gets too
// thin to chart tradeoffs meaningfully.
const recommendedMinSamples = 300

// paretoDisplayLimit caps the printed Pareto table.
const paretoDisplayLimit = 15

// generateCmd runs one generation from parameters assembled out of
// defaults, preset, files, and flags.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a scored population of workforce mix scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging(logLevel)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s (valid: none, steps)", traceLevel)
		}

		params := assembleParameters(cmd)
		if err := params.Validate(); err != nil {
			logrus.Fatalf("Invalid parameters: %v", err)
		}
		if samples < recommendedMinSamples {
			logrus.Warnf("sample count %d is below the recommended minimum of %d; the population will be thin", samples, recommendedMinSamples)
		}

		logrus.Infof("Starting generation: target=%d growth=%.1f%% samples=%d seed=%d",
			params.TargetTotal, params.GrowthPct, samples, seed)

		gen := solver.NewGenerator(params, samples, seed)
		var walk *trace.WalkTrace
		if trace.TraceLevel(traceLevel) == trace.TraceLevelSteps {
			walk = trace.NewWalkTrace(trace.TraceConfig{Level: trace.TraceLevelSteps})
			gen.Walk = walk
		}

		startTime := time.Now()
		pop, best, energies := gen.Run()
		elapsed := time.Since(startTime)

		printLeaderboard(pop.Top(topN))
		printBest(best)

		if walk != nil {
			ws := trace.Summarize(walk)
			logrus.Infof("Annealing walk: %d steps, %d accepted (%d uphill), best energy %.4f at step %d",
				ws.TotalSteps, ws.AcceptedCount, ws.UphillCount, ws.BestEnergy, ws.BestStep)
		}

		var front solver.Population
		if showPareto {
			front = solver.ParetoFront(pop,
				[]solver.FieldKey{solver.FieldCost, solver.FieldRisk},
				[]solver.FieldKey{solver.FieldRetention})
			printParetoTable(front, paretoDisplayLimit)
		}

		if outDir != "" {
			writeArtifacts(params, pop, best, front, energies, walk, elapsed)
		}

		logrus.Infof("Generation complete in %v.", elapsed)
	},
}

// assembleParameters builds the run parameters with increasing precedence:
// package defaults, then preset, then YAML file, then JSON document, then
// any lever flag explicitly set on the command line.
func assembleParameters(cmd *cobra.Command) solver.Parameters {
	params := solver.DefaultParameters()

	if presetName != "" {
		if !solver.IsValidPreset(presetName) {
			logrus.Fatalf("Unknown preset %q. Available: %v", presetName, solver.PresetNames())
		}
		params = solver.Preset(presetName)
	}
	if paramsPath != "" {
		loaded, err := solver.LoadParameters(paramsPath)
		if err != nil {
			logrus.Fatalf("Loading parameters failed: %v", err)
		}
		params = *loaded
	}
	if paramsJSONPath != "" {
		doc, err := os.ReadFile(paramsJSONPath)
		if err != nil {
			logrus.Fatalf("Reading parameter document failed: %v", err)
		}
		merged, err := solver.ParametersFromJSON(params, doc)
		if err != nil {
			logrus.Fatalf("Parsing parameter document failed: %v", err)
		}
		params = merged
	}

	flags := cmd.Flags()
	if flags.Changed("target") {
		params.TargetTotal = targetTotal
	}
	if flags.Changed("growth") {
		params.GrowthPct = growthPct
	}
	if flags.Changed("cost-full-time") {
		params.CostFullTime = costFullTime
	}
	if flags.Changed("cost-part-time") {
		params.CostPartTime = costPartTime
	}
	if flags.Changed("cost-contractor") {
		params.CostContractor = costContractor
	}
	if flags.Changed("benefit-richness") {
		params.BenefitRichness = benefitRichness
	}
	if flags.Changed("policy-strictness") {
		params.PolicyStrictness = policyStrictness
	}
	if flags.Changed("risk-tier") {
		if !solver.IsValidRiskTier(riskTier) {
			logrus.Fatalf("Unknown risk tier %q. Valid: low, medium, high", riskTier)
		}
		params.RiskFactor = solver.RiskTierFactor(riskTier)
	}
	// An explicit factor beats an explicit tier.
	if flags.Changed("risk-factor") {
		params.RiskFactor = riskFactor
	}
	if flags.Changed("w-cost") {
		params.Weights.Cost = weightCost
	}
	if flags.Changed("w-risk") {
		params.Weights.Risk = weightRisk
	}
	if flags.Changed("w-ret") {
		params.Weights.Retention = weightRetention
	}
	return params
}

// writeArtifacts writes the population CSV, energy trace CSV, run report
// JSON, and (when computed) the Pareto front CSV under outDir.
func writeArtifacts(params solver.Parameters, pop solver.Population, best solver.ScoredScenario,
	front solver.Population, energies solver.EnergyTrace, walk *trace.WalkTrace, elapsed time.Duration) {

	if err := os.MkdirAll(outDir, 0755); err != nil {
		logrus.Fatalf("Creating artifact directory failed: %v", err)
	}

	if err := export.WritePopulationCSV(filepath.Join(outDir, "scenarios.csv"), pop); err != nil {
		logrus.Fatalf("Population export failed: %v", err)
	}
	if err := export.WriteEnergyTraceCSV(filepath.Join(outDir, "energy.csv"), energies); err != nil {
		logrus.Fatalf("Energy trace export failed: %v", err)
	}
	if front != nil {
		if err := export.WritePopulationCSV(filepath.Join(outDir, "pareto.csv"), front); err != nil {
			logrus.Fatalf("Pareto front export failed: %v", err)
		}
	}

	report := export.RunReport{
		Metadata:       export.NewRunMetadata(seed, samples, elapsed),
		Parameters:     params,
		Best:           best,
		PopulationSize: len(pop),
		Summary:        solver.Summarize(pop),
		ParetoSize:     len(front),
	}
	if walk != nil {
		report.WalkSummary = trace.Summarize(walk)
	}
	if err := export.WriteReport(filepath.Join(outDir, "report.json"), report); err != nil {
		logrus.Fatalf("Run report export failed: %v", err)
	}

	logrus.Infof("Artifacts written to %s", outDir)
}

// printLeaderboard prints the top rows of the sorted population.
func printLeaderboard(rows solver.Population) {
	fmt.Printf("%-5s %5s %5s %5s %8s %15s %8s %10s %9s\n",
		"Rank", "FT", "PT", "CT", "FTE", "Cost", "Risk", "Retention", "Score")
	fmt.Printf("%-5s %5s %5s %5s %8s %15s %8s %10s %9s\n",
		"-----", "-----", "-----", "-----", "--------", "---------------", "--------", "----------", "---------")
	for i, row := range rows {
		fmt.Printf("%-5d %5d %5d %5d %8.1f %15.2f %8.4f %10.4f %9.4f\n",
			i+1, row.FT, row.PT, row.CT, row.FTE, row.Cost, row.Risk, row.Retention, row.Score)
	}
}

// printBest prints the recommended mix with its metric breakdown.
func printBest(best solver.ScoredScenario) {
	fmt.Printf("\nBest mix: %d full-time / %d part-time / %d contractors (score %.4f)\n",
		best.FT, best.PT, best.CT, best.Score)
	fmt.Printf("  FTE %.1f against effective target %.1f (penalty %.2f)\n",
		best.FTE, best.EffectiveTarget, best.Penalty)
	fmt.Printf("  Cost %.2f  Risk %.4f  Retention %.4f\n",
		best.Cost, best.Risk, best.Retention)
}

// printParetoTable prints the head of the front sorted by cost then risk,
// the order planners scan tradeoff tables in. The front itself keeps
// population order; sorting here is display only.
func printParetoTable(front solver.Population, limit int) {
	rows := make(solver.Population, len(front))
	copy(rows, front)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Cost != rows[j].Cost {
			return rows[i].Cost < rows[j].Cost
		}
		return rows[i].Risk < rows[j].Risk
	})
	if limit < len(rows) {
		rows = rows[:limit]
	}

	fmt.Printf("\nPareto-efficient scenarios (%d total, showing %d):\n", len(front), len(rows))
	fmt.Printf("%5s %5s %5s %15s %8s %10s %9s\n",
		"FT", "PT", "CT", "Cost", "Risk", "Retention", "Score")
	for _, row := range rows {
		fmt.Printf("%5d %5d %5d %15.2f %8.4f %10.4f %9.4f\n",
			row.FT, row.PT, row.CT, row.Cost, row.Risk, row.Retention, row.Score)
	}
}

// init sets up CLI flags and registers the generate subcommand
func init() {
	defaults := solver.DefaultParameters()

	generateCmd.Flags().IntVar(&samples, "samples", 1600, "Number of scenarios to generate")
	generateCmd.Flags().Int64Var(&seed, "seed", 2026, "Master seed for deterministic generation")
	generateCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	generateCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Annealing walk trace level (none, steps)")
	generateCmd.Flags().IntVar(&topN, "top", 10, "Leaderboard rows to print")
	generateCmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for run artifacts (scenarios.csv, energy.csv, report.json)")
	generateCmd.Flags().BoolVar(&showPareto, "pareto", false, "Report the Pareto-efficient subset (minimize cost,risk; maximize retention)")

	// Parameter sources
	generateCmd.Flags().StringVar(&presetName, "preset", "", "Start from a named preset (baseline, compliance-first, downsizing, expansion, lean-cost)")
	generateCmd.Flags().StringVar(&paramsPath, "params", "", "YAML parameters file")
	generateCmd.Flags().StringVar(&paramsJSONPath, "params-json", "", "Dashboard-exported JSON parameter document")

	// Business levers
	generateCmd.Flags().IntVar(&targetTotal, "target", defaults.TargetTotal, "Target total headcount")
	generateCmd.Flags().Float64Var(&growthPct, "growth", defaults.GrowthPct, "Expected growth in percent (negative = downsizing)")
	generateCmd.Flags().Float64Var(&costFullTime, "cost-full-time", defaults.CostFullTime, "Fully-loaded annual cost per full-time employee")
	generateCmd.Flags().Float64Var(&costPartTime, "cost-part-time", defaults.CostPartTime, "Fully-loaded annual cost per part-time employee")
	generateCmd.Flags().Float64Var(&costContractor, "cost-contractor", defaults.CostContractor, "Fully-loaded annual cost per contractor")
	generateCmd.Flags().Float64Var(&benefitRichness, "benefit-richness", defaults.BenefitRichness, "Benefit richness lever in [0, 1]")
	generateCmd.Flags().Float64Var(&policyStrictness, "policy-strictness", defaults.PolicyStrictness, "Policy strictness lever in [0, 1]")
	generateCmd.Flags().StringVar(&riskTier, "risk-tier", solver.RiskTierMedium, "Regulatory complexity tier (low, medium, high)")
	generateCmd.Flags().Float64Var(&riskFactor, "risk-factor", defaults.RiskFactor, "Risk factor multiplier (overrides --risk-tier)")

	// Score weights
	generateCmd.Flags().Float64Var(&weightCost, "w-cost", defaults.Weights.Cost, "Score weight on cost")
	generateCmd.Flags().Float64Var(&weightRisk, "w-risk", defaults.Weights.Risk, "Score weight on risk")
	generateCmd.Flags().Float64Var(&weightRetention, "w-ret", defaults.Weights.Retention, "Score weight on retention")

	rootCmd.AddCommand(generateCmd)
}
