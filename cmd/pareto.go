package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/workforce-sim/workforce-sim/export"
	"github.com/workforce-sim/workforce-sim/solver"
)

var (
	paretoPopulationPath string   // scenarios.csv from a previous generate run
	paretoMinimize       []string // objective fields where lower is better
	paretoMaximize       []string // objective fields where higher is better
	paretoOutPath        string   // optional CSV destination for the front
)

// paretoCmd filters a previously exported population down to its
// Pareto-efficient subset under caller-chosen objectives.
var paretoCmd = &cobra.Command{
	Use:   "pareto",
	Short: "Filter an exported population to its Pareto-efficient subset",
	Run: func(cmd *cobra.Command, args []string) {
		pop, err := export.LoadPopulationCSV(paretoPopulationPath)
		if err != nil {
			logrus.Fatalf("Loading population failed: %v", err)
		}

		minimize := parseFieldKeys(paretoMinimize)
		maximize := parseFieldKeys(paretoMaximize)
		if len(minimize)+len(maximize) == 0 {
			logrus.Fatalf("No objectives given; pass --minimize and/or --maximize")
		}

		front := solver.ParetoFront(pop, minimize, maximize)
		fmt.Printf("Pareto front: %d of %d scenarios survive\n", len(front), len(pop))
		printParetoTable(front, paretoDisplayLimit)

		if paretoOutPath != "" {
			if err := export.WritePopulationCSV(paretoOutPath, front); err != nil {
				logrus.Fatalf("Writing Pareto front failed: %v", err)
			}
			logrus.Infof("Pareto front written to %s", paretoOutPath)
		}
	},
}

// parseFieldKeys validates objective field names, exiting on bad input.
func parseFieldKeys(names []string) []solver.FieldKey {
	keys := make([]solver.FieldKey, 0, len(names))
	for _, name := range names {
		key, err := solver.ParseFieldKey(name)
		if err != nil {
			logrus.Fatalf("Invalid objective: %v", err)
		}
		keys = append(keys, key)
	}
	return keys
}

func init() {
	paretoCmd.Flags().StringVar(&paretoPopulationPath, "population", "", "Path to a scenarios.csv produced by generate")
	paretoCmd.Flags().StringSliceVar(&paretoMinimize, "minimize", []string{"cost", "risk"}, "Comma-separated fields to minimize")
	paretoCmd.Flags().StringSliceVar(&paretoMaximize, "maximize", []string{"retention"}, "Comma-separated fields to maximize")
	paretoCmd.Flags().StringVar(&paretoOutPath, "out", "", "Write the front to this CSV path")
	_ = paretoCmd.MarkFlagRequired("population")

	rootCmd.AddCommand(paretoCmd)
}
