package cmd

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"moneypath/config"
	"moneypath/journal"
	"moneypath/sim"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Batch-run campaigns under an answering policy",
	Long: `Run many unattended campaigns under a policy (prudent, reckless or
random) and print aggregate outcomes. Flags override values from --config.

Examples:
  moneypath simulate --runs 1000 --policy prudent
  moneypath simulate --config sim.yaml
  moneypath simulate --runs 200 --policy reckless --scenario broke_graduate`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

var (
	simRuns     int
	simPolicy   string
	simSeed     int64
	simScenario string
	simConfig   string
)

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVar(&simRuns, "runs", 0, "number of campaigns (overrides config)")
	simulateCmd.Flags().StringVar(&simPolicy, "policy", "", "answering policy: prudent, reckless, random")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "base RNG seed; run i uses seed+i (0 seeds from the clock)")
	simulateCmd.Flags().StringVar(&simScenario, "scenario", "", "pin the starting scenario")
	simulateCmd.Flags().StringVar(&simConfig, "config", "", "path to a YAML or JSON config file")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if simConfig != "" {
		loaded, err := config.LoadFromFile(simConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if simRuns > 0 {
		cfg.Simulation.Runs = simRuns
	}
	if simPolicy != "" {
		cfg.Simulation.Policy = simPolicy
	}
	if simScenario != "" {
		cfg.Game.Scenario = simScenario
	}
	if simSeed != 0 {
		cfg.Game.Seed = simSeed
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}

	policy, err := sim.PolicyByName(cfg.Simulation.Policy)
	if err != nil {
		return err
	}

	jrnl, err := openJournal(cfg.Journal)
	if err != nil {
		return err
	}
	if jrnl != nil {
		defer jrnl.Close()
	}

	runner := &sim.Runner{
		Policy:   policy,
		Runs:     cfg.Simulation.Runs,
		Seed:     cfg.Game.Seed,
		Scenario: cfg.Game.Scenario,
		Journal:  jrnl,
		Logger:   slog.Default(),
	}

	res, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	printResult(res)
	return nil
}

func openJournal(cfg config.JournalConfig) (journal.Journal, error) {
	switch cfg.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.DBPath)
	case "csv":
		return journal.NewCSV(cfg.RoundsFile, cfg.SessionsFile)
	default:
		return nil, nil
	}
}

func printResult(res sim.Result) {
	accent.Printf("=== %d runs, %s policy ===\n", res.Runs, res.Policy)
	fmt.Printf("Mean net worth:  %s\n", dollars(res.MeanNetWorth))
	fmt.Printf("Best net worth:  %s\n", dollars(res.BestNetWorth))
	fmt.Printf("Worst net worth: %s\n", dollars(res.WorstNetWorth))
	fmt.Printf("Millionaires:    %d (%.1f%%)\n", res.Millionaires, 100*float64(res.Millionaires)/float64(res.Runs))
	fmt.Printf("Loss warnings:   %d\n", res.TotalWarnings)

	if len(res.BadgeCounts) > 0 {
		names := make([]string, 0, len(res.BadgeCounts))
		for name := range res.BadgeCounts {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println("Badges:")
		for _, name := range names {
			fmt.Printf("  %-20s %d\n", name, res.BadgeCounts[name])
		}
	}
}
