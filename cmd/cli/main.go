package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghomem/lgc/adapters/stats/engine"
	"github.com/ghomem/lgc/app"
	"github.com/ghomem/lgc/domain/trial"
	"github.com/ghomem/lgc/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lgc-cli",
		Short: "Clinical trial comparison engine CLI",
	}

	rootCmd.AddCommand(newCompareCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCompareCmd() *cobra.Command {
	var (
		scenario       trial.TrialScenario
		varianceMethod string
		intervalMethod string
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare event risk between a control and a test group",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Environment configuration is read at run time so that flag
			// parsing and --help work regardless of the environment. Explicit
			// flags win over environment values.
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("control-size") {
				scenario.ControlSize = cfg.Scenario.Default.ControlSize
			}
			if !flags.Changed("test-size") {
				scenario.TestSize = cfg.Scenario.Default.TestSize
			}
			if !flags.Changed("control-risk") {
				scenario.ControlRiskPct = cfg.Scenario.Default.ControlRiskPct
			}
			if !flags.Changed("test-risk") {
				scenario.TestRiskPct = cfg.Scenario.Default.TestRiskPct
			}
			if !flags.Changed("confidence") {
				scenario.ConfidencePct = cfg.Scenario.Default.ConfidencePct
			}
			if !flags.Changed("variance-method") {
				varianceMethod = string(cfg.Engine.VarianceMethod)
			}
			if !flags.Changed("ci-method") {
				intervalMethod = string(cfg.Engine.IntervalMethod)
			}

			eng, err := engine.NewComparisonEngine(
				trial.VarianceMethod(varianceMethod),
				trial.IntervalMethod(intervalMethod),
				cfg.Engine.SearchStepPct,
			)
			if err != nil {
				return err
			}
			service := app.NewComparisonService(eng)

			if asJSON {
				result, err := service.Compare(scenario)
				if err != nil {
					return err
				}
				encoded, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(encoded))
				return nil
			}

			summary, err := service.Summarize(scenario)
			if err != nil {
				return err
			}
			fmt.Println(summary.ControlRisk)
			fmt.Println(summary.TestRisk)
			fmt.Println(summary.RiskRatio)
			if summary.PValue != "" {
				fmt.Println(summary.PValue)
			}
			if summary.CriticalAlpha != "" {
				fmt.Println(summary.CriticalAlpha)
			}
			fmt.Println(summary.AdverseEffects)
			if summary.OverlapPct != "" {
				fmt.Println(summary.OverlapPct)
			}
			for _, warning := range summary.Warnings {
				fmt.Println("Warning:", warning)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&scenario.ControlSize, "control-size", 1000, "control group size")
	cmd.Flags().IntVar(&scenario.TestSize, "test-size", 1000, "test group size")
	cmd.Flags().Float64Var(&scenario.ControlRiskPct, "control-risk", 5, "detected proportion for the control group (%)")
	cmd.Flags().Float64Var(&scenario.TestRiskPct, "test-risk", 2, "detected proportion for the test group (%)")
	cmd.Flags().Float64Var(&scenario.ConfidencePct, "confidence", 95, "target confidence level (%)")
	cmd.Flags().StringVar(&varianceMethod, "variance-method", string(trial.VarianceWalter), "risk ratio variance method: katz or walter")
	cmd.Flags().StringVar(&intervalMethod, "ci-method", string(trial.IntervalWilson), "binomial interval method: clopper-pearson, wilson, jeffreys or normal")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw result bundle as JSON")

	return cmd
}
