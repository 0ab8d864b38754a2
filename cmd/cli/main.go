package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"mostest/adapters/analysis"
	"mostest/adapters/catalogbuild"
	"mostest/domain/catalog"
	"mostest/domain/sampler"
	"mostest/domain/trial"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mostest-cli",
		Short: "Offline tools for listening-test catalogs and results",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newBuildCatalogCmd(),
		newSampleCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var csvOut, xlsxOut, utteranceOut string
	var confidence, smosShift float64

	cmd := &cobra.Command{
		Use:   "analyze [results-dir]",
		Short: "Aggregate result bundles into per-system statistics",
		Long: `Aggregate every *_results.json bundle in a directory into per-system
mean scores with t-distribution confidence intervals. Bundles that fail
their attention checks are dropped, and swapped presentations are
corrected before aggregation.

Example: mostest-cli analyze results/ --csv stats.csv --smos-shift 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundles, err := analysis.LoadDir(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			passed := 0
			for _, bundle := range bundles {
				if analysis.BundlePasses(bundle) {
					passed++
				}
			}
			fmt.Printf("Loaded %d bundles, %d passed attention checks\n", len(bundles), passed)

			analyzer := analysis.New(analysis.Config{
				Confidence: confidence,
				SMOSShift:  smosShift,
			})
			records := analyzer.Filter(bundles)
			stats, err := analyzer.Aggregate(records)
			if err != nil {
				return err
			}

			for _, row := range stats {
				fmt.Printf("%-16s %-20s mean=%7.3f  ci=[%7.3f, %7.3f]  n=%d\n",
					row.TestType, row.System, row.Mean, row.CILower, row.CIUpper, row.N)
			}

			if csvOut != "" {
				if err := analysis.WriteCSV(stats, csvOut); err != nil {
					return err
				}
				fmt.Println("Wrote", csvOut)
			}
			if xlsxOut != "" {
				if err := analysis.WriteXLSX(stats, xlsxOut); err != nil {
					return err
				}
				fmt.Println("Wrote", xlsxOut)
			}
			if utteranceOut != "" {
				rows := analyzer.AggregateUtterances(records)
				if err := analysis.WriteUtteranceJSON(rows, utteranceOut); err != nil {
					return err
				}
				fmt.Println("Wrote", utteranceOut)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvOut, "csv", "", "write per-system stats as CSV")
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "write per-system stats as XLSX, one sheet per test type")
	cmd.Flags().StringVar(&utteranceOut, "utterances", "", "write per-utterance means as JSON")
	cmd.Flags().Float64Var(&confidence, "confidence", 0.95, "confidence level for the t-interval")
	cmd.Flags().Float64Var(&smosShift, "smos-shift", 0, "constant added to similarity means, for signed-scale deployments")
	return cmd
}

func newBuildCatalogCmd() *cobra.Command {
	var seed int64
	var web bool

	cmd := &cobra.Command{
		Use:   "build-catalog [config.yaml]",
		Short: "Build a trial catalog from audio directories or web indexes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := catalogbuild.LoadBuildConfig(args[0])
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			local := catalogbuild.NewLocalBuilder(cfg, rng)
			var built map[string][][]trial.Spec
			if web {
				built, err = catalogbuild.NewWebIndexBuilder(cfg, rng).Build(cmd.Context())
			} else {
				built, err = local.Build()
			}
			if err != nil {
				return err
			}

			for tag, groups := range built {
				total := 0
				for _, group := range groups {
					total += len(group)
				}
				fmt.Printf("%-8s %d groups, %d trials\n", tag, len(groups), total)
			}
			if err := local.WriteCatalog(built); err != nil {
				return err
			}
			fmt.Println("Wrote", cfg.Output)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for pair sampling and swaps, 0 means time-seeded")
	cmd.Flags().BoolVar(&web, "web", false, "treat system paths as HTTP directory index URLs")
	return cmd
}

// newSampleCmd dry-runs the per-session sampler against a catalog, which is
// the quickest way to sanity-check group sizes and attention placement
// before opening a study.
func newSampleCmd() *cobra.Command {
	var seed int64
	var perGroup, numAttention int
	var windowLo, windowHi float64
	var attentionPath string

	cmd := &cobra.Command{
		Use:   "sample [catalog.json]",
		Short: "Print one sampled session sequence without starting a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(args[0])
			if err != nil {
				return err
			}
			var attention []trial.Spec
			if attentionPath != "" {
				if attention, err = catalog.LoadPool(attentionPath); err != nil {
					return err
				}
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			policy := sampler.Policy{
				SamplePerGroup: perGroup,
				NumAttention:   numAttention,
				WindowLo:       windowLo,
				WindowHi:       windowHi,
			}
			rng := rand.New(rand.NewSource(seed))
			sequence := sampler.New(policy, attention, nil, rng).Sample(cat)

			fmt.Printf("Sampled %d trials (seed %d)\n", len(sequence), seed)
			for i, spec := range sequence {
				audio := spec.Target
				if audio == "" {
					audio = spec.Reference
				}
				fmt.Printf("%3d  %-16s %s\n", i, spec.Type, audio)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 means time-seeded")
	cmd.Flags().IntVar(&perGroup, "per-group", 4, "trials sampled per comparison group")
	cmd.Flags().IntVar(&numAttention, "attention", 0, "attention checks to interleave")
	cmd.Flags().Float64Var(&windowLo, "window-lo", 0.2, "lower attention window bound")
	cmd.Flags().Float64Var(&windowHi, "window-hi", 0.9, "upper attention window bound")
	cmd.Flags().StringVar(&attentionPath, "attention-pool", "", "attention pool JSON path")
	return cmd
}
