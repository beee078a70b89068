package cmd

import (
	"fmt"

	"pbxsync/core/config"
	"pbxsync/core/logger"
	"pbxsync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cleanDryRun bool

// cleanCmd collapses duplicate manifest entries.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Collapse duplicate manifest entries",
	Long: `Clean deduplicates the manifest: when several file references or build
files share one display name, the first occurrence survives and the rest
are removed, with every group and phase listing re-pointed at the
survivor. Build files referencing missing file references are dropped.

Examples:
  # Deduplicate and write the result
  pbxsync clean

  # Show the plan and a unified diff without writing
  pbxsync clean --dry-run`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Print the plan and diff without writing")
	RootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	m, data, err := loadModel(cfg.Project)
	if err != nil {
		return err
	}

	plan := reconcile.PlanClean(m)
	printPlan(l, plan)

	if !plan.Changed() {
		l.Info("Manifest already clean.")
		return nil
	}

	if cleanDryRun {
		diff, err := planScratchDiff(data, cfg.Project, plan)
		if err != nil {
			return err
		}
		fmt.Print(diff)
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	executed, err := reconcile.Apply(m, newGenerator(m), cfg.Project, plan, reconcile.Options{Confirmed: true})
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}
	if err := commitModel(cfg.Project, m); err != nil {
		return err
	}

	l.Info("Manifest cleaned",
		zap.Int("executed", executed),
		zap.Int("dedupes", plan.Summary.Dedupes),
		zap.Int("orphans_dropped", plan.Summary.OrphanDrops),
		zap.Int("list_dedupes", plan.Summary.ListDedupes),
	)
	return nil
}
