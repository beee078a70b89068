package cmd

import (
	"fmt"

	"pbxsync/core/config"
	"pbxsync/core/logger"
	"pbxsync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncDryRun bool

// syncCmd reconciles the manifest with the sources on disk.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the manifest with the sources on disk",
	Long: `Sync scans the source directories and reconciles the manifest against
what it finds: entries whose files vanished are removed, files not yet
tracked are added, and build files pointing at missing references are
dropped. Files on the exclusion list are never touched.

Examples:
  # Reconcile and write the result
  pbxsync sync

  # Show the plan and a unified diff without writing
  pbxsync sync --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Print the plan and diff without writing")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
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

	entries, err := newScanner(cfg.Project).Scan()
	if err != nil {
		return fmt.Errorf("failed to scan sources: %w", err)
	}

	plan := reconcile.PlanSync(m, cfg.Project, entries)
	printPlan(l, plan)

	if !plan.Changed() {
		l.Info("Manifest already in sync.")
		return nil
	}

	if syncDryRun {
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

	l.Info("Manifest synchronized",
		zap.Int("executed", executed),
		zap.Int("added", plan.Summary.Additions),
		zap.Int("removed", plan.Summary.Removals),
		zap.Int("orphans_dropped", plan.Summary.OrphanDrops),
	)
	return nil
}
