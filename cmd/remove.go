package cmd

import (
	"fmt"
	"path"
	"path/filepath"

	"pbxsync/core/config"
	"pbxsync/core/logger"
	"pbxsync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// removeCmd untracks files from the project manifest.
var removeCmd = &cobra.Command{
	Use:   "remove <name>...",
	Short: "Untrack files from the project manifest",
	Long: `Remove deletes every manifest entry belonging to the named files: file
references, build files, and their group and phase listings. The files on
disk are not touched.

Names may be given as bare file names or paths; only the final path
component is matched.

Examples:
  pbxsync remove WaterTracker.swift
  pbxsync remove Views/OldView.swift Legacy.swift`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func init() {
	RootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	m, _, err := loadModel(cfg.Project)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(args))
	for _, arg := range args {
		names = append(names, path.Base(filepath.ToSlash(arg)))
	}

	plan := reconcile.PlanRemove(m, names)
	printPlan(l, plan)

	if !plan.Changed() {
		l.Info("Nothing to remove.")
		return nil
	}

	executed, err := reconcile.Apply(m, newGenerator(m), cfg.Project, plan, reconcile.Options{Confirmed: true})
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}
	if err := commitModel(cfg.Project, m); err != nil {
		return err
	}

	l.Info("Manifest updated",
		zap.Int("executed", executed),
		zap.Int("removed", plan.Summary.Removals),
	)
	return nil
}
