package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"pbxsync/core/config"
	"pbxsync/core/logger"
	"pbxsync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// addCmd registers source files with the project manifest.
var addCmd = &cobra.Command{
	Use:   "add <path>...",
	Short: "Track source files in the project manifest",
	Long: `Add registers source files with the project: a file reference, a build
file in the Sources phase, and an entry in the group matching the file's
directory.

Paths are relative to the project root. Paths missing on disk are skipped
with a warning; files already tracked or on the exclusion list are
reported and left alone.

Examples:
  pbxsync add Views/StreakBadge.swift
  pbxsync add Models/WaterTracker.swift Views/WaterView.swift`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	RootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	// Only files present on disk are handed to the planner.
	var paths []string
	for _, arg := range args {
		rel := filepath.ToSlash(filepath.Clean(arg))
		if _, err := os.Stat(filepath.Join(cfg.Project.Root, filepath.FromSlash(rel))); err != nil {
			l.Warn("File not found, skipping", zap.String("path", rel))
			continue
		}
		paths = append(paths, rel)
	}
	if len(paths) == 0 {
		l.Info("No files to add.")
		return nil
	}

	plan := reconcile.PlanAdd(m, cfg.Project, paths)
	printPlan(l, plan)

	if !plan.Changed() {
		l.Info("Manifest already up to date.")
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
		zap.Int("added", plan.Summary.Additions),
	)
	return nil
}
