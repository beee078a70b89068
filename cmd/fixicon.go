package cmd

import (
	"fmt"

	"pbxsync/core/config"
	"pbxsync/core/logger"
	"pbxsync/feature/icon"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fixIconCmd registers the app icon resource in the manifest.
var fixIconCmd = &cobra.Command{
	Use:   "fixicon",
	Short: "Register AppIcon.icns and strip asset catalog icon settings",
	Long: `Fixicon switches the project to a loose .icns icon: AppIcon.icns is
registered as a file reference, a Resources build file, and a child of
the app group, and the asset catalog icon settings that would shadow it
are removed.

The patch is idempotent; running it on an already patched manifest
changes nothing.`,
	RunE: runFixIcon,
}

func init() {
	RootCmd.AddCommand(fixIconCmd)
}

func runFixIcon(cmd *cobra.Command, args []string) error {
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

	rep, err := icon.Patch(m, newGenerator(m), cfg.Project)
	if err != nil {
		return fmt.Errorf("failed to patch icon: %w", err)
	}

	if !rep.Changed() {
		l.Info("Icon already registered. Nothing to do.")
		return nil
	}

	if err := commitModel(cfg.Project, m); err != nil {
		return err
	}

	l.Info("Icon registered",
		zap.Int("settings_removed", rep.SettingsRemoved),
		zap.Bool("reference_added", rep.RefAdded),
		zap.Bool("build_file_added", rep.BuildAdded),
		zap.Bool("group_updated", rep.GroupUpdated),
		zap.Bool("phase_updated", rep.PhaseUpdated),
	)
	return nil
}
