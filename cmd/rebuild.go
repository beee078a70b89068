package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"pbxsync/core/config"
	"pbxsync/core/logger"
	"pbxsync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rebuildDryRun bool
	rebuildYes    bool
)

// rebuildCmd regenerates the tracked file set from the filesystem.
var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the tracked file set from the filesystem",
	Long: `Rebuild discards every tracked source entry in the manifest and
re-creates the set from a fresh scan, sorted by name. Entries with fresh
identifiers replace the old ones; everything outside the tracked kind is
left untouched.

This is destructive: identifiers change and manual entries of the tracked
kind are lost. The previous manifest content is always saved to the backup
path first.

Examples:
  # Rebuild with interactive confirmation
  pbxsync rebuild

  # Rebuild without prompting
  pbxsync rebuild --yes

  # Show the plan and a unified diff without writing
  pbxsync rebuild --dry-run`,
	RunE: runRebuild,
}

func init() {
	rebuildCmd.Flags().BoolVar(&rebuildDryRun, "dry-run", false, "Print the plan and diff without writing")
	rebuildCmd.Flags().BoolVar(&rebuildYes, "yes", false, "Auto-confirm the rebuild (non-interactive)")
	RootCmd.AddCommand(rebuildCmd)
}

func runRebuild(cmd *cobra.Command, args []string) error {
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

	plan := reconcile.PlanRebuild(m, cfg.Project, entries)
	printPlan(l, plan)

	if !plan.Changed() {
		l.Info("Nothing to rebuild.")
		return nil
	}

	if rebuildDryRun {
		diff, err := planScratchDiff(data, cfg.Project, plan)
		if err != nil {
			return err
		}
		fmt.Print(diff)
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	// The backup happens before any mutation, whatever comes after.
	w := newWriter(cfg.Project)
	if err := w.Backup(); err != nil {
		return fmt.Errorf("failed to back up manifest: %w", err)
	}

	executed, err := reconcile.Apply(m, newGenerator(m), cfg.Project, plan, reconcile.Options{Confirmed: true})
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}
	if err := w.Write(m.Serialize()); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	l.Info("Manifest rebuilt",
		zap.Int("executed", executed),
		zap.Int("removed", plan.Summary.Removals),
		zap.Int("added", plan.Summary.Additions),
		zap.String("backup", w.BackupPath),
	)
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if rebuildYes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to rebuild the manifest: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
