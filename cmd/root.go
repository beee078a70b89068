package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"pbxsync/core/ident"
	"pbxsync/core/logger"
	"pbxsync/core/manifest"
	"pbxsync/core/project"
	"pbxsync/core/reconcile"
	"pbxsync/core/scan"
	"pbxsync/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pbxsync",
	Short: "Xcode project manifest reconciler",
	Long: `pbxsync keeps the TouchGrass Xcode project manifest in sync with the
Swift sources on disk. It can track and untrack files, reconcile the
manifest against the filesystem, collapse duplicate entries, and rebuild
the tracked file set from scratch.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Log the error with structured logger (Console encoding will make it pretty)
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// manifestPath resolves the manifest location against the project root.
func manifestPath(p project.Config) string {
	if filepath.IsAbs(p.Manifest) {
		return p.Manifest
	}
	return filepath.Join(p.Root, p.Manifest)
}

// loadModel reads and parses the project manifest. The raw bytes are
// returned alongside the model for dry-run diffing.
func loadModel(p project.Config) (*manifest.Model, []byte, error) {
	data, err := os.ReadFile(manifestPath(p))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m, data, nil
}

// commitModel persists the mutated model, backing up the previous manifest
// content first.
func commitModel(p project.Config, m *manifest.Model) error {
	w := newWriter(p)
	if err := w.Write(m.Serialize()); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

func newWriter(p project.Config) *storage.Writer {
	path := manifestPath(p)
	return &storage.Writer{Path: path, BackupPath: path + p.BackupSuffix}
}

// newScanner builds the filesystem scanner from project configuration.
func newScanner(p project.Config) *scan.Scanner {
	return &scan.Scanner{Root: p.Root, Dirs: p.ScanDirs, Ext: p.Extension, Exclude: p.Exclude}
}

// newGenerator seeds an identifier generator with every identifier already
// present in the document.
func newGenerator(m *manifest.Model) *ident.Generator {
	return ident.NewGenerator(m.Identifiers())
}

// printPlan logs the plan summary, a sample of planned actions, and every
// per-item issue.
func printPlan(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("tracked", s.Tracked),
		zap.Int("additions", s.Additions),
		zap.Int("removals", s.Removals),
		zap.Int("dedupes", s.Dedupes),
		zap.Int("orphan_drops", s.OrphanDrops),
		zap.Int("list_dedupes", s.ListDedupes),
	)

	if len(plan.Actions) > 0 {
		// Show sample of actions (max 5 for logger)
		maxShow := 5
		if len(plan.Actions) < maxShow {
			maxShow = len(plan.Actions)
		}
		for _, action := range plan.Actions[:maxShow] {
			l.Info("Planned action",
				zap.String("type", string(action.Type)),
				zap.String("name", action.Name),
				zap.String("reason", action.Reason),
			)
		}
		if len(plan.Actions) > maxShow {
			l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
		}
	}

	for _, issue := range plan.Issues {
		l.Warn("Skipped item", zap.String("name", issue.Name), zap.String("reason", issue.Reason))
	}
}

// planScratchDiff applies the plan to a scratch copy of the manifest and
// renders a unified diff against the current content.
func planScratchDiff(original []byte, p project.Config, plan *reconcile.Plan) (string, error) {
	scratch, err := manifest.Parse(original)
	if err != nil {
		return "", fmt.Errorf("failed to parse manifest: %w", err)
	}
	gen := newGenerator(scratch)
	if _, err := reconcile.Apply(scratch, gen, p, plan, reconcile.Options{Confirmed: true}); err != nil {
		return "", fmt.Errorf("failed to stage plan: %w", err)
	}
	return reconcile.RenderDiff(original, scratch.Serialize()), nil
}

func init() {

}
