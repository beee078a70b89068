package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"pbxsync/core/config"
	"pbxsync/core/logger"
	"pbxsync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd reports manifest drift without mutating anything.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report drift between the manifest and the filesystem",
	Long: `Check scans the source directories and reports how the manifest differs
from them: tracked files missing on disk, files on disk that are not
tracked, orphaned build files, and duplicate entries.

Nothing is written. The command exits 0 even when drift is found; it is a
report, not a gate.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("json", false, "Save a detailed JSON report")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	jsonOutput, _ := cmd.Flags().GetBool("json")

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

	entries, err := newScanner(cfg.Project).Scan()
	if err != nil {
		return fmt.Errorf("failed to scan sources: %w", err)
	}

	drift := reconcile.PlanSync(m, cfg.Project, entries)
	duplicates := reconcile.PlanClean(m)
	issues := append(drift.Issues, duplicates.Issues...)

	if jsonOutput {
		type manifestReport struct {
			Drift      []reconcile.Action `json:"drift"`
			Duplicates []reconcile.Action `json:"duplicates"`
			Issues     []reconcile.Issue  `json:"issues"`
		}
		report := manifestReport{
			Drift:      drift.Actions,
			Duplicates: duplicates.Actions,
			Issues:     issues,
		}
		filename := fmt.Sprintf("check_manifest_%d.json", time.Now().Unix())
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}
		l.Info("Detailed JSON report saved", zap.String("file", filename))
	}

	executionTime := time.Since(startTime)

	// Always display metrics
	fmt.Println("\n=== Manifest Check ===")
	fmt.Printf("Tracked Files: %d\n", drift.Summary.Tracked)
	fmt.Printf("Missing On Disk: %d\n", drift.Summary.Removals)
	fmt.Printf("Untracked On Disk: %d\n", drift.Summary.Additions)
	fmt.Printf("Orphaned Build Files: %d\n", drift.Summary.OrphanDrops)
	fmt.Printf("Duplicate Names: %d\n", duplicates.Summary.Dedupes)
	fmt.Printf("Duplicate List Entries: %d\n", duplicates.Summary.ListDedupes)
	fmt.Printf("Execution Time: %s\n", executionTime.String())

	for _, issue := range issues {
		l.Warn("Check issue", zap.String("name", issue.Name), zap.String("reason", issue.Reason))
	}

	if !drift.Changed() && !duplicates.Changed() {
		l.Info("Manifest is consistent with the filesystem.")
	} else {
		l.Warn("Drift detected. Run 'pbxsync sync' or 'pbxsync clean' to reconcile.",
			zap.Int("drift_actions", len(drift.Actions)),
			zap.Int("duplicate_actions", len(duplicates.Actions)),
		)
	}

	l.Info("Manifest check completed",
		zap.Int("tracked", drift.Summary.Tracked),
		zap.Int("missing_on_disk", drift.Summary.Removals),
		zap.Int("untracked_on_disk", drift.Summary.Additions),
		zap.Int("orphans", drift.Summary.OrphanDrops),
		zap.Int("duplicates", duplicates.Summary.Dedupes),
		zap.Duration("execution_time", executionTime),
	)

	return nil
}
