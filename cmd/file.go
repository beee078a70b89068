package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"pbxsync/core/config"
	"pbxsync/core/logger"
	"pbxsync/core/manifest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fileDetailCmd represents the top-level file command
var fileDetailCmd = &cobra.Command{
	Use:   "file [name]",
	Short: "View details and validity of a tracked file",
	Long:  `Checks the presence and consistency of one file across the manifest sections and the filesystem.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runFileDetailCheck(args[0])
	},
}

func init() {
	RootCmd.AddCommand(fileDetailCmd)
}

func runFileDetailCheck(identifier string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	m, _, err := loadModel(cfg.Project)
	if err != nil {
		logg.Fatal("Failed to load manifest", zap.Error(err))
	}

	name := path.Base(filepath.ToSlash(identifier))
	logg.Info("Checking tracked file...", zap.String("name", name))

	refs := m.RefsByName(name)
	var builds []*manifest.BuildFile
	for _, b := range m.BuildFiles() {
		if b.Name == name {
			builds = append(builds, b)
		}
	}

	var groups, phases []string
	for _, ref := range refs {
		for _, g := range m.Groups() {
			if g.HasChild(ref.ID) {
				groups = append(groups, g.Name)
			}
		}
	}
	for _, b := range builds {
		for _, p := range m.Phases() {
			if p.HasFile(b.ID) {
				phases = append(phases, p.Name)
			}
		}
	}

	refPath, fileType := "-", "-"
	onDisk := false
	if len(refs) > 0 {
		refPath = refs[0].Path
		fileType = refs[0].FileType
		if _, err := os.Stat(filepath.Join(cfg.Project.Root, filepath.FromSlash(refPath))); err == nil {
			onDisk = true
		}
	}

	var problems []string
	if len(refs) > 1 {
		problems = append(problems, fmt.Sprintf("%d file references share this name", len(refs)))
	}
	if len(refs) > 0 && len(builds) == 0 {
		problems = append(problems, "tracked but absent from every build phase")
	}
	for _, b := range builds {
		if m.RefByID(b.FileRefID) == nil {
			problems = append(problems, fmt.Sprintf("build file %s references missing %s", b.ID, b.FileRefID))
		}
	}
	if len(refs) > 0 && len(groups) == 0 {
		problems = append(problems, "not listed in any group")
	}
	if len(refs) > 0 && !onDisk {
		problems = append(problems, "file missing on disk")
	}
	if cfg.Project.IsExcluded(name) {
		problems = append(problems, "name is on the exclusion list")
	}

	status := "OK"
	if len(refs) == 0 && len(builds) == 0 {
		status = "UNTRACKED"
	} else if len(problems) > 0 {
		status = "WARNING"
	}

	// Pretty Console Output
	fmt.Println("\n--- Tracked File Detail ---")
	fmt.Printf("Query:          %s\n", name)
	fmt.Printf("Path:           %s\n", refPath)
	fmt.Printf("File Type:      %s\n", fileType)
	fmt.Println("---------------------------")
	fmt.Printf("References:     %d\n", len(refs))
	fmt.Printf("Build Files:    %d\n", len(builds))
	fmt.Printf("Groups:         %v\n", groups)
	fmt.Printf("Phases:         %v\n", phases)
	fmt.Printf("On Disk:        %v\n", onDisk)

	statusColor := "\033[32m" // Green
	if status == "UNTRACKED" {
		statusColor = "\033[31m" // Red
	} else if status == "WARNING" {
		statusColor = "\033[33m" // Yellow
	}
	resetColor := "\033[0m"

	fmt.Printf("Status:         %s%s%s\n", statusColor, status, resetColor)

	if len(problems) > 0 {
		fmt.Println("\nProblems:")
		for _, p := range problems {
			fmt.Printf("- %s\n", p)
		}
	}
	fmt.Println("---------------------------")
}
