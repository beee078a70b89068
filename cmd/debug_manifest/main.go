package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"pbxsync/core/config"
	"pbxsync/core/manifest"
	"pbxsync/core/reconcile"
	"pbxsync/core/scan"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	path := cfg.Project.Manifest
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Project.Root, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	m, err := manifest.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	// Test 1: What did the parser see?
	fmt.Println("=== TEST 1: Parsed Sections ===")
	fmt.Printf("File references: %d\n", len(m.FileReferences()))
	fmt.Printf("Build files: %d\n", len(m.BuildFiles()))
	fmt.Printf("Groups: %d\n", len(m.Groups()))
	fmt.Printf("Phases: %d\n", len(m.Phases()))
	for _, p := range m.Phases() {
		fmt.Printf("  phase %s (%s): %d files\n", p.Name, p.Kind, len(p.Files))
	}

	// Test 2: Do the configured roles resolve?
	fmt.Println("\n=== TEST 2: Role Binding ===")
	roles, err := m.BindRoles(cfg.Project.RootGroup, cfg.Project.Groups)
	if err != nil {
		fmt.Printf("Role binding FAILED: %v\n", err)
	} else {
		fmt.Printf("Root group %q: %d children\n", cfg.Project.RootGroup, len(roles.Root.Children))
		for name, g := range roles.Categories {
			fmt.Printf("  group %s: %d children\n", name, len(g.Children))
		}
		if roles.Resources == nil {
			fmt.Println("  no Resources phase")
		}
	}

	// Test 3: Orphans and duplicates
	fmt.Println("\n=== TEST 3: Orphans and Duplicates ===")
	orphans := m.Orphans()
	fmt.Printf("Orphaned build files: %d\n", len(orphans))
	for _, b := range orphans {
		fmt.Printf("  %s /* %s */ -> missing %s\n", b.ID, b.Name, b.FileRefID)
	}
	dupes := reconcile.PlanClean(m)
	fmt.Printf("Duplicate actions planned: %d\n", len(dupes.Actions))
	for _, a := range dupes.Actions {
		fmt.Printf("  %s %s (%s)\n", a.Type, a.Name, a.Reason)
	}

	// Test 4: Round trip
	fmt.Println("\n=== TEST 4: Round Trip ===")
	out := m.Serialize()
	if string(out) == string(data) {
		fmt.Println("Serialize() reproduces the input byte for byte")
	} else {
		fmt.Printf("Round trip DIFFERS: %d bytes in, %d bytes out\n", len(data), len(out))
	}

	// Test 5: Drift against the filesystem
	fmt.Println("\n=== TEST 5: Filesystem Drift ===")
	s := &scan.Scanner{
		Root:    cfg.Project.Root,
		Dirs:    cfg.Project.ScanDirs,
		Ext:     cfg.Project.Extension,
		Exclude: cfg.Project.Exclude,
	}
	entries, err := s.Scan()
	if err != nil {
		log.Fatal(err)
	}
	drift := reconcile.PlanSync(m, cfg.Project, entries)
	fmt.Printf("Scanned files: %d\n", len(entries))
	fmt.Printf("Drift actions: %d (add %d, remove %d, orphan %d)\n",
		len(drift.Actions), drift.Summary.Additions, drift.Summary.Removals, drift.Summary.OrphanDrops)

	// Save detailed output
	output := map[string]interface{}{
		"file_references": len(m.FileReferences()),
		"build_files":     len(m.BuildFiles()),
		"groups":          len(m.Groups()),
		"phases":          len(m.Phases()),
		"orphans":         len(orphans),
		"duplicate_count": len(dupes.Actions),
		"scanned_files":   len(entries),
		"drift_actions":   drift.Actions,
	}
	out2, _ := json.MarshalIndent(output, "", "  ")
	os.WriteFile("debug_manifest.json", out2, 0644)

	fmt.Println("\nDebug complete. Check debug_manifest.json for details.")
}
