package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"pbxsync/core/scan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("// swift\n"), 0o644))
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, "Views", "ContentView.swift")
	writeFile(t, root, "Views", "Settings", "SettingsView.swift")
	writeFile(t, root, "Managers", "ReminderManager.swift")
	writeFile(t, root, "Models", "Exercise.swift")
	writeFile(t, root, "TouchGrassApp.swift")
	writeFile(t, root, "README.md")
	writeFile(t, root, "Scripts", "Helper.swift") // not a configured directory
	writeFile(t, root, "Views", "GrassIconPreview.swift")

	s := &scan.Scanner{
		Root:    root,
		Dirs:    []string{"Views", "Managers", "Models"},
		Ext:     ".swift",
		Exclude: []string{"GrassIconPreview.swift"},
	}

	entries, err := s.Scan()
	require.NoError(t, err)

	assert.Equal(t, []scan.Entry{
		{Name: "ContentView.swift", Path: "Views/ContentView.swift"},
		{Name: "SettingsView.swift", Path: "Views/Settings/SettingsView.swift"},
		{Name: "ReminderManager.swift", Path: "Managers/ReminderManager.swift"},
		{Name: "Exercise.swift", Path: "Models/Exercise.swift"},
		{Name: "TouchGrassApp.swift", Path: "TouchGrassApp.swift"},
	}, entries)
}

func TestScanner_Deterministic(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, "Views", "B.swift")
	writeFile(t, root, "Views", "A.swift")
	writeFile(t, root, "Z.swift")
	writeFile(t, root, "A.swift")

	s := &scan.Scanner{Root: root, Dirs: []string{"Views"}, Ext: ".swift"}

	first, err := s.Scan()
	require.NoError(t, err)
	second, err := s.Scan()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []scan.Entry{
		{Name: "A.swift", Path: "Views/A.swift"},
		{Name: "B.swift", Path: "Views/B.swift"},
		{Name: "A.swift", Path: "A.swift"},
		{Name: "Z.swift", Path: "Z.swift"},
	}, first)
}

func TestScanner_MissingDirSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "App.swift")

	s := &scan.Scanner{Root: root, Dirs: []string{"Views", "Managers"}, Ext: ".swift"}

	entries, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, []scan.Entry{{Name: "App.swift", Path: "App.swift"}}, entries)
}

func TestScanner_SymlinksNotFollowed(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()

	writeFile(t, outside, "Linked.swift")
	writeFile(t, root, "Views", "Real.swift")
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "Views", "LinkedDir")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "Linked.swift"), filepath.Join(root, "Views", "Alias.swift")))

	s := &scan.Scanner{Root: root, Dirs: []string{"Views"}, Ext: ".swift"}

	entries, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, []scan.Entry{{Name: "Real.swift", Path: "Views/Real.swift"}}, entries)
}
