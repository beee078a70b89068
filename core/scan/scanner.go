package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one tracked file found on disk.
type Entry struct {
	// Name is the display name (the base file name).
	Name string
	// Path is the path relative to the scan root, with forward slashes.
	Path string
}

// Scanner finds the tracked source files of a project.
type Scanner struct {
	// Root is the directory scanned.
	Root string
	// Dirs are the subdirectories of Root searched recursively, in order.
	Dirs []string
	// Ext is the tracked file extension, including the leading dot.
	Ext string
	// Exclude lists file names that are never reported.
	Exclude []string
}

// Scan walks the configured directories and returns the tracked files:
// matches inside each of Dirs first (recursively, lexical order), then
// matches directly at Root, sorted by name. Symbolic links are not followed.
// The result is a pure function of the filesystem at call time.
func (s *Scanner) Scan() ([]Entry, error) {
	var entries []Entry

	for _, dir := range s.Dirs {
		base := filepath.Join(s.Root, dir)
		if _, err := os.Stat(base); os.IsNotExist(err) {
			continue
		}
		err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), s.Ext) || s.isExcluded(d.Name()) {
				return nil
			}
			rel, err := filepath.Rel(s.Root, path)
			if err != nil {
				return err
			}
			entries = append(entries, Entry{Name: d.Name(), Path: filepath.ToSlash(rel)})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
	}

	rootFiles, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("scanning project root: %w", err)
	}
	for _, e := range rootFiles {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), s.Ext) || s.isExcluded(e.Name()) {
			continue
		}
		entries = append(entries, Entry{Name: e.Name(), Path: e.Name()})
	}

	return entries, nil
}

func (s *Scanner) isExcluded(name string) bool {
	for _, e := range s.Exclude {
		if name == e {
			return true
		}
	}
	return false
}
