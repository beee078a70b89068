package project

import (
	"path/filepath"
	"strings"
)

// Config holds configuration for the managed Xcode project.
type Config struct {
	// Manifest is the path to the project manifest file.
	Manifest string `mapstructure:"manifest" default:"TouchGrass.xcodeproj/project.pbxproj"`
	// Root is the directory that source paths are resolved against.
	Root string `mapstructure:"root" default:"."`
	// ScanDirs are the directories searched recursively for tracked sources.
	ScanDirs []string `mapstructure:"scan_dirs" default:"Views,Managers,Models,Assets"`
	// Groups are the directories that map to a manifest group of the same name.
	Groups []string `mapstructure:"groups" default:"Views,Managers,Models"`
	// RootGroup is the name of the group that receives files outside Groups.
	RootGroup string `mapstructure:"root_group" default:"TouchGrass"`
	// Extension is the file extension of tracked sources.
	Extension string `mapstructure:"extension" default:".swift"`
	// Exclude lists file names that are never tracked.
	Exclude []string `mapstructure:"exclude" default:"GrassIconPreview.swift,generate_icon.swift"`
	// BackupSuffix is appended to the manifest path to form the backup path.
	BackupSuffix string `mapstructure:"backup_suffix" default:".backup"`
}

// BackupPath returns the path the previous manifest content is saved to.
func (c Config) BackupPath() string {
	return c.Manifest + c.BackupSuffix
}

// IsExcluded reports whether a file name is on the exclusion list.
func (c Config) IsExcluded(name string) bool {
	for _, e := range c.Exclude {
		if name == e {
			return true
		}
	}
	return false
}

// GroupFor returns the manifest group a relative source path belongs to.
// The first path segment selects the group; paths outside Groups fall back
// to RootGroup.
func (c Config) GroupFor(relPath string) string {
	first := strings.SplitN(filepath.ToSlash(relPath), "/", 2)[0]
	for _, g := range c.Groups {
		if first == g {
			return g
		}
	}
	return c.RootGroup
}
