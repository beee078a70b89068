// Package project holds the configuration of the managed Xcode project.
//
// It defines where the project manifest lives, which directories are scanned
// for source files, how scanned paths map to manifest groups, and which file
// names are excluded from tracking.
//
// # Configuration
//
// The Config struct defines the manifest path, the scan roots, the group
// mapping, the tracked extension, and the backup suffix.
//
// # Usage
//
// This package is primarily used by the core/config package to embed project
// settings and by the scanner and reconciler to resolve paths and groups.
package project
