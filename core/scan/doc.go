// Package scan walks the project's source directories and reports the
// canonical set of tracked files.
//
// The scanner searches a fixed ordered list of directories recursively plus
// the project root non-recursively, filters by file extension and an
// exclusion list, and returns deterministic (name, relative path) pairs.
// It never caches: every call reflects the filesystem at that moment.
package scan
