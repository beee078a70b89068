package reconcile

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"pbxsync/core/manifest"
	"pbxsync/core/project"
	"pbxsync/core/scan"
)

// PlanAdd plans the registration of explicitly requested source paths.
// Paths already tracked, excluded, or of the wrong kind become issues and
// are skipped; the rest become add actions.
func PlanAdd(m *manifest.Model, cfg project.Config, paths []string) *Plan {
	p := newPlan(m)

	planned := make(map[string]bool)
	for _, raw := range paths {
		rel := filepath.ToSlash(filepath.Clean(raw))
		name := path.Base(rel)
		switch {
		case !strings.HasSuffix(name, cfg.Extension):
			p.issue(rel, "does not match tracked extension "+cfg.Extension)
		case cfg.IsExcluded(name):
			p.issue(name, "on the exclusion list")
		case m.RefByName(name) != nil || planned[name]:
			p.issue(name, "already tracked")
		default:
			planned[name] = true
			p.add(Action{Type: ActionAdd, Name: name, Path: rel, Reason: "requested"})
		}
	}
	return p
}

// PlanRemove plans the removal of the named files. Names with no file
// reference and no build file become issues.
func PlanRemove(m *manifest.Model, names []string) *Plan {
	p := newPlan(m)

	planned := make(map[string]bool)
	for _, name := range names {
		if planned[name] {
			continue
		}
		planned[name] = true
		if m.RefByName(name) == nil && len(buildsNamed(m, name)) == 0 {
			p.issue(name, "not tracked")
			continue
		}
		p.add(Action{Type: ActionRemove, Name: name, Reason: "requested"})
	}
	return p
}

// PlanSync diffs the model against a filesystem scan. Stale orphan build
// files are dropped first, then tracked names missing on disk are removed,
// then untracked files on disk are added. Names on the exclusion list are
// never removed, matching their exemption from the scan.
func PlanSync(m *manifest.Model, cfg project.Config, entries []scan.Entry) *Plan {
	p := newPlan(m)
	planOrphanDrops(m, p)

	scanned := make(map[string]bool, len(entries))
	for _, e := range entries {
		scanned[e.Name] = true
	}
	tracked := make(map[string]bool)
	for _, name := range m.TrackedNames(cfg.Extension) {
		tracked[name] = true
		if !scanned[name] && !cfg.IsExcluded(name) {
			p.add(Action{Type: ActionRemove, Name: name, Reason: "missing on disk"})
		}
	}

	planned := make(map[string]bool)
	for _, e := range entries {
		if tracked[e.Name] || cfg.IsExcluded(e.Name) {
			continue
		}
		if planned[e.Name] {
			p.issue(e.Name, "duplicate name on disk at "+e.Path)
			continue
		}
		planned[e.Name] = true
		p.add(Action{Type: ActionAdd, Name: e.Name, Path: e.Path, Reason: "untracked on disk"})
	}
	return p
}

// PlanClean plans the removal of duplicate entries: per-name duplicates of
// file references and build files, stale orphan build files, and repeated
// identifiers inside a single ordered list. The entry first encountered in
// document order is always the one retained.
func PlanClean(m *manifest.Model) *Plan {
	p := newPlan(m)

	refCounts := make(map[string]int)
	buildCounts := make(map[string]int)
	var order []string
	for _, r := range m.FileReferences() {
		if refCounts[r.Name] == 0 && buildCounts[r.Name] == 0 {
			order = append(order, r.Name)
		}
		refCounts[r.Name]++
	}
	for _, b := range m.BuildFiles() {
		if refCounts[b.Name] == 0 && buildCounts[b.Name] == 0 {
			order = append(order, b.Name)
		}
		buildCounts[b.Name]++
	}

	for _, name := range order {
		var parts []string
		if n := refCounts[name]; n > 1 {
			parts = append(parts, fmt.Sprintf("%d file references", n))
		}
		if n := buildCounts[name]; n > 1 {
			parts = append(parts, fmt.Sprintf("%d build files", n))
		}
		if len(parts) > 0 {
			p.add(Action{Type: ActionDedupe, Name: name, Reason: strings.Join(parts, ", ")})
		}
	}

	planOrphanDrops(m, p)

	for _, g := range m.Groups() {
		if n := duplicateListEntries(g.Children); n > 0 {
			p.add(Action{
				Type:   ActionDedupeListEntry,
				Name:   listOwnerName(g.Name, g.ID),
				Reason: fmt.Sprintf("%d repeated group entries", n),
			})
		}
	}
	for _, ph := range m.Phases() {
		if n := duplicateListEntries(ph.Files); n > 0 {
			p.add(Action{
				Type:   ActionDedupeListEntry,
				Name:   listOwnerName(ph.Name, ph.ID),
				Reason: fmt.Sprintf("%d repeated phase entries", n),
			})
		}
	}
	return p
}

// PlanRebuild plans the destructive recovery path: every tracked entry is
// discarded and the scan result is re-added from scratch with fresh
// identifiers, sorted by name.
func PlanRebuild(m *manifest.Model, cfg project.Config, entries []scan.Entry) *Plan {
	p := newPlan(m)

	removed := make(map[string]bool)
	for _, name := range m.TrackedNames(cfg.Extension) {
		removed[name] = true
		p.add(Action{Type: ActionRemove, Name: name, Reason: "rebuilding tracked entries"})
	}
	for _, b := range m.Orphans() {
		if removed[b.Name] || !strings.HasSuffix(b.Name, cfg.Extension) {
			continue
		}
		removed[b.Name] = true
		p.add(Action{Type: ActionDropOrphan, Name: b.Name, Reason: "file reference " + b.FileRefID + " not found"})
	}

	sorted := make([]scan.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].Path < sorted[j].Path
	})

	planned := make(map[string]bool)
	for _, e := range sorted {
		if cfg.IsExcluded(e.Name) {
			continue
		}
		if planned[e.Name] {
			p.issue(e.Name, "duplicate name on disk at "+e.Path)
			continue
		}
		planned[e.Name] = true
		p.add(Action{Type: ActionAdd, Name: e.Name, Path: e.Path, Reason: "rebuild"})
	}
	return p
}

func newPlan(m *manifest.Model) *Plan {
	return &Plan{Summary: PlanSummary{Tracked: len(m.FileReferences())}}
}

func planOrphanDrops(m *manifest.Model, p *Plan) {
	seen := make(map[string]bool)
	for _, b := range m.Orphans() {
		if seen[b.Name] {
			continue
		}
		seen[b.Name] = true
		p.add(Action{Type: ActionDropOrphan, Name: b.Name, Reason: "file reference " + b.FileRefID + " not found"})
	}
}

func buildsNamed(m *manifest.Model, name string) []*manifest.BuildFile {
	var builds []*manifest.BuildFile
	for _, b := range m.BuildFiles() {
		if b.Name == name {
			builds = append(builds, b)
		}
	}
	return builds
}

func duplicateListEntries(entries []manifest.ChildRef) int {
	seen := make(map[string]bool)
	dups := 0
	for _, e := range entries {
		if seen[e.ID] {
			dups++
			continue
		}
		seen[e.ID] = true
	}
	return dups
}

func listOwnerName(name, id string) string {
	if name == "" {
		return id
	}
	return name
}
