package reconcile

import (
	"fmt"

	"pbxsync/core/ident"
	"pbxsync/core/manifest"
	"pbxsync/core/project"
)

// Apply executes the actions in a plan against the model, resolving each
// action by name at execution time. Nothing runs unless the options carry
// Confirmed with DryRun off. Returns the number of actions that mutated
// the model; actions already satisfied are skipped, so re-applying a plan
// is harmless.
func Apply(m *manifest.Model, gen *ident.Generator, cfg project.Config, plan *Plan, opts Options) (int, error) {
	if opts.DryRun || !opts.Confirmed {
		return 0, nil
	}

	roles := m.Roles()
	if roles == nil {
		var err error
		if roles, err = m.BindRoles(cfg.RootGroup, cfg.Groups); err != nil {
			return 0, err
		}
	}

	executed := 0
	for _, a := range plan.Actions {
		var (
			done bool
			err  error
		)
		switch a.Type {
		case ActionAdd:
			done, err = applyAdd(m, gen, cfg, roles, a)
		case ActionRemove:
			done = applyRemove(m, a.Name)
		case ActionDedupe:
			done = applyDedupe(m, a.Name)
		case ActionDropOrphan:
			done = applyDropOrphan(m, a.Name)
		case ActionDedupeListEntry:
			done = applyListDedupe(m, a.Name)
		default:
			err = fmt.Errorf("unknown action type %q", a.Type)
		}
		if err != nil {
			return executed, err
		}
		if done {
			executed++
		}
	}
	return executed, nil
}

func applyAdd(m *manifest.Model, gen *ident.Generator, cfg project.Config, roles *manifest.Roles, a Action) (bool, error) {
	if m.RefByName(a.Name) != nil {
		return false, nil
	}

	ref := m.AddFileReference(gen.Next(), a.Name, a.Path, fileTypeFor(cfg.Extension))
	build := m.AddBuildFile(gen.Next(), ref, manifest.PhaseSources)

	group := roles.Root
	if g, ok := roles.Categories[cfg.GroupFor(a.Path)]; ok {
		group = g
	}
	if err := m.AddGroupChild(group, ref.ID, ref.Name); err != nil {
		return false, err
	}
	if err := m.AddPhaseFile(roles.Sources, build.ID, fmt.Sprintf("%s in %s", build.Name, build.Phase)); err != nil {
		return false, err
	}
	return true, nil
}

func applyRemove(m *manifest.Model, name string) bool {
	done := false
	for _, ref := range m.RefsByName(name) {
		m.RemoveFileReference(ref)
		done = true
	}
	for _, b := range buildsNamed(m, name) {
		m.RemoveBuildFile(b)
		done = true
	}
	return done
}

// applyDedupe collapses duplicate entries for one display name. The entry
// first encountered in document order is kept; build files pointing at a
// removed duplicate reference are re-pointed at the kept one, and ordered
// list entries are re-pointed where the kept identifier is absent and
// dropped where it is already listed.
func applyDedupe(m *manifest.Model, name string) bool {
	done := false

	if refs := m.RefsByName(name); len(refs) > 1 {
		keep := refs[0]
		for _, dup := range refs[1:] {
			for _, b := range m.BuildsForRef(dup.ID) {
				m.RepointBuildFile(b, keep)
			}
			mergeGroupEntries(m, dup.ID, keep.ID, keep.Name)
			m.RemoveFileReference(dup)
		}
		done = true
	}

	if builds := buildsNamed(m, name); len(builds) > 1 {
		keep := builds[0]
		for _, dup := range builds[1:] {
			mergePhaseEntries(m, dup.ID, keep.ID, fmt.Sprintf("%s in %s", keep.Name, keep.Phase))
			m.RemoveBuildFile(dup)
		}
		done = true
	}

	return done
}

func applyDropOrphan(m *manifest.Model, name string) bool {
	done := false
	for _, b := range m.Orphans() {
		if b.Name != name {
			continue
		}
		m.RemoveBuildFile(b)
		done = true
	}
	return done
}

func applyListDedupe(m *manifest.Model, name string) bool {
	done := false
	for _, g := range m.Groups() {
		if listOwnerName(g.Name, g.ID) != name {
			continue
		}
		seen := make(map[string]bool)
		for i := 0; i < len(g.Children); {
			if seen[g.Children[i].ID] {
				m.RemoveGroupChildAt(g, i)
				done = true
				continue
			}
			seen[g.Children[i].ID] = true
			i++
		}
	}
	for _, p := range m.Phases() {
		if listOwnerName(p.Name, p.ID) != name {
			continue
		}
		seen := make(map[string]bool)
		for i := 0; i < len(p.Files); {
			if seen[p.Files[i].ID] {
				m.RemovePhaseFileAt(p, i)
				done = true
				continue
			}
			seen[p.Files[i].ID] = true
			i++
		}
	}
	return done
}

// mergeGroupEntries rewrites children entries for dupID. The kept
// identifier may appear in at most one group, so the first dup entry is
// re-pointed only when no group lists keepID yet; every other occurrence
// is dropped.
func mergeGroupEntries(m *manifest.Model, dupID, keepID, comment string) {
	listed := false
	for _, g := range m.Groups() {
		if g.HasChild(keepID) {
			listed = true
			break
		}
	}
	for _, g := range m.Groups() {
		for i := 0; i < len(g.Children); {
			if g.Children[i].ID != dupID {
				i++
				continue
			}
			if listed {
				m.RemoveGroupChildAt(g, i)
				continue
			}
			m.ReplaceGroupChildAt(g, i, keepID, comment)
			listed = true
			i++
		}
	}
}

func mergePhaseEntries(m *manifest.Model, dupID, keepID, comment string) {
	listed := false
	for _, p := range m.Phases() {
		if p.HasFile(keepID) {
			listed = true
			break
		}
	}
	for _, p := range m.Phases() {
		for i := 0; i < len(p.Files); {
			if p.Files[i].ID != dupID {
				i++
				continue
			}
			if listed {
				m.RemovePhaseFileAt(p, i)
				continue
			}
			m.ReplacePhaseFileAt(p, i, keepID, comment)
			listed = true
			i++
		}
	}
}

func fileTypeFor(ext string) string {
	if ext == ".swift" {
		return manifest.FileTypeSwift
	}
	return "text"
}
