package manifest

import (
	"fmt"
	"regexp"
	"strings"
)

// Model is the in-memory representation of a manifest document. It owns all
// parsed entities; mutations go through its accessors so the group and phase
// ordered lists stay consistent with the entry sections.
type Model struct {
	lines []*line

	refs   []*FileReference
	builds []*BuildFile
	groups []*Group
	phases []*BuildPhase

	endRefs   *line
	endBuilds *line

	roles *Roles
}

// Serialize renders the document. Untouched lines are emitted verbatim, so a
// parse/serialize cycle with no mutation is byte-identical to the input.
func (m *Model) Serialize() []byte {
	texts := make([]string, len(m.lines))
	for i, l := range m.lines {
		texts[i] = l.text
	}
	return []byte(strings.Join(texts, "\n"))
}

// FileReferences returns all file references in document order.
func (m *Model) FileReferences() []*FileReference { return m.refs }

// BuildFiles returns all build files in document order.
func (m *Model) BuildFiles() []*BuildFile { return m.builds }

// Groups returns all groups in document order.
func (m *Model) Groups() []*Group { return m.groups }

// Phases returns all build phases in document order.
func (m *Model) Phases() []*BuildPhase { return m.phases }

// RefByID returns the file reference with the given identifier, or nil.
func (m *Model) RefByID(id string) *FileReference {
	for _, r := range m.refs {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// RefByName returns the first file reference with the given display name in
// document order, or nil.
func (m *Model) RefByName(name string) *FileReference {
	for _, r := range m.refs {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// RefsByName returns every file reference with the given display name in
// document order.
func (m *Model) RefsByName(name string) []*FileReference {
	var refs []*FileReference
	for _, r := range m.refs {
		if r.Name == name {
			refs = append(refs, r)
		}
	}
	return refs
}

// BuildsForRef returns every build file referencing the given identifier.
func (m *Model) BuildsForRef(refID string) []*BuildFile {
	var builds []*BuildFile
	for _, b := range m.builds {
		if b.FileRefID == refID {
			builds = append(builds, b)
		}
	}
	return builds
}

// GroupByName returns the first group with the given display name, or nil.
func (m *Model) GroupByName(name string) *Group {
	for _, g := range m.groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// PhaseByKind returns the first build phase of the given section kind, or nil.
func (m *Model) PhaseByKind(kind string) *BuildPhase {
	for _, p := range m.phases {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}

// PhaseByName returns the first build phase with the given display name, or nil.
func (m *Model) PhaseByName(name string) *BuildPhase {
	for _, p := range m.phases {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// TrackedNames returns the unique display names carrying the given extension,
// in document order.
func (m *Model) TrackedNames(ext string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range m.refs {
		if !strings.HasSuffix(r.Name, ext) || seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		names = append(names, r.Name)
	}
	return names
}

// Identifiers returns every identifier present anywhere in the document,
// used to seed the identifier generator against collisions.
func (m *Model) Identifiers() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, r := range m.refs {
		ids[r.ID] = struct{}{}
	}
	for _, b := range m.builds {
		ids[b.ID] = struct{}{}
	}
	for _, g := range m.groups {
		ids[g.ID] = struct{}{}
		for _, c := range g.Children {
			ids[c.ID] = struct{}{}
		}
	}
	for _, p := range m.phases {
		ids[p.ID] = struct{}{}
		for _, f := range p.Files {
			ids[f.ID] = struct{}{}
		}
	}
	return ids
}

// Orphans returns build files whose referenced file no longer exists.
func (m *Model) Orphans() []*BuildFile {
	var orphans []*BuildFile
	for _, b := range m.builds {
		if m.RefByID(b.FileRefID) == nil {
			orphans = append(orphans, b)
		}
	}
	return orphans
}

// HasChild reports whether the group's children list holds the identifier.
func (g *Group) HasChild(id string) bool {
	for _, c := range g.Children {
		if c.ID == id {
			return true
		}
	}
	return false
}

// HasFile reports whether the phase's files list holds the identifier.
func (p *BuildPhase) HasFile(id string) bool {
	for _, f := range p.Files {
		if f.ID == id {
			return true
		}
	}
	return false
}

// BindRoles resolves the root group, the category groups, and the Sources
// phase against the document. The named groups and the Sources phase must
// exist and carry an ordered list, otherwise ErrMalformed is returned. The
// Resources phase is bound when present. The result is memoized on the model.
func (m *Model) BindRoles(rootGroup string, categories []string) (*Roles, error) {
	roles := &Roles{Categories: make(map[string]*Group, len(categories))}

	var err error
	if roles.Root, err = m.bindGroup(rootGroup); err != nil {
		return nil, err
	}
	for _, name := range categories {
		if roles.Categories[name], err = m.bindGroup(name); err != nil {
			return nil, err
		}
	}

	roles.Sources = m.PhaseByKind(KindSources)
	if roles.Sources == nil || roles.Sources.closer == nil {
		return nil, fmt.Errorf("%w: no usable Sources build phase", ErrMalformed)
	}
	roles.Resources = m.PhaseByKind(KindResources)

	m.roles = roles
	return roles, nil
}

// Roles returns the role bindings established by BindRoles, or nil.
func (m *Model) Roles() *Roles { return m.roles }

func (m *Model) bindGroup(name string) (*Group, error) {
	g := m.GroupByName(name)
	if g == nil {
		return nil, fmt.Errorf("%w: group %q not found", ErrMalformed, name)
	}
	if g.closer == nil {
		return nil, fmt.Errorf("%w: group %q has no children list", ErrMalformed, name)
	}
	return g, nil
}

// AddFileReference creates a file reference entry at the end of the file
// reference section and returns it.
func (m *Model) AddFileReference(id, name, path, fileType string) *FileReference {
	text := fmt.Sprintf("\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = %s; path = \"%s\"; sourceTree = \"<group>\"; };", id, name, fileType, path)
	ref := &FileReference{ID: id, Name: name, Path: path, FileType: fileType, line: m.insertBefore(m.endRefs, text)}
	m.refs = append(m.refs, ref)
	return ref
}

// AddBuildFile creates a build file entry referencing ref at the end of the
// build file section and returns it.
func (m *Model) AddBuildFile(id string, ref *FileReference, phase string) *BuildFile {
	text := fmt.Sprintf("\t\t%s /* %s in %s */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };", id, ref.Name, phase, ref.ID, ref.Name)
	b := &BuildFile{ID: id, Name: ref.Name, FileRefID: ref.ID, Phase: phase, line: m.insertBefore(m.endBuilds, text)}
	m.builds = append(m.builds, b)
	return b
}

// RepointBuildFile rewrites a build file entry to reference another file,
// keeping its identifier and document position.
func (m *Model) RepointBuildFile(b *BuildFile, ref *FileReference) {
	b.FileRefID = ref.ID
	b.Name = ref.Name
	b.line.text = fmt.Sprintf("\t\t%s /* %s in %s */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };", b.ID, b.Name, b.Phase, ref.ID, ref.Name)
}

// RemoveFileReference deletes the entry and every occurrence of its
// identifier in group children lists.
func (m *Model) RemoveFileReference(ref *FileReference) {
	m.removeLine(ref.line)
	for i, r := range m.refs {
		if r == ref {
			m.refs = append(m.refs[:i], m.refs[i+1:]...)
			break
		}
	}
	for _, g := range m.groups {
		m.removeGroupID(g, ref.ID)
	}
}

// RemoveBuildFile deletes the entry and every occurrence of its identifier
// in phase files lists.
func (m *Model) RemoveBuildFile(b *BuildFile) {
	m.removeLine(b.line)
	for i, x := range m.builds {
		if x == b {
			m.builds = append(m.builds[:i], m.builds[i+1:]...)
			break
		}
	}
	for _, p := range m.phases {
		m.removePhaseID(p, b.ID)
	}
}

// AddGroupChild appends an identifier to the group's children list.
func (m *Model) AddGroupChild(g *Group, id, comment string) error {
	if g.closer == nil {
		return fmt.Errorf("%w: group %q has no children list", ErrMalformed, g.Name)
	}
	l := m.insertBefore(g.closer, fmt.Sprintf("\t\t\t\t%s /* %s */,", id, comment))
	g.Children = append(g.Children, ChildRef{ID: id, Comment: comment, line: l})
	return nil
}

// AddPhaseFile appends an identifier to the phase's files list.
func (m *Model) AddPhaseFile(p *BuildPhase, id, comment string) error {
	if p.closer == nil {
		return fmt.Errorf("%w: phase %q has no files list", ErrMalformed, p.Name)
	}
	l := m.insertBefore(p.closer, fmt.Sprintf("\t\t\t\t%s /* %s */,", id, comment))
	p.Files = append(p.Files, ChildRef{ID: id, Comment: comment, line: l})
	return nil
}

// RemoveGroupChildAt deletes the i-th child entry of the group.
func (m *Model) RemoveGroupChildAt(g *Group, i int) {
	m.removeLine(g.Children[i].line)
	g.Children = append(g.Children[:i], g.Children[i+1:]...)
}

// RemovePhaseFileAt deletes the i-th files entry of the phase.
func (m *Model) RemovePhaseFileAt(p *BuildPhase, i int) {
	m.removeLine(p.Files[i].line)
	p.Files = append(p.Files[:i], p.Files[i+1:]...)
}

// ReplaceGroupChildAt rewrites the i-th child entry of the group in place,
// keeping its position.
func (m *Model) ReplaceGroupChildAt(g *Group, i int, id, comment string) {
	c := &g.Children[i]
	c.ID = id
	c.Comment = comment
	c.line.text = fmt.Sprintf("\t\t\t\t%s /* %s */,", id, comment)
}

// ReplacePhaseFileAt rewrites the i-th files entry of the phase in place,
// keeping its position.
func (m *Model) ReplacePhaseFileAt(p *BuildPhase, i int, id, comment string) {
	f := &p.Files[i]
	f.ID = id
	f.Comment = comment
	f.line.text = fmt.Sprintf("\t\t\t\t%s /* %s */,", id, comment)
}

// RemoveBuildSetting deletes every "KEY = value;" line from the document and
// returns how many lines were removed. Build settings live outside the
// modeled sections; centralizing the edit here keeps callers away from the
// raw text.
func (m *Model) RemoveBuildSetting(key string) int {
	re := regexp.MustCompile(`^\s*` + regexp.QuoteMeta(key) + ` = .*;$`)
	removed := 0
	kept := m.lines[:0]
	for _, l := range m.lines {
		if re.MatchString(l.text) {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	m.lines = kept
	return removed
}

func (m *Model) removeGroupID(g *Group, id string) {
	kept := g.Children[:0]
	for _, c := range g.Children {
		if c.ID == id {
			m.removeLine(c.line)
			continue
		}
		kept = append(kept, c)
	}
	g.Children = kept
}

func (m *Model) removePhaseID(p *BuildPhase, id string) {
	kept := p.Files[:0]
	for _, f := range p.Files {
		if f.ID == id {
			m.removeLine(f.line)
			continue
		}
		kept = append(kept, f)
	}
	p.Files = kept
}

func (m *Model) insertBefore(anchor *line, text string) *line {
	l := &line{text: text}
	for i, cur := range m.lines {
		if cur == anchor {
			m.lines = append(m.lines, nil)
			copy(m.lines[i+1:], m.lines[i:])
			m.lines[i] = l
			return l
		}
	}
	m.lines = append(m.lines, l)
	return l
}

func (m *Model) removeLine(target *line) {
	for i, cur := range m.lines {
		if cur == target {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			return
		}
	}
}
