package manifest

import (
	"fmt"
	"regexp"
	"strings"
)

// Section sentinel lines. They are matched and preserved verbatim.
const (
	beginFileRefs   = "/* Begin PBXFileReference section */"
	endFileRefs     = "/* End PBXFileReference section */"
	beginBuildFiles = "/* Begin PBXBuildFile section */"
	endBuildFiles   = "/* End PBXBuildFile section */"
	beginGroups     = "/* Begin PBXGroup section */"
	endGroups       = "/* End PBXGroup section */"
	beginSources    = "/* Begin PBXSourcesBuildPhase section */"
	endSources      = "/* End PBXSourcesBuildPhase section */"
	beginResources  = "/* Begin PBXResourcesBuildPhase section */"
	endResources    = "/* End PBXResourcesBuildPhase section */"
	beginFrameworks = "/* Begin PBXFrameworksBuildPhase section */"
	endFrameworks   = "/* End PBXFrameworksBuildPhase section */"
)

// Phase section kinds keyed by their begin sentinel.
const (
	KindSources    = "PBXSourcesBuildPhase"
	KindResources  = "PBXResourcesBuildPhase"
	KindFrameworks = "PBXFrameworksBuildPhase"
)

var (
	fileRefRe    = regexp.MustCompile(`^\t\t([0-9A-F]{24}) /\* (.+) \*/ = \{isa = PBXFileReference; (.+) \};$`)
	buildFileRe  = regexp.MustCompile(`^\t\t([0-9A-F]{24}) /\* (.+) in (Sources|Resources|Frameworks) \*/ = \{isa = PBXBuildFile; fileRef = ([0-9A-F]{24})(?: /\* .+ \*/)?; \};$`)
	blockStartRe = regexp.MustCompile(`^\t\t([0-9A-F]{24})(?: /\* (.+) \*/)? = \{$`)
	blockEndRe   = regexp.MustCompile(`^\t\t\};$`)
	childrenRe   = regexp.MustCompile(`^\t+children = \($`)
	filesRe      = regexp.MustCompile(`^\t+files = \($`)
	listEndRe    = regexp.MustCompile(`^\t+\);$`)
	listEntryRe  = regexp.MustCompile(`^\t+([0-9A-F]{24})(?: /\* (.+) \*/)?,$`)
	pathAttrRe   = regexp.MustCompile(`path = (?:"([^"]*)"|([^;"]+));`)
	typeAttrRe   = regexp.MustCompile(`(?:lastKnownFileType|explicitFileType) = ([^;]+);`)
)

// Parse builds a Model from manifest text. Every input line is retained, so
// serializing an unmodified Model reproduces the input byte for byte. The
// four required section kinds (file references, build files, groups, the
// Sources phase) must be present, otherwise ErrMalformed is returned.
func Parse(data []byte) (*Model, error) {
	texts := strings.Split(string(data), "\n")
	m := &Model{lines: make([]*line, len(texts))}
	for i, t := range texts {
		m.lines[i] = &line{text: t}
	}

	seen := make(map[string]bool)
	i := 0
	for i < len(m.lines) {
		var err error
		switch m.lines[i].text {
		case beginFileRefs:
			seen[beginFileRefs] = true
			i, err = m.parseFileRefs(i + 1)
		case beginBuildFiles:
			seen[beginBuildFiles] = true
			i, err = m.parseBuildFiles(i + 1)
		case beginGroups:
			seen[beginGroups] = true
			i, err = m.parseGroups(i + 1)
		case beginSources:
			seen[beginSources] = true
			i, err = m.parsePhases(i+1, endSources, KindSources)
		case beginResources:
			i, err = m.parsePhases(i+1, endResources, KindResources)
		case beginFrameworks:
			i, err = m.parsePhases(i+1, endFrameworks, KindFrameworks)
		default:
			i++
		}
		if err != nil {
			return nil, err
		}
	}

	for _, sentinel := range []string{beginFileRefs, beginBuildFiles, beginGroups, beginSources} {
		if !seen[sentinel] {
			return nil, fmt.Errorf("%w: missing %q", ErrMalformed, sentinel)
		}
	}

	return m, nil
}

func (m *Model) parseFileRefs(start int) (int, error) {
	for i := start; i < len(m.lines); i++ {
		l := m.lines[i]
		if l.text == endFileRefs {
			m.endRefs = l
			return i + 1, nil
		}
		entry := fileRefRe.FindStringSubmatch(l.text)
		if entry == nil {
			continue
		}
		ref := &FileReference{ID: entry[1], Name: entry[2], line: l}
		if p := pathAttrRe.FindStringSubmatch(entry[3]); p != nil {
			if p[1] != "" {
				ref.Path = p[1]
			} else {
				ref.Path = p[2]
			}
		}
		if t := typeAttrRe.FindStringSubmatch(entry[3]); t != nil {
			ref.FileType = t[1]
		}
		m.refs = append(m.refs, ref)
	}
	return 0, fmt.Errorf("%w: missing %q", ErrMalformed, endFileRefs)
}

func (m *Model) parseBuildFiles(start int) (int, error) {
	for i := start; i < len(m.lines); i++ {
		l := m.lines[i]
		if l.text == endBuildFiles {
			m.endBuilds = l
			return i + 1, nil
		}
		entry := buildFileRe.FindStringSubmatch(l.text)
		if entry == nil {
			continue
		}
		m.builds = append(m.builds, &BuildFile{
			ID:        entry[1],
			Name:      entry[2],
			Phase:     entry[3],
			FileRefID: entry[4],
			line:      l,
		})
	}
	return 0, fmt.Errorf("%w: missing %q", ErrMalformed, endBuildFiles)
}

func (m *Model) parseGroups(start int) (int, error) {
	i := start
	for i < len(m.lines) {
		l := m.lines[i]
		if l.text == endGroups {
			return i + 1, nil
		}
		header := blockStartRe.FindStringSubmatch(l.text)
		if header == nil {
			i++
			continue
		}

		g := &Group{ID: header[1], Name: header[2], header: l}
		i++
		inList := false
		for i < len(m.lines) {
			bl := m.lines[i]
			if blockEndRe.MatchString(bl.text) {
				i++
				break
			}
			switch {
			case !inList && childrenRe.MatchString(bl.text):
				inList = true
			case inList && listEndRe.MatchString(bl.text):
				inList = false
				g.closer = bl
			case inList:
				if c := listEntryRe.FindStringSubmatch(bl.text); c != nil {
					g.Children = append(g.Children, ChildRef{ID: c[1], Comment: c[2], line: bl})
				}
			}
			i++
		}
		m.groups = append(m.groups, g)
	}
	return 0, fmt.Errorf("%w: missing %q", ErrMalformed, endGroups)
}

func (m *Model) parsePhases(start int, end, kind string) (int, error) {
	i := start
	for i < len(m.lines) {
		l := m.lines[i]
		if l.text == end {
			return i + 1, nil
		}
		header := blockStartRe.FindStringSubmatch(l.text)
		if header == nil {
			i++
			continue
		}

		p := &BuildPhase{ID: header[1], Name: header[2], Kind: kind, header: l}
		i++
		inList := false
		for i < len(m.lines) {
			bl := m.lines[i]
			if blockEndRe.MatchString(bl.text) {
				i++
				break
			}
			switch {
			case !inList && filesRe.MatchString(bl.text):
				inList = true
			case inList && listEndRe.MatchString(bl.text):
				inList = false
				p.closer = bl
			case inList:
				if c := listEntryRe.FindStringSubmatch(bl.text); c != nil {
					p.Files = append(p.Files, ChildRef{ID: c[1], Comment: c[2], line: bl})
				}
			}
			i++
		}
		m.phases = append(m.phases, p)
	}
	return 0, fmt.Errorf("%w: missing %q", ErrMalformed, end)
}
