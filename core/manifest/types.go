package manifest

// File type constants used for created file references.
const (
	FileTypeSwift = "sourcecode.swift"
	FileTypeIcns  = "image.icns"
)

// Build phase names as they appear in entry comments.
const (
	PhaseSources    = "Sources"
	PhaseResources  = "Resources"
	PhaseFrameworks = "Frameworks"
)

// line is one physical line of the manifest document. Parsed entries keep a
// pointer to their line; untouched lines are emitted verbatim on Serialize.
type line struct {
	text string
}

// FileReference declares one tracked file.
type FileReference struct {
	// ID is the 24-character identifier of the entry.
	ID string
	// Name is the display name from the inline comment.
	Name string
	// Path is the file path relative to the group source tree.
	Path string
	// FileType is the declared file kind (lastKnownFileType or explicitFileType).
	FileType string

	line *line
}

// BuildFile links a FileReference into a build phase.
type BuildFile struct {
	// ID is the 24-character identifier of the entry.
	ID string
	// Name is the display name of the referenced file.
	Name string
	// FileRefID is the identifier of the referenced FileReference.
	FileRefID string
	// Phase is the phase name from the entry comment (Sources, Resources, ...).
	Phase string

	line *line
}

// ChildRef is one entry of a group children list or a phase files list.
type ChildRef struct {
	// ID is the referenced identifier.
	ID string
	// Comment is the inline comment text, empty when the entry has none.
	Comment string

	line *line
}

// Group is a named, ordered collection of child references.
type Group struct {
	// ID is the 24-character identifier of the group.
	ID string
	// Name is the display name from the header comment, empty for the
	// top-level group.
	Name string
	// Children holds the ordered child entries.
	Children []ChildRef

	header *line
	closer *line
}

// BuildPhase is an ordered collection of build file references processed
// during one build step.
type BuildPhase struct {
	// ID is the 24-character identifier of the phase.
	ID string
	// Name is the display name from the header comment (Sources, Resources, ...).
	Name string
	// Kind is the section kind the phase was declared in
	// (PBXSourcesBuildPhase, PBXResourcesBuildPhase, PBXFrameworksBuildPhase).
	Kind string
	// Files holds the ordered build file entries.
	Files []ChildRef

	header *line
	closer *line
}

// Roles maps the closed set of roles the reconciler needs to the entities
// that hold them in the loaded document.
type Roles struct {
	// Root receives files whose path matches no category group.
	Root *Group
	// Categories maps a source directory name to its group.
	Categories map[string]*Group
	// Sources is the build phase new build files are appended to.
	Sources *BuildPhase
	// Resources is the resource phase, nil when the manifest has none.
	Resources *BuildPhase
}
