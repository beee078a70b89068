// Package manifest provides a typed, round-trip-safe model of an Xcode
// project manifest (project.pbxproj).
//
// The manifest is a semi-structured text file with four linked section kinds:
// file references, build files, groups, and build phases. The sections are
// connected only by inline 24-character identifiers, so every mutation has to
// re-establish referential integrity across all of them. This package
// centralizes those mutations behind typed accessors so that no caller ever
// patches the text directly.
//
// # Document Model
//
// Parse keeps every input line verbatim and additionally lifts the entries of
// the known sections into typed values (FileReference, BuildFile, Group,
// BuildPhase). Serialize emits untouched lines byte-identically and created
// entries in canonical form, so a parse/serialize cycle with no mutation
// reproduces the input exactly.
//
// # Roles
//
// The manifest identifies groups and phases only by generated identifiers.
// BindRoles resolves the small closed set of roles the reconciler needs (the
// root group, the category groups, the Sources phase) against the loaded
// document once, replacing the hardcoded identifier constants the manifest
// would otherwise require.
//
// # Usage Example
//
//	m, err := manifest.Parse(data)
//	if err != nil {
//	    return err
//	}
//	roles, err := m.BindRoles("TouchGrass", []string{"Views", "Managers", "Models"})
//	if err != nil {
//	    return err
//	}
//	ref := m.AddFileReference(id, "ContentView.swift", "Views/ContentView.swift", manifest.FileTypeSwift)
//	m.AddGroupChild(roles.Categories["Views"], ref.ID, ref.Name)
//	out := m.Serialize()
package manifest
