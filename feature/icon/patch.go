package icon

import (
	"fmt"

	"pbxsync/core/ident"
	"pbxsync/core/manifest"
	"pbxsync/core/project"
)

// AssetName is the icon file registered by the patch.
const AssetName = "AppIcon.icns"

// Build settings dropped by the patch.
const (
	settingAppIcon     = "ASSETCATALOG_COMPILER_APPICON_NAME"
	settingAccentColor = "ASSETCATALOG_COMPILER_GLOBAL_ACCENT_COLOR_NAME"
)

// Report lists what Patch changed. A run on an already patched manifest
// reports the zero value.
type Report struct {
	// SettingsRemoved counts dropped build setting lines.
	SettingsRemoved int
	// RefAdded is set when the icon file reference was created.
	RefAdded bool
	// BuildAdded is set when the Resources build file was created.
	BuildAdded bool
	// GroupUpdated is set when the icon was added to the app group.
	GroupUpdated bool
	// PhaseUpdated is set when the build file was listed in the Resources phase.
	PhaseUpdated bool
}

// Changed reports whether the patch touched the manifest.
func (r Report) Changed() bool {
	return r.SettingsRemoved > 0 || r.RefAdded || r.BuildAdded || r.GroupUpdated || r.PhaseUpdated
}

// Patch registers AppIcon.icns as a tracked resource: a file reference of
// kind image.icns, a build file in the Resources phase, and a child of the
// app's root group. Asset catalog icon settings are removed. Every step is
// guarded, so repeated runs leave the manifest untouched.
func Patch(m *manifest.Model, gen *ident.Generator, cfg project.Config) (Report, error) {
	var rep Report

	rep.SettingsRemoved = m.RemoveBuildSetting(settingAppIcon) + m.RemoveBuildSetting(settingAccentColor)

	roles := m.Roles()
	if roles == nil {
		var err error
		if roles, err = m.BindRoles(cfg.RootGroup, cfg.Groups); err != nil {
			return rep, err
		}
	}
	if roles.Resources == nil {
		return rep, fmt.Errorf("%w: no Resources build phase to patch", manifest.ErrMalformed)
	}

	ref := m.RefByName(AssetName)
	if ref == nil {
		ref = m.AddFileReference(gen.Next(), AssetName, AssetName, manifest.FileTypeIcns)
		rep.RefAdded = true
	}

	var build *manifest.BuildFile
	for _, b := range m.BuildsForRef(ref.ID) {
		if b.Phase == manifest.PhaseResources {
			build = b
			break
		}
	}
	if build == nil {
		build = m.AddBuildFile(gen.Next(), ref, manifest.PhaseResources)
		rep.BuildAdded = true
	}

	if !roles.Root.HasChild(ref.ID) {
		if err := m.AddGroupChild(roles.Root, ref.ID, ref.Name); err != nil {
			return rep, err
		}
		rep.GroupUpdated = true
	}
	if !roles.Resources.HasFile(build.ID) {
		comment := fmt.Sprintf("%s in %s", build.Name, build.Phase)
		if err := m.AddPhaseFile(roles.Resources, build.ID, comment); err != nil {
			return rep, err
		}
		rep.PhaseUpdated = true
	}

	return rep, nil
}
