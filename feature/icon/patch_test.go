package icon_test

import (
	"strings"
	"testing"

	"pbxsync/core/ident"
	"pbxsync/core/manifest"
	"pbxsync/core/project"
	"pbxsync/feature/icon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iconFixture = `// !$*UTF8*$!
{
	archiveVersion = 1;
	objectVersion = 56;
	objects = {

/* Begin PBXBuildFile section */
		BBBBBBBBBBBBBBBBBBBBBB01 /* TouchGrassApp.swift in Sources */ = {isa = PBXBuildFile; fileRef = AAAAAAAAAAAAAAAAAAAAAA01 /* TouchGrassApp.swift */; };
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
		AAAAAAAAAAAAAAAAAAAAAA01 /* TouchGrassApp.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = "TouchGrassApp.swift"; sourceTree = "<group>"; };
/* End PBXFileReference section */

/* Begin PBXGroup section */
		CCCCCCCCCCCCCCCCCCCCCC01 /* TouchGrass */ = {
			isa = PBXGroup;
			children = (
				AAAAAAAAAAAAAAAAAAAAAA01 /* TouchGrassApp.swift */,
			);
			sourceTree = "<group>";
		};
/* End PBXGroup section */

/* Begin PBXResourcesBuildPhase section */
		DDDDDDDDDDDDDDDDDDDDDD02 /* Resources */ = {
			isa = PBXResourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXResourcesBuildPhase section */

/* Begin PBXSourcesBuildPhase section */
		DDDDDDDDDDDDDDDDDDDDDD01 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
				BBBBBBBBBBBBBBBBBBBBBB01 /* TouchGrassApp.swift in Sources */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXSourcesBuildPhase section */

		E1E1E1E1E1E1E1E1E1E1E101 /* Debug */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				ASSETCATALOG_COMPILER_APPICON_NAME = AppIcon;
				ASSETCATALOG_COMPILER_GLOBAL_ACCENT_COLOR_NAME = AccentColor;
				PRODUCT_NAME = TouchGrass;
			};
			name = Debug;
		};
	};
	rootObject = F1F1F1F1F1F1F1F1F1F1F101 /* Project object */;
}
`

func iconConfig() project.Config {
	return project.Config{RootGroup: "TouchGrass"}
}

func parseIconFixture(t *testing.T) *manifest.Model {
	t.Helper()
	m, err := manifest.Parse([]byte(iconFixture))
	require.NoError(t, err)
	return m
}

func TestPatch(t *testing.T) {
	m := parseIconFixture(t)
	gen := ident.NewGenerator(m.Identifiers())

	rep, err := icon.Patch(m, gen, iconConfig())
	require.NoError(t, err)

	assert.True(t, rep.Changed())
	assert.Equal(t, 2, rep.SettingsRemoved)
	assert.True(t, rep.RefAdded)
	assert.True(t, rep.BuildAdded)
	assert.True(t, rep.GroupUpdated)
	assert.True(t, rep.PhaseUpdated)

	ref := m.RefByName(icon.AssetName)
	require.NotNil(t, ref)
	assert.Equal(t, manifest.FileTypeIcns, ref.FileType)
	assert.Equal(t, icon.AssetName, ref.Path)

	builds := m.BuildsForRef(ref.ID)
	require.Len(t, builds, 1)
	assert.Equal(t, manifest.PhaseResources, builds[0].Phase)

	assert.True(t, m.GroupByName("TouchGrass").HasChild(ref.ID))
	resources := m.PhaseByKind(manifest.KindResources)
	require.NotNil(t, resources)
	assert.True(t, resources.HasFile(builds[0].ID))

	out := string(m.Serialize())
	assert.NotContains(t, out, "ASSETCATALOG_COMPILER_APPICON_NAME")
	assert.NotContains(t, out, "ASSETCATALOG_COMPILER_GLOBAL_ACCENT_COLOR_NAME")
	assert.Contains(t, out, "AppIcon.icns in Resources")
	assert.Contains(t, out, "lastKnownFileType = image.icns")
	assert.Contains(t, out, "PRODUCT_NAME = TouchGrass;", "unrelated settings stay put")
}

func TestPatch_Idempotent(t *testing.T) {
	m := parseIconFixture(t)
	gen := ident.NewGenerator(m.Identifiers())

	first, err := icon.Patch(m, gen, iconConfig())
	require.NoError(t, err)
	require.True(t, first.Changed())
	after := string(m.Serialize())

	second, err := icon.Patch(m, gen, iconConfig())
	require.NoError(t, err)

	assert.False(t, second.Changed())
	assert.Equal(t, icon.Report{}, second)
	assert.Equal(t, after, string(m.Serialize()))

	ref := m.RefByName(icon.AssetName)
	assert.Len(t, m.RefsByName(icon.AssetName), 1)
	assert.Len(t, m.BuildsForRef(ref.ID), 1)
	assert.Equal(t, 1, strings.Count(string(m.Serialize()), "AppIcon.icns in Resources */,"))
}

func TestPatch_NoResourcesPhase(t *testing.T) {
	var trimmed []string
	skip := false
	for _, l := range strings.Split(iconFixture, "\n") {
		if strings.Contains(l, "Begin PBXResourcesBuildPhase") {
			skip = true
		}
		if !skip {
			trimmed = append(trimmed, l)
		}
		if strings.Contains(l, "End PBXResourcesBuildPhase") {
			skip = false
		}
	}

	m, err := manifest.Parse([]byte(strings.Join(trimmed, "\n")))
	require.NoError(t, err)
	gen := ident.NewGenerator(m.Identifiers())

	_, err = icon.Patch(m, gen, iconConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, manifest.ErrMalformed)
}
