package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleManifest is a trimmed but structurally complete project manifest,
// with four tracked Swift files spread over the category groups.
const sampleManifest = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 56;
	objects = {

/* Begin PBXBuildFile section */
		B71234601234567812345678 /* TouchGrassApp.swift in Sources */ = {isa = PBXBuildFile; fileRef = B712345B1234567812345678 /* TouchGrassApp.swift */; };
		B71234611234567812345678 /* ContentView.swift in Sources */ = {isa = PBXBuildFile; fileRef = B712345C1234567812345678 /* ContentView.swift */; };
		B71234621234567812345678 /* ReminderManager.swift in Sources */ = {isa = PBXBuildFile; fileRef = B712345D1234567812345678 /* ReminderManager.swift */; };
		B71234631234567812345678 /* Exercise.swift in Sources */ = {isa = PBXBuildFile; fileRef = B712345E1234567812345678 /* Exercise.swift */; };
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
		B712345A1234567812345678 /* TouchGrass.app */ = {isa = PBXFileReference; explicitFileType = wrapper.application; includeInIndex = 0; path = TouchGrass.app; sourceTree = BUILT_PRODUCTS_DIR; };
		B712345B1234567812345678 /* TouchGrassApp.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = "TouchGrassApp.swift"; sourceTree = "<group>"; };
		B712345C1234567812345678 /* ContentView.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = "Views/ContentView.swift"; sourceTree = "<group>"; };
		B712345D1234567812345678 /* ReminderManager.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = "Managers/ReminderManager.swift"; sourceTree = "<group>"; };
		B712345E1234567812345678 /* Exercise.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = "Models/Exercise.swift"; sourceTree = "<group>"; };
		B712345F1234567812345678 /* Info.plist */ = {isa = PBXFileReference; lastKnownFileType = text.plist.xml; path = Info.plist; sourceTree = "<group>"; };
/* End PBXFileReference section */

/* Begin PBXFrameworksBuildPhase section */
		B712344F1234567812345678 /* Frameworks */ = {
			isa = PBXFrameworksBuildPhase;
			buildActionMask = 2147483647;
			files = (
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXFrameworksBuildPhase section */

/* Begin PBXGroup section */
		B71234531234567812345678 = {
			isa = PBXGroup;
			children = (
				B71234521234567812345678 /* Touch Grass */,
				B71234541234567812345678 /* Products */,
			);
			sourceTree = "<group>";
		};
		B71234521234567812345678 /* Touch Grass */ = {
			isa = PBXGroup;
			children = (
				B71234561234567812345678 /* TouchGrass */,
				B712345F1234567812345678 /* Info.plist */,
			);
			sourceTree = "<group>";
		};
		B71234561234567812345678 /* TouchGrass */ = {
			isa = PBXGroup;
			children = (
				B712345B1234567812345678 /* TouchGrassApp.swift */,
				B71234571234567812345678 /* Views */,
				B71234581234567812345678 /* Models */,
				B71234591234567812345678 /* Managers */,
			);
			path = TouchGrass;
			sourceTree = "<group>";
		};
		B71234571234567812345678 /* Views */ = {
			isa = PBXGroup;
			children = (
				B712345C1234567812345678 /* ContentView.swift */,
			);
			path = Views;
			sourceTree = "<group>";
		};
		B71234581234567812345678 /* Models */ = {
			isa = PBXGroup;
			children = (
				B712345E1234567812345678 /* Exercise.swift */,
			);
			path = Models;
			sourceTree = "<group>";
		};
		B71234591234567812345678 /* Managers */ = {
			isa = PBXGroup;
			children = (
				B712345D1234567812345678 /* ReminderManager.swift */,
			);
			path = Managers;
			sourceTree = "<group>";
		};
		B71234541234567812345678 /* Products */ = {
			isa = PBXGroup;
			children = (
				B712345A1234567812345678 /* TouchGrass.app */,
			);
			name = Products;
			sourceTree = "<group>";
		};
/* End PBXGroup section */

/* Begin PBXNativeTarget section */
		B71234501234567812345678 /* TouchGrass */ = {
			isa = PBXNativeTarget;
			buildConfigurationList = B71234641234567812345678 /* Build configuration list for PBXNativeTarget "TouchGrass" */;
			buildPhases = (
				B71234551234567812345678 /* Sources */,
				B712344F1234567812345678 /* Frameworks */,
				B712344E1234567812345678 /* Resources */,
			);
			buildRules = (
			);
			dependencies = (
			);
			name = TouchGrass;
			productName = TouchGrass;
			productReference = B712345A1234567812345678 /* TouchGrass.app */;
			productType = "com.apple.product-type.application";
		};
/* End PBXNativeTarget section */

/* Begin PBXProject section */
		B71234511234567812345678 /* Project object */ = {
			isa = PBXProject;
			buildConfigurationList = B71234651234567812345678 /* Build configuration list for PBXProject "TouchGrass" */;
			compatibilityVersion = "Xcode 14.0";
			developmentRegion = en;
			hasScannedForEncodings = 0;
			knownRegions = (
				en,
				Base,
			);
			mainGroup = B71234531234567812345678;
			productRefGroup = B71234541234567812345678 /* Products */;
			projectDirPath = "";
			projectRoot = "";
			targets = (
				B71234501234567812345678 /* TouchGrass */,
			);
		};
/* End PBXProject section */

/* Begin PBXResourcesBuildPhase section */
		B712344E1234567812345678 /* Resources */ = {
			isa = PBXResourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXResourcesBuildPhase section */

/* Begin PBXSourcesBuildPhase section */
		B71234551234567812345678 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
				B71234601234567812345678 /* TouchGrassApp.swift in Sources */,
				B71234611234567812345678 /* ContentView.swift in Sources */,
				B71234621234567812345678 /* ReminderManager.swift in Sources */,
				B71234631234567812345678 /* Exercise.swift in Sources */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXSourcesBuildPhase section */

/* Begin XCBuildConfiguration section */
		B71234661234567812345678 /* Release */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				ASSETCATALOG_COMPILER_APPICON_NAME = AppIcon;
				ASSETCATALOG_COMPILER_GLOBAL_ACCENT_COLOR_NAME = AccentColor;
				CODE_SIGN_STYLE = Automatic;
				COMBINE_HIDPI_IMAGES = YES;
				INFOPLIST_FILE = "Touch Grass/Info.plist";
				MACOSX_DEPLOYMENT_TARGET = 13.0;
				PRODUCT_BUNDLE_IDENTIFIER = com.touchgrass.app;
				PRODUCT_NAME = "$(TARGET_NAME)";
				SWIFT_VERSION = 5.0;
			};
			name = Release;
		};
/* End XCBuildConfiguration section */

/* Begin XCConfigurationList section */
		B71234651234567812345678 /* Build configuration list for PBXProject "TouchGrass" */ = {
			isa = XCConfigurationList;
			buildConfigurations = (
				B71234661234567812345678 /* Release */,
			);
			defaultConfigurationIsVisible = 0;
			defaultConfigurationName = Release;
		};
/* End XCConfigurationList section */
	};
	rootObject = B71234511234567812345678 /* Project object */;
}
`

func mustParse(t *testing.T, text string) *Model {
	t.Helper()
	m, err := Parse([]byte(text))
	require.NoError(t, err)
	return m
}

func TestParse_RoundTrip(t *testing.T) {
	m := mustParse(t, sampleManifest)
	assert.Equal(t, sampleManifest, string(m.Serialize()))
}

func TestParse_MissingSentinels(t *testing.T) {
	tests := []struct {
		name     string
		sentinel string
	}{
		{"file references", beginFileRefs},
		{"build files", beginBuildFiles},
		{"groups", beginGroups},
		{"sources phase", beginSources},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mangled := strings.Replace(sampleManifest, tt.sentinel+"\n", "", 1)
			_, err := Parse([]byte(mangled))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParse_TruncatedSection(t *testing.T) {
	// Drop the end sentinel of the file reference section.
	mangled := strings.Replace(sampleManifest, endFileRefs+"\n", "", 1)
	_, err := Parse([]byte(mangled))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParse_FileReferences(t *testing.T) {
	m := mustParse(t, sampleManifest)

	require.Len(t, m.FileReferences(), 6)

	app := m.RefByName("TouchGrassApp.swift")
	require.NotNil(t, app)
	assert.Equal(t, "B712345B1234567812345678", app.ID)
	assert.Equal(t, "TouchGrassApp.swift", app.Path)
	assert.Equal(t, FileTypeSwift, app.FileType)

	view := m.RefByName("ContentView.swift")
	require.NotNil(t, view)
	assert.Equal(t, "Views/ContentView.swift", view.Path)

	// Unquoted path and explicit file type both parse.
	plist := m.RefByName("Info.plist")
	require.NotNil(t, plist)
	assert.Equal(t, "Info.plist", plist.Path)
	product := m.RefByName("TouchGrass.app")
	require.NotNil(t, product)
	assert.Equal(t, "wrapper.application", product.FileType)
}

func TestParse_BuildFiles(t *testing.T) {
	m := mustParse(t, sampleManifest)

	require.Len(t, m.BuildFiles(), 4)

	b := m.BuildFiles()[0]
	assert.Equal(t, "B71234601234567812345678", b.ID)
	assert.Equal(t, "TouchGrassApp.swift", b.Name)
	assert.Equal(t, "B712345B1234567812345678", b.FileRefID)
	assert.Equal(t, PhaseSources, b.Phase)

	ref := m.RefByID(b.FileRefID)
	require.NotNil(t, ref)
	assert.Equal(t, b.Name, ref.Name)
}

func TestParse_Groups(t *testing.T) {
	m := mustParse(t, sampleManifest)

	require.Len(t, m.Groups(), 7)

	// The top-level group has no header comment.
	top := m.Groups()[0]
	assert.Empty(t, top.Name)
	require.Len(t, top.Children, 2)
	assert.Equal(t, "Touch Grass", top.Children[0].Comment)

	views := m.GroupByName("Views")
	require.NotNil(t, views)
	require.Len(t, views.Children, 1)
	assert.Equal(t, "B712345C1234567812345678", views.Children[0].ID)
	assert.Equal(t, "ContentView.swift", views.Children[0].Comment)
}

func TestParse_Phases(t *testing.T) {
	m := mustParse(t, sampleManifest)

	require.Len(t, m.Phases(), 3)

	sources := m.PhaseByKind(KindSources)
	require.NotNil(t, sources)
	assert.Equal(t, "Sources", sources.Name)
	require.Len(t, sources.Files, 4)
	assert.Equal(t, "TouchGrassApp.swift in Sources", sources.Files[0].Comment)

	resources := m.PhaseByKind(KindResources)
	require.NotNil(t, resources)
	assert.Empty(t, resources.Files)

	frameworks := m.PhaseByKind(KindFrameworks)
	require.NotNil(t, frameworks)
	assert.Empty(t, frameworks.Files)
}

func TestParse_OrphanTolerated(t *testing.T) {
	// Point one build file at an identifier that has no file reference.
	mangled := strings.Replace(sampleManifest,
		"fileRef = B712345E1234567812345678 /* Exercise.swift */",
		"fileRef = DEADBEEFDEADBEEFDEADBEEF /* Exercise.swift */", 1)

	m := mustParse(t, mangled)

	orphans := m.Orphans()
	require.Len(t, orphans, 1)
	assert.Equal(t, "Exercise.swift", orphans[0].Name)
}

func TestBindRoles(t *testing.T) {
	m := mustParse(t, sampleManifest)

	roles, err := m.BindRoles("TouchGrass", []string{"Views", "Managers", "Models"})
	require.NoError(t, err)

	assert.Equal(t, "B71234561234567812345678", roles.Root.ID)
	assert.Equal(t, "B71234571234567812345678", roles.Categories["Views"].ID)
	assert.Equal(t, "B71234591234567812345678", roles.Categories["Managers"].ID)
	assert.Equal(t, "B71234581234567812345678", roles.Categories["Models"].ID)
	assert.Equal(t, "B71234551234567812345678", roles.Sources.ID)
	require.NotNil(t, roles.Resources)
	assert.Equal(t, "B712344E1234567812345678", roles.Resources.ID)
	assert.Same(t, roles, m.Roles())
}

func TestBindRoles_Missing(t *testing.T) {
	t.Run("unknown root group", func(t *testing.T) {
		m := mustParse(t, sampleManifest)
		_, err := m.BindRoles("NoSuchGroup", nil)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("unknown category group", func(t *testing.T) {
		m := mustParse(t, sampleManifest)
		_, err := m.BindRoles("TouchGrass", []string{"Views", "Helpers"})
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("sources phase without files list", func(t *testing.T) {
		mangled := strings.Replace(sampleManifest, "B71234551234567812345678 /* Sources */", "B71234551234567812345678 /* Compile */", 1)
		mangled = strings.Replace(mangled, "\t\t\tfiles = (\n\t\t\t\tB71234601234567812345678", "\t\t\tinputs = (\n\t\t\t\tB71234601234567812345678", 1)
		m := mustParse(t, mangled)
		_, err := m.BindRoles("TouchGrass", nil)
		assert.ErrorIs(t, err, ErrMalformed)
	})
}
