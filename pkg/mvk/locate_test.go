package mvk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	defs "platconf/definitions"
	"platconf/pkg/buildenv"
)

// writeLib plants a libMoltenVK.a under dir/<osName>/.
func writeLib(t *testing.T, dir, osName string) {
	t.Helper()
	libDir := filepath.Join(dir, osName)
	require.NoError(t, os.MkdirAll(libDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(libDir, defs.SDKLibName), []byte("stub"), 0o644))
}

func TestSDKPathNonexistentRoot(t *testing.T) {
	path, diag := SDKPath(filepath.Join(t.TempDir(), "no-such-root"), "macos")
	assert.Nil(t, diag)
	assert.Equal(t, "", path)
}

func TestSDKPathNoQualifyingSubdirReturnsRoot(t *testing.T) {
	root := t.TempDir()
	path, diag := SDKPath(root, "macos")
	assert.Nil(t, diag)
	assert.Equal(t, root, path)
}

func TestSDKPathNewLayout(t *testing.T) {
	root := t.TempDir()
	pkg := filepath.Join(root, "1.3.250.1", defs.SDKNewLayout)
	writeLib(t, pkg, "macos")

	path, diag := SDKPath(root, "macos")
	assert.Nil(t, diag)
	assert.Equal(t, pkg, path)
}

func TestSDKPathLegacyLayoutFallback(t *testing.T) {
	root := t.TempDir()
	pkg := filepath.Join(root, "1.3.231.0", defs.SDKLegacyLayout)
	writeLib(t, pkg, "macos")

	path, diag := SDKPath(root, "macos")
	assert.Nil(t, diag)
	assert.Equal(t, pkg, path)
}

func TestSDKPathPicksHighestVersion(t *testing.T) {
	root := t.TempDir()
	older := filepath.Join(root, "1.3.231.0", defs.SDKNewLayout)
	newer := filepath.Join(root, "1.3.250.1", defs.SDKNewLayout)
	writeLib(t, older, "macos")
	writeLib(t, newer, "macos")

	path, diag := SDKPath(root, "macos")
	assert.Nil(t, diag)
	assert.Equal(t, newer, path)
}

func TestSDKPathRejectsBelowMinimum(t *testing.T) {
	root := t.TempDir()
	writeLib(t, filepath.Join(root, "1.3.200.0", defs.SDKNewLayout), "macos")
	writeLib(t, filepath.Join(root, "beta", defs.SDKNewLayout), "macos")

	// Nothing qualifies, so the root itself comes back.
	path, diag := SDKPath(root, "macos")
	assert.Nil(t, diag)
	assert.Equal(t, root, path)
}

func TestSDKPathIgnoresArtifactForOtherOS(t *testing.T) {
	root := t.TempDir()
	writeLib(t, filepath.Join(root, "1.3.250.1", defs.SDKNewLayout), "ios")

	path, diag := SDKPath(root, "macos")
	assert.Nil(t, diag)
	assert.Equal(t, root, path)
}

func TestDetectUsesOverridePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep the ~/VulkanSDK scan out of the picture

	override := t.TempDir()
	pkg := filepath.Join(override, defs.SDKLegacyLayout)
	writeLib(t, pkg, "macos")

	env := &buildenv.Env{VulkanSDKPath: override}
	path, diag := Detect(env, "macos")
	assert.Nil(t, diag)
	assert.Equal(t, pkg, path)
}

func TestDetectOverridePlainLayout(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	override := t.TempDir()
	writeLib(t, override, "macos")

	env := &buildenv.Env{VulkanSDKPath: override}
	path, diag := Detect(env, "macos")
	assert.Nil(t, diag)
	assert.Equal(t, override, path)
}

func TestDetectFindsUserSDKInstall(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	pkg := filepath.Join(home, defs.SDKRootDir, "1.3.231.0", defs.SDKNewLayout)
	writeLib(t, pkg, "macos")

	path, diag := Detect(&buildenv.Env{}, "macos")
	assert.Nil(t, diag)
	assert.Equal(t, pkg, path)
}

func TestDetectNothingFound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, diag := Detect(&buildenv.Env{}, "tvos")
	assert.Equal(t, "", path)
	require.NotNil(t, diag)
	assert.Contains(t, diag.Error(), "tvos")
}
