package buildenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConf = `
; configure-phase settings
[build]
cc = clang
vulkan_sdk_path = /opt/vulkan
platform = macos

[unrelated]
cc = tcc
`

func TestCompilerDefault(t *testing.T) {
	assert.Equal(t, "gcc", (&Env{}).Compiler())
	assert.Equal(t, "gcc", (*Env)(nil).Compiler())
	assert.Equal(t, "clang", (&Env{CC: "clang"}).Compiler())
}

func TestFromOS(t *testing.T) {
	t.Setenv("CC", "cc-from-env")
	t.Setenv("VULKAN_SDK_PATH", "/env/vulkan")
	t.Setenv("PLATCONF_PLATFORM", "ios")
	t.Setenv("PLATCONF_ARCH", "arm64")

	env := FromOS()
	assert.Equal(t, "cc-from-env", env.CC)
	assert.Equal(t, "/env/vulkan", env.VulkanSDKPath)
	assert.Equal(t, "ios", env.Platform)
	assert.Equal(t, "arm64", env.Arch)
}

func TestLoadOverlaysFileOnEnvironment(t *testing.T) {
	t.Setenv("CC", "cc-from-env")
	t.Setenv("PLATCONF_ARCH", "arm64")
	t.Setenv("VULKAN_SDK_PATH", "")
	t.Setenv("PLATCONF_PLATFORM", "")

	conf := filepath.Join(t.TempDir(), "platconf.conf")
	require.NoError(t, os.WriteFile(conf, []byte(sampleConf), 0o644))

	env, err := Load(conf)
	require.NoError(t, err)

	// File values win over environment values.
	assert.Equal(t, "clang", env.CC)
	assert.Equal(t, "/opt/vulkan", env.VulkanSDKPath)
	assert.Equal(t, "macos", env.Platform)
	// Keys absent from the file keep their environment value.
	assert.Equal(t, "arm64", env.Arch)
}

func TestLoadMissingFileFallsBackToEnvironment(t *testing.T) {
	t.Setenv("CC", "cc-from-env")

	env, err := Load(filepath.Join(t.TempDir(), "absent.conf"))
	require.NoError(t, err)
	assert.Equal(t, "cc-from-env", env.CC)
}

func TestLoadEmptyPath(t *testing.T) {
	t.Setenv("CC", "")
	env, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gcc", env.Compiler())
}
