// Package buildenv carries the configure-phase settings that the platform
// probes consume. Probes take an explicit *Env instead of reading the
// process environment themselves, so tests can exercise them without
// mutating real environment variables.
package buildenv

import (
	"os"

	"github.com/gookit/ini/v2"

	defs "platconf/definitions"
)

type Env struct {
	// CC is the C compiler used for preprocessor probes. Empty means the
	// default compiler.
	CC string
	// VulkanSDKPath is a user-supplied override for the Vulkan SDK install
	// location. May be empty.
	VulkanSDKPath string
	// Platform is the target platform name (macos, ios, linuxbsd, ...).
	Platform string
	// Arch is a requested target architecture spelling; empty means detect
	// the host.
	Arch string
}

// Compiler returns CC, or the default compiler name when unset.
func (e *Env) Compiler() string {
	if e == nil || e.CC == "" {
		return defs.DefaultCC
	}
	return e.CC
}

// FromOS builds an Env from the process environment.
func FromOS() *Env {
	return &Env{
		CC:            os.Getenv(defs.EnvCC),
		VulkanSDKPath: os.Getenv(defs.EnvSDKPath),
		Platform:      os.Getenv(defs.EnvPlatform),
		Arch:          os.Getenv(defs.EnvArch),
	}
}

// Load overlays the [build] section of an INI file on top of FromOS. File
// values win over environment values; keys outside the section are ignored.
func Load(path string) (*Env, error) {
	env := FromOS()
	if path == "" {
		return env, nil
	}

	cfg := ini.New()
	if err := cfg.LoadExists(path); err != nil {
		return nil, err
	}

	if v := cfg.String("build.cc"); v != "" {
		env.CC = v
	}
	if v := cfg.String("build.vulkan_sdk_path"); v != "" {
		env.VulkanSDKPath = v
	}
	if v := cfg.String("build.platform"); v != "" {
		env.Platform = v
	}
	if v := cfg.String("build.arch"); v != "" {
		env.Arch = v
	}

	return env, nil
}
