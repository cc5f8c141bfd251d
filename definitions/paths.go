package defs

import "os"

const (
	// Per-user Vulkan SDK install root, relative to $HOME.
	SDKRootDir = "VulkanSDK"

	// Layout conventions for the MoltenVK xcframework inside a versioned
	// SDK directory. The new layout appeared with SDK 1.3.231.0.
	SDKNewLayout    = "macOS/lib/MoltenVK.xcframework"
	SDKLegacyLayout = "MoltenVK/MoltenVK.xcframework"

	// Required artifact under <layout>/<osname>/.
	SDKLibName = "libMoltenVK.a"

	DirMode  = os.FileMode(0755) | os.ModeDir
	FileMode = os.FileMode(0644)
)

// System-wide MoltenVK install prefixes, checked after the per-user SDK.
var SystemSDKPrefixes = []string{
	"/opt/homebrew/Frameworks/MoltenVK.xcframework",
	"/usr/local/homebrew/Frameworks/MoltenVK.xcframework",
	"/opt/local/Frameworks/MoltenVK.xcframework",
}

const (
	// Platconf configuration (INI today, easy to switch to TOML later).
	ConfDir     = "/etc/platconf"
	ConfEnv     = "PLATCONF_CONF_FILE"
	DefaultConf = "platconf.conf"
)
