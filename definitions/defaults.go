package defs

const (
	ToolName = "platconf"

	// Oldest Vulkan SDK known to ship the xcframework layout we link against.
	MinSDKVersion = "1.3.231.0"

	// Compiler used for preprocessor probes when the environment does not
	// name one.
	DefaultCC = "gcc"

	// Universal-binary merge tool and the infix of its output.
	DefaultLipoTool = "lipo"
	FatInfix        = ".fat"

	// An unsupported architecture cannot produce a meaningful build; the
	// configure pass stops with this status so wrappers can tell it apart
	// from ordinary failures.
	ExitUnsupportedArch = 255
)

// Environment variables consumed when building an Env from the process
// environment.
const (
	EnvCC       = "CC"
	EnvSDKPath  = "VULKAN_SDK_PATH"
	EnvPlatform = "PLATCONF_PLATFORM"
	EnvArch     = "PLATCONF_ARCH"
)
