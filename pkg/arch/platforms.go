package arch

// Architectures buildable per target platform. Platform names are the
// current ones; resolve legacy names with ResolvePlatformAlias first.
var supportedByPlatform = map[string][]Arch{
	"macos":    {X86_64, ARM64},
	"ios":      {ARM64, X86_64},
	"windows":  {X86_32, X86_64, ARM32, ARM64},
	"linuxbsd": {X86_32, X86_64, ARM32, ARM64, RV64, PPC32, PPC64, Loongarch64, Sparc64, MIPS64, Alpha},
	"android":  {X86_32, X86_64, ARM32, ARM64},
	"web":      {Wasm32},
}

// SupportedArches returns the buildable set for a platform, or nil when the
// platform is unknown.
func SupportedArches(platformName string) []Arch {
	return supportedByPlatform[ResolvePlatformAlias(platformName)]
}
