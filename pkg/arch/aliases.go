package arch

// Accepted spellings for each canonical architecture. Keys are lowercase and
// disjoint from the canonical names; lookups must lowercase first.
var aliases = map[string]Arch{
	"x86":      X86_32,
	"x64":      X86_64,
	"amd64":    X86_64,
	"armv7":    ARM32,
	"armv8":    ARM64,
	"arm64v8":  ARM64,
	"aarch64":  ARM64,
	"rv":       RV64,
	"riscv":    RV64,
	"riscv64":  RV64,
	"ppcle":    PPC32,
	"ppc":      PPC32,
	"ppc64le":  PPC64,
	"ppc64v1":  PPC64,
	"ppc64v2":  PPC64,
	"loong64":  Loongarch64,
	"v9":       Sparc64,
	"sparc":    Sparc64,
	"sparcv9":  Sparc64,
	"sun4v":    Sparc64,
	"mips64le": MIPS64,
	"mipsel64": MIPS64,
	"mips3":    MIPS64,
	"mips3le":  MIPS64,
	"mipsel3":  MIPS64,
	"alpha64":   Alpha,
	"alpha64el": Alpha,
	"decalpha":  Alpha,
}

// Historical platform names still seen in build scripts and CI recipes.
var platformAliases = map[string]string{
	"osx":        "macos",
	"iphone":     "ios",
	"x11":        "linuxbsd",
	"javascript": "web",
}

// ResolvePlatformAlias maps a legacy platform name to its current one;
// unknown names pass through unchanged.
func ResolvePlatformAlias(name string) string {
	if current, ok := platformAliases[name]; ok {
		return current
	}
	return name
}
