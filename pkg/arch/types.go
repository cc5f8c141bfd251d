package arch

import "strings"

// Arch identifies a CPU architecture. The zero value is the unknown
// architecture; every other value has exactly one canonical spelling, and
// only canonical spellings appear downstream of resolution.
type Arch int

const (
	Unknown Arch = iota
	X86_32
	X86_64
	ARM32
	ARM64
	RV64
	PPC32
	PPC64
	Wasm32
	Loongarch64
	Sparc64
	MIPS64
	Alpha
)

// Architectures lists every canonical architecture in the fixed order used
// for per-architecture artifact scans.
var Architectures = []Arch{
	X86_32, X86_64, ARM32, ARM64, RV64, PPC32,
	PPC64, Wasm32, Loongarch64, Sparc64, MIPS64, Alpha,
}

var canonicalNames = map[Arch]string{
	X86_32:      "x86_32",
	X86_64:      "x86_64",
	ARM32:       "arm32",
	ARM64:       "arm64",
	RV64:        "rv64",
	PPC32:       "ppc32",
	PPC64:       "ppc64",
	Wasm32:      "wasm32",
	Loongarch64: "loongarch64",
	Sparc64:     "sparc64",
	MIPS64:      "mips64",
	Alpha:       "alpha",
}

// String returns the canonical spelling, or "unknown" for the zero value.
func (a Arch) String() string {
	if name, ok := canonicalNames[a]; ok {
		return name
	}
	return "unknown"
}

// Names returns the canonical spellings of all architectures in scan order.
func Names() []string {
	names := make([]string, 0, len(Architectures))
	for _, a := range Architectures {
		names = append(names, a.String())
	}
	return names
}

// ParseCanonical resolves an exact canonical spelling. Aliases are not
// accepted here; use Resolve for full alias handling.
func ParseCanonical(s string) (Arch, bool) {
	for a, name := range canonicalNames {
		if name == s {
			return a, true
		}
	}
	return Unknown, false
}

func namesOf(arches []Arch) string {
	names := make([]string, 0, len(arches))
	for _, a := range arches {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}
