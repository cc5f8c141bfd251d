package arch

import (
	"strings"

	"platconf/errors"
)

// Resolve canonicalizes a raw machine identifier. Resolution order: exact
// canonical name, alias table, then a "86" substring fallback to x86_32 for
// legacy 32-bit x86 spellings (i386, i486, i586, i686, ...). Anything else
// degrades to x86_64 with a diagnostic; there is no failure path.
func Resolve(raw string) (Arch, *errors.Diag) {
	machine := strings.ToLower(raw)

	if a, ok := ParseCanonical(machine); ok {
		return a, nil
	}
	if a, ok := aliases[machine]; ok {
		return a, nil
	}
	if strings.Contains(machine, "86") {
		return X86_32, nil
	}

	return X86_64, errors.WarnErr("detect_arch", errors.UnknownArch,
		"unsupported CPU architecture %q, falling back to x86_64", raw)
}

// DetectHost resolves the host machine identifier as reported by the
// operating system. Always returns a usable architecture; an unreadable or
// unrecognized identifier degrades to x86_64 with a diagnostic.
func DetectHost() (Arch, *errors.Diag) {
	machine, err := hostMachine()
	if err != nil {
		return X86_64, errors.WarnErr("detect_arch", err,
			"cannot read host machine identifier, falling back to x86_64")
	}
	return Resolve(machine)
}
