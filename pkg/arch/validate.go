package arch

import (
	"fmt"

	defs "platconf/definitions"
	"platconf/errors"
	log "platconf/logger"
)

// Validate checks that arch is buildable for the named platform.
func Validate(a Arch, platformName string, supported []Arch) error {
	for _, s := range supported {
		if s == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %q for %s, supported architectures are: %s",
		errors.UnsupportedArch, a, platformName, namesOf(supported))
}

// MustValidate terminates the configure pass when the architecture is not
// buildable. There is no way to work around a wrong architecture, so this is
// the one fatal path in the package; everything else degrades with a
// diagnostic.
func MustValidate(a Arch, platformName string, supported []Arch) {
	if err := Validate(a, platformName, supported); err != nil {
		log.FatalWithCode(defs.ExitUnsupportedArch, err.Error())
	}
}
