// Package lipo merges per-architecture build artifacts into a single
// universal binary by driving the external merge tool.
package lipo

import (
	"os/exec"

	defs "platconf/definitions"
	"platconf/errors"
	log "platconf/logger"
	"platconf/pkg/arch"
	"platconf/pkg/utils"
)

// Fuser locates per-architecture artifacts and merges them. The zero value
// is not usable; construct with New.
type Fuser struct {
	// Tool is the universal-binary merge tool.
	Tool string

	run func(name string, args ...string) ([]byte, error)
}

func New() *Fuser {
	return &Fuser{
		Tool: defs.DefaultLipoTool,
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).CombinedOutput()
		},
	}
}

// Fuse scans for artifacts named <prefix>.<arch><suffix> in canonical
// architecture order. With no match it returns ""; with one match, that
// artifact unmerged; with two or more it merges them into
// <prefix>.fat<suffix> and returns the fat path.
//
// The fat path is returned even when the merge tool fails; the failure is
// carried in the diagnostic so callers that need strict correctness can
// verify the output file.
func (f *Fuser) Fuse(prefix, suffix string) (string, *errors.Diag) {
	var found []string
	for _, a := range arch.Architectures {
		bin := prefix + "." + a.String() + suffix
		if utils.IsRegular(bin) {
			found = append(found, bin)
		}
	}

	switch len(found) {
	case 0:
		return "", errors.Warnf("lipo", "no per-architecture artifacts for %s*%s", prefix, suffix)
	case 1:
		return found[0], nil
	}

	fat := prefix + defs.FatInfix + suffix
	args := append([]string{"-create"}, found...)
	args = append(args, "-output", fat)

	log.Debugf("merging %d artifacts into %s", len(found), fat)
	if out, err := f.run(f.Tool, args...); err != nil {
		return fat, errors.WarnErr("lipo", err, "%s -create failed: %s", f.Tool, out)
	}
	return fat, nil
}

// Fuse merges with the default tool. See Fuser.Fuse.
func Fuse(prefix, suffix string) (string, *errors.Diag) {
	return New().Fuse(prefix, suffix)
}
