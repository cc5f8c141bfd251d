// Package endian determines the target byte order by running the configured
// C compiler in preprocess-only mode; no compiled code is ever executed, so
// the probe works for cross builds.
package endian

import (
	"os"
	"os/exec"
	"strings"

	pkgerrors "github.com/pkg/errors"

	defs "platconf/definitions"
	"platconf/errors"
)

const probeSource = `
#if __BYTE_ORDER__ == __ORDER_BIG_ENDIAN__
BIG_ENDIAN_DETECTED
#elif __BYTE_ORDER__ == __ORDER_LITTLE_ENDIAN__
LITTLE_ENDIAN_DETECTED
#else
UNKNOWN_ENDIAN
#endif
`

const (
	bigSentinel    = "BIG_ENDIAN_DETECTED"
	littleSentinel = "LITTLE_ENDIAN_DETECTED"
)

// Prober runs the preprocessor probe. The zero value is not usable;
// construct with New.
type Prober struct {
	run func(name string, args ...string) ([]byte, error)
}

func New() *Prober {
	return &Prober{
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
	}
}

// DetectTarget reports whether the target of compiler cc is big-endian. An
// empty cc means the default compiler. Every failure (temp file I/O, missing
// compiler, unclassifiable output) degrades to little-endian with a
// diagnostic; the probe never returns a hard error.
func (p *Prober) DetectTarget(cc string) (bool, *errors.Diag) {
	if cc == "" {
		cc = defs.DefaultCC
	}

	f, err := os.CreateTemp("", "endian-probe-*.c")
	if err != nil {
		return false, errors.WarnErr("detect_endianness",
			pkgerrors.Wrap(err, "creating probe source"), "endianness detection failed")
	}
	probeFile := f.Name()
	defer os.Remove(probeFile)

	if _, err := f.WriteString(probeSource); err != nil {
		f.Close()
		return false, errors.WarnErr("detect_endianness",
			pkgerrors.Wrap(err, "writing probe source"), "endianness detection failed")
	}
	if err := f.Close(); err != nil {
		return false, errors.WarnErr("detect_endianness", err, "endianness detection failed")
	}

	out, err := p.run(cc, "-E", probeFile)
	if err != nil {
		return false, errors.WarnErr("detect_endianness",
			pkgerrors.Wrapf(err, "running %s -E", cc), "endianness detection failed")
	}

	output := string(out)
	switch {
	case strings.Contains(output, bigSentinel):
		return true, nil
	case strings.Contains(output, littleSentinel):
		return false, nil
	}
	return false, errors.WarnErr("detect_endianness", errors.ErrOutputParse,
		"could not detect endianness from preprocessor output, assuming little-endian")
}

// DetectTarget probes with the default Prober. See Prober.DetectTarget.
func DetectTarget(cc string) (bool, *errors.Diag) {
	return New().DetectTarget(cc)
}
