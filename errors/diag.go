package errors

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Diag is a non-fatal diagnostic attached to a probe result. Probes that can
// always produce a usable default return (value, *Diag) instead of printing
// warnings themselves; the caller decides whether and where to surface it.
type Diag struct {
	// Op names the probe that degraded, e.g. "detect_arch".
	Op  string
	Msg string
	// Err is the underlying cause, if any.
	Err error
}

func (d *Diag) Error() string {
	if d.Err != nil {
		return fmt.Sprintf("%s: %s: %v", d.Op, d.Msg, d.Err)
	}
	return fmt.Sprintf("%s: %s", d.Op, d.Msg)
}

func (d *Diag) Unwrap() error {
	return d.Err
}

func Warnf(op string, format string, args ...interface{}) *Diag {
	return &Diag{Op: op, Msg: fmt.Sprintf(format, args...)}
}

func WarnErr(op string, err error, format string, args ...interface{}) *Diag {
	return &Diag{Op: op, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Collect folds a set of diagnostics into a single error, skipping nils.
// Returns nil when every diagnostic is nil.
func Collect(diags ...*Diag) error {
	var merged *multierror.Error
	for _, d := range diags {
		if d != nil {
			merged = multierror.Append(merged, d)
		}
	}
	return merged.ErrorOrNil()
}
