//go:build linux || darwin || freebsd || netbsd || openbsd

package arch

import (
	"golang.org/x/sys/unix"
)

// hostMachine returns the uname machine field, e.g. "x86_64" or "aarch64".
func hostMachine() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Machine[:]), nil
}
