//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package arch

import (
	"github.com/shirou/gopsutil/v3/host"
)

// hostMachine returns the kernel architecture where uname is unavailable.
func hostMachine() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", err
	}
	return info.KernelArch, nil
}
