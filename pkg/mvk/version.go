package mvk

import (
	"strconv"
	"strings"
)

// Version is an ordered tuple of non-negative integers parsed from a
// dot-separated string. SDK install directories are named after their
// release version, so ordering Versions orders releases.
type Version []int

// ParseVersion splits s on dots and coerces every segment to an integer.
// Non-numeric segments become 0, so a directory named "beta" parses to (0)
// and never outranks a real release.
func ParseVersion(s string) Version {
	parts := strings.Split(s, ".")
	ver := make(Version, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			n = 0
		}
		ver[i] = n
	}
	return ver
}

// Compare orders versions lexicographically: -1 when v < other, 0 when
// equal, 1 when v > other. When one version is a prefix of the other the
// shorter one is smaller.
func (v Version) Compare(other Version) int {
	for i := 0; i < len(v) && i < len(other); i++ {
		switch {
		case v[i] < other[i]:
			return -1
		case v[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(v) < len(other):
		return -1
	case len(v) > len(other):
		return 1
	}
	return 0
}

func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) >= 0
}

func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}
