package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Version is a dot-separated tuple of non-negative integers, e.g. the
// directory names sdkmanager gives NDK releases ("25.2.9519653").
type Version []int

// ParseVersion parses a dot-separated integer tuple. Any segment that is
// not a plain non-negative integer rejects the whole name.
func ParseVersion(name string) (Version, error) {
	if name == "" {
		return nil, zerr.New("empty version string")
	}
	segments := strings.Split(name, ".")
	version := make(Version, 0, len(segments))
	for _, segment := range segments {
		n, err := strconv.Atoi(segment)
		if err != nil || n < 0 {
			return nil, zerr.With(zerr.New("malformed version segment"), "version", name)
		}
		version = append(version, n)
	}
	return version, nil
}

// Compare orders versions component-wise. A version that is a strict
// prefix of another sorts first ("2.5" < "2.5.1").
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

// String renders the version back to its dot-separated form.
func (v Version) String() string {
	segments := make([]string, len(v))
	for i, n := range v {
		segments[i] = strconv.Itoa(n)
	}
	return strings.Join(segments, ".")
}

// ToolchainInstallation is one installed NDK release on disk.
type ToolchainInstallation struct {
	Version Version
	Path    string
}
