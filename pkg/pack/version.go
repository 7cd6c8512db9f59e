// Package pack provides the public API for vexil palette packs.
package pack

import (
	"fmt"
	"strconv"
	"strings"
)

// Version represents a parsed protocol version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a version string in "MAJOR.MINOR.PATCH" format.
func ParseVersion(version string) (Version, error) {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: %s (expected MAJOR.MINOR.PATCH)", version)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version: %s", parts[0])
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid minor version: %s", parts[1])
	}

	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return Version{}, fmt.Errorf("invalid patch version: %s", parts[2])
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// String returns the string representation of the version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsCompatible checks if a pack protocol version is compatible with the current vexil version.
// Rules:
// - Major version must match exactly (breaking changes).
// - Minor version can be higher (backward compatible).
// - Patch version can be any value (bug fixes only).
func IsCompatible(packVersionStr string) (bool, error) {
	packVersion, err := ParseVersion(packVersionStr)
	if err != nil {
		return false, fmt.Errorf("failed to parse pack version: %w", err)
	}

	currentVersion, err := ParseVersion(ProtocolVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse current protocol version: %w", err)
	}

	minVersion, err := ParseVersion(MinCompatibleVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse minimum compatible version: %w", err)
	}

	// Major version must match exactly
	if packVersion.Major != currentVersion.Major {
		return false, fmt.Errorf(
			"incompatible major version: pack is %s, vexil requires %d.x.x",
			packVersion.String(),
			currentVersion.Major,
		)
	}

	// Check if version is below minimum compatible version
	if packVersion.Major == minVersion.Major {
		if packVersion.Minor < minVersion.Minor {
			return false, fmt.Errorf(
				"pack version %s is too old, minimum required is %s",
				packVersion.String(),
				MinCompatibleVersion,
			)
		}
		if packVersion.Minor == minVersion.Minor && packVersion.Patch < minVersion.Patch {
			return false, fmt.Errorf(
				"pack version %s is too old, minimum required is %s",
				packVersion.String(),
				MinCompatibleVersion,
			)
		}
	}

	// Pack can have higher minor/patch version (forward compatible)
	return true, nil
}
