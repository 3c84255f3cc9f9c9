package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrVersionTooOld is returned when the running build is older than the
// configured min_version.
var ErrVersionTooOld = errors.New("pagegen version too old for this configuration")

// NormalizeVersion returns a version string without the "v" prefix.
func NormalizeVersion(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}

// canonicalVersion returns the version in canonical semver format.
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// IsValidVersion reports whether v is a semantic version, with or without "v".
func IsValidVersion(v string) bool {
	return semver.IsValid(canonicalVersion(v))
}

// CheckVersion reports ErrVersionTooOld when current is older than
// MinVersion. Development and unversioned builds are never rejected.
func (c *Config) CheckVersion(current string) error {
	if c.MinVersion == "" || !IsValidVersion(current) {
		return nil
	}

	if semver.Compare(canonicalVersion(current), canonicalVersion(c.MinVersion)) < 0 {
		return fmt.Errorf("%w: running %s, config requires %s",
			ErrVersionTooOld, NormalizeVersion(current), NormalizeVersion(c.MinVersion))
	}
	return nil
}
