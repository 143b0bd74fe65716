// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for the utilities provided in this repository.
package version

import (
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build metadata portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// semverRE is a regular expression used to parse a semantic version string into
// its constituent parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// Version is the application version per the semantic versioning 2.0.0 spec
// (https://semver.org/).
//
// It is defined as a variable so it can be overridden during the build
// process with:
// '-ldflags "-X github.com/decred/btcaddr/internal/version.Version=fullsemver"'
// if needed.
//
// It MUST be a full semantic version or the package will panic at runtime.
var Version = "1.0.0-pre"

// semVer houses the components of a parsed semantic version.
type semVer struct {
	major, minor, patch uint
	preRelease          string
	buildMetadata       string
}

// parsed is the parsed form of Version.  It is set by init.
var parsed semVer

// parseUint converts the passed string to an unsigned integer or returns an
// error if it is invalid.
func parseUint(s string, fieldName string) (uint, error) {
	val, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("malformed semver %s: %w", fieldName, err)
	}
	return uint(val), nil
}

// parseSemVer parses the components of the provided semantic version string.
func parseSemVer(s string) (semVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return semVer{}, fmt.Errorf("malformed version string %q: does not "+
			"conform to semver specification", s)
	}

	var v semVer
	var err error
	fields := []struct {
		dst  *uint
		str  string
		name string
	}{
		{&v.major, m[1], "major"},
		{&v.minor, m[2], "minor"},
		{&v.patch, m[3], "patch"},
	}
	for _, f := range fields {
		if *f.dst, err = parseUint(f.str, f.name); err != nil {
			return semVer{}, err
		}
	}
	v.preRelease, v.buildMetadata = m[4], m[5]
	return v, nil
}

func init() {
	var err error
	parsed, err = parseSemVer(Version)
	if err != nil {
		panic(err)
	}
}

// vcsCommitID returns the abbreviated revision the binary was built from when
// the build information records one.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var vcs, revision string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		}
	}
	if vcs == "" {
		return ""
	}
	if vcs == "git" && len(revision) > 9 {
		revision = revision[:9]
	}
	return revision
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec.  The revision the binary was built from is
// added to the build metadata of versions without any.
func String() string {
	if parsed.buildMetadata != "" {
		return Version
	}
	commit := NormalizeString(vcsCommitID())
	if commit == "" {
		return Version
	}
	return Version + "+" + commit
}

// NormalizeString returns the passed string stripped of all characters which
// are not valid according to the semantic versioning guidelines for pre-release
// and build metadata strings.
func NormalizeString(str string) string {
	var b strings.Builder
	for _, r := range str {
		if strings.ContainsRune(semanticAlphabet, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
