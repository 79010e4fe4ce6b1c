// Package gitver models the detected git version and answers the
// "is version >= X.Y.Z" questions that gate optional command-line flags.
package gitver

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	bsemver "github.com/blang/semver/v4"
)

// ErrUnset is returned when a gated decision is requested before the git
// version has been detected. Callers must detect (or explicitly set) the
// version before relying on gated behavior.
var ErrUnset = errors.New("git version not detected yet")

// ErrAlreadySet is returned when a gate is written a second time. The
// detected version is immutable for the life of the process.
var ErrAlreadySet = errors.New("git version already set")

// Version is the numeric major.minor.patch triple of the git binary.
// Comparisons are purely numeric and lexicographic, most-significant first.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String formats v as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var versionRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// Parse parses a strict numeric "major.minor.patch" string. Anything else —
// prerelease suffixes, missing components, stray text — fails hard.
// Validation and integer extraction go through blang/semver so the accepted
// grammar stays exactly SemVer's version core.
func Parse(s string) (Version, error) {
	if !versionRe.MatchString(s) {
		return Version{}, fmt.Errorf("invalid git version %q: want major.minor.patch", s)
	}
	bv, err := bsemver.Parse(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid git version %q: %w", s, err)
	}
	return Version{
		Major: int(bv.Major),
		Minor: int(bv.Minor),
		Patch: int(bv.Patch),
	}, nil
}

// tripleRe finds the numeric triple inside a `git --version` banner such as
// "git version 2.43.0" or "git version 2.39.3 (Apple Git-145)".
var tripleRe = regexp.MustCompile(`\d+\.\d+\.\d+`)

// FromCommandOutput extracts and parses the version triple from the first
// line of `git --version` output.
func FromCommandOutput(line string) (Version, error) {
	m := tripleRe.FindString(line)
	if m == "" {
		return Version{}, fmt.Errorf("no version triple in git output %q", line)
	}
	return Parse(m)
}

// Gate holds the single detected git version. It is set exactly once —
// either from an explicit literal or from the version operation — and is
// read-only thereafter.
type Gate struct {
	mu  sync.RWMutex
	v   Version
	set bool
}

// NewGate returns an empty gate awaiting version detection.
func NewGate() *Gate {
	return &Gate{}
}

// Set stores the detected version. Setting a gate twice is an error.
func (g *Gate) Set(v Version) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.set {
		return ErrAlreadySet
	}
	g.v = v
	g.set = true
	return nil
}

// Version returns the stored version, or ErrUnset before detection.
func (g *Gate) Version() (Version, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.set {
		return Version{}, ErrUnset
	}
	return g.v, nil
}

// MeetsMinimum reports whether the stored version is at least the supplied
// partial tuple. Only the components the caller passes are compared,
// most-significant first, short-circuiting on the first unequal component:
// MeetsMinimum(2, 13) ignores the patch level entirely. Consulting the gate
// before the version is set returns ErrUnset.
func (g *Gate) MeetsMinimum(major int, rest ...int) (bool, error) {
	v, err := g.Version()
	if err != nil {
		return false, err
	}

	have := []int{v.Major, v.Minor, v.Patch}
	want := append([]int{major}, rest...)
	if len(want) > len(have) {
		want = want[:len(have)]
	}
	for i := range want {
		if have[i] != want[i] {
			return have[i] > want[i], nil
		}
	}
	return true, nil
}
