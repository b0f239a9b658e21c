package designator

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode selects the canonicalization strictness.
type Mode string

const (
	// Loose upper-cases and trims surrounding whitespace.
	Loose Mode = "loose"
	// Strict upper-cases and strips every non-alphanumeric character.
	Strict Mode = "strict"
)

// ExplodeMode selects how a cell is split into designators.
type ExplodeMode string

const (
	// ExplodeFull splits on runs of comma, semicolon or whitespace.
	ExplodeFull ExplodeMode = "full"
	// ExplodeDelimiters splits on runs of comma or semicolon only, keeping
	// embedded spaces inside one reference.
	ExplodeDelimiters ExplodeMode = "delimiters"
	// ExplodeNone keeps the whole trimmed cell as one designator.
	ExplodeNone ExplodeMode = "none"
)

var (
	fullSplitter      = regexp.MustCompile(`[,;\s]+`)
	delimiterSplitter = regexp.MustCompile(`[,;]+`)
	nonAlphanumeric   = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// ModeFor returns Strict when strict is set and Loose otherwise.
func ModeFor(strict bool) Mode {
	if strict {
		return Strict
	}
	return Loose
}

// DefaultExplode returns the explode mode paired with a canonicalization mode.
// Strict keys drop embedded spaces, so splitting on whitespace first would
// tear "D 1" into two fragments.
func DefaultExplode(mode Mode) ExplodeMode {
	if mode == Strict {
		return ExplodeDelimiters
	}
	return ExplodeFull
}

// ParseExplodeMode validates an explode mode name. Empty means ExplodeFull.
func ParseExplodeMode(s string) (ExplodeMode, error) {
	switch m := ExplodeMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ExplodeFull, nil
	case ExplodeFull, ExplodeDelimiters, ExplodeNone:
		return m, nil
	default:
		return "", fmt.Errorf("unknown explode mode %q (want full, delimiters or none)", s)
	}
}

// Canonical returns the comparison key for a display-form designator.
// Canonical(Canonical(s, m), m) == Canonical(s, m) for every mode.
func Canonical(display string, mode Mode) string {
	if mode == Strict {
		return strings.ToUpper(nonAlphanumeric.ReplaceAllString(display, ""))
	}
	return strings.ToUpper(strings.TrimSpace(display))
}

// Explode splits a cell into trimmed, non-empty designator fragments.
func Explode(cell string, mode ExplodeMode) []string {
	var parts []string
	switch mode {
	case ExplodeNone:
		parts = []string{cell}
	case ExplodeDelimiters:
		parts = delimiterSplitter.Split(cell, -1)
	default:
		parts = fullSplitter.Split(cell, -1)
	}

	fragments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fragments = append(fragments, p)
		}
	}
	return fragments
}

// Count returns the quantity contributed by one cell. It always equals
// len(Explode(cell, mode)).
func Count(cell string, mode ExplodeMode) int {
	return len(Explode(cell, mode))
}
