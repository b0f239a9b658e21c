package tokenizer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// LineClassifier extracts the candidate designator from one data line of a
// freeform export. ok is false when the line must be skipped, with reason
// saying why.
type LineClassifier interface {
	Classify(line string) (candidate string, ok bool, reason WarningReason)
}

// Rules holds the rejection rules shared by all classifiers.
type Rules struct {
	// RejectHyphen also rejects candidates containing "-".
	RejectHyphen bool
}

// Check applies the rejection rules to a candidate.
func (r Rules) Check(candidate string) (string, bool, WarningReason) {
	candidate = strings.TrimSpace(candidate)
	switch {
	case utf8.RuneCountInString(candidate) <= 1:
		return "", false, ReasonTooShort
	case strings.Contains(candidate, "="):
		return "", false, ReasonSeparator
	case r.RejectHyphen && strings.Contains(candidate, "-"):
		return "", false, ReasonHyphen
	}
	return candidate, true, ""
}

// FirstField takes the first whitespace-delimited field as the designator.
type FirstField struct {
	Rules
}

func (c FirstField) Classify(line string) (string, bool, WarningReason) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false, ReasonEmpty
	}
	return c.Check(fields[0])
}

// ColumnIndex takes the whitespace-delimited field at Index (0-based).
type ColumnIndex struct {
	Rules
	Index int
}

func (c ColumnIndex) Classify(line string) (string, bool, WarningReason) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false, ReasonEmpty
	}
	if c.Index < 0 || c.Index >= len(fields) {
		return "", false, ReasonNoMatch
	}
	return c.Check(fields[c.Index])
}

// FixedWidth takes the rune range [Start, End) of the line. End <= 0 means to
// the end of the line.
type FixedWidth struct {
	Rules
	Start int
	End   int
}

func (c FixedWidth) Classify(line string) (string, bool, WarningReason) {
	if strings.TrimSpace(line) == "" {
		return "", false, ReasonEmpty
	}
	runes := []rune(line)
	if c.Start < 0 || c.Start >= len(runes) {
		return "", false, ReasonNoMatch
	}
	end := c.End
	if end <= 0 || end > len(runes) {
		end = len(runes)
	}
	if end <= c.Start {
		return "", false, ReasonNoMatch
	}
	return c.Check(string(runes[c.Start:end]))
}

// Pattern matches an exporter-specific grammar. The first capture group is the
// candidate, or the whole match when the expression has no groups.
type Pattern struct {
	Rules
	Expr *regexp.Regexp
}

// NewPattern compiles expr into a Pattern classifier.
func NewPattern(expr string, rules Rules) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("invalid classifier pattern: %w", err)
	}
	return Pattern{Rules: rules, Expr: re}, nil
}

func (c Pattern) Classify(line string) (string, bool, WarningReason) {
	if strings.TrimSpace(line) == "" {
		return "", false, ReasonEmpty
	}
	m := c.Expr.FindStringSubmatch(line)
	if m == nil {
		return "", false, ReasonNoMatch
	}
	if len(m) > 1 {
		return c.Check(m[1])
	}
	return c.Check(m[0])
}
