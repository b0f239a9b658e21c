package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"bom-matcher/core/designator"
	"bom-matcher/core/tokenizer"
)

// Options selects the columns and token rules used for grouping.
type Options struct {
	DesignatorColumn string
	PartColumn       string
	Mode             designator.Mode
	Explode          designator.ExplodeMode
}

// PartGroup is one distinct part code of the BOM.
type PartGroup struct {
	// PartCode is the canonical-cased group key.
	PartCode string `json:"part_code"`
	// Count is the sum of per-row designator counts.
	Count int `json:"total_count"`
	// Designators lists the distinct designators (first display form seen).
	Designators []string `json:"designators"`
	// Rows holds the BOM row indexes in the group.
	Rows []int `json:"-"`
	// ResolvedCode is the operator overlay, empty until set.
	ResolvedCode string `json:"resolved_code,omitempty"`
}

// NormalizeCode canonicalizes a part code as a group key.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Group groups the rows of table by part code. Both columns must exist.
// Groups are sorted by part code ascending; rows with an empty part code form
// the "" group so totals stay complete.
func Group(table *tokenizer.RawTable, opts Options) ([]PartGroup, error) {
	designators, err := table.Column(opts.DesignatorColumn)
	if err != nil {
		return nil, err
	}
	codes, err := table.Column(opts.PartColumn)
	if err != nil {
		return nil, err
	}

	index := make(map[string]*PartGroup)
	seen := make(map[string]map[string]struct{})

	for i, cell := range designators {
		key := NormalizeCode(codes[i])
		g, ok := index[key]
		if !ok {
			g = &PartGroup{PartCode: key, Designators: []string{}}
			index[key] = g
			seen[key] = make(map[string]struct{})
		}

		fragments := designator.Explode(cell, opts.Explode)
		g.Count += len(fragments)
		g.Rows = append(g.Rows, i)

		for _, f := range fragments {
			canonical := designator.Canonical(f, opts.Mode)
			if canonical == "" {
				continue
			}
			if _, dup := seen[key][canonical]; dup {
				continue
			}
			seen[key][canonical] = struct{}{}
			g.Designators = append(g.Designators, f)
		}
	}

	groups := make([]PartGroup, 0, len(index))
	for _, g := range index {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].PartCode < groups[j].PartCode
	})

	return groups, nil
}

// Total returns the sum of group counts.
func Total(groups []PartGroup) int {
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	return total
}

// ApplyOverrides returns a copy of groups with resolved codes overlaid.
// Override keys are part codes (normalized); unknown keys are an error so a
// typo cannot silently drop an edit.
func ApplyOverrides(groups []PartGroup, overrides map[string]string) ([]PartGroup, error) {
	out := make([]PartGroup, len(groups))
	copy(out, groups)

	byCode := make(map[string]int, len(out))
	for i, g := range out {
		byCode[g.PartCode] = i
	}

	var unknown []string
	for code, resolved := range overrides {
		i, ok := byCode[NormalizeCode(code)]
		if !ok {
			unknown = append(unknown, code)
			continue
		}
		out[i].ResolvedCode = strings.TrimSpace(resolved)
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown part codes in overrides: %s", strings.Join(unknown, ", "))
	}
	return out, nil
}
