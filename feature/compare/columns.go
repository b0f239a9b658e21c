package compare

import (
	"fmt"
	"strings"

	"bom-matcher/core/tokenizer"
)

// ColumnChoice is how a part-code column was selected.
type ColumnChoice string

const (
	// ChoiceExplicit means the caller named the column.
	ChoiceExplicit ColumnChoice = "explicit"
	// ChoiceCandidate means the first present candidate was used.
	ChoiceCandidate ColumnChoice = "candidate"
	// ChoiceFallback means no candidate matched and the first column was used.
	ChoiceFallback ColumnChoice = "fallback"
)

// ResolveColumn picks the part-code column among columns. An explicit name is
// returned normalized without checking it exists, so a wrong name surfaces as
// a missing column later. Otherwise the first present candidate wins, falling
// back to the first column. An empty column list resolves to "".
func ResolveColumn(columns []string, explicit string, candidates []string) (string, ColumnChoice) {
	if name := tokenizer.NormalizeColumn(explicit); name != "" {
		return name, ChoiceExplicit
	}

	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}
	for _, cand := range candidates {
		if n := tokenizer.NormalizeColumn(cand); present[n] {
			return n, ChoiceCandidate
		}
	}

	if len(columns) == 0 {
		return "", ChoiceFallback
	}
	return columns[0], ChoiceFallback
}

// DetectColumns parses a blob and returns its normalized column names.
// Freeform inputs yield the single designator column.
func DetectColumns(source string, kind tokenizer.Kind, data []byte, cfg Config) ([]string, error) {
	opts, err := cfg.TokenizerOptions()
	if err != nil {
		return nil, invalid(err)
	}
	table, err := tokenizer.Tokenize(source, kind, data, opts)
	if err != nil {
		return nil, err
	}
	return table.Columns, nil
}

// ParseOverrides parses CODE=RESOLVED pairs into an override map.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		code, resolved, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(code) == "" {
			return nil, fmt.Errorf("%w: override %q must look like CODE=RESOLVED", ErrInvalidRequest, p)
		}
		out[strings.TrimSpace(code)] = strings.TrimSpace(resolved)
	}
	return out, nil
}
