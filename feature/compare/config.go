package compare

import (
	"fmt"
	"strings"

	"bom-matcher/core/designator"
	"bom-matcher/core/tokenizer"
)

// Config holds the matching rules of a reconciliation run.
type Config struct {
	// DesignatorColumn is the normalized designator column of tabular inputs.
	DesignatorColumn string `mapstructure:"designator_column" default:"DESIGNATOR"`
	// HeaderMarker identifies the header line of freeform inputs.
	HeaderMarker string `mapstructure:"header_marker" default:"Designator"`
	// HeaderCaseInsensitive matches HeaderMarker regardless of case.
	HeaderCaseInsensitive bool `mapstructure:"header_case_insensitive" default:"false"`
	// Strict strips every non-alphanumeric character from comparison keys.
	Strict bool `mapstructure:"strict" default:"false"`
	// Explode selects how BOM cells are split (full, delimiters, none).
	// Empty splits on delimiters only under Strict, so "D 1" stays one
	// reference, and on whitespace too otherwise.
	Explode string `mapstructure:"explode" default:""`
	// RejectHyphen discards freeform candidates containing "-".
	RejectHyphen bool `mapstructure:"reject_hyphen" default:"false"`
	// PartColumn forces the BOM part-code column. Empty auto-detects.
	PartColumn string `mapstructure:"part_column" default:""`
	// PartColumnCandidates is the detection order used when PartColumn is empty.
	PartColumnCandidates string `mapstructure:"part_column_candidates" default:"COMMENT,VALUE,PART NUMBER,PART,MPN,ITEM,STOCK CODE"`
	// Classifier selects the freeform line classifier
	// (first_field, column_index, fixed_width, pattern).
	Classifier string `mapstructure:"classifier" default:"first_field"`
	// ClassifierIndex is the zero-based field of the column_index classifier.
	ClassifierIndex int `mapstructure:"classifier_index" default:"0"`
	// ClassifierStart and ClassifierEnd bound the fixed_width classifier.
	// An end of 0 runs to the end of the line.
	ClassifierStart int `mapstructure:"classifier_start" default:"0"`
	ClassifierEnd   int `mapstructure:"classifier_end" default:"0"`
	// ClassifierPattern is the regular expression of the pattern classifier.
	ClassifierPattern string `mapstructure:"classifier_pattern" default:""`
}

const (
	ClassifierFirstField  = "first_field"
	ClassifierColumnIndex = "column_index"
	ClassifierFixedWidth  = "fixed_width"
	ClassifierPattern     = "pattern"
)

// DefaultConfig returns the configuration used when none is loaded.
func DefaultConfig() Config {
	return Config{
		DesignatorColumn:     tokenizer.DefaultColumn,
		HeaderMarker:         tokenizer.DefaultMarker,
		PartColumnCandidates: "COMMENT,VALUE,PART NUMBER,PART,MPN,ITEM,STOCK CODE",
		Classifier:           ClassifierFirstField,
	}
}

// Candidates returns the normalized part-code column candidates in order.
func (c Config) Candidates() []string {
	var out []string
	for _, name := range strings.Split(c.PartColumnCandidates, ",") {
		if n := tokenizer.NormalizeColumn(name); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// TokenOptions returns the canonicalization and explosion rules.
func (c Config) TokenOptions() (designator.Options, error) {
	mode := designator.ModeFor(c.Strict)
	if strings.TrimSpace(c.Explode) == "" {
		return designator.Options{Mode: mode, Explode: designator.DefaultExplode(mode)}, nil
	}
	explode, err := designator.ParseExplodeMode(c.Explode)
	if err != nil {
		return designator.Options{}, err
	}
	return designator.Options{Mode: mode, Explode: explode}, nil
}

// LineClassifier builds the configured freeform line classifier.
func (c Config) LineClassifier() (tokenizer.LineClassifier, error) {
	rules := tokenizer.Rules{RejectHyphen: c.RejectHyphen}

	switch strings.ToLower(strings.TrimSpace(c.Classifier)) {
	case "", ClassifierFirstField:
		return tokenizer.FirstField{Rules: rules}, nil
	case ClassifierColumnIndex:
		if c.ClassifierIndex < 0 {
			return nil, fmt.Errorf("classifier_index must not be negative, got %d", c.ClassifierIndex)
		}
		return tokenizer.ColumnIndex{Rules: rules, Index: c.ClassifierIndex}, nil
	case ClassifierFixedWidth:
		if c.ClassifierStart < 0 || (c.ClassifierEnd > 0 && c.ClassifierEnd <= c.ClassifierStart) {
			return nil, fmt.Errorf("invalid fixed width range [%d, %d)", c.ClassifierStart, c.ClassifierEnd)
		}
		return tokenizer.FixedWidth{Rules: rules, Start: c.ClassifierStart, End: c.ClassifierEnd}, nil
	case ClassifierPattern:
		p, err := tokenizer.NewPattern(c.ClassifierPattern, rules)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown classifier %q", c.Classifier)
	}
}

// TokenizerOptions returns the parsing options for every input kind.
func (c Config) TokenizerOptions() (tokenizer.Options, error) {
	classifier, err := c.LineClassifier()
	if err != nil {
		return tokenizer.Options{}, err
	}
	return tokenizer.Options{
		Freeform: tokenizer.FreeformOptions{
			Marker:          c.HeaderMarker,
			CaseInsensitive: c.HeaderCaseInsensitive,
			Column:          c.DesignatorColumn,
			Classifier:      classifier,
		},
	}, nil
}

// Column returns the normalized designator column.
func (c Config) Column() string {
	if col := tokenizer.NormalizeColumn(c.DesignatorColumn); col != "" {
		return col
	}
	return tokenizer.DefaultColumn
}
