package tokenizer

import (
	"strings"
)

const (
	// DefaultMarker is the header marker of pick-and-place exports.
	DefaultMarker = "Designator"
	// DefaultColumn is the normalized designator column name.
	DefaultColumn = "DESIGNATOR"
)

// FreeformOptions configures freeform text parsing.
type FreeformOptions struct {
	// Marker is the substring identifying the header line.
	Marker string
	// CaseInsensitive matches Marker regardless of case.
	CaseInsensitive bool
	// Column names the single column of the resulting table.
	Column string
	// Classifier extracts candidates from data lines. Defaults to FirstField.
	Classifier LineClassifier
}

func (o FreeformOptions) withDefaults() FreeformOptions {
	if o.Marker == "" {
		o.Marker = DefaultMarker
	}
	if NormalizeColumn(o.Column) == "" {
		o.Column = DefaultColumn
	}
	if o.Classifier == nil {
		o.Classifier = FirstField{}
	}
	return o
}

// ParseFreeform decodes a freeform export, finds the header line, and returns
// a one-column table holding a candidate designator per accepted data line.
func ParseFreeform(source string, data []byte, opts FreeformOptions) (*RawTable, error) {
	opts = opts.withDefaults()

	text, err := Decode(source, data)
	if err != nil {
		return nil, err
	}

	lines := splitLines(text)
	header := findHeader(lines, opts.Marker, opts.CaseInsensitive)
	if header < 0 {
		return nil, &HeaderNotFoundError{Source: source, Marker: opts.Marker}
	}

	column := NormalizeColumn(opts.Column)
	table := &RawTable{
		Source:      source,
		Columns:     []string{column},
		Diagnostics: Diagnostics{HeaderLine: header + 1},
	}

	for i := header + 1; i < len(lines); i++ {
		line := lines[i]
		candidate, ok, reason := opts.Classifier.Classify(line)
		if !ok {
			// Trailing blank lines are not worth a warning each.
			if reason == ReasonEmpty && strings.TrimSpace(line) == "" && i == len(lines)-1 {
				continue
			}
			table.Diagnostics.Warnings = append(table.Diagnostics.Warnings, MalformedRowWarning{
				Line:   i + 1,
				Text:   line,
				Reason: reason,
			})
			continue
		}
		table.Rows = append(table.Rows, Row{column: candidate})
	}

	return table, nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func findHeader(lines []string, marker string, caseInsensitive bool) int {
	if caseInsensitive {
		marker = strings.ToLower(marker)
	}
	for i, line := range lines {
		if caseInsensitive {
			line = strings.ToLower(line)
		}
		if strings.Contains(line, marker) {
			return i
		}
	}
	return -1
}
