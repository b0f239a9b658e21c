package tokenizer

import (
	"encoding/csv"
	"fmt"
	"strings"
)

var candidateDelimiters = []rune{',', ';', '\t'}

// ParseDelimited reads a delimited text table with the header on its first
// non-empty line. The delimiter is whichever of comma, semicolon or tab occurs
// most often in that line.
func ParseDelimited(source string, data []byte) (*RawTable, error) {
	text, err := Decode(source, data)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = sniffDelimiter(text)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse delimited text: %w", source, err)
	}

	// Leading blank lines are skipped by encoding/csv already.
	return tableFromRecords(source, records), nil
}

func sniffDelimiter(text string) rune {
	header := text
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			header = line
			break
		}
	}

	best, bestCount := ',', 0
	for _, d := range candidateDelimiters {
		if n := strings.Count(header, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
