package tokenizer

import (
	"errors"
	"fmt"
	"strings"
)

// DecodeError is returned when a text blob is neither valid UTF-8 nor decodable
// with the Latin-9 fallback.
type DecodeError struct {
	// Source identifies the offending file.
	Source string
	// Reason describes why both decoders rejected the blob.
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: cannot decode text: %s", e.Source, e.Reason)
}

// MissingColumnError is returned when a required column is absent after header
// normalization. Columns lists the normalized names that were detected.
type MissingColumnError struct {
	Source  string
	Column  string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: column %q not found (detected columns: %s)",
		e.Source, e.Column, strings.Join(e.Columns, ", "))
}

// HeaderNotFoundError is returned when a freeform text blob has no line
// containing the header marker.
type HeaderNotFoundError struct {
	Source string
	Marker string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("%s: no header line containing %q", e.Source, e.Marker)
}

// WarningReason categorizes a skipped freeform line.
type WarningReason string

const (
	// ReasonEmpty marks a line that split into zero fields.
	ReasonEmpty WarningReason = "empty"
	// ReasonTooShort marks a candidate of one character or less.
	ReasonTooShort WarningReason = "too_short"
	// ReasonSeparator marks a rule line such as "========".
	ReasonSeparator WarningReason = "separator"
	// ReasonHyphen marks a candidate rejected by the hyphen rule.
	ReasonHyphen WarningReason = "hyphen"
	// ReasonNoMatch marks a line that the classifier could not extract from.
	ReasonNoMatch WarningReason = "no_match"
)

// MalformedRowWarning records a freeform line that was skipped. It is never
// terminal.
type MalformedRowWarning struct {
	// Line is the 1-based line number in the decoded text.
	Line   int           `json:"line"`
	Text   string        `json:"text"`
	Reason WarningReason `json:"reason"`
}

// Diagnostics carries the non-terminal findings of a parse.
type Diagnostics struct {
	// HeaderLine is the 1-based line number of the detected header (freeform only).
	HeaderLine int                   `json:"header_line,omitempty"`
	Warnings   []MalformedRowWarning `json:"warnings,omitempty"`
}

// Discarded returns the number of skipped lines.
func (d Diagnostics) Discarded() int {
	return len(d.Warnings)
}

// UserMessage renders err as an operator-facing message naming the cause.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var decodeErr *DecodeError
	var columnErr *MissingColumnError
	var headerErr *HeaderNotFoundError

	switch {
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("The file %s could not be read as text (tried UTF-8 and Latin-9): %s.",
			decodeErr.Source, decodeErr.Reason)
	case errors.As(err, &columnErr):
		return fmt.Sprintf("The file %s has no %q column. Detected columns: %s. Choose the column explicitly.",
			columnErr.Source, columnErr.Column, strings.Join(columnErr.Columns, ", "))
	case errors.As(err, &headerErr):
		return fmt.Sprintf("The file %s has no header line containing %q.",
			headerErr.Source, headerErr.Marker)
	default:
		return err.Error()
	}
}
