package tokenizer

import "fmt"

// Options configures Tokenize for every input kind.
type Options struct {
	// Sheet selects the worksheet of spreadsheet inputs. Empty selects the first.
	Sheet string
	// Freeform configures freeform text inputs.
	Freeform FreeformOptions
}

// Tokenize parses data according to kind.
func Tokenize(source string, kind Kind, data []byte, opts Options) (*RawTable, error) {
	switch kind {
	case KindSpreadsheet:
		return ParseSpreadsheet(source, data, opts.Sheet)
	case KindDelimited:
		return ParseDelimited(source, data)
	case KindFreeform:
		return ParseFreeform(source, data, opts.Freeform)
	default:
		return nil, fmt.Errorf("%s: unsupported input kind %q", source, kind)
	}
}
