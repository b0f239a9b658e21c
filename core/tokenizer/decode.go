package tokenizer

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts a text blob to a string. UTF-8 is tried first (a leading BOM
// is dropped), then ISO-8859-15. Blobs containing NUL bytes are binary and
// rejected by both.
func Decode(source string, data []byte) (string, error) {
	if bytes.IndexByte(data, 0x00) >= 0 {
		return "", &DecodeError{Source: source, Reason: "content contains NUL bytes"}
	}

	if utf8.Valid(data) {
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}

	decoded, err := charmap.ISO8859_15.NewDecoder().Bytes(data)
	if err != nil {
		return "", &DecodeError{Source: source, Reason: "invalid UTF-8 and Latin-9: " + err.Error()}
	}
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", &DecodeError{Source: source, Reason: "invalid UTF-8 and unmapped Latin-9 bytes"}
	}
	return string(decoded), nil
}
