package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiers(t *testing.T) {
	pattern, err := NewPattern(`^\s*\d+\s+(\S+)`, Rules{})
	require.NoError(t, err)

	tests := []struct {
		name       string
		classifier LineClassifier
		line       string
		want       string
		ok         bool
		reason     WarningReason
	}{
		{"FirstField", FirstField{}, "  R12  1.0 2.0", "R12", true, ""},
		{"FirstFieldEmpty", FirstField{}, "   \t", "", false, ReasonEmpty},
		{"FirstFieldSeparator", FirstField{}, "----====----", "", false, ReasonSeparator},
		{"FirstFieldHyphenKept", FirstField{}, "TP-1 0 0", "TP-1", true, ""},
		{"FirstFieldHyphenRejected", FirstField{Rules: Rules{RejectHyphen: true}}, "TP-1 0 0", "", false, ReasonHyphen},
		{"ColumnIndex", ColumnIndex{Index: 1}, "0001 C4 10 20", "C4", true, ""},
		{"ColumnIndexOutOfRange", ColumnIndex{Index: 5}, "0001 C4", "", false, ReasonNoMatch},
		{"FixedWidth", FixedWidth{Start: 0, End: 6}, "U10   12.5  3.0", "U10", true, ""},
		{"FixedWidthOpenEnd", FixedWidth{Start: 4}, "xxx LED1 ", "LED1", true, ""},
		{"FixedWidthShortLine", FixedWidth{Start: 10, End: 14}, "R1", "", false, ReasonNoMatch},
		{"Pattern", pattern, "  7 Q3 1 1", "Q3", true, ""},
		{"PatternNoMatch", pattern, "Q3 1 1", "", false, ReasonNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, reason := tt.classifier.Classify(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestNewPattern_Invalid(t *testing.T) {
	_, err := NewPattern(`(`, Rules{})
	assert.Error(t, err)
}

func TestParseFreeform_CustomClassifier(t *testing.T) {
	text := "Idx Designator X Y\n1 R1 0 0\n2 R2 1 1\n"

	table, err := ParseFreeform("pkp.txt", []byte(text), FreeformOptions{Classifier: ColumnIndex{Index: 1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"R1", "R2"}, designators(t, table))
}
