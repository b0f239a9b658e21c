package tokenizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func designators(t *testing.T, table *RawTable) []string {
	t.Helper()
	values, err := table.Column(DefaultColumn)
	require.NoError(t, err)
	return values
}

func TestParseFreeform_HeaderOffset(t *testing.T) {
	text := "Exported by CAM tool\r\nUnits: mm\r\nDesignator X Y Rotation\r\nR1 10 20 0\r\nC1 11 21 90\r\nC2 12 22 180\r\n"

	table, err := ParseFreeform("pkp.txt", []byte(text), FreeformOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"DESIGNATOR"}, table.Columns)
	assert.Equal(t, 3, table.Diagnostics.HeaderLine)
	assert.Equal(t, []string{"R1", "C1", "C2"}, designators(t, table))
	assert.Zero(t, table.Diagnostics.Discarded())
}

func TestParseFreeform_SkipsDecorativeLines(t *testing.T) {
	text := "Designator X Y\n========\nR1 1 2\n\n= = =\nX 0 0\nU3 5 5\n"

	table, err := ParseFreeform("pkp.txt", []byte(text), FreeformOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"R1", "U3"}, designators(t, table))

	reasons := make(map[WarningReason]int)
	for _, w := range table.Diagnostics.Warnings {
		reasons[w.Reason]++
	}
	assert.Equal(t, 1, reasons[ReasonSeparator])
	assert.Equal(t, 1, reasons[ReasonEmpty])
	assert.Equal(t, 2, reasons[ReasonTooShort]) // "=" and "X"
	assert.Equal(t, 4, table.Diagnostics.Discarded())
}

func TestParseFreeform_HyphenRule(t *testing.T) {
	text := "Designator X Y\nR1 1 2\n--- 0 0\nJ-1 3 3\n"

	t.Run("Disabled", func(t *testing.T) {
		table, err := ParseFreeform("pkp.txt", []byte(text), FreeformOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"R1", "---", "J-1"}, designators(t, table))
	})

	t.Run("Enabled", func(t *testing.T) {
		opts := FreeformOptions{Classifier: FirstField{Rules: Rules{RejectHyphen: true}}}
		table, err := ParseFreeform("pkp.txt", []byte(text), opts)
		require.NoError(t, err)
		assert.Equal(t, []string{"R1"}, designators(t, table))
		assert.Equal(t, 2, table.Diagnostics.Discarded())
	})
}

func TestParseFreeform_HeaderNotFound(t *testing.T) {
	_, err := ParseFreeform("pkp.txt", []byte("Ref X Y\nR1 1 2\n"), FreeformOptions{})
	require.Error(t, err)

	var headerErr *HeaderNotFoundError
	require.True(t, errors.As(err, &headerErr))
	assert.Equal(t, "pkp.txt", headerErr.Source)
	assert.Equal(t, "Designator", headerErr.Marker)
}

func TestParseFreeform_MarkerCase(t *testing.T) {
	text := "DESIGNATOR X Y\nR1 1 2\n"

	_, err := ParseFreeform("pkp.txt", []byte(text), FreeformOptions{})
	assert.Error(t, err, "marker is case-sensitive by default")

	table, err := ParseFreeform("pkp.txt", []byte(text), FreeformOptions{CaseInsensitive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"R1"}, designators(t, table))
}

func TestParseFreeform_Latin9Fallback(t *testing.T) {
	// 0xB0 is the degree sign in Latin-9 and invalid as a lone UTF-8 byte.
	data := []byte("Designator X Y Rot\xB0\nR1 1 2 90\n")

	table, err := ParseFreeform("pkp.txt", data, FreeformOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"R1"}, designators(t, table))
}

func TestParseFreeform_DecodeError(t *testing.T) {
	_, err := ParseFreeform("pkp.bin", []byte("Designator\x00\x01"), FreeformOptions{})

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "pkp.bin", decodeErr.Source)
}
