package compare

import (
	"testing"

	"bom-matcher/core/designator"
	"bom-matcher/core/tokenizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Candidates(t *testing.T) {
	c := Config{PartColumnCandidates: " comment, ,Part Number "}
	assert.Equal(t, []string{"COMMENT", "PART NUMBER"}, c.Candidates())
}

func TestConfig_TokenOptions(t *testing.T) {
	c := DefaultConfig()
	c.Strict = true
	c.Explode = "none"

	opts, err := c.TokenOptions()
	require.NoError(t, err)
	assert.Equal(t, designator.Strict, opts.Mode)
	assert.Equal(t, designator.ExplodeNone, opts.Explode)
}

func TestConfig_TokenOptions_DefaultExplode(t *testing.T) {
	c := DefaultConfig()

	opts, err := c.TokenOptions()
	require.NoError(t, err)
	assert.Equal(t, designator.ExplodeFull, opts.Explode)

	c.Strict = true
	opts, err = c.TokenOptions()
	require.NoError(t, err)
	assert.Equal(t, designator.Strict, opts.Mode)
	assert.Equal(t, designator.ExplodeDelimiters, opts.Explode)

	c.Explode = "full"
	opts, err = c.TokenOptions()
	require.NoError(t, err)
	assert.Equal(t, designator.ExplodeFull, opts.Explode)
}

func TestConfig_LineClassifier(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		line    string
		want    string
		wantErr bool
	}{
		{name: "FirstField", cfg: Config{}, line: "R1 10 20", want: "R1"},
		{name: "ColumnIndex", cfg: Config{Classifier: "column_index", ClassifierIndex: 1}, line: "1 R7 0", want: "R7"},
		{name: "FixedWidth", cfg: Config{Classifier: "fixed_width", ClassifierStart: 2, ClassifierEnd: 5}, line: "  C12 9", want: "C12"},
		{name: "Pattern", cfg: Config{Classifier: "pattern", ClassifierPattern: `ref=(\w+)`}, line: "x ref=U3", want: "U3"},
		{name: "NegativeIndex", cfg: Config{Classifier: "column_index", ClassifierIndex: -1}, wantErr: true},
		{name: "BadRange", cfg: Config{Classifier: "fixed_width", ClassifierStart: 4, ClassifierEnd: 2}, wantErr: true},
		{name: "BadPattern", cfg: Config{Classifier: "pattern", ClassifierPattern: "("}, wantErr: true},
		{name: "Unknown", cfg: Config{Classifier: "ocr"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl, err := tt.cfg.LineClassifier()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cl)
				return
			}
			require.NoError(t, err)
			got, ok, _ := cl.Classify(tt.line)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_TokenizerOptions(t *testing.T) {
	c := DefaultConfig()
	c.HeaderMarker = "REFDES"
	c.HeaderCaseInsensitive = true
	c.DesignatorColumn = "refdes"

	opts, err := c.TokenizerOptions()
	require.NoError(t, err)
	assert.Equal(t, "REFDES", opts.Freeform.Marker)
	assert.True(t, opts.Freeform.CaseInsensitive)

	table, err := tokenizer.Tokenize("pkp.txt", tokenizer.KindFreeform, []byte("RefDes X\nR1 0\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"REFDES"}, table.Columns)
	assert.Equal(t, "REFDES", c.Column())
}

func TestResolveColumn(t *testing.T) {
	columns := []string{"DESIGNATOR", "VALUE", "COMMENT"}
	candidates := []string{"COMMENT", "VALUE"}

	name, choice := ResolveColumn(columns, " mpn ", candidates)
	assert.Equal(t, "MPN", name)
	assert.Equal(t, ChoiceExplicit, choice)

	name, choice = ResolveColumn(columns, "", candidates)
	assert.Equal(t, "COMMENT", name)
	assert.Equal(t, ChoiceCandidate, choice)

	name, choice = ResolveColumn(columns, "", []string{"STOCK CODE"})
	assert.Equal(t, "DESIGNATOR", name)
	assert.Equal(t, ChoiceFallback, choice)

	name, _ = ResolveColumn(nil, "", candidates)
	assert.Equal(t, "", name)
}

func TestParseOverrides(t *testing.T) {
	got, err := ParseOverrides([]string{"10k = RES-10K", "100n=CAP-100N"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"10k": "RES-10K", "100n": "CAP-100N"}, got)

	_, err = ParseOverrides([]string{"=X"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
