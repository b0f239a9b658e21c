package designator

import (
	"testing"

	"bom-matcher/core/tokenizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   string
		mode Mode
		want string
	}{
		{"LooseTrimUpper", "  r12 ", Loose, "R12"},
		{"LooseKeepsInnerSpace", "d 1", Loose, "D 1"},
		{"StrictCollapses", "d 1", Strict, "D1"},
		{"StrictDropsPunctuation", " TP-3. ", Strict, "TP3"},
		{"StrictEmpty", "--", Strict, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonical(tt.in, tt.mode))
		})
	}
}

func TestCanonical_Idempotent(t *testing.T) {
	inputs := []string{"r1", " D 1 ", "u3-a", "LED_2", "ç5", "\tQ7\n", ""}
	for _, mode := range []Mode{Loose, Strict} {
		for _, in := range inputs {
			once := Canonical(in, mode)
			assert.Equal(t, once, Canonical(once, mode), "mode=%s input=%q", mode, in)
		}
	}
}

func TestExplode(t *testing.T) {
	tests := []struct {
		name string
		cell string
		mode ExplodeMode
		want []string
	}{
		{"Full", "R1, R2;R3  R4", ExplodeFull, []string{"R1", "R2", "R3", "R4"}},
		{"FullEdges", " ,R1,, ", ExplodeFull, []string{"R1"}},
		{"Delimiters", "D 1, D 2", ExplodeDelimiters, []string{"D 1", "D 2"}},
		{"None", "  D 1, D 2 ", ExplodeNone, []string{"D 1, D 2"}},
		{"EmptyCell", "   ", ExplodeFull, []string{}},
		{"EmptyCellNone", "", ExplodeNone, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Explode(tt.cell, tt.mode))
		})
	}
}

func TestCount_MatchesExplode(t *testing.T) {
	cells := []string{"R1, R2", "C1", "", " ; ", "U1 U2\tU3", "D 1, D 2"}
	for _, mode := range []ExplodeMode{ExplodeFull, ExplodeDelimiters, ExplodeNone} {
		total, exploded := 0, 0
		for _, c := range cells {
			total += Count(c, mode)
			exploded += len(Explode(c, mode))
		}
		assert.Equal(t, exploded, total, "mode=%s", mode)
	}
}

func TestParseExplodeMode(t *testing.T) {
	m, err := ParseExplodeMode("")
	require.NoError(t, err)
	assert.Equal(t, ExplodeFull, m)

	m, err = ParseExplodeMode(" Delimiters ")
	require.NoError(t, err)
	assert.Equal(t, ExplodeDelimiters, m)

	_, err = ParseExplodeMode("commas")
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	table := &tokenizer.RawTable{
		Source:  "bom.xlsx",
		Columns: []string{"DESIGNATOR"},
		Rows: []tokenizer.Row{
			{"DESIGNATOR": "r1, R2"},
			{"DESIGNATOR": "C1"},
			{"DESIGNATOR": "R1"},
		},
	}

	set, err := Build(table, "designator", Options{Mode: Loose, Explode: ExplodeFull})
	require.NoError(t, err)

	assert.Equal(t, []string{"C1", "R1", "R2"}, set.Keys())
	assert.Equal(t, 4, set.Fragments)

	e, ok := set.Get("R1")
	require.True(t, ok)
	assert.Equal(t, "r1", e.Display, "first display form is kept")
	assert.Equal(t, []int{0, 2}, e.Rows)
	assert.Equal(t, []string{"R1"}, set.Duplicates())
}

func TestBuild_MissingColumn(t *testing.T) {
	table := &tokenizer.RawTable{Source: "bom.xlsx", Columns: []string{"REF"}}

	_, err := Build(table, "DESIGNATOR", Options{})
	var columnErr *tokenizer.MissingColumnError
	assert.ErrorAs(t, err, &columnErr)
}

func TestBuild_StrictDropsEmptyKeys(t *testing.T) {
	set := FromTokens([]string{"R1", "--", "r 1"}, Strict)

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, 1, set.Dropped)
	assert.Equal(t, 3, set.Fragments)
}

func TestDefaultExplode(t *testing.T) {
	assert.Equal(t, ExplodeFull, DefaultExplode(Loose))
	assert.Equal(t, ExplodeDelimiters, DefaultExplode(Strict))

	set := FromTokens(Explode("D 1, R2", DefaultExplode(Strict)), Strict)
	assert.Equal(t, []string{"D1", "R2"}, set.Keys())
}

func TestTokenSet_Short(t *testing.T) {
	set := FromTokens(Explode("D 1, R2", ExplodeFull), Loose)

	assert.Equal(t, []string{"1", "D"}, set.Short())
	assert.Empty(t, FromTokens([]string{"R1", "C10"}, Loose).Short())
}
