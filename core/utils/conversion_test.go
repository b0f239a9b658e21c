package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	assert.Equal(t, "R1", ToString("R1"))
	assert.Equal(t, "C10", ToString([]byte("C10")))
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "", ToString(nil))
}

func TestToBool(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{true, true},
		{false, false},
		{1, true},
		{int64(0), false},
		{"true", true},
		{" YES ", true},
		{"on", true},
		{"0", false},
		{"", false},
		{[]byte("1"), true},
		{3.5, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToBool(tt.in), "input %v", tt.in)
	}
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 3, ToInt("3", 0))
	assert.Equal(t, 7, ToInt("x", 7))
	assert.Equal(t, 5, ToInt(int64(5), 0))
	assert.Equal(t, -1, ToInt(nil, -1))
}
