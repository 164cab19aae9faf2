package tutor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackIndex(t *testing.T) {
	tests := []struct {
		question string
		want     int
	}{
		{question: "", want: 0},
		{question: "a", want: 1},
		{question: "ab", want: 2},
		{question: "abc", want: 3},
		{question: "abcd", want: 0},
		{question: strings.Repeat("x", 53), want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FallbackIndex(tt.question), "len=%d", len(tt.question))
	}
}

func TestFallbackSameLengthCollides(t *testing.T) {
	assert.Equal(t, Fallback("what is this"), Fallback("hello world!"))
	assert.Equal(t, FallbackTemplates[0], Fallback("what is this"))
}
