package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name     string
		goals    int
		behinds  int
		expected int64
	}{
		{"no score", 0, 0, 0},
		{"behinds only", 0, 7, 7},
		{"goals only", 10, 0, 60},
		{"typical winning score", 16, 11, 107},
		{"typical losing score", 11, 9, 75},
		{"largest counts", MaxCount, MaxCount, 7 * int64(MaxCount)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateScore(tt.goals, tt.behinds))
		})
	}
}
