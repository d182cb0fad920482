package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneAt(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		expected  string
	}{
		{"Melbourne Cricket Ground", -37.819967, 144.983449, "Australia/Melbourne"},
		{"Optus Stadium", -31.951111, 115.888889, "Australia/Perth"},
		{"Adelaide Oval", -34.915556, 138.596111, "Australia/Adelaide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone := TimezoneAt(tt.latitude, tt.longitude)
			require.NotNil(t, zone)
			assert.Equal(t, tt.expected, *zone)
		})
	}
}
