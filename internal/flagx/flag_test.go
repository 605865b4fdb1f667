package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{
			name:     "separate value form",
			args:     []string{"-a", "http://localhost:5000", "-x", "ignored"},
			allowed:  []string{"-a"},
			expected: []string{"-a", "http://localhost:5000"},
		},
		{
			name:     "equals form",
			args:     []string{"--config=conf.json", "-a=addr"},
			allowed:  []string{"--config"},
			expected: []string{"--config=conf.json"},
		},
		{
			name:     "flag without value followed by another flag",
			args:     []string{"-a", "-b", "val"},
			allowed:  []string{"-a", "-b"},
			expected: []string{"-a", "-b", "val"},
		},
		{
			name:     "nothing allowed gives empty slice",
			args:     []string{"-a", "x"},
			allowed:  []string{"-z"},
			expected: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, FilterArgs(tc.args, tc.allowed))
		})
	}
}
