package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColorList(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "bare hexes",
			in:   []string{"#DC143C", "#3584E4"},
			want: []string{"#DC143C", "#3584E4"},
		},
		{
			name: "name=hex pairs",
			in:   []string{"crimson=#DC143C", "blue=#3584E4"},
			want: []string{"#DC143C", "#3584E4"},
		},
		{
			name: "comma separated",
			in:   []string{"#DC143C,#3584E4, #2EC27E"},
			want: []string{"#DC143C", "#3584E4", "#2EC27E"},
		},
		{
			name: "file lines with blanks",
			in:   []string{"#DC143C", "", "accent=#9141AC", "  "},
			want: []string{"#DC143C", "#9141AC"},
		},
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseColorList(tt.in))
		})
	}
}
