package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMappingValueUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want MappingValue
	}{
		{
			name: "reference",
			in:   `Primary.B10`,
			want: Reference("Primary.B10"),
		},
		{
			name: "quoted reference",
			in:   `"Syntax.B160"`,
			want: Reference("Syntax.B160"),
		},
		{
			name: "number",
			in:   `230`,
			want: Number(230),
		},
		{
			name: "formatted bold",
			in:   "[Syntax.B90, true, false]",
			want: Formatted("Syntax.B90", true, false),
		},
		{
			name: "formatted italic block style",
			in:   "- Syntax.B130\n- false\n- true\n",
			want: Formatted("Syntax.B130", false, true),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got MappingValue
			require.NoError(t, yaml.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMappingValueUnmarshalRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"two element sequence", "[Syntax.B90, true]"},
		{"four element sequence", "[Syntax.B90, true, false, true]"},
		{"bool scalar", "true"},
		{"mapping", "ref: Syntax.B90"},
		{"non-bool flag", "[Syntax.B90, nope, false]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got MappingValue
			assert.Error(t, yaml.Unmarshal([]byte(tt.in), &got))
		})
	}
}

func TestMappingValueRoundTrip(t *testing.T) {
	values := []MappingValue{
		Reference("Primary.B10"),
		Number(230),
		Formatted("Syntax.B90", true, false),
	}

	for _, v := range values {
		data, err := yaml.Marshal(v)
		require.NoError(t, err)

		var back MappingValue
		require.NoError(t, yaml.Unmarshal(data, &back))
		assert.Equal(t, v, back)
	}
}

func TestMappingValueString(t *testing.T) {
	assert.Equal(t, "Primary.B10", Reference("Primary.B10").String())
	assert.Equal(t, "230", Number(230).String())
	assert.Equal(t, "Syntax.B90 bold", Formatted("Syntax.B90", true, false).String())
	assert.Equal(t, "Syntax.B130 italic", Formatted("Syntax.B130", false, true).String())
}
