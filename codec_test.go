package json5_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json5 "github.com/mcvoid/json5"
)

// four JSON5 documents covering the format's extensions, each checked for
// the decoded shape the grammar should produce.
func TestDecodeScenarios(t *testing.T) {
	for _, test := range []struct {
		name string
		src  string
		want func(t *testing.T, v *json5.Value)
	}{
		{
			name: "unquoted keys, trailing comma, comment",
			src: `{
				unquoted: 'and you can quote me on that',
				// a comment
				trailingComma: 'in objects', andIn: ['arrays',],
			}`,
			want: func(t *testing.T, v *json5.Value) {
				s, err := v.Key("unquoted").AsString()
				require.NoError(t, err)
				assert.Equal(t, "and you can quote me on that", string(s))
				assert.Equal(t, 1, v.Key("andIn").Len())
			},
		},
		{
			name: "hex and leading/trailing decimal points",
			src:  `{hex: 0xDEADbeef, leadingDecimalPoint: .8675309, andTrailing: 8675309.}`,
			want: func(t *testing.T, v *json5.Value) {
				n, err := v.Key("hex").AsInt()
				require.NoError(t, err)
				assert.EqualValues(t, 3735928559, n)
				f, err := v.Key("leadingDecimalPoint").AsFloat()
				require.NoError(t, err)
				assert.InDelta(t, 0.8675309, f, 1e-9)
				f, err = v.Key("andTrailing").AsFloat()
				require.NoError(t, err)
				assert.InDelta(t, 8675309.0, f, 1e-6)
			},
		},
		{
			name: "positive sign and infinities",
			src:  `{positiveSign: +1, trailingComma: 'in arrays', "backwardsCompatible": "with JSON", plusInf: +Infinity, minusInf: -Infinity, nan: NaN}`,
			want: func(t *testing.T, v *json5.Value) {
				n, err := v.Key("positiveSign").AsInt()
				require.NoError(t, err)
				assert.EqualValues(t, 1, n)
				f, err := v.Key("plusInf").AsFloat()
				require.NoError(t, err)
				assert.True(t, math.IsInf(f, 1))
				f, err = v.Key("minusInf").AsFloat()
				require.NoError(t, err)
				assert.True(t, math.IsInf(f, -1))
				f, err = v.Key("nan").AsFloat()
				require.NoError(t, err)
				assert.True(t, math.IsNaN(f))
			},
		},
		{
			name: "multiline string",
			src:  "{lineBreaks: \"Look, Mom! \\\nNo \\\\n's!\"}",
			want: func(t *testing.T, v *json5.Value) {
				s, err := v.Key("lineBreaks").AsString()
				require.NoError(t, err)
				assert.Equal(t, "Look, Mom! No \\n's!", string(s))
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			v, err := json5.DecodeString(test.src)
			require.NoError(t, err)
			require.Equal(t, json5.Object, v.Type())
			test.want(t, v)
		})
	}
}

func TestDecodeRejectsInvalidDocuments(t *testing.T) {
	for _, src := range []string{
		``,
		`{`,
		`[1, 2,,]`,
		`{"a": }`,
		`"unterminated`,
		`01`,
		`.`,
		`+foo`,
	} {
		t.Run(src, func(t *testing.T) {
			_, err := json5.DecodeString(src)
			assert.Error(t, err)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := `{"a": 1, "b": [true, false, null], "c": {"d": -5.5}, "e": "hi there"}`
	v, err := json5.DecodeString(src)
	require.NoError(t, err)

	out, err := json5.EncodeBytes(v)
	require.NoError(t, err)

	v2, err := json5.DecodeBytes(out)
	require.NoError(t, err)

	for _, key := range []string{"a"} {
		n1, _ := v.Key(key).AsInt()
		n2, _ := v2.Key(key).AsInt()
		assert.Equal(t, n1, n2)
	}
	assert.Equal(t, v.Key("b").Len(), v2.Key("b").Len())

	d1, _ := v.Key("c").Key("d").AsFloat()
	d2, _ := v2.Key("c").Key("d").AsFloat()
	assert.Equal(t, d1, d2)

	s1, _ := v.Key("e").AsString()
	s2, _ := v2.Key("e").AsString()
	assert.Equal(t, s1, s2)
}

func TestEncodeFloatAlwaysLooksLikeFloat(t *testing.T) {
	var v json5.Value
	v.SetFloat(5)
	out, err := json5.EncodeBytes(&v)
	require.NoError(t, err)
	assert.True(t, strings.ContainsAny(string(out), ".eE"), "expected a float marker in %q", out)
}

func TestEncodeEscapesNonASCIIByDefault(t *testing.T) {
	var v json5.Value
	v.SetString([]byte("café"))
	out, err := json5.EncodeBytes(&v)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "é")
	// "é" is U+00E9, written by the Writer with lowercase hex digits.
	wantEscape := "\\u00e9"
	assert.Contains(t, string(out), wantEscape)
}

func TestEncodeCanSkipNonASCIIEscaping(t *testing.T) {
	var v json5.Value
	v.SetString([]byte("café"))
	out, err := json5.EncodeBytes(&v, json5.EscapeNonASCII(false))
	require.NoError(t, err)
	assert.Contains(t, string(out), "café")
}

func TestDecodeFromReaderStreamsChunks(t *testing.T) {
	src := `{"a": [1, 2, 3, 4, 5, 6, 7, 8, 9, 10]}`
	r := bytes.NewReader([]byte(src))
	v, err := json5.Decode(r)
	require.NoError(t, err)
	assert.Equal(t, 10, v.Key("a").Len())
}
