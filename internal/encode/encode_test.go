package encode

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeGraphMode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"unreserved untouched", "m1-foo_bar.baz~x", "m1-foo_bar.baz~x"},
		{"slash escaped", "AWS/EC2", "AWS*2fEC2"},
		{"quote exempt", "it's", "it's"},
		{"parens exempt", "(m1)", "(m1)"},
		{"star exempt", "a*b", "a*b"},
		{"space escaped", "a b", "a*20b"},
		{"colons in timestamp", "2023-10-10T00:40:00.000Z", "2023-10-10T00*3a40*3a00.000Z"},
		{"percent escaped", "%2F", "*252F"},
		{"utf8 bytes", "é", "*c3*a9"},
		{"literal star before upper hex pair", "*AB", "*ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.input, false))
		})
	}
}

func TestEncodeFormulaMode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"period expression", "m1/PERIOD(m1)", "m1*2fPERIOD*28m1*29"},
		{"label with spaces", "i-1 NetworkIn in pps", "i-1*20NetworkIn*20in*20pps"},
		{"latency expression", "(m1/m3) * 1000", "*28m1*2fm3*29*20*2a*201000"},
		{"quote escaped", "it's", "it*27s"},
		{"utf8 label", "café lait", "caf*c3*a9*20lait"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.input, true))
		})
	}
}

// Output never contains a '*' introducer followed by uppercase hex digits.
func TestHexPairsAreLowercase(t *testing.T) {
	upper := regexp.MustCompile(`\*[0-9A-F]{2}`)
	inputs := []string{
		"AWS/EC2", "a b/c'd(e)f*g", "éàü", "%FF%AA", "*AB*CD", "m1/PERIOD(m1)",
	}
	for _, in := range inputs {
		for _, formula := range []bool{false, true} {
			out := Encode(in, formula)
			assert.Empty(t, upper.FindString(out), "input %q formula=%v gave %q", in, formula, out)
		}
	}
}

// The graph-mode pass leaves phase-one formula escapes intact: running an
// already formula-encoded string through the final pass is a no-op.
func TestGraphPassPreservesFormulaEscapes(t *testing.T) {
	for _, expr := range []string{"m1/PERIOD(m1)", "(m1/1048576)/PERIOD(m1)", "vol-1 read IOPS"} {
		phase1 := Encode(expr, true)
		assert.Equal(t, phase1, Encode(phase1, false))
	}
}

func TestEncodeIsTotalOverAllBytes(t *testing.T) {
	raw := make([]byte, 256)
	for i := range raw {
		raw[i] = byte(i)
	}
	// Invalid UTF-8 still encodes byte-wise without panicking.
	out := Encode(string(raw), true)
	assert.NotEmpty(t, out)
}
