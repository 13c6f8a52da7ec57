package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareVersion(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2.4.6", "2.4.6", 0},
		{"1.10", "1.9", 1},
		{"1.0", "1.0.0", -1},
		{"1.0~rc1", "1.0", -1},
		{"1.0~rc1", "1.0~rc2", -1},
		{"1a", "1", 1},
		{"1.0a", "1.0.1", -1},
		{"007", "7", 0},
		{"2.4_p1", "2.4.p1", 0},
	}
	for _, tc := range tests {
		got, err := compareVersion(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s <=> %s", tc.a, tc.b)
	}
}

func TestCompareEVR(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"0:3.10.0-1160.el7", "3.10.0-1160.el7", 0},
		{"0:3.10.0-1160.el7", "3.10.0-957.el7", 1},
		{"1:1.0-1", "0:2.0-1", 1},
		{"2.4.6-90.el7", "2.4.10-1.el7", -1},
		{"1.0", "1.0-1", -1},
	}
	for _, tc := range tests {
		got, err := compareEVR(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s <=> %s", tc.a, tc.b)
	}
	_, err := compareEVR("x:1.0", "1.0")
	assert.ErrorIs(t, err, ErrValue)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		op, dt         string
		value, pattern string
		want           bool
	}{
		{"", "", "httpd", "httpd", true},
		{"equals", "string", "httpd", "HTTPD", false},
		{"not equal", "", "httpd", "nginx", true},
		{"case insensitive equals", "", "httpd", "HTTPD", true},
		{"case insensitive not equal", "string", "httpd", "HTTPD", false},
		{"equals", "int", "01", "1", true},
		{"equals", "integer", "2", "1", false},
		{"equals", "boolean", "1", "true", true},
		{"equals", "float", "0.50", ".5", true},
		{"greater than", "int", "10", "9", true},
		{"less than", "version", "1.9", "1.10", true},
		{"greater than or equal", "evr_string", "0:2.4.6-90.el7", "2.4.6-90.el7", true},
		{"less than or equal", "float", "1.5", "1.25", false},
		{"pattern match", "", "httpd-2.4.6", `^httpd-\d`, true},
		{"pattern match", "string", "nginx", `^httpd`, false},
		{"bitwise and", "int", "7", "5", true},
		{"bitwise and", "int", "4", "5", false},
		{"bitwise or", "int", "4", "5", true},
		{"bitwise or", "int", "2", "5", false},
		{"Pattern Match", "string", "abc", "b", true},
	}
	for _, tc := range tests {
		op, err := Lookup(tc.op, tc.dt)
		require.NoError(t, err, "%s on %s", tc.op, tc.dt)
		got, err := op.Match(tc.value, tc.pattern)
		require.NoError(t, err, "%s on %s", tc.op, tc.dt)
		assert.Equal(t, tc.want, got, "%q %s %q (%s)", tc.value, tc.op, tc.pattern, tc.dt)
	}
}

func TestLookupErrors(t *testing.T) {
	_, err := Lookup("subset of", "string")
	assert.ErrorIs(t, err, ErrUnknown)
	_, err = Lookup("greater than", "string")
	assert.ErrorIs(t, err, ErrDatatype)
	_, err = Lookup("bitwise and", "version")
	assert.ErrorIs(t, err, ErrDatatype)
	_, err = Lookup("case insensitive equals", "int")
	assert.ErrorIs(t, err, ErrDatatype)

	op, err := Lookup("pattern match", "string")
	require.NoError(t, err)
	_, err = op.Match("x", "(")
	assert.ErrorIs(t, err, ErrPattern)

	op, err = Lookup("greater than", "int")
	require.NoError(t, err)
	_, err = op.Match("ten", "9")
	assert.ErrorIs(t, err, ErrValue)
}

func TestSymbols(t *testing.T) {
	ss := Symbols()
	assert.Len(t, ss, 11)
	assert.Contains(t, ss, PatternMatch)
	assert.IsIncreasing(t, ss)
}
