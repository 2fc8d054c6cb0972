package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Sample-1", "sample_1"},
		{"sample_1", "sample_1"},
		{"A  b--C", "a_b_c"},
		{"__x__", "__x__"},
		{"x.-_y", "x__y"},
		{"(ZMA 1234)", "_zma_1234_"},
		{"Été", "_t_"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanonicalName(tc.in, false), "CanonicalName(%q)", tc.in)
		assert.Equal(t, tc.in, CanonicalName(tc.in, true), "strict keeps %q", tc.in)
	}
}

func TestResolveNames(t *testing.T) {
	cases := []struct {
		in, want []string
	}{
		{[]string{"abgd", "gmyc"}, []string{"abgd", "gmyc"}},
		{[]string{"a", "b", "a"}, []string{"a_1", "b", "a_2"}},
		// an existing name is never reused by a generated suffix
		{[]string{"a", "a", "a_1"}, []string{"a_2", "a_3", "a_1"}},
		{[]string{"x", "x", "x", "y", "y"}, []string{"x_1", "x_2", "x_3", "y_1", "y_2"}},
		{nil, []string{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, resolveNames(tc.in), "resolveNames(%q)", tc.in)
	}
}
