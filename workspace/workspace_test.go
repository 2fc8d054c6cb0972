package workspace_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/limes/method"
	"github.com/katalvlaran/limes/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// mk builds a raw method with integer codes.
func mk(t testing.TB, name string, samples []string, codes ...int64) *method.Method {
	t.Helper()
	cs := make([]method.Code, len(codes))
	for i, c := range codes {
		cs[i] = method.IntCode(c)
	}
	m, err := method.New(name, samples, cs)
	require.NoError(t, err)
	return m
}

// sampleNames lists sample names in order.
func sampleNames(ss []*method.Sample) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Name
	}
	return out
}

func TestNew_NoMethods(t *testing.T) {
	_, err := workspace.New(nil)
	require.ErrorIs(t, err, workspace.ErrNoMethods)

	_, err = workspace.New([]*method.Method{mk(t, "a", []string{"x"}, 1), nil})
	require.ErrorIs(t, err, workspace.ErrNoMethods)
}

func TestNew_CommonOnly(t *testing.T) {
	a := mk(t, "A", []string{"x", "y", "z"}, 1, 1, 2)
	b := mk(t, "B", []string{"y", "z", "w"}, 1, 2, 2)

	ws, err := workspace.New([]*method.Method{a, b}, workspace.WithCommon(true))
	require.NoError(t, err)

	assert.Equal(t, []string{"y", "z"}, sampleNames(ws.Samples()))
	assert.Equal(t, 2, ws.SampleCount())
	assert.Equal(t, 2, ws.DiscardedSampleCount())
	assert.Equal(t, 2, ws.ModifiedMethodCount())

	na, ok := ws.Method("A")
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, sampleNames(na.Excluded()))
	assert.Equal(t, []string{"y", "z"}, sampleNames(na.Samples()))
	nb, _ := ws.Method("B")
	assert.Equal(t, []string{"w"}, sampleNames(nb.Excluded()))

	// every retained sample is referenced by all methods
	for _, s := range ws.Samples() {
		for _, nm := range ws.Methods() {
			_, ok := nm.CodeOf(s)
			assert.True(t, ok, "%s missing from %s", s, nm)
			assert.NotNil(t, nm.Original(s))
		}
	}
}

func TestNew_AllSamples(t *testing.T) {
	a := mk(t, "A", []string{"x", "y", "z"}, 1, 1, 2)
	b := mk(t, "B", []string{"y", "z", "w"}, 1, 2, 2)

	ws, err := workspace.New([]*method.Method{a, b})
	require.NoError(t, err)

	assert.Equal(t, []string{"w", "x", "y", "z"}, sampleNames(ws.Samples()))
	assert.Zero(t, ws.DiscardedSampleCount())
	assert.Zero(t, ws.ModifiedMethodCount())

	na, _ := ws.Method("A")
	assert.Nil(t, na.Excluded())
	assert.Equal(t, 3, na.Len())

	all := na.All()
	require.Len(t, all, 4)
	for s, orig := range all {
		if s.Name == "w" {
			assert.Nil(t, orig)
			continue
		}
		require.NotNil(t, orig)
		assert.Equal(t, s.Name, orig.Name)
	}
	assert.Same(t, a, na.Origin())
}

func TestNew_SharedSamplePool(t *testing.T) {
	a := mk(t, "A", []string{"x", "y"}, 1, 2)
	b := mk(t, "B", []string{"y", "x"}, 1, 1)

	ws, err := workspace.New([]*method.Method{a, b})
	require.NoError(t, err)
	na, _ := ws.Method("A")
	nb, _ := ws.Method("B")

	xa, _ := na.Lookup("x")
	xb, _ := nb.Lookup("x")
	assert.Same(t, xa, xb)

	// origin samples are distinct pointers, canonical ones are shared
	ox, _ := a.Lookup("x")
	assert.NotSame(t, ox, xa)
	assert.Same(t, ox, na.Original(xa))
}

func TestNew_EmptyCommon(t *testing.T) {
	a := mk(t, "A", []string{"x"}, 1)
	b := mk(t, "B", []string{"y"}, 1)
	_, err := workspace.New([]*method.Method{a, b}, workspace.WithCommon(true))
	require.ErrorIs(t, err, workspace.ErrEmptyMethod)
	require.ErrorIs(t, err, method.ErrEmptyMethod)
}

func TestNew_Normalization(t *testing.T) {
	a := mk(t, "A", []string{"Sample-1", "sample 2"}, 1, 2)
	b := mk(t, "B", []string{"SAMPLE_1", "Sample.2"}, 1, 1)

	// strict: four different samples, none common
	_, err := workspace.New([]*method.Method{a, b}, workspace.WithCommon(true))
	require.ErrorIs(t, err, workspace.ErrEmptyMethod)

	ws, err := workspace.New([]*method.Method{a, b},
		workspace.WithStrict(false), workspace.WithCommon(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"sample_1", "sample_2"}, sampleNames(ws.Samples()))
	assert.False(t, ws.Options().Strict)

	nb, _ := ws.Method("B")
	s1, _ := nb.Lookup("sample_1")
	assert.Equal(t, "SAMPLE_1", nb.Original(s1).Name)
}

func TestNew_RedundantAfterNormalization(t *testing.T) {
	a := mk(t, "A", []string{"Sample-1", "sample_1"}, 1, 2)

	_, err := workspace.New([]*method.Method{a}, workspace.WithStrict(true))
	require.NoError(t, err)

	_, err = workspace.New([]*method.Method{a}, workspace.WithStrict(false))
	require.ErrorIs(t, err, workspace.ErrRedundantName)
	assert.True(t, errors.Is(err, method.ErrRedundantName))
	assert.Contains(t, err.Error(), `"sample_1"`)
}

func TestNew_MethodRenaming(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ms := []*method.Method{
		mk(t, "abgd", []string{"x"}, 1),
		mk(t, "gmyc", []string{"x"}, 1),
		mk(t, "abgd", []string{"x"}, 2),
		mk(t, "abgd_1", []string{"x"}, 3),
		mk(t, "abgd", []string{"x"}, 4),
	}
	ws, err := workspace.New(ms, workspace.WithLogger(zap.New(core)))
	require.NoError(t, err)

	var got []string
	for _, nm := range ws.Methods() {
		got = append(got, nm.Name())
	}
	assert.Equal(t, []string{"abgd_2", "gmyc", "abgd_3", "abgd_1", "abgd_4"}, got)

	nm, ok := ws.Method("abgd_3")
	require.True(t, ok)
	assert.True(t, nm.Renamed())
	assert.Equal(t, "abgd", nm.Origin().Name())
	_, ok = ws.Method("abgd")
	assert.False(t, ok)

	assert.Equal(t, 3, logs.FilterMessage("method renamed").Len())
	built := logs.FilterMessage("workspace built").All()
	require.Len(t, built, 1)
	assert.EqualValues(t, 5, built[0].ContextMap()["methods"])
}

func TestSorted(t *testing.T) {
	ms := []*method.Method{
		mk(t, "b", []string{"x"}, 1),
		mk(t, "B", []string{"x"}, 1),
		mk(t, "a", []string{"x"}, 1),
		mk(t, "A_2", []string{"x"}, 1),
	}
	ws, err := workspace.New(ms)
	require.NoError(t, err)

	var got []string
	for _, nm := range ws.Sorted() {
		got = append(got, nm.Name())
	}
	// ordinal comparison: upper case before lower case
	assert.Equal(t, []string{"A_2", "B", "a", "b"}, got)
	assert.True(t, sort.StringsAreSorted(got))
	assert.Len(t, ws.Groupings(), 4)
	assert.Equal(t, 4, ws.Len())
}

func TestNew_DeterministicPool(t *testing.T) {
	build := func() []string {
		ms := []*method.Method{
			mk(t, "A", []string{"q", "c", "m"}, 1, 2, 3),
			mk(t, "B", []string{"m", "a", "z"}, 1, 1, 1),
		}
		ws, err := workspace.New(ms)
		require.NoError(t, err)
		return sampleNames(ws.Samples())
	}
	first := build()
	assert.Equal(t, []string{"a", "c", "m", "q", "z"}, first)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, build())
	}
}

func TestContains(t *testing.T) {
	m := mk(t, "A", []string{"x"}, 1)
	ws1, err := workspace.New([]*method.Method{m})
	require.NoError(t, err)
	ws2, err := workspace.New([]*method.Method{m})
	require.NoError(t, err)

	n1, _ := ws1.Method("A")
	assert.True(t, ws1.Contains(n1))
	assert.False(t, ws2.Contains(n1))
	assert.False(t, ws1.Contains(nil))
}
