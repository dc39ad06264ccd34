package crumb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplate = "/data/raw/{subject_id}/{session_id}/{modality}/{image}"

func TestNewDefaults(t *testing.T) {
	c, err := New(testTemplate)
	require.NoError(t, err)

	assert.Equal(t, testTemplate, c.Raw())
	assert.Equal(t, testTemplate, c.Path())
	assert.Equal(t, MatchGlob, c.Mode())
	assert.Empty(t, c.Ignore())
	assert.True(t, c.IsAbs())
	assert.Equal(t, []string{"subject_id", "session_id", "modality", "image"}, c.AllArgs())
	assert.Equal(t, c.AllArgs(), c.OpenArgs())
}

func TestNewInvalidPath(t *testing.T) {
	_, err := New("/data/{subject_id")
	require.Error(t, err)

	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrInvalidPath, ce.Type)
}

func TestBindIsCopyOnWrite(t *testing.T) {
	c, err := New(testTemplate)
	require.NoError(t, err)

	bound, err := c.Bind(map[string]string{"subject_id": "subj_01"})
	require.NoError(t, err)

	// The original is untouched.
	assert.Equal(t, testTemplate, c.Path())
	assert.Empty(t, c.Bindings())

	assert.Equal(t, "/data/raw/subj_01/{session_id}/{modality}/{image}", bound.Path())
	assert.Equal(t, testTemplate, bound.Raw())
	assert.Equal(t, []string{"session_id", "modality", "image"}, bound.OpenArgs())
	assert.Equal(t, []string{"subject_id"}, bound.BoundArgs())
	assert.False(t, bound.HasArg("subject_id"))
	assert.True(t, bound.HasArg("session_id"))
}

func TestBindErrors(t *testing.T) {
	c, err := New(testTemplate)
	require.NoError(t, err)

	_, err = c.Bind(map[string]string{"unknown": "x"})
	require.Error(t, err)
	assert.True(t, IsUsage(err))

	_, err = c.Bind(map[string]string{"subject_id": "subj{01}"})
	require.Error(t, err)
	assert.True(t, IsUsage(err))
}

func TestRebindAndUnbind(t *testing.T) {
	c, err := New(testTemplate)
	require.NoError(t, err)

	b1, err := c.Bind(map[string]string{"subject_id": "subj_01"})
	require.NoError(t, err)

	// Rebinding a bound argument replaces its value.
	b2, err := b1.Bind(map[string]string{"subject_id": "subj_02"})
	require.NoError(t, err)
	assert.Equal(t, "/data/raw/subj_02/{session_id}/{modality}/{image}", b2.Path())

	// Rebinding to the same value yields an equal crumb.
	same, err := b1.Bind(map[string]string{"subject_id": "subj_01"})
	require.NoError(t, err)
	assert.True(t, b1.Equal(same))

	// Unbinding reopens the argument.
	reopened, err := b1.Unbind("subject_id")
	require.NoError(t, err)
	assert.Equal(t, testTemplate, reopened.Path())
	assert.True(t, reopened.HasArg("subject_id"))

	_, err = c.Unbind("subject_id")
	require.Error(t, err)
	assert.True(t, IsUsage(err))
}

func TestOpenArgOrdering(t *testing.T) {
	c, err := New(testTemplate)
	require.NoError(t, err)

	first, err := c.FirstOpenArg()
	require.NoError(t, err)
	assert.Equal(t, "subject_id", first)

	last, err := c.LastOpenArg()
	require.NoError(t, err)
	assert.Equal(t, "image", last)

	ok, err := c.IsFirstOpenArg("subject_id")
	require.NoError(t, err)
	assert.True(t, ok)

	bound, err := c.Bind(map[string]string{"subject_id": "subj_01"})
	require.NoError(t, err)
	first, err = bound.FirstOpenArg()
	require.NoError(t, err)
	assert.Equal(t, "session_id", first)

	full, err := c.Bind(map[string]string{
		"subject_id": "subj_01", "session_id": "session_0",
		"modality": "anat", "image": "mprage.nii.gz",
	})
	require.NoError(t, err)
	assert.False(t, full.HasArgs())
	_, err = full.LastOpenArg()
	require.Error(t, err)
	assert.True(t, IsUsage(err))
}

func TestPatternOverride(t *testing.T) {
	c, err := New("/data/raw/{subject_id:subj_0*}/{session_id}")
	require.NoError(t, err)
	assert.Equal(t, "subj_0*", c.Pattern("subject_id"))
	assert.Equal(t, "", c.Pattern("session_id"))

	// Runtime override shadows the inline pattern.
	pc, err := c.SetPattern("subject_id", "subj_02*")
	require.NoError(t, err)
	assert.Equal(t, "subj_02*", pc.Pattern("subject_id"))
	assert.Equal(t, "subj_0*", c.Pattern("subject_id"))

	cleared := pc.ClearPattern("subject_id")
	assert.Equal(t, "subj_0*", cleared.Pattern("subject_id"))

	_, err = c.SetPattern("missing", "*")
	require.Error(t, err)
	assert.True(t, IsUsage(err))

	// Binding an argument drops its override.
	bound, err := pc.Bind(map[string]string{"subject_id": "subj_02"})
	require.NoError(t, err)
	assert.Equal(t, "/data/raw/subj_02/{session_id}", bound.Path())
}

func TestArgDepthFollowsBindings(t *testing.T) {
	c, err := New("{base_dir}/raw/{subject_id}/{image}")
	require.NoError(t, err)

	d, err := c.ArgDepth("subject_id")
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	bound, err := c.Bind(map[string]string{"base_dir": "/data/store"})
	require.NoError(t, err)
	d, err = bound.ArgDepth("subject_id")
	require.NoError(t, err)
	assert.Equal(t, 4, d)
}

func TestEqual(t *testing.T) {
	a, err := New(testTemplate, WithIgnore(".*"))
	require.NoError(t, err)
	b, err := New(testTemplate, WithIgnore(".*"))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	other, err := New(testTemplate)
	require.NoError(t, err)
	assert.False(t, a.Equal(other), "different ignore lists")
	assert.False(t, a.Equal(nil))

	regex, err := New(testTemplate, WithIgnore(".*"), WithMatchMode(MatchRegex))
	require.NoError(t, err)
	assert.False(t, a.Equal(regex), "different match modes")

	bound, err := a.Bind(map[string]string{"subject_id": "subj_01"})
	require.NoError(t, err)
	assert.False(t, a.Equal(bound))
}

func TestSplit(t *testing.T) {
	c, err := New(testTemplate)
	require.NoError(t, err)
	prefix, rest := c.Split()
	assert.Equal(t, "/data/raw", prefix)
	assert.Equal(t, "{subject_id}/{session_id}/{modality}/{image}", rest)

	bound, err := c.Bind(map[string]string{"subject_id": "subj_01"})
	require.NoError(t, err)
	prefix, rest = bound.Split()
	assert.Equal(t, "/data/raw/subj_01", prefix)
	assert.Equal(t, "{session_id}/{modality}/{image}", rest)

	full, err := New("/data/raw/fixed")
	require.NoError(t, err)
	prefix, rest = full.Split()
	assert.Equal(t, "/data/raw/fixed", prefix)
	assert.Equal(t, "", rest)

	rootArg, err := New("{base_dir}/raw")
	require.NoError(t, err)
	prefix, _ = rootArg.Split()
	assert.Equal(t, "", prefix)
	assert.False(t, rootArg.IsAbs())
}
