package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/crumb/internal/config"
	"github.com/tacogips/crumb/internal/crumb"
)

func TestNewCrumbMergesConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	c, err := NewCrumb(CrumbSpec{Path: "/data/{subject_id}", Ignore: []string{"*.tmp"}}, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{".*", "*.tmp"}, c.Ignore())
	assert.Equal(t, crumb.MatchGlob, c.Mode())

	c, err = NewCrumb(CrumbSpec{Path: "/data/{subject_id}", Regex: true}, cfg)
	require.NoError(t, err)
	assert.Equal(t, crumb.MatchRegex, c.Mode())

	// A nil config falls back to the defaults.
	c, err = NewCrumb(CrumbSpec{Path: "/data/{subject_id}"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{".*"}, c.Ignore())
}

func TestNewCrumbAbsolutizes(t *testing.T) {
	c, err := NewCrumb(CrumbSpec{Path: "data/{subject_id}"}, nil)
	require.NoError(t, err)
	assert.True(t, c.IsAbs())

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "data", "{subject_id}"), c.Path())
}

func TestNewCrumbInvalidPath(t *testing.T) {
	_, err := NewCrumb(CrumbSpec{Path: "/data/{subject_id"}, nil)
	require.Error(t, err)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, SpecInvalid, appErr.Type)
}

// newTestTree creates a small subject/image layout under a temp dir.
func newTestTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, subj := range []string{"subj_01", "subj_02"} {
		sub := filepath.Join(dir, "raw", subj)
		require.NoError(t, os.MkdirAll(sub, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(sub, "a.nii.gz"), []byte("a"), 0o644))
	}
	return dir
}

func TestLs(t *testing.T) {
	dir := newTestTree(t)
	spec := CrumbSpec{Path: filepath.Join(dir, "raw", "{subject_id}", "{image}")}

	result, err := Ls(spec, nil, LsOptions{Arg: "subject_id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"subj_01", "subj_02"}, result.Entries)

	result, err = Ls(spec, nil, LsOptions{FullPath: true})
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, filepath.Join(dir, "raw", "subj_01", "a.nii.gz"), result.Entries[0])

	_, err = Ls(CrumbSpec{Path: filepath.Join(dir, "missing", "{x}")}, nil, LsOptions{})
	require.Error(t, err)
	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ListFailed, appErr.Type)
}

func TestMap(t *testing.T) {
	dir := newTestTree(t)
	spec := CrumbSpec{Path: filepath.Join(dir, "raw", "{subject_id}", "{image}")}

	vm, err := Map(spec, nil, "")
	require.NoError(t, err)
	require.Len(t, vm, 2)
	assert.Equal(t, []string{"subject_id", "image"}, vm[0].Names())

	vm, err = Map(spec, nil, "subject_id")
	require.NoError(t, err)
	assert.Equal(t, []string{"subj_01", "subj_02"}, vm.Values("subject_id"))
}

func TestIntersectAndDiff(t *testing.T) {
	dir := newTestTree(t)
	backup := filepath.Join(dir, "backup", "subj_02")
	require.NoError(t, os.MkdirAll(backup, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(backup, "a.nii.gz"), []byte("a"), 0o644))

	a := CrumbSpec{Path: filepath.Join(dir, "raw", "{subject_id}", "{image}")}
	b := CrumbSpec{Path: filepath.Join(dir, "backup", "{subject_id}", "{image}")}

	vm, err := Intersect(a, b, nil, CompareOptions{On: []string{"subject_id"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"subj_02"}, vm.Values("subject_id"))

	vm, err = Diff(a, b, nil, CompareOptions{On: []string{"subject_id"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"subj_01"}, vm.Values("subject_id"))
}

func TestCopyAndLink(t *testing.T) {
	dir := newTestTree(t)
	src := CrumbSpec{Path: filepath.Join(dir, "raw", "{subject_id}", "{image}")}
	dstCopy := CrumbSpec{Path: filepath.Join(dir, "copy", "{subject_id}", "{image}")}
	dstLink := CrumbSpec{Path: filepath.Join(dir, "link", "{subject_id}", "{image}")}

	require.NoError(t, Copy(src, dstCopy, nil, TransferOptions{}))
	data, err := os.ReadFile(filepath.Join(dir, "copy", "subj_01", "a.nii.gz"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))

	require.NoError(t, Link(src, dstLink, nil, TransferOptions{}))
	target, err := os.Readlink(filepath.Join(dir, "link", "subj_02", "a.nii.gz"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "raw", "subj_02", "a.nii.gz"), target)
}

func TestMktree(t *testing.T) {
	dir := t.TempDir()
	valuesPath := filepath.Join(dir, "values.yaml")
	values := `- subject_id: subj_01
  session_id: session_0
- subject_id: subj_02
  session_id: session_0
`
	require.NoError(t, os.WriteFile(valuesPath, []byte(values), 0o644))

	spec := CrumbSpec{Path: filepath.Join(dir, "raw", "{subject_id}", "{session_id}")}
	paths, err := Mktree(spec, nil, valuesPath)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Without a values file only the fixed prefix is created.
	prefixSpec := CrumbSpec{Path: filepath.Join(dir, "derived", "{subject_id}")}
	paths, err = Mktree(prefixSpec, nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "derived")}, paths)
}

func TestLoadValuesFileErrors(t *testing.T) {
	_, err := LoadValuesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ValuesFileInvalid, appErr.Type)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("not: a: list"), 0o644))
	_, err = LoadValuesFile(bad)
	require.Error(t, err)
}
