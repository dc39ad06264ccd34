package ops

import (
	"bytes"
	"io"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyTreeReshapesLayout(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/data/raw/subj_01/a.nii.gz")
	writeFile(t, fs, "/data/raw/subj_01/b.nii.gz")
	writeFile(t, fs, "/data/raw/subj_02/a.nii.gz")

	src := newCrumb(t, fs, "/data/raw/{subject_id}/{image}")
	dst := newCrumb(t, fs, "/mirror/{image}/{subject_id}")

	var out bytes.Buffer
	err := CopyTree(src, dst, TransferOptions{Verbose: true, Out: &out})
	require.NoError(t, err)

	// The destination swaps the argument order, regrouping by image.
	for _, p := range []string{
		"/mirror/a.nii.gz/subj_01",
		"/mirror/b.nii.gz/subj_01",
		"/mirror/a.nii.gz/subj_02",
	} {
		_, err := fs.Stat(p)
		assert.NoError(t, err, p)
	}
	assert.Contains(t, out.String(), "Copying")

	// Content travels with the file.
	f, err := fs.Open("/mirror/a.nii.gz/subj_01")
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "/data/raw/subj_01/a.nii.gz", string(data))
}

func TestCopyTreeExistOK(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/data/raw/subj_01/a.nii.gz")
	writeFile(t, fs, "/backup/subj_01/a.nii.gz")

	src := newCrumb(t, fs, "/data/raw/{subject_id}/{image}")
	dst := newCrumb(t, fs, "/backup/{subject_id}/{image}")

	err := CopyTree(src, dst, TransferOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	err = CopyTree(src, dst, TransferOptions{ExistOK: true})
	require.NoError(t, err)
}

func TestCopyTreeDirectorySource(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/data/raw/subj_01/anat/a.nii.gz")
	writeFile(t, fs, "/data/raw/subj_01/anat/b.nii.gz")

	// The resolved source is a directory; its tree is copied recursively.
	src := newCrumb(t, fs, "/data/raw/{subject_id}")
	dst := newCrumb(t, fs, "/backup/{subject_id}")

	err := CopyTree(src, dst, TransferOptions{})
	require.NoError(t, err)
	_, err = fs.Stat("/backup/subj_01/anat/a.nii.gz")
	assert.NoError(t, err)
	_, err = fs.Stat("/backup/subj_01/anat/b.nii.gz")
	assert.NoError(t, err)
}

func TestCopyTreeDestinationMissingArg(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/data/raw/subj_01/a.nii.gz")

	src := newCrumb(t, fs, "/data/raw/{subject_id}/{image}")
	dst := newCrumb(t, fs, "/backup/{subject_id}/{session_id}/{image}")

	err := CopyTree(src, dst, TransferOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session_id")
}

func TestLinkTree(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/data/raw/subj_01/a.nii.gz")
	writeFile(t, fs, "/data/raw/subj_02/a.nii.gz")

	src := newCrumb(t, fs, "/data/raw/{subject_id}/{image}")
	dst := newCrumb(t, fs, "/analysis/{subject_id}/{image}")

	err := LinkTree(src, dst, TransferOptions{})
	require.NoError(t, err)

	target, err := fs.Readlink("/analysis/subj_01/a.nii.gz")
	require.NoError(t, err)
	assert.Equal(t, "/data/raw/subj_01/a.nii.gz", target)

	// Relinking fails unless overwriting is allowed.
	err = LinkTree(src, dst, TransferOptions{})
	require.Error(t, err)
	err = LinkTree(src, dst, TransferOptions{ExistOK: true})
	require.NoError(t, err)
}

func TestTransferFullyBoundPair(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/data/raw/report.txt")

	src := newCrumb(t, fs, "/data/raw/report.txt")
	dst := newCrumb(t, fs, "/backup/report.txt")

	err := CopyTree(src, dst, TransferOptions{})
	require.NoError(t, err)
	_, err = fs.Stat("/backup/report.txt")
	assert.NoError(t, err)
}
