package ops

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/crumb/internal/crumb"
)

func TestGroupByPattern(t *testing.T) {
	fs := memfs.New()
	for _, subj := range []string{"subj_01", "subj_02"} {
		writeFile(t, fs, "/data/raw/"+subj+"/t1_mprage.nii.gz")
		writeFile(t, fs, "/data/raw/"+subj+"/rest_bold.nii.gz")
	}

	c := newCrumb(t, fs, "/data/raw/{subject_id}/{image}")

	grouped, err := GroupByPattern(c, "image", map[string]string{
		"anatomical": "t1_*",
		"functional": "rest_*",
		"diffusion":  "dwi_*",
	})
	require.NoError(t, err)

	require.Len(t, grouped, 2, "empty groups are omitted")
	assert.Len(t, grouped["anatomical"], 2)
	assert.Len(t, grouped["functional"], 2)
	assert.NotContains(t, grouped, "diffusion")

	assert.Equal(t, "/data/raw/subj_01/t1_mprage.nii.gz", grouped["anatomical"][0].Path)
	for _, r := range grouped["anatomical"] {
		assert.Equal(t, crumb.KindPath, r.Kind)
	}
}

func TestGroupByPatternUnknownArg(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/data/raw/subj_01/a.nii.gz")
	c := newCrumb(t, fs, "/data/raw/{subject_id}/{image}")

	_, err := GroupByPattern(c, "modality", map[string]string{"all": "*"})
	require.Error(t, err)
	assert.True(t, crumb.IsUsage(err))
}
