package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/crumb/internal/crumb"
)

func testValuesMap() crumb.ValuesMap {
	return crumb.ValuesMap{
		crumb.Record{}.Extend("subject_id", "subj_01").Extend("session_id", "session_0"),
		crumb.Record{}.Extend("subject_id", "subj_01").Extend("session_id", "session_1"),
		crumb.Record{}.Extend("subject_id", "subj_02").Extend("session_id", "session_0"),
	}
}

func TestColumns(t *testing.T) {
	cols, err := Columns(testValuesMap(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"subj_01", "subj_01", "subj_02"}, cols["subject_id"])
	assert.Equal(t, []string{"session_0", "session_1", "session_0"}, cols["session_id"])

	cols, err = Columns(testValuesMap(), []string{"session_id"})
	require.NoError(t, err)
	assert.Len(t, cols, 1)

	_, err = Columns(testValuesMap(), []string{"missing"})
	require.Error(t, err)

	_, err = Columns(nil, nil)
	require.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testValuesMap()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "subj_01,session_0", lines[0])
	assert.Equal(t, "subj_02,session_0", lines[2])
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, testValuesMap())

	out := buf.String()
	assert.Contains(t, out, "SUBJECT_ID")
	assert.Contains(t, out, "SESSION_ID")
	assert.Contains(t, out, "subj_02")

	// An empty map renders nothing.
	buf.Reset()
	Render(&buf, nil)
	assert.Empty(t, buf.String())
}
