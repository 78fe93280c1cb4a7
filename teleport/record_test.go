package teleport

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumcomm/teleport/teleport/compress"
)

func TestRecordSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")

	r := newRecord()
	r.Text = "Hello"
	r.Received = "Hello"
	r.Match = true
	r.Binary = "0100100001100101011011000110110001101111"
	r.Outcomes = []string{"0", "1", "0"}
	r.Compression = compress.Brotli
	r.Shots = 515
	r.TimeTaken = "0.12 seconds"
	require.NoError(t, r.Save(path))

	got, err := LoadRecord(path)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, r.Text, got.Text)
	assert.Equal(t, r.Outcomes, got.Outcomes)
	assert.Equal(t, compress.Brotli, got.Compression)
	assert.True(t, got.Match)
	assert.NotEmpty(t, got.ID)
}

func TestLoadRecordMissing(t *testing.T) {
	_, err := LoadRecord(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestFormatDuration(t *testing.T) {
	tcs := []struct {
		in   time.Duration
		want string
	}{
		{1500 * time.Millisecond, "1.50 seconds"},
		{59 * time.Second, "59.00 seconds"},
		{90 * time.Second, "1.50 minutes"},
		{2 * time.Hour, "2.00 hours"},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.want, FormatDuration(tc.in))
	}
}
