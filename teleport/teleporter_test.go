package teleport

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeleporterRoundTrip(t *testing.T) {
	tcs := []string{"a", "Hello, World!", "né ☺"}
	for _, tc := range tcs {
		tp, err := NewTeleporter(Opts{
			Text: tc,
			Rand: rand.New(rand.NewSource(42)),
		})
		require.NoError(t, err, tc)

		got, stats, err := tp.Run()
		require.NoError(t, err, tc)
		assert.Equal(t, tc, got)
		assert.True(t, stats.Match)
		assert.Equal(t, 100.0, stats.PercentMatch)
		assert.Equal(t, 8*len(tc), stats.Bits)
	}
}

func TestTeleporterAdaptiveShots(t *testing.T) {
	tp, err := NewTeleporter(Opts{
		Text: "hi",
		Rand: rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	_, stats, err := tp.Run()
	require.NoError(t, err)
	// The template's complexity saturates the tiny teleport shot budget.
	assert.Equal(t, DefaultTeleportMaxShots, stats.Shots)
}

func TestTeleporterFixedShots(t *testing.T) {
	tp, err := NewTeleporter(Opts{
		Text:  "hi",
		Shots: 3,
		Rand:  rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	_, stats, err := tp.Run()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Shots)
}

func TestTeleporterFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.txt")
	require.NoError(t, os.WriteFile(path, []byte("from a file"), 0o644))

	tp, err := NewTeleporter(Opts{
		FilePath: path,
		Rand:     rand.New(rand.NewSource(7)),
	})
	require.NoError(t, err)
	got, stats, err := tp.Run()
	require.NoError(t, err)
	assert.Equal(t, "from a file", got)
	assert.True(t, stats.Match)
}

func TestTeleporterProgress(t *testing.T) {
	var calls, lastDone, lastTotal int
	tp, err := NewTeleporter(Opts{
		Text: "ab",
		Rand: rand.New(rand.NewSource(9)),
		Progress: func(done, total int) {
			calls++
			lastDone, lastTotal = done, total
		},
	})
	require.NoError(t, err)
	_, _, err = tp.Run()
	require.NoError(t, err)
	assert.Equal(t, 16, calls)
	assert.Equal(t, 16, lastDone)
	assert.Equal(t, 16, lastTotal)
}

func TestNewTeleporterValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := NewTeleporter(Opts{Rand: rng})
	assert.Error(t, err, "no input")

	_, err = NewTeleporter(Opts{Text: "x", FilePath: "y", Rand: rng})
	assert.Error(t, err, "both inputs")

	_, err = NewTeleporter(Opts{Text: "x"})
	assert.Error(t, err, "no randomness source")

	_, err = NewTeleporter(Opts{FilePath: filepath.Join(t.TempDir(), "absent.txt"), Rand: rng})
	assert.Error(t, err, "missing file")
}
