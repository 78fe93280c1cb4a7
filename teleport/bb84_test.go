package teleport

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumcomm/teleport/teleport/compress"
)

func TestBB84RoundTripNoCompression(t *testing.T) {
	for _, tc := range []string{"a", "Hello, World!", "multi\nline"} {
		b, err := NewBB84(BB84Opts{
			Text: tc,
			Rand: rand.New(rand.NewSource(42)),
		})
		require.NoError(t, err, tc)
		got, stats, err := b.Run()
		require.NoError(t, err, tc)
		assert.Equal(t, tc, got)
		assert.True(t, stats.Match)
		assert.Equal(t, 8*len(tc), stats.Bits)
	}
}

func TestBB84RoundTripBrotli(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 10)
	b, err := NewBB84(BB84Opts{
		Text:        text,
		Compression: compress.Brotli,
		Shots:       1,
		Rand:        rand.New(rand.NewSource(7)),
	})
	require.NoError(t, err)
	got, stats, err := b.Run()
	require.NoError(t, err)
	assert.Equal(t, text, got)
	assert.True(t, stats.Match)
	// Compression should have shrunk the encoded payload below the raw bit
	// length, and zero-fill re-aligns it to the key length.
	assert.Equal(t, 8*len(text), stats.Bits)
}

func TestBB84RoundTripAdaptive(t *testing.T) {
	tcs := []string{
		"short payload",
		strings.Repeat("a very repetitive long payload ", 20),
	}
	for _, tc := range tcs {
		b, err := NewBB84(BB84Opts{
			Text:        tc,
			Compression: compress.Adaptive,
			Shots:       1,
			Rand:        rand.New(rand.NewSource(11)),
		})
		require.NoError(t, err)
		got, stats, err := b.Run()
		require.NoError(t, err)
		assert.Equal(t, tc, got)
		assert.True(t, stats.Match)
	}
}

func TestBB84AdaptiveShots(t *testing.T) {
	b, err := NewBB84(BB84Opts{
		Text: "Hello, World!",
		Rand: rand.New(rand.NewSource(3)),
	})
	require.NoError(t, err)
	_, stats, err := b.Run()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.Shots, DefaultBB84BaseShots)
	assert.LessOrEqual(t, stats.Shots, DefaultBB84MaxShots)
}

func TestBB84SavesRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	b, err := NewBB84(BB84Opts{
		Text:       "record me",
		Shots:      1,
		OutputPath: path,
		Rand:       rand.New(rand.NewSource(5)),
	})
	require.NoError(t, err)
	got, stats, err := b.Run()
	require.NoError(t, err)

	r, err := LoadRecord(path)
	require.NoError(t, err)
	assert.Equal(t, "record me", r.Text)
	assert.Equal(t, got, r.Received)
	assert.Equal(t, stats.Match, r.Match)
	assert.Equal(t, compress.None, r.Compression)
	assert.Len(t, r.Outcomes, stats.Bits)
	assert.NotEmpty(t, r.ID)
	assert.NotEmpty(t, r.TimeTaken)
}

func TestNewBB84Validation(t *testing.T) {
	_, err := NewBB84(BB84Opts{Rand: rand.New(rand.NewSource(1))})
	assert.Error(t, err, "no text")

	_, err = NewBB84(BB84Opts{Text: "x"})
	assert.Error(t, err, "no randomness source")

	_, err = NewBB84(BB84Opts{
		Text:        "x",
		Compression: compress.Strategy("zstd"),
		Rand:        rand.New(rand.NewSource(1)),
	})
	assert.Error(t, err, "unknown compression")
}

func TestBB84OperandAlignment(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 10)
	b, err := NewBB84(BB84Opts{
		Text:        text,
		Compression: compress.Brotli,
		Rand:        rand.New(rand.NewSource(13)),
	})
	require.NoError(t, err)
	assert.Equal(t, b.payload.Size(), b.keyBits.Size())
	assert.Equal(t, b.payload.Size(), b.baseBits.Size())
	assert.Zero(t, b.payload.Size()%8)
}
