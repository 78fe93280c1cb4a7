// Package compress implements the payload compression strategies used by
// the BB84 encoding pipeline. Brotli output is base64-framed so that the
// compressed payload stays representable as text on its way through the
// bit-encoding stages.
package compress

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

// A Strategy names a compression scheme.
type Strategy string

const (
	// None applies no compression.
	None Strategy = "none"

	// Brotli always compresses with brotli.
	Brotli Strategy = "brotli"

	// Adaptive compresses with brotli only above AdaptiveThreshold bytes;
	// shorter payloads pass through untouched.
	Adaptive Strategy = "adaptive"
)

// AdaptiveThreshold is the payload size, in bytes, above which the adaptive
// strategy switches from passthrough to brotli.
const AdaptiveThreshold = 128

// ParseStrategy maps a flag value to a Strategy. The empty string selects
// None.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case None, Brotli, Adaptive:
		return Strategy(s), nil
	case "":
		return None, nil
	}
	return "", fmt.Errorf("unsupported compression strategy %q", s)
}

// Compress encodes data according to the given strategy.
func Compress(data string, s Strategy) (string, error) {
	switch s {
	case None:
		return data, nil
	case Brotli:
		return brotliCompress(data)
	case Adaptive:
		if len(data) > AdaptiveThreshold {
			return brotliCompress(data)
		}
		return data, nil
	}
	return "", fmt.Errorf("unsupported compression strategy %q", s)
}

// Decompress reverses Compress. For the adaptive strategy decompression is
// best-effort: input that does not decode as a compressed payload is
// returned unchanged, since short payloads were never compressed.
func Decompress(data string, s Strategy) (string, error) {
	switch s {
	case None:
		return data, nil
	case Brotli:
		return brotliDecompress(data)
	case Adaptive:
		out, err := brotliDecompress(data)
		if err != nil {
			return data, nil
		}
		return out, nil
	}
	return "", fmt.Errorf("unsupported compression strategy %q", s)
}

func brotliCompress(data string) (string, error) {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	if _, err := w.Write([]byte(data)); err != nil {
		return "", fmt.Errorf("compressing payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("compressing payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func brotliDecompress(data string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("decoding payload: %w", err)
	}
	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(raw)))
	if err != nil {
		return "", fmt.Errorf("decompressing payload: %w", err)
	}
	return string(out), nil
}
