package teleport

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/quantumcomm/teleport/teleport/bitstring"
	"github.com/quantumcomm/teleport/teleport/circuit"
	"github.com/quantumcomm/teleport/teleport/compress"
	"github.com/quantumcomm/teleport/teleport/sim"
)

// A BB84Opts packages together the arguments necessary to construct a BB84
// pipeline.
type BB84Opts struct {
	// Text is the literal text to send. Must be non-empty.
	Text string

	// Compression selects the payload compression strategy.
	Compression compress.Strategy

	// Shots fixes the per-circuit sample count. Non-positive values select
	// the adaptive heuristic.
	Shots int

	// Noise, when non-nil, runs circuits on a noisy backend. Ignored when
	// Backend is set.
	Noise *sim.NoiseModel

	// Backend overrides the simulation backend. When nil, a statevector
	// backend is built from Rand.
	Backend sim.Backend

	// Rand provides the key and base bit streams, and measurement
	// randomness for the default backend. Must be non-nil.
	Rand *rand.Rand

	// OutputPath, when non-empty, receives a JSON run record after each
	// Run.
	OutputPath string

	// Logger receives pipeline progress and mismatch reports. Defaults to a
	// no-op logger.
	Logger *zerolog.Logger

	// Progress, when non-nil, is invoked after each circuit completes.
	Progress func(done, total int)
}

// A BB84 encodes text bit-by-bit into single-qubit circuits, in the manner
// of a BB84 sender, runs them on a simulation backend, and decodes the
// plurality outcomes back into text. The name labels the encoding scheme;
// there is no basis negotiation and no security claim.
type BB84 struct {
	text        string
	payload     bitstring.Dense
	keyBits     bitstring.Dense
	baseBits    bitstring.Dense
	compression compress.Strategy
	backend     sim.Backend
	shots       int
	noise       bool
	outputPath  string
	logger      zerolog.Logger
	progress    func(done, total int)
}

// NewBB84 returns a new BB84 pipeline, configured in accordance with opts,
// or an error if the options are nonsensical.
func NewBB84(opts BB84Opts) (*BB84, error) {
	if opts.Text == "" {
		return nil, errors.New("must provide Text")
	}
	if opts.Rand == nil {
		return nil, errors.New("must provide Rand")
	}
	backend := opts.Backend
	if backend == nil {
		if opts.Noise != nil {
			backend = sim.NewNoisy(opts.Rand, *opts.Noise)
		} else {
			backend = sim.NewLocal(opts.Rand)
		}
	}
	compression := opts.Compression
	if compression == "" {
		compression = compress.None
	}

	binary := bitstring.FromText(opts.Text)
	keyBits := randomBits(opts.Rand, binary.Size())
	baseBits := randomBits(opts.Rand, binary.Size())

	compressed, err := compress.Compress(opts.Text, compression)
	if err != nil {
		return nil, fmt.Errorf("compressing payload: %w", err)
	}
	payload := bitstring.FromText(compressed)

	// Align all operand lengths before encoding. Zero-fill always pads by
	// whole bytes here, since every operand is byte-aligned.
	maxLen := payload.Size()
	if keyBits.Size() > maxLen {
		maxLen = keyBits.Size()
	}
	if baseBits.Size() > maxLen {
		maxLen = baseBits.Size()
	}
	payload = payload.ZFill(maxLen)
	keyBits = keyBits.ZFill(maxLen)
	baseBits = baseBits.ZFill(maxLen)

	return &BB84{
		text:        opts.Text,
		payload:     payload,
		keyBits:     keyBits,
		baseBits:    baseBits,
		compression: compression,
		backend:     backend,
		shots:       opts.Shots,
		noise:       opts.Noise != nil,
		outputPath:  opts.OutputPath,
		logger:      loggerOrNop(opts.Logger),
		progress:    opts.Progress,
	}, nil
}

// Run executes the encoding circuits and decodes the result. The received
// text is returned even when it does not match the sent text; mismatches
// are reported, not corrected.
func (b *BB84) Run() (string, Stats, error) {
	var stats Stats
	stats.Bits = b.payload.Size()
	stats.Shots = b.shots
	if stats.Shots <= 0 {
		stats.Shots = AdaptiveShotsSized(b.payload.Size(), b.payload.Size(),
			DefaultConfidence, DefaultBB84BaseShots, DefaultBB84MaxShots)
	}
	b.logger.Info().
		Int("bits", stats.Bits).
		Int("shots", stats.Shots).
		Str("compression", string(b.compression)).
		Bool("noise", b.noise).
		Str("backend", b.backend.Name()).
		Msg("running BB84 encoding")
	b.logger.Debug().
		Int("key_bits", b.keyBits.Size()).
		Int("base_bits", b.baseBits.Size()).
		Msg("operand lengths aligned")

	start := time.Now()
	received := bitstring.Empty()
	outcomes := make([]string, 0, b.payload.Size())
	for i := 0; i < b.payload.Size(); i++ {
		c := circuit.BB84Encode(b.payload.Get(i))
		counts, err := b.backend.Run(c, stats.Shots)
		if err != nil {
			return "", stats, fmt.Errorf("running circuit %d: %w", i, err)
		}
		outcome, err := counts.Top()
		if err != nil {
			return "", stats, fmt.Errorf("running circuit %d: %w", i, err)
		}
		outcomes = append(outcomes, outcome)
		received.AppendBit(outcome[0] == '1')
		if b.progress != nil {
			b.progress(i+1, b.payload.Size())
		}
	}
	stats.Elapsed = time.Since(start)

	decoded := bitstring.Join(received.Chunks(8))
	text, err := decoded.Text()
	if err != nil {
		return "", stats, fmt.Errorf("decoding received bits: %w", err)
	}
	// Zero-fill alignment shows up as leading NUL bytes after rechunking.
	text = strings.TrimLeft(text, "\x00")
	text, err = compress.Decompress(text, b.compression)
	if err != nil {
		return "", stats, fmt.Errorf("decompressing received payload: %w", err)
	}

	cmp := Compare(b.text, text)
	stats.Match = text == b.text
	stats.PercentMatch = cmp.PercentMatch
	b.logger.Info().
		Dur("elapsed", stats.Elapsed).
		Str("time_taken", FormatDuration(stats.Elapsed)).
		Bool("match", stats.Match).
		Msg("simulation finished")
	if !stats.Match {
		b.logger.Warn().
			Float64("percent_match", cmp.PercentMatch).
			Msg("data mismatch")
		b.logger.Debug().
			Str("sent", cmp.MarkedSent).
			Str("received", cmp.MarkedReceived).
			Msg("marked diff")
	}

	if b.outputPath != "" {
		r := newRecord()
		r.Text = b.text
		r.Received = text
		r.Match = stats.Match
		r.Binary = b.payload.String()
		r.Outcomes = outcomes
		r.Compression = b.compression
		r.Shots = stats.Shots
		r.Noise = b.noise
		r.TimeTaken = FormatDuration(stats.Elapsed)
		if err := r.Save(b.outputPath); err != nil {
			return "", stats, err
		}
		b.logger.Info().Str("path", b.outputPath).Str("record_id", r.ID).Msg("run record saved")
	}
	return text, stats, nil
}

func randomBits(rng *rand.Rand, n int) bitstring.Dense {
	d := bitstring.Empty()
	for i := 0; i < n; i++ {
		d.AppendBit(rng.Intn(2) == 1)
	}
	return d
}

func loggerOrNop(l *zerolog.Logger) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return *l
}
