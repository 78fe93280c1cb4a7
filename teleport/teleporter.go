package teleport

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/quantumcomm/teleport/teleport/bitstring"
	"github.com/quantumcomm/teleport/teleport/circuit"
	"github.com/quantumcomm/teleport/teleport/sim"
)

// A Teleporter encodes text into per-bit teleportation circuits, runs them
// on a simulation backend, and decodes the measured outcomes back into
// text.
type Teleporter struct {
	text     string
	bits     bitstring.Dense
	circuits []*circuit.Circuit
	backend  sim.Backend
	shots    int
	noise    bool
	logger   zerolog.Logger
	progress func(done, total int)
}

// NewTeleporter returns a new Teleporter, configured in accordance with
// opts, or an error if the options are nonsensical.
func NewTeleporter(opts Opts) (*Teleporter, error) {
	if (opts.FilePath == "") == (opts.Text == "") {
		return nil, errors.New("exactly one of {FilePath, Text} must be specified")
	}
	backend, err := opts.backend()
	if err != nil {
		return nil, err
	}
	text := opts.Text
	if opts.FilePath != "" {
		text, err = TextFromFile(opts.FilePath)
		if err != nil {
			return nil, err
		}
	}
	bits := bitstring.FromText(text)
	circuits := make([]*circuit.Circuit, 0, bits.Size())
	for i := 0; i < bits.Size(); i++ {
		circuits = append(circuits, circuit.Teleportation(bits.Get(i)))
	}
	return &Teleporter{
		text:     text,
		bits:     bits,
		circuits: circuits,
		backend:  backend,
		shots:    opts.Shots,
		noise:    opts.Noise != nil,
		logger:   opts.logger(),
		progress: opts.Progress,
	}, nil
}

// Run executes the teleportation circuits and decodes the result. The
// received text is returned even when it does not match the sent text; the
// mismatch is reported via Stats and the logger, not corrected.
func (tp *Teleporter) Run() (string, Stats, error) {
	var stats Stats
	stats.Bits = len(tp.circuits)
	stats.Shots = tp.shots
	if stats.Shots <= 0 {
		complexity := 0
		if len(tp.circuits) > 0 {
			complexity = tp.circuits[0].Complexity()
		}
		stats.Shots = AdaptiveShots(complexity, DefaultConfidence, DefaultTeleportBaseShots, DefaultTeleportMaxShots)
	}
	tp.logger.Info().
		Int("chars", len(tp.text)).
		Int("bits", stats.Bits).
		Int("shots", stats.Shots).
		Bool("noise", tp.noise).
		Str("backend", tp.backend.Name()).
		Msg("processing teleportation circuits")

	start := time.Now()
	received := bitstring.Empty()
	for i, c := range tp.circuits {
		counts, err := tp.backend.Run(c, stats.Shots)
		if err != nil {
			return "", stats, fmt.Errorf("running circuit %d: %w", i, err)
		}
		outcome, err := counts.Top()
		if err != nil {
			return "", stats, fmt.Errorf("running circuit %d: %w", i, err)
		}
		// The teleported bit lands, flipped, on the highest classical bit.
		received.AppendBit(outcome[0] == '0')
		if tp.progress != nil {
			tp.progress(i+1, len(tp.circuits))
		}
	}
	stats.Elapsed = time.Since(start)

	decoded := bitstring.Join(received.Chunks(8))
	text, err := decoded.Text()
	if err != nil {
		return "", stats, fmt.Errorf("decoding received bits: %w", err)
	}
	cmp := Compare(tp.text, text)
	stats.Match = text == tp.text
	stats.PercentMatch = cmp.PercentMatch
	tp.logger.Info().
		Dur("elapsed", stats.Elapsed).
		Str("time_taken", FormatDuration(stats.Elapsed)).
		Bool("match", stats.Match).
		Msg("simulation finished")
	if !stats.Match {
		tp.logger.Warn().
			Float64("percent_match", cmp.PercentMatch).
			Msg("data mismatch")
		tp.logger.Debug().
			Str("sent", cmp.MarkedSent).
			Str("received", cmp.MarkedReceived).
			Msg("marked diff")
	}
	return text, stats, nil
}
