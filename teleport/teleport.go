// Package teleport implements a simulated quantum teleportation pipeline
// and a BB84-style bit encoding variant on top of a classical circuit
// simulator. Text is converted to bits, each bit is encoded into a small
// fixed circuit, the circuit is sampled on a backend, and the plurality
// outcomes are decoded back into text.
package teleport

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/quantumcomm/teleport/teleport/sim"
)

// Stats packages together a collection of potentially interesting metrics
// pertaining to a pipeline run.
type Stats struct {
	// Bits is the number of encoded bits, i.e. circuits executed.
	Bits int

	// Shots is the per-circuit sample count actually used.
	Shots int

	// Match reports whether the decoded text equals the sent text.
	Match bool

	// PercentMatch is the character-level similarity of sent and received
	// text.
	PercentMatch float64

	// Elapsed is the wall time spent executing circuits and decoding.
	Elapsed time.Duration
}

// An Opts packages together the arguments necessary to construct a
// Teleporter. Exactly one of FilePath and Text must be set.
type Opts struct {
	// FilePath reads the text to send from a file.
	FilePath string

	// Text is the literal text to send.
	Text string

	// Shots fixes the per-circuit sample count. Non-positive values select
	// the adaptive heuristic.
	Shots int

	// Noise, when non-nil, runs circuits on a noisy backend. Ignored when
	// Backend is set.
	Noise *sim.NoiseModel

	// Backend overrides the simulation backend. When nil, a statevector
	// backend is built from Rand.
	Backend sim.Backend

	// Rand provides measurement randomness for the default backend. Must be
	// non-nil unless Backend is set.
	Rand *rand.Rand

	// Logger receives pipeline progress and mismatch reports. Defaults to a
	// no-op logger.
	Logger *zerolog.Logger

	// Progress, when non-nil, is invoked after each circuit completes.
	Progress func(done, total int)
}

func (o Opts) backend() (sim.Backend, error) {
	if o.Backend != nil {
		return o.Backend, nil
	}
	if o.Rand == nil {
		return nil, errors.New("must provide Rand or Backend")
	}
	if o.Noise != nil {
		return sim.NewNoisy(o.Rand, *o.Noise), nil
	}
	return sim.NewLocal(o.Rand), nil
}

func (o Opts) logger() zerolog.Logger {
	return loggerOrNop(o.Logger)
}
