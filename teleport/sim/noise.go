package sim

import (
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// A NoiseModel describes a simple error channel layered on top of ideal
// statevector execution.
type NoiseModel struct {
	// GateFlip is the probability of an X error on each operand qubit after
	// every gate.
	GateFlip float64

	// Readout is the probability of flipping each measured bit.
	Readout float64

	// Seed seeds the error-sampling stream. A zero seed gives a fixed
	// default stream.
	Seed uint64
}

func (m NoiseModel) gateFlipper() func() bool {
	return flipper(m.GateFlip, m.Seed+1)
}

func (m NoiseModel) readoutFlipper() func() bool {
	return flipper(m.Readout, m.Seed+2)
}

func flipper(p float64, seed uint64) func() bool {
	if p <= 0 {
		return nil
	}
	b := distuv.Bernoulli{P: p, Src: xrand.NewSource(seed)}
	return func() bool {
		return b.Rand() == 1
	}
}
