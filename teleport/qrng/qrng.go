// Package qrng generates random bits by measuring qubits prepared in
// superposition on a simulation backend.
package qrng

import (
	"fmt"

	"github.com/quantumcomm/teleport/teleport/bitstring"
	"github.com/quantumcomm/teleport/teleport/circuit"
	"github.com/quantumcomm/teleport/teleport/sim"
)

// BlockQubits is the register width sampled per circuit. Each block yields
// BlockQubits bits from a single shot.
const BlockQubits = 16

// Bits returns n random bits drawn from Hadamard-loaded circuits executed on
// b.
func Bits(n int, b sim.Backend) (bitstring.Dense, error) {
	if n < 0 {
		return bitstring.Empty(), fmt.Errorf("generating %d random bits", n)
	}
	blocks := (n + BlockQubits - 1) / BlockQubits
	out := bitstring.Empty()
	for i := 0; i < blocks; i++ {
		c := circuit.New(BlockQubits, BlockQubits)
		for q := 0; q < BlockQubits; q++ {
			c.H(q)
		}
		for q := 0; q < BlockQubits; q++ {
			c.MeasureQ(q, q)
		}
		counts, err := b.Run(c, 1)
		if err != nil {
			return bitstring.Empty(), fmt.Errorf("sampling random block: %w", err)
		}
		outcome, err := counts.Top()
		if err != nil {
			return bitstring.Empty(), fmt.Errorf("sampling random block: %w", err)
		}
		for _, ch := range outcome {
			out.AppendBit(ch == '1')
		}
	}
	return out.ZFill(n).Prefix(n), nil
}
