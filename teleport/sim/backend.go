package sim

import (
	"fmt"
	"math/rand"

	"github.com/quantumcomm/teleport/teleport/circuit"
)

// MaxQubits bounds the register size a statevector backend will accept. The
// state grows as 2^qubits, so this is a memory guard, not a correctness
// limit.
const MaxQubits = 20

// A Backend executes circuits and reports measurement statistics.
type Backend interface {
	// Name identifies the backend in logs and run records.
	Name() string

	// Run executes c the requested number of times and returns the
	// accumulated measurement outcomes.
	Run(c *circuit.Circuit, shots int) (Counts, error)
}

// A Local is an ideal statevector backend.
type Local struct {
	rng *rand.Rand
}

// NewLocal returns an ideal statevector backend drawing measurement
// randomness from rng.
func NewLocal(rng *rand.Rand) *Local {
	return &Local{rng: rng}
}

// Name implements the Backend interface.
func (l *Local) Name() string { return "statevector" }

// Run implements the Backend interface.
func (l *Local) Run(c *circuit.Circuit, shots int) (Counts, error) {
	e := executor{rng: l.rng}
	return e.run(c, shots)
}

// A Noisy decorates the ideal statevector backend with a NoiseModel.
type Noisy struct {
	rng   *rand.Rand
	model NoiseModel
}

// NewNoisy returns a statevector backend that injects errors according to
// model.
func NewNoisy(rng *rand.Rand, model NoiseModel) *Noisy {
	return &Noisy{rng: rng, model: model}
}

// Name implements the Backend interface.
func (n *Noisy) Name() string { return "statevector-noisy" }

// Run implements the Backend interface.
func (n *Noisy) Run(c *circuit.Circuit, shots int) (Counts, error) {
	e := executor{
		rng:      n.rng,
		gateFlip: n.model.gateFlipper(),
		readFlip: n.model.readoutFlipper(),
	}
	return e.run(c, shots)
}

// An executor runs a circuit shot by shot. The flip closures are nil for
// ideal execution.
type executor struct {
	rng      *rand.Rand
	gateFlip func() bool
	readFlip func() bool
}

func (e *executor) run(c *circuit.Circuit, shots int) (Counts, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("running circuit with %d shots", shots)
	}
	if c.Qubits <= 0 || c.Qubits > MaxQubits {
		return nil, fmt.Errorf("circuit wants %d qubits, backend supports 1..%d", c.Qubits, MaxQubits)
	}
	if err := validate(c); err != nil {
		return nil, err
	}
	counts := make(Counts)
	for s := 0; s < shots; s++ {
		key, err := e.runShot(c)
		if err != nil {
			return nil, err
		}
		counts[key]++
	}
	return counts, nil
}

func (e *executor) runShot(c *circuit.Circuit) (string, error) {
	v := newVector(c.Qubits)
	clbits := make([]byte, c.Clbits)
	for i := range clbits {
		clbits[i] = '0'
	}
	for _, g := range c.Gates {
		switch g.Kind {
		case circuit.X:
			v.applyX(g.Qubits[0])
		case circuit.ID:
			// no-op
		case circuit.H:
			v.applyH(g.Qubits[0])
		case circuit.CX:
			v.applyCX(g.Qubits[0], g.Qubits[1])
		case circuit.CZ:
			v.applyCZ(g.Qubits[0], g.Qubits[1])
		case circuit.CCX:
			v.applyCCX(g.Qubits[0], g.Qubits[1], g.Qubits[2])
		case circuit.Barrier:
			continue
		case circuit.Measure:
			out := v.measure(g.Qubits[0], e.rng)
			if e.readFlip != nil && e.readFlip() {
				out = 1 - out
			}
			clbits[g.Clbit] = byte('0' + out)
			continue
		default:
			return "", fmt.Errorf("unsupported gate kind %q", g.Kind)
		}
		if e.gateFlip != nil && g.Kind != circuit.Barrier {
			for _, q := range g.Qubits {
				if e.gateFlip() {
					v.applyX(q)
				}
			}
		}
	}
	// Outcome strings read the classical register highest bit first.
	key := make([]byte, len(clbits))
	for i, b := range clbits {
		key[len(clbits)-1-i] = b
	}
	return string(key), nil
}

func validate(c *circuit.Circuit) error {
	for _, g := range c.Gates {
		for _, q := range g.Qubits {
			if q < 0 || q >= c.Qubits {
				return fmt.Errorf("gate %s targets qubit %d of a %d-qubit register", g.Kind, q, c.Qubits)
			}
		}
		if g.Kind == circuit.Measure && (g.Clbit < 0 || g.Clbit >= c.Clbits) {
			return fmt.Errorf("measurement into classical bit %d of a %d-bit register", g.Clbit, c.Clbits)
		}
	}
	return nil
}
