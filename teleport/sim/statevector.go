package sim

import (
	"math"
	"math/rand"
)

// A vector holds the full statevector of a small quantum register. Amplitude
// index bit q corresponds to qubit q.
type vector struct {
	amps   []complex128
	qubits int
}

func newVector(qubits int) *vector {
	v := &vector{
		amps:   make([]complex128, 1<<qubits),
		qubits: qubits,
	}
	v.amps[0] = 1
	return v
}

func (v *vector) applyX(t int) {
	mask := 1 << t
	for i := range v.amps {
		if i&mask == 0 {
			v.amps[i], v.amps[i|mask] = v.amps[i|mask], v.amps[i]
		}
	}
}

func (v *vector) applyH(t int) {
	mask := 1 << t
	inv := complex(1/math.Sqrt2, 0)
	for i := range v.amps {
		if i&mask == 0 {
			a0, a1 := v.amps[i], v.amps[i|mask]
			v.amps[i] = (a0 + a1) * inv
			v.amps[i|mask] = (a0 - a1) * inv
		}
	}
}

func (v *vector) applyCX(ctrl, tgt int) {
	cm, tm := 1<<ctrl, 1<<tgt
	for i := range v.amps {
		if i&cm != 0 && i&tm == 0 {
			v.amps[i], v.amps[i|tm] = v.amps[i|tm], v.amps[i]
		}
	}
}

func (v *vector) applyCZ(ctrl, tgt int) {
	cm, tm := 1<<ctrl, 1<<tgt
	for i := range v.amps {
		if i&cm != 0 && i&tm != 0 {
			v.amps[i] = -v.amps[i]
		}
	}
}

func (v *vector) applyCCX(c1, c2, tgt int) {
	m1, m2, tm := 1<<c1, 1<<c2, 1<<tgt
	for i := range v.amps {
		if i&m1 != 0 && i&m2 != 0 && i&tm == 0 {
			v.amps[i], v.amps[i|tm] = v.amps[i|tm], v.amps[i]
		}
	}
}

// measure samples qubit q, collapses the state onto the observed branch, and
// returns the outcome.
func (v *vector) measure(q int, rng *rand.Rand) int {
	mask := 1 << q
	var p1 float64
	for i, a := range v.amps {
		if i&mask != 0 {
			p1 += real(a)*real(a) + imag(a)*imag(a)
		}
	}
	outcome := 0
	if rng.Float64() < p1 {
		outcome = 1
	}
	p := p1
	if outcome == 0 {
		p = 1 - p1
	}
	// Guard against collapse onto a zero-probability branch from rounding.
	if p < 1e-15 {
		p = 1e-15
	}
	norm := complex(1/math.Sqrt(p), 0)
	for i := range v.amps {
		if (i&mask != 0) != (outcome == 1) {
			v.amps[i] = 0
		} else {
			v.amps[i] *= norm
		}
	}
	return outcome
}
