// Package circuit provides a minimal gate-list representation of the small
// quantum circuits used by the teleportation and BB84 encoding pipelines.
package circuit

// A Kind names a supported circuit instruction.
type Kind string

const (
	X       Kind = "x"
	ID      Kind = "id"
	H       Kind = "h"
	CX      Kind = "cx"
	CZ      Kind = "cz"
	CCX     Kind = "ccx"
	Barrier Kind = "barrier"
	Measure Kind = "measure"
)

// A Gate is a single instruction placed on a circuit. Qubits lists the
// operands in order, with controls before targets for controlled gates.
// Clbit is the classical destination for measurements and -1 otherwise.
type Gate struct {
	Kind   Kind
	Qubits []int
	Clbit  int
}

// A Circuit is an ordered list of gates over a fixed quantum and classical
// register.
type Circuit struct {
	Qubits int
	Clbits int
	Gates  []Gate
}

// New returns an empty circuit with the given register sizes.
func New(qubits, clbits int) *Circuit {
	return &Circuit{Qubits: qubits, Clbits: clbits}
}

func (c *Circuit) add(k Kind, clbit int, qubits ...int) {
	c.Gates = append(c.Gates, Gate{Kind: k, Qubits: qubits, Clbit: clbit})
}

// X applies a NOT gate to qubit q.
func (c *Circuit) X(q int) { c.add(X, -1, q) }

// ID applies an identity gate to qubit q.
func (c *Circuit) ID(q int) { c.add(ID, -1, q) }

// H applies a Hadamard gate to qubit q.
func (c *Circuit) H(q int) { c.add(H, -1, q) }

// CX applies a controlled-NOT with control ctrl and target tgt.
func (c *Circuit) CX(ctrl, tgt int) { c.add(CX, -1, ctrl, tgt) }

// CZ applies a controlled-Z with control ctrl and target tgt.
func (c *Circuit) CZ(ctrl, tgt int) { c.add(CZ, -1, ctrl, tgt) }

// CCX applies a Toffoli gate with controls c1, c2 and target tgt.
func (c *Circuit) CCX(c1, c2, tgt int) { c.add(CCX, -1, c1, c2, tgt) }

// Barrier inserts a barrier instruction. Barriers only delimit sections of
// the circuit; execution ignores them.
func (c *Circuit) Barrier() { c.add(Barrier, -1) }

// MeasureQ measures qubit q into classical bit clbit.
func (c *Circuit) MeasureQ(q, clbit int) { c.add(Measure, clbit, q) }

// Complexity is the instruction count of the circuit, used by the adaptive
// shot heuristics.
func (c *Circuit) Complexity() int {
	return len(c.Gates)
}
