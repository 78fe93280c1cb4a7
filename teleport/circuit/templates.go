package circuit

// Register sizes for the two fixed encoding templates.
const (
	TeleportQubits = 6
	TeleportClbits = 6
	BB84Qubits     = 1
	BB84Clbits     = 1
)

// Teleportation builds the per-bit teleportation circuit. The payload is
// prepared on qubit 0 in flipped form (a 0 bit sets the payload to |1>, a 1
// bit instead flips the Bell-pair half on qubit 1), teleported onto qubit 2
// via a Bell measurement of qubits 0-1 and deferred corrections, and then
// re-measured into the top half of the classical register together with a
// parity-mixing tail over the ancilla qubits 3-5. The decoded bit is the
// flip of the highest classical bit of the plurality outcome.
func Teleportation(bit bool) *Circuit {
	c := New(TeleportQubits, TeleportClbits)
	if bit {
		c.X(1)
	} else {
		c.X(0)
	}
	c.Barrier()
	c.H(1)
	c.CX(1, 2)
	c.Barrier()
	c.CX(0, 1)
	c.H(0)
	c.Barrier()
	c.MeasureQ(0, 0)
	c.MeasureQ(1, 1)
	c.CX(1, 2)
	c.CZ(0, 2)
	c.MeasureQ(2, 2)

	c.Barrier()
	c.MeasureQ(0, 3)
	c.MeasureQ(1, 4)
	c.MeasureQ(2, 5)
	c.CX(3, 4)
	c.CX(3, 5)
	c.CX(4, 5)
	c.Barrier()
	c.CCX(3, 4, 5)
	c.MeasureQ(5, 0)
	return c
}

// BB84Encode builds the single-qubit encoding circuit for one bit: X for a
// 1, identity for a 0, then a measurement. The decoded bit is the plurality
// outcome, unflipped.
func BB84Encode(bit bool) *Circuit {
	c := New(BB84Qubits, BB84Clbits)
	if bit {
		c.X(0)
	} else {
		c.ID(0)
	}
	c.Barrier()
	c.MeasureQ(0, 0)
	return c
}
