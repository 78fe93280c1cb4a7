package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderOrder(t *testing.T) {
	c := New(2, 1)
	c.H(0)
	c.CX(0, 1)
	c.MeasureQ(1, 0)

	require.Len(t, c.Gates, 3)
	assert.Equal(t, H, c.Gates[0].Kind)
	assert.Equal(t, []int{0, 1}, c.Gates[1].Qubits)
	assert.Equal(t, 0, c.Gates[2].Clbit)
	assert.Equal(t, -1, c.Gates[0].Clbit)
}

func TestTeleportationTemplate(t *testing.T) {
	for _, bit := range []bool{false, true} {
		c := Teleportation(bit)
		assert.Equal(t, TeleportQubits, c.Qubits)
		assert.Equal(t, TeleportClbits, c.Clbits)

		// The first gate prepares the payload: qubit 0 for a 0 bit, the
		// Bell-pair half on qubit 1 for a 1 bit.
		require.NotEmpty(t, c.Gates)
		assert.Equal(t, X, c.Gates[0].Kind)
		want := 0
		if bit {
			want = 1
		}
		assert.Equal(t, []int{want}, c.Gates[0].Qubits)

		// The last instruction folds the teleported measurement back onto
		// classical bit 0.
		last := c.Gates[len(c.Gates)-1]
		assert.Equal(t, Measure, last.Kind)
		assert.Equal(t, 0, last.Clbit)
	}
}

func TestTeleportationComplexityFixed(t *testing.T) {
	// The template is fixed, so both bit values must produce the same
	// complexity: the adaptive shot heuristic depends on it.
	assert.Equal(t, Teleportation(false).Complexity(), Teleportation(true).Complexity())
}

func TestBB84EncodeTemplate(t *testing.T) {
	zero := BB84Encode(false)
	one := BB84Encode(true)
	assert.Equal(t, ID, zero.Gates[0].Kind)
	assert.Equal(t, X, one.Gates[0].Kind)
	for _, c := range []*Circuit{zero, one} {
		assert.Equal(t, 1, c.Qubits)
		assert.Equal(t, Measure, c.Gates[len(c.Gates)-1].Kind)
	}
}
