// Package sim provides classical simulation backends for the pipeline's
// quantum circuits: statevector evolution, shot sampling, and a simple
// bit-flip noise model.
package sim

import "errors"

// Counts maps measurement outcomes to their observed frequencies. Outcome
// strings list classical bits highest-index first, so the final classical
// bit of an n-bit register is the first character.
type Counts map[string]int

// Top returns the plurality outcome. Ties break to the lexicographically
// smallest outcome, keeping the vote deterministic for fixed samples.
func (c Counts) Top() (string, error) {
	if len(c) == 0 {
		return "", errors.New("no outcomes recorded")
	}
	var best string
	bestN := -1
	for k, n := range c {
		if n > bestN || (n == bestN && k < best) {
			best, bestN = k, n
		}
	}
	return best, nil
}

// Shots returns the total number of samples recorded in c.
func (c Counts) Shots() int {
	var n int
	for _, v := range c {
		n += v
	}
	return n
}
