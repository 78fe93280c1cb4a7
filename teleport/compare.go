package teleport

import (
	"fmt"
	"math"
	"strings"
)

const (
	markStart = "\x1b[91m"
	markEnd   = "\x1b[0m"
)

// A Difference records a single position where sent and received text
// disagree.
type Difference struct {
	Pos      int
	Sent     rune
	Received rune
}

// A Comparison describes the similarity of sent and received text.
type Comparison struct {
	// PercentMatch is the proportion of matching characters over the longer
	// of the two strings, as a percentage rounded to two decimals.
	PercentMatch float64

	// Differences lists the positions where the strings disagree, over
	// their common prefix length.
	Differences []Difference

	// MarkedSent and MarkedReceived are the input strings with differing
	// characters wrapped in ANSI red.
	MarkedSent     string
	MarkedReceived string

	TotalChars  int
	CommonChars int
}

// Compare computes a character-level similarity record for two strings.
func Compare(sent, received string) Comparison {
	a, b := []rune(sent), []rune(received)
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var cmp Comparison
	var ms, mr strings.Builder
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			cmp.CommonChars++
			ms.WriteRune(a[i])
			mr.WriteRune(b[i])
			continue
		}
		cmp.Differences = append(cmp.Differences, Difference{Pos: i, Sent: a[i], Received: b[i]})
		fmt.Fprintf(&ms, "%s%c%s", markStart, a[i], markEnd)
		fmt.Fprintf(&mr, "%s%c%s", markStart, b[i], markEnd)
	}
	cmp.MarkedSent = ms.String()
	cmp.MarkedReceived = mr.String()

	cmp.TotalChars = len(a)
	if len(b) > cmp.TotalChars {
		cmp.TotalChars = len(b)
	}
	if cmp.TotalChars == 0 {
		cmp.PercentMatch = 100
		return cmp
	}
	pct := float64(cmp.CommonChars) / float64(cmp.TotalChars) * 100
	cmp.PercentMatch = math.Round(pct*100) / 100
	return cmp
}
