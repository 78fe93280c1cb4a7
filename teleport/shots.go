package teleport

import "math"

// Defaults for the adaptive shot heuristics. The teleportation pipeline
// works with tiny shot counts because its circuit is deterministic without
// noise; the BB84 pipeline budgets like a statistical sampler.
const (
	DefaultConfidence        = 0.90
	DefaultTeleportBaseShots = 0
	DefaultTeleportMaxShots  = 5
	DefaultBB84BaseShots     = 250
	DefaultBB84MaxShots      = 4096
)

// AdaptiveShots picks a shot count from the circuit complexity: the base
// count plus min(complexity*5, max-base), or min(complexity*1.5, max-base)
// when the confidence level exceeds 0.90. The result is always within
// [base, max].
func AdaptiveShots(complexity int, confidence float64, base, max int) int {
	extra := math.Min(float64(complexity)*5, float64(max-base))
	if confidence > 0.90 {
		extra = math.Min(float64(complexity)*1.5, float64(max-base))
	}
	return clampShots(base+int(math.Round(extra)), base, max)
}

// AdaptiveShotsSized is the data-length-aware variant used by the BB84
// pipeline: the complexity term is averaged with min(dataLen*0.1,
// max-base) before the confidence branch is applied. The result is always
// within [base, max].
func AdaptiveShotsSized(complexity, dataLen int, confidence float64, base, max int) int {
	byComplexity := math.Min(float64(complexity)*5, float64(max-base))
	byLength := math.Min(float64(dataLen)*0.1, float64(max-base))
	extra := (byComplexity + byLength) / 2
	if confidence > 0.90 {
		extra = math.Min(float64(complexity)*1.5, float64(max-base))
	}
	return clampShots(base+int(math.Round(extra)), base, max)
}

func clampShots(n, base, max int) int {
	if n < base {
		return base
	}
	if n > max {
		return max
	}
	return n
}
