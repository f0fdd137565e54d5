package classify

import "math"

const (
	confidenceBase      = 0.5
	confidencePerHit    = 0.15
	confidenceHitsCap   = 0.3
	confidenceAmountAdd = 0.2
)

// ComputeConfidence scores how certain a classification is, in [0,1].
// The baseline 0.5 reflects that some classification was possible; each
// keyword hit adds diminishing evidence capped at +0.3, and an extractable
// amount adds a flat +0.2 since amount-bearing lines are more reliably
// genuine cost items. Rounded to two decimals.
func ComputeConfidence(keywordHits int, hasAmount bool) float64 {
	score := confidenceBase + math.Min(confidenceHitsCap, float64(keywordHits)*confidencePerHit)
	if hasAmount {
		score += confidenceAmountAdd
	}

	score = math.Max(0, math.Min(1, score))
	return math.Round(score*100) / 100
}
