package subtitle

// Match aligns a translation track to an original track by midpoint
// proximity. The result has the same length and order as original,
// with Translation set wherever a candidate midpoint falls within
// toleranceMS; closest wins, ties broken by translation order. Inputs
// are never mutated.
func (p *Processor) Match(
	original, translation []Line,
	toleranceMS int64,
) []Line {
	if toleranceMS <= 0 {
		toleranceMS = DefaultToleranceMS
	}

	matched := make([]Line, len(original))
	matchedCount := 0

	for i, orig := range original {
		mid := orig.Midpoint()

		best := -1
		var bestDiff int64
		for j, trans := range translation {
			diff := trans.Midpoint() - mid
			if diff < 0 {
				diff = -diff
			}
			if diff <= toleranceMS && (best == -1 || diff < bestDiff) {
				best = j
				bestDiff = diff
			}
		}

		line := orig
		if best >= 0 {
			line.Translation = translation[best].PlainText
			matchedCount++
		} else {
			line.Translation = ""
		}
		matched[i] = line
	}

	p.log.Infow("matched subtitle tracks",
		"matched", matchedCount,
		"total", len(original),
		"tolerance_ms", toleranceMS,
	)

	return matched
}
