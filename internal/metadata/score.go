package metadata

// Completeness weights. Title dominates so that a bare-title candidate still
// beats an empty one, and richer records win over sparser ones.
const (
	scoreTitle       = 10
	scoreYear        = 5
	scoreCreator     = 5
	scoreDescription = 3
	scorePoster      = 3
	scoreDetails     = 2
)

// Score returns the completeness score of an item.
func Score(item Item) int {
	score := 0
	if item.Title != "" {
		score += scoreTitle
	}
	if item.Year != 0 {
		score += scoreYear
	}
	if item.Creator != "" {
		score += scoreCreator
	}
	if item.Description != "" {
		score += scoreDescription
	}
	if item.PosterURL != "" {
		score += scorePoster
	}
	if len(item.Details) > 0 {
		score += scoreDetails
	}
	return score
}

// SelectBest returns the candidate with the highest completeness score.
// Ties are broken by slice order, so with a fixed provider invocation order
// selection is deterministic. Returns nil for an empty candidate list.
func SelectBest(candidates []Item) *Item {
	if len(candidates) == 0 {
		return nil
	}

	bestIdx := 0
	bestScore := Score(candidates[0])
	for i := 1; i < len(candidates); i++ {
		if s := Score(candidates[i]); s > bestScore {
			bestIdx = i
			bestScore = s
		}
	}
	return &candidates[bestIdx]
}
