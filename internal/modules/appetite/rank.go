package appetite

import "sort"

// Rank scores every appetite record against the profile and partitions the
// results at the strong-match threshold. Records at or above it become top
// matches; the best of the rest are surfaced as nearest misses so the broker
// still has markets to approach when nothing clears the bar.
//
// Both partitions are ordered score descending with underwriter name
// ascending as the tie-break, so output is reproducible for a given input
// set. An empty record collection yields empty partitions, not an error.
func (s *Scorer) Rank(profile ClientProfile, records []AppetiteRecord) RankedMatches {
	var top, misses []MatchResult

	for _, record := range records {
		result := s.Score(profile, record)
		if result.MatchScore >= s.cfg.StrongMatchThreshold {
			top = append(top, result)
		} else {
			misses = append(misses, result)
		}
	}

	sortResults(top)
	sortResults(misses)

	if s.cfg.NearestMissLimit > 0 && len(misses) > s.cfg.NearestMissLimit {
		misses = misses[:s.cfg.NearestMissLimit]
	}

	return RankedMatches{
		TopMatches:    top,
		NearestMisses: misses,
	}
}

// sortResults orders by match score descending, then underwriter name
// ascending.
func sortResults(results []MatchResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].UnderwriterName < results[j].UnderwriterName
	})
}
