package advisor

import "sort"

// =============================================================================
// HERO SCORER (C2)
// =============================================================================
// Deterministic ranking signals only - power() is never surfaced as a "real"
// stat, just used to break ties and order candidates.
// =============================================================================

// Power computes a hero's ranking score. catalogEntry may be the zero value
// (ok=false) when the hero is unknown - the tier term is simply omitted.
func Power(owned OwnedHero, catalogEntry HeroEntry, catalogOK bool) int {
	score := owned.Level*10 + owned.Stars*50 + owned.Ascension*30
	for _, g := range owned.Gear {
		score += g.Quality*15 + g.Level/10
	}
	score += owned.ExpeditionSkillLevels[0] * 20
	if catalogOK {
		score += TierValues[catalogEntry.TierExpedition] * 25
	}
	return score
}

// GenerationRelevance scores how relevant a hero still is given the
// player's current generation, per §4.2.
func GenerationRelevance(entry HeroEntry, currentGen int) float64 {
	d := currentGen - entry.Generation
	var relevance float64
	switch {
	case d <= 0:
		relevance = 1.0
	case d == 1:
		relevance = 0.9
	case d == 2:
		relevance = 0.7
	case d == 3:
		relevance = 0.5
	default:
		relevance = 0.3
	}
	if entry.TierOverall == TierSPlus && d <= 3 {
		relevance += 0.15
		if relevance > 1.0 {
			relevance = 1.0
		}
	}
	return relevance
}

// RankedHero is one entry of RankByValue's output, carrying the score that
// produced the ordering (useful for spending-tier "top-N" gates in C3/C4).
type RankedHero struct {
	Name  string
	Value float64
}

// RankByValue orders owned heroes by investment value, descending, per §4.2:
// tierScore x generationRelevance x (0.5 + 0.5 x min(1, level/50)).
func RankByValue(owned []OwnedHero, catalog *Catalog, currentGen int) []RankedHero {
	ranked := make([]RankedHero, len(owned))
	for i, h := range owned {
		entry, _ := catalog.Lookup(h.Name)
		relevance := GenerationRelevance(entry, currentGen)
		tierScore := TierScores[entry.TierOverall]
		levelFactor := 0.5 + 0.5*minFloat(1.0, float64(h.Level)/50.0)
		ranked[i] = RankedHero{Name: h.Name, Value: tierScore * relevance * levelFactor}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	return ranked
}

// TopNNames returns the first n names from a RankByValue result, used by the
// spending-profile "top-N owned-ranked set" gate.
func TopNNames(ranked []RankedHero, n int) map[string]bool {
	top := make(map[string]bool, n)
	for i, r := range ranked {
		if i >= n {
			break
		}
		top[r.Name] = true
	}
	return top
}

// CurrentGeneration maps server age in days to the player's current hero
// generation, per §4.2's piecewise bands. Bands are inclusive on the low
// end, exclusive on the high end; day 520+ always maps to generation 8
// (the spec allows extending beyond 8 in 80-day increments, which callers
// needing a cohort past 8 can layer on top of this).
func CurrentGeneration(serverAgeDays int) int {
	switch {
	case serverAgeDays < 40:
		return 1
	case serverAgeDays < 120:
		return 2
	case serverAgeDays < 200:
		return 3
	case serverAgeDays < 280:
		return 4
	case serverAgeDays < 360:
		return 5
	case serverAgeDays < 440:
		return 6
	case serverAgeDays < 520:
		return 7
	default:
		return 8
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
