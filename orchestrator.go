package advisor

import (
	"sort"
	"strings"
)

// =============================================================================
// RECOMMENDATION ORCHESTRATOR (C8)
// =============================================================================
// Aggregates C3 (hero), C4 (gear), C6 (progression) into one ranked,
// deduplicated list. Dedup key is the case-insensitive action string per the
// component's literal operational step; ruleId remains the stable
// identifier used for logging and for C3/C4's own internal bookkeeping (see
// DESIGN.md for the tension with the narrative note that favors ruleId).
// =============================================================================

// Orchestrator fans out to the hero, gear, and progression analyzers.
type Orchestrator struct {
	heroAnalyzer *HeroAnalyzer
	gearAdvisor  *GearAdvisor
	progression  *ProgressionTracker
}

// NewOrchestrator wires together the three analyzers behind Recommend.
func NewOrchestrator(catalog *Catalog) *Orchestrator {
	return &Orchestrator{
		heroAnalyzer: NewHeroAnalyzer(catalog),
		gearAdvisor:  NewGearAdvisor(),
		progression:  NewProgressionTracker(),
	}
}

// Recommend implements C8's recommend(profile, owned, gearSnapshot, limit).
func (o *Orchestrator) Recommend(profile Profile, owned []OwnedHero, chief ChiefGear, heroGear HeroGearSnapshot, limit int) []Recommendation {
	var all []Recommendation
	all = append(all, o.heroAnalyzer.Analyze(owned, profile)...)
	all = append(all, o.gearAdvisor.Analyze(chief, heroGear, profile)...)
	all = append(all, o.progression.Recommend(profile)...)

	sort.SliceStable(all, func(i, j int) bool { return all[i].Priority < all[j].Priority })

	deduped := make([]Recommendation, 0, len(all))
	seen := make(map[string]bool, len(all))
	for _, rec := range all {
		key := strings.ToLower(rec.Action)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, rec)
	}

	if limit > 0 && limit < len(deduped) {
		deduped = deduped[:limit]
	}
	return deduped
}
