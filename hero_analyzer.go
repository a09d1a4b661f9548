package advisor

import (
	"fmt"
	"sort"
)

// =============================================================================
// HERO ANALYZER (C3)
// =============================================================================
// Emits hero-focused Recommendation values. Every rule fires independently
// (no short-circuiting beyond no_heroes) so a profile can accumulate recs
// from several rules at once; the final list is sorted by (priority,
// insertion order).
// =============================================================================

// HeroAnalyzer produces hero-upgrade recommendations from a player's roster.
type HeroAnalyzer struct {
	catalog *Catalog
}

// NewHeroAnalyzer constructs a HeroAnalyzer bound to a catalog.
func NewHeroAnalyzer(catalog *Catalog) *HeroAnalyzer {
	return &HeroAnalyzer{catalog: catalog}
}

// Analyze runs every hero rule against the given roster and profile.
func (a *HeroAnalyzer) Analyze(owned []OwnedHero, profile Profile) []Recommendation {
	if len(owned) == 0 {
		return []Recommendation{{
			Priority: 1, Action: "Add your first heroes", Category: CategoryHero,
			Reason: "You have no heroes recorded yet - recruit from the tavern to unlock every other recommendation.",
			Source: SourceRules, RuleID: "no_heroes",
		}}
	}

	ownedByName := make(map[string]OwnedHero, len(owned))
	for _, h := range owned {
		ownedByName[h.Name] = h
	}
	currentGen := CurrentGeneration(profile.ServerAgeDays)
	ranked := RankByValue(owned, a.catalog, currentGen)
	topN := TopNNames(ranked, HeroFocusLimit[profile.SpendingProfile])

	var recs []Recommendation
	recs = append(recs, a.levelMainThree(owned, currentGen)...)
	recs = append(recs, a.jessieRules(ownedByName, profile)...)
	recs = append(recs, a.sergeyRules(ownedByName, profile)...)
	recs = append(recs, a.acquireGen(ownedByName, currentGen)...)
	recs = append(recs, a.skillAndStarRules(owned, profile, currentGen, topN)...)
	recs = append(recs, a.farmRules(owned, profile)...)

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Priority < recs[j].Priority })
	return recs
}

func (a *HeroAnalyzer) levelMainThree(owned []OwnedHero, currentGen int) []Recommendation {
	atLevel40 := 0
	var candidates []OwnedHero
	for _, h := range owned {
		if h.Level >= 40 {
			atLevel40++
			continue
		}
		entry, _ := a.catalog.Lookup(h.Name)
		if TierValues[entry.TierOverall] >= TierValues[TierA] {
			candidates = append(candidates, h)
		}
	}
	if atLevel40 >= 3 || len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		ei, _ := a.catalog.Lookup(candidates[i].Name)
		ej, _ := a.catalog.Lookup(candidates[j].Name)
		return TierValues[ei.TierOverall] > TierValues[ej.TierOverall]
	})
	need := 3 - atLevel40
	if need > len(candidates) {
		need = len(candidates)
	}
	recs := make([]Recommendation, 0, need)
	for _, h := range candidates[:need] {
		recs = append(recs, Recommendation{
			Priority: 1, Action: fmt.Sprintf("Level up %s to 40+", h.Name), Category: CategoryHero,
			Hero: h.Name, Reason: "You need at least 3 heroes above level 40 to clear early content reliably.",
			Source: SourceRules, RuleID: "level_main_three",
		})
	}
	return recs
}

func (a *HeroAnalyzer) jessieRules(ownedByName map[string]OwnedHero, profile Profile) []Recommendation {
	var recs []Recommendation
	if profile.Priorities.Rally < 3 {
		return recs
	}
	jessie, owns := ownedByName["Jessie"]
	if !owns {
		priority := 2
		if profile.Priorities.Rally >= 4 {
			priority = 1
		}
		recs = append(recs, Recommendation{
			Priority: priority, Action: "Unlock Jessie", Category: CategoryHero, Hero: "Jessie",
			Reason: "Jessie's expedition skill is the only thing that matters for rally joiners attacking - without her, joiners contribute 0% bonus damage.",
			Source: SourceRules, RuleID: "unlock_jessie",
		})
		return recs
	}
	if jessie.ExpeditionSkillLevels[0] < 5 {
		next := jessie.ExpeditionSkillLevels[0]
		bonus := JessieSkillEffectByLevel[next] // next is 0-indexed current level -> index of next level's bonus
		recs = append(recs, Recommendation{
			Priority: 2, Action: "Level up Jessie's expedition skill", Category: CategoryHero, Hero: "Jessie",
			Reason: fmt.Sprintf("The next level raises joiner damage to +%d%% damage dealt.", bonus),
			Source: SourceRules, RuleID: "level_jessie_skill",
		})
	}
	return recs
}

func (a *HeroAnalyzer) sergeyRules(ownedByName map[string]OwnedHero, profile Profile) []Recommendation {
	var recs []Recommendation
	if profile.Priorities.Castle < 3 {
		return recs
	}
	sergey, owns := ownedByName["Sergey"]
	if !owns {
		priority := 2
		if profile.Priorities.Castle >= 4 {
			priority = 1
		}
		recs = append(recs, Recommendation{
			Priority: priority, Action: "Unlock Sergey", Category: CategoryHero, Hero: "Sergey",
			Reason: "Sergey's expedition skill is the only thing that matters for rally joiners defending - without him, joiners contribute 0% damage reduction.",
			Source: SourceRules, RuleID: "unlock_sergey",
		})
		return recs
	}
	if sergey.ExpeditionSkillLevels[0] < 5 {
		next := sergey.ExpeditionSkillLevels[0]
		bonus := SergeySkillEffectByLevel[next]
		recs = append(recs, Recommendation{
			Priority: 2, Action: "Level up Sergey's expedition skill", Category: CategoryHero, Hero: "Sergey",
			Reason: fmt.Sprintf("The next level raises joiner damage reduction to +%d%%.", bonus),
			Source: SourceRules, RuleID: "level_sergey_skill",
		})
	}
	return recs
}

func (a *HeroAnalyzer) acquireGen(ownedByName map[string]OwnedHero, currentGen int) []Recommendation {
	var recs []Recommendation
	start := currentGen - 1
	if start < 2 {
		start = 2
	}
	for n := start; n <= currentGen; n++ {
		marquee, ok := GenerationMarquee[n]
		if !ok {
			continue
		}
		ownsAny := false
		for _, name := range marquee {
			if _, ok := ownedByName[name]; ok {
				ownsAny = true
				break
			}
		}
		if ownsAny {
			continue
		}
		priority := 3
		if n == currentGen {
			priority = 2
		}
		recs = append(recs, Recommendation{
			Priority: priority, Action: fmt.Sprintf("Acquire a generation %d hero", n), Category: CategoryHero,
			Reason:   fmt.Sprintf("You own none of this generation's marquee heroes (%v).", marquee),
			Source:   SourceRules, RuleID: fmt.Sprintf("acquire_gen%d", n),
		})
	}
	return recs
}

func (a *HeroAnalyzer) skillAndStarRules(owned []OwnedHero, profile Profile, currentGen int, topN map[string]bool) []Recommendation {
	var recs []Recommendation
	bumpAllowed := profile.SpendingProfile == SpendingDolphin
	gated := profile.SpendingProfile == SpendingF2P || profile.SpendingProfile == SpendingMinnow

	for _, h := range owned {
		entry, _ := a.catalog.Lookup(h.Name)
		relevance := GenerationRelevance(entry, currentGen)
		tierScore := TierScores[entry.TierOverall]
		isTop := topN[h.Name]

		if gated && !isTop {
			continue
		}
		priorityBump := 0
		reasonSuffix := ""
		if bumpAllowed && !isTop {
			priorityBump = 1
			reasonSuffix = " Lower priority - focus on core heroes first."
		}

		if tierScore*relevance >= 0.4 && h.Level >= 30 {
			if anyBelow5(h.ExpeditionSkillLevels) {
				recs = append(recs, Recommendation{
					Priority: 2 + priorityBump, Action: fmt.Sprintf("Upgrade %s's expedition skills", h.Name),
					Category: CategoryHero, Hero: h.Name,
					Reason: "This hero is strong enough to be worth more PvP skill investment." + reasonSuffix,
					Source: SourceRules, RuleID: "upgrade_expedition_skill",
				})
			}
			if anyBelow5(h.ExplorationSkillLevels) {
				recs = append(recs, Recommendation{
					Priority: 3 + priorityBump, Action: fmt.Sprintf("Upgrade %s's exploration skills", h.Name),
					Category: CategoryHero, Hero: h.Name,
					Reason: "This hero is strong enough to be worth more PvE skill investment." + reasonSuffix,
					Source: SourceRules, RuleID: "upgrade_exploration_skill",
				})
			}
		}

		if tierScore*relevance >= 0.5 && h.Stars < 5 && h.Level >= 40 {
			recs = append(recs, Recommendation{
				Priority: 3 + priorityBump, Action: fmt.Sprintf("Ascend %s's stars", h.Name),
				Category: CategoryHero, Hero: h.Name,
				Reason: "This hero is a core investment worth pushing toward 5 stars." + reasonSuffix,
				Source:  SourceRules, RuleID: "ascend_stars",
			})
		}
	}
	return recs
}

func (a *HeroAnalyzer) farmRules(owned []OwnedHero, profile Profile) []Recommendation {
	if !profile.IsFarmAccount {
		return nil
	}
	var recs []Recommendation
	if len(owned) > 2 {
		recs = append(recs, Recommendation{
			Priority: 1, Action: "Stop investing in extra heroes on this farm account", Category: CategoryHero,
			Reason: "Farm accounts should focus on at most 1-2 heroes; spreading resources wastes them.",
			Source: SourceRules, RuleID: "farm_too_many_heroes",
		})
	}
	recs = append(recs, Recommendation{
		Priority: 2, Action: "Focus this farm account on Jessie for rally joining", Category: CategoryHero,
		Hero: "Jessie", Reason: "A farm account only needs a joiner hero; Jessie covers every attack rally it joins.",
		Source: SourceRules, RuleID: "farm_jessie_only",
	})
	for _, h := range owned {
		if anyAbove1(h.ExplorationSkillLevels) {
			recs = append(recs, Recommendation{
				Priority: 2, Action: fmt.Sprintf("Stop spending on %s's exploration skills", h.Name), Category: CategoryHero,
				Hero: h.Name, Reason: "Exploration skills are wasted resources on a farm account.",
				Source: SourceRules, RuleID: "farm_exploration_warning",
			})
		}
	}
	return recs
}

func anyBelow5(levels [3]int) bool {
	for _, l := range levels {
		if l < 5 {
			return true
		}
	}
	return false
}

func anyAbove1(levels [3]int) bool {
	for _, l := range levels {
		if l > 1 {
			return true
		}
	}
	return false
}
