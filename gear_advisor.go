package advisor

import (
	"fmt"
	"sort"
)

// =============================================================================
// GEAR ADVISOR (C4)
// =============================================================================
// Chief gear climbs a fixed six-slot priority table; hero gear is budgeted
// by spending profile and checked for a handful of known anti-patterns.
// =============================================================================

// GearAdvisor produces chief-gear and hero-gear recommendations.
type GearAdvisor struct{}

// NewGearAdvisor constructs a GearAdvisor. It is stateless.
func NewGearAdvisor() *GearAdvisor { return &GearAdvisor{} }

// HeroGearSnapshot is the subset of a roster the gear advisor reasons about:
// each owned hero's four gear pieces, keyed by name.
type HeroGearSnapshot map[string][4]GearPiece

// Analyze runs the chief-gear and hero-gear rules against one snapshot and
// returns the results sorted by priority (stable, so ties keep rule order).
func (g *GearAdvisor) Analyze(chief ChiefGear, heroGear HeroGearSnapshot, profile Profile) []Recommendation {
	var recs []Recommendation
	recs = append(recs, g.chiefGearRules(chief)...)
	recs = append(recs, g.heroGearRules(heroGear, profile)...)
	recs = append(recs, g.chiefGearAntiPatterns(chief, heroGear)...)
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Priority < recs[j].Priority })
	return recs
}

func (g *GearAdvisor) chiefGearRules(chief ChiefGear) []Recommendation {
	if len(chief) == 0 {
		return []Recommendation{
			{Priority: 1, Action: "Upgrade Ring to Legendary", Category: CategoryGear,
				Reason: "Universal attack buff for ALL troops - the single highest-value chief gear upgrade available.",
				Source: SourceRules, RuleID: "chief_gear_start_ring"},
			{Priority: 2, Action: "Upgrade Amulet to Legendary", Category: CategoryGear,
				Reason: "PvP decisive - affects kill rates in SvS.",
				Source: SourceRules, RuleID: "chief_gear_start_amulet"},
		}
	}

	var recs []Recommendation
	for _, row := range ChiefGearOrder {
		piece, owned := chief[row.Slot]
		quality := 0
		if owned {
			quality = piece.Quality
		}
		if quality >= QualityValues[QualityLegendary] {
			continue
		}
		priority := row.Priority
		if !owned {
			priority--
			if priority < 1 {
				priority = 1
			}
		}
		recs = append(recs, Recommendation{
			Priority: priority, Action: fmt.Sprintf("Upgrade %s toward Legendary", row.Slot), Category: CategoryGear,
			Reason: row.Reason, Source: SourceRules, RuleID: fmt.Sprintf("chief_gear_%s", row.Slot),
		})
	}

	ringQ, amuletQ := chief[GearRing], chief[GearAmulet]
	if ringQ.Quality >= QualityValues[QualityLegendary] && amuletQ.Quality >= QualityValues[QualityLegendary] {
		for _, row := range ChiefGearOrder {
			piece := chief[row.Slot]
			if piece.Quality < QualityValues[QualityMythic] {
				recs = append(recs, Recommendation{
					Priority: 3, Action: fmt.Sprintf("Push %s to Mythic", row.Slot), Category: CategoryGear,
					Reason: "Ring and Amulet are already Legendary - Mythic is the next gain available.",
					Source: SourceRules, RuleID: fmt.Sprintf("chief_gear_mythic_%s", row.Slot),
				})
			}
		}
	}
	return recs
}

func (g *GearAdvisor) heroGearRules(heroGear HeroGearSnapshot, profile Profile) []Recommendation {
	var recs []Recommendation

	gearedHeroes := make([]string, 0, len(heroGear))
	for name, pieces := range heroGear {
		if heroIsGeared(pieces) {
			gearedHeroes = append(gearedHeroes, name)
		}
	}

	limit := HeroGearLimit[profile.SpendingProfile]
	if profile.SpendingProfile == SpendingF2P {
		if len(gearedHeroes) > limit {
			recs = append(recs, Recommendation{
				Priority: 1, Action: "Stop spreading hero gear across heroes", Category: CategoryGear,
				Reason: "F2P accounts should gear at most one hero at a time - splitting gear slows every hero down.",
				Source: SourceRules, RuleID: "f2p_hero_gear_limit",
			})
		}
		if len(gearedHeroes) == 0 {
			recs = append(recs, Recommendation{
				Priority: 3, Action: "Start gearing Molly or Alonso", Category: CategoryGear,
				Reason: "A free infantry hero is the cheapest first hero-gear investment for an F2P account.",
				Source: SourceRules, RuleID: "hero_gear_start_f2p",
			})
		}
	}

	for _, h := range gearedHeroes {
		if h == "Jessie" || h == "Sergey" {
			if profile.SpendingProfile != SpendingWhale {
				recs = append(recs, Recommendation{
					Priority: 1, Action: fmt.Sprintf("Stop gearing %s as a joiner", h), Category: CategoryGear,
					Hero: h, Reason: "Joiner heroes only need their expedition skill leveled - hero gear on a joiner is wasted outside whale accounts.",
					Source: SourceRules, RuleID: "hero_gear_joiner_waste",
				})
			}
		}
	}
	return recs
}

// chiefGearAntiPatterns is run by Analyze on every call and reads both
// snapshots together; each check inside decides for itself whether it
// depends on hero gear having started.
func (g *GearAdvisor) chiefGearAntiPatterns(chief ChiefGear, heroGear HeroGearSnapshot) []Recommendation {
	var recs []Recommendation

	anyHeroGearStarted := false
	for _, pieces := range heroGear {
		if heroIsGeared(pieces) {
			anyHeroGearStarted = true
			break
		}
	}
	ringQ, amuletQ := chief[GearRing].Quality, chief[GearAmulet].Quality
	if anyHeroGearStarted && (ringQ < QualityValues[QualityLegendary] || amuletQ < QualityValues[QualityLegendary]) {
		recs = append(recs, Recommendation{
			Priority: 1, Action: "Prioritize chief gear over hero gear", Category: CategoryGear,
			Reason: "Hero gear investment started before Ring and Amulet reached Legendary - chief gear benefits every troop, hero gear benefits one.",
			Source: SourceRules, RuleID: "chief_before_hero",
		})
	}

	helmetQ, armorQ := chief[GearHelmet].Quality, chief[GearArmor].Quality
	if helmetQ > ringQ || helmetQ > amuletQ || armorQ > ringQ || armorQ > amuletQ {
		recs = append(recs, Recommendation{
			Priority: 2, Action: "Redirect gear resources from Helmet/Armor to Ring/Amulet", Category: CategoryGear,
			Reason: "Helmet or Armor quality has overtaken Ring or Amulet - those defensive slots are a lower priority than the two attack slots.",
			Source: SourceRules, RuleID: "anti_pattern_defense_ahead_of_offense",
		})
	}
	return recs
}

func heroIsGeared(pieces [4]GearPiece) bool {
	for _, p := range pieces {
		if p.Quality > 0 || p.Level > 0 {
			return true
		}
	}
	return false
}
