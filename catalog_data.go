package advisor

// =============================================================================
// DEFAULT CATALOG DATA
// =============================================================================
// Ships a self-contained hero roster and lineup-template set so the advisor
// runs without an external catalog file (mirrors DefaultModelRegistry's
// "local development without external config" role). The same data is
// mirrored in testdata/hero_catalog.json and testdata/lineup_templates.json
// as the §6 sample catalog files.
//
// Marquee-generation lists and the chief-gear priority table are carried
// from the game's own hero roster structure; the troop-ratio and slot
// layouts for modes beyond the three exercised by the named end-to-end
// scenarios (bear_trap, rally_joiner_attack/defense, garrison) are original
// extrapolations in the same shape, since the source spec only pins those
// three precisely.
// =============================================================================

// TierValues maps a tier letter to its numeric weight, used by Power() and
// by the level_main_three rule.
var TierValues = map[Tier]int{
	TierSPlus: 6,
	TierS:     5,
	TierA:     4,
	TierB:     3,
	TierC:     2,
	TierD:     1,
}

// TierScores maps a tier letter to its [0,1] value-ranking weight, used by
// rankByValue (§4.2).
var TierScores = map[Tier]float64{
	TierSPlus: 1.0,
	TierS:     0.85,
	TierA:     0.7,
	TierB:     0.5,
	TierC:     0.3,
	TierD:     0.15,
}

// QualityValues maps a gear quality name to its numeric tier ordinal.
var QualityValues = map[GearQuality]int{
	QualityCommon:    1,
	QualityUncommon:  2,
	QualityRare:      3,
	QualityEpic:      4,
	QualityLegendary: 5,
	QualityMythic:    6,
}

// ChiefGearSlotInfo is one row of the fixed chief-gear priority table.
type ChiefGearSlotInfo struct {
	Slot     GearSlot
	Priority int
	Reason   string
}

// ChiefGearOrder is the fixed priority table the gear advisor (C4) works
// through top to bottom.
var ChiefGearOrder = []ChiefGearSlotInfo{
	{GearRing, 1, "Universal attack buff for ALL troops"},
	{GearAmulet, 2, "PvP decisive - affects kill rates in SvS"},
	{GearGloves, 3, "Boosts marksman heroes"},
	{GearBoots, 4, "Boosts lancer heroes"},
	{GearHelmet, 5, "Defensive - less impactful than attack stats"},
	{GearArmor, 6, "Defensive - least priority"},
}

// HeroFocusLimit caps, by spending profile, how many heroes a player should
// actively invest skill points / stars into (§4.3's spending policy gate).
var HeroFocusLimit = map[SpendingProfile]int{
	SpendingF2P:     3,
	SpendingMinnow:  4,
	SpendingDolphin: 6,
	SpendingOrca:    10,
	SpendingWhale:   999,
}

// HeroGearLimit caps, by spending profile, how many heroes should be geared
// at all (§4.4).
var HeroGearLimit = map[SpendingProfile]int{
	SpendingF2P:     1,
	SpendingMinnow:  2,
	SpendingDolphin: 3,
	SpendingOrca:    4,
	SpendingWhale:   999,
}

// JessieSkillEffectByLevel is the fixed step table for Jessie's expedition
// skill ("Stand of Arms"), % damage dealt per skill level 1..5.
var JessieSkillEffectByLevel = [5]int{5, 10, 15, 20, 25}

// SergeySkillEffectByLevel is the fixed step table for Sergey's expedition
// skill ("Defenders' Edge"), % damage reduction per skill level 1..5.
var SergeySkillEffectByLevel = [5]int{4, 8, 12, 16, 20}

// CanonicalJoiners gives the ordered attack/defense joiner candidate lists
// consulted by the lineup builder's separate joiner-recommendation entry
// point (§4.5) — distinct from, and not necessarily equal to, any lineup
// template's Preferred list.
var CanonicalJoiners = struct {
	Attack  []string
	Defense []string
}{
	Attack:  []string{"Jessie", "Jeronimo"},
	Defense: []string{"Sergey", "Patrick", "Natalia"},
}

// GenerationMarquee lists the marquee heroes introduced in each generation,
// used by the acquire_gen{n} rule (§4.3).
var GenerationMarquee = map[int][]string{
	2: {"Flint", "Philly", "Alonso"},
	3: {"Logan", "Mia", "Greg"},
	4: {"Ahmose", "Reina", "Lynn"},
	5: {"Hector", "Wu Ming"},
	6: {"Patrick", "Charlie", "Cloris"},
	7: {"Gordon", "Renee", "Eugene"},
}

// DefaultHeroes is the built-in hero roster.
func DefaultHeroes() []HeroEntry {
	return []HeroEntry{
		{Name: "Vulcanus", Generation: 3, Class: ClassMarksman, Rarity: "SSR", TierOverall: TierSPlus, TierExpedition: TierSPlus, TierExploration: TierA},
		{Name: "Blanchette", Generation: 4, Class: ClassMarksman, Rarity: "SSR", TierOverall: TierS, TierExpedition: TierS, TierExploration: TierA},
		{Name: "Jeronimo", Generation: 2, Class: ClassMarksman, Rarity: "SR", TierOverall: TierA, TierExpedition: TierA, TierExploration: TierB},
		{Name: "Gwen", Generation: 1, Class: ClassMarksman, Rarity: "R", TierOverall: TierB, TierExpedition: TierB, TierExploration: TierB},
		{Name: "Natalia", Generation: 3, Class: ClassInfantry, Rarity: "SSR", TierOverall: TierSPlus, TierExpedition: TierS, TierExploration: TierS},
		{Name: "Alonso", Generation: 2, Class: ClassInfantry, Rarity: "SR", TierOverall: TierA, TierExpedition: TierA, TierExploration: TierB},
		{Name: "Molly", Generation: 2, Class: ClassInfantry, Rarity: "R", TierOverall: TierB, TierExpedition: TierB, TierExploration: TierB},
		{Name: "Jessie", Generation: 5, Class: ClassMarksman, Rarity: "SSR", TierOverall: TierSPlus, TierExpedition: TierSPlus, TierExploration: TierA},
		{Name: "Sergey", Generation: 5, Class: ClassInfantry, Rarity: "SSR", TierOverall: TierSPlus, TierExpedition: TierSPlus, TierExploration: TierA},
		{Name: "Patrick", Generation: 6, Class: ClassInfantry, Rarity: "SSR", TierOverall: TierS, TierExpedition: TierS, TierExploration: TierA},
		{Name: "Hervor", Generation: 7, Class: ClassInfantry, Rarity: "SSR", TierOverall: TierSPlus, TierExpedition: TierS, TierExploration: TierS},
		{Name: "Gatot", Generation: 1, Class: ClassInfantry, Rarity: "SR", TierOverall: TierA, TierExpedition: TierB, TierExploration: TierA},
		{Name: "Edith", Generation: 4, Class: ClassInfantry, Rarity: "SR", TierOverall: TierA, TierExpedition: TierB, TierExploration: TierA},
		{Name: "Wu Ming", Generation: 5, Class: ClassLancer, Rarity: "SSR", TierOverall: TierS, TierExpedition: TierA, TierExploration: TierS},
		{Name: "Flint", Generation: 2, Class: ClassInfantry, Rarity: "SR", TierOverall: TierA, TierExpedition: TierA, TierExploration: TierB},
		{Name: "Philly", Generation: 2, Class: ClassMarksman, Rarity: "SR", TierOverall: TierA, TierExpedition: TierA, TierExploration: TierB},
		{Name: "Logan", Generation: 3, Class: ClassInfantry, Rarity: "SR", TierOverall: TierA, TierExpedition: TierB, TierExploration: TierA},
		{Name: "Mia", Generation: 3, Class: ClassMarksman, Rarity: "SR", TierOverall: TierA, TierExpedition: TierA, TierExploration: TierB},
		{Name: "Greg", Generation: 3, Class: ClassLancer, Rarity: "R", TierOverall: TierB, TierExpedition: TierB, TierExploration: TierB},
		{Name: "Ahmose", Generation: 4, Class: ClassInfantry, Rarity: "SSR", TierOverall: TierS, TierExpedition: TierS, TierExploration: TierA},
		{Name: "Reina", Generation: 4, Class: ClassMarksman, Rarity: "SR", TierOverall: TierA, TierExpedition: TierA, TierExploration: TierB},
		{Name: "Lynn", Generation: 4, Class: ClassLancer, Rarity: "R", TierOverall: TierB, TierExpedition: TierB, TierExploration: TierB},
		{Name: "Hector", Generation: 5, Class: ClassInfantry, Rarity: "SSR", TierOverall: TierS, TierExpedition: TierS, TierExploration: TierA},
		{Name: "Charlie", Generation: 6, Class: ClassInfantry, Rarity: "SR", TierOverall: TierA, TierExpedition: TierA, TierExploration: TierB},
		{Name: "Cloris", Generation: 6, Class: ClassMarksman, Rarity: "SR", TierOverall: TierA, TierExpedition: TierA, TierExploration: TierB},
		{Name: "Gordon", Generation: 7, Class: ClassInfantry, Rarity: "SSR", TierOverall: TierS, TierExpedition: TierS, TierExploration: TierA},
		{Name: "Renee", Generation: 7, Class: ClassMarksman, Rarity: "SR", TierOverall: TierA, TierExpedition: TierA, TierExploration: TierB},
		{Name: "Eugene", Generation: 7, Class: ClassLancer, Rarity: "SR", TierOverall: TierA, TierExpedition: TierA, TierExploration: TierB},
	}
}

// DefaultTemplates is the built-in lineup template set.
func DefaultTemplates() map[string]LineupTemplate {
	return map[string]LineupTemplate{
		"bear_trap": {
			Name: "Bear Trap",
			Slots: []TemplateSlot{
				{Class: ClassMarksman, Role: "Lead Marksman", IsLead: true, Preferred: []string{"Vulcanus", "Gwen", "Mia"}},
				{Class: ClassMarksman, Role: "Marksman DPS", Preferred: []string{"Blanchette", "Philly", "Reina"}},
				{Class: ClassMarksman, Role: "Marksman DPS", Preferred: []string{"Jeronimo", "Cloris", "Renee"}},
			},
			TroopRatio:       TroopRatio{Infantry: 0, Lancer: 10, Marksman: 90},
			RatioExplanation: "Bear Trap is a pure marksman damage race; infantry and lancer only soak hits.",
			Notes:            "Bear Trap rewards raw marksman damage over survivability.",
			KeyHeroes:        []string{"Vulcanus", "Blanchette"},
		},
		"rally_joiner_attack": {
			Name: "Rally Joiner (Attack)",
			Slots: []TemplateSlot{
				{Class: ClassMarksman, Role: "Joiner", IsLead: true, Preferred: []string{"Jessie"}, NoClassFallback: true},
			},
			TroopRatio:    TroopRatio{Infantry: 0, Lancer: 0, Marksman: 100},
			KeyHeroes:     []string{"Jessie"},
			JoinerWarning: "Jessie not available - without her, joiners deal no bonus damage (she adds up to +25% damage dealt at max skill).",
			Notes:         "Only the joining hero's top-right expedition skill applies to rally damage.",
		},
		"rally_joiner_defense": {
			Name: "Rally Joiner (Defense)",
			Slots: []TemplateSlot{
				{Class: ClassInfantry, Role: "Joiner", IsLead: true, Preferred: []string{"Sergey"}, NoClassFallback: true},
			},
			TroopRatio:    TroopRatio{Infantry: 100, Lancer: 0, Marksman: 0},
			KeyHeroes:     []string{"Sergey"},
			JoinerWarning: "Sergey not available - without him, joiners add no damage reduction (he adds up to +20% DMG reduction at max skill).",
			Notes:         "Only the joining hero's top-right expedition skill applies to rally defense.",
		},
		"garrison": {
			Name: "Garrison",
			Slots: []TemplateSlot{
				{Class: ClassInfantry, Role: "Lead", IsLead: true, Preferred: []string{"Hervor", "Patrick", "Gatot"}},
				{Class: ClassLancer, Role: "Support", Preferred: []string{"Wu Ming", "Eugene", "Lynn"}},
				{Class: ClassMarksman, Role: "Support", Preferred: []string{"Blanchette", "Mia", "Reina"}},
			},
			TroopRatio: TroopRatio{Infantry: 50, Lancer: 20, Marksman: 30},
			Notes:      "Garrison favors sustain over burst; prioritize defensive skill sets.",
			KeyHeroes:  []string{"Hervor"},
			SustainHeroes: []SustainHero{
				{Name: "Natalia", Description: "high defense expedition kit, strong standalone garrison lead"},
				{Name: "Gatot", Description: "shield generation, solid early sustain option"},
				{Name: "Edith", Description: "heal-over-time support, pairs well with Hervor"},
				{Name: "Wu Ming", Description: "lancer sustain, covers the support slot if no marksman is owned"},
			},
		},
		"world_march": {
			Name: "World March",
			Slots: []TemplateSlot{
				{Class: ClassInfantry, Role: "Lead", IsLead: true, Preferred: []string{"Hervor", "Ahmose", "Gordon"}},
				{Class: ClassLancer, Role: "Support", Preferred: []string{"Wu Ming", "Eugene", "Greg"}},
				{Class: ClassMarksman, Role: "Support", Preferred: []string{"Vulcanus", "Mia", "Reina"}},
			},
			TroopRatio: TroopRatio{Infantry: 40, Lancer: 30, Marksman: 30},
			Notes:      "Balanced open-field march for resource gathering protection.",
			KeyHeroes:  []string{"Hervor"},
		},
		"crazy_joe": {
			Name: "Crazy Joe",
			Slots: []TemplateSlot{
				{Class: ClassInfantry, Role: "Lead", IsLead: true, Preferred: []string{"Hervor", "Patrick", "Ahmose"}},
				{Class: ClassLancer, Role: "Support", Preferred: []string{"Wu Ming", "Eugene"}},
				{Class: ClassMarksman, Role: "Support", Preferred: []string{"Vulcanus", "Blanchette"}},
			},
			TroopRatio:       TroopRatio{Infantry: 90, Lancer: 10, Marksman: 0},
			RatioExplanation: "Crazy Joe is an infantry meat-shield event; lancer only fills the remaining slots.",
			Notes:            "Stack infantry hard, marksman contributes almost nothing here.",
			KeyHeroes:        []string{"Hervor"},
		},
		"svs_attack": {
			Name: "SvS Rally Leader",
			Slots: []TemplateSlot{
				{Class: ClassInfantry, Role: "Lead", IsLead: true, Preferred: []string{"Hervor", "Gordon", "Ahmose"}},
				{Class: ClassLancer, Role: "Support", Preferred: []string{"Wu Ming", "Eugene", "Lynn"}},
				{Class: ClassMarksman, Role: "Support", Preferred: []string{"Vulcanus", "Blanchette", "Jeronimo"}},
			},
			TroopRatio: TroopRatio{Infantry: 20, Lancer: 30, Marksman: 50},
			Notes:      "SvS rally leader lineup, weighted toward marksman burst.",
			KeyHeroes:  []string{"Hervor", "Vulcanus"},
		},
		"arena": {
			Name: "Arena",
			Slots: []TemplateSlot{
				{Class: ClassInfantry, Role: "Lead", IsLead: true, Preferred: []string{"Sergey", "Hervor"}},
				{Class: ClassLancer, Role: "Support", Preferred: []string{"Wu Ming", "Greg"}},
				{Class: ClassMarksman, Role: "Support", Preferred: []string{"Jessie", "Vulcanus"}},
			},
			TroopRatio: TroopRatio{Infantry: 34, Lancer: 33, Marksman: 33},
			Notes:      "1v1 arena favors balanced, high individual-power heroes.",
			KeyHeroes:  []string{"Sergey"},
		},
		"exploration": {
			Name: "Exploration",
			Slots: []TemplateSlot{
				{Class: ClassInfantry, Role: "Lead", IsLead: true, Preferred: []string{"Ahmose", "Hervor"}},
				{Class: ClassLancer, Role: "Support", Preferred: []string{"Lynn", "Eugene"}},
				{Class: ClassMarksman, Role: "Support", Preferred: []string{"Reina", "Mia"}},
			},
			TroopRatio: TroopRatio{Infantry: 34, Lancer: 33, Marksman: 33},
			Notes:      "Exploration skills matter more than expedition skills here.",
			KeyHeroes:  []string{"Ahmose"},
		},
		"svs_march": {
			Name: "SvS Field March",
			Slots: []TemplateSlot{
				{Class: ClassInfantry, Role: "Lead", IsLead: true, Preferred: []string{"Gordon", "Hervor"}},
				{Class: ClassLancer, Role: "Support", Preferred: []string{"Eugene", "Wu Ming"}},
				{Class: ClassMarksman, Role: "Support", Preferred: []string{"Blanchette", "Vulcanus"}},
			},
			TroopRatio: TroopRatio{Infantry: 30, Lancer: 30, Marksman: 40},
			Notes:      "Field march composition for SvS skirmishes.",
			KeyHeroes:  []string{"Gordon"},
		},
	}
}

// DefaultCatalog builds the Catalog from the built-in roster and templates.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultHeroes(), DefaultTemplates())
}
