package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGearAdvisor_NoChiefGearYieldsStartRecommendations(t *testing.T) {
	advisor := NewGearAdvisor()

	recs := advisor.Analyze(nil, nil, Profile{})
	require.NotNil(t, findRec(recs, "chief_gear_start_ring"))
	require.NotNil(t, findRec(recs, "chief_gear_start_amulet"))
}

func TestGearAdvisor_ChiefGearOrderPrioritizesRingThenAmulet(t *testing.T) {
	advisor := NewGearAdvisor()
	chief := ChiefGear{
		GearRing:   {Quality: QualityValues[QualityRare]},
		GearAmulet: {Quality: QualityValues[QualityCommon]},
	}

	recs := advisor.Analyze(chief, nil, Profile{})
	ring := findRec(recs, "chief_gear_ring")
	amulet := findRec(recs, "chief_gear_amulet")
	require.NotNil(t, ring)
	require.NotNil(t, amulet)
	assert.Equal(t, 1, ring.Priority)
	assert.Equal(t, 2, amulet.Priority)
}

// Scenario 3: F2P hero-gear over-investment. Gear started on both Alonso and
// Molly while chief ring is only Rare and amulet only Common - expect a
// priority-1 chief_before_hero warning AND a priority-1 f2p_hero_gear_limit
// warning, with ring at priority 1 and amulet at priority 2 among the chief
// gear recs.
func TestGearAdvisor_F2PHeroGearOverInvestment(t *testing.T) {
	advisor := NewGearAdvisor()
	chief := ChiefGear{
		GearRing:   {Quality: QualityValues[QualityRare]},
		GearAmulet: {Quality: QualityValues[QualityCommon]},
	}
	heroGear := HeroGearSnapshot{
		"Alonso": {{Quality: 2, Level: 10}},
		"Molly":  {{Quality: 1, Level: 5}},
	}
	profile := Profile{SpendingProfile: SpendingF2P}

	recs := advisor.Analyze(chief, heroGear, profile)

	chiefBeforeHero := findRec(recs, "chief_before_hero")
	require.NotNil(t, chiefBeforeHero)
	assert.Equal(t, 1, chiefBeforeHero.Priority)

	spreadWarning := findRec(recs, "f2p_hero_gear_limit")
	require.NotNil(t, spreadWarning)
	assert.Equal(t, 1, spreadWarning.Priority)

	ring := findRec(recs, "chief_gear_ring")
	amulet := findRec(recs, "chief_gear_amulet")
	require.NotNil(t, ring)
	require.NotNil(t, amulet)
	assert.Equal(t, 1, ring.Priority)
	assert.Equal(t, 2, amulet.Priority)
}

func TestGearAdvisor_JoinerHeroGearWastedOutsideWhale(t *testing.T) {
	advisor := NewGearAdvisor()
	heroGear := HeroGearSnapshot{"Jessie": {{Quality: 2, Level: 10}}}

	recs := advisor.Analyze(ChiefGear{}, heroGear, Profile{SpendingProfile: SpendingDolphin})
	require.NotNil(t, findRec(recs, "hero_gear_joiner_waste"))

	recsWhale := advisor.Analyze(ChiefGear{}, heroGear, Profile{SpendingProfile: SpendingWhale})
	assert.Nil(t, findRec(recsWhale, "hero_gear_joiner_waste"))
}

func TestGearAdvisor_DefenseSlotsAheadOfOffenseWarning(t *testing.T) {
	advisor := NewGearAdvisor()
	chief := ChiefGear{
		GearRing:   {Quality: QualityValues[QualityCommon]},
		GearAmulet: {Quality: QualityValues[QualityCommon]},
		GearHelmet: {Quality: QualityValues[QualityRare]},
	}

	recs := advisor.Analyze(chief, nil, Profile{})
	require.NotNil(t, findRec(recs, "anti_pattern_defense_ahead_of_offense"))
}

func TestGearAdvisor_MythicPushOnceRingAndAmuletLegendary(t *testing.T) {
	advisor := NewGearAdvisor()
	chief := ChiefGear{
		GearRing:   {Quality: QualityValues[QualityLegendary]},
		GearAmulet: {Quality: QualityValues[QualityLegendary]},
	}

	recs := advisor.Analyze(chief, nil, Profile{})
	require.NotNil(t, findRec(recs, "chief_gear_mythic_ring"))
}
