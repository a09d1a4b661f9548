package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1: Bear Trap, S+ roster.
func TestBuildLineup_BearTrapSPlusRoster(t *testing.T) {
	catalog := testCatalog()
	owned := map[string]OwnedHero{
		"Vulcanus":   {Name: "Vulcanus", Level: 80, Stars: 5},
		"Blanchette": {Name: "Blanchette", Level: 70, Stars: 5},
		"Jeronimo":   {Name: "Jeronimo", Level: 80, Stars: 5},
	}

	lineup := BuildLineup(catalog, "bear_trap", owned, 7)

	require.Len(t, lineup.Slots, 3)
	assert.Equal(t, "Vulcanus", lineup.Slots[0].Hero)
	assert.True(t, lineup.Slots[0].IsLead)
	assert.Equal(t, "Blanchette", lineup.Slots[1].Hero)
	assert.Equal(t, "Jeronimo", lineup.Slots[2].Hero)
	assert.Equal(t, TroopRatio{Infantry: 0, Lancer: 10, Marksman: 90}, lineup.TroopRatio)
	assert.Equal(t, ConfidenceHigh, lineup.Confidence)
	assert.Contains(t, lineup.Notes, "marksman damage race")
}

// Scenario 2: Rally joiner attack, no Jessie.
func TestBuildLineup_RallyJoinerAttackNoJessie(t *testing.T) {
	catalog := testCatalog()
	owned := map[string]OwnedHero{
		"Alonso":   {Name: "Alonso", Level: 60},
		"Molly":    {Name: "Molly", Level: 50},
		"Jeronimo": {Name: "Jeronimo", Level: 70},
	}

	lineup := BuildLineup(catalog, "rally_joiner_attack", owned, 7)

	require.Len(t, lineup.Slots, 1)
	assert.Equal(t, "", lineup.Slots[0].Hero)
	assert.Equal(t, "Need Marksman", lineup.Slots[0].Status)
	assert.Contains(t, lineup.Notes, "Jessie not available")
	assert.Contains(t, lineup.Notes, "+25% damage dealt")
	assert.Contains(t, []LineupConfidence{ConfidenceMedium, ConfidenceLow}, lineup.Confidence)
	assert.Contains(t, lineup.RecommendedToGet, "Jessie")
}

// NoClassFallback must not substitute Jeronimo (a Marksman) for the Jessie-only joiner slot.
func TestBuildLineup_JoinerSlotNeverFallsBackToOtherClassMembers(t *testing.T) {
	catalog := testCatalog()
	owned := map[string]OwnedHero{
		"Jeronimo": {Name: "Jeronimo", Level: 80, Stars: 5},
	}

	lineup := BuildLineup(catalog, "rally_joiner_attack", owned, 7)
	assert.Equal(t, "", lineup.Slots[0].Hero)
}

// Scenario 6: Garrison sustain hint - exactly one hint even when multiple qualify.
func TestBuildLineup_GarrisonSustainHintExactlyOne(t *testing.T) {
	catalog := testCatalog()
	strong := OwnedHero{Level: 80, Stars: 5, Ascension: 5}
	hervor := strong
	hervor.Name = "Hervor"
	natalia := strong
	natalia.Name = "Natalia"
	gatot := strong
	gatot.Name = "Gatot"

	owned := map[string]OwnedHero{
		"Hervor":  hervor,
		"Natalia": natalia,
		"Gatot":   gatot,
	}

	lineup := BuildLineup(catalog, "garrison", owned, 7)

	require.Equal(t, "Hervor", lineup.Slots[0].Hero)
	assert.Equal(t, 1, strings.Count(lineup.Notes, "might be better for garrison"))
	assert.Contains(t, lineup.Notes, "Natalia might be better for garrison")
}

func TestBuildLineup_EmptyOwnedSetYieldsPlaceholdersAndLowConfidence(t *testing.T) {
	catalog := testCatalog()
	lineup := BuildLineup(catalog, "bear_trap", map[string]OwnedHero{}, 7)

	require.Len(t, lineup.Slots, 3)
	for _, s := range lineup.Slots {
		assert.Equal(t, "", s.Hero)
	}
	assert.Equal(t, ConfidenceLow, lineup.Confidence)
}

func TestBuildLineup_Deterministic(t *testing.T) {
	catalog := testCatalog()
	owned := map[string]OwnedHero{
		"Vulcanus":   {Name: "Vulcanus", Level: 80, Stars: 5},
		"Blanchette": {Name: "Blanchette", Level: 70, Stars: 5},
	}

	first := BuildLineup(catalog, "bear_trap", owned, 7)
	second := BuildLineup(catalog, "bear_trap", owned, 7)
	assert.Equal(t, first, second)
}

func TestBuildLineup_NonLeadSlotPicksHighestPowerAmongPreferred(t *testing.T) {
	catalog := testCatalog()
	owned := map[string]OwnedHero{
		"Vulcanus":   {Name: "Vulcanus", Level: 80, Stars: 5},
		"Blanchette": {Name: "Blanchette", Level: 10, Stars: 1},
		"Philly":     {Name: "Philly", Level: 80, Stars: 5},
	}

	lineup := BuildLineup(catalog, "bear_trap", owned, 7)
	// Slot 2 prefers Blanchette, Philly, Reina - Philly is the higher-power
	// eligible candidate despite being listed second.
	assert.Equal(t, "Philly", lineup.Slots[1].Hero)
}

func TestRecommendJoiner_FallsThroughCanonicalList(t *testing.T) {
	owned := map[string]OwnedHero{
		"Jeronimo": {Name: "Jeronimo", Level: 60, ExpeditionSkillLevels: [3]int{3, 0, 0}},
	}

	rec := RecommendJoiner(owned, true)
	assert.Equal(t, "Jeronimo", rec.Hero)
	assert.Equal(t, 3, rec.SkillLevel)
}

func TestRecommendJoiner_NoneOwnedRecommendsSendingNoHero(t *testing.T) {
	rec := RecommendJoiner(map[string]OwnedHero{}, true)
	assert.Equal(t, "", rec.Hero)
	assert.Contains(t, rec.Action, "REMOVE ALL HEROES")
}

