package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewCatalog(DefaultHeroes(), DefaultTemplates())
}

func TestHeroAnalyzer_EmptyRosterReturnsNoHeroes(t *testing.T) {
	analyzer := NewHeroAnalyzer(testCatalog())

	recs := analyzer.Analyze(nil, Profile{})
	require.Len(t, recs, 1)
	assert.Equal(t, "no_heroes", recs[0].RuleID)
	assert.Equal(t, 1, recs[0].Priority)
}

func TestHeroAnalyzer_JessieRules_UnlockWhenMissing(t *testing.T) {
	analyzer := NewHeroAnalyzer(testCatalog())
	owned := []OwnedHero{{Name: "Alonso", Level: 40}}
	profile := Profile{Priorities: Priorities{Rally: 4}}

	recs := analyzer.Analyze(owned, profile)
	found := findRec(recs, "unlock_jessie")
	require.NotNil(t, found)
	assert.Equal(t, 1, found.Priority)
}

func TestHeroAnalyzer_JessieRules_SkippedWhenRallyPriorityLow(t *testing.T) {
	analyzer := NewHeroAnalyzer(testCatalog())
	owned := []OwnedHero{{Name: "Alonso", Level: 40}}
	profile := Profile{Priorities: Priorities{Rally: 1}}

	recs := analyzer.Analyze(owned, profile)
	assert.Nil(t, findRec(recs, "unlock_jessie"))
}

func TestHeroAnalyzer_JessieRules_SkillUpgradeWhenOwnedButNotMaxed(t *testing.T) {
	analyzer := NewHeroAnalyzer(testCatalog())
	owned := []OwnedHero{{Name: "Jessie", Level: 60, ExpeditionSkillLevels: [3]int{2, 0, 0}}}
	profile := Profile{Priorities: Priorities{Rally: 3}}

	recs := analyzer.Analyze(owned, profile)
	found := findRec(recs, "level_jessie_skill")
	require.NotNil(t, found)
	assert.Contains(t, found.Reason, "joiner damage")
}

func TestHeroAnalyzer_SergeyRules_SymmetricToJessie(t *testing.T) {
	analyzer := NewHeroAnalyzer(testCatalog())
	owned := []OwnedHero{{Name: "Alonso", Level: 40}}

	// Castle priority 4 -> priority 1, mirroring Jessie's Rally>=4 rule.
	highPriority := Profile{Priorities: Priorities{Castle: 4}}
	recs := analyzer.Analyze(owned, highPriority)
	found := findRec(recs, "unlock_sergey")
	require.NotNil(t, found)
	assert.Equal(t, 1, found.Priority)

	// Castle priority 3 -> priority 2.
	lowerPriority := Profile{Priorities: Priorities{Castle: 3}}
	recs = analyzer.Analyze(owned, lowerPriority)
	found = findRec(recs, "unlock_sergey")
	require.NotNil(t, found)
	assert.Equal(t, 2, found.Priority)
}

func TestHeroAnalyzer_LevelMainThree(t *testing.T) {
	analyzer := NewHeroAnalyzer(testCatalog())
	owned := []OwnedHero{
		{Name: "Vulcanus", Level: 20},
		{Name: "Blanchette", Level: 20},
	}

	recs := analyzer.Analyze(owned, Profile{})
	count := 0
	for _, r := range recs {
		if r.RuleID == "level_main_three" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestHeroAnalyzer_LevelMainThree_SkippedOnceThreeAreLeveled(t *testing.T) {
	analyzer := NewHeroAnalyzer(testCatalog())
	owned := []OwnedHero{
		{Name: "Vulcanus", Level: 40},
		{Name: "Blanchette", Level: 40},
		{Name: "Jeronimo", Level: 40},
	}

	recs := analyzer.Analyze(owned, Profile{})
	assert.Nil(t, findRec(recs, "level_main_three"))
}

func TestHeroAnalyzer_F2PGatesSkillAndStarRulesToTopN(t *testing.T) {
	analyzer := NewHeroAnalyzer(testCatalog())
	// F2P focus limit is 3; own 4 viable heroes, the 4th ranked lowest should
	// get no skill/star recommendations at all.
	owned := []OwnedHero{
		{Name: "Vulcanus", Level: 60, Stars: 4, ExpeditionSkillLevels: [3]int{1, 0, 0}},
		{Name: "Blanchette", Level: 60, Stars: 4, ExpeditionSkillLevels: [3]int{1, 0, 0}},
		{Name: "Jessie", Level: 60, Stars: 4, ExpeditionSkillLevels: [3]int{1, 0, 0}},
		{Name: "Gwen", Level: 60, Stars: 4, ExpeditionSkillLevels: [3]int{1, 0, 0}},
	}
	profile := Profile{SpendingProfile: SpendingF2P}

	recs := analyzer.Analyze(owned, profile)
	for _, r := range recs {
		if r.Hero == "Gwen" && (r.RuleID == "upgrade_expedition_skill" || r.RuleID == "ascend_stars") {
			t.Fatalf("expected Gwen to be gated out of skill/star rules for f2p, got %+v", r)
		}
	}
}

func TestHeroAnalyzer_FarmAccountRules(t *testing.T) {
	analyzer := NewHeroAnalyzer(testCatalog())
	owned := []OwnedHero{
		{Name: "Jessie", Level: 40, ExplorationSkillLevels: [3]int{3, 0, 0}},
		{Name: "Alonso", Level: 40},
		{Name: "Molly", Level: 40},
	}
	profile := Profile{IsFarmAccount: true}

	recs := analyzer.Analyze(owned, profile)
	require.NotNil(t, findRec(recs, "farm_too_many_heroes"))
	require.NotNil(t, findRec(recs, "farm_jessie_only"))
	require.NotNil(t, findRec(recs, "farm_exploration_warning"))
}

func TestHeroAnalyzer_Deterministic(t *testing.T) {
	analyzer := NewHeroAnalyzer(testCatalog())
	owned := []OwnedHero{{Name: "Vulcanus", Level: 60, Stars: 4, ExpeditionSkillLevels: [3]int{1, 0, 0}}}
	profile := Profile{SpendingProfile: SpendingDolphin, Priorities: Priorities{Rally: 4, Castle: 4}}

	first := analyzer.Analyze(owned, profile)
	second := analyzer.Analyze(owned, profile)
	assert.Equal(t, first, second)
}

func findRec(recs []Recommendation, ruleID string) *Recommendation {
	for i := range recs {
		if recs[i].RuleID == ruleID {
			return &recs[i]
		}
	}
	return nil
}
