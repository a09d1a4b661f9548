package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFurnaceFc(t *testing.T) {
	tier, sub, ok := ParseFurnaceFc("FC4-2")
	require.True(t, ok)
	assert.Equal(t, 4, tier)
	assert.Equal(t, 2, sub)

	tier, sub, ok = ParseFurnaceFc("fc10-1")
	require.True(t, ok)
	assert.Equal(t, 10, tier)
	assert.Equal(t, 1, sub)

	_, _, ok = ParseFurnaceFc("not-a-tier")
	assert.False(t, ok)

	_, _, ok = ParseFurnaceFc("FC4")
	assert.False(t, ok)
}

func TestDetectPhase_FurnaceBands(t *testing.T) {
	tracker := NewProgressionTracker()

	cases := []struct {
		name  string
		level int
		want  string
	}{
		{"foundation low", 1, "foundation"},
		{"foundation boundary", 14, "foundation"},
		{"growth boundary low", 15, "growth"},
		{"growth boundary high", 24, "growth"},
		{"power boundary low", 25, "power"},
		{"power boundary high", 29, "power"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			phase := tracker.DetectPhase(Profile{FurnaceLevel: c.level})
			assert.Equal(t, c.want, phase)
		})
	}
}

func TestDetectPhase_MaxFurnaceWithoutFcLevel(t *testing.T) {
	tracker := NewProgressionTracker()
	phase := tracker.DetectPhase(Profile{FurnaceLevel: 30})
	assert.Equal(t, "max_furnace", phase)
}

func TestDetectPhase_FireCrystalTiers(t *testing.T) {
	tracker := NewProgressionTracker()

	cases := []struct {
		name string
		fc   string
		want string
	}{
		{"early low", "FC1-1", "fc_early"},
		{"early boundary", "FC3-5", "fc_early"},
		{"mid boundary low", "FC4-1", "fc_mid"},
		{"mid boundary high", "FC7-5", "fc_mid"},
		{"late boundary", "FC8-1", "fc_late"},
		{"late high", "FC12-3", "fc_late"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			phase := tracker.DetectPhase(Profile{FurnaceLevel: 30, FurnaceFcLevel: c.fc})
			assert.Equal(t, c.want, phase)
		})
	}
}

func TestDetectPhase_UnparseableFcFallsBackToMaxFurnace(t *testing.T) {
	tracker := NewProgressionTracker()
	phase := tracker.DetectPhase(Profile{FurnaceLevel: 35, FurnaceFcLevel: "garbage"})
	assert.Equal(t, "max_furnace", phase)
}

func TestPhaseInfoFor_UnknownPhaseReturnsPlaceholder(t *testing.T) {
	tracker := NewProgressionTracker()
	info := tracker.PhaseInfoFor("nonexistent")
	assert.Equal(t, "nonexistent", info.PhaseID)
	assert.Equal(t, "Unknown phase", info.PhaseName)
	assert.Empty(t, info.FocusAreas)
}

func TestProgressionTracker_Recommend_PriorityCapsAtFive(t *testing.T) {
	tracker := NewProgressionTracker()
	recs := tracker.Recommend(Profile{FurnaceLevel: 1})

	require.Len(t, recs, len(phaseCatalog["foundation"].FocusAreas))
	for i, r := range recs {
		assert.Equal(t, phaseCatalog["foundation"].FocusAreas[i], r.Action)
		assert.LessOrEqual(t, r.Priority, 5)
		assert.Equal(t, CategoryProgression, r.Category)
		assert.Equal(t, SourceRules, r.Source)
	}
	// Priorities increase with focus-area index: 2, 3, 4.
	assert.Equal(t, 2, recs[0].Priority)
	assert.Equal(t, 3, recs[1].Priority)
	assert.Equal(t, 4, recs[2].Priority)
}

func TestProgressionTracker_Recommend_Deterministic(t *testing.T) {
	tracker := NewProgressionTracker()
	profile := Profile{FurnaceLevel: 30, FurnaceFcLevel: "FC5-2"}

	first := tracker.Recommend(profile)
	second := tracker.Recommend(profile)
	assert.Equal(t, first, second)
}
