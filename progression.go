package advisor

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// PROGRESSION TRACKER (C6)
// =============================================================================
// Maps a profile's furnace level (and, past max furnace, its parsed Fire
// Crystal sub-tier) to a phase ID with a fixed set of tips. Furnace/FC phase
// boundaries are not pinned by name anywhere upstream - authored here as a
// reasonable banding over the documented furnaceLevel/furnaceFcLevel fields.
// =============================================================================

// PhaseInfo describes one progression phase.
type PhaseInfo struct {
	PhaseID        string   `json:"phaseId"`
	PhaseName      string   `json:"phaseName"`
	FocusAreas     []string `json:"focusAreas"`
	CommonMistakes []string `json:"commonMistakes"`
	Bottlenecks    []string `json:"bottlenecks"`
	NextMilestone  string   `json:"nextMilestone"`
}

// ProgressionTracker classifies a profile into a phase and yields tips.
type ProgressionTracker struct{}

// NewProgressionTracker constructs a ProgressionTracker. It is stateless.
func NewProgressionTracker() *ProgressionTracker { return &ProgressionTracker{} }

// ParseFurnaceFc parses a "FCn-m" string into its numeric tier and sub-tier.
func ParseFurnaceFc(fc string) (tier int, sub int, ok bool) {
	fc = strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(fc)), "FC")
	parts := strings.SplitN(fc, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	tier, err1 := strconv.Atoi(parts[0])
	sub, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return tier, sub, true
}

// DetectPhase maps a profile to a phaseId.
func (p *ProgressionTracker) DetectPhase(profile Profile) string {
	if profile.FurnaceLevel < 30 {
		switch {
		case profile.FurnaceLevel < 15:
			return "foundation"
		case profile.FurnaceLevel < 25:
			return "growth"
		default:
			return "power"
		}
	}
	fcTier, _, ok := ParseFurnaceFc(profile.FurnaceFcLevel)
	if !ok {
		return "max_furnace"
	}
	switch {
	case fcTier <= 3:
		return "fc_early"
	case fcTier <= 7:
		return "fc_mid"
	default:
		return "fc_late"
	}
}

// PhaseInfoFor returns the static info block for a phaseId.
func (p *ProgressionTracker) PhaseInfoFor(phaseID string) PhaseInfo {
	if info, ok := phaseCatalog[phaseID]; ok {
		return info
	}
	return PhaseInfo{PhaseID: phaseID, PhaseName: "Unknown phase"}
}

// Recommend produces phase-appropriate Recommendation values for a profile.
func (p *ProgressionTracker) Recommend(profile Profile) []Recommendation {
	phaseID := p.DetectPhase(profile)
	info := p.PhaseInfoFor(phaseID)
	recs := make([]Recommendation, 0, len(info.FocusAreas))
	for i, focus := range info.FocusAreas {
		recs = append(recs, Recommendation{
			Priority: minInt(2+i, 5), Action: focus, Category: CategoryProgression,
			Reason: fmt.Sprintf("%s phase focus area.", info.PhaseName),
			Source: SourceRules, RuleID: fmt.Sprintf("phase_%s_focus_%d", phaseID, i),
		})
	}
	return recs
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

var phaseCatalog = map[string]PhaseInfo{
	"foundation": {
		PhaseID: "foundation", PhaseName: "Foundation",
		FocusAreas:     []string{"Build your first 3 heroes to level 40+", "Push Ring and Amulet chief gear to Legendary", "Join an active alliance"},
		CommonMistakes: []string{"Spreading resources across too many heroes", "Skipping chief gear for hero gear"},
		Bottlenecks:    []string{"Furnace construction speed", "Hero shard availability"},
		NextMilestone:  "Reach furnace level 15",
	},
	"growth": {
		PhaseID: "growth", PhaseName: "Growth",
		FocusAreas:     []string{"Fill out a bear trap lineup", "Unlock Jessie or Sergey depending on priorities", "Start gearing your lead hero"},
		CommonMistakes: []string{"Ignoring troop ratio for the modes you actually run", "Leaving chief gear below Legendary while gearing heroes"},
		Bottlenecks:    []string{"Troop training queue time", "Gear material drop rates"},
		NextMilestone:  "Reach furnace level 25",
	},
	"power": {
		PhaseID: "power", PhaseName: "Power",
		FocusAreas:     []string{"Push toward Mythic chief gear", "Acquire a current-generation marquee hero", "Optimize rally lineups for SvS"},
		CommonMistakes: []string{"Over-investing in off-meta heroes", "Neglecting exploration skills for a farm or sub account"},
		Bottlenecks:    []string{"Mythic gear material scarcity", "Stamina for marches"},
		NextMilestone:  "Reach furnace level 30",
	},
	"max_furnace": {
		PhaseID: "max_furnace", PhaseName: "Max Furnace",
		FocusAreas:     []string{"Begin Fire Crystal construction", "Diversify hero tier coverage across modes"},
		CommonMistakes: []string{"Delaying Fire Crystal start while resources idle"},
		Bottlenecks:    []string{"Fire Crystal construction cost"},
		NextMilestone:  "Start FC1",
	},
	"fc_early": {
		PhaseID: "fc_early", PhaseName: "Fire Crystal (Early)",
		FocusAreas:     []string{"Keep chief gear and hero investment proportional to FC tier", "Maintain generation relevance on core heroes"},
		CommonMistakes: []string{"Racing FC tiers while core heroes fall behind generation"},
		Bottlenecks:    []string{"Fire Crystal shard supply"},
		NextMilestone:  "Reach FC4",
	},
	"fc_mid": {
		PhaseID: "fc_mid", PhaseName: "Fire Crystal (Mid)",
		FocusAreas:     []string{"Push Mythic gear across all six chief slots", "Maintain multiple mode-ready lineups"},
		CommonMistakes: []string{"Single-lineup tunnel vision"},
		Bottlenecks:    []string{"Alliance tech contribution caps"},
		NextMilestone:  "Reach FC8",
	},
	"fc_late": {
		PhaseID: "fc_late", PhaseName: "Fire Crystal (Late)",
		FocusAreas:     []string{"Maintain marginal gains across every system", "Mentor or support alliance rally structure"},
		CommonMistakes: []string{"Diminishing-returns spending without a clear goal"},
		Bottlenecks:    []string{"Whale-tier resource costs"},
		NextMilestone:  "Maintain current tier",
	},
}
