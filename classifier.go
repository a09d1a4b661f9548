package advisor

import (
	"regexp"
	"strings"
)

// =============================================================================
// REQUEST CLASSIFIER (C7)
// =============================================================================
// Pure, keyword/regex-based. Deterministic and never calls out - the
// dispatcher (C9) decides what to do with the result.
// =============================================================================

// ClassifyResult is the output of Classify.
type ClassifyResult struct {
	Type       Source           `json:"type"` // rules | ai | hybrid
	Category   QuestionCategory `json:"category"`
	Confidence float64          `json:"confidence"`
}

var (
	lineupRe      = regexp.MustCompile(`\b(lineup|line-up|team|formation|squad|who (should|do) i (send|bring|use))\b`)
	joinerRe      = regexp.MustCompile(`\bjoin(er|ing)?\b`)
	upgradeRe     = regexp.MustCompile(`\b(upgrade|level up|star|ascend|ascension)\b`)
	skillsRe      = regexp.MustCompile(`\bskill`)
	investRe      = regexp.MustCompile(`\b(invest|spend|worth it|focus)\b`)
	gearRe        = regexp.MustCompile(`\b(gear|chief gear|charm|equipment)\b`)
	phaseRe       = regexp.MustCompile(`\bphase\b`)
	progressionRe = regexp.MustCompile(`\b(progress|milestone|next step|what should i do next)\b`)
	priorityRe    = regexp.MustCompile(`\bpriorit`)
	heroModeRe    = regexp.MustCompile(`\b(bear trap|svs|arena|exploration|crazy joe|garrison)\b`)
)

// Classify maps a free-form question to a type and category.
func Classify(question string) ClassifyResult {
	q := strings.ToLower(strings.TrimSpace(question))

	switch {
	case joinerRe.MatchString(q):
		return ClassifyResult{Type: SourceRules, Category: QuestionJoinerHeroes, Confidence: 0.85}
	case lineupRe.MatchString(q) || heroModeRe.MatchString(q):
		return ClassifyResult{Type: SourceRules, Category: QuestionLineup, Confidence: 0.9}
	case gearRe.MatchString(q):
		return ClassifyResult{Type: SourceRules, Category: QuestionGear, Confidence: 0.85}
	case phaseRe.MatchString(q) || progressionRe.MatchString(q):
		return ClassifyResult{Type: SourceRules, Category: QuestionProgression, Confidence: 0.8}
	case priorityRe.MatchString(q):
		return ClassifyResult{Type: SourceRules, Category: QuestionPriority, Confidence: 0.75}
	case skillsRe.MatchString(q):
		return ClassifyResult{Type: SourceHybrid, Category: QuestionSkills, Confidence: 0.6}
	case upgradeRe.MatchString(q):
		return ClassifyResult{Type: SourceHybrid, Category: QuestionUpgrade, Confidence: 0.6}
	case investRe.MatchString(q):
		return ClassifyResult{Type: SourceHybrid, Category: QuestionInvest, Confidence: 0.55}
	default:
		return ClassifyResult{Type: SourceAI, Category: QuestionOther, Confidence: 0.3}
	}
}

// NeedsAiFallback decides whether a hybrid rules result is thin enough to
// warrant an AI enhancement. This is a tunable policy, not a correctness
// contract - callers may swap in a stricter or looser predicate.
func NeedsAiFallback(rulesResultEmpty bool, question string) bool {
	if rulesResultEmpty {
		return true
	}
	q := strings.ToLower(question)
	return strings.Contains(q, "why") || strings.Contains(q, "explain") || strings.Contains(q, "compare")
}
