package advisor

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bearsden/advisor/metrics"
)

// =============================================================================
// ADVISOR FACADE (C9)
// =============================================================================
// Ask is the single entry point the transport layer calls. It classifies the
// question, answers from rules wherever the category supports it, falls back
// to the LLM adapter for anything a hybrid category leaves thin or that the
// classifier couldn't place at all, and logs the exchange through the rate
// limiter whenever one is configured - even when an upstream error means the
// logged answer is itself an error message (§4.9).
// =============================================================================

// AskResponse is what Ask returns to a caller.
type AskResponse struct {
	Answer          string           `json:"answer"`
	Source          Source           `json:"source"`
	Category        QuestionCategory `json:"category"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Lineup          *LineupRecommendation `json:"lineup,omitempty"`
	Joiner          *JoinerRecommendation `json:"joiner,omitempty"`
	Provider        string           `json:"provider,omitempty"`
	Model           string           `json:"model,omitempty"`
}

// Advisor wires the classifier, the three rule analyzers, the rate limiter,
// and the LLM adapter behind one Ask call.
type Advisor struct {
	catalog      *Catalog
	orchestrator *Orchestrator
	rateLimiter  *RateLimiter
	llm          LLMClient
	appConfig    AppConfig
}

// NewAdvisor builds the facade. llm may be nil, in which case any question
// that would otherwise need the AI path instead returns notConfiguredError;
// a nil rateLimiter makes that path return aiDisabledError.
func NewAdvisor(catalog *Catalog, rateLimiter *RateLimiter, llm LLMClient, appConfig AppConfig) *Advisor {
	return &Advisor{
		catalog:      catalog,
		orchestrator: NewOrchestrator(catalog),
		rateLimiter:  rateLimiter,
		llm:          llm,
		appConfig:    appConfig,
	}
}

// Ask answers one free-form question per §4.9's classify -> rules ->
// optional AI fallback -> log flow.
func (a *Advisor) Ask(ctx context.Context, user User, profile Profile, owned []OwnedHero, chief ChiefGear, heroGear HeroGearSnapshot, question string, forceAI bool) AskResponse {
	start := time.Now()
	cls := Classify(question)

	var resp AskResponse
	resp.Category = cls.Category
	rulesEmpty := true

	if !forceAI && cls.Type != SourceAI {
		resp = a.answerFromRules(cls, profile, owned, chief, heroGear, question)
		resp.Category = cls.Category
		rulesEmpty = resp.Answer == ""
	}

	needAI := forceAI || cls.Type == SourceAI || (cls.Type == SourceHybrid && NeedsAiFallback(rulesEmpty, question))
	if needAI {
		aiResp := a.answerFromAI(ctx, user, profile, owned, question)
		if rulesEmpty {
			resp = aiResp
			resp.Category = cls.Category
		} else {
			resp.Answer = resp.Answer + "\n\n" + aiResp.Answer
			resp.Source = SourceHybrid
			resp.Provider, resp.Model = aiResp.Provider, aiResp.Model
		}
	}

	elapsed := time.Since(start)
	metrics.RecordAsk(string(resp.Category), string(resp.Source), elapsed)
	a.logConversation(ctx, user, profile, owned, chief, heroGear, question, resp, elapsed)
	return resp
}

func (a *Advisor) answerFromRules(cls ClassifyResult, profile Profile, owned []OwnedHero, chief ChiefGear, heroGear HeroGearSnapshot, question string) AskResponse {
	ownedByName := make(map[string]OwnedHero, len(owned))
	for _, h := range owned {
		ownedByName[h.Name] = h
	}
	maxGen := CurrentGeneration(profile.ServerAgeDays)

	switch cls.Category {
	case QuestionLineup:
		modeKey := detectLineupMode(question)
		lineup := BuildLineup(a.catalog, modeKey, ownedByName, maxGen)
		return AskResponse{Answer: renderLineupAnswer(lineup), Source: SourceRules, Lineup: &lineup}

	case QuestionJoinerHeroes:
		isAttack := !strings.Contains(strings.ToLower(question), "defen")
		joiner := RecommendJoiner(ownedByName, isAttack)
		return AskResponse{Answer: renderJoinerAnswer(joiner), Source: SourceRules, Joiner: &joiner}

	case QuestionGear:
		recs := NewGearAdvisor().Analyze(chief, heroGear, profile)
		return AskResponse{Answer: renderRecommendationAnswer(recs, 5), Source: SourceRules, Recommendations: topRecs(recs, 5)}

	case QuestionPhase, QuestionProgression:
		tracker := NewProgressionTracker()
		phaseID := tracker.DetectPhase(profile)
		info := tracker.PhaseInfoFor(phaseID)
		return AskResponse{Answer: renderPhaseAnswer(info), Source: SourceRules}

	case QuestionUpgrade, QuestionSkills, QuestionInvest:
		recs := NewHeroAnalyzer(a.catalog).Analyze(owned, profile)
		return AskResponse{Answer: renderRecommendationAnswer(recs, 5), Source: SourceRules, Recommendations: topRecs(recs, 5)}

	case QuestionPriority:
		recs := a.orchestrator.Recommend(profile, owned, chief, heroGear, 5)
		return AskResponse{Answer: renderRecommendationAnswer(recs, 5), Source: SourceRules, Recommendations: recs}

	default:
		recs := a.orchestrator.Recommend(profile, owned, chief, heroGear, 5)
		return AskResponse{Answer: renderRecommendationAnswer(recs, 5), Source: SourceRules, Recommendations: recs}
	}
}

func (a *Advisor) answerFromAI(ctx context.Context, user User, profile Profile, owned []OwnedHero, question string) AskResponse {
	if a.llm == nil {
		return AskResponse{Answer: notConfiguredError(nil).Error(), Source: "error"}
	}
	if a.rateLimiter == nil {
		return AskResponse{Answer: aiDisabledError().Error(), Source: "error"}
	}

	check := a.rateLimiter.CheckAndRecord(ctx, user)
	if !check.Allowed {
		return AskResponse{Answer: check.Err.Error(), Source: "error"}
	}

	req := LLMRequest{
		SystemPrompt: buildSystemPrompt(profile, owned),
		UserMessage:  question,
		MaxTokens:    600,
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}
	llmResp, err := a.llm.Chat(ctx, req)
	if err != nil {
		return AskResponse{Answer: err.Error(), Source: "error"}
	}
	metrics.RecordLLMTokens(llmResp.Provider, llmResp.TokensIn, llmResp.TokensOut)
	return AskResponse{Answer: llmResp.Text, Source: SourceAI, Provider: llmResp.Provider, Model: llmResp.Model}
}

func (a *Advisor) logConversation(ctx context.Context, user User, profile Profile, owned []OwnedHero, chief ChiefGear, heroGear HeroGearSnapshot, question string, resp AskResponse, elapsed time.Duration) {
	if a.rateLimiter == nil {
		return
	}
	record := ConversationRecord{
		ID:              a.appConfig.ConversationEntityID(GenerateInstance()),
		UserID:          user.ID,
		ProfileSnapshot: BuildProfileSnapshot(profile, owned, chief, heroGear),
		Question:        question,
		Answer:          resp.Answer,
		Source:          resp.Source,
		Provider:        resp.Provider,
		Model:           resp.Model,
		ResponseTimeMs:  elapsed.Milliseconds(),
		CreatedAt:       time.Now().UTC(),
	}
	a.rateLimiter.LogConversation(ctx, record)
}

// --- question -> lineup mode detection ---

var (
	bearTrapRe  = regexp.MustCompile(`bear trap`)
	garrisonRe  = regexp.MustCompile(`garrison`)
	arenaRe     = regexp.MustCompile(`arena`)
	explRe      = regexp.MustCompile(`exploration`)
	crazyJoeRe  = regexp.MustCompile(`crazy joe`)
	svsMarchRe  = regexp.MustCompile(`svs.*march|march.*svs`)
	svsRe       = regexp.MustCompile(`svs`)
	worldMarchRe = regexp.MustCompile(`world march|world.?boss`)
)

// detectLineupMode maps a free-form question to a catalog template key,
// defaulting to bear_trap - the mode most first-time questions ask about.
func detectLineupMode(question string) string {
	q := strings.ToLower(question)
	switch {
	case bearTrapRe.MatchString(q):
		return "bear_trap"
	case garrisonRe.MatchString(q):
		return "garrison"
	case crazyJoeRe.MatchString(q):
		return "crazy_joe"
	case arenaRe.MatchString(q):
		return "arena"
	case explRe.MatchString(q):
		return "exploration"
	case svsMarchRe.MatchString(q):
		return "svs_march"
	case svsRe.MatchString(q):
		return "svs_attack"
	case worldMarchRe.MatchString(q):
		return "world_march"
	default:
		return "bear_trap"
	}
}

// --- rendering ---

func renderLineupAnswer(lineup LineupRecommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s lineup (confidence: %s)\n", lineup.Mode, lineup.Confidence)
	for _, s := range lineup.Slots {
		if s.Hero == "" {
			fmt.Fprintf(&b, "- %s: %s\n", s.SlotRole, s.Status)
			continue
		}
		fmt.Fprintf(&b, "- %s: %s (%s)\n", s.SlotRole, s.Hero, s.Status)
	}
	if lineup.Notes != "" {
		b.WriteString(lineup.Notes)
	}
	return strings.TrimSpace(b.String())
}

func renderJoinerAnswer(joiner JoinerRecommendation) string {
	if joiner.CriticalNote == "" {
		return joiner.Recommendation
	}
	return joiner.Recommendation + " " + joiner.CriticalNote
}

func renderPhaseAnswer(info PhaseInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You're in the %s phase. Focus on:\n", info.PhaseName)
	for _, f := range info.FocusAreas {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	fmt.Fprintf(&b, "Next milestone: %s", info.NextMilestone)
	return b.String()
}

func renderRecommendationAnswer(recs []Recommendation, limit int) string {
	if len(recs) == 0 {
		return "No specific recommendations right now - your setup looks on track."
	}
	var b strings.Builder
	for i, r := range topRecs(recs, limit) {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s - %s", i+1, r.Action, r.Reason)
	}
	return b.String()
}

func topRecs(recs []Recommendation, limit int) []Recommendation {
	if limit > 0 && limit < len(recs) {
		return recs[:limit]
	}
	return recs
}

func buildSystemPrompt(profile Profile, owned []OwnedHero) string {
	var b strings.Builder
	b.WriteString(systemPromptFacts)
	fmt.Fprintf(&b, "\n\nPlayer: furnace level %d, spending profile %s, %d heroes owned.\n",
		profile.FurnaceLevel, profile.SpendingProfile, len(owned))
	b.WriteString("Answer concisely and only from verified game facts; say you're unsure rather than guessing numbers.")
	return b.String()
}

// systemPromptFacts are the verified game facts every AI answer is grounded
// against (§6), kept separate from the per-request player summary so the
// constant text stays cacheable by the provider.
const systemPromptFacts = `Verified game facts:
- Rally joiners only benefit from their lead hero's top-right expedition skill; joiner hero gear and other skills have no effect.
- Jessie is the canonical attack rally joiner; Sergey is the canonical defense rally joiner.
- Chief gear priority order is Ring, Amulet, then Helmet/Armor/Gloves/Boots - Ring and Amulet affect every troop type.
- Troop ratios are mode-specific; do not recommend a single fixed ratio across all modes.
- Never recommend spending real money; only describe in-game resource tradeoffs.`
