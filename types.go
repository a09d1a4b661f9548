package advisor

import "time"

// =============================================================================
// DATA MODEL
// =============================================================================
// Value types for the advisory engine. HeroEntry/LineupTemplate are loaded once
// by the catalog and shared read-only; OwnedHero/ChiefGear/Profile describe a
// single player and are read-only within a request; UserRateState is the only
// type mutated under atomic update (see ratelimit.go).
// =============================================================================

// HeroClass is a troop type.
type HeroClass string

const (
	ClassInfantry HeroClass = "Infantry"
	ClassLancer   HeroClass = "Lancer"
	ClassMarksman HeroClass = "Marksman"
	ClassUnknown  HeroClass = "Unknown"
)

// Tier is a hero or gear power rating.
type Tier string

const (
	TierSPlus Tier = "S+"
	TierS     Tier = "S"
	TierA     Tier = "A"
	TierB     Tier = "B"
	TierC     Tier = "C"
	TierD     Tier = "D"
)

// SpendingProfile buckets a player by monetization level.
type SpendingProfile string

const (
	SpendingF2P     SpendingProfile = "f2p"
	SpendingMinnow  SpendingProfile = "minnow"
	SpendingDolphin SpendingProfile = "dolphin"
	SpendingOrca    SpendingProfile = "orca"
	SpendingWhale   SpendingProfile = "whale"
)

// AllianceRole is the player's function within their alliance.
type AllianceRole string

const (
	RoleRallyLead AllianceRole = "rally_lead"
	RoleFiller    AllianceRole = "filler"
	RoleFarmer    AllianceRole = "farmer"
	RoleCasual    AllianceRole = "casual"
)

// GearSlot names one of the six chief gear pieces.
type GearSlot string

const (
	GearRing   GearSlot = "ring"
	GearAmulet GearSlot = "amulet"
	GearHelmet GearSlot = "helmet"
	GearArmor  GearSlot = "armor"
	GearGloves GearSlot = "gloves"
	GearBoots  GearSlot = "boots"
)

// GearQuality names one of the six chief/hero gear quality tiers.
type GearQuality string

const (
	QualityCommon    GearQuality = "Common"
	QualityUncommon  GearQuality = "Uncommon"
	QualityRare      GearQuality = "Rare"
	QualityEpic      GearQuality = "Epic"
	QualityLegendary GearQuality = "Legendary"
	QualityMythic    GearQuality = "Mythic"
)

// RecommendationCategory groups a Recommendation by the analyzer that produced it.
type RecommendationCategory string

const (
	CategoryHero        RecommendationCategory = "hero"
	CategoryGear        RecommendationCategory = "gear"
	CategoryProgression RecommendationCategory = "progression"
	CategoryLineup      RecommendationCategory = "lineup"
	CategoryPower       RecommendationCategory = "power"
)

// Source marks whether an answer/recommendation came from rules, AI, or both.
type Source string

const (
	SourceRules  Source = "rules"
	SourceAI     Source = "ai"
	SourceHybrid Source = "hybrid"
)

// QuestionCategory is the classifier's output bucket for a free-form question.
type QuestionCategory string

const (
	QuestionLineup       QuestionCategory = "lineup"
	QuestionJoinerHeroes QuestionCategory = "joiner_heroes"
	QuestionUpgrade      QuestionCategory = "upgrade"
	QuestionSkills       QuestionCategory = "skills"
	QuestionInvest       QuestionCategory = "invest"
	QuestionGear         QuestionCategory = "gear"
	QuestionPhase        QuestionCategory = "phase"
	QuestionProgression  QuestionCategory = "progression"
	QuestionPriority     QuestionCategory = "priority"
	QuestionOther        QuestionCategory = "other"
)

// LineupConfidence expresses how well a lineup was filled from owned heroes.
type LineupConfidence string

const (
	ConfidenceHigh   LineupConfidence = "high"
	ConfidenceMedium LineupConfidence = "medium"
	ConfidenceLow    LineupConfidence = "low"
)

// HeroEntry is one row of the immutable hero catalog.
type HeroEntry struct {
	Name            string    `json:"name"`
	Generation      int       `json:"generation"`
	Class           HeroClass `json:"class"`
	Rarity          string    `json:"rarity"`
	TierOverall     Tier      `json:"tierOverall"`
	TierExpedition  Tier      `json:"tierExpedition"`
	TierExploration Tier      `json:"tierExploration"`
}

// UnknownHeroEntry is the fallback used when a referenced hero is missing
// from the catalog. Scoring-dependent work is skipped for these.
func UnknownHeroEntry(name string) HeroEntry {
	return HeroEntry{Name: name, Generation: 99, Class: ClassUnknown, TierOverall: TierC}
}

// GearPiece is one gear slot on an owned hero.
type GearPiece struct {
	Quality int `json:"quality"` // 0..6, see QualityValues
	Level   int `json:"level"`   // 0..100
	Mastery int `json:"mastery,omitempty"`
}

// OwnedHero is a single hero on a player's roster.
type OwnedHero struct {
	Name                   string       `json:"name"`
	Level                  int          `json:"level"`
	Stars                  int          `json:"stars"`
	Ascension              int          `json:"ascension"`
	ExpeditionSkillLevels  [3]int       `json:"expeditionSkillLevels"`
	ExplorationSkillLevels [3]int       `json:"explorationSkillLevels"`
	Gear                   [4]GearPiece `json:"gear"`
}

// ChiefGearPiece is one equipped chief gear slot.
type ChiefGearPiece struct {
	Quality int `json:"quality"`
}

// ChiefGear is the player's six equipped chief gear slots.
type ChiefGear map[GearSlot]ChiefGearPiece

// Priorities holds the player's stated priority weights, each 1..5.
type Priorities struct {
	SvS         int `json:"svs"`
	Rally       int `json:"rally"`
	Castle      int `json:"castle"`
	Exploration int `json:"exploration"`
	Gathering   int `json:"gathering"`
}

// Profile is the player's account-level state.
type Profile struct {
	ServerAgeDays       int             `json:"serverAgeDays"`
	FurnaceLevel        int             `json:"furnaceLevel"`
	FurnaceFcLevel      string          `json:"furnaceFcLevel,omitempty"`
	SpendingProfile     SpendingProfile `json:"spendingProfile"`
	AllianceRole        AllianceRole    `json:"allianceRole"`
	Priorities          Priorities      `json:"priorities"`
	IsFarmAccount       bool            `json:"isFarmAccount"`
	LinkedMainProfileID string          `json:"linkedMainProfileId,omitempty"`
}

// User carries the account-level fields the rate limiter needs.
type User struct {
	ID           string `json:"id"`
	IsAdmin      bool   `json:"isAdmin"`
	AIDailyLimit *int   `json:"aiDailyLimit,omitempty"` // per-user override, nil = use tier default
}

// UserRateState is the mutable per-user rate-limit counter. All writes to
// this type must go through Repository.UpdateRateState's atomic closure.
type UserRateState struct {
	AIRequestsToday int        `json:"aiRequestsToday"`
	LastAIRequestAt *time.Time `json:"lastAiRequestAt,omitempty"`
	ResetAt         string     `json:"aiRequestResetAt"` // UTC date, "2006-01-02"
}

// Recommendation is a single piece of advice surfaced to the player.
type Recommendation struct {
	Priority      int                    `json:"priority"` // 1 (highest) .. 5
	Action        string                 `json:"action"`
	Category      RecommendationCategory `json:"category"`
	Hero          string                 `json:"hero,omitempty"`
	Reason        string                 `json:"reason"`
	Resources     []string               `json:"resources,omitempty"`
	RelevanceTags []string               `json:"relevanceTags,omitempty"`
	Source        Source                 `json:"source"`
	RuleID        string                 `json:"ruleId"`
}

// LineupSlotAssignment is one filled (or unfilled) slot in a LineupRecommendation.
type LineupSlotAssignment struct {
	Hero      string    `json:"hero,omitempty"`
	HeroClass HeroClass `json:"heroClass"`
	SlotRole  string    `json:"slotRole"`
	Role      string    `json:"role"`
	IsLead    bool      `json:"isLead"`
	IsJoiner  bool      `json:"isJoiner"`
	Power     int       `json:"power"`
	Status    string    `json:"status"` // "Lv<n>" | "Gen <n>" | "filler" | "Need <Class>"
}

// TroopRatio is the infantry/lancer/marksman split for a march, summing to 100.
type TroopRatio struct {
	Infantry int `json:"infantry"`
	Lancer   int `json:"lancer"`
	Marksman int `json:"marksman"`
}

// LineupRecommendation is the output of the lineup builder for one mode.
type LineupRecommendation struct {
	Mode             string                 `json:"mode"`
	Slots            []LineupSlotAssignment `json:"slots"`
	TroopRatio       TroopRatio             `json:"troopRatio"`
	Notes            string                 `json:"notes"`
	Confidence       LineupConfidence       `json:"confidence"`
	RecommendedToGet []string               `json:"recommendedToGet,omitempty"`
}

// ConversationRatings is the optional post-hoc feedback attached to a conversation.
type ConversationRatings struct {
	Rating       int    `json:"rating,omitempty"`
	IsHelpful    *bool  `json:"isHelpful,omitempty"`
	UserFeedback string `json:"userFeedback,omitempty"`
	IsFavorite   bool   `json:"isFavorite,omitempty"`
}

// ConversationRecord is an append-only log entry for one advisory answer.
type ConversationRecord struct {
	ID              string               `json:"id"`
	UserID          string               `json:"userId"`
	ProfileSnapshot []byte               `json:"profileSnapshot"` // opaque JSON, see snapshot.go
	Question        string               `json:"question"`
	Answer          string               `json:"answer"`
	Source          Source               `json:"source"`
	Provider        string               `json:"provider,omitempty"`
	Model           string               `json:"model,omitempty"`
	TokensIn        int                  `json:"tokensIn,omitempty"`
	TokensOut       int                  `json:"tokensOut,omitempty"`
	ResponseTimeMs  int64                `json:"responseTimeMs"`
	ThreadID        string               `json:"threadId,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	Ratings         *ConversationRatings `json:"ratings,omitempty"`
}
