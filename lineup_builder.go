package advisor

import (
	"fmt"
	"strings"
)

// =============================================================================
// LINEUP BUILDER (C5)
// =============================================================================
// Fills a mode's template slot-by-slot from the owned roster, computes a
// confidence grade, and composes a handful of situational notes. A second,
// much smaller entry point (RecommendJoiner) answers the narrower "who do I
// send as a rally joiner" question with its own canonical hero list.
// =============================================================================

// BuildLineup fills modeKey's template from a player's owned roster.
func BuildLineup(catalog *Catalog, modeKey string, ownedByName map[string]OwnedHero, maxGeneration int) LineupRecommendation {
	return buildLineup(catalog, modeKey, ownedByName, maxGeneration, true)
}

// BuildGeneralLineup fills modeKey's template from the universe of catalog
// heroes at or below maxGeneration, for a non-personalized "what should this
// lineup look like" answer. Slot status reads "Gen <n>" instead of "Lv<n>".
func BuildGeneralLineup(catalog *Catalog, modeKey string, maxGeneration int) LineupRecommendation {
	universe := make(map[string]OwnedHero, len(catalog.heroesByName))
	for _, name := range catalog.AllHeroNames() {
		entry, _ := catalog.Lookup(name)
		if entry.Generation <= maxGeneration {
			universe[name] = OwnedHero{Name: name}
		}
	}
	return buildLineup(catalog, modeKey, universe, maxGeneration, false)
}

func buildLineup(catalog *Catalog, modeKey string, ownedByName map[string]OwnedHero, maxGeneration int, personalized bool) LineupRecommendation {
	template, ok := catalog.Template(modeKey)
	if !ok {
		return LineupRecommendation{
			Mode:       modeKey,
			Notes:      fmt.Sprintf("Unknown lineup mode %q - no template available.", modeKey),
			Confidence: ConfidenceLow,
		}
	}

	assigned := make(map[string]bool)
	slots := make([]LineupSlotAssignment, 0, len(template.Slots))
	var missingKeyHeroes []string
	critical, filled := 0, 0

	for _, slot := range template.Slots {
		if slot.IsFiller() {
			slots = append(slots, LineupSlotAssignment{
				HeroClass: slot.Class, SlotRole: slot.Role, IsLead: slot.IsLead, Status: "filler",
			})
			continue
		}
		critical++

		name, power, ok := pickSlotHero(slot, ownedByName, catalog, maxGeneration, assigned)
		if !ok && !slot.NoClassFallback {
			name, power, ok = scanClassFallback(slot, ownedByName, catalog, maxGeneration, assigned)
		}
		if ok {
			filled++
			assigned[name] = true
			owned := ownedByName[name]
			slots = append(slots, LineupSlotAssignment{
				Hero: name, HeroClass: slot.Class, SlotRole: slot.Role, Role: slot.Role,
				IsLead: slot.IsLead, IsJoiner: isJoinerRole(slot.Role), Power: power,
				Status: slotStatus(catalog, name, owned, personalized),
			})
			continue
		}

		for i, n := range slot.Preferred {
			if i >= 2 {
				break
			}
			missingKeyHeroes = appendUnique(missingKeyHeroes, n)
		}
		slots = append(slots, LineupSlotAssignment{
			HeroClass: slot.Class, SlotRole: slot.Role, IsLead: slot.IsLead,
			Status: fmt.Sprintf("Need %s", slot.Class),
		})
	}

	confidence := lineupConfidence(critical, filled)
	recommendedToGet := buildRecommendedToGet(template, ownedByName, catalog, maxGeneration, missingKeyHeroes)
	notes := composeNotes(template, modeKey, confidence, ownedByName, catalog, slots)

	return LineupRecommendation{
		Mode: modeKey, Slots: slots, TroopRatio: template.TroopRatio,
		Notes: notes, Confidence: confidence, RecommendedToGet: recommendedToGet,
	}
}

// pickSlotHero walks the template's preferred list left to right, returning
// the chosen hero per the lead/non-lead rule (§4.5 step 2c).
func pickSlotHero(slot TemplateSlot, ownedByName map[string]OwnedHero, catalog *Catalog, maxGeneration int, assigned map[string]bool) (string, int, bool) {
	var eligible []string
	for _, name := range slot.Preferred {
		if name == "any" {
			continue
		}
		if !isEligible(name, ownedByName, catalog, maxGeneration, assigned) {
			continue
		}
		eligible = append(eligible, name)
	}
	if len(eligible) == 0 {
		return "", 0, false
	}
	if slot.IsLead {
		name := eligible[0]
		return name, heroPower(name, ownedByName, catalog), true
	}

	bestName := eligible[0]
	bestPower := heroPower(bestName, ownedByName, catalog)
	for _, name := range eligible[1:] {
		p := heroPower(name, ownedByName, catalog)
		if p > bestPower {
			bestName, bestPower = name, p
		}
	}
	return bestName, bestPower, true
}

// scanClassFallback implements §4.5 step 2d: scan every owned hero of the
// slot's class and take the highest-power one.
func scanClassFallback(slot TemplateSlot, ownedByName map[string]OwnedHero, catalog *Catalog, maxGeneration int, assigned map[string]bool) (string, int, bool) {
	var bestName string
	bestPower := -1
	for name, owned := range ownedByName {
		if assigned[name] {
			continue
		}
		entry, _ := catalog.Lookup(name)
		if entry.Class != slot.Class || entry.Generation > maxGeneration {
			continue
		}
		p := Power(owned, entry, true)
		if p > bestPower {
			bestName, bestPower = name, p
		}
	}
	if bestPower < 0 {
		return "", 0, false
	}
	return bestName, bestPower, true
}

func isEligible(name string, ownedByName map[string]OwnedHero, catalog *Catalog, maxGeneration int, assigned map[string]bool) bool {
	if assigned[name] {
		return false
	}
	if _, owns := ownedByName[name]; !owns {
		return false
	}
	entry, _ := catalog.Lookup(name)
	return entry.Generation <= maxGeneration
}

func heroPower(name string, ownedByName map[string]OwnedHero, catalog *Catalog) int {
	owned := ownedByName[name]
	entry, ok := catalog.Lookup(name)
	return Power(owned, entry, ok)
}

func slotStatus(catalog *Catalog, name string, owned OwnedHero, personalized bool) string {
	if personalized {
		return fmt.Sprintf("Lv%d", owned.Level)
	}
	entry, _ := catalog.Lookup(name)
	return fmt.Sprintf("Gen %d", entry.Generation)
}

func isJoinerRole(role string) bool {
	return strings.EqualFold(role, "joiner")
}

func lineupConfidence(critical, filled int) LineupConfidence {
	if critical == 0 || filled == critical {
		return ConfidenceHigh
	}
	if filled >= ceilDiv(critical, 2) {
		return ConfidenceMedium
	}
	return ConfidenceLow
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func buildRecommendedToGet(template LineupTemplate, ownedByName map[string]OwnedHero, catalog *Catalog, maxGeneration int, missingKeyHeroes []string) []string {
	var out []string
	for _, name := range template.KeyHeroes {
		if _, owns := ownedByName[name]; owns {
			continue
		}
		entry, _ := catalog.Lookup(name)
		if entry.Generation > maxGeneration {
			continue
		}
		out = appendUnique(out, name)
	}
	for _, name := range missingKeyHeroes {
		out = appendUnique(out, name)
	}
	if len(out) > 4 {
		out = out[:4]
	}
	return out
}

func composeNotes(template LineupTemplate, modeKey string, confidence LineupConfidence, ownedByName map[string]OwnedHero, catalog *Catalog, slots []LineupSlotAssignment) string {
	notes := template.Notes
	notes = appendNote(notes, template.RatioExplanation)
	if confidence != ConfidenceHigh && template.JoinerWarning != "" {
		notes = appendNote(notes, template.JoinerWarning)
	}

	switch modeKey {
	case "rally_joiner_attack":
		notes = appendNote(notes, joinerPlacementNote("Jessie", ownedByName, slots))
	case "rally_joiner_defense":
		notes = appendNote(notes, joinerPlacementNote("Sergey", ownedByName, slots))
	case "garrison":
		notes = appendNote(notes, garrisonSustainHint(template, ownedByName, catalog, slots))
	}
	return notes
}

func joinerPlacementNote(canonical string, ownedByName map[string]OwnedHero, slots []LineupSlotAssignment) string {
	if _, owns := ownedByName[canonical]; !owns {
		return fmt.Sprintf("%s is not in your roster - the joiner slot above stays empty.", canonical)
	}
	for _, s := range slots {
		if s.IsLead && s.Hero == canonical {
			return ""
		}
	}
	return fmt.Sprintf("%s is owned but not placed as the lead - only the lead slot's expedition skill applies to joiners.", canonical)
}

func garrisonSustainHint(template LineupTemplate, ownedByName map[string]OwnedHero, catalog *Catalog, slots []LineupSlotAssignment) string {
	var lead *LineupSlotAssignment
	inLineup := make(map[string]bool)
	for i := range slots {
		if slots[i].IsLead {
			lead = &slots[i]
		}
		if slots[i].Hero != "" {
			inLineup[slots[i].Hero] = true
		}
	}
	if lead == nil || lead.Hero == "" {
		return ""
	}
	for _, sustain := range template.SustainHeroes {
		if inLineup[sustain.Name] {
			continue
		}
		owned, owns := ownedByName[sustain.Name]
		if !owns {
			continue
		}
		entry, ok := catalog.Lookup(sustain.Name)
		power := Power(owned, entry, ok)
		if float64(power) >= 0.8*float64(lead.Power) {
			return fmt.Sprintf("%s might be better for garrison lead: %s", sustain.Name, sustain.Description)
		}
	}
	return ""
}

func appendNote(notes, addendum string) string {
	if addendum == "" {
		return notes
	}
	if notes == "" {
		return addendum
	}
	return notes + " " + addendum
}

func appendUnique(list []string, name string) []string {
	for _, n := range list {
		if n == name {
			return list
		}
	}
	return append(list, name)
}

// JoinerRecommendation is the output of RecommendJoiner.
type JoinerRecommendation struct {
	Hero           string `json:"hero,omitempty"`
	SkillLevel     int    `json:"skillLevel,omitempty"`
	MaxSkill       int    `json:"maxSkill,omitempty"`
	Recommendation string `json:"recommendation"`
	Action         string `json:"action"`
	CriticalNote   string `json:"criticalNote,omitempty"`
}

// RecommendJoiner answers "who do I send as a rally joiner" directly,
// independent of any lineup template (§4.5's separate entry point).
func RecommendJoiner(ownedByName map[string]OwnedHero, isAttack bool) JoinerRecommendation {
	candidates := CanonicalJoiners.Defense
	if isAttack {
		candidates = CanonicalJoiners.Attack
	}

	for _, name := range candidates {
		owned, owns := ownedByName[name]
		if !owns {
			continue
		}
		skill := owned.ExpeditionSkillLevels[0]
		return JoinerRecommendation{
			Hero: name, SkillLevel: skill, MaxSkill: 5,
			Recommendation: fmt.Sprintf("Send %s as your joiner.", name),
			Action:         fmt.Sprintf("Send %s", name),
			CriticalNote:   "Only the lead hero's top-right expedition skill applies to rally joiners - gear and other skills do nothing here.",
		}
	}

	return JoinerRecommendation{
		Recommendation: "You own none of the canonical joiner heroes for this rally direction.",
		Action:         "REMOVE ALL HEROES when joining",
		CriticalNote:   "Sending no hero is better than sending one whose expedition skill doesn't apply to joiners.",
	}
}
