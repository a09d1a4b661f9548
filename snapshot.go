package advisor

import "encoding/json"

// =============================================================================
// PROFILE SNAPSHOT
// =============================================================================
// ConversationRecord.ProfileSnapshot is an opaque JSON blob capturing the
// inputs an answer was computed from, so a later audit or re-ask can see
// exactly what the advisor knew at the time without replaying live state.
// =============================================================================

type profileSnapshot struct {
	Profile  Profile          `json:"profile"`
	Owned    []OwnedHero      `json:"owned"`
	Chief    ChiefGear        `json:"chiefGear,omitempty"`
	HeroGear HeroGearSnapshot `json:"heroGear,omitempty"`
}

// BuildProfileSnapshot marshals the inputs behind one Ask call into the
// opaque blob stored on ConversationRecord.ProfileSnapshot. Marshal failures
// degrade to nil rather than failing the request - the snapshot is for
// after-the-fact audit, not correctness.
func BuildProfileSnapshot(profile Profile, owned []OwnedHero, chief ChiefGear, heroGear HeroGearSnapshot) []byte {
	data, err := json.Marshal(profileSnapshot{Profile: profile, Owned: owned, Chief: chief, HeroGear: heroGear})
	if err != nil {
		return nil
	}
	return data
}
