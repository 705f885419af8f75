package domain

// Archetype is the social-personality category assigned after onboarding analysis.
type Archetype string

const (
	ArchetypeParty     Archetype = "Party"
	ArchetypeActive    Archetype = "Active"
	ArchetypeConscious Archetype = "Conscious"
	ArchetypeCreative  Archetype = "Creative"
	ArchetypeBusiness  Archetype = "Business"
	ArchetypeUnknown   Archetype = "Pending..."
)

// ParseArchetype validates a raw value coming from the AI service.
// Anything outside the fixed set falls back to Conscious; model output
// must never leave a profile in an invalid state.
func ParseArchetype(raw string) Archetype {
	switch Archetype(raw) {
	case ArchetypeParty, ArchetypeActive, ArchetypeConscious, ArchetypeCreative, ArchetypeBusiness:
		return Archetype(raw)
	default:
		return ArchetypeConscious
	}
}

type Profile struct {
	ID                 string       `json:"id"`
	DisplayName        string       `json:"display_name"`
	Archetype          Archetype    `json:"archetype"`
	Interests          []string     `json:"interests"`
	AlcoholPreference  *bool        `json:"alcohol_preference,omitempty"`
	Location           *Coordinates `json:"location,omitempty"`
	IsAnalysisComplete bool         `json:"is_analysis_complete"`
}

// CompleteAnalysis applies the analysis result in one shot. The profile is
// mutated exactly once per session.
func (p *Profile) CompleteAnalysis(archetype Archetype, alcohol bool, interests []string) {
	p.Archetype = archetype
	p.AlcoholPreference = &alcohol
	if interests == nil {
		interests = []string{}
	}
	p.Interests = interests
	p.IsAnalysisComplete = true
}

// PrefersAlcohol reports the analyzed preference, false while still pending.
func (p *Profile) PrefersAlcohol() bool {
	return p.AlcoholPreference != nil && *p.AlcoholPreference
}
