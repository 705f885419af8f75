package meeting

import (
	"github.com/google/uuid"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/i18n"
)

// Demo budget values, not computed from anything.
const (
	defaultTotalBudget = 1500
	initialPool        = 500
)

// Assemble builds a meeting for an analyzed profile. Pure: filters the
// catalog by the profile's alcohol preference, takes the first match (or
// the catalog's first entry when nothing matches; the catalog is
// guaranteed non-empty), and synthesizes two simulated co-members sharing
// the archetype and preference.
func Assemble(profile domain.Profile, venues []domain.Venue, lang domain.Language) domain.Meeting {
	prefersAlcohol := profile.PrefersAlcohol()

	venue := venues[0]
	for _, v := range venues {
		if v.AllowsAlcohol == prefersAlcohol {
			venue = v
			break
		}
	}

	t := i18n.For(lang)
	policy := t.AlcoholFree
	if prefersAlcohol {
		policy = t.AlcoholFriendly
	}
	title := i18n.Sub(t.GroupTitle, map[string]string{
		"a": t.ArchetypeName(profile.Archetype),
		"p": policy,
	})

	members := []domain.Profile{
		profile,
		simulatedMember("u2", "Sarah", profile, []string{"Travel", "Books"}, domain.Coordinates{Lat: 50.4451, Lng: 30.5214}),
		simulatedMember("u3", "Mike", profile, []string{"Fitness", "Music"}, domain.Coordinates{Lat: 50.4551, Lng: 30.5284}),
	}

	return domain.Meeting{
		ID:              uuid.NewString(),
		Title:           title,
		Members:         members,
		Venue:           venue,
		Time:            t.MeetingTime,
		Status:          domain.MeetingStatusPending,
		TotalBudget:     defaultTotalBudget,
		CurrentPool:     initialPool,
		AlcoholFriendly: prefersAlcohol,
	}
}

func simulatedMember(id, name string, like domain.Profile, interests []string, loc domain.Coordinates) domain.Profile {
	alcohol := like.PrefersAlcohol()
	return domain.Profile{
		ID:                 id,
		DisplayName:        name,
		Archetype:          like.Archetype,
		Interests:          interests,
		AlcoholPreference:  &alcohol,
		Location:           &loc,
		IsAnalysisComplete: true,
	}
}
