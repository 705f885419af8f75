package domain

import "testing"

func TestParseArchetype(t *testing.T) {
	tests := []struct {
		raw  string
		want Archetype
	}{
		{"Party", ArchetypeParty},
		{"Active", ArchetypeActive},
		{"Conscious", ArchetypeConscious},
		{"Creative", ArchetypeCreative},
		{"Business", ArchetypeBusiness},
		{"Wizard", ArchetypeConscious},
		{"party", ArchetypeConscious},
		{"", ArchetypeConscious},
		{"Pending...", ArchetypeConscious},
	}

	for _, tt := range tests {
		if got := ParseArchetype(tt.raw); got != tt.want {
			t.Errorf("ParseArchetype(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCompleteAnalysis(t *testing.T) {
	p := Profile{ID: "u1", Archetype: ArchetypeUnknown}

	p.CompleteAnalysis(ArchetypeParty, true, nil)

	if !p.IsAnalysisComplete {
		t.Error("profile not marked complete")
	}
	if p.Archetype != ArchetypeParty {
		t.Errorf("archetype = %q", p.Archetype)
	}
	if !p.PrefersAlcohol() {
		t.Error("alcohol preference lost")
	}
	if p.Interests == nil {
		t.Error("nil interests must become an empty slice")
	}
}

func TestPrefersAlcoholPending(t *testing.T) {
	p := Profile{ID: "u1", Archetype: ArchetypeUnknown}
	if p.PrefersAlcohol() {
		t.Error("pending profile must not report an alcohol preference")
	}
}

func TestMeetingPoolCap(t *testing.T) {
	m := Meeting{TotalBudget: 1500, CurrentPool: 500, Members: make([]Profile, 3)}

	if share := m.MemberShare(); share != 500 {
		t.Errorf("member share = %d, want 500", share)
	}

	m.AddToPool(m.MemberShare())
	m.AddToPool(m.MemberShare())
	m.AddToPool(m.MemberShare())
	if m.CurrentPool != m.TotalBudget {
		t.Errorf("pool = %d, want capped at %d", m.CurrentPool, m.TotalBudget)
	}
}

func TestParticipantAnswersOrder(t *testing.T) {
	var s Session
	s.AppendQuestion("q1")
	s.AppendAnswer("a1")
	s.AppendQuestion("q2")
	s.AppendAnswer("a2")

	got := s.ParticipantAnswers()
	if len(got) != 2 || got[0] != "a1" || got[1] != "a2" {
		t.Errorf("ParticipantAnswers() = %v, want [a1 a2]", got)
	}
}
