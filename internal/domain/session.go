package domain

import "time"

// Language selects the string catalog and the intent vocabulary.
type Language string

const (
	LanguageUA Language = "ua"
	LanguageEN Language = "en"
)

// StageFlags tracks one-shot coordinator behaviors. Each flag goes
// false→true at most once per meeting and never resets.
type StageFlags struct {
	Greeted                 bool `json:"greeted"`
	VenueSuggested          bool `json:"venue_suggested"`
	PlaceConfirmedAnnounced bool `json:"place_confirmed_announced"`
	TimeConfirmedAnnounced  bool `json:"time_confirmed_announced"`
}

// Session owns all mutable state of one user's run: the onboarding
// transcript, the chat log, the profile, the assembled meeting and the
// coordinator stage flags. Stores hand out private copies and the busy
// flags keep user actions and scheduled coordinator writes apart, so the
// struct itself carries no lock.
type Session struct {
	ID               string            `json:"id"`
	Language         Language          `json:"language"`
	Profile          Profile           `json:"profile"`
	Transcript       []TranscriptEntry `json:"transcript"`
	QuestionsAsked   int               `json:"questions_asked"`
	Messages         []ChatMessage     `json:"messages"`
	Meeting          *Meeting          `json:"meeting,omitempty"`
	Stages           StageFlags        `json:"stages"`
	OnboardingActive bool              `json:"onboarding_active"`
	CoordinatorBusy  bool              `json:"coordinator_busy"`
	CreatedAt        time.Time         `json:"created_at"`
}

// AppendQuestion records a coordinator-authored transcript entry.
func (s *Session) AppendQuestion(text string) {
	s.Transcript = append(s.Transcript, TranscriptEntry{IsFromCoordinator: true, Text: text})
}

// AppendAnswer records a participant-authored transcript entry.
func (s *Session) AppendAnswer(text string) {
	s.Transcript = append(s.Transcript, TranscriptEntry{IsFromCoordinator: false, Text: text})
}

// ParticipantAnswers returns the participant-authored entries in order.
// Analysis looks only at these, never at the coordinator's questions.
func (s *Session) ParticipantAnswers() []string {
	answers := make([]string, 0, len(s.Transcript)/2)
	for _, e := range s.Transcript {
		if !e.IsFromCoordinator {
			answers = append(answers, e.Text)
		}
	}
	return answers
}

// AppendMessage appends to the chat log. Insertion order is authoritative;
// timestamps are for display only.
func (s *Session) AppendMessage(msg ChatMessage) {
	s.Messages = append(s.Messages, msg)
}
