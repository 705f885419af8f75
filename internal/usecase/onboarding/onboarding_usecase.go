package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/gateway"
	"github.com/tishinatyt/meetus/internal/i18n"
	"github.com/tishinatyt/meetus/internal/repository"
)

// MaxQuestions caps the onboarding dialogue. The cap is authoritative even
// if the model never reports readiness, so a run always terminates.
const MaxQuestions = 7

const (
	questionTemperature = 0.4
	analysisTemperature = 0.1
)

// Turn is one coordinator question with its selectable options.
type Turn struct {
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	IsAnalysisReady bool     `json:"is_analysis_ready"`
}

// AnalysisResult is the classified profile produced at the end of onboarding.
type AnalysisResult struct {
	Archetype         domain.Archetype `json:"archetype"`
	AlcoholPreference bool             `json:"alcohol_preference"`
	Interests         []string         `json:"interests"`
}

// TurnResult is the outcome of submitting an answer: either the next turn
// or, once the engine decides it has enough, the analysis result.
type TurnResult struct {
	Turn     *Turn           `json:"turn,omitempty"`
	Analysis *AnalysisResult `json:"analysis,omitempty"`
}

type OnboardingUseCase struct {
	sessionRepo repository.SessionRepository
	textGen     gateway.TextGenerator
}

func NewOnboardingUseCase(
	sessionRepo repository.SessionRepository,
	textGen gateway.TextGenerator,
) *OnboardingUseCase {
	return &OnboardingUseCase{
		sessionRepo: sessionRepo,
		textGen:     textGen,
	}
}

// StartSession creates a fresh session with a pending profile.
func (uc *OnboardingUseCase) StartSession(ctx context.Context, displayName string, lang domain.Language) (*domain.Session, error) {
	session := &domain.Session{
		ID:       uuid.NewString(),
		Language: lang,
		Profile: domain.Profile{
			ID:          uuid.NewString(),
			DisplayName: displayName,
			Archetype:   domain.ArchetypeUnknown,
			Interests:   []string{},
		},
		CreatedAt: time.Now(),
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession returns the session state.
func (uc *OnboardingUseCase) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	return uc.sessionRepo.GetByID(ctx, sessionID)
}

// FirstQuestion issues the opening turn. There is no history yet; the
// prompt directs the model to ask about alcohol/bar preference first.
func (uc *OnboardingUseCase) FirstQuestion(ctx context.Context, sessionID string) (*Turn, error) {
	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Profile.IsAnalysisComplete {
		return nil, domain.ErrOnboardingComplete
	}
	if session.QuestionsAsked > 0 {
		return nil, domain.ErrOnboardingStarted
	}

	turn := uc.nextTurn(ctx, session)
	session.AppendQuestion(turn.Question)
	session.QuestionsAsked = 1

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return turn, nil
}

// Answer records a participant answer and decides whether to ask more or
// run the analysis. The decision is made here, once per turn: readiness
// reported by the model short-circuits, the question cap is the backstop.
func (uc *OnboardingUseCase) Answer(ctx context.Context, sessionID, text string) (*TurnResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}

	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Profile.IsAnalysisComplete {
		return nil, domain.ErrOnboardingComplete
	}
	if session.QuestionsAsked == 0 {
		return nil, domain.ErrOnboardingNotStarted
	}
	if session.OnboardingActive {
		return nil, domain.ErrOnboardingActive
	}

	// Persist the in-flight flag before the gateway round trip so a
	// second Answer for the same session is rejected, whichever store
	// backs the repository.
	session.OnboardingActive = true
	session.AppendAnswer(text)
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	result := &TurnResult{}
	if session.QuestionsAsked < MaxQuestions {
		turn := uc.nextTurn(ctx, session)
		if turn.IsAnalysisReady {
			result.Analysis = uc.analyze(ctx, session)
		} else {
			session.AppendQuestion(turn.Question)
			session.QuestionsAsked++
			result.Turn = turn
		}
	} else {
		result.Analysis = uc.analyze(ctx, session)
	}

	session.OnboardingActive = false
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return result, nil
}

var turnSchema = gateway.Schema{
	Fields: []gateway.Field{
		{Name: "question", Kind: gateway.FieldString, Required: true},
		{Name: "options", Kind: gateway.FieldStringArray, Required: true},
		{Name: "isAnalysisReady", Kind: gateway.FieldBoolean},
	},
}

// nextTurn asks the model for the next question. It never fails: any
// gateway error degrades to the fixed fallback turn for the session's
// language, so the flow keeps moving.
func (uc *OnboardingUseCase) nextTurn(ctx context.Context, session *domain.Session) *Turn {
	step := len(session.Transcript)/2 + 1

	var history []string
	for _, e := range session.Transcript {
		history = append(history, e.Text)
	}

	prompt := fmt.Sprintf(`Історія діалогу: %s.
Зараз крок: %d з %d.
Мова: %s.

ЗАВДАННЯ:
1. Якщо це Крок 1: Запитай про алкоголь/бар.
2. Якщо користувач ВЖЕ вибрав алкоголь/бар: запитай про бюджет, зручний час або район.
3. Якщо інформації достатньо: "isAnalysisReady": true.

Поверни JSON з "question", "options" та "isAnalysisReady".`,
		strings.Join(history, " | "), step, MaxQuestions, promptLanguage(session.Language))

	raw, err := uc.textGen.GenerateStructured(ctx, gateway.Request{
		SystemInstruction: gateway.SystemInstruction,
		Prompt:            prompt,
		Temperature:       questionTemperature,
	}, turnSchema)
	if err != nil {
		fmt.Printf("⚠️  [Onboarding] question generation failed, using fallback: %v\n", err)
		return fallbackTurn(session.Language)
	}

	var payload struct {
		Question        string   `json:"question"`
		Options         []string `json:"options"`
		IsAnalysisReady bool     `json:"isAnalysisReady"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Question == "" {
		fmt.Printf("⚠️  [Onboarding] unusable question payload, using fallback\n")
		return fallbackTurn(session.Language)
	}

	return &Turn{
		Question:        payload.Question,
		Options:         payload.Options,
		IsAnalysisReady: payload.IsAnalysisReady,
	}
}

var analysisSchema = gateway.Schema{
	Fields: []gateway.Field{
		{Name: "archetype", Kind: gateway.FieldString, Required: true},
		{Name: "alcoholPreference", Kind: gateway.FieldBoolean, Required: true},
		{Name: "interests", Kind: gateway.FieldStringArray, Required: true},
	},
}

// analyze classifies the participant's answers into a profile and applies
// it to the session. The archetype gate is mandatory: whatever the model
// returns is validated against the fixed set, and any gateway failure
// degrades to the Conscious default so onboarding always completes.
func (uc *OnboardingUseCase) analyze(ctx context.Context, session *domain.Session) *AnalysisResult {
	answers := session.ParticipantAnswers()

	prompt := fmt.Sprintf(`Проаналізуй ці відповіді та визнач архетип (Party, Active, Conscious, Creative, Business), ставлення до алкоголю (true/false) та 3-5 ключових інтересів/побажань:
%s`, strings.Join(answers, "\n"))

	result := &AnalysisResult{
		Archetype:         domain.ArchetypeConscious,
		AlcoholPreference: false,
		Interests:         []string{},
	}

	raw, err := uc.textGen.GenerateStructured(ctx, gateway.Request{
		Prompt:      prompt,
		Temperature: analysisTemperature,
	}, analysisSchema)
	if err != nil {
		fmt.Printf("⚠️  [Onboarding] analysis failed, using defaults: %v\n", err)
	} else {
		var payload struct {
			Archetype         string   `json:"archetype"`
			AlcoholPreference bool     `json:"alcoholPreference"`
			Interests         []string `json:"interests"`
		}
		if err := json.Unmarshal(raw, &payload); err == nil {
			result.Archetype = domain.ParseArchetype(payload.Archetype)
			result.AlcoholPreference = payload.AlcoholPreference
			if payload.Interests != nil {
				result.Interests = payload.Interests
			}
		}
	}

	session.Profile.CompleteAnalysis(result.Archetype, result.AlcoholPreference, result.Interests)
	return result
}

func fallbackTurn(lang domain.Language) *Turn {
	t := i18n.For(lang)
	return &Turn{
		Question:        t.FallbackQuestion,
		Options:         t.FallbackOptions,
		IsAnalysisReady: false,
	}
}

func promptLanguage(lang domain.Language) string {
	if lang == domain.LanguageEN {
		return "English"
	}
	return "Ukrainian"
}
