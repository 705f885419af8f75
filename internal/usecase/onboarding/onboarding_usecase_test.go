package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/gateway"
	"github.com/tishinatyt/meetus/internal/repository/memory"
)

type fakeTextGen struct {
	structured func(req gateway.Request, schema gateway.Schema) (json.RawMessage, error)
	text       func(req gateway.Request) (string, error)

	structuredCalls int
	lastPrompt      string
}

func (f *fakeTextGen) GenerateStructured(ctx context.Context, req gateway.Request, schema gateway.Schema) (json.RawMessage, error) {
	f.structuredCalls++
	f.lastPrompt = req.Prompt
	if f.structured == nil {
		return nil, gateway.ErrUnavailable
	}
	return f.structured(req, schema)
}

func (f *fakeTextGen) GenerateText(ctx context.Context, req gateway.Request) (string, error) {
	if f.text == nil {
		return "", gateway.ErrUnavailable
	}
	return f.text(req)
}

func questionJSON(q string, ready bool) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"question": %q, "options": ["A", "B", "C"], "isAnalysisReady": %v}`, q, ready))
}

func startSession(t *testing.T, uc *OnboardingUseCase) *domain.Session {
	t.Helper()
	sess, err := uc.StartSession(context.Background(), "Alex", domain.LanguageEN)
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if sess.Profile.Archetype != domain.ArchetypeUnknown {
		t.Fatalf("new session archetype = %q, want Unknown", sess.Profile.Archetype)
	}
	return sess
}

func TestOnboardingRunsToCapAndAnalyzesOnce(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()

	analysisCalls := 0
	gen := &fakeTextGen{
		structured: func(req gateway.Request, schema gateway.Schema) (json.RawMessage, error) {
			if len(schema.Fields) > 0 && schema.Fields[0].Name == "archetype" {
				analysisCalls++
				return json.RawMessage(`{"archetype": "Party", "alcoholPreference": true, "interests": ["bars", "music"]}`), nil
			}
			// Never report readiness: the cap has to stop the run
			return questionJSON("Another question?", false), nil
		},
	}
	uc := NewOnboardingUseCase(repo, gen)

	sess := startSession(t, uc)
	if _, err := uc.FirstQuestion(ctx, sess.ID); err != nil {
		t.Fatalf("FirstQuestion failed: %v", err)
	}

	answers := []string{"Tusovka", "19:00 near downtown", "a3", "a4", "a5", "a6", "a7"}
	var last *TurnResult
	for i, answer := range answers {
		result, err := uc.Answer(ctx, sess.ID, answer)
		if err != nil {
			t.Fatalf("Answer %d failed: %v", i+1, err)
		}
		last = result
	}

	if last.Analysis == nil {
		t.Fatal("run did not terminate in analysis at the question cap")
	}
	if last.Turn != nil {
		t.Error("final result carries both a turn and an analysis")
	}
	if analysisCalls != 1 {
		t.Errorf("analysis called %d times, want exactly 1", analysisCalls)
	}

	stored, _ := repo.GetByID(ctx, sess.ID)
	got := stored.ParticipantAnswers()
	if len(got) != len(answers) {
		t.Fatalf("analysis saw %d answers, want %d", len(got), len(answers))
	}
	for i := range answers {
		if got[i] != answers[i] {
			t.Errorf("answer %d = %q, want %q (order must be preserved)", i, got[i], answers[i])
		}
	}
	if stored.QuestionsAsked != MaxQuestions {
		t.Errorf("questions asked = %d, want %d", stored.QuestionsAsked, MaxQuestions)
	}
	if !stored.Profile.IsAnalysisComplete {
		t.Error("profile not marked complete after cap termination")
	}
}

func TestReadinessStopsBeforeCap(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()

	turn := 0
	gen := &fakeTextGen{
		structured: func(req gateway.Request, schema gateway.Schema) (json.RawMessage, error) {
			if len(schema.Fields) > 0 && schema.Fields[0].Name == "archetype" {
				return json.RawMessage(`{"archetype": "Active", "alcoholPreference": false, "interests": ["sports"]}`), nil
			}
			turn++
			// Third question fetch reports readiness
			return questionJSON("Q?", turn >= 3), nil
		},
	}
	uc := NewOnboardingUseCase(repo, gen)

	sess := startSession(t, uc)
	if _, err := uc.FirstQuestion(ctx, sess.ID); err != nil {
		t.Fatalf("FirstQuestion failed: %v", err)
	}

	r1, err := uc.Answer(ctx, sess.ID, "answer one")
	if err != nil || r1.Turn == nil {
		t.Fatalf("turn 1: result=%+v err=%v", r1, err)
	}
	r2, err := uc.Answer(ctx, sess.ID, "answer two")
	if err != nil {
		t.Fatalf("turn 2 failed: %v", err)
	}

	if r2.Analysis == nil {
		t.Fatal("readiness did not stop the engine")
	}
	if r2.Turn != nil {
		t.Error("engine issued another question after readiness")
	}

	stored, _ := repo.GetByID(ctx, sess.ID)
	if stored.QuestionsAsked != 2 {
		t.Errorf("questions asked = %d, want 2 (ready turn is discarded)", stored.QuestionsAsked)
	}
	if len(stored.Transcript)%2 != 0 {
		t.Errorf("transcript length %d is odd after completed run", len(stored.Transcript))
	}
}

func TestGatewayFailureYieldsFallbackTurn(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()
	gen := &fakeTextGen{
		structured: func(req gateway.Request, schema gateway.Schema) (json.RawMessage, error) {
			return nil, gateway.ErrUnavailable
		},
	}
	uc := NewOnboardingUseCase(repo, gen)

	sess := startSession(t, uc)
	turn, err := uc.FirstQuestion(ctx, sess.ID)
	if err != nil {
		t.Fatalf("FirstQuestion must not fail on gateway error: %v", err)
	}

	if turn.Question != "Which meeting format do you prefer?" {
		t.Errorf("fallback question = %q", turn.Question)
	}
	if len(turn.Options) != 4 {
		t.Errorf("fallback options = %d, want 4", len(turn.Options))
	}
	if turn.IsAnalysisReady {
		t.Error("fallback turn must not report readiness")
	}
}

func TestAnalyzeDefaultsOnGatewayFailure(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()

	questionsServed := 0
	gen := &fakeTextGen{
		structured: func(req gateway.Request, schema gateway.Schema) (json.RawMessage, error) {
			if len(schema.Fields) > 0 && schema.Fields[0].Name == "archetype" {
				return nil, gateway.ErrUnavailable
			}
			questionsServed++
			return questionJSON("Q?", questionsServed >= 2), nil
		},
	}
	uc := NewOnboardingUseCase(repo, gen)

	sess := startSession(t, uc)
	if _, err := uc.FirstQuestion(ctx, sess.ID); err != nil {
		t.Fatalf("FirstQuestion failed: %v", err)
	}
	result, err := uc.Answer(ctx, sess.ID, "whatever")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	if result.Analysis == nil {
		t.Fatal("onboarding stuck: analysis missing after gateway failure")
	}
	if result.Analysis.Archetype != domain.ArchetypeConscious {
		t.Errorf("archetype = %q, want Conscious default", result.Analysis.Archetype)
	}
	if result.Analysis.AlcoholPreference {
		t.Error("alcohol preference should default to false")
	}
	if len(result.Analysis.Interests) != 0 {
		t.Errorf("interests = %v, want empty", result.Analysis.Interests)
	}

	stored, _ := repo.GetByID(ctx, sess.ID)
	if !stored.Profile.IsAnalysisComplete {
		t.Error("session stuck in pending state after gateway failure")
	}
}

func TestAnalyzeRejectsUnknownArchetype(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()

	questionsServed := 0
	gen := &fakeTextGen{
		structured: func(req gateway.Request, schema gateway.Schema) (json.RawMessage, error) {
			if len(schema.Fields) > 0 && schema.Fields[0].Name == "archetype" {
				return json.RawMessage(`{"archetype": "Wizard", "alcoholPreference": true, "interests": ["magic"]}`), nil
			}
			questionsServed++
			return questionJSON("Q?", questionsServed >= 2), nil
		},
	}
	uc := NewOnboardingUseCase(repo, gen)

	sess := startSession(t, uc)
	if _, err := uc.FirstQuestion(ctx, sess.ID); err != nil {
		t.Fatalf("FirstQuestion failed: %v", err)
	}
	result, err := uc.Answer(ctx, sess.ID, "magic please")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	if result.Analysis.Archetype != domain.ArchetypeConscious {
		t.Errorf("unrecognized archetype mapped to %q, want Conscious", result.Analysis.Archetype)
	}
	// Other fields are still taken from the response
	if !result.Analysis.AlcoholPreference {
		t.Error("alcohol preference lost during archetype substitution")
	}
}

func TestAnswerInFlightGuardPersisted(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()

	var uc *OnboardingUseCase
	var sessionID string
	armed := false
	gen := &fakeTextGen{
		structured: func(req gateway.Request, schema gateway.Schema) (json.RawMessage, error) {
			if armed {
				// A second Answer arriving while this one waits on the
				// model must be rejected, whichever store backs the repo
				if _, err := uc.Answer(ctx, sessionID, "double submit"); err != domain.ErrOnboardingActive {
					t.Errorf("overlapping answer: err = %v, want ErrOnboardingActive", err)
				}
			}
			return questionJSON("Q?", false), nil
		},
	}
	uc = NewOnboardingUseCase(repo, gen)

	sess := startSession(t, uc)
	sessionID = sess.ID
	if _, err := uc.FirstQuestion(ctx, sessionID); err != nil {
		t.Fatalf("FirstQuestion failed: %v", err)
	}

	armed = true
	if _, err := uc.Answer(ctx, sessionID, "first answer"); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	// The flag is cleared once the turn completes
	stored, _ := repo.GetByID(ctx, sessionID)
	if stored.OnboardingActive {
		t.Error("in-flight flag stuck after the turn completed")
	}
	if _, err := uc.Answer(ctx, sessionID, "second answer"); err != nil {
		t.Errorf("next answer after completion: %v", err)
	}
}

func TestAnswerGuards(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()
	gen := &fakeTextGen{
		structured: func(req gateway.Request, schema gateway.Schema) (json.RawMessage, error) {
			return questionJSON("Q?", false), nil
		},
	}
	uc := NewOnboardingUseCase(repo, gen)
	sess := startSession(t, uc)

	if _, err := uc.Answer(ctx, sess.ID, "early"); err != domain.ErrOnboardingNotStarted {
		t.Errorf("answer before first question: err = %v, want ErrOnboardingNotStarted", err)
	}

	if _, err := uc.FirstQuestion(ctx, sess.ID); err != nil {
		t.Fatalf("FirstQuestion failed: %v", err)
	}
	if _, err := uc.FirstQuestion(ctx, sess.ID); err != domain.ErrOnboardingStarted {
		t.Errorf("second FirstQuestion: err = %v, want ErrOnboardingStarted", err)
	}

	if _, err := uc.Answer(ctx, sess.ID, "   "); err != domain.ErrEmptyMessage {
		t.Errorf("blank answer: err = %v, want ErrEmptyMessage", err)
	}
	if _, err := uc.Answer(ctx, "nope", "hi"); err != domain.ErrSessionNotFound {
		t.Errorf("unknown session: err = %v, want ErrSessionNotFound", err)
	}
}
