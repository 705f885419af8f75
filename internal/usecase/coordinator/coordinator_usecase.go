package coordinator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/gateway"
	"github.com/tishinatyt/meetus/internal/i18n"
	"github.com/tishinatyt/meetus/internal/repository"
)

// DiscountCode is printed under the QR once the table is reserved.
const DiscountCode = "MEET-OFF-15"

const moderationTemperature = 0.3

// Staged delays. Ordering is guaranteed within one flow (the second stage
// is scheduled from inside the first), not across flows.
const (
	venueSuggestDelay = 1500 * time.Millisecond
	placeCheckDelay   = 800 * time.Millisecond
	placeReserveDelay = 2 * time.Second
	taxiDelay         = time.Second
	paymentDelay      = 2 * time.Second
)

// CoordinatorUseCase drives the group chat: roll call on entry, keyword
// intent detection per message, staged one-shot flows for time and place
// agreement, and a model-backed default reply for everything else.
type CoordinatorUseCase struct {
	sessionRepo repository.SessionRepository
	textGen     gateway.TextGenerator
	scheduler   Scheduler
}

func NewCoordinatorUseCase(
	sessionRepo repository.SessionRepository,
	textGen gateway.TextGenerator,
	scheduler Scheduler,
) *CoordinatorUseCase {
	return &CoordinatorUseCase{
		sessionRepo: sessionRepo,
		textGen:     textGen,
		scheduler:   scheduler,
	}
}

// Greet runs the entry sequence: an immediate roll call naming every
// member, then a delayed venue/budget suggestion. Fires once per meeting.
func (uc *CoordinatorUseCase) Greet(ctx context.Context, sessionID string) (*domain.ChatMessage, error) {
	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Meeting == nil {
		return nil, domain.ErrNoMeeting
	}
	if session.Stages.Greeted {
		return nil, nil
	}

	t := i18n.For(session.Language)
	meeting := session.Meeting

	names := make([]string, 0, len(meeting.Members))
	for _, m := range meeting.Members {
		if m.ID == session.Profile.ID {
			names = append(names, t.You)
			continue
		}
		names = append(names, m.DisplayName)
	}
	status := t.AllSet
	if len(meeting.Members) < domain.TargetGroupSize {
		status = t.SearchingMore
	}
	rollCall := i18n.Sub(t.RollCall, map[string]string{
		"u": session.Profile.DisplayName,
		"m": strings.Join(names, ", "),
		"s": status,
	})

	msg := coordinatorMessage(rollCall)
	session.AppendMessage(msg)
	session.Stages.Greeted = true
	session.CoordinatorBusy = true

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	suggestion := i18n.Sub(t.VenueSuggestion, map[string]string{
		"v": meeting.Venue.Name,
		"b": fmt.Sprintf("%d", meeting.TotalBudget),
	})
	uc.scheduler.Schedule(venueSuggestDelay, func() {
		uc.appendLater(sessionID, suggestion, "", func(s *domain.Session) {
			s.Stages.VenueSuggested = true
			s.CoordinatorBusy = false
		})
	})

	return &msg, nil
}

// HandleMessage appends the participant's message and runs the intent
// machine. Place agreement is checked first and returns without falling
// through to the time check; both flows are one-shot per meeting. Anything
// unmatched goes to the model, and a gateway failure there is a silent
// no-op: the chat must not show an error banner mid-conversation.
func (uc *CoordinatorUseCase) HandleMessage(ctx context.Context, sessionID, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}

	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Meeting == nil {
		return nil, domain.ErrNoMeeting
	}
	if session.CoordinatorBusy {
		return nil, domain.ErrCoordinatorBusy
	}

	userMsg := domain.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   session.Profile.ID,
		SenderName: session.Profile.DisplayName,
		Text:       text,
		CreatedAt:  time.Now(),
	}
	session.AppendMessage(userMsg)

	match := classifyIntent(session.Language, text)
	t := i18n.For(session.Language)

	switch {
	case match.Place && !session.Stages.PlaceConfirmedAnnounced:
		// Place flow: availability check, then reservation + QR.
		session.Stages.PlaceConfirmedAnnounced = true
		session.CoordinatorBusy = true
		if err := uc.sessionRepo.Save(ctx, session); err != nil {
			return nil, err
		}

		checking := i18n.Sub(t.CheckingAvailability, map[string]string{"v": session.Meeting.Venue.Name})
		reserved := t.TableReady
		uc.scheduler.Schedule(placeCheckDelay, func() {
			uc.appendLater(sessionID, checking, "", nil)
			uc.scheduler.Schedule(placeReserveDelay, func() {
				uc.appendLater(sessionID, reserved, DiscountCode, func(s *domain.Session) {
					s.CoordinatorBusy = false
				})
			})
		})
		return &userMsg, nil

	case match.Time && !session.Stages.TimeConfirmedAnnounced:
		// Time flow: taxi offer referencing the agreed meeting time.
		session.Stages.TimeConfirmedAnnounced = true
		session.CoordinatorBusy = true
		if err := uc.sessionRepo.Save(ctx, session); err != nil {
			return nil, err
		}

		taxi := i18n.Sub(t.TaxiPrompt, map[string]string{"t": session.Meeting.Time})
		uc.scheduler.Schedule(taxiDelay, func() {
			uc.appendLater(sessionID, taxi, "", func(s *domain.Session) {
				s.CoordinatorBusy = false
			})
		})
		return &userMsg, nil
	}

	// Default flow: hand the message to the model with compact context.
	reply := uc.moderate(ctx, session, text)
	if reply != "" {
		session.AppendMessage(coordinatorMessage(reply))
	}
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return &userMsg, nil
}

// ConfirmPayment echoes a user-authored confirmation into the chat after
// the payment animation finishes and tops up the pool by one share. It
// never touches the intent classifier. The window until the confirmation
// lands is serialized like the staged flows: the busy flag keeps other
// writers out of the chat log.
func (uc *CoordinatorUseCase) ConfirmPayment(ctx context.Context, sessionID string) error {
	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Meeting == nil {
		return domain.ErrNoMeeting
	}
	if session.CoordinatorBusy {
		return domain.ErrCoordinatorBusy
	}

	t := i18n.For(session.Language)
	senderID := session.Profile.ID
	senderName := session.Profile.DisplayName
	confirmation := t.PaymentConfirmed

	session.CoordinatorBusy = true
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return err
	}

	uc.scheduler.Schedule(paymentDelay, func() {
		ctx := context.Background()
		s, err := uc.sessionRepo.GetByID(ctx, sessionID)
		if err != nil {
			fmt.Printf("⚠️  [Coordinator] payment confirmation dropped: %v\n", err)
			uc.clearBusy(sessionID)
			return
		}
		s.AppendMessage(domain.ChatMessage{
			ID:         uuid.NewString(),
			SenderID:   senderID,
			SenderName: senderName,
			Text:       confirmation,
			CreatedAt:  time.Now(),
		})
		if s.Meeting != nil {
			s.Meeting.AddToPool(s.Meeting.MemberShare())
		}
		s.CoordinatorBusy = false
		if err := uc.sessionRepo.Save(ctx, s); err != nil {
			fmt.Printf("⚠️  [Coordinator] payment confirmation save failed: %v\n", err)
			uc.clearBusy(sessionID)
		}
	})
	return nil
}

// moderate asks the model for a coordinator reply. Any gateway error or
// empty result yields "" and the caller appends nothing.
func (uc *CoordinatorUseCase) moderate(ctx context.Context, session *domain.Session, lastMessage string) string {
	meeting := session.Meeting
	groupContext := fmt.Sprintf("Група: %s. Локація: %s. Бюджет: %d.",
		meeting.Title, meeting.Venue.Name, meeting.TotalBudget)

	prompt := fmt.Sprintf(`Ти — КООРДИНАТОР ГРУПИ. Тільки логістика.
Контекст: %s.
Останнє повідомлення: "%s".
Мова: %s.

ОБОВ'ЯЗКОВО: Якщо користувач підтвердив ЧАС, запропонуй таксі. Якщо ПІДТВЕРДИВ МІСЦЕ, скажи, що перевіряєш столики і дай знижку.`,
		groupContext, lastMessage, promptLanguage(session.Language))

	reply, err := uc.textGen.GenerateText(ctx, gateway.Request{
		SystemInstruction: gateway.SystemInstruction,
		Prompt:            prompt,
		Temperature:       moderationTemperature,
	})
	if err != nil {
		fmt.Printf("⚠️  [Coordinator] moderation failed, staying silent: %v\n", err)
		return ""
	}
	return strings.TrimSpace(reply)
}

// appendLater is the body of every scheduled coordinator message: reload
// the session, append, run the state mutation, save. A store failure drops
// the message but must not leave the busy flag stuck, or the chat would
// reject every later message.
func (uc *CoordinatorUseCase) appendLater(sessionID, text, qrCode string, mutate func(*domain.Session)) {
	ctx := context.Background()
	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		fmt.Printf("⚠️  [Coordinator] scheduled message dropped: %v\n", err)
		uc.clearBusy(sessionID)
		return
	}

	msg := coordinatorMessage(text)
	msg.QRCode = qrCode
	session.AppendMessage(msg)
	if mutate != nil {
		mutate(session)
	}

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		fmt.Printf("⚠️  [Coordinator] scheduled message save failed: %v\n", err)
		uc.clearBusy(sessionID)
	}
}

// clearBusy drops the thinking indicator after a failed scheduled write.
// Best-effort: store errors were transient in the failure modes this
// guards against, so a fresh load usually succeeds.
func (uc *CoordinatorUseCase) clearBusy(sessionID string) {
	ctx := context.Background()
	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil || !session.CoordinatorBusy {
		return
	}
	session.CoordinatorBusy = false
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		fmt.Printf("⚠️  [Coordinator] failed to clear busy flag: %v\n", err)
	}
}

func coordinatorMessage(text string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:                uuid.NewString(),
		SenderID:          domain.CoordinatorSenderID,
		SenderName:        domain.CoordinatorName,
		Text:              text,
		CreatedAt:         time.Now(),
		IsFromCoordinator: true,
	}
}

func promptLanguage(lang domain.Language) string {
	if lang == domain.LanguageEN {
		return "English"
	}
	return "Ukrainian"
}
