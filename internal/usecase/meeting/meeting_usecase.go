package meeting

import (
	"context"
	"fmt"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/repository"
)

type MeetingUseCase struct {
	sessionRepo  repository.SessionRepository
	venueCatalog repository.VenueCatalog
}

func NewMeetingUseCase(
	sessionRepo repository.SessionRepository,
	venueCatalog repository.VenueCatalog,
) *MeetingUseCase {
	return &MeetingUseCase{
		sessionRepo:  sessionRepo,
		venueCatalog: venueCatalog,
	}
}

// CreateForSession assembles the group meeting once analysis is done.
// Idempotent: a session that already carries a meeting gets it back.
func (uc *MeetingUseCase) CreateForSession(ctx context.Context, sessionID string) (*domain.Meeting, error) {
	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Profile.IsAnalysisComplete {
		return nil, domain.ErrAnalysisNotComplete
	}
	if session.Meeting != nil {
		return session.Meeting, nil
	}

	venues, err := uc.venueCatalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load venue catalog: %w", err)
	}

	m := Assemble(session.Profile, venues, session.Language)
	session.Meeting = &m

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	fmt.Printf("✅ [Meeting] Assembled %q at %s for session %s\n", m.Title, m.Venue.Name, session.ID)
	return session.Meeting, nil
}

// GetForSession returns the session's meeting.
func (uc *MeetingUseCase) GetForSession(ctx context.Context, sessionID string) (*domain.Meeting, error) {
	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Meeting == nil {
		return nil, domain.ErrNoMeeting
	}
	return session.Meeting, nil
}
