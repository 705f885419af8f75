package domain

import "errors"

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionExists        = errors.New("session already exists")
	ErrOnboardingComplete   = errors.New("onboarding already complete")
	ErrOnboardingStarted    = errors.New("onboarding already started")
	ErrOnboardingNotStarted = errors.New("onboarding not started")
	ErrOnboardingActive     = errors.New("onboarding turn already in flight")
	ErrAnalysisNotComplete  = errors.New("analysis not complete")
	ErrNoMeeting            = errors.New("no active meeting")
	ErrCoordinatorBusy      = errors.New("coordinator response already in flight")
	ErrEmptyMessage         = errors.New("message text is empty")
)
