package domain

import "time"

// CoordinatorSenderID marks messages authored by the AI coordinator.
const CoordinatorSenderID = "ai"

// CoordinatorName is the display name the coordinator signs its messages with.
const CoordinatorName = "Meet.ai"

type ChatMessage struct {
	ID                string    `json:"id"`
	SenderID          string    `json:"sender_id"`
	SenderName        string    `json:"sender_name"`
	Text              string    `json:"text"`
	CreatedAt         time.Time `json:"created_at"`
	IsFromCoordinator bool      `json:"is_from_coordinator"`
	// QRCode is set on the table-reservation message only.
	QRCode string `json:"qr_code,omitempty"`
}

// TranscriptEntry is one line of the onboarding dialogue. A completed turn
// is always a coordinator question followed by a participant answer.
type TranscriptEntry struct {
	IsFromCoordinator bool   `json:"is_from_coordinator"`
	Text              string `json:"text"`
}
