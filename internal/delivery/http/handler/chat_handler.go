package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/usecase/coordinator"
	"github.com/tishinatyt/meetus/internal/usecase/meeting"
	"github.com/tishinatyt/meetus/internal/usecase/onboarding"
)

type ChatHandler struct {
	coordinatorUseCase *coordinator.CoordinatorUseCase
	onboardingUseCase  *onboarding.OnboardingUseCase
	meetingUseCase     *meeting.MeetingUseCase
}

func NewChatHandler(
	coordinatorUseCase *coordinator.CoordinatorUseCase,
	onboardingUseCase *onboarding.OnboardingUseCase,
	meetingUseCase *meeting.MeetingUseCase,
) *ChatHandler {
	return &ChatHandler{
		coordinatorUseCase: coordinatorUseCase,
		onboardingUseCase:  onboardingUseCase,
		meetingUseCase:     meetingUseCase,
	}
}

// SendMessageRequest represents a chat message from the user
type SendMessageRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

// MessagesResponse is the chat log plus the thinking indicator
type MessagesResponse struct {
	Messages        []domain.ChatMessage `json:"messages"`
	CoordinatorBusy bool                 `json:"coordinator_busy"`
}

// Join handles POST /sessions/:session_id/chat/join
// @Summary Enter the group chat
// @Description Triggers the coordinator roll call on first entry
// @Tags chat
// @Produce json
// @Success 200 {object} domain.ChatMessage
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{session_id}/chat/join [post]
func (h *ChatHandler) Join(c *gin.Context) {
	msg, err := h.coordinatorUseCase.Greet(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.writeError(c, err, "failed to join chat")
		return
	}
	if msg == nil {
		// Already greeted, nothing new to show
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, msg)
}

// SendMessage handles POST /sessions/:session_id/chat/messages
// @Summary Send a chat message
// @Description Appends the message and runs the coordinator intent machine
// @Tags chat
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Message"
// @Success 201 {object} domain.ChatMessage
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{session_id}/chat/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	msg, err := h.coordinatorUseCase.HandleMessage(c.Request.Context(), c.Param("session_id"), req.Text)
	if err != nil {
		h.writeError(c, err, "failed to send message")
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ListMessages handles GET /sessions/:session_id/chat/messages
// @Summary Get the chat log
// @Tags chat
// @Produce json
// @Success 200 {object} MessagesResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{session_id}/chat/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	session, err := h.onboardingUseCase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return
	}

	messages := session.Messages
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	c.JSON(http.StatusOK, MessagesResponse{
		Messages:        messages,
		CoordinatorBusy: session.CoordinatorBusy,
	})
}

// ConfirmPayment handles POST /sessions/:session_id/chat/payment
// @Summary Confirm attendance with payment
// @Description Schedules the user-authored confirmation message
// @Tags chat
// @Produce json
// @Success 202
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{session_id}/chat/payment [post]
func (h *ChatHandler) ConfirmPayment(c *gin.Context) {
	if err := h.coordinatorUseCase.ConfirmPayment(c.Request.Context(), c.Param("session_id")); err != nil {
		h.writeError(c, err, "failed to confirm payment")
		return
	}

	c.Status(http.StatusAccepted)
}

// GetMeeting handles GET /sessions/:session_id/meeting
// @Summary Get the active meeting
// @Tags chat
// @Produce json
// @Success 200 {object} domain.Meeting
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{session_id}/meeting [get]
func (h *ChatHandler) GetMeeting(c *gin.Context) {
	m, err := h.meetingUseCase.GetForSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.writeError(c, err, "failed to get meeting")
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *ChatHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrNoMeeting):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrCoordinatorBusy):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
