package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/usecase/meeting"
	"github.com/tishinatyt/meetus/internal/usecase/onboarding"
)

type OnboardingHandler struct {
	onboardingUseCase *onboarding.OnboardingUseCase
	meetingUseCase    *meeting.MeetingUseCase
}

func NewOnboardingHandler(
	onboardingUseCase *onboarding.OnboardingUseCase,
	meetingUseCase *meeting.MeetingUseCase,
) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUseCase: onboardingUseCase,
		meetingUseCase:    meetingUseCase,
	}
}

// AnswerRequest represents a selected option or free-text answer
type AnswerRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}

// AnswerResponse carries either the next turn or the completed analysis
// with the assembled meeting
type AnswerResponse struct {
	Turn     *onboarding.Turn           `json:"turn,omitempty"`
	Analysis *onboarding.AnalysisResult `json:"analysis,omitempty"`
	Meeting  *domain.Meeting            `json:"meeting,omitempty"`
}

// Start handles POST /sessions/:session_id/onboarding/start
// @Summary Fetch the first onboarding question
// @Tags onboarding
// @Produce json
// @Success 200 {object} onboarding.Turn
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{session_id}/onboarding/start [post]
func (h *OnboardingHandler) Start(c *gin.Context) {
	turn, err := h.onboardingUseCase.FirstQuestion(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		case errors.Is(err, domain.ErrOnboardingStarted), errors.Is(err, domain.ErrOnboardingComplete):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to start onboarding"})
		}
		return
	}

	c.JSON(http.StatusOK, turn)
}

// Answer handles POST /sessions/:session_id/onboarding/answer
// @Summary Submit an answer
// @Description Record the answer and get the next question, or the analysis once the engine has enough
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body AnswerRequest true "Answer"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{session_id}/onboarding/answer [post]
func (h *OnboardingHandler) Answer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sessionID := c.Param("session_id")
	result, err := h.onboardingUseCase.Answer(c.Request.Context(), sessionID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		case errors.Is(err, domain.ErrOnboardingComplete),
			errors.Is(err, domain.ErrOnboardingNotStarted),
			errors.Is(err, domain.ErrOnboardingActive):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to process answer"})
		}
		return
	}

	resp := AnswerResponse{Turn: result.Turn, Analysis: result.Analysis}

	// Analysis done: hand the profile to meeting assembly
	if result.Analysis != nil {
		m, err := h.meetingUseCase.CreateForSession(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to assemble meeting"})
			return
		}
		resp.Meeting = m
	}

	c.JSON(http.StatusOK, resp)
}
