package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/i18n"
	"github.com/tishinatyt/meetus/internal/usecase/onboarding"
)

type SessionHandler struct {
	onboardingUseCase *onboarding.OnboardingUseCase
}

func NewSessionHandler(onboardingUseCase *onboarding.OnboardingUseCase) *SessionHandler {
	return &SessionHandler{
		onboardingUseCase: onboardingUseCase,
	}
}

// CreateSessionRequest represents session creation data
type CreateSessionRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=1,max=100"`
	Language    string `json:"language" binding:"omitempty,lang"`
}

// CreateSessionResponse carries the new session and the coordinator intro
type CreateSessionResponse struct {
	SessionID string         `json:"session_id"`
	Intro     string         `json:"intro"`
	Profile   domain.Profile `json:"profile"`
}

// CreateSession handles POST /sessions
// @Summary Start a session
// @Description Create a new single-user session with a pending profile
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "Session data"
// @Success 201 {object} CreateSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	lang := domain.Language(req.Language)
	if lang == "" {
		lang = domain.LanguageUA
	}

	session, err := h.onboardingUseCase.StartSession(c.Request.Context(), req.DisplayName, lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create session",
		})
		return
	}

	c.JSON(http.StatusCreated, CreateSessionResponse{
		SessionID: session.ID,
		Intro:     i18n.For(lang).Intro,
		Profile:   session.Profile,
	})
}

// GetProfile handles GET /sessions/:session_id/profile
// @Summary Get session profile
// @Tags sessions
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{session_id}/profile [get]
func (h *SessionHandler) GetProfile(c *gin.Context) {
	session, err := h.onboardingUseCase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "session not found",
		})
		return
	}

	c.JSON(http.StatusOK, session.Profile)
}
