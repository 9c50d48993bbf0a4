package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/config"
	apperrors "github.com/ranilsonsilva664-collab/meu-controle-ia/internal/errors"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/mentor"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/rules"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/services"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/summary"
)

// MentorHandler exposes the offline mentor to the UI.
type MentorHandler struct {
	mentorService      mentor.Servicer
	transactionService services.TransactionServicer
}

// NewMentorHandler creates a new MentorHandler.
func NewMentorHandler(mentorService mentor.Servicer, transactionService services.TransactionServicer) *MentorHandler {
	return &MentorHandler{mentorService: mentorService, transactionService: transactionService}
}

// GetFeedback returns the mentor snapshot for the dashboard
// @Summary     Mentor feedback
// @Description Stage classification, stage message, weekly challenge and prioritized insights
// @Tags        mentor
// @Produce     json
// @Param       name query string false "User display name"
// @Param       goal query number false "Savings goal"
// @Success     200 {object} mentor.Feedback
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /mentor/feedback [get]
func (h *MentorHandler) GetFeedback(c *gin.Context) {
	goal, err := parseGoal(c, config.Get().DefaultGoal)
	if err != nil {
		respondWithError(c, err)
		return
	}
	userName := c.DefaultQuery("name", "Visitante")

	transactions, err := h.transactionService.ListAll()
	if err != nil {
		respondWithError(c, err)
		return
	}
	balance, err := h.transactionService.Balance()
	if err != nil {
		respondWithError(c, err)
		return
	}

	feedback := h.mentorService.Feedback(transactions, balance, userName, goal)
	c.JSON(http.StatusOK, feedback)
}

// GetTips returns up to three personalized tips
// @Summary     Financial tips
// @Tags        mentor
// @Produce     json
// @Param       goal query number false "Savings goal"
// @Success     200 {array} models.Tip
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /mentor/tips [get]
func (h *MentorHandler) GetTips(c *gin.Context) {
	goal, err := parseGoal(c, config.Get().DefaultGoal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.ListAll()
	if err != nil {
		respondWithError(c, err)
		return
	}
	balance, err := h.transactionService.Balance()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.mentorService.Tips(transactions, balance, goal))
}

// QuickAnswerRequest is the payload for the quick-answer endpoint.
type QuickAnswerRequest struct {
	Question string   `json:"question" binding:"required,max=500"`
	Goal     *float64 `json:"goal" binding:"omitempty,gt=0"`
}

// PostQuickAnswer answers a free-text question
// @Summary     Quick answer
// @Description Templated answer for purchase, savings, goal-timing and investment questions
// @Tags        mentor
// @Accept      json
// @Produce     json
// @Param       request body QuickAnswerRequest true "Question"
// @Success     200 {object} mentor.Answer
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /mentor/answer [post]
func (h *MentorHandler) PostQuickAnswer(c *gin.Context) {
	var req QuickAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal := config.Get().DefaultGoal
	if req.Goal != nil {
		goal = *req.Goal
	}

	transactions, err := h.transactionService.ListAll()
	if err != nil {
		respondWithError(c, err)
		return
	}
	balance, err := h.transactionService.Balance()
	if err != nil {
		respondWithError(c, err)
		return
	}

	sum := h.mentorService.Summary(transactions)
	sum.Balance = balance

	c.JSON(http.StatusOK, h.mentorService.QuickAnswer(req.Question, balance, sum, goal))
}

// GetMissions returns the weekly mission set
// @Summary     Weekly missions
// @Description Purges stale missions, then regenerates or recomputes progress
// @Tags        mentor
// @Produce     json
// @Param       force query bool false "Force regeneration"
// @Success     200 {array} models.Mission
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mentor/missions [get]
func (h *MentorHandler) GetMissions(c *gin.Context) {
	transactions, err := h.transactionService.ListAll()
	if err != nil {
		respondWithError(c, err)
		return
	}

	force := c.Query("force") == "true"
	missions, err := h.mentorService.WeeklyMissions(transactions, force)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, missions)
}

// UpdateMissionRequest is the payload for manual mission updates.
type UpdateMissionRequest struct {
	CurrentValue float64 `json:"current_value" binding:"min=0"`
}

// UpdateMission updates a mission's progress manually
// @Summary     Update mission progress
// @Description Manual progress path for missions with no automatic derivation
// @Tags        mentor
// @Accept      json
// @Produce     json
// @Param       id path string true "Mission ID"
// @Param       request body UpdateMissionRequest true "New current value"
// @Success     204 "Updated"
// @Failure     404 {object} ErrorResponse "Mission not found"
// @Router      /mentor/missions/{id} [put]
func (h *MentorHandler) UpdateMission(c *gin.Context) {
	var req UpdateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.mentorService.UpdateMissionManually(c.Param("id"), req.CurrentValue); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RuleInfo describes one catalog rule for the settings screen.
type RuleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Priority    int    `json:"priority"`
	Enabled     bool   `json:"enabled"`
}

// GetRules lists the rule catalog with the user's enablement
// @Summary     Rule catalog
// @Tags        mentor
// @Produce     json
// @Success     200 {array} RuleInfo
// @Router      /mentor/rules [get]
func (h *MentorHandler) GetRules(c *gin.Context) {
	selected := h.mentorService.EnabledRuleIDs()
	var allowed map[string]bool
	if selected != nil {
		allowed = make(map[string]bool, len(selected))
		for _, id := range selected {
			allowed[id] = true
		}
	}

	infos := make([]RuleInfo, 0, len(rules.Catalog))
	for _, r := range rules.Catalog {
		enabled := r.Enabled
		if allowed != nil {
			enabled = r.Enabled && allowed[r.ID]
		}
		infos = append(infos, RuleInfo{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Severity:    string(r.Severity),
			Priority:    r.Priority,
			Enabled:     enabled,
		})
	}
	c.JSON(http.StatusOK, infos)
}

// SetRulesRequest is the payload for narrowing the rule catalog.
type SetRulesRequest struct {
	EnabledIDs []string `json:"enabled_ids" binding:"required"`
}

// SetRules stores the user's rule selection
// @Summary     Select enabled rules
// @Tags        mentor
// @Accept      json
// @Produce     json
// @Param       request body SetRulesRequest true "Enabled rule ids"
// @Success     204 "Stored"
// @Failure     400 {object} ErrorResponse "Unknown rule"
// @Router      /mentor/rules [put]
func (h *MentorHandler) SetRules(c *gin.Context) {
	var req SetRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.mentorService.SetEnabledRuleIDs(req.EnabledIDs); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSummary returns the current monthly summary plus detected patterns
// @Summary     Monthly summary
// @Tags        mentor
// @Produce     json
// @Success     200 {object} SummaryResponse
// @Router      /summary [get]
func (h *MentorHandler) GetSummary(c *gin.Context) {
	transactions, err := h.transactionService.ListAll()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Summary:  h.mentorService.Summary(transactions),
		Patterns: h.mentorService.Patterns(transactions),
	})
}

// SummaryResponse bundles the summary with the detected patterns.
type SummaryResponse struct {
	Summary  summary.FinanceSummary    `json:"summary"`
	Patterns []summary.SpendingPattern `json:"patterns"`
}
