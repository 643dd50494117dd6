package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marg-ai/internal/service"
)

// CareerHandler expone catálogo, selección de carrera, dashboard y consejos.
type CareerHandler struct {
	logger     *zap.Logger
	careerServ *service.CareerService
	advisor    *service.CareerAdvisor
}

func NewCareerHandler(logger *zap.Logger, careerServ *service.CareerService, advisor *service.CareerAdvisor) *CareerHandler {
	return &CareerHandler{
		logger:     logger,
		careerServ: careerServ,
		advisor:    advisor,
	}
}

// ListCareers maneja GET /careers.
func (h *CareerHandler) ListCareers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"careers": h.careerServ.Catalog().All()})
}

// SelectCareer maneja POST /select-career.
func (h *CareerHandler) SelectCareer(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	var req struct {
		CareerID string `json:"career_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing career_id"})
		return
	}

	result, err := h.careerServ.SelectCareer(c.Request.Context(), userID, req.CareerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrCareerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "career not found"})
		default:
			h.logger.Error("select career failed", zap.Error(err), zap.String("user_id", userID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not select career"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Career locked in. Roadmap generated.",
		"career_id":          result.Career.ID,
		"skill_gap":          result.SkillGap,
		"roadmap":            result.Roadmap.Phases,
		"estimated_timeline": result.Roadmap.EstimatedTimeline,
	})
}

// Dashboard maneja GET /dashboard.
func (h *CareerHandler) Dashboard(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	dash, err := h.careerServ.Dashboard(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user profile not found"})
		case errors.Is(err, service.ErrCareerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no careers available"})
		default:
			h.logger.Error("dashboard failed", zap.Error(err), zap.String("user_id", userID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dashboard"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dash})
}

// Advice maneja GET /dashboard/advice.
func (h *CareerHandler) Advice(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	if !h.advisor.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "advisor not configured"})
		return
	}

	career, gap, err := h.careerServ.SelectedCareer(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrCareerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no career selected"})
		default:
			h.logger.Error("load selected career failed", zap.Error(err), zap.String("user_id", userID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load career"})
		}
		return
	}

	suggestions, err := h.advisor.Suggest(c.Request.Context(), career, gap)
	if err != nil {
		if errors.Is(err, service.ErrAdvisorNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "advisor not configured"})
			return
		}
		h.logger.Warn("advisor failed", zap.Error(err), zap.String("career_id", career.ID))
		c.JSON(http.StatusBadGateway, gin.H{"error": "advisor unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"career_id": career.ID, "suggestions": suggestions})
}
