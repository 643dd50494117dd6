package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marg-ai/internal/domain"
	"marg-ai/internal/quiz"
	"marg-ai/internal/service"
)

// AssessmentHandler expone el quiz y el análisis de respuestas.
type AssessmentHandler struct {
	logger         *zap.Logger
	quiz           quiz.Quiz
	assessmentServ *service.AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, q quiz.Quiz, assessmentServ *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		logger:         logger,
		quiz:           q,
		assessmentServ: assessmentServ,
	}
}

// GetQuiz maneja GET /quiz.
func (h *AssessmentHandler) GetQuiz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": h.quiz, "total_questions": h.quiz.QuestionCount()})
}

// Analyze maneja POST /analyze. Un arreglo vacío es válido y produce un perfil en cero.
func (h *AssessmentHandler) Analyze(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	var req struct {
		Answers []struct {
			QuestionID string `json:"question_id"`
			Tag        string `json:"tag"`
		} `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing answers"})
		return
	}

	answers := make([]domain.QuizAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, domain.QuizAnswer{QuestionID: a.QuestionID, Tag: a.Tag})
	}

	result, err := h.assessmentServ.SubmitQuiz(c.Request.Context(), userID, answers)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("analyze quiz failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze quiz data"})
		return
	}

	c.JSON(http.StatusOK, result)
}
