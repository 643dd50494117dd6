package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"marg-ai/internal/domain"
	"marg-ai/internal/metrics"
	"marg-ai/internal/repository"
)

// AnalysisResult es la respuesta de un quiz enviado.
type AnalysisResult struct {
	InterestProfile domain.InterestProfile `json:"interest_profile"`
	Recommendations []domain.MatchResult   `json:"recommendations"`
}

// AssessmentService convierte respuestas del quiz en perfil de intereses y recomendaciones.
type AssessmentService struct {
	logger  *zap.Logger
	users   repository.UserRepository
	catalog *CareerCatalog
	engine  RecommendationEngine
}

func NewAssessmentService(logger *zap.Logger, users repository.UserRepository, catalog *CareerCatalog) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{
		logger:  logger,
		users:   users,
		catalog: catalog,
		engine:  DefaultRecommendationEngine,
	}
}

// SubmitQuiz persiste el perfil calculado y devuelve las mejores coincidencias.
func (s *AssessmentService) SubmitQuiz(ctx context.Context, userID string, answers []domain.QuizAnswer) (AnalysisResult, error) {
	if s.users == nil {
		return AnalysisResult{}, errors.New("assessment service not configured")
	}

	profile := AggregateAnswers(answers)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AnalysisResult{}, ErrUserNotFound
		}
		return AnalysisResult{}, err
	}

	if err := s.users.UpdateInterestProfile(ctx, user.ID, profile); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AnalysisResult{}, ErrUserNotFound
		}
		return AnalysisResult{}, fmt.Errorf("save interest profile: %w", err)
	}

	recommendations := s.engine.Score(s.catalog.All(), profile, user.Attributes())

	metrics.QuizSubmissions.Inc()
	for _, rec := range recommendations {
		metrics.MatchPercentage.Observe(float64(rec.MatchPercentage))
	}
	s.logger.Info("quiz analyzed",
		zap.String("user_id", user.ID),
		zap.Int("answers", len(answers)),
		zap.String("top_tag", string(profile.TopTag())),
	)

	return AnalysisResult{
		InterestProfile: profile,
		Recommendations: recommendations,
	}, nil
}
