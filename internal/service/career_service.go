package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"marg-ai/internal/domain"
	"marg-ai/internal/email"
	"marg-ai/internal/metrics"
	"marg-ai/internal/repository"
)

const (
	highDemandThreshold = 85
	summaryDescRunes    = 100
	mailTimeout         = 10 * time.Second
)

var ErrCareerNotFound = errors.New("career not found")

// SelectionResult es lo que se genera al fijar una carrera objetivo.
type SelectionResult struct {
	Career   domain.Career   `json:"career"`
	SkillGap domain.SkillGap `json:"skill_gap"`
	Roadmap  domain.Roadmap  `json:"roadmap"`
}

// CareerService maneja la selección de carrera y el armado del dashboard.
type CareerService struct {
	logger  *zap.Logger
	users   repository.UserRepository
	catalog *CareerCatalog
	engine  RecommendationEngine
	gaps    *SkillGapAnalyzer
	mailer  email.Sender
}

// NewCareerService acepta mailer nil: el resumen por correo queda deshabilitado.
func NewCareerService(logger *zap.Logger, users repository.UserRepository, catalog *CareerCatalog, gaps *SkillGapAnalyzer, mailer email.Sender) *CareerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gaps == nil {
		gaps = NewSkillGapAnalyzer(nil)
	}
	return &CareerService{
		logger:  logger,
		users:   users,
		catalog: catalog,
		engine:  DefaultRecommendationEngine,
		gaps:    gaps,
		mailer:  mailer,
	}
}

func (s *CareerService) Catalog() *CareerCatalog {
	return s.catalog
}

// SelectCareer calcula brecha y roadmap para la carrera elegida y los persiste en el usuario.
func (s *CareerService) SelectCareer(ctx context.Context, userID, careerID string) (SelectionResult, error) {
	if s.users == nil {
		return SelectionResult{}, errors.New("career service not configured")
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return SelectionResult{}, err
	}
	career, ok := s.catalog.Find(careerID)
	if !ok {
		return SelectionResult{}, ErrCareerNotFound
	}

	gap := s.gaps.Analyze(career, user.Attributes())
	roadmap := GenerateRoadmap(user.WeeklyStudyHours, career.RequiredSkills)

	err = s.users.SaveCareerSelection(ctx, user.ID, repository.CareerSelection{
		CareerID: career.ID,
		SkillGap: gap,
		Roadmap:  roadmap,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SelectionResult{}, ErrUserNotFound
		}
		return SelectionResult{}, fmt.Errorf("save career selection: %w", err)
	}

	metrics.CareerSelections.WithLabelValues(career.ID).Inc()
	s.logger.Info("career selected",
		zap.String("user_id", user.ID),
		zap.String("career_id", career.ID),
		zap.String("timeline", roadmap.EstimatedTimeline.String()),
	)

	s.sendSummary(ctx, user, career, gap, roadmap)

	return SelectionResult{Career: career, SkillGap: gap, Roadmap: roadmap}, nil
}

// Dashboard recalcula las coincidencias en cada llamada; no hay caché de puntajes.
func (s *CareerService) Dashboard(ctx context.Context, userID string) (domain.Dashboard, error) {
	if s.users == nil {
		return domain.Dashboard{}, errors.New("career service not configured")
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return domain.Dashboard{}, err
	}

	ranked := s.engine.Rank(s.catalog.All(), user.InterestProfile, user.Attributes())

	var primary domain.MatchResult
	found := false
	if user.SelectedCareerID != "" {
		for _, match := range ranked {
			if match.ID == user.SelectedCareerID {
				primary, found = match, true
				break
			}
		}
	}
	if !found {
		if len(ranked) == 0 {
			return domain.Dashboard{}, ErrCareerNotFound
		}
		primary = ranked[0]
	}

	readiness := user.EstimatedTimeline
	if readiness == "" {
		readiness = fmt.Sprintf("%d months", primary.AvgReadinessMonths)
	}

	top := ranked
	if len(top) > maxRecommendations {
		top = top[:maxRecommendations]
	}
	others := make([]domain.MatchSummary, 0, len(top))
	for _, match := range top {
		others = append(others, domain.MatchSummary{
			ID:    match.ID,
			Title: match.Title,
			Match: match.MatchPercentage,
			Desc:  truncateRunes(match.Description, summaryDescRunes),
		})
	}

	gap := domain.SkillGap{Strong: []string{}, Improve: []string{}, Missing: []string{}}
	if user.SkillGap != nil {
		gap = *user.SkillGap
	}
	roadmap := user.Roadmap
	if roadmap == nil {
		roadmap = []domain.RoadmapPhase{}
	}

	return domain.Dashboard{
		PrimaryMatch: domain.PrimaryMatch{
			ID:              primary.ID,
			Title:           primary.Title,
			MatchPercentage: primary.MatchPercentage,
			Description:     primary.Description,
			MarketDemand:    demandLabel(primary.MarketDemand),
			SalaryRange:     primary.SalaryRange,
			ReadinessTime:   readiness,
		},
		OtherMatches:   others,
		SkillGap:       gap,
		Roadmap:        roadmap,
		ScoreBreakdown: breakdownEntries(primary.Breakdown),
	}, nil
}

// SelectedCareer devuelve la carrera fijada por el usuario junto con su brecha guardada.
func (s *CareerService) SelectedCareer(ctx context.Context, userID string) (domain.Career, domain.SkillGap, error) {
	if s.users == nil {
		return domain.Career{}, domain.SkillGap{}, errors.New("career service not configured")
	}
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return domain.Career{}, domain.SkillGap{}, err
	}
	career, ok := s.catalog.Find(user.SelectedCareerID)
	if !ok {
		return domain.Career{}, domain.SkillGap{}, ErrCareerNotFound
	}
	if user.SkillGap != nil {
		return career, *user.SkillGap, nil
	}
	return career, s.gaps.Analyze(career, user.Attributes()), nil
}

func (s *CareerService) loadUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// sendSummary es best-effort: un fallo de correo no invalida la selección ya persistida.
func (s *CareerService) sendSummary(ctx context.Context, user domain.User, career domain.Career, gap domain.SkillGap, roadmap domain.Roadmap) {
	if s.mailer == nil || user.Email == "" {
		return
	}
	mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mailTimeout)
	defer cancel()

	err := s.mailer.SendRoadmapSummary(mailCtx, user.Email, email.RoadmapSummary{
		FullName:      user.FullName,
		CareerTitle:   career.Title,
		Roadmap:       roadmap,
		MissingSkills: gap.Missing,
	})
	switch {
	case errors.Is(err, email.ErrDisabled):
		s.logger.Debug("roadmap summary skipped", zap.Error(err))
	case err != nil:
		s.logger.Warn("send roadmap summary failed", zap.Error(err), zap.String("user_id", user.ID))
	}
}

func demandLabel(demand int) string {
	if demand >= highDemandThreshold {
		return "High Demand"
	}
	return "Growing Demand"
}

// breakdownEntries expresa cada sub-score como su aporte ponderado, acotado por Max.
func breakdownEntries(b domain.ScoreBreakdown) []domain.BreakdownEntry {
	weighted := func(v int, w float64) int { return int(math.Round(float64(v) * w)) }
	return []domain.BreakdownEntry{
		{Label: "Interest Alignment", Value: weighted(b.Interest, weightInterest), Max: 30},
		{Label: "Skill Compatibility", Value: weighted(b.Skills, weightSkills), Max: 30},
		{Label: "Academic Strength", Value: weighted(b.Academic, weightAcademic), Max: 20},
		{Label: "Market Demand", Value: weighted(b.Market, weightMarket), Max: 20},
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
