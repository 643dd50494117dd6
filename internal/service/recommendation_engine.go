package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"marg-ai/internal/domain"
)

// Pesos y constantes de calibración del scoring. Son arbitrarios pero se mantienen
// por compatibilidad con los resultados ya mostrados a usuarios.
const (
	interestMultiplier = 1.5
	maxSubScore        = 100.0

	skillBaseline      = 50.0
	skillComputerBonus = 35.0

	academicBaseline      = 60.0
	academicGraduateBonus = 20.0

	weightInterest = 0.30
	weightSkills   = 0.30
	weightAcademic = 0.20
	weightMarket   = 0.20

	maxRecommendations = 3
)

// RecommendationEngine puntúa carreras del catálogo contra un perfil de intereses.
type RecommendationEngine struct{}

// DefaultRecommendationEngine permite uso directo sin instanciar.
var DefaultRecommendationEngine = RecommendationEngine{}

// Score devuelve las mejores min(3, len(catalog)) carreras ordenadas por porcentaje.
func (e RecommendationEngine) Score(catalog []domain.Career, profile domain.InterestProfile, attrs domain.ProfileAttributes) []domain.MatchResult {
	ranked := e.Rank(catalog, profile, attrs)
	if len(ranked) > maxRecommendations {
		ranked = ranked[:maxRecommendations]
	}
	return ranked
}

// Rank puntúa todo el catálogo. El orden es estable: en empates gana la carrera listada antes.
func (RecommendationEngine) Rank(catalog []domain.Career, profile domain.InterestProfile, attrs domain.ProfileAttributes) []domain.MatchResult {
	results := make([]domain.MatchResult, 0, len(catalog))
	if len(catalog) == 0 {
		return results
	}

	reason := fmt.Sprintf("Aligned heavily with your preference for %s-related activities and strong market scaling.", profile.TopTag())
	for _, career := range catalog {
		results = append(results, scoreCareer(career, profile, attrs, reason))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercentage > results[j].MatchPercentage
	})
	return results
}

func scoreCareer(career domain.Career, profile domain.InterestProfile, attrs domain.ProfileAttributes, reason string) domain.MatchResult {
	interestPoints := 0
	for _, tag := range career.InterestTags {
		interestPoints += profile.Get(tag)
	}
	interest := math.Min(maxSubScore, float64(interestPoints)*interestMultiplier)

	skills := skillBaseline
	if strings.Contains(strings.ToLower(attrs.Major), "computer") && career.HasTag(domain.TagTechnology) {
		skills += skillComputerBonus
	}

	academic := academicBaseline
	if attrs.EducationStage == domain.StageGraduate {
		academic += academicGraduateBonus
	}

	market := float64(career.MarketDemand)

	weighted := interest*weightInterest +
		skills*weightSkills +
		academic*weightAcademic +
		market*weightMarket

	return domain.MatchResult{
		Career:          career,
		MatchPercentage: int(math.Round(weighted)),
		Breakdown: domain.ScoreBreakdown{
			Interest: int(math.Round(interest)),
			Skills:   int(math.Round(skills)),
			Academic: int(math.Round(academic)),
			Market:   int(math.Round(market)),
		},
		Reason: reason,
	}
}
