package service

import (
	"math"
	"strings"

	"marg-ai/internal/domain"
)

const (
	baseFoundationWeeks = 4
	baseCoreWeeks       = 6
	baseAdvancedWeeks   = 4

	weeksPerMonth = 4

	foundationSkills      = "Industry Basics, Context, Setup"
	advancedFallbackSkill = "Specialization Projects"
)

// GenerateRoadmap arma el plan de tres fases escalando la duración según el ritmo semanal.
func GenerateRoadmap(pace domain.StudyPace, requiredSkills []string) domain.Roadmap {
	divisor := pace.IntensityDivisor()

	core := requiredSkills
	var rest []string
	if len(core) > 2 {
		core, rest = requiredSkills[:2], requiredSkills[2:]
	}
	advanced := strings.Join(rest, ", ")
	if advanced == "" {
		advanced = advancedFallbackSkill
	}

	phases := []domain.RoadmapPhase{
		newPhase(1, "Foundation Knowledge", scaleWeeks(baseFoundationWeeks, divisor), foundationSkills),
		newPhase(2, "Core Concepts", scaleWeeks(baseCoreWeeks, divisor), strings.Join(core, ", ")),
		newPhase(3, "Advanced Mastery", scaleWeeks(baseAdvancedWeeks, divisor), advanced),
	}

	totalWeeks := 0
	for _, p := range phases {
		totalWeeks += p.Duration.Value
	}

	return domain.Roadmap{
		Phases:            phases,
		EstimatedTimeline: domain.Months(int(math.Ceil(float64(totalWeeks) / weeksPerMonth))),
	}
}

func newPhase(n int, title string, duration domain.Duration, skills string) domain.RoadmapPhase {
	return domain.RoadmapPhase{
		Phase:    n,
		Title:    title,
		Duration: duration,
		Status:   domain.PhaseNotStarted,
		Progress: 0,
		Skills:   skills,
	}
}

func scaleWeeks(base int, divisor float64) domain.Duration {
	return domain.Weeks(int(math.Ceil(float64(base) / divisor)))
}
