package service

import (
	"math/rand/v2"
	"slices"
	"strings"

	"marg-ai/internal/domain"
)

// improveThreshold: una skill sin coincidencia pasa a "improve" si el sorteo supera este valor (~40%).
const improveThreshold = 0.6

var (
	baselineSkills         = []string{"Basic Computing", "Math", "Logic"}
	graduateBaselineSkills = []string{"Python", "SQL Basics"}
)

const (
	fallbackStrongSkill  = "General Knowledge"
	fallbackImproveSkill = "Industry Terminology"
)

// RandomSource abstrae el sorteo de la clasificación; debe ser seguro para uso concurrente.
type RandomSource interface {
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

// SkillGapAnalyzer clasifica las skills requeridas de una carrera contra una base inferida.
// La heurística (substring bidireccional + sorteo) es de baja fidelidad y no mide dominio real.
type SkillGapAnalyzer struct {
	random RandomSource
}

// NewSkillGapAnalyzer usa el generador global de math/rand/v2 si random es nil.
func NewSkillGapAnalyzer(random RandomSource) *SkillGapAnalyzer {
	if random == nil {
		random = globalRandom{}
	}
	return &SkillGapAnalyzer{random: random}
}

func (a *SkillGapAnalyzer) Analyze(career domain.Career, attrs domain.ProfileAttributes) domain.SkillGap {
	owned := slices.Clone(baselineSkills)
	if attrs.EducationStage == domain.StageGraduate {
		owned = append(owned, graduateBaselineSkills...)
	}

	var strong, improve, missing []string
	for _, required := range career.RequiredSkills {
		if overlapsAny(required, owned) {
			strong = append(strong, required)
			continue
		}
		if len(owned) > 2 && a.draw() > improveThreshold {
			improve = append(improve, required)
			continue
		}
		missing = append(missing, required)
	}

	if len(strong) == 0 {
		strong = []string{fallbackStrongSkill}
	}
	if len(improve) == 0 {
		improve = []string{fallbackImproveSkill}
	}
	if len(missing) == 0 {
		// sin faltantes se muestra la lista completa requerida
		missing = slices.Clone(career.RequiredSkills)
		if missing == nil {
			missing = []string{}
		}
	}

	return domain.SkillGap{
		Strong:  strong,
		Improve: improve,
		Missing: missing,
	}
}

func (a *SkillGapAnalyzer) draw() float64 {
	if a == nil || a.random == nil {
		return rand.Float64()
	}
	return a.random.Float64()
}

func overlapsAny(required string, owned []string) bool {
	for _, own := range owned {
		if strings.Contains(required, own) || strings.Contains(own, required) {
			return true
		}
	}
	return false
}
