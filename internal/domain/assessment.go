package domain

import "strings"

// InterestTag identifica una de las 8 categorías de interés del quiz.
type InterestTag string

const (
	TagTechnology    InterestTag = "technology"
	TagBusiness      InterestTag = "business"
	TagCreative      InterestTag = "creative"
	TagScience       InterestTag = "science"
	TagCommunication InterestTag = "communication"
	TagAnalytical    InterestTag = "analytical"
	TagSocial        InterestTag = "social"
	TagPractical     InterestTag = "practical"
)

// InterestTags es el orden canónico de enumeración; define los desempates.
var InterestTags = []InterestTag{
	TagTechnology,
	TagBusiness,
	TagCreative,
	TagScience,
	TagCommunication,
	TagAnalytical,
	TagSocial,
	TagPractical,
}

// ParseInterestTag valida un tag crudo. Es sensible a mayúsculas, igual que el quiz.
func ParseInterestTag(raw string) (InterestTag, bool) {
	for _, tag := range InterestTags {
		if string(tag) == raw {
			return tag, true
		}
	}
	return "", false
}

// InterestProfile mapea cada categoría a un porcentaje 0-100.
// Los porcentajes se redondean de forma independiente y no necesariamente suman 100.
type InterestProfile map[InterestTag]int

// Get devuelve el porcentaje de la categoría o 0 si no está presente.
func (p InterestProfile) Get(tag InterestTag) int {
	if p == nil {
		return 0
	}
	return p[tag]
}

// TopTag devuelve la categoría con mayor porcentaje; los empates los gana la primera
// en el orden de InterestTags.
func (p InterestProfile) TopTag() InterestTag {
	top := InterestTags[0]
	best := p.Get(top)
	for _, tag := range InterestTags[1:] {
		if v := p.Get(tag); v > best {
			top = tag
			best = v
		}
	}
	return top
}

// QuizAnswer es una respuesta del quiz; el tag se guarda crudo para poder descartar los desconocidos.
type QuizAnswer struct {
	QuestionID string `json:"question_id,omitempty"`
	Tag        string `json:"tag"`
}

// EducationStage es la etapa académica declarada en el registro.
type EducationStage string

const (
	StageAfter10th EducationStage = "After 10th"
	StageAfter12th EducationStage = "After 12th"
	StageGraduate  EducationStage = "Graduate"
)

func ParseEducationStage(raw string) (EducationStage, bool) {
	switch EducationStage(strings.TrimSpace(raw)) {
	case StageAfter10th:
		return StageAfter10th, true
	case StageAfter12th:
		return StageAfter12th, true
	case StageGraduate:
		return StageGraduate, true
	}
	return "", false
}

// IsSchool indica si la etapa registra materias en lugar de título universitario.
func (s EducationStage) IsSchool() bool {
	return s == StageAfter10th || s == StageAfter12th
}

// StudyPace es la dedicación semanal declarada.
type StudyPace string

const (
	PaceFourHours StudyPace = "4 hours/week"
	PaceSixHours  StudyPace = "6 hours/week"
	PaceTenPlus   StudyPace = "10+ hours/week"
)

func ParseStudyPace(raw string) (StudyPace, bool) {
	switch StudyPace(strings.TrimSpace(raw)) {
	case PaceFourHours:
		return PaceFourHours, true
	case PaceSixHours:
		return PaceSixHours, true
	case PaceTenPlus:
		return PaceTenPlus, true
	}
	return "", false
}

// IntensityDivisor traduce el ritmo a un divisor de duración. Valores desconocidos son neutros.
func (p StudyPace) IntensityDivisor() float64 {
	switch p {
	case PaceFourHours:
		return 0.5
	case PaceTenPlus:
		return 2
	default:
		return 1
	}
}

// ProfileAttributes son los atributos gruesos del perfil que usa el scoring.
type ProfileAttributes struct {
	EducationStage EducationStage `json:"education_stage"`
	Major          string         `json:"major,omitempty"`
}
