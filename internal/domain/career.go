package domain

// Career es una entrada inmutable del catálogo de carreras.
type Career struct {
	ID                 string        `json:"id"`
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	InterestTags       []InterestTag `json:"interest_tags"`
	RequiredSkills     []string      `json:"required_skills"`
	MarketDemand       int           `json:"market_demand"`
	SalaryRange        string        `json:"salary_range"`
	AvgReadinessMonths int           `json:"avg_readiness_months"`
}

// HasTag indica si la carrera está etiquetada con la categoría dada.
func (c Career) HasTag(tag InterestTag) bool {
	for _, t := range c.InterestTags {
		if t == tag {
			return true
		}
	}
	return false
}

// ScoreBreakdown guarda los sub-scores sin ponderar, ya redondeados.
type ScoreBreakdown struct {
	Interest int `json:"interest"`
	Skills   int `json:"skills"`
	Academic int `json:"academic"`
	Market   int `json:"market"`
}

// MatchResult es una carrera puntuada para un perfil. Se recalcula en cada request.
type MatchResult struct {
	Career
	MatchPercentage int            `json:"match_percentage"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	Reason          string         `json:"reason"`
}

// SkillGap particiona las skills requeridas de una carrera.
type SkillGap struct {
	Strong  []string `json:"strong"`
	Improve []string `json:"improve"`
	Missing []string `json:"missing"`
}

// SkillSuggestion es una recomendación de estudio para una skill faltante.
type SkillSuggestion struct {
	Skill        string `json:"skill"`
	Category     string `json:"category"`
	Priority     string `json:"priority"`
	LearningTime string `json:"learning_time"`
	Suggestion   string `json:"suggestion"`
}

// Dashboard agrupa todo lo que necesita la vista principal del usuario.
type Dashboard struct {
	PrimaryMatch   PrimaryMatch     `json:"primary_match"`
	OtherMatches   []MatchSummary   `json:"other_matches"`
	SkillGap       SkillGap         `json:"skill_gap"`
	Roadmap        []RoadmapPhase   `json:"roadmap"`
	ScoreBreakdown []BreakdownEntry `json:"score_breakdown"`
}

type PrimaryMatch struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	MatchPercentage int    `json:"match_percentage"`
	Description     string `json:"description"`
	MarketDemand    string `json:"market_demand"`
	SalaryRange     string `json:"salary_range"`
	ReadinessTime   string `json:"readiness_time"`
}

type MatchSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Match int    `json:"match"`
	Desc  string `json:"desc"`
}

type BreakdownEntry struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Max   int    `json:"max"`
}
