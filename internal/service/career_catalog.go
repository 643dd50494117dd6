package service

import (
	"slices"

	"marg-ai/internal/domain"
)

// CareerCatalog es una vista de solo lectura del catálogo de carreras.
// Se inyecta en los servicios en lugar de leerse como estado global.
type CareerCatalog struct {
	careers []domain.Career
	byID    map[string]int
}

// NewCareerCatalog copia las carreras para que el llamador no pueda mutarlas después.
func NewCareerCatalog(careers []domain.Career) *CareerCatalog {
	c := &CareerCatalog{
		careers: make([]domain.Career, 0, len(careers)),
		byID:    make(map[string]int, len(careers)),
	}
	for _, career := range careers {
		career.InterestTags = slices.Clone(career.InterestTags)
		career.RequiredSkills = slices.Clone(career.RequiredSkills)
		c.byID[career.ID] = len(c.careers)
		c.careers = append(c.careers, career)
	}
	return c
}

// All devuelve una copia de las carreras en el orden original del catálogo.
func (c *CareerCatalog) All() []domain.Career {
	if c == nil {
		return nil
	}
	out := make([]domain.Career, len(c.careers))
	for i, career := range c.careers {
		career.InterestTags = slices.Clone(career.InterestTags)
		career.RequiredSkills = slices.Clone(career.RequiredSkills)
		out[i] = career
	}
	return out
}

func (c *CareerCatalog) Find(id string) (domain.Career, bool) {
	if c == nil {
		return domain.Career{}, false
	}
	idx, ok := c.byID[id]
	if !ok {
		return domain.Career{}, false
	}
	career := c.careers[idx]
	career.InterestTags = slices.Clone(career.InterestTags)
	career.RequiredSkills = slices.Clone(career.RequiredSkills)
	return career, true
}

func (c *CareerCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.careers)
}

// DefaultCareers es el catálogo fijo con el que arranca el servicio.
func DefaultCareers() []domain.Career {
	return []domain.Career{
		{
			ID:                 "65d8c11e0a29",
			Title:              "Software Engineer",
			Description:        "Design and build software systems and applications.",
			InterestTags:       []domain.InterestTag{domain.TagTechnology, domain.TagAnalytical, domain.TagCreative},
			RequiredSkills:     []string{"JavaScript", "React", "Node.js", "Algorithms"},
			MarketDemand:       95,
			SalaryRange:        "$80k - $140k",
			AvgReadinessMonths: 6,
		},
		{
			ID:                 "65d8c11e0a30",
			Title:              "Data Analyst",
			Description:        "Interpret massive data pools to help businesses make decisions.",
			InterestTags:       []domain.InterestTag{domain.TagAnalytical, domain.TagBusiness, domain.TagTechnology},
			RequiredSkills:     []string{"SQL", "Python", "Data Visualization", "Statistics"},
			MarketDemand:       85,
			SalaryRange:        "$65k - $95k",
			AvgReadinessMonths: 4,
		},
		{
			ID:                 "65d8c11e0a31",
			Title:              "Digital Marketer",
			Description:        "Architect and manage campaigns to promote digital products.",
			InterestTags:       []domain.InterestTag{domain.TagCreative, domain.TagCommunication, domain.TagBusiness},
			RequiredSkills:     []string{"SEO", "Content Strategy", "Social Media", "Analytics"},
			MarketDemand:       80,
			SalaryRange:        "$50k - $85k",
			AvgReadinessMonths: 3,
		},
		{
			ID:                 "65d8c11e0a32",
			Title:              "Product Manager",
			Description:        "Guide the conception to launch of complex technology products.",
			InterestTags:       []domain.InterestTag{domain.TagBusiness, domain.TagCommunication, domain.TagAnalytical},
			RequiredSkills:     []string{"Agile", "Roadmapping", "UI/UX understanding", "Leadership"},
			MarketDemand:       90,
			SalaryRange:        "$90k - $150k",
			AvgReadinessMonths: 8,
		},
		{
			ID:                 "65d8c11e0a33",
			Title:              "UX/UI Designer",
			Description:        "Design human-centered and beautiful user experiences.",
			InterestTags:       []domain.InterestTag{domain.TagCreative, domain.TagTechnology, domain.TagSocial},
			RequiredSkills:     []string{"Figma", "User Research", "Wireframing", "Prototyping"},
			MarketDemand:       82,
			SalaryRange:        "$70k - $110k",
			AvgReadinessMonths: 5,
		},
	}
}
