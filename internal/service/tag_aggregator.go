package service

import (
	"math"

	"marg-ai/internal/domain"
)

// AggregateAnswers reduce las respuestas del quiz a porcentajes por categoría.
// Los tags desconocidos se ignoran y no cuentan en el total.
func AggregateAnswers(answers []domain.QuizAnswer) domain.InterestProfile {
	counts := make(map[domain.InterestTag]int, len(domain.InterestTags))
	total := 0
	for _, answer := range answers {
		tag, ok := domain.ParseInterestTag(answer.Tag)
		if !ok {
			continue
		}
		counts[tag]++
		total++
	}

	profile := make(domain.InterestProfile, len(domain.InterestTags))
	for _, tag := range domain.InterestTags {
		if total == 0 {
			profile[tag] = 0
			continue
		}
		profile[tag] = int(math.Round(float64(counts[tag]) / float64(total) * 100))
	}
	return profile
}
