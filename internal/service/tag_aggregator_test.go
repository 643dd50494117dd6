package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marg-ai/internal/domain"
)

func TestAggregateAnswers_EvenSplit(t *testing.T) {
	profile := AggregateAnswers([]domain.QuizAnswer{{Tag: "technology"}, {Tag: "business"}})

	assert.Len(t, profile, len(domain.InterestTags))
	assert.Equal(t, 50, profile[domain.TagTechnology])
	assert.Equal(t, 50, profile[domain.TagBusiness])
	for _, tag := range domain.InterestTags[2:] {
		assert.Equal(t, 0, profile[tag], tag)
	}
}

func TestAggregateAnswers_EmptyInput(t *testing.T) {
	for _, answers := range [][]domain.QuizAnswer{nil, {}} {
		profile := AggregateAnswers(answers)
		assert.Len(t, profile, len(domain.InterestTags))
		for _, tag := range domain.InterestTags {
			assert.Equal(t, 0, profile[tag])
		}
	}
}

func TestAggregateAnswers_IgnoresUnknownTags(t *testing.T) {
	profile := AggregateAnswers([]domain.QuizAnswer{
		{QuestionID: "q1", Tag: "science"},
		{QuestionID: "q2", Tag: "astrology"},
		{QuestionID: "q3", Tag: "Science"},
		{QuestionID: "q4", Tag: ""},
	})

	assert.Equal(t, 100, profile[domain.TagScience])

	onlyUnknown := AggregateAnswers([]domain.QuizAnswer{{Tag: "astrology"}})
	assert.Equal(t, 0, onlyUnknown[domain.TagScience])
}

func TestAggregateAnswers_IndependentRounding(t *testing.T) {
	profile := AggregateAnswers([]domain.QuizAnswer{{Tag: "creative"}, {Tag: "social"}, {Tag: "practical"}})

	// 1/3 -> 33 en cada una: la suma no llega a 100.
	sum := 0
	for _, tag := range domain.InterestTags {
		v := profile[tag]
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 100)
		sum += v
	}
	assert.Equal(t, 33, profile[domain.TagCreative])
	assert.Equal(t, 99, sum)

	twoThirds := AggregateAnswers([]domain.QuizAnswer{{Tag: "analytical"}, {Tag: "analytical"}, {Tag: "social"}})
	assert.Equal(t, 67, twoThirds[domain.TagAnalytical])
	assert.Equal(t, 33, twoThirds[domain.TagSocial])
}
