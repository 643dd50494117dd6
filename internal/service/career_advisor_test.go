package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marg-ai/internal/domain"
	"marg-ai/internal/llm"
)

func dataAnalyst(t *testing.T) domain.Career {
	t.Helper()
	career, ok := NewCareerCatalog(DefaultCareers()).Find("65d8c11e0a30")
	require.True(t, ok)
	return career
}

func TestCareerAdvisor_NotConfigured(t *testing.T) {
	advisor := NewCareerAdvisor(zap.NewNop(), nil)

	assert.False(t, advisor.Enabled())
	_, err := advisor.Suggest(context.Background(), dataAnalyst(t), domain.SkillGap{Missing: []string{"SQL"}})
	assert.ErrorIs(t, err, ErrAdvisorNotConfigured)
}

func TestCareerAdvisor_ParsesFencedResponse(t *testing.T) {
	mock := &llm.MockClient{Response: "Here you go:\n```json\n" + `{
		"suggestions": [
			{"skill": "SQL", "category": "language", "priority": "critical", "learning_time": "2-4 weeks", "suggestion": "Build reports on a sample database"},
			{"skill": "Kubernetes", "category": "tool", "priority": "medium", "learning_time": "1-3 months", "suggestion": "not requested"}
		]
	}` + "\n```"}
	advisor := NewCareerAdvisor(zap.NewNop(), mock)

	gap := domain.SkillGap{Missing: []string{"SQL", "Statistics"}, Improve: []string{"Python"}}
	suggestions, err := advisor.Suggest(context.Background(), dataAnalyst(t), gap)
	require.NoError(t, err)

	require.Len(t, suggestions, 1, "skills outside the gap are dropped")
	assert.Equal(t, "SQL", suggestions[0].Skill)
	assert.Equal(t, "critical", suggestions[0].Priority)

	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Data Analyst")
	assert.Contains(t, prompts[0], "MISSING SKILLS: SQL, Statistics")
}

func TestCareerAdvisor_EmptyGapSkipsLLM(t *testing.T) {
	mock := &llm.MockClient{}
	advisor := NewCareerAdvisor(zap.NewNop(), mock)

	suggestions, err := advisor.Suggest(context.Background(), dataAnalyst(t), domain.SkillGap{})
	require.NoError(t, err)
	assert.Empty(t, suggestions)
	assert.Empty(t, mock.Prompts())
}

func TestCareerAdvisor_Errors(t *testing.T) {
	gap := domain.SkillGap{Missing: []string{"SQL"}}

	failing := NewCareerAdvisor(zap.NewNop(), &llm.MockClient{Err: errors.New("timeout")})
	_, err := failing.Suggest(context.Background(), dataAnalyst(t), gap)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAdvisorBadResponse)

	garbage := NewCareerAdvisor(zap.NewNop(), &llm.MockClient{Response: "I cannot answer that."})
	_, err = garbage.Suggest(context.Background(), dataAnalyst(t), gap)
	assert.ErrorIs(t, err, ErrAdvisorBadResponse)
}
