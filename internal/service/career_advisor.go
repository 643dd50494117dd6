package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"marg-ai/internal/domain"
	"marg-ai/internal/llm"
)

var (
	ErrAdvisorNotConfigured = errors.New("career advisor not configured")
	ErrAdvisorBadResponse   = errors.New("career advisor returned an unusable response")
)

const advisorPrompt = `You are a career advisor helping a student prepare for the role of %s.

ROLE DESCRIPTION:
%s

REQUIRED SKILLS: %s
SKILLS TO IMPROVE: %s
MISSING SKILLS: %s

For each missing skill above, provide:
- "category": one of "language", "framework", "tool", "soft_skill", "domain"
- "priority": one of "critical", "high", "medium"
- "learning_time": a realistic estimate such as "2-4 weeks" or "1-3 months"
- "suggestion": one concrete way to learn or demonstrate the skill (course, project, certification)

Return a JSON object with this exact structure:
{
  "suggestions": [
    {"skill": "<skill>", "category": "<category>", "priority": "<priority>", "learning_time": "<time>", "suggestion": "<how>"}
  ]
}

Return ONLY the JSON object, no markdown, no explanation.`

// CareerAdvisor pide al LLM sugerencias de estudio para las skills faltantes.
type CareerAdvisor struct {
	logger *zap.Logger
	client llm.LLMClient
}

// NewCareerAdvisor acepta client nil; en ese caso Suggest devuelve ErrAdvisorNotConfigured.
func NewCareerAdvisor(logger *zap.Logger, client llm.LLMClient) *CareerAdvisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CareerAdvisor{logger: logger, client: client}
}

func (a *CareerAdvisor) Enabled() bool {
	return a != nil && a.client != nil
}

func (a *CareerAdvisor) Suggest(ctx context.Context, career domain.Career, gap domain.SkillGap) ([]domain.SkillSuggestion, error) {
	if !a.Enabled() {
		return nil, ErrAdvisorNotConfigured
	}
	if len(gap.Missing) == 0 {
		return []domain.SkillSuggestion{}, nil
	}

	prompt := fmt.Sprintf(advisorPrompt,
		career.Title,
		career.Description,
		strings.Join(career.RequiredSkills, ", "),
		strings.Join(gap.Improve, ", "),
		strings.Join(gap.Missing, ", "),
	)

	raw, err := a.client.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("advisor llm: %w", err)
	}

	var parsed struct {
		Suggestions []domain.SkillSuggestion `json:"suggestions"`
	}
	if err := decodeLLMJSON(raw, &parsed); err != nil {
		a.logger.Warn("advisor response not decodable", zap.String("career_id", career.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAdvisorBadResponse, err)
	}

	// Solo se aceptan skills que efectivamente faltan; el LLM no decide el alcance.
	wanted := make(map[string]struct{}, len(gap.Missing))
	for _, skill := range gap.Missing {
		wanted[strings.ToLower(skill)] = struct{}{}
	}
	out := make([]domain.SkillSuggestion, 0, len(parsed.Suggestions))
	for _, s := range parsed.Suggestions {
		s.Skill = strings.TrimSpace(s.Skill)
		if _, ok := wanted[strings.ToLower(s.Skill)]; !ok {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
