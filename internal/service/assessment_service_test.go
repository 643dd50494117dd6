package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marg-ai/internal/domain"
)

func techAnswers(n int) []domain.QuizAnswer {
	answers := make([]domain.QuizAnswer, n)
	for i := range answers {
		answers[i] = domain.QuizAnswer{QuestionID: "q", Tag: string(domain.TagTechnology)}
	}
	return answers
}

func TestAssessmentService_SubmitQuiz(t *testing.T) {
	repo := newMockUserRepo()
	repo.put(domain.User{ID: "u1", Email: "a@b.io", EducationStage: domain.StageAfter10th})
	svc := NewAssessmentService(zap.NewNop(), repo, NewCareerCatalog(DefaultCareers()))

	result, err := svc.SubmitQuiz(context.Background(), "u1", techAnswers(4))
	require.NoError(t, err)

	assert.Equal(t, 100, result.InterestProfile[domain.TagTechnology])
	require.Len(t, result.Recommendations, 3)
	assert.Equal(t, "Software Engineer", result.Recommendations[0].Title)
	assert.Equal(t, 76, result.Recommendations[0].MatchPercentage)

	stored, _ := repo.GetByID(context.Background(), "u1")
	assert.Equal(t, result.InterestProfile, stored.InterestProfile)
}

func TestAssessmentService_UsesUserAttributes(t *testing.T) {
	repo := newMockUserRepo()
	repo.put(domain.User{ID: "g1", Email: "g@b.io", EducationStage: domain.StageGraduate, Major: "Computer Engineering"})
	svc := NewAssessmentService(zap.NewNop(), repo, NewCareerCatalog(DefaultCareers()))

	result, err := svc.SubmitQuiz(context.Background(), "g1", nil)
	require.NoError(t, err)

	top := result.Recommendations[0]
	assert.Equal(t, "Software Engineer", top.Title)
	assert.Equal(t, 85, top.Breakdown.Skills)
	assert.Equal(t, 80, top.Breakdown.Academic)
}

func TestAssessmentService_UserNotFound(t *testing.T) {
	svc := NewAssessmentService(zap.NewNop(), newMockUserRepo(), NewCareerCatalog(DefaultCareers()))

	_, err := svc.SubmitQuiz(context.Background(), "missing", techAnswers(1))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAssessmentService_PersistFailure(t *testing.T) {
	repo := newMockUserRepo()
	repo.put(domain.User{ID: "u1", Email: "a@b.io"})
	repo.saveErr = errors.New("db down")
	svc := NewAssessmentService(zap.NewNop(), repo, NewCareerCatalog(DefaultCareers()))

	_, err := svc.SubmitQuiz(context.Background(), "u1", techAnswers(1))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestAssessmentService_EmptyCatalog(t *testing.T) {
	repo := newMockUserRepo()
	repo.put(domain.User{ID: "u1", Email: "a@b.io"})
	svc := NewAssessmentService(zap.NewNop(), repo, NewCareerCatalog(nil))

	result, err := svc.SubmitQuiz(context.Background(), "u1", techAnswers(2))
	require.NoError(t, err)
	assert.NotNil(t, result.Recommendations)
	assert.Empty(t, result.Recommendations)
}
