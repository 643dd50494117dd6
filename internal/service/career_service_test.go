package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marg-ai/internal/domain"
	"marg-ai/internal/email"
)

const (
	softwareEngineerID = "65d8c11e0a29"
	digitalMarketerID  = "65d8c11e0a31"
)

type recordingSender struct {
	to        []string
	summaries []email.RoadmapSummary
	err       error
}

func (r *recordingSender) SendRoadmapSummary(_ context.Context, toEmail string, summary email.RoadmapSummary) error {
	r.to = append(r.to, toEmail)
	r.summaries = append(r.summaries, summary)
	return r.err
}

func newCareerFixture(t *testing.T, mailer email.Sender) (*CareerService, *mockUserRepo) {
	t.Helper()
	repo := newMockUserRepo()
	repo.put(domain.User{
		ID:               "u1",
		Email:            "u1@example.com",
		FullName:         "Ravi",
		EducationStage:   domain.StageAfter10th,
		WeeklyStudyHours: domain.PaceTenPlus,
		InterestProfile:  AggregateAnswers(techAnswers(3)),
	})
	analyzer := NewSkillGapAnalyzer(&fixedRandom{values: []float64{0.9}})
	svc := NewCareerService(zap.NewNop(), repo, NewCareerCatalog(DefaultCareers()), analyzer, mailer)
	return svc, repo
}

func TestCareerService_SelectCareerPersistsGapAndRoadmap(t *testing.T) {
	mailer := &recordingSender{}
	svc, repo := newCareerFixture(t, mailer)

	result, err := svc.SelectCareer(context.Background(), "u1", softwareEngineerID)
	require.NoError(t, err)

	assert.Equal(t, "Software Engineer", result.Career.Title)
	assert.Equal(t, []string{"General Knowledge"}, result.SkillGap.Strong)
	assert.Equal(t, []string{"JavaScript", "React", "Node.js", "Algorithms"}, result.SkillGap.Improve)
	assert.Equal(t, []string{"JavaScript", "React", "Node.js", "Algorithms"}, result.SkillGap.Missing)
	assert.Equal(t, domain.Months(2), result.Roadmap.EstimatedTimeline)

	stored, err := repo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, softwareEngineerID, stored.SelectedCareerID)
	assert.Equal(t, "2 Months", stored.EstimatedTimeline)
	require.NotNil(t, stored.SkillGap)
	assert.Len(t, stored.Roadmap, 3)

	require.Len(t, mailer.summaries, 1)
	assert.Equal(t, "u1@example.com", mailer.to[0])
	assert.Equal(t, "Software Engineer", mailer.summaries[0].CareerTitle)
}

func TestCareerService_SelectCareerIgnoresMailFailure(t *testing.T) {
	svc, _ := newCareerFixture(t, &recordingSender{err: errors.New("smtp down")})

	_, err := svc.SelectCareer(context.Background(), "u1", softwareEngineerID)
	assert.NoError(t, err)
}

func TestCareerService_SelectCareerErrors(t *testing.T) {
	svc, repo := newCareerFixture(t, nil)

	_, err := svc.SelectCareer(context.Background(), "u1", "does-not-exist")
	assert.ErrorIs(t, err, ErrCareerNotFound)

	_, err = svc.SelectCareer(context.Background(), "ghost", softwareEngineerID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	repo.saveErr = errors.New("db down")
	_, err = svc.SelectCareer(context.Background(), "u1", softwareEngineerID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestCareerService_DashboardWithoutSelection(t *testing.T) {
	svc, _ := newCareerFixture(t, nil)

	dash, err := svc.Dashboard(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "Software Engineer", dash.PrimaryMatch.Title)
	assert.Equal(t, 76, dash.PrimaryMatch.MatchPercentage)
	assert.Equal(t, "High Demand", dash.PrimaryMatch.MarketDemand)
	assert.Equal(t, "6 months", dash.PrimaryMatch.ReadinessTime)

	require.Len(t, dash.OtherMatches, 3)
	assert.Equal(t, []int{76, 74, 73}, []int{dash.OtherMatches[0].Match, dash.OtherMatches[1].Match, dash.OtherMatches[2].Match})

	assert.NotNil(t, dash.SkillGap.Strong)
	assert.Empty(t, dash.SkillGap.Missing)
	assert.NotNil(t, dash.Roadmap)
	assert.Empty(t, dash.Roadmap)

	assert.Equal(t, []domain.BreakdownEntry{
		{Label: "Interest Alignment", Value: 30, Max: 30},
		{Label: "Skill Compatibility", Value: 15, Max: 30},
		{Label: "Academic Strength", Value: 12, Max: 20},
		{Label: "Market Demand", Value: 19, Max: 20},
	}, dash.ScoreBreakdown)
}

func TestCareerService_DashboardSelectedOutsideTopThree(t *testing.T) {
	svc, _ := newCareerFixture(t, nil)
	_, err := svc.SelectCareer(context.Background(), "u1", digitalMarketerID)
	require.NoError(t, err)

	dash, err := svc.Dashboard(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "Digital Marketer", dash.PrimaryMatch.Title)
	assert.Equal(t, 43, dash.PrimaryMatch.MatchPercentage, "score comes from the full ranking")
	assert.Equal(t, "Growing Demand", dash.PrimaryMatch.MarketDemand)
	assert.Equal(t, "2 Months", dash.PrimaryMatch.ReadinessTime)
	assert.Len(t, dash.Roadmap, 3)
	for _, other := range dash.OtherMatches {
		assert.NotEqual(t, digitalMarketerID, other.ID)
	}
}

func TestCareerService_DashboardEmptyCatalog(t *testing.T) {
	repo := newMockUserRepo()
	repo.put(domain.User{ID: "u1", Email: "a@b.io"})
	svc := NewCareerService(zap.NewNop(), repo, NewCareerCatalog(nil), nil, nil)

	_, err := svc.Dashboard(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrCareerNotFound)

	_, err = svc.Dashboard(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 100))

	long := strings.Repeat("é", 120)
	got := truncateRunes(long, 100)
	assert.Equal(t, strings.Repeat("é", 100)+"...", got)
}

func TestCareerService_SelectedCareer(t *testing.T) {
	svc, _ := newCareerFixture(t, nil)

	_, _, err := svc.SelectedCareer(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrCareerNotFound)

	_, err = svc.SelectCareer(context.Background(), "u1", softwareEngineerID)
	require.NoError(t, err)

	career, gap, err := svc.SelectedCareer(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", career.Title)
	assert.Equal(t, []string{"General Knowledge"}, gap.Strong)
}
