package service

import (
	"context"
	"testing"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/memory"
	"study-assistant-be/internal/seed"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStudyTipsMixedCaseSubject(t *testing.T) {
	svc := NewStudyService(newTestFactory(t), NewThemeService(memory.NewVisitorPreferenceRepository()))

	got := svc.GetStudyTips(context.Background(), "Science")

	want := &dto.StudyTipsResponse{
		Tips: []string{
			"Create concept maps to connect ideas",
			"Do hands-on experiments when possible",
			"Watch educational videos for visual learning",
			"Form study groups to discuss concepts",
		},
		Subject: "Science",
		Success: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetStudyTips mismatch (-want +got):\n%s", diff)
	}
}

func TestGetStudyTipsDefaultsToGeneral(t *testing.T) {
	svc := NewStudyService(newTestFactory(t), NewThemeService(memory.NewVisitorPreferenceRepository()))

	got := svc.GetStudyTips(context.Background(), "")

	assert.Equal(t, "general", got.Subject)
	assert.Len(t, got.Tips, 4)
	assert.Equal(t, "Set specific, achievable study goals", got.Tips[0])
}

func TestTopicsAndHomeListActiveTopicsOnly(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)

	_, err := seed.NewSeeder(factory).SeedTopics(ctx, []seed.TopicSeed{
		{Name: "Science", Description: "Biology and more", Icon: "🔬"},
		{Name: "History"},
	})
	require.NoError(t, err)

	retired := &entity.StudyTopic{Name: "Retired", Icon: entity.DefaultTopicIcon, IsActive: false}
	require.NoError(t, factory.NewUnitOfWork(ctx).StudyTopicRepository().Create(ctx, retired))

	svc := NewStudyService(factory, NewThemeService(memory.NewVisitorPreferenceRepository()))

	topics, err := svc.GetTopics(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	for _, topic := range topics {
		assert.NotEqual(t, "Retired", topic.Topic.Name)
		assert.Len(t, topic.Suggestions, 3)
	}

	userId := uint(5)
	home, err := svc.GetHome(ctx, "visitor", &userId)
	require.NoError(t, err)
	assert.Equal(t, "light", home.CurrentTheme)
	assert.Len(t, home.StudyTopics, 2)
	require.NotNil(t, home.UserId)
	assert.Equal(t, userId, *home.UserId)
}

func TestGetAboutFollowsVisitorTheme(t *testing.T) {
	ctx := context.Background()
	themes := NewThemeService(memory.NewVisitorPreferenceRepository())
	svc := NewStudyService(newTestFactory(t), themes)

	_, err := themes.ToggleTheme(ctx, "visitor", &dto.ToggleThemeRequest{Theme: strPtr("dark")})
	require.NoError(t, err)

	about, err := svc.GetAbout(ctx, "visitor")
	require.NoError(t, err)
	assert.Equal(t, "Keiky", about.Creator)
	assert.Len(t, about.Features, 6)
	assert.Equal(t, "dark", about.CurrentTheme)
	assert.True(t, about.IsDark)
}
