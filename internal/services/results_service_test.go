package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"thisorthat/internal/metrics"
	"thisorthat/internal/preference"
	"thisorthat/pkg/utils"
)

func newTestResults(t *testing.T, rounds int) (*ResultsService, *QuizService, *fakeResultRepo) {
	t.Helper()
	quiz, catalog, _ := newTestQuiz(t, testDesigns(), rounds)
	repo := newFakeResultRepo()
	svc := NewResultsService(quiz, catalog, preference.NewAnalyzer(), repo,
		metrics.MustNewMetrics(prometheus.NewRegistry()), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC) }
	return svc, quiz, repo
}

func playSession(t *testing.T, quiz *QuizService, rounds int) string {
	t.Helper()
	ctx := context.Background()
	resp, err := quiz.Start(ctx, rounds)
	require.NoError(t, err)
	for i := 0; i < rounds; i++ {
		resp, err = quiz.Choose(ctx, resp.SessionID, resp.Pair[0].ID, nil)
		require.NoError(t, err)
	}
	return resp.SessionID
}

func TestResultsService_ProfileOfCompletedSession(t *testing.T) {
	svc, quiz, _ := newTestResults(t, 4)
	id := playSession(t, quiz, 4)

	profile, err := svc.Profile(context.Background(), id)
	require.NoError(t, err)

	session, _ := quiz.Session(context.Background(), id)
	assert.Equal(t, 4, profile.Metadata.TotalSelections)
	assert.Zero(t, profile.Metadata.SkippedSelections)
	assert.Equal(t, *session.CompletedAt, profile.Metadata.CompletedAt)
	assert.NotEmpty(t, profile.Summary)
	assert.NotEmpty(t, profile.TopRecommendations)
}

func TestResultsService_ProfileOfUnfinishedSessionUsesNow(t *testing.T) {
	svc, quiz, _ := newTestResults(t, 10)
	resp, err := quiz.Start(context.Background(), 0)
	require.NoError(t, err)

	profile, err := svc.Profile(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Zero(t, profile.Metadata.TotalSelections)
	assert.Equal(t, svc.now(), profile.Metadata.CompletedAt)

	_, err = svc.Profile(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestResultsService_Analyze(t *testing.T) {
	svc, _, _ := newTestResults(t, 3)

	profile, err := svc.Analyze(context.Background(), []preference.Selection{
		{SelectedID: "d1"}, {SelectedID: "d2"}, {SelectedID: "ghost"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, profile.Metadata.TotalSelections)
	assert.Equal(t, 1, profile.Metadata.SkippedSelections)

	top := profile.Preferences[preference.CategoryStyle].Top
	require.NotEmpty(t, top)
	assert.Equal(t, "Minimalist", top[0].Tag)
	assert.Equal(t, 2, top[0].Count)

	_, err = svc.Analyze(context.Background(), nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestResultsService_SaveAndGet(t *testing.T) {
	svc, quiz, _ := newTestResults(t, 2)
	ctx := context.Background()
	id := playSession(t, quiz, 2)

	saved, err := svc.Save(ctx, id, "me@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, saved.SessionID)
	assert.Equal(t, "me@example.com", saved.Email)

	got, err := svc.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Profile.Summary, got.Profile.Summary)
	assert.Equal(t, saved.Profile.TopRecommendations, got.Profile.TopRecommendations)
	assert.Equal(t, saved.Profile.Metadata.TotalSelections, got.Profile.Metadata.TotalSelections)
	assert.True(t, saved.Profile.Metadata.CompletedAt.Equal(got.Profile.Metadata.CompletedAt))

	_, err = svc.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrResultNotFound)
	_, err = svc.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrResultNotFound)
}

func TestResultsService_SaveDatabaseError(t *testing.T) {
	svc, quiz, repo := newTestResults(t, 1)
	id := playSession(t, quiz, 1)
	repo.err = errBoom

	_, err := svc.Save(context.Background(), id, "")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
