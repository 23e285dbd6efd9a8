package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"thisorthat/internal/config"
	"thisorthat/internal/infra"
	"thisorthat/internal/models/db_models"
)

// openTestDB connects to TEST_POSTGRES_URL and wipes the tables. Tests are
// skipped when it is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	url := os.Getenv("TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("TEST_POSTGRES_URL not set")
	}
	db, err := infra.InitPostgresql(config.DatabaseConfig{
		URL:          url,
		MaxOpenConns: 2,
		MaxIdleConns: 1,
		AutoMigrate:  true,
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, db.Exec("TRUNCATE result_feedbacks, saved_results, design_tags, designs").Error)
	t.Cleanup(func() { _ = infra.ClosePostgresql(db, zap.NewNop()) })
	return db
}

func TestDesignRepository_UpsertReplacesTags(t *testing.T) {
	db := openTestDB(t)
	repo := NewDesignRepository(db)
	ctx := context.Background()

	first := db_models.Design{
		ID:     "d1",
		Name:   "First",
		Colors: pq.StringArray{"#ffffff"},
		Tags: []db_models.DesignTag{
			{DesignID: "d1", Category: "style", Value: "Minimalist", Position: 0},
			{DesignID: "d1", Category: "style", Value: "Clean", Position: 1},
		},
	}
	require.NoError(t, repo.UpsertDesigns(ctx, []db_models.Design{first}))

	second := first
	second.Name = "Second"
	second.Tags = []db_models.DesignTag{{DesignID: "d1", Category: "industry", Value: "Fintech"}}
	require.NoError(t, repo.UpsertDesigns(ctx, []db_models.Design{second}))

	designs, err := repo.ListDesigns(ctx)
	require.NoError(t, err)
	require.Len(t, designs, 1)
	assert.Equal(t, "Second", designs[0].Name)
	assert.Equal(t, pq.StringArray{"#ffffff"}, designs[0].Colors)
	require.Len(t, designs[0].Tags, 1)
	assert.Equal(t, "Fintech", designs[0].Tags[0].Value)

	count, err := repo.CountDesigns(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestTagRepository_Vocabulary(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewDesignRepository(db).UpsertDesigns(ctx, []db_models.Design{
		{ID: "a", Tags: []db_models.DesignTag{{DesignID: "a", Category: "style", Value: "Bold"}}},
		{ID: "b", Tags: []db_models.DesignTag{{DesignID: "b", Category: "style", Value: "Bold"}}},
		{ID: "c", Tags: []db_models.DesignTag{{DesignID: "c", Category: "colors", Value: "Pastel"}}},
	}))

	usage, err := NewTagRepository(db).TagVocabulary(ctx, "style")
	require.NoError(t, err)
	require.Len(t, usage, 1)
	assert.Equal(t, TagUsage{Category: "style", Value: "Bold", Designs: 2}, usage[0])

	all, err := NewTagRepository(db).TagVocabulary(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestResultAndFeedbackRepositories(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	results := NewResultRepository(db)

	row := &db_models.SavedResult{SessionID: uuid.New(), TotalSelections: 3, Profile: []byte(`{"summary":"x"}`)}
	require.NoError(t, results.CreateResult(ctx, row))
	require.NotEqual(t, uuid.Nil, row.ID)

	got, err := results.GetResult(ctx, row.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.JSONEq(t, `{"summary":"x"}`, string(got.Profile))

	missing, err := results.GetResult(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	feedback := NewFeedbackRepository(db)
	require.NoError(t, feedback.CreateFeedback(ctx, &db_models.ResultFeedback{ResultID: row.ID, Rating: 5}))
	list, err := feedback.ListFeedback(ctx, row.ID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFeedbackRepository_StablePages(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	row := &db_models.SavedResult{SessionID: uuid.New(), TotalSelections: 1, Profile: []byte(`{}`)}
	require.NoError(t, NewResultRepository(db).CreateResult(ctx, row))

	feedback := NewFeedbackRepository(db)
	for i := 0; i < 5; i++ {
		require.NoError(t, feedback.CreateFeedback(ctx, &db_models.ResultFeedback{ResultID: row.ID, Rating: i%5 + 1}))
	}

	first, err := feedback.ListFeedback(ctx, row.ID, 1, 3)
	require.NoError(t, err)
	second, err := feedback.ListFeedback(ctx, row.ID, 2, 3)
	require.NoError(t, err)
	require.Len(t, first, 3)
	require.Len(t, second, 2)

	seen := map[uuid.UUID]bool{}
	for _, f := range append(first, second...) {
		assert.False(t, seen[f.ID], "feedback %s returned twice", f.ID)
		seen[f.ID] = true
	}

	again, err := feedback.ListFeedback(ctx, row.ID, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}
