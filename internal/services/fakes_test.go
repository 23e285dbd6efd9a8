package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"thisorthat/internal/models/db_models"
	"thisorthat/internal/preference"
	"thisorthat/internal/repositories"
)

var errBoom = errors.New("boom")

type fakeDesignRepo struct {
	mu      sync.Mutex
	designs map[string]db_models.Design
	err     error
}

func newFakeDesignRepo(designs ...preference.Design) *fakeDesignRepo {
	r := &fakeDesignRepo{designs: make(map[string]db_models.Design)}
	for _, d := range designs {
		r.designs[d.ID] = designToRow(d)
	}
	return r
}

func (r *fakeDesignRepo) UpsertDesigns(ctx context.Context, designs []db_models.Design) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, d := range designs {
		r.designs[d.ID] = d
	}
	return nil
}

func (r *fakeDesignRepo) ListDesigns(ctx context.Context) ([]db_models.Design, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]db_models.Design, 0, len(r.designs))
	for _, d := range r.designs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDesignRepo) CountDesigns(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.designs)), r.err
}

type fakeTagRepo struct {
	usage []repositories.TagUsage
	err   error
}

func (r *fakeTagRepo) TagVocabulary(ctx context.Context, category string) ([]repositories.TagUsage, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []repositories.TagUsage
	for _, u := range r.usage {
		if category == "" || u.Category == category {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeResultRepo struct {
	mu      sync.Mutex
	results map[uuid.UUID]db_models.SavedResult
	err     error
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: make(map[uuid.UUID]db_models.SavedResult)}
}

func (r *fakeResultRepo) CreateResult(ctx context.Context, result *db_models.SavedResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	result.ID = uuid.New()
	result.CreatedAt = time.Now().Unix()
	r.results[result.ID] = *result
	return nil
}

func (r *fakeResultRepo) GetResult(ctx context.Context, id uuid.UUID) (*db_models.SavedResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	res, ok := r.results[id]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

type fakeFeedbackRepo struct {
	mu       sync.Mutex
	feedback []db_models.ResultFeedback
}

func (r *fakeFeedbackRepo) CreateFeedback(ctx context.Context, feedback *db_models.ResultFeedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	feedback.ID = uuid.New()
	feedback.CreatedAt = time.Now().Unix()
	r.feedback = append(r.feedback, *feedback)
	return nil
}

func (r *fakeFeedbackRepo) ListFeedback(ctx context.Context, resultID uuid.UUID, page, pageSize int) ([]db_models.ResultFeedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.ResultFeedback
	for _, f := range r.feedback {
		if f.ResultID == resultID {
			out = append(out, f)
		}
	}
	start := (page - 1) * pageSize
	if start >= len(out) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], nil
}

func testDesigns() []preference.Design {
	return []preference.Design{
		{
			ID:   "d1",
			Name: "Calm Bank",
			Tags: map[preference.Category][]string{
				preference.CategoryStyle:    {"Minimalist"},
				preference.CategoryIndustry: {"Fintech"},
			},
			Colors: []string{"#ffffff"},
		},
		{
			ID: "d2",
			Tags: map[preference.Category][]string{
				preference.CategoryStyle:      {"Minimalist", "Editorial"},
				preference.CategoryTypography: {"Serif"},
			},
		},
		{
			ID: "d3",
			Tags: map[preference.Category][]string{
				preference.CategoryStyle:    {"Bold"},
				preference.CategoryPlatform: {"Webflow"},
			},
		},
		{
			ID: "d4",
			Tags: map[preference.Category][]string{
				preference.CategoryStyle: {"Retro"},
			},
		},
	}
}
