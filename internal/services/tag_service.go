package services

import (
	"context"
	"fmt"

	"thisorthat/internal/models/response_models"
	"thisorthat/internal/preference"
	"thisorthat/internal/repositories"
	"thisorthat/pkg/utils"
)

type TagServiceInterface interface {
	// GetTagVocabulary groups tag usage by category in category priority
	// order. An empty category returns every category.
	GetTagVocabulary(ctx context.Context, category string) ([]response_models.TagCategoryResponse, error)
}

type TagService struct {
	tagRepo repositories.TagRepositoryInterface
}

func NewTagService(tagRepo repositories.TagRepositoryInterface) TagServiceInterface {
	return &TagService{
		tagRepo: tagRepo,
	}
}

func (t *TagService) GetTagVocabulary(ctx context.Context, category string) ([]response_models.TagCategoryResponse, error) {
	var filter preference.Category
	if category != "" {
		c, ok := preference.ParseCategory(category)
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %q", utils.ErrInvalidInput, category)
		}
		filter = c
	}

	usage, err := t.tagRepo.TagVocabulary(ctx, string(filter))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if filter != "" && len(usage) == 0 {
		return nil, utils.ErrTagNotFound
	}

	grouped := make(map[preference.Category][]response_models.TagUsageResponse)
	for _, u := range usage {
		c, ok := preference.ParseCategory(u.Category)
		if !ok {
			continue
		}
		grouped[c] = append(grouped[c], response_models.TagUsageResponse{Tag: u.Value, Designs: u.Designs})
	}

	out := make([]response_models.TagCategoryResponse, 0, len(grouped))
	for _, c := range preference.Categories {
		tags, ok := grouped[c]
		if !ok {
			continue
		}
		out = append(out, response_models.TagCategoryResponse{
			Category:    string(c),
			DisplayName: c.DisplayName(),
			Tags:        tags,
		})
	}
	return out, nil
}
