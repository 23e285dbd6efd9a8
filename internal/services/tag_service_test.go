package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thisorthat/internal/repositories"
	"thisorthat/pkg/utils"
)

func TestTagService_GroupsByCategoryPriority(t *testing.T) {
	repo := &fakeTagRepo{usage: []repositories.TagUsage{
		{Category: "colors", Value: "Pastel", Designs: 3},
		{Category: "style", Value: "Minimalist", Designs: 9},
		{Category: "style", Value: "Bold", Designs: 2},
		{Category: "mystery", Value: "???", Designs: 1},
	}}
	svc := NewTagService(repo)

	out, err := svc.GetTagVocabulary(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "style", out[0].Category)
	assert.Equal(t, "Visual Style", out[0].DisplayName)
	assert.Equal(t, "Minimalist", out[0].Tags[0].Tag)
	assert.Equal(t, 9, out[0].Tags[0].Designs)
	assert.Equal(t, "colors", out[1].Category)

	out, err = svc.GetTagVocabulary(context.Background(), "Colors")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Pastel", out[0].Tags[0].Tag)
}

func TestTagService_Errors(t *testing.T) {
	svc := NewTagService(&fakeTagRepo{})

	_, err := svc.GetTagVocabulary(context.Background(), "mood")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.GetTagVocabulary(context.Background(), "platform")
	assert.ErrorIs(t, err, utils.ErrTagNotFound)

	out, err := svc.GetTagVocabulary(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = NewTagService(&fakeTagRepo{err: errBoom}).GetTagVocabulary(context.Background(), "")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
