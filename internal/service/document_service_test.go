package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
	"landing-builder-backend/pkg/cache"
)

func newDocument(title string) models.PageDocument {
	return models.PageDocument{
		Title:    title,
		IsActive: true,
		Content: models.PageContent{
			Hero:     sections.DefaultHero(),
			Sections: []models.Section{sections.DefaultSection(sections.TypeFAQ)},
		},
	}
}

func TestDocumentService_SaveCreatesAndDerivesSlug(t *testing.T) {
	repo := newMemoryLandingPageRepository()
	svc := NewDocumentService(repo, cache.Disabled())
	ctx := context.Background()

	id, saved, err := svc.SavePage(ctx, nil, newDocument("  Spring Launch  "))
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Equal(t, "spring-launch", saved.Slug)
	assert.Equal(t, "Spring Launch", saved.Title)

	row, ok := repo.stored(id)
	require.True(t, ok)
	assert.Equal(t, "spring-launch", row.Slug)
	assert.Equal(t, saved, row.Document)

	_, second, err := svc.SavePage(ctx, nil, newDocument("Spring Launch"))
	require.NoError(t, err)
	assert.Equal(t, "spring-launch-2", second.Slug)
}

func TestDocumentService_SaveOverwritesExistingPage(t *testing.T) {
	repo := newMemoryLandingPageRepository()
	svc := NewDocumentService(repo, cache.Disabled())
	ctx := context.Background()

	id, saved, err := svc.SavePage(ctx, nil, newDocument("Offer"))
	require.NoError(t, err)

	saved.Content.Sections = nil
	saved.Description = "updated"
	sameID, resaved, err := svc.SavePage(ctx, &id, saved)
	require.NoError(t, err)
	assert.Equal(t, id, sameID)
	assert.Equal(t, "offer", resaved.Slug, "a page keeps its own slug")

	loaded, err := svc.LoadPage(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "updated", loaded.Description)
	assert.Empty(t, loaded.Content.Sections)
}

func TestDocumentService_ExplicitSlugConflict(t *testing.T) {
	repo := newMemoryLandingPageRepository()
	svc := NewDocumentService(repo, cache.Disabled())
	ctx := context.Background()

	_, _, err := svc.SavePage(ctx, nil, newDocument("Pricing"))
	require.NoError(t, err)

	doc := newDocument("Other")
	doc.Slug = "Pricing"
	_, _, err = svc.SavePage(ctx, nil, doc)
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestDocumentService_NotFound(t *testing.T) {
	svc := NewDocumentService(newMemoryLandingPageRepository(), cache.Disabled())
	ctx := context.Background()

	_, err := svc.LoadPage(ctx, 42)
	assert.ErrorIs(t, err, ErrPageNotFound)

	missing := uint(42)
	_, _, err = svc.SavePage(ctx, &missing, newDocument("Ghost"))
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestDocumentService_SaveFailureIsWrapped(t *testing.T) {
	repo := newMemoryLandingPageRepository()
	repo.saveErr = errors.New("connection reset")
	svc := NewDocumentService(repo, cache.Disabled())

	_, _, err := svc.SavePage(context.Background(), nil, newDocument("Landing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.saveErr)
	assert.Contains(t, err.Error(), "failed to save page")
}

func TestDocumentService_LoadPreservesUnknownAttributes(t *testing.T) {
	repo := newMemoryLandingPageRepository()
	svc := NewDocumentService(repo, cache.Disabled())
	ctx := context.Background()

	var doc models.PageDocument
	require.NoError(t, doc.UnmarshalJSON([]byte(`{
		"title": "Legacy",
		"theme": "dark",
		"content": {"hero": {"title": "Hi"}, "sections": [{"id": "s1", "type": "text", "order": 0, "animation": "fade"}]}
	}`)))

	id, _, err := svc.SavePage(ctx, nil, doc)
	require.NoError(t, err)

	loaded, err := svc.LoadPage(ctx, id)
	require.NoError(t, err)
	assert.JSONEq(t, `"dark"`, string(loaded.Extra["theme"]))
	require.Len(t, loaded.Content.Sections, 1)
	assert.JSONEq(t, `"fade"`, string(loaded.Content.Sections[0].Extra["animation"]))
}
