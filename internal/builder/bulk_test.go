package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
)

func bulkDocument(t *testing.T) (models.PageDocument, string, string) {
	t.Helper()
	ids := &SequenceAllocator{Prefix: "s"}
	doc, a := AddSection(emptyDocument(), sections.TypeText, ids)
	doc, b := AddSection(doc, sections.TypeCTA, ids)

	link := "https://Example.com/pricing"
	doc = UpdateSection(doc, b, models.SectionPatch{CTALink: &link})
	return doc, a, b
}

func TestFilter(t *testing.T) {
	doc, a, b := bulkDocument(t)

	assert.Len(t, Filter(doc.Content.Sections, ""), 2)

	matches := Filter(doc.Content.Sections, "TEXT BLOCK")
	require.Len(t, matches, 1)
	assert.Equal(t, a, matches[0].ID)

	matches = Filter(doc.Content.Sections, "example.com")
	require.Len(t, matches, 1)
	assert.Equal(t, b, matches[0].ID)

	assert.Empty(t, Filter(doc.Content.Sections, "nothing like this"))
}

func TestBulkEditorCommit(t *testing.T) {
	doc, a, _ := bulkDocument(t)
	var bulk BulkEditor

	require.True(t, bulk.BeginEdit(doc, a, models.AttrTitle))
	edit, ok := bulk.Editing()
	require.True(t, ok)
	assert.Equal(t, "Text Block", edit.Draft)

	assert.True(t, bulk.SetDraft("Intro"))
	next := bulk.Commit(doc)

	section, _ := FindSection(next, a)
	assert.Equal(t, "Intro", section.Title)
	_, ok = bulk.Editing()
	assert.False(t, ok)
}

func TestBulkEditorCancel(t *testing.T) {
	doc, a, _ := bulkDocument(t)
	var bulk BulkEditor

	bulk.BeginEdit(doc, a, models.AttrContent)
	bulk.SetDraft("draft")
	bulk.Cancel()

	assert.Equal(t, doc, bulk.Commit(doc))
	assert.False(t, bulk.SetDraft("late"))
}

func TestBulkEditorRefusesUnknownTargets(t *testing.T) {
	doc, a, _ := bulkDocument(t)
	var bulk BulkEditor

	assert.False(t, bulk.BeginEdit(doc, "missing", models.AttrTitle))
	assert.False(t, bulk.BeginEdit(doc, a, models.AttrDeveloper))
	assert.False(t, bulk.BeginEdit(doc, a, "backgroundColor"))
}
