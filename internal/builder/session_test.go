package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
)

func TestSessionDirtyTracking(t *testing.T) {
	session := NewSession(nil, emptyDocument(), &SequenceAllocator{})
	assert.False(t, session.Dirty())
	assert.Nil(t, session.PageID())

	session.MoveSection("missing", Up)
	assert.False(t, session.Dirty(), "no-op must not mark the session dirty")

	id := session.AddSection(sections.TypeFAQ)
	require.NotEmpty(t, id)
	assert.True(t, session.Dirty())

	session.MarkSaved(7, session.Document())
	assert.False(t, session.Dirty())
	require.NotNil(t, session.PageID())
	assert.Equal(t, uint(7), *session.PageID())
}

func TestSessionDocumentIsACopy(t *testing.T) {
	session := NewSession(nil, emptyDocument(), &SequenceAllocator{})
	session.AddSection(sections.TypeText)

	doc := session.Document()
	doc.Content.Sections[0].Title = "mutated"

	assert.NotEqual(t, "mutated", session.Document().Content.Sections[0].Title)
}

func TestSessionEditorLifecycle(t *testing.T) {
	session := NewSession(nil, emptyDocument(), &SequenceAllocator{})
	id := session.AddSection(sections.TypeText)

	require.True(t, session.OpenEditor(id))
	editor, ok := session.Editor()
	require.True(t, ok)
	editor.SetText(models.AttrTitle, "Draft title")

	session.CancelEditor()
	_, ok = session.Editor()
	assert.False(t, ok)
	section, _ := FindSection(session.Document(), id)
	assert.Equal(t, "Text Block", section.Title)

	session.OpenEditor(id)
	editor, _ = session.Editor()
	editor.SetText(models.AttrTitle, "Committed")
	assert.True(t, session.CommitEditor())
	section, _ = FindSection(session.Document(), id)
	assert.Equal(t, "Committed", section.Title)
	assert.False(t, session.CommitEditor())
}

func TestSessionDeleteClosesEditors(t *testing.T) {
	session := NewSession(nil, emptyDocument(), &SequenceAllocator{})
	id := session.AddSection(sections.TypeText)
	session.OpenEditor(id)
	session.Bulk().BeginEdit(session.Document(), id, models.AttrTitle)

	session.DeleteSection(id)

	_, ok := session.Editor()
	assert.False(t, ok)
	_, ok = session.Bulk().Editing()
	assert.False(t, ok)
	assert.Empty(t, session.Document().Content.Sections)
}

func TestSessionOperations(t *testing.T) {
	session := NewSession(nil, emptyDocument(), &SequenceAllocator{Prefix: "s"})
	a := session.AddSection(sections.TypeText)
	b := session.AddSection(sections.TypeFAQ)

	copyID := session.DuplicateSection(a)
	session.ReorderSections([]string{copyID})
	session.ToggleVisibility(b)
	session.MoveSection(a, Down)

	title := "Hero"
	session.UpdateHero(models.SectionPatch{Title: &title})
	pageTitle := "Renamed"
	session.UpdateDocument(models.DocumentPatch{Title: &pageTitle})

	assert.True(t, session.EditSection(b, func(s models.Section) models.Section {
		s, _ = AddFAQItem(s, models.FAQItem{Question: "Q"}, session.IDs())
		return s
	}))
	assert.False(t, session.EditSection("missing", func(s models.Section) models.Section { return s }))

	doc := session.Document()
	assert.Equal(t, []string{copyID, b, a}, sectionIDs(doc))
	faq, _ := FindSection(doc, b)
	assert.False(t, faq.IsVisible)
	assert.Len(t, faq.FAQItems, 1)
	assert.Equal(t, "Hero", doc.Content.Hero.Title)
	assert.Equal(t, "Renamed", doc.Title)

	session.Bulk().Query = "copy"
	results := session.Bulk().Results(doc)
	require.Len(t, results, 1)
	assert.Equal(t, copyID, results[0].ID)

	session.Bulk().BeginEdit(doc, copyID, models.AttrSubtitle)
	session.Bulk().SetDraft("Second")
	session.CommitBulk()
	duplicate, _ := FindSection(session.Document(), copyID)
	assert.Equal(t, "Second", duplicate.Subtitle)
}

func TestSessionEditorCommitDoesNotRevertOtherOperations(t *testing.T) {
	session := NewSession(nil, emptyDocument(), &SequenceAllocator{})
	id := session.AddSection(sections.TypeFAQ)

	require.True(t, session.OpenEditor(id))
	editor, _ := session.Editor()
	editor.SetText(models.AttrSubtitle, "Ask away")

	session.ToggleVisibility(id)
	session.EditSection(id, func(s models.Section) models.Section {
		s, _ = AddFAQItem(s, models.FAQItem{Question: "Q"}, session.IDs())
		return s
	})
	require.True(t, session.CommitEditor())

	section, _ := FindSection(session.Document(), id)
	assert.Equal(t, "Ask away", section.Subtitle)
	assert.False(t, section.IsVisible)
	assert.Len(t, section.FAQItems, 1)
}
