package builder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
)

func TestEditorCommitWritesDraftThroughUpdate(t *testing.T) {
	ids := &SequenceAllocator{}
	doc, id := AddSection(emptyDocument(), sections.TypeFeatures, ids)

	editor, ok := OpenEditor(doc, id, ids)
	require.True(t, ok)
	assert.True(t, editor.SetText(models.AttrTitle, "Why us"))
	assert.False(t, editor.SetText(models.AttrContent, "not in features ruleset"))
	editor.Edit(func(s models.Section) models.Section {
		s, _ = AddFeature(s, models.Feature{Title: "Fast"}, ids)
		return s
	})

	section, _ := FindSection(doc, id)
	assert.Equal(t, "Features", section.Title, "draft must not leak before commit")

	committed := editor.Commit(doc)
	section, _ = FindSection(committed, id)
	assert.Equal(t, "Why us", section.Title)
	assert.Len(t, section.Features, 1)
	assert.Equal(t, 0, section.Order)
	assert.Equal(t, id, section.ID)
}

func TestEditorFiltersPatchByTabs(t *testing.T) {
	ids := &SequenceAllocator{}
	doc, id := AddSection(emptyDocument(), sections.TypeText, ids)
	editor, _ := OpenEditor(doc, id, ids)

	var patch models.SectionPatch
	require.NoError(t, json.Unmarshal([]byte(`{
		"title": "Hello",
		"ctaText": "ignored",
		"backgroundColor": "#000000",
		"layout": {"columns": 2, "alignment": "left"},
		"features": [{"id": "x", "title": "ignored"}],
		"formConfig": {"fields": []},
		"animation": "fade"
	}`), &patch))
	editor.ApplyPatch(patch)

	draft := editor.Draft()
	assert.Equal(t, "Hello", draft.Title)
	assert.Empty(t, draft.CTAText)
	assert.Equal(t, "#000000", draft.BackgroundColor)
	require.NotNil(t, draft.Layout)
	assert.Equal(t, 2, draft.Layout.Columns)
	assert.Empty(t, draft.Features)
	assert.Nil(t, draft.FormConfig)
	assert.JSONEq(t, `"fade"`, string(draft.Extra["animation"]))
}

func TestEditorFormBuilderTab(t *testing.T) {
	ids := &SequenceAllocator{}
	doc, formID := AddSection(emptyDocument(), sections.TypeForm, ids)
	doc, textID := AddSection(doc, sections.TypeText, ids)

	formEditor, _ := OpenEditor(doc, formID, ids)
	fieldID := formEditor.AddField(sections.FieldSelect)
	require.NotEmpty(t, fieldID)
	formEditor.EditForm(func(fields []models.FormField) []models.FormField {
		return AddOption(fields, fieldID)
	})
	doc = formEditor.Commit(doc)

	form, _ := FindSection(doc, formID)
	require.Len(t, form.FormConfig.Fields, 1)
	assert.Len(t, form.FormConfig.Fields[0].Options, 3)

	textEditor, _ := OpenEditor(doc, textID, ids)
	assert.Empty(t, textEditor.AddField(sections.FieldText))
	assert.NotContains(t, textEditor.Tabs(), sections.TabFormBuilder)
}

func TestEditorOnHero(t *testing.T) {
	doc, _ := AddSection(emptyDocument(), sections.TypeText, &SequenceAllocator{})

	editor, ok := OpenEditor(doc, models.HeroID, nil)
	require.True(t, ok)
	assert.True(t, editor.SetText(models.AttrCTAText, "Join now"))

	next := editor.Commit(doc)
	assert.Equal(t, "Join now", next.Content.Hero.CTAText)
	assert.Equal(t, doc.Content.Sections, next.Content.Sections)
}

func TestOpenEditorUnknownSection(t *testing.T) {
	_, ok := OpenEditor(emptyDocument(), "missing", nil)
	assert.False(t, ok)
}

func TestEditorCommitKeepsChangesMadeWhileOpen(t *testing.T) {
	ids := &SequenceAllocator{}
	doc, id := AddSection(emptyDocument(), sections.TypeFAQ, ids)

	editor, ok := OpenEditor(doc, id, ids)
	require.True(t, ok)
	editor.SetText(models.AttrTitle, "Questions")

	doc = ToggleVisibility(doc, id)
	doc, _ = WithSection(doc, id, func(s models.Section) models.Section {
		s, _ = AddFAQItem(s, models.FAQItem{Question: "Added elsewhere"}, ids)
		return s
	})

	committed := editor.Commit(doc)
	section, _ := FindSection(committed, id)
	assert.Equal(t, "Questions", section.Title)
	assert.False(t, section.IsVisible)
	require.Len(t, section.FAQItems, 1)
	assert.Equal(t, "Added elsewhere", section.FAQItems[0].Question)
}
