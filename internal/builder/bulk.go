package builder

import (
	"strings"

	"landing-builder-backend/internal/models"
)

// BulkFields are the scalar attributes the bulk text editor searches and edits.
var BulkFields = []string{
	models.AttrTitle,
	models.AttrSubtitle,
	models.AttrContent,
	models.AttrCTAText,
	models.AttrCTALink,
}

// IsBulkField reports whether attr is editable through the bulk text editor.
func IsBulkField(attr string) bool {
	for _, field := range BulkFields {
		if field == attr {
			return true
		}
	}
	return false
}

// Filter returns, in render order, the sections whose bulk fields contain
// query ignoring case. An empty query matches every section.
func Filter(list []models.Section, query string) []models.Section {
	query = strings.ToLower(strings.TrimSpace(query))
	sorted := SortedForRender(list)
	if query == "" {
		return sorted
	}

	matches := make([]models.Section, 0, len(sorted))
	for _, section := range sorted {
		for _, field := range BulkFields {
			value, _ := section.Text(field)
			if strings.Contains(strings.ToLower(value), query) {
				matches = append(matches, section)
				break
			}
		}
	}
	return matches
}

// BulkEdit is the single in-flight edit of the bulk text editor.
type BulkEdit struct {
	SectionID string `json:"sectionId"`
	Field     string `json:"field"`
	Draft     string `json:"draftValue"`
}

// BulkEditor holds the query and at most one in-flight edit.
type BulkEditor struct {
	Query   string
	editing *BulkEdit
}

// Results filters the document with the current query.
func (b *BulkEditor) Results(doc models.PageDocument) []models.Section {
	return Filter(doc.Content.Sections, b.Query)
}

// Editing returns the in-flight edit, if any.
func (b *BulkEditor) Editing() (BulkEdit, bool) {
	if b.editing == nil {
		return BulkEdit{}, false
	}
	return *b.editing, true
}

// BeginEdit replaces any in-flight edit with one seeded from the section's
// current value. Unknown sections and non-bulk fields are refused.
func (b *BulkEditor) BeginEdit(doc models.PageDocument, sectionID, field string) bool {
	if !IsBulkField(field) {
		return false
	}
	section, ok := FindSection(doc, sectionID)
	if !ok {
		return false
	}
	value, _ := section.Text(field)
	b.editing = &BulkEdit{SectionID: sectionID, Field: field, Draft: value}
	return true
}

// SetDraft updates the in-flight value.
func (b *BulkEditor) SetDraft(value string) bool {
	if b.editing == nil {
		return false
	}
	b.editing.Draft = value
	return true
}

// Commit writes the in-flight value through UpdateSection and clears the edit.
// Without an edit the document is returned unchanged.
func (b *BulkEditor) Commit(doc models.PageDocument) models.PageDocument {
	if b.editing == nil {
		return doc.Clone()
	}
	edit := *b.editing
	b.editing = nil

	patch, ok := models.TextPatch(edit.Field, edit.Draft)
	if !ok {
		return doc.Clone()
	}
	return UpdateSection(doc, edit.SectionID, patch)
}

// Cancel drops the in-flight edit.
func (b *BulkEditor) Cancel() {
	b.editing = nil
}
