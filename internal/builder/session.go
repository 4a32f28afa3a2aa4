package builder

import (
	"reflect"

	"landing-builder-backend/internal/models"
)

// Session owns the document of one editing session: the page being edited,
// the open section editor and the bulk text editor. A Session is not safe for
// concurrent use.
type Session struct {
	pageID *uint
	doc    models.PageDocument
	dirty  bool
	ids    IDAllocator

	editor *Editor
	bulk   BulkEditor
}

// NewSession starts a session on doc. pageID is nil for a page that was never
// saved.
func NewSession(pageID *uint, doc models.PageDocument, ids IDAllocator) *Session {
	return &Session{
		pageID: copyID(pageID),
		doc:    doc.Clone(),
		ids:    allocatorOrDefault(ids),
	}
}

// PageID returns the store identifier, nil until the first save.
func (s *Session) PageID() *uint { return copyID(s.pageID) }

// Document returns a copy of the current document.
func (s *Session) Document() models.PageDocument { return s.doc.Clone() }

// Dirty reports whether the document changed since it was loaded or saved.
func (s *Session) Dirty() bool { return s.dirty }

// MarkSaved records the identifier and document returned by the store.
func (s *Session) MarkSaved(pageID uint, saved models.PageDocument) {
	s.pageID = &pageID
	s.doc = saved.Clone()
	s.dirty = false
}

func (s *Session) apply(next models.PageDocument) {
	if !reflect.DeepEqual(s.doc, next) {
		s.dirty = true
	}
	s.doc = next
}

func (s *Session) AddSection(sectionType string) string {
	next, id := AddSection(s.doc, sectionType, s.ids)
	s.apply(next)
	return id
}

func (s *Session) UpdateSection(id string, patch models.SectionPatch) {
	s.apply(UpdateSection(s.doc, id, patch))
}

// DeleteSection also drops any editor or bulk edit open on the section.
func (s *Session) DeleteSection(id string) {
	s.apply(DeleteSection(s.doc, id))
	if s.editor != nil && s.editor.SectionID() == id {
		s.editor = nil
	}
	if edit, ok := s.bulk.Editing(); ok && edit.SectionID == id {
		s.bulk.Cancel()
	}
}

func (s *Session) MoveSection(id string, direction Direction) {
	s.apply(MoveSection(s.doc, id, direction))
}

func (s *Session) DuplicateSection(id string) string {
	next, newID := DuplicateSection(s.doc, id, s.ids)
	s.apply(next)
	return newID
}

func (s *Session) ToggleVisibility(id string) {
	s.apply(ToggleVisibility(s.doc, id))
}

func (s *Session) ReorderSections(ids []string) {
	s.apply(ReorderSections(s.doc, ids))
}

func (s *Session) UpdateHero(patch models.SectionPatch) {
	s.apply(UpdateHero(s.doc, patch))
}

// UpdateDocument merges page-level metadata.
func (s *Session) UpdateDocument(patch models.DocumentPatch) {
	s.apply(patch.Apply(s.doc))
}

// EditSection applies fn to the section with the given id and reports whether
// it exists.
func (s *Session) EditSection(id string, fn func(models.Section) models.Section) bool {
	next, ok := WithSection(s.doc, id, fn)
	if ok {
		s.apply(next)
	}
	return ok
}

// IDs returns the session's identifier allocator.
func (s *Session) IDs() IDAllocator { return s.ids }

// OpenEditor opens the section editor on id, replacing any open editor.
func (s *Session) OpenEditor(id string) bool {
	editor, ok := OpenEditor(s.doc, id, s.ids)
	if !ok {
		return false
	}
	s.editor = editor
	return true
}

// Editor returns the open section editor.
func (s *Session) Editor() (*Editor, bool) {
	return s.editor, s.editor != nil
}

// CommitEditor writes the open editor's draft and closes it.
func (s *Session) CommitEditor() bool {
	if s.editor == nil {
		return false
	}
	s.apply(s.editor.Commit(s.doc))
	s.editor = nil
	return true
}

// CancelEditor discards the open editor's draft.
func (s *Session) CancelEditor() {
	s.editor = nil
}

// Bulk returns the bulk text editor state.
func (s *Session) Bulk() *BulkEditor { return &s.bulk }

// CommitBulk writes the bulk editor's in-flight edit.
func (s *Session) CommitBulk() {
	s.apply(s.bulk.Commit(s.doc))
}

func copyID(id *uint) *uint {
	if id == nil {
		return nil
	}
	value := *id
	return &value
}
