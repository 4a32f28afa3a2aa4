package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landing-builder-backend/internal/builder"
	"landing-builder-backend/internal/models"
)

// OpenEditor opens the section editor on a section or on the hero. An
// unknown section leaves the session unchanged.
// POST /api/v1/builder/sessions/:sid/editor
func (h *BuilderHandler) OpenEditor(c *gin.Context) {
	var req models.OpenEditorRequest
	if !bindBody(c, &req) {
		return
	}
	h.mutate(c, "open_editor", func(s *builder.Session) {
		s.OpenEditor(req.SectionID)
	})
}

// PatchEditor merges a patch into the editor draft. Attributes outside the
// section's ruleset and tabs are dropped.
// PATCH /api/v1/builder/sessions/:sid/editor
func (h *BuilderHandler) PatchEditor(c *gin.Context) {
	var patch models.SectionPatch
	if !bindBody(c, &patch) {
		return
	}
	h.mutate(c, "patch_editor", func(s *builder.Session) {
		if editor, ok := s.Editor(); ok {
			editor.ApplyPatch(patch)
		}
	})
}

// AddEditorField appends a field to the draft form of the open editor.
// POST /api/v1/builder/sessions/:sid/editor/fields
func (h *BuilderHandler) AddEditorField(c *gin.Context) {
	var req models.AddFieldRequest
	if !bindBody(c, &req) {
		return
	}

	var fieldID string
	view, err := h.builder.Mutate(c.Param("sid"), "editor_add_field", func(s *builder.Session) {
		if editor, ok := s.Editor(); ok {
			fieldID = editor.AddField(req.Type)
		}
	})
	if err != nil {
		h.handleError(c, err, "Failed to add field")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view, "fieldId": fieldID})
}

// CommitEditor writes the editor draft into the document and closes it.
// POST /api/v1/builder/sessions/:sid/editor/commit
func (h *BuilderHandler) CommitEditor(c *gin.Context) {
	h.mutate(c, "commit_editor", func(s *builder.Session) {
		s.CommitEditor()
	})
}

// CancelEditor closes the editor without writing the draft.
// DELETE /api/v1/builder/sessions/:sid/editor
func (h *BuilderHandler) CancelEditor(c *gin.Context) {
	h.mutate(c, "cancel_editor", func(s *builder.Session) {
		s.CancelEditor()
	})
}

// SearchBulk lists, in render order, the sections whose text matches q.
// GET /api/v1/builder/sessions/:sid/bulk?q=
func (h *BuilderHandler) SearchBulk(c *gin.Context) {
	query := c.Query("q")
	var results []models.Section
	view, err := h.builder.Mutate(c.Param("sid"), "bulk_search", func(s *builder.Session) {
		s.Bulk().Query = query
		results = s.Bulk().Results(s.Document())
	})
	if err != nil {
		h.handleError(c, err, "Failed to search sections")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"fields":   builder.BulkFields,
		"results":  results,
		"bulkEdit": view.BulkEdit,
	})
}

// BulkUpdate writes one text field of one section in a single step.
// PUT /api/v1/builder/sessions/:sid/bulk/:id/:field
func (h *BuilderHandler) BulkUpdate(c *gin.Context) {
	field := c.Param("field")
	if !builder.IsBulkField(field) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field is not editable in bulk"})
		return
	}
	var req models.BulkDraftRequest
	if !bindBody(c, &req) {
		return
	}

	sectionID := c.Param("id")
	h.mutate(c, "bulk_update", func(s *builder.Session) {
		if s.Bulk().BeginEdit(s.Document(), sectionID, field) {
			s.Bulk().SetDraft(req.Value)
			s.CommitBulk()
		}
	})
}

// BeginBulkEdit starts the in-flight bulk edit, replacing any previous one.
// POST /api/v1/builder/sessions/:sid/bulk/edit
func (h *BuilderHandler) BeginBulkEdit(c *gin.Context) {
	var req models.BulkEditRequest
	if !bindBody(c, &req) {
		return
	}
	if !builder.IsBulkField(req.Field) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field is not editable in bulk"})
		return
	}
	h.mutate(c, "bulk_begin", func(s *builder.Session) {
		s.Bulk().BeginEdit(s.Document(), req.SectionID, req.Field)
	})
}

// SetBulkDraft replaces the draft value of the in-flight bulk edit.
// PATCH /api/v1/builder/sessions/:sid/bulk/edit
func (h *BuilderHandler) SetBulkDraft(c *gin.Context) {
	var req models.BulkDraftRequest
	if !bindBody(c, &req) {
		return
	}
	h.mutate(c, "bulk_draft", func(s *builder.Session) {
		s.Bulk().SetDraft(req.Value)
	})
}

// CommitBulkEdit writes the in-flight bulk edit.
// POST /api/v1/builder/sessions/:sid/bulk/edit/commit
func (h *BuilderHandler) CommitBulkEdit(c *gin.Context) {
	h.mutate(c, "bulk_commit", func(s *builder.Session) {
		s.CommitBulk()
	})
}

// CancelBulkEdit drops the in-flight bulk edit.
// DELETE /api/v1/builder/sessions/:sid/bulk/edit
func (h *BuilderHandler) CancelBulkEdit(c *gin.Context) {
	h.mutate(c, "bulk_cancel", func(s *builder.Session) {
		s.Bulk().Cancel()
	})
}
