package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"landing-builder-backend/internal/builder"
	"landing-builder-backend/internal/models"
)

// AddField appends a field to a section's form.
// POST /api/v1/builder/sessions/:sid/sections/:id/fields
func (h *BuilderHandler) AddField(c *gin.Context) {
	var req models.AddFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sectionID := c.Param("id")
	var fieldID string
	view, err := h.builder.Mutate(c.Param("sid"), "add_field", func(s *builder.Session) {
		s.EditSection(sectionID, func(section models.Section) models.Section {
			return builder.WithForm(section, func(fields []models.FormField) []models.FormField {
				fields, fieldID = builder.AddField(fields, req.Type, s.IDs())
				return fields
			})
		})
	})
	if err != nil {
		h.handleError(c, err, "Failed to add field")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view, "fieldId": fieldID})
}

// UpdateField merges a patch into a form field.
// PATCH /api/v1/builder/sessions/:sid/sections/:id/fields/:fieldId
func (h *BuilderHandler) UpdateField(c *gin.Context) {
	var patch models.FormFieldPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	fieldID := c.Param("fieldId")
	h.editForm(c, "update_field", func(fields []models.FormField) []models.FormField {
		return builder.UpdateField(fields, fieldID, patch)
	})
}

// DeleteField removes a form field.
// DELETE /api/v1/builder/sessions/:sid/sections/:id/fields/:fieldId
func (h *BuilderHandler) DeleteField(c *gin.Context) {
	fieldID := c.Param("fieldId")
	h.editForm(c, "delete_field", func(fields []models.FormField) []models.FormField {
		return builder.DeleteField(fields, fieldID)
	})
}

// MoveField swaps a field with its neighbour.
// POST /api/v1/builder/sessions/:sid/sections/:id/fields/:fieldId/move
func (h *BuilderHandler) MoveField(c *gin.Context) {
	direction, ok := bindDirection(c)
	if !ok {
		return
	}
	fieldID := c.Param("fieldId")
	h.editForm(c, "move_field", func(fields []models.FormField) []models.FormField {
		return builder.MoveField(fields, fieldID, direction)
	})
}

// AddOption appends a numbered option to a choice field.
// POST /api/v1/builder/sessions/:sid/sections/:id/fields/:fieldId/options
func (h *BuilderHandler) AddOption(c *gin.Context) {
	fieldID := c.Param("fieldId")
	h.editForm(c, "add_option", func(fields []models.FormField) []models.FormField {
		return builder.AddOption(fields, fieldID)
	})
}

// UpdateOption replaces the option at an index.
// PUT /api/v1/builder/sessions/:sid/sections/:id/fields/:fieldId/options/:index
func (h *BuilderHandler) UpdateOption(c *gin.Context) {
	index, ok := optionIndex(c)
	if !ok {
		return
	}
	var req models.OptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	fieldID := c.Param("fieldId")
	h.editForm(c, "update_option", func(fields []models.FormField) []models.FormField {
		return builder.UpdateOption(fields, fieldID, index, req.Value)
	})
}

// RemoveOption removes the option at an index.
// DELETE /api/v1/builder/sessions/:sid/sections/:id/fields/:fieldId/options/:index
func (h *BuilderHandler) RemoveOption(c *gin.Context) {
	index, ok := optionIndex(c)
	if !ok {
		return
	}
	fieldID := c.Param("fieldId")
	h.editForm(c, "remove_option", func(fields []models.FormField) []models.FormField {
		return builder.RemoveOption(fields, fieldID, index)
	})
}

func (h *BuilderHandler) editForm(c *gin.Context, operation string, fn func([]models.FormField) []models.FormField) {
	sectionID := c.Param("id")
	h.mutate(c, operation, func(s *builder.Session) {
		s.EditSection(sectionID, func(section models.Section) models.Section {
			return builder.WithForm(section, fn)
		})
	})
}

func optionIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid option index"})
		return 0, false
	}
	return index, true
}
