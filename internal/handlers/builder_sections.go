package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landing-builder-backend/internal/builder"
	"landing-builder-backend/internal/models"
)

// UpdateHero merges a patch into the hero banner.
// PUT /api/v1/builder/sessions/:sid/hero
func (h *BuilderHandler) UpdateHero(c *gin.Context) {
	var patch models.SectionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	h.mutate(c, "update_hero", func(s *builder.Session) {
		s.UpdateHero(patch)
	})
}

// AddSection appends a section with catalog defaults.
// POST /api/v1/builder/sessions/:sid/sections
func (h *BuilderHandler) AddSection(c *gin.Context) {
	var req models.AddSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var id string
	view, err := h.builder.Mutate(c.Param("sid"), "add_section", func(s *builder.Session) {
		id = s.AddSection(req.Type)
	})
	if err != nil {
		h.handleError(c, err, "Failed to add section")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view, "sectionId": id})
}

// UpdateSection merges a patch into a section.
// PATCH /api/v1/builder/sessions/:sid/sections/:id
func (h *BuilderHandler) UpdateSection(c *gin.Context) {
	var patch models.SectionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	id := c.Param("id")
	h.mutate(c, "update_section", func(s *builder.Session) {
		s.UpdateSection(id, patch)
	})
}

// DeleteSection removes a section.
// DELETE /api/v1/builder/sessions/:sid/sections/:id
func (h *BuilderHandler) DeleteSection(c *gin.Context) {
	id := c.Param("id")
	h.mutate(c, "delete_section", func(s *builder.Session) {
		s.DeleteSection(id)
	})
}

// MoveSection swaps a section with its neighbour.
// POST /api/v1/builder/sessions/:sid/sections/:id/move
func (h *BuilderHandler) MoveSection(c *gin.Context) {
	direction, ok := bindDirection(c)
	if !ok {
		return
	}
	id := c.Param("id")
	h.mutate(c, "move_section", func(s *builder.Session) {
		s.MoveSection(id, direction)
	})
}

// DuplicateSection appends a copy of a section.
// POST /api/v1/builder/sessions/:sid/sections/:id/duplicate
func (h *BuilderHandler) DuplicateSection(c *gin.Context) {
	id := c.Param("id")
	var copyID string
	view, err := h.builder.Mutate(c.Param("sid"), "duplicate_section", func(s *builder.Session) {
		copyID = s.DuplicateSection(id)
	})
	if err != nil {
		h.handleError(c, err, "Failed to duplicate section")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view, "sectionId": copyID})
}

// ToggleVisibility flips whether a section renders.
// POST /api/v1/builder/sessions/:sid/sections/:id/visibility
func (h *BuilderHandler) ToggleVisibility(c *gin.Context) {
	id := c.Param("id")
	h.mutate(c, "toggle_visibility", func(s *builder.Session) {
		s.ToggleVisibility(id)
	})
}

// ReorderSections rebuilds the section order from an id list.
// POST /api/v1/builder/sessions/:sid/sections/reorder
func (h *BuilderHandler) ReorderSections(c *gin.Context) {
	var req models.ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	h.mutate(c, "reorder_sections", func(s *builder.Session) {
		s.ReorderSections(req.SectionIDs)
	})
}

func bindDirection(c *gin.Context) (builder.Direction, bool) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return "", false
	}
	direction, err := builder.ParseDirection(req.Direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return direction, true
}
