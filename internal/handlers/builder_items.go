package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landing-builder-backend/internal/builder"
	"landing-builder-backend/internal/models"
)

type recordValueRequest struct {
	Value string `json:"value"`
}

// AddItem appends an item to a nested collection. Record collections take a
// key/value pair instead of an item.
// POST /api/v1/builder/sessions/:sid/sections/:id/items/:collection
func (h *BuilderHandler) AddItem(c *gin.Context) {
	collection := c.Param("collection")

	var edit func(s *builder.Session, section models.Section) (models.Section, string)
	switch collection {
	case models.AttrFeatures:
		var item models.Feature
		if !bindBody(c, &item) {
			return
		}
		edit = func(s *builder.Session, section models.Section) (models.Section, string) {
			return builder.AddFeature(section, item, s.IDs())
		}
	case models.AttrFAQItems:
		var item models.FAQItem
		if !bindBody(c, &item) {
			return
		}
		edit = func(s *builder.Session, section models.Section) (models.Section, string) {
			return builder.AddFAQItem(section, item, s.IDs())
		}
	case models.AttrTestimonials:
		var item models.Testimonial
		if !bindBody(c, &item) {
			return
		}
		edit = func(s *builder.Session, section models.Section) (models.Section, string) {
			return builder.AddTestimonial(section, item, s.IDs())
		}
	case models.AttrProjectDetails, models.AttrContactInfo:
		var req models.RecordEntryRequest
		if !bindBody(c, &req) {
			return
		}
		edit = func(_ *builder.Session, section models.Section) (models.Section, string) {
			return builder.SetRecordEntry(section, collection, req.Key, req.Value), req.Key
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown collection"})
		return
	}

	sectionID := c.Param("id")
	var itemID string
	view, err := h.builder.Mutate(c.Param("sid"), "add_item", func(s *builder.Session) {
		s.EditSection(sectionID, func(section models.Section) models.Section {
			section, itemID = edit(s, section)
			return section
		})
	})
	if err != nil {
		h.handleError(c, err, "Failed to add item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view, "itemId": itemID})
}

// UpdateItem merges a patch into an item. For record collections the item id
// is the record key.
// PATCH /api/v1/builder/sessions/:sid/sections/:id/items/:collection/:itemId
func (h *BuilderHandler) UpdateItem(c *gin.Context) {
	collection := c.Param("collection")
	itemID := c.Param("itemId")

	var edit func(models.Section) models.Section
	switch collection {
	case models.AttrFeatures:
		var patch models.FeaturePatch
		if !bindBody(c, &patch) {
			return
		}
		edit = func(section models.Section) models.Section {
			return builder.UpdateFeature(section, itemID, patch)
		}
	case models.AttrFAQItems:
		var patch models.FAQItemPatch
		if !bindBody(c, &patch) {
			return
		}
		edit = func(section models.Section) models.Section {
			return builder.UpdateFAQItem(section, itemID, patch)
		}
	case models.AttrTestimonials:
		var patch models.TestimonialPatch
		if !bindBody(c, &patch) {
			return
		}
		edit = func(section models.Section) models.Section {
			return builder.UpdateTestimonial(section, itemID, patch)
		}
	case models.AttrProjectDetails, models.AttrContactInfo:
		var req recordValueRequest
		if !bindBody(c, &req) {
			return
		}
		edit = func(section models.Section) models.Section {
			return builder.SetRecordEntry(section, collection, itemID, req.Value)
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown collection"})
		return
	}

	h.editSection(c, "update_item", edit)
}

// DeleteItem removes an item or a record key.
// DELETE /api/v1/builder/sessions/:sid/sections/:id/items/:collection/:itemId
func (h *BuilderHandler) DeleteItem(c *gin.Context) {
	collection := c.Param("collection")
	itemID := c.Param("itemId")

	var edit func(models.Section) models.Section
	switch collection {
	case models.AttrFeatures:
		edit = func(section models.Section) models.Section { return builder.DeleteFeature(section, itemID) }
	case models.AttrFAQItems:
		edit = func(section models.Section) models.Section { return builder.DeleteFAQItem(section, itemID) }
	case models.AttrTestimonials:
		edit = func(section models.Section) models.Section { return builder.DeleteTestimonial(section, itemID) }
	case models.AttrProjectDetails, models.AttrContactInfo:
		edit = func(section models.Section) models.Section {
			return builder.DeleteRecordEntry(section, collection, itemID)
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown collection"})
		return
	}

	h.editSection(c, "delete_item", edit)
}

// MoveItem swaps an item with its neighbour. Records are unordered.
// POST /api/v1/builder/sessions/:sid/sections/:id/items/:collection/:itemId/move
func (h *BuilderHandler) MoveItem(c *gin.Context) {
	collection := c.Param("collection")
	if builder.IsRecordCollection(collection) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record entries cannot be moved"})
		return
	}

	itemID := c.Param("itemId")
	var move func(models.Section, builder.Direction) models.Section
	switch collection {
	case models.AttrFeatures:
		move = func(section models.Section, d builder.Direction) models.Section { return builder.MoveFeature(section, itemID, d) }
	case models.AttrFAQItems:
		move = func(section models.Section, d builder.Direction) models.Section { return builder.MoveFAQItem(section, itemID, d) }
	case models.AttrTestimonials:
		move = func(section models.Section, d builder.Direction) models.Section { return builder.MoveTestimonial(section, itemID, d) }
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown collection"})
		return
	}

	direction, ok := bindDirection(c)
	if !ok {
		return
	}
	h.editSection(c, "move_item", func(section models.Section) models.Section {
		return move(section, direction)
	})
}

func (h *BuilderHandler) editSection(c *gin.Context, operation string, fn func(models.Section) models.Section) {
	sectionID := c.Param("id")
	h.mutate(c, operation, func(s *builder.Session) {
		s.EditSection(sectionID, fn)
	})
}

func bindBody(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return false
	}
	return true
}
