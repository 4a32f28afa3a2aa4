package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"landing-builder-backend/internal/builder"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
	"landing-builder-backend/internal/seed"
	"landing-builder-backend/internal/service"
	"landing-builder-backend/pkg/logger"
)

type BuilderHandler struct {
	builder *service.BuilderService
}

func NewBuilderHandler(builderService *service.BuilderService) *BuilderHandler {
	return &BuilderHandler{builder: builderService}
}

// RegisterRoutes mounts the builder API on group.
func (h *BuilderHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/config", h.GetConfig)
	group.GET("/templates", h.ListTemplates)
	group.GET("/rulesets/:type", h.GetRuleset)

	sessions := group.Group("/sessions")
	sessions.POST("", h.OpenSession)

	session := sessions.Group("/:sid")
	session.GET("", h.GetSession)
	session.PATCH("", h.UpdateDocument)
	session.DELETE("", h.CloseSession)
	session.POST("/save", h.SaveSession)
	session.GET("/preview", h.Preview)
	session.PUT("/hero", h.UpdateHero)

	session.POST("/sections", h.AddSection)
	session.POST("/sections/reorder", h.ReorderSections)
	section := session.Group("/sections/:id")
	section.PATCH("", h.UpdateSection)
	section.DELETE("", h.DeleteSection)
	section.POST("/move", h.MoveSection)
	section.POST("/duplicate", h.DuplicateSection)
	section.POST("/visibility", h.ToggleVisibility)

	section.POST("/fields", h.AddField)
	section.PATCH("/fields/:fieldId", h.UpdateField)
	section.DELETE("/fields/:fieldId", h.DeleteField)
	section.POST("/fields/:fieldId/move", h.MoveField)
	section.POST("/fields/:fieldId/options", h.AddOption)
	section.PUT("/fields/:fieldId/options/:index", h.UpdateOption)
	section.DELETE("/fields/:fieldId/options/:index", h.RemoveOption)

	section.POST("/items/:collection", h.AddItem)
	section.PATCH("/items/:collection/:itemId", h.UpdateItem)
	section.DELETE("/items/:collection/:itemId", h.DeleteItem)
	section.POST("/items/:collection/:itemId/move", h.MoveItem)

	session.POST("/editor", h.OpenEditor)
	session.PATCH("/editor", h.PatchEditor)
	session.DELETE("/editor", h.CancelEditor)
	session.POST("/editor/fields", h.AddEditorField)
	session.POST("/editor/commit", h.CommitEditor)

	session.GET("/bulk", h.SearchBulk)
	session.PUT("/bulk/:id/:field", h.BulkUpdate)
	session.POST("/bulk/edit", h.BeginBulkEdit)
	session.PATCH("/bulk/edit", h.SetBulkDraft)
	session.DELETE("/bulk/edit", h.CancelBulkEdit)
	session.POST("/bulk/edit/commit", h.CommitBulkEdit)
}

// GetConfig returns the section palette and form field types.
// GET /api/v1/builder/config
func (h *BuilderHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, sections.BuilderConfig())
}

// ListTemplates returns the page template catalog.
// GET /api/v1/builder/templates
func (h *BuilderHandler) ListTemplates(c *gin.Context) {
	templates := h.builder.Templates()
	if templates == nil {
		templates = []seed.Template{}
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// GetRuleset returns the editable attributes and editor tabs of a section
// type. Unknown types get the generic ruleset.
// GET /api/v1/builder/rulesets/:type
func (h *BuilderHandler) GetRuleset(c *gin.Context) {
	sectionType := c.Param("type")
	c.JSON(http.StatusOK, gin.H{
		"type":    sectionType,
		"ruleset": sections.RulesetFor(sectionType),
		"tabs":    sections.TabsFor(sectionType),
	})
}

// OpenSession loads a page or instantiates a template into a new session.
// POST /api/v1/builder/sessions
func (h *BuilderHandler) OpenSession(c *gin.Context) {
	var req models.OpenSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	view, err := h.builder.Open(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "Failed to open builder session")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": view})
}

// GetSession returns the session document and its dirty flag.
// GET /api/v1/builder/sessions/:sid
func (h *BuilderHandler) GetSession(c *gin.Context) {
	view, err := h.builder.Get(c.Param("sid"))
	if err != nil {
		h.handleError(c, err, "Failed to load builder session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

// UpdateDocument merges page metadata, styling, SEO and footer.
// PATCH /api/v1/builder/sessions/:sid
func (h *BuilderHandler) UpdateDocument(c *gin.Context) {
	var patch models.DocumentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	h.mutate(c, "update_document", func(s *builder.Session) {
		s.UpdateDocument(patch)
	})
}

// CloseSession discards the session without saving.
// DELETE /api/v1/builder/sessions/:sid
func (h *BuilderHandler) CloseSession(c *gin.Context) {
	if err := h.builder.Close(c.Param("sid")); err != nil {
		h.handleError(c, err, "Failed to close builder session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session closed"})
}

// SaveSession persists the session document. A failed save keeps the draft.
// POST /api/v1/builder/sessions/:sid/save
func (h *BuilderHandler) SaveSession(c *gin.Context) {
	sid := c.Param("sid")
	view, err := h.builder.Save(c.Request.Context(), sid)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"session": view})
		return
	}
	if errors.Is(err, service.ErrSessionNotFound) {
		h.handleError(c, err, "Failed to save page")
		return
	}

	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(err, "Failed to save page", map[string]interface{}{"session_id": sid})
	}
	c.JSON(status, gin.H{"error": "Failed to save page", "session": view})
}

// Preview renders the session document as HTML.
// GET /api/v1/builder/sessions/:sid/preview
func (h *BuilderHandler) Preview(c *gin.Context) {
	html, err := h.builder.Preview(c.Param("sid"))
	if err != nil {
		h.handleError(c, err, "Failed to render preview")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *BuilderHandler) mutate(c *gin.Context, operation string, fn func(*builder.Session)) {
	view, err := h.builder.Mutate(c.Param("sid"), operation, fn)
	if err != nil {
		h.handleError(c, err, "Failed to update builder session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

func (h *BuilderHandler) handleError(c *gin.Context, err error, message string) {
	status := statusFor(err)
	switch status {
	case http.StatusNotFound, http.StatusConflict, http.StatusBadRequest:
		c.JSON(status, gin.H{"error": err.Error()})
	default:
		logger.Error(err, message, map[string]interface{}{"session_id": c.Param("sid")})
		c.JSON(status, gin.H{"error": message})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrPageNotFound):
		return http.StatusNotFound
	case errors.Is(err, seed.ErrTemplateNotFound):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSlugTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
