package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"landing-builder-backend/pkg/cache"
	"landing-builder-backend/pkg/logger"
)

// InvalidatePageCache drops the cached document of one page so the next load
// reads the store.
// DELETE /api/v1/builder/cache/pages/:id
func InvalidatePageCache(cacheService *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page id"})
			return
		}

		if !cacheService.Enabled() {
			c.JSON(http.StatusOK, gin.H{"message": "cache disabled", "page_id": id})
			return
		}

		if err := cacheService.InvalidateLandingPage(c.Request.Context(), uint(id)); err != nil {
			logger.Error(err, "Failed to invalidate page cache", map[string]interface{}{"page_id": id})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to invalidate page cache"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "cache cleared successfully",
			"page_id": id,
		})
	}
}
