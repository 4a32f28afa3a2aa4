package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/repository"
	"landing-builder-backend/pkg/cache"
	"landing-builder-backend/pkg/logger"
	"landing-builder-backend/pkg/utils"
)

const maxSlugAttempts = 50

var (
	ErrPageNotFound = errors.New("page not found")
	ErrSlugTaken    = errors.New("page with this slug already exists")
)

// PageStore loads and saves whole page documents.
type PageStore interface {
	LoadPage(ctx context.Context, id uint) (models.PageDocument, error)
	SavePage(ctx context.Context, id *uint, doc models.PageDocument) (uint, models.PageDocument, error)
}

type DocumentService struct {
	repo  repository.LandingPageRepository
	cache *cache.Cache
}

func NewDocumentService(repo repository.LandingPageRepository, cacheService *cache.Cache) *DocumentService {
	initMetrics()
	return &DocumentService{repo: repo, cache: cacheService}
}

func (s *DocumentService) LoadPage(ctx context.Context, id uint) (doc models.PageDocument, err error) {
	defer observeDocument("load", time.Now(), &err)

	var cached models.PageDocument
	switch cacheErr := s.cache.GetCachedLandingPage(ctx, id, &cached); {
	case cacheErr == nil:
		return cached, nil
	case !errors.Is(cacheErr, cache.ErrMiss) && !errors.Is(cacheErr, cache.ErrDisabled):
		logger.Error(cacheErr, "Failed to read cached landing page", map[string]interface{}{"page_id": id})
	}

	page, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PageDocument{}, ErrPageNotFound
		}
		return models.PageDocument{}, fmt.Errorf("failed to load page %d: %w", id, err)
	}

	doc = page.Document.Clone()
	if err := s.cache.CacheLandingPage(ctx, id, doc); err != nil {
		logger.Error(err, "Failed to cache landing page", map[string]interface{}{"page_id": id})
	}
	return doc, nil
}

// SavePage creates the page when id is nil and overwrites it otherwise. The
// returned document is what the store now holds.
func (s *DocumentService) SavePage(ctx context.Context, id *uint, doc models.PageDocument) (savedID uint, saved models.PageDocument, err error) {
	defer observeDocument("save", time.Now(), &err)

	doc = doc.Clone()
	doc.Title = strings.TrimSpace(doc.Title)

	var page *models.LandingPage
	var excludeID uint
	if id != nil {
		page, err = s.repo.GetByID(ctx, *id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, models.PageDocument{}, ErrPageNotFound
			}
			return 0, models.PageDocument{}, fmt.Errorf("failed to load page %d: %w", *id, err)
		}
		excludeID = page.ID
	} else {
		page = &models.LandingPage{}
	}

	doc.Slug, err = s.resolveSlug(ctx, doc, excludeID)
	if err != nil {
		return 0, models.PageDocument{}, err
	}

	page.SyncFromDocument(doc)
	if id == nil {
		err = s.repo.Create(ctx, page)
	} else {
		err = s.repo.Update(ctx, page)
	}
	if err != nil {
		return 0, models.PageDocument{}, fmt.Errorf("failed to save page: %w", err)
	}

	if cacheErr := s.cache.InvalidateLandingPage(ctx, page.ID); cacheErr != nil {
		logger.Error(cacheErr, "Failed to invalidate landing page cache", map[string]interface{}{"page_id": page.ID})
	}

	return page.ID, page.Document.Clone(), nil
}

// resolveSlug keeps an explicit slug and derives one from the title
// otherwise. Derived slugs get a numeric suffix until they are free.
func (s *DocumentService) resolveSlug(ctx context.Context, doc models.PageDocument, excludeID uint) (string, error) {
	if explicit := utils.GenerateSlug(doc.Slug); explicit != "" {
		exists, err := s.repo.ExistsBySlugExceptID(ctx, explicit, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to check page slug: %w", err)
		}
		if exists {
			return "", fmt.Errorf("%w: %s", ErrSlugTaken, explicit)
		}
		return explicit, nil
	}

	base := utils.GenerateSlug(doc.Title)
	if base == "" {
		base = "page"
	}

	candidate := base
	for attempt := 2; attempt <= maxSlugAttempts+1; attempt++ {
		exists, err := s.repo.ExistsBySlugExceptID(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to check page slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}
	return "", fmt.Errorf("%w: %s", ErrSlugTaken, base)
}

func observeDocument(operation string, started time.Time, err *error) {
	documentOperationsTotal.WithLabelValues(operation, statusLabel(*err)).Inc()
	documentOperationSeconds.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
