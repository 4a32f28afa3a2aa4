package repository

import (
	"context"

	"gorm.io/gorm"

	"landing-builder-backend/internal/models"
)

type LandingPageRepository interface {
	Create(ctx context.Context, page *models.LandingPage) error
	Update(ctx context.Context, page *models.LandingPage) error
	GetByID(ctx context.Context, id uint) (*models.LandingPage, error)
	ExistsBySlugExceptID(ctx context.Context, slug string, excludeID uint) (bool, error)
}

type landingPageRepository struct {
	db *gorm.DB
}

func NewLandingPageRepository(db *gorm.DB) LandingPageRepository {
	return &landingPageRepository{db: db}
}

func (r *landingPageRepository) Create(ctx context.Context, page *models.LandingPage) error {
	return r.db.WithContext(ctx).Create(page).Error
}

// Update overwrites the stored row. The last save wins.
func (r *landingPageRepository) Update(ctx context.Context, page *models.LandingPage) error {
	return r.db.WithContext(ctx).Save(page).Error
}

func (r *landingPageRepository) GetByID(ctx context.Context, id uint) (*models.LandingPage, error) {
	var page models.LandingPage
	if err := r.db.WithContext(ctx).First(&page, id).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *landingPageRepository) ExistsBySlugExceptID(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.LandingPage{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
