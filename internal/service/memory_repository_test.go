package service

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"landing-builder-backend/internal/models"
)

type memoryLandingPageRepository struct {
	mu      sync.Mutex
	pages   map[uint]models.LandingPage
	nextID  uint
	saveErr error
	loads   int
}

func newMemoryLandingPageRepository() *memoryLandingPageRepository {
	return &memoryLandingPageRepository{pages: make(map[uint]models.LandingPage)}
}

func (r *memoryLandingPageRepository) Create(_ context.Context, page *models.LandingPage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.nextID++
	page.ID = r.nextID
	r.pages[page.ID] = copyPage(*page)
	return nil
}

func (r *memoryLandingPageRepository) Update(_ context.Context, page *models.LandingPage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	if _, ok := r.pages[page.ID]; !ok {
		return errors.New("update of unknown row")
	}
	r.pages[page.ID] = copyPage(*page)
	return nil
}

func (r *memoryLandingPageRepository) GetByID(_ context.Context, id uint) (*models.LandingPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
	page, ok := r.pages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := copyPage(page)
	return &found, nil
}

func (r *memoryLandingPageRepository) ExistsBySlugExceptID(_ context.Context, slug string, excludeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, page := range r.pages {
		if id != excludeID && page.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryLandingPageRepository) stored(id uint) (models.LandingPage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	page, ok := r.pages[id]
	return copyPage(page), ok
}

func copyPage(page models.LandingPage) models.LandingPage {
	page.Document = page.Document.Clone()
	return page
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

func (n *recordingNotifier) Notify(_ context.Context, notice Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) last() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notices) == 0 {
		return Notice{}, false
	}
	return n.notices[len(n.notices)-1], true
}
