package models

import "time"

// LandingPage is the stored row for one page. The whole builder document is
// kept in a single jsonb column; the scalar columns mirror it for lookups.
type LandingPage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string       `gorm:"not null" json:"title"`
	Slug        string       `gorm:"index" json:"slug"`
	Template    string       `json:"template"`
	IsPublished bool         `gorm:"not null" json:"is_published"`
	IsActive    bool         `gorm:"not null" json:"is_active"`
	Document    PageDocument `gorm:"type:jsonb" json:"document"`
}

// SyncFromDocument copies the lookup columns out of the document.
func (p *LandingPage) SyncFromDocument(doc PageDocument) {
	p.Title = doc.Title
	p.Slug = doc.Slug
	p.Template = doc.Template
	p.IsPublished = doc.IsPublished
	p.IsActive = doc.IsActive
	p.Document = doc.Clone()
}
