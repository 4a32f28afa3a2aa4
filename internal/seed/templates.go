package seed

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"landing-builder-backend/internal/builder"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
)

// BlankTemplate is used when a new page names no template.
const BlankTemplate = "blank"

// ErrTemplateNotFound is returned for template ids missing from the catalog.
var ErrTemplateNotFound = errors.New("template not found")

//go:embed data/templates.yaml
var templatesFS embed.FS

// Template is one entry of the page template catalog.
type Template struct {
	ID          string        `yaml:"id" json:"id"`
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description" json:"description"`
	Hero        *heroSeed     `yaml:"hero" json:"-"`
	Sections    []sectionSeed `yaml:"sections" json:"-"`
	Styling     stylingSeed   `yaml:"styling" json:"-"`
	SEO         seoSeed       `yaml:"seo" json:"-"`
	Footer      footerSeed    `yaml:"footer" json:"-"`
}

// SectionTypes lists the section types the template starts with.
func (t Template) SectionTypes() []string {
	types := make([]string, len(t.Sections))
	for i, section := range t.Sections {
		types[i] = section.Type
	}
	return types
}

type heroSeed struct {
	Title           string `yaml:"title"`
	Subtitle        string `yaml:"subtitle"`
	Content         string `yaml:"content"`
	CTAText         string `yaml:"ctaText"`
	CTALink         string `yaml:"ctaLink"`
	BackgroundImage string `yaml:"backgroundImage"`
}

type sectionSeed struct {
	Type           string            `yaml:"type"`
	Title          string            `yaml:"title"`
	Subtitle       string            `yaml:"subtitle"`
	Content        string            `yaml:"content"`
	CTAText        string            `yaml:"ctaText"`
	CTALink        string            `yaml:"ctaLink"`
	Developer      string            `yaml:"developer"`
	Image          string            `yaml:"image"`
	Features       []featureSeed     `yaml:"features"`
	FAQItems       []faqSeed         `yaml:"faqItems"`
	Testimonials   []testimonialSeed `yaml:"testimonials"`
	ProjectDetails map[string]string `yaml:"projectDetails"`
	ContactInfo    map[string]string `yaml:"contactInfo"`
	Fields         []fieldSeed       `yaml:"fields"`
}

type featureSeed struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type faqSeed struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type testimonialSeed struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Content string `yaml:"content"`
	Rating  int    `yaml:"rating"`
	Avatar  string `yaml:"avatar"`
}

type fieldSeed struct {
	Type        string   `yaml:"type"`
	Label       string   `yaml:"label"`
	Placeholder string   `yaml:"placeholder"`
	Required    bool     `yaml:"required"`
	Options     []string `yaml:"options"`
}

type stylingSeed struct {
	PrimaryColor   string `yaml:"primaryColor"`
	SecondaryColor string `yaml:"secondaryColor"`
	FontFamily     string `yaml:"fontFamily"`
	CustomCSS      string `yaml:"customCss"`
}

type seoSeed struct {
	MetaTitle       string `yaml:"metaTitle"`
	MetaDescription string `yaml:"metaDescription"`
	Keywords        string `yaml:"keywords"`
}

type footerSeed struct {
	CompanyName string `yaml:"companyName"`
	Description string `yaml:"description"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	Address     string `yaml:"address"`
	Copyright   string `yaml:"copyright"`
}

// Catalog is the set of page templates, in file order.
type Catalog struct {
	templates []Template
	byID      map[string]int
}

type catalogFile struct {
	Templates []Template `yaml:"templates"`
}

// ParseCatalog decodes a YAML template catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse template catalog: %w", err)
	}

	catalog := &Catalog{byID: make(map[string]int, len(file.Templates))}
	for _, tmpl := range file.Templates {
		tmpl.ID = strings.TrimSpace(strings.ToLower(tmpl.ID))
		if tmpl.ID == "" {
			return nil, errors.New("template without id")
		}
		if _, exists := catalog.byID[tmpl.ID]; exists {
			return nil, fmt.Errorf("duplicate template id %q", tmpl.ID)
		}
		catalog.byID[tmpl.ID] = len(catalog.templates)
		catalog.templates = append(catalog.templates, tmpl)
	}
	return catalog, nil
}

var (
	defaultCatalog     *Catalog
	defaultCatalogErr  error
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the embedded template catalog.
func DefaultCatalog() (*Catalog, error) {
	defaultCatalogOnce.Do(func() {
		data, err := templatesFS.ReadFile("data/templates.yaml")
		if err != nil {
			defaultCatalogErr = fmt.Errorf("failed to read embedded templates: %w", err)
			return
		}
		defaultCatalog, defaultCatalogErr = ParseCatalog(data)
	})
	return defaultCatalog, defaultCatalogErr
}

// Templates lists the catalog entries.
func (c *Catalog) Templates() []Template {
	return append([]Template(nil), c.templates...)
}

// Template finds a template by id.
func (c *Catalog) Template(id string) (Template, bool) {
	i, ok := c.byID[strings.TrimSpace(strings.ToLower(id))]
	if !ok {
		return Template{}, false
	}
	return c.templates[i], true
}

// NewDocument instantiates a brand-new page document from a template. An
// empty id selects the blank template. Sections are created through the
// collection manager so they carry catalog defaults, fresh ids and dense order.
func (c *Catalog) NewDocument(templateID string, ids builder.IDAllocator) (models.PageDocument, error) {
	if strings.TrimSpace(templateID) == "" {
		templateID = BlankTemplate
	}
	tmpl, ok := c.Template(templateID)
	if !ok {
		return models.PageDocument{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}

	doc := models.PageDocument{
		Title:       tmpl.Name,
		Description: tmpl.Description,
		Template:    tmpl.ID,
		IsActive:    true,
		Content: models.PageContent{
			Hero:     sections.DefaultHero(),
			Sections: []models.Section{},
			Footer: models.Footer{
				CompanyName: tmpl.Footer.CompanyName,
				Description: tmpl.Footer.Description,
				Email:       tmpl.Footer.Email,
				Phone:       tmpl.Footer.Phone,
				Address:     tmpl.Footer.Address,
				Copyright:   tmpl.Footer.Copyright,
			},
		},
		Styling: models.Styling{
			PrimaryColor:   tmpl.Styling.PrimaryColor,
			SecondaryColor: tmpl.Styling.SecondaryColor,
			FontFamily:     tmpl.Styling.FontFamily,
			CustomCSS:      tmpl.Styling.CustomCSS,
		},
		SEO: models.SEO{
			MetaTitle:       tmpl.SEO.MetaTitle,
			MetaDescription: tmpl.SEO.MetaDescription,
			Keywords:        tmpl.SEO.Keywords,
		},
	}

	if tmpl.Hero != nil {
		doc = builder.UpdateHero(doc, tmpl.Hero.patch())
	}

	for _, seed := range tmpl.Sections {
		var id string
		doc, id = builder.AddSection(doc, seed.Type, ids)
		if id == "" {
			continue
		}
		doc = builder.UpdateSection(doc, id, seed.patch())
		doc, _ = builder.WithSection(doc, id, func(section models.Section) models.Section {
			return seed.populate(section, ids)
		})
	}

	return doc, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func (h heroSeed) patch() models.SectionPatch {
	return models.SectionPatch{
		Title:           optional(h.Title),
		Subtitle:        optional(h.Subtitle),
		Content:         optional(h.Content),
		CTAText:         optional(h.CTAText),
		CTALink:         optional(h.CTALink),
		BackgroundImage: optional(h.BackgroundImage),
	}
}

func (s sectionSeed) patch() models.SectionPatch {
	patch := models.SectionPatch{
		Title:     optional(s.Title),
		Subtitle:  optional(s.Subtitle),
		Content:   optional(s.Content),
		CTAText:   optional(s.CTAText),
		CTALink:   optional(s.CTALink),
		Developer: optional(s.Developer),
		Image:     optional(s.Image),
	}
	if s.ProjectDetails != nil {
		details := models.KeyValues(s.ProjectDetails)
		patch.ProjectDetails = &details
	}
	if s.ContactInfo != nil {
		contact := models.KeyValues(s.ContactInfo)
		patch.ContactInfo = &contact
	}
	return patch
}

// populate adds the seeded nested items through the item and form builders.
func (s sectionSeed) populate(section models.Section, ids builder.IDAllocator) models.Section {
	for _, f := range s.Features {
		section, _ = builder.AddFeature(section, models.Feature{Title: f.Title, Description: f.Description, Icon: f.Icon}, ids)
	}
	for _, q := range s.FAQItems {
		section, _ = builder.AddFAQItem(section, models.FAQItem{Question: q.Question, Answer: q.Answer}, ids)
	}
	for _, t := range s.Testimonials {
		section, _ = builder.AddTestimonial(section, models.Testimonial{
			Name: t.Name, Role: t.Role, Content: t.Content, Rating: t.Rating, Avatar: t.Avatar,
		}, ids)
	}
	if len(s.Fields) == 0 {
		return section
	}
	return builder.WithForm(section, func(fields []models.FormField) []models.FormField {
		for _, seed := range s.Fields {
			var id string
			fields, id = builder.AddField(fields, seed.Type, ids)
			patch := models.FormFieldPatch{
				Label:       optional(seed.Label),
				Placeholder: optional(seed.Placeholder),
				Required:    &seed.Required,
			}
			if seed.Options != nil {
				options := append([]string{}, seed.Options...)
				patch.Options = &options
			}
			fields = builder.UpdateField(fields, id, patch)
		}
		return fields
	})
}
