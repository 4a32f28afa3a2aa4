package builder

import (
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
)

// Editor edits a draft copy of one section, or of the hero, through the tabs
// its kind offers. Nothing reaches the document until Commit, and Commit only
// carries what changed since the editor was opened.
type Editor struct {
	target string
	base   models.Section
	draft  models.Section
	ids    IDAllocator
}

// OpenEditor starts an editor on the section with the given id, or on the
// hero when id is models.HeroID. It reports false for unknown ids.
func OpenEditor(doc models.PageDocument, id string, ids IDAllocator) (*Editor, bool) {
	if id == models.HeroID {
		hero := doc.Content.Hero.AsSection()
		return &Editor{target: models.HeroID, base: hero.Clone(), draft: hero, ids: ids}, true
	}
	section, ok := FindSection(doc, id)
	if !ok {
		return nil, false
	}
	return &Editor{target: id, base: section.Clone(), draft: section, ids: ids}, true
}

// SectionID is the id of the edited section, models.HeroID for the hero.
func (e *Editor) SectionID() string { return e.target }

// Draft returns a copy of the current draft.
func (e *Editor) Draft() models.Section { return e.draft.Clone() }

func (e *Editor) Ruleset() sections.Ruleset { return sections.RulesetFor(e.draft.Type) }

func (e *Editor) Tabs() []sections.Tab { return sections.TabsFor(e.draft.Type) }

// SetText sets a scalar attribute exposed by the content tab.
func (e *Editor) SetText(attr, value string) bool {
	if !e.Ruleset().HasScalar(attr) {
		return false
	}
	patch, ok := models.TextPatch(attr, value)
	if !ok {
		return false
	}
	e.draft = e.draft.Update(patch)
	return true
}

// ApplyPatch merges the part of patch the editor's tabs expose: ruleset
// scalars and collections, design and layout attributes, the form
// configuration for form-builder kinds, and unmodelled extras.
func (e *Editor) ApplyPatch(patch models.SectionPatch) {
	e.draft = e.draft.Update(e.filter(patch))
}

// Edit applies fn to the draft. Item and form helpers of this package fit fn.
func (e *Editor) Edit(fn func(models.Section) models.Section) {
	next := fn(e.draft.Clone())
	next.ID = e.draft.ID
	next.Order = e.draft.Order
	next.Type = e.draft.Type
	e.draft = next
}

// EditForm applies fn to the draft's form fields when the form-builder tab is
// offered.
func (e *Editor) EditForm(fn func([]models.FormField) []models.FormField) {
	e.draft = WithForm(e.draft, fn)
}

// AddField is a shortcut for the form-builder tab.
func (e *Editor) AddField(fieldType string) string {
	if !sections.HasTab(e.draft.Type, sections.TabFormBuilder) {
		return ""
	}
	var id string
	e.EditForm(func(fields []models.FormField) []models.FormField {
		fields, id = AddField(fields, fieldType, e.ids)
		return fields
	})
	return id
}

// Commit writes the attributes edited in the draft back to the document:
// through UpdateSection for a section, through UpdateHero for the hero.
// Attributes changed elsewhere while the editor was open are kept.
func (e *Editor) Commit(doc models.PageDocument) models.PageDocument {
	patch := models.DiffPatch(e.base, e.draft)
	if e.target == models.HeroID {
		return UpdateHero(doc, patch)
	}
	return UpdateSection(doc, e.target, patch)
}

func (e *Editor) filter(patch models.SectionPatch) models.SectionPatch {
	ruleset := e.Ruleset()
	scalar := func(attr string, value *string) *string {
		if ruleset.HasScalar(attr) {
			return value
		}
		return nil
	}

	filtered := models.SectionPatch{
		Title:           scalar(models.AttrTitle, patch.Title),
		Subtitle:        scalar(models.AttrSubtitle, patch.Subtitle),
		Content:         scalar(models.AttrContent, patch.Content),
		CTAText:         scalar(models.AttrCTAText, patch.CTAText),
		CTALink:         scalar(models.AttrCTALink, patch.CTALink),
		BackgroundImage: scalar(models.AttrBackgroundImage, patch.BackgroundImage),
		Image:           scalar(models.AttrImage, patch.Image),
		Developer:       scalar(models.AttrDeveloper, patch.Developer),

		BackgroundColor: patch.BackgroundColor,
		TextColor:       patch.TextColor,
		Padding:         patch.Padding,
		Margin:          patch.Margin,
		Layout:          patch.Layout,

		Extra: patch.Extra,
	}

	if ruleset.HasCollection(models.AttrFeatures) {
		filtered.Features = patch.Features
	}
	if ruleset.HasCollection(models.AttrFAQItems) {
		filtered.FAQItems = patch.FAQItems
	}
	if ruleset.HasCollection(models.AttrTestimonials) {
		filtered.Testimonials = patch.Testimonials
	}
	if ruleset.HasCollection(models.AttrProjectDetails) {
		filtered.ProjectDetails = patch.ProjectDetails
	}
	if ruleset.HasCollection(models.AttrContactInfo) {
		filtered.ContactInfo = patch.ContactInfo
	}
	if sections.HasTab(e.draft.Type, sections.TabFormBuilder) {
		filtered.FormConfig = patch.FormConfig
	}
	return filtered
}
