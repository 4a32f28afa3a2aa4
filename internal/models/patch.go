package models

import (
	"reflect"
	"strings"
)

// SectionPatch is a shallow merge of section attributes. Nil fields are left
// untouched. The patch has no id, order or type: those never change through
// an update.
type SectionPatch struct {
	Title           *string `json:"title,omitempty"`
	Subtitle        *string `json:"subtitle,omitempty"`
	Content         *string `json:"content,omitempty"`
	CTAText         *string `json:"ctaText,omitempty"`
	CTALink         *string `json:"ctaLink,omitempty"`
	BackgroundImage *string `json:"backgroundImage,omitempty"`
	Image           *string `json:"image,omitempty"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	TextColor       *string `json:"textColor,omitempty"`
	Padding         *string `json:"padding,omitempty"`
	Margin          *string `json:"margin,omitempty"`
	Layout          *Layout `json:"layout,omitempty"`

	IsVisible *bool   `json:"isVisible,omitempty"`
	Developer *string `json:"developer,omitempty"`

	Features       *[]Feature     `json:"features,omitempty"`
	FAQItems       *[]FAQItem     `json:"faqItems,omitempty"`
	Testimonials   *[]Testimonial `json:"testimonials,omitempty"`
	ProjectDetails *KeyValues     `json:"projectDetails,omitempty"`
	ContactInfo    *KeyValues     `json:"contactInfo,omitempty"`
	FormConfig     *FormConfig    `json:"formConfig,omitempty"`

	// Extra carries attributes the builder does not model; they are merged
	// into the section's own extras.
	Extra Attributes `json:"-"`
}

type sectionPatchAlias SectionPatch

// identityKeys can never be set through a patch.
var identityKeys = []string{"id", "order", "type"}

func (p *SectionPatch) UnmarshalJSON(data []byte) error {
	var aux sectionPatchAlias
	extra, _, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	for key := range extra {
		for _, identity := range identityKeys {
			if strings.EqualFold(key, identity) {
				delete(extra, key)
			}
		}
	}
	if len(extra) == 0 {
		extra = nil
	}
	*p = SectionPatch(aux)
	p.Extra = extra
	return nil
}

func (p SectionPatch) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(sectionPatchAlias(p), p.Extra, nil)
}

// IsEmpty reports whether the patch would change nothing.
func (p SectionPatch) IsEmpty() bool {
	return p.displayEmpty() && p.IsVisible == nil && p.Developer == nil &&
		p.Features == nil && p.FAQItems == nil && p.Testimonials == nil &&
		p.ProjectDetails == nil && p.ContactInfo == nil && p.FormConfig == nil && len(p.Extra) == 0
}

func (p SectionPatch) displayEmpty() bool {
	return p.Title == nil && p.Subtitle == nil && p.Content == nil && p.CTAText == nil &&
		p.CTALink == nil && p.BackgroundImage == nil && p.Image == nil &&
		p.BackgroundColor == nil && p.TextColor == nil && p.Padding == nil &&
		p.Margin == nil && p.Layout == nil
}

func (p SectionPatch) applyDisplay(d *Display) {
	assignString(&d.Title, p.Title)
	assignString(&d.Subtitle, p.Subtitle)
	assignString(&d.Content, p.Content)
	assignString(&d.CTAText, p.CTAText)
	assignString(&d.CTALink, p.CTALink)
	assignString(&d.BackgroundImage, p.BackgroundImage)
	assignString(&d.Image, p.Image)
	assignString(&d.BackgroundColor, p.BackgroundColor)
	assignString(&d.TextColor, p.TextColor)
	assignString(&d.Padding, p.Padding)
	assignString(&d.Margin, p.Margin)
	if p.Layout != nil {
		d.Layout = p.Layout.Clone()
	}
}

// Update returns a copy of s with the patch merged in. ID, Order and Type are
// preserved.
func (s Section) Update(p SectionPatch) Section {
	updated := s.Clone()
	p.applyDisplay(&updated.Display)

	if p.IsVisible != nil {
		updated.IsVisible = *p.IsVisible
	}
	assignString(&updated.Developer, p.Developer)
	if p.Features != nil {
		updated.Features = cloneItems(*p.Features)
	}
	if p.FAQItems != nil {
		updated.FAQItems = cloneItems(*p.FAQItems)
	}
	if p.Testimonials != nil {
		updated.Testimonials = cloneItems(*p.Testimonials)
	}
	if p.ProjectDetails != nil {
		updated.ProjectDetails = p.ProjectDetails.Clone()
	}
	if p.ContactInfo != nil {
		updated.ContactInfo = p.ContactInfo.Clone()
	}
	if p.FormConfig != nil {
		updated.FormConfig = p.FormConfig.Clone()
	}
	updated.Extra = updated.Extra.Merge(p.Extra)
	if len(updated.Extra) == 0 {
		updated.Extra = nil
	}

	updated.ID = s.ID
	updated.Order = s.Order
	updated.Type = s.Type
	return updated
}

// Update returns a copy of the hero with the display part of the patch merged
// in. Section-only attributes are ignored.
func (h Hero) Update(p SectionPatch) Hero {
	updated := h.Clone()
	p.applyDisplay(&updated.Display)
	updated.Extra = updated.Extra.Merge(p.Extra)
	if len(updated.Extra) == 0 {
		updated.Extra = nil
	}
	return updated
}

// DiffPatch builds the patch that carries every attribute edited between
// before and after. Visibility is left out: it only changes through its own
// toggle. Extras dropped from after are not removed.
func DiffPatch(before, after Section) SectionPatch {
	after = after.Clone()
	var p SectionPatch
	text := func(from, to *string) *string {
		if *from == *to {
			return nil
		}
		return to
	}

	p.Title = text(&before.Title, &after.Title)
	p.Subtitle = text(&before.Subtitle, &after.Subtitle)
	p.Content = text(&before.Content, &after.Content)
	p.CTAText = text(&before.CTAText, &after.CTAText)
	p.CTALink = text(&before.CTALink, &after.CTALink)
	p.BackgroundImage = text(&before.BackgroundImage, &after.BackgroundImage)
	p.Image = text(&before.Image, &after.Image)
	p.BackgroundColor = text(&before.BackgroundColor, &after.BackgroundColor)
	p.TextColor = text(&before.TextColor, &after.TextColor)
	p.Padding = text(&before.Padding, &after.Padding)
	p.Margin = text(&before.Margin, &after.Margin)
	p.Developer = text(&before.Developer, &after.Developer)

	if after.Layout != nil && !reflect.DeepEqual(before.Layout, after.Layout) {
		p.Layout = after.Layout
	}
	if !reflect.DeepEqual(before.Features, after.Features) {
		p.Features = &after.Features
	}
	if !reflect.DeepEqual(before.FAQItems, after.FAQItems) {
		p.FAQItems = &after.FAQItems
	}
	if !reflect.DeepEqual(before.Testimonials, after.Testimonials) {
		p.Testimonials = &after.Testimonials
	}
	if !reflect.DeepEqual(before.ProjectDetails, after.ProjectDetails) {
		p.ProjectDetails = &after.ProjectDetails
	}
	if !reflect.DeepEqual(before.ContactInfo, after.ContactInfo) {
		p.ContactInfo = &after.ContactInfo
	}
	if after.FormConfig != nil && !reflect.DeepEqual(before.FormConfig, after.FormConfig) {
		p.FormConfig = after.FormConfig
	}

	for key, value := range after.Extra {
		if previous, ok := before.Extra[key]; ok && string(previous) == string(value) {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(Attributes)
		}
		p.Extra[key] = value
	}
	return p
}

// TextPatch builds a patch that sets one scalar text attribute. It reports
// false for attributes that are not scalar text.
func TextPatch(attr, value string) (SectionPatch, bool) {
	var p SectionPatch
	switch attr {
	case AttrTitle:
		p.Title = &value
	case AttrSubtitle:
		p.Subtitle = &value
	case AttrContent:
		p.Content = &value
	case AttrCTAText:
		p.CTAText = &value
	case AttrCTALink:
		p.CTALink = &value
	case AttrBackgroundImage:
		p.BackgroundImage = &value
	case AttrImage:
		p.Image = &value
	case AttrDeveloper:
		p.Developer = &value
	default:
		return SectionPatch{}, false
	}
	return p, true
}

// DocumentPatch merges page-level metadata into a document.
type DocumentPatch struct {
	Title       *string  `json:"title,omitempty"`
	Slug        *string  `json:"slug,omitempty"`
	Description *string  `json:"description,omitempty"`
	Template    *string  `json:"template,omitempty"`
	Styling     *Styling `json:"styling,omitempty"`
	SEO         *SEO     `json:"seo,omitempty"`
	Footer      *Footer  `json:"footer,omitempty"`
	IsPublished *bool    `json:"isPublished,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// Apply returns a copy of d with the patch merged in. Hero and sections are
// never touched through this path.
func (p DocumentPatch) Apply(d PageDocument) PageDocument {
	updated := d.Clone()
	assignString(&updated.Title, p.Title)
	assignString(&updated.Slug, p.Slug)
	assignString(&updated.Description, p.Description)
	assignString(&updated.Template, p.Template)
	if p.Styling != nil {
		updated.Styling = p.Styling.Clone()
	}
	if p.SEO != nil {
		updated.SEO = p.SEO.Clone()
	}
	if p.Footer != nil {
		updated.Content.Footer = p.Footer.Clone()
	}
	if p.IsPublished != nil {
		updated.IsPublished = *p.IsPublished
	}
	if p.IsActive != nil {
		updated.IsActive = *p.IsActive
	}
	return updated
}
