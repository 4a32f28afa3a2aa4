package models

// Attribute names as they appear on the wire. Rulesets and the bulk text
// editor address section attributes through these keys.
const (
	AttrTitle           = "title"
	AttrSubtitle        = "subtitle"
	AttrContent         = "content"
	AttrCTAText         = "ctaText"
	AttrCTALink         = "ctaLink"
	AttrDeveloper       = "developer"
	AttrBackgroundImage = "backgroundImage"
	AttrImage           = "image"

	AttrFeatures       = "features"
	AttrFAQItems       = "faqItems"
	AttrTestimonials   = "testimonials"
	AttrProjectDetails = "projectDetails"
	AttrContactInfo    = "contactInfo"
	AttrFormConfig     = "formConfig"
)

// HeroID is the fixed identity of the hero pseudo-section.
const HeroID = "hero"

// Layout groups the layout tab attributes shared by every section type.
type Layout struct {
	Columns   int    `json:"columns,omitempty"`
	Alignment string `json:"alignment,omitempty"`
	Spacing   string `json:"spacing,omitempty"`

	Extra Attributes `json:"-"`
	blank Attributes
}

type layoutAlias Layout

func (l *Layout) UnmarshalJSON(data []byte) error {
	var aux layoutAlias
	extra, blank, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	*l = Layout(aux)
	l.Extra = extra
	l.blank = blank
	return nil
}

func (l Layout) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(layoutAlias(l), l.Extra, l.blank)
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	if l == nil {
		return nil
	}
	cloned := *l
	cloned.Extra = l.Extra.Clone()
	return &cloned
}

// Display holds the generic display attributes shared by sections and the hero.
type Display struct {
	Title           string  `json:"title,omitempty"`
	Subtitle        string  `json:"subtitle,omitempty"`
	Content         string  `json:"content,omitempty"`
	CTAText         string  `json:"ctaText,omitempty"`
	CTALink         string  `json:"ctaLink,omitempty"`
	BackgroundImage string  `json:"backgroundImage,omitempty"`
	Image           string  `json:"image,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	TextColor       string  `json:"textColor,omitempty"`
	Padding         string  `json:"padding,omitempty"`
	Margin          string  `json:"margin,omitempty"`
	Layout          *Layout `json:"layout,omitempty"`
}

func (d Display) clone() Display {
	cloned := d
	cloned.Layout = d.Layout.Clone()
	return cloned
}

// Text returns the value of a scalar text attribute.
func (d Display) Text(attr string) (string, bool) {
	switch attr {
	case AttrTitle:
		return d.Title, true
	case AttrSubtitle:
		return d.Subtitle, true
	case AttrContent:
		return d.Content, true
	case AttrCTAText:
		return d.CTAText, true
	case AttrCTALink:
		return d.CTALink, true
	case AttrBackgroundImage:
		return d.BackgroundImage, true
	case AttrImage:
		return d.Image, true
	default:
		return "", false
	}
}

// KeyValues is a flat record such as projectDetails or contactInfo.
type KeyValues map[string]string

// Clone returns a copy of the record.
func (kv KeyValues) Clone() KeyValues {
	if kv == nil {
		return nil
	}
	cloned := make(KeyValues, len(kv))
	for key, value := range kv {
		cloned[key] = value
	}
	return cloned
}

// Section is one content block of a page. Type selects the ruleset used to
// edit it; attributes the builder does not model are kept in Extra.
type Section struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Order     int    `json:"order"`
	IsVisible bool   `json:"isVisible"`

	Display

	Developer string `json:"developer,omitempty"`

	Features       []Feature     `json:"features,omitzero"`
	FAQItems       []FAQItem     `json:"faqItems,omitzero"`
	Testimonials   []Testimonial `json:"testimonials,omitzero"`
	ProjectDetails KeyValues     `json:"projectDetails,omitzero"`
	ContactInfo    KeyValues     `json:"contactInfo,omitzero"`
	FormConfig     *FormConfig   `json:"formConfig,omitempty"`

	Extra Attributes `json:"-"`
	blank Attributes
}

type sectionAlias Section

func (s *Section) UnmarshalJSON(data []byte) error {
	aux := sectionAlias{IsVisible: true}
	extra, blank, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	*s = Section(aux)
	s.Extra = extra
	s.blank = blank
	return nil
}

func (s Section) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(sectionAlias(s), s.Extra, s.blank)
}

// Text returns the value of a scalar text attribute of the section.
func (s Section) Text(attr string) (string, bool) {
	if attr == AttrDeveloper {
		return s.Developer, true
	}
	return s.Display.Text(attr)
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	cloned := s
	cloned.Display = s.Display.clone()
	cloned.Features = cloneItems(s.Features)
	cloned.FAQItems = cloneItems(s.FAQItems)
	cloned.Testimonials = cloneItems(s.Testimonials)
	cloned.ProjectDetails = s.ProjectDetails.Clone()
	cloned.ContactInfo = s.ContactInfo.Clone()
	cloned.FormConfig = s.FormConfig.Clone()
	cloned.Extra = s.Extra.Clone()
	return cloned
}

// Hero is the distinguished, always-present pseudo-section at the top of the
// page. It has no id or order of its own.
type Hero struct {
	Display

	Extra Attributes `json:"-"`
	blank Attributes
}

type heroAlias Hero

func (h *Hero) UnmarshalJSON(data []byte) error {
	var aux heroAlias
	extra, blank, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	*h = Hero(aux)
	h.Extra = extra
	h.blank = blank
	return nil
}

func (h Hero) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(heroAlias(h), h.Extra, h.blank)
}

// Clone returns a deep copy of the hero.
func (h Hero) Clone() Hero {
	return Hero{Display: h.Display.clone(), Extra: h.Extra.Clone(), blank: h.blank}
}

// AsSection exposes the hero as a section value so it can be edited through
// the same ruleset machinery. The result is never a member of the sections list.
func (h Hero) AsSection() Section {
	return Section{
		ID:        HeroID,
		Type:      HeroID,
		IsVisible: true,
		Display:   h.Display.clone(),
		Extra:     h.Extra.Clone(),
		blank:     h.blank,
	}
}

// HeroFromSection copies the display attributes of s back into a hero value.
func HeroFromSection(s Section) Hero {
	return Hero{Display: s.Display.clone(), Extra: s.Extra.Clone(), blank: s.blank}
}

// Feature is an entry of a features section.
type Feature struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`

	Extra Attributes `json:"-"`
	blank Attributes
}

type featureAlias Feature

func (f *Feature) UnmarshalJSON(data []byte) error {
	var aux featureAlias
	extra, blank, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	*f = Feature(aux)
	f.Extra = extra
	f.blank = blank
	return nil
}

func (f Feature) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(featureAlias(f), f.Extra, f.blank)
}

func (f Feature) ItemID() string { return f.ID }

func (f Feature) Clone() Feature {
	f.Extra = f.Extra.Clone()
	return f
}

// FeaturePatch carries the attributes to merge into a feature.
type FeaturePatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

// Update returns a copy of f with the patch merged in.
func (f Feature) Update(p FeaturePatch) Feature {
	updated := f.Clone()
	assignString(&updated.Title, p.Title)
	assignString(&updated.Description, p.Description)
	assignString(&updated.Icon, p.Icon)
	return updated
}

// FAQItem is a question/answer pair.
type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`

	Extra Attributes `json:"-"`
	blank Attributes
}

type faqItemAlias FAQItem

func (q *FAQItem) UnmarshalJSON(data []byte) error {
	var aux faqItemAlias
	extra, blank, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	*q = FAQItem(aux)
	q.Extra = extra
	q.blank = blank
	return nil
}

func (q FAQItem) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(faqItemAlias(q), q.Extra, q.blank)
}

func (q FAQItem) ItemID() string { return q.ID }

func (q FAQItem) Clone() FAQItem {
	q.Extra = q.Extra.Clone()
	return q
}

// FAQItemPatch carries the attributes to merge into a FAQ entry.
type FAQItemPatch struct {
	Question *string `json:"question,omitempty"`
	Answer   *string `json:"answer,omitempty"`
}

// Update returns a copy of q with the patch merged in.
func (q FAQItem) Update(p FAQItemPatch) FAQItem {
	updated := q.Clone()
	assignString(&updated.Question, p.Question)
	assignString(&updated.Answer, p.Answer)
	return updated
}

// Testimonial is a customer quote. Rating is expected in 1..5 but is stored
// as given.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Avatar  string `json:"avatar"`

	Extra Attributes `json:"-"`
	blank Attributes
}

type testimonialAlias Testimonial

func (t *Testimonial) UnmarshalJSON(data []byte) error {
	var aux testimonialAlias
	extra, blank, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	*t = Testimonial(aux)
	t.Extra = extra
	t.blank = blank
	return nil
}

func (t Testimonial) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(testimonialAlias(t), t.Extra, t.blank)
}

func (t Testimonial) ItemID() string { return t.ID }

func (t Testimonial) Clone() Testimonial {
	t.Extra = t.Extra.Clone()
	return t
}

// TestimonialPatch carries the attributes to merge into a testimonial.
type TestimonialPatch struct {
	Name    *string `json:"name,omitempty"`
	Role    *string `json:"role,omitempty"`
	Content *string `json:"content,omitempty"`
	Rating  *int    `json:"rating,omitempty"`
	Avatar  *string `json:"avatar,omitempty"`
}

// Update returns a copy of t with the patch merged in.
func (t Testimonial) Update(p TestimonialPatch) Testimonial {
	updated := t.Clone()
	assignString(&updated.Name, p.Name)
	assignString(&updated.Role, p.Role)
	assignString(&updated.Content, p.Content)
	if p.Rating != nil {
		updated.Rating = *p.Rating
	}
	assignString(&updated.Avatar, p.Avatar)
	return updated
}

type cloneable[T any] interface {
	Clone() T
}

func cloneItems[T cloneable[T]](items []T) []T {
	if items == nil {
		return nil
	}
	cloned := make([]T, len(items))
	for i, item := range items {
		cloned[i] = item.Clone()
	}
	return cloned
}

func assignString(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}
