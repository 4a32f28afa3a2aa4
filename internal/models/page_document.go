package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// PageDocument is the unit of load and save: the hero, the ordered sections,
// the footer and page-level styling and SEO metadata.
type PageDocument struct {
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Template    string      `json:"template"`
	Content     PageContent `json:"content"`
	Styling     Styling     `json:"styling"`
	SEO         SEO         `json:"seo"`
	IsPublished bool        `json:"isPublished"`
	IsActive    bool        `json:"isActive"`

	Extra Attributes `json:"-"`
	blank Attributes
}

type pageDocumentAlias PageDocument

func (d *PageDocument) UnmarshalJSON(data []byte) error {
	var aux pageDocumentAlias
	extra, blank, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	*d = PageDocument(aux)
	d.Extra = extra
	d.blank = blank
	return nil
}

func (d PageDocument) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(pageDocumentAlias(d), d.Extra, d.blank)
}

// Scan implements sql.Scanner so the document can live in a jsonb column.
func (d *PageDocument) Scan(value interface{}) error {
	if value == nil {
		*d = PageDocument{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("failed to scan PageDocument")
	}

	return json.Unmarshal(data, d)
}

// Value implements driver.Valuer.
func (d PageDocument) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Clone returns a deep copy of the document.
func (d PageDocument) Clone() PageDocument {
	cloned := d
	cloned.Content = d.Content.Clone()
	cloned.Styling = d.Styling.Clone()
	cloned.SEO = d.SEO.Clone()
	cloned.Extra = d.Extra.Clone()
	return cloned
}

// PageContent holds the structural part of the page.
type PageContent struct {
	Hero     Hero      `json:"hero"`
	Sections []Section `json:"sections"`
	Footer   Footer    `json:"footer"`

	Extra Attributes `json:"-"`
	blank Attributes
}

type pageContentAlias PageContent

func (c *PageContent) UnmarshalJSON(data []byte) error {
	var aux pageContentAlias
	extra, blank, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	*c = PageContent(aux)
	c.Extra = extra
	c.blank = blank
	return nil
}

func (c PageContent) MarshalJSON() ([]byte, error) {
	if c.Sections == nil {
		c.Sections = []Section{}
	}
	return encodeWithExtra(pageContentAlias(c), c.Extra, c.blank)
}

// Clone returns a deep copy of the content block.
func (c PageContent) Clone() PageContent {
	cloned := PageContent{
		Hero:   c.Hero.Clone(),
		Footer: c.Footer.Clone(),
		Extra:  c.Extra.Clone(),
		blank:  c.blank,
	}
	if c.Sections != nil {
		cloned.Sections = make([]Section, len(c.Sections))
		for i, section := range c.Sections {
			cloned.Sections[i] = section.Clone()
		}
	}
	return cloned
}

// Footer is the page footer block.
type Footer struct {
	CompanyName string       `json:"companyName,omitempty"`
	Description string       `json:"description,omitempty"`
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Address     string       `json:"address,omitempty"`
	Copyright   string       `json:"copyright,omitempty"`
	Links       []FooterLink `json:"links,omitzero"`
	SocialLinks []SocialLink `json:"socialLinks,omitzero"`

	Extra Attributes `json:"-"`
	blank Attributes
}

type footerAlias Footer

func (f *Footer) UnmarshalJSON(data []byte) error {
	var aux footerAlias
	extra, blank, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	*f = Footer(aux)
	f.Extra = extra
	f.blank = blank
	return nil
}

func (f Footer) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(footerAlias(f), f.Extra, f.blank)
}

// Clone returns a deep copy of the footer.
func (f Footer) Clone() Footer {
	cloned := f
	if f.Links != nil {
		cloned.Links = append([]FooterLink{}, f.Links...)
	}
	if f.SocialLinks != nil {
		cloned.SocialLinks = append([]SocialLink{}, f.SocialLinks...)
	}
	cloned.Extra = f.Extra.Clone()
	return cloned
}

type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Styling is page-level theming.
type Styling struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`
	CustomCSS      string `json:"customCss"`

	Extra Attributes `json:"-"`
	blank Attributes
}

type stylingAlias Styling

func (s *Styling) UnmarshalJSON(data []byte) error {
	var aux stylingAlias
	extra, blank, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	*s = Styling(aux)
	s.Extra = extra
	s.blank = blank
	return nil
}

func (s Styling) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(stylingAlias(s), s.Extra, s.blank)
}

func (s Styling) Clone() Styling {
	s.Extra = s.Extra.Clone()
	return s
}

// SEO is page-level search metadata. Keywords is stored as entered.
type SEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`

	Extra Attributes `json:"-"`
	blank Attributes
}

type seoAlias SEO

func (s *SEO) UnmarshalJSON(data []byte) error {
	var aux seoAlias
	extra, blank, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	*s = SEO(aux)
	s.Extra = extra
	s.blank = blank
	return nil
}

func (s SEO) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(seoAlias(s), s.Extra, s.blank)
}

func (s SEO) Clone() SEO {
	s.Extra = s.Extra.Clone()
	return s
}
