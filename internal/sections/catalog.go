package sections

import (
	"landing-builder-backend/internal/models"
)

// Tab is one facet of the section editor.
type Tab string

const (
	TabContent     Tab = "content"
	TabDesign      Tab = "design"
	TabLayout      Tab = "layout"
	TabFormBuilder Tab = "form-builder"
	TabData        Tab = "data"
)

// Ruleset lists the attributes a section type exposes for editing: scalar text
// attributes and nested collections (arrays and flat records).
type Ruleset struct {
	Scalars     []string `json:"scalars"`
	Collections []string `json:"collections"`
}

// HasScalar reports whether attr is an editable scalar of the ruleset.
func (r Ruleset) HasScalar(attr string) bool {
	return contains(r.Scalars, attr)
}

// HasCollection reports whether attr is an editable nested collection.
func (r Ruleset) HasCollection(attr string) bool {
	return contains(r.Collections, attr)
}

func (r Ruleset) clone() Ruleset {
	return Ruleset{
		Scalars:     append([]string{}, r.Scalars...),
		Collections: append([]string{}, r.Collections...),
	}
}

// Renderer produces the preview markup of one section. prefix namespaces the
// CSS classes of the fragment.
type Renderer func(ctx RenderContext, prefix string, section models.Section) string

// Descriptor is the single place a section kind is described: palette
// metadata, editing ruleset, default attributes and preview renderer.
type Descriptor struct {
	Kind        Kind
	Type        string
	Name        string
	Description string
	Category    string
	Icon        string

	Ruleset Ruleset
	// FormBuilder enables the embedded form sub-builder tab.
	FormBuilder bool
	// DataEditor enables the bulk editing view over nested collections.
	DataEditor bool

	Defaults func() models.Section
	Render   Renderer
}

var genericRuleset = Ruleset{
	Scalars: []string{models.AttrTitle, models.AttrSubtitle, models.AttrContent},
}

// descriptors is indexed by Kind. The typed declaration below fails to compile
// when a kind is added without a row.
var descriptors = [...]Descriptor{
	KindUnknown: {
		Kind:        KindUnknown,
		Type:        "",
		Name:        "Section",
		Description: "Generic section with a title, subtitle and body text.",
		Category:    "content",
		Icon:        "square",
		Ruleset:     genericRuleset,
		Defaults:    defaultGeneric,
		Render:      renderGeneric,
	},
	KindHero: {
		Kind:        KindHero,
		Type:        TypeHero,
		Name:        "Hero Banner",
		Description: "Headline banner with a call-to-action button.",
		Category:    "marketing",
		Icon:        "star",
		Ruleset: Ruleset{
			Scalars: []string{
				models.AttrTitle, models.AttrSubtitle, models.AttrContent,
				models.AttrCTAText, models.AttrCTALink, models.AttrBackgroundImage,
			},
		},
		Defaults: defaultHero,
		Render:   renderHero,
	},
	KindFeatures: {
		Kind:        KindFeatures,
		Type:        TypeFeatures,
		Name:        "Features",
		Description: "Grid of features with an icon, title and description.",
		Category:    "marketing",
		Icon:        "sparkles",
		Ruleset: Ruleset{
			Scalars:     []string{models.AttrTitle, models.AttrSubtitle},
			Collections: []string{models.AttrFeatures},
		},
		DataEditor: true,
		Defaults:   defaultFeatures,
		Render:     renderFeatures,
	},
	KindFAQ: {
		Kind:        KindFAQ,
		Type:        TypeFAQ,
		Name:        "FAQ",
		Description: "Frequently asked questions with answers.",
		Category:    "support",
		Icon:        "help-circle",
		Ruleset: Ruleset{
			Scalars:     []string{models.AttrTitle, models.AttrSubtitle},
			Collections: []string{models.AttrFAQItems},
		},
		DataEditor: true,
		Defaults:   defaultFAQ,
		Render:     renderFAQ,
	},
	KindTestimonials: {
		Kind:        KindTestimonials,
		Type:        TypeTestimonials,
		Name:        "Testimonials",
		Description: "Customer quotes with name, role and rating.",
		Category:    "social-proof",
		Icon:        "message-circle",
		Ruleset: Ruleset{
			Scalars:     []string{models.AttrTitle, models.AttrSubtitle},
			Collections: []string{models.AttrTestimonials},
		},
		DataEditor: true,
		Defaults:   defaultTestimonials,
		Render:     renderTestimonials,
	},
	KindProjectShowcase: {
		Kind:        KindProjectShowcase,
		Type:        TypeProjectShowcase,
		Name:        "Project Showcase",
		Description: "Project presentation with details and contact information.",
		Category:    "marketing",
		Icon:        "building",
		Ruleset: Ruleset{
			Scalars: []string{
				models.AttrTitle, models.AttrSubtitle, models.AttrContent,
				models.AttrDeveloper, models.AttrImage,
			},
			Collections: []string{models.AttrProjectDetails, models.AttrContactInfo},
		},
		DataEditor: true,
		Defaults:   defaultProjectShowcase,
		Render:     renderProjectShowcase,
	},
	KindText: {
		Kind:        KindText,
		Type:        TypeText,
		Name:        "Text",
		Description: "Free text block.",
		Category:    "content",
		Icon:        "type",
		Ruleset:     genericRuleset,
		Defaults:    defaultText,
		Render:      renderGeneric,
	},
	KindForm: {
		Kind:        KindForm,
		Type:        TypeForm,
		Name:        "Form",
		Description: "Custom lead form built from field definitions.",
		Category:    "interactive",
		Icon:        "clipboard",
		Ruleset:     genericRuleset,
		FormBuilder: true,
		Defaults:    defaultForm,
		Render:      renderForm,
	},
	KindContact: {
		Kind:        KindContact,
		Type:        TypeContact,
		Name:        "Contact",
		Description: "Contact details alongside an inquiry form.",
		Category:    "interactive",
		Icon:        "phone",
		Ruleset: Ruleset{
			Scalars:     []string{models.AttrTitle, models.AttrSubtitle, models.AttrContent},
			Collections: []string{models.AttrContactInfo},
		},
		FormBuilder: true,
		Defaults:    defaultContact,
		Render:      renderContact,
	},
	KindCTA: {
		Kind:        KindCTA,
		Type:        TypeCTA,
		Name:        "Call to Action",
		Description: "Short pitch with a single button.",
		Category:    "marketing",
		Icon:        "mouse-pointer",
		Ruleset: Ruleset{
			Scalars: []string{
				models.AttrTitle, models.AttrSubtitle, models.AttrContent,
				models.AttrCTAText, models.AttrCTALink,
			},
		},
		Defaults: defaultCTA,
		Render:   renderCTA,
	},
	KindCustom: {
		Kind:        KindCustom,
		Type:        TypeCustom,
		Name:        "Custom",
		Description: "Custom content block.",
		Category:    "content",
		Icon:        "code",
		Ruleset:     genericRuleset,
		Defaults:    defaultCustom,
		Render:      renderGeneric,
	},
}

var _ [kindCount]Descriptor = descriptors

// DescriptorOf returns the descriptor of kind k; invalid kinds get the
// generic descriptor.
func DescriptorOf(k Kind) Descriptor {
	if !k.Valid() {
		k = KindUnknown
	}
	desc := descriptors[k]
	desc.Ruleset = desc.Ruleset.clone()
	return desc
}

// Lookup returns the descriptor for a section type string.
func Lookup(sectionType string) Descriptor {
	return DescriptorOf(KindOf(sectionType))
}

// Palette lists the descriptors of every kind an operator can add, in
// declaration order. The hero is singular and never offered.
func Palette() []Descriptor {
	palette := make([]Descriptor, 0, kindCount)
	for _, kind := range AllKinds() {
		if kind == KindHero {
			continue
		}
		palette = append(palette, DescriptorOf(kind))
	}
	return palette
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
