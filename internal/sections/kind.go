package sections

import "strings"

// Kind is the closed set of section types the builder knows how to edit.
// Any other type string is still a valid section; it dispatches as KindUnknown.
type Kind int

const (
	KindUnknown Kind = iota
	KindHero
	KindFeatures
	KindFAQ
	KindTestimonials
	KindProjectShowcase
	KindText
	KindForm
	KindContact
	KindCTA
	KindCustom

	kindCount
)

// Wire names of the known kinds.
const (
	TypeHero            = "hero"
	TypeFeatures        = "features"
	TypeFAQ             = "faq"
	TypeTestimonials    = "testimonials"
	TypeProjectShowcase = "project-showcase"
	TypeText            = "text"
	TypeForm            = "form"
	TypeContact         = "contact"
	TypeCTA             = "cta"
	TypeCustom          = "custom"
)

var kindsByType = func() map[string]Kind {
	index := make(map[string]Kind, kindCount)
	for kind := KindUnknown + 1; kind < kindCount; kind++ {
		index[descriptors[kind].Type] = kind
	}
	return index
}()

// KindOf maps a section type string to its kind. Matching ignores case and
// surrounding whitespace; unrecognised types map to KindUnknown.
func KindOf(sectionType string) Kind {
	if kind, ok := kindsByType[strings.TrimSpace(strings.ToLower(sectionType))]; ok {
		return kind
	}
	return KindUnknown
}

// AllKinds lists every known kind, KindUnknown excluded, in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for kind := KindUnknown + 1; kind < kindCount; kind++ {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool {
	return k >= KindUnknown && k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() || k == KindUnknown {
		return "unknown"
	}
	return descriptors[k].Type
}
