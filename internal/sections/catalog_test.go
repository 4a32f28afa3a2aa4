package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing-builder-backend/internal/models"
)

func TestEveryKindHasACompleteDescriptor(t *testing.T) {
	for _, kind := range append([]Kind{KindUnknown}, AllKinds()...) {
		desc := DescriptorOf(kind)
		assert.Equalf(t, kind, desc.Kind, "descriptor row %d is out of place", kind)
		assert.NotEmptyf(t, desc.Name, "kind %s has no name", kind)
		assert.NotEmptyf(t, desc.Description, "kind %s has no description", kind)
		assert.NotEmptyf(t, desc.Category, "kind %s has no category", kind)
		assert.NotEmptyf(t, desc.Icon, "kind %s has no icon", kind)
		assert.NotEmptyf(t, desc.Ruleset.Scalars, "kind %s has no scalars", kind)
		require.NotNilf(t, desc.Defaults, "kind %s has no default constructor", kind)
		require.NotNilf(t, desc.Render, "kind %s has no renderer", kind)
		if kind != KindUnknown {
			assert.NotEmptyf(t, desc.Type, "kind %d has no wire type", kind)
		}
	}
}

func TestKindOfRoundTripsTypeNames(t *testing.T) {
	for _, kind := range AllKinds() {
		assert.Equal(t, kind, KindOf(kind.String()))
	}
	assert.Equal(t, KindFAQ, KindOf("  FAQ "))
	assert.Equal(t, KindUnknown, KindOf("pricing-table"))
	assert.Equal(t, KindUnknown, KindOf(""))
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestRulesetFor(t *testing.T) {
	generic := []string{models.AttrTitle, models.AttrSubtitle, models.AttrContent}

	tests := []struct {
		sectionType string
		scalars     []string
		collections []string
	}{
		{TypeHero, []string{"title", "subtitle", "content", "ctaText", "ctaLink", "backgroundImage"}, nil},
		{TypeFeatures, []string{"title", "subtitle"}, []string{"features"}},
		{TypeFAQ, []string{"title", "subtitle"}, []string{"faqItems"}},
		{TypeTestimonials, []string{"title", "subtitle"}, []string{"testimonials"}},
		{TypeProjectShowcase, []string{"title", "subtitle", "content", "developer", "image"}, []string{"projectDetails", "contactInfo"}},
		{TypeText, generic, nil},
		{TypeForm, generic, nil},
		{TypeContact, generic, []string{"contactInfo"}},
		{TypeCTA, []string{"title", "subtitle", "content", "ctaText", "ctaLink"}, nil},
		{TypeCustom, generic, nil},
		{"unknown-widget", generic, nil},
		{"", generic, nil},
	}

	for _, tt := range tests {
		t.Run(tt.sectionType, func(t *testing.T) {
			ruleset := RulesetFor(tt.sectionType)
			assert.Equal(t, tt.scalars, ruleset.Scalars)
			if tt.collections == nil {
				assert.Empty(t, ruleset.Collections)
			} else {
				assert.Equal(t, tt.collections, ruleset.Collections)
			}
		})
	}
}

func TestRulesetForReturnsACopy(t *testing.T) {
	ruleset := RulesetFor(TypeFeatures)
	ruleset.Scalars[0] = "mutated"

	assert.Equal(t, models.AttrTitle, RulesetFor(TypeFeatures).Scalars[0])
}

func TestTabsFor(t *testing.T) {
	base := []Tab{TabContent, TabDesign, TabLayout}

	tests := []struct {
		sectionType string
		want        []Tab
	}{
		{TypeHero, base},
		{TypeText, base},
		{TypeCTA, base},
		{TypeCustom, base},
		{"whatever", base},
		{TypeForm, append(append([]Tab{}, base...), TabFormBuilder)},
		{TypeContact, append(append([]Tab{}, base...), TabFormBuilder)},
		{TypeFAQ, append(append([]Tab{}, base...), TabData)},
		{TypeFeatures, append(append([]Tab{}, base...), TabData)},
		{TypeTestimonials, append(append([]Tab{}, base...), TabData)},
		{TypeProjectShowcase, append(append([]Tab{}, base...), TabData)},
	}

	for _, tt := range tests {
		t.Run(tt.sectionType, func(t *testing.T) {
			assert.Equal(t, tt.want, TabsFor(tt.sectionType))
		})
	}
}

func TestPaletteExcludesHero(t *testing.T) {
	palette := Palette()
	assert.Len(t, palette, int(kindCount)-2)
	for _, desc := range palette {
		assert.NotEqual(t, TypeHero, desc.Type)
	}
}

func TestBuilderConfig(t *testing.T) {
	config := BuilderConfig()

	require.Len(t, config.AvailableSections, len(Palette()))
	assert.Len(t, config.FieldTypes, 9)
	assert.Equal(t, "4rem 0", config.DefaultPadding)
	assert.Contains(t, config.PaddingOptions, config.DefaultPadding)

	for _, section := range config.AvailableSections {
		if section.Type == TypeContact {
			assert.Contains(t, section.Tabs, string(TabFormBuilder))
			assert.Equal(t, []string{models.AttrContactInfo}, section.Collections)
		}
	}
}

func TestDefaultSection(t *testing.T) {
	faq := DefaultSection(TypeFAQ)
	assert.Equal(t, TypeFAQ, faq.Type)
	assert.True(t, faq.IsVisible)
	assert.NotNil(t, faq.FAQItems)
	assert.Empty(t, faq.FAQItems)
	require.NotNil(t, faq.Layout)
	assert.Equal(t, 3, faq.Layout.Columns)

	showcase := DefaultSection(TypeProjectShowcase)
	assert.Contains(t, showcase.ProjectDetails, DetailLocation)
	assert.Contains(t, showcase.ContactInfo, ContactEmail)

	contact := DefaultSection("Contact")
	assert.Equal(t, TypeContact, contact.Type)
	require.NotNil(t, contact.FormConfig)
	assert.NotNil(t, contact.FormConfig.Fields)

	custom := DefaultSection("pricing-table")
	assert.Equal(t, "pricing-table", custom.Type)
	assert.NotEmpty(t, custom.Title)
}

func TestDefaultSectionsAreIndependent(t *testing.T) {
	first := DefaultSection(TypeFeatures)
	first.Layout.Columns = 1
	first.Features = append(first.Features, models.Feature{ID: "f"})

	second := DefaultSection(TypeFeatures)
	assert.Equal(t, 3, second.Layout.Columns)
	assert.Empty(t, second.Features)
}

func TestDefaultHero(t *testing.T) {
	hero := DefaultHero()
	assert.Equal(t, "Welcome to Our Platform", hero.Title)
	assert.NotEmpty(t, hero.CTAText)
}
