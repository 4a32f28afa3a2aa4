package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
)

func TestFeatureItems(t *testing.T) {
	ids := &SequenceAllocator{Prefix: "i"}
	section := sections.DefaultSection(sections.TypeFeatures)

	section, first := AddFeature(section, models.Feature{Title: "Fast", Icon: "zap"}, ids)
	section, second := AddFeature(section, models.Feature{Title: "Safe"}, ids)
	require.Len(t, section.Features, 2)
	assert.Equal(t, "i-1", first)
	assert.Equal(t, "i-2", second)

	description := "Really fast"
	updated := UpdateFeature(section, first, models.FeaturePatch{Description: &description})
	assert.Equal(t, "Really fast", updated.Features[0].Description)
	assert.Equal(t, "zap", updated.Features[0].Icon)
	assert.Empty(t, section.Features[0].Description, "input must not change")

	moved := MoveFeature(section, second, Up)
	assert.Equal(t, second, moved.Features[0].ID)

	deleted := DeleteFeature(section, first)
	require.Len(t, deleted.Features, 1)
	assert.Equal(t, second, deleted.Features[0].ID)

	assert.Equal(t, section, DeleteFeature(section, "missing"))
	assert.Equal(t, section, UpdateFeature(section, "missing", models.FeaturePatch{Description: &description}))
}

func TestItemsRequireACollectionInTheRuleset(t *testing.T) {
	text := sections.DefaultSection(sections.TypeText)

	next, id := AddFAQItem(text, models.FAQItem{Question: "Q"}, &SequenceAllocator{})

	assert.Empty(t, id)
	assert.Empty(t, next.FAQItems)
}

func TestFAQItems(t *testing.T) {
	ids := &SequenceAllocator{}
	section := sections.DefaultSection(sections.TypeFAQ)

	section, a := AddFAQItem(section, models.FAQItem{Question: "Q1", Answer: "A1"}, ids)
	section, b := AddFAQItem(section, models.FAQItem{Question: "Q2", Answer: "A2"}, ids)

	answer := "Updated"
	section = UpdateFAQItem(section, b, models.FAQItemPatch{Answer: &answer})
	assert.Equal(t, "Updated", section.FAQItems[1].Answer)

	section = MoveFAQItem(section, a, Down)
	assert.Equal(t, []string{b, a}, []string{section.FAQItems[0].ID, section.FAQItems[1].ID})

	section = DeleteFAQItem(section, a)
	assert.Len(t, section.FAQItems, 1)
}

func TestTestimonialsKeepRatingAsGiven(t *testing.T) {
	section := sections.DefaultSection(sections.TypeTestimonials)

	section, id := AddTestimonial(section, models.Testimonial{Name: "Ann", Rating: 11}, &SequenceAllocator{})
	assert.Equal(t, 11, section.Testimonials[0].Rating)

	rating := 0
	section = UpdateTestimonial(section, id, models.TestimonialPatch{Rating: &rating})
	assert.Equal(t, 0, section.Testimonials[0].Rating)

	section = MoveTestimonial(section, id, Up)
	section = DeleteTestimonial(section, id)
	assert.Empty(t, section.Testimonials)
}

func TestRecordEntries(t *testing.T) {
	showcase := sections.DefaultSection(sections.TypeProjectShowcase)

	showcase = SetRecordEntry(showcase, models.AttrProjectDetails, "floors", "12")
	showcase = SetRecordEntry(showcase, models.AttrContactInfo, sections.ContactPhone, "+1 555")
	assert.Equal(t, "12", showcase.ProjectDetails["floors"])
	assert.Equal(t, "+1 555", showcase.ContactInfo[sections.ContactPhone])

	showcase = DeleteRecordEntry(showcase, models.AttrProjectDetails, sections.DetailPrice)
	assert.NotContains(t, showcase.ProjectDetails, sections.DetailPrice)

	blank := SetRecordEntry(showcase, models.AttrProjectDetails, "  ", "x")
	assert.Equal(t, showcase, blank)

	contact := sections.DefaultSection(sections.TypeContact)
	contact = SetRecordEntry(contact, models.AttrProjectDetails, "floors", "12")
	assert.Nil(t, contact.ProjectDetails, "contact sections have no project details")

	contact.ContactInfo = nil
	contact = SetRecordEntry(contact, models.AttrContactInfo, sections.ContactEmail, "a@b.c")
	assert.Equal(t, "a@b.c", contact.ContactInfo[sections.ContactEmail])
}
