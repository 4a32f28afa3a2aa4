package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"landing-builder-backend/internal/models"
)

func TestRenderHiddenSectionIsEmpty(t *testing.T) {
	section := DefaultSection(TypeText)
	section.IsVisible = false

	assert.Empty(t, string(Render(nil, section)))
}

func TestRenderEscapesTextAndSanitisesContent(t *testing.T) {
	section := DefaultSection(TypeText)
	section.ID = "s1"
	section.Title = `<b>Bold</b>`
	section.Content = `<p>Hello</p><script>alert(1)</script>`

	html := string(Render(DefaultRenderContext(), section))

	assert.Contains(t, html, `id="section-s1"`)
	assert.Contains(t, html, "&lt;b&gt;Bold&lt;/b&gt;")
	assert.Contains(t, html, "<p>Hello</p>")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "landing__section--text")
}

func TestRenderUnknownTypeUsesGenericRenderer(t *testing.T) {
	section := models.Section{ID: "x", Type: "pricing", IsVisible: true}
	section.Title = "Plans"

	html := string(Render(nil, section))
	assert.Contains(t, html, "landing__section--generic")
	assert.Contains(t, html, "Plans")
}

func TestRenderFeaturesAndTestimonials(t *testing.T) {
	features := DefaultSection(TypeFeatures)
	features.Features = []models.Feature{{ID: "f1", Title: "Fast", Description: "Very fast"}}
	assert.Contains(t, string(Render(nil, features)), "Fast")

	testimonials := DefaultSection(TypeTestimonials)
	testimonials.Testimonials = []models.Testimonial{{ID: "t1", Name: "Ann", Rating: 9}}
	html := string(Render(nil, testimonials))
	assert.Contains(t, html, "5 out of 5")
	assert.Contains(t, html, "Ann")
}

func TestRenderFormFields(t *testing.T) {
	section := DefaultSection(TypeForm)
	section.FormConfig.Fields = []models.FormField{
		{ID: "email_1", Name: "email_1", Type: FieldEmail, Label: "Email", Required: true},
		{ID: "select_1", Name: "select_1", Type: FieldSelect, Label: "Pick", Options: []string{"A", "B"}},
	}

	html := string(Render(nil, section))
	assert.Contains(t, html, `type="email"`)
	assert.Contains(t, html, `<option value="B">B</option>`)
	assert.Contains(t, html, " required")
}

func TestRenderPageOrdersVisibleSections(t *testing.T) {
	first := DefaultSection(TypeText)
	first.ID, first.Order, first.Title = "a", 1, "Second"
	second := DefaultSection(TypeText)
	second.ID, second.Order, second.Title = "b", 0, "First"
	hidden := DefaultSection(TypeText)
	hidden.ID, hidden.Order, hidden.IsVisible, hidden.Title = "c", 2, false, "Hidden"

	doc := models.PageDocument{Content: models.PageContent{
		Hero:     DefaultHero(),
		Sections: []models.Section{first, second, hidden},
	}}

	html := string(RenderPage(nil, doc))
	assert.Contains(t, html, "Welcome to Our Platform")
	assert.Less(t, strings.Index(html, "First"), strings.Index(html, "Second"))
	assert.NotContains(t, html, "Hidden")
}

func TestSortedForRenderIsStableAndCopies(t *testing.T) {
	input := []models.Section{
		{ID: "a", Order: 1},
		{ID: "b", Order: 0},
		{ID: "c", Order: 1},
	}

	sorted := SortedForRender(input)

	assert.Equal(t, []string{"b", "a", "c"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	assert.Equal(t, "a", input[0].ID)
}

func TestInlineStyleStripsDeclarationBreakers(t *testing.T) {
	style := inlineStyle(models.Display{BackgroundColor: "red;position:fixed", Padding: "1rem"})
	assert.Equal(t, "background-color:redposition:fixed;padding:1rem", style)
}
