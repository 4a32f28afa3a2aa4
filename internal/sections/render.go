package sections

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"landing-builder-backend/internal/models"
	"landing-builder-backend/pkg/validator"
)

// DefaultPrefix namespaces the CSS classes of rendered previews.
const DefaultPrefix = "landing"

// RenderContext exposes the capabilities section renderers need.
type RenderContext interface {
	// SanitizeHTML cleans potentially unsafe markup before rendering.
	SanitizeHTML(input string) string
}

type policyContext struct{}

func (policyContext) SanitizeHTML(input string) string {
	return validator.SanitizeHTML(input)
}

// DefaultRenderContext sanitises with the bluemonday UGC policy.
func DefaultRenderContext() RenderContext {
	return policyContext{}
}

// Render produces the preview fragment of one section. Hidden sections render
// empty.
func Render(ctx RenderContext, section models.Section) template.HTML {
	if !section.IsVisible {
		return ""
	}
	if ctx == nil {
		ctx = DefaultRenderContext()
	}
	desc := Lookup(section.Type)
	inner := desc.Render(ctx, DefaultPrefix, section)
	return template.HTML(wrapSection(DefaultPrefix, desc, section, inner))
}

// RenderHero produces the preview fragment of the hero banner.
func RenderHero(ctx RenderContext, hero models.Hero) template.HTML {
	return Render(ctx, hero.AsSection())
}

// RenderPage renders the hero followed by every visible section in render
// order.
func RenderPage(ctx RenderContext, doc models.PageDocument) template.HTML {
	var sb strings.Builder
	sb.WriteString(string(RenderHero(ctx, doc.Content.Hero)))
	for _, section := range SortedForRender(doc.Content.Sections) {
		sb.WriteString(string(Render(ctx, section)))
	}
	return template.HTML(sb.String())
}

// SortedForRender returns a copy of sections stably sorted by order. The
// input slice is left as is.
func SortedForRender(sections []models.Section) []models.Section {
	sorted := make([]models.Section, len(sections))
	for i, section := range sections {
		sorted[i] = section.Clone()
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

func wrapSection(prefix string, desc Descriptor, section models.Section, inner string) string {
	kind := desc.Type
	if kind == "" {
		kind = "generic"
	}

	var sb strings.Builder
	sb.WriteString(`<section`)
	if section.ID != "" {
		sb.WriteString(` id="section-` + template.HTMLEscapeString(section.ID) + `"`)
	}
	sb.WriteString(fmt.Sprintf(` class="%s__section %s__section--%s"`, prefix, prefix, kind))
	if style := inlineStyle(section.Display); style != "" {
		sb.WriteString(` style="` + template.HTMLEscapeString(style) + `"`)
	}
	if section.Layout != nil {
		if section.Layout.Alignment != "" {
			sb.WriteString(` data-align="` + template.HTMLEscapeString(section.Layout.Alignment) + `"`)
		}
		if section.Layout.Spacing != "" {
			sb.WriteString(` data-spacing="` + template.HTMLEscapeString(section.Layout.Spacing) + `"`)
		}
	}
	sb.WriteString(`>`)
	sb.WriteString(inner)
	sb.WriteString(`</section>`)
	return sb.String()
}

func inlineStyle(d models.Display) string {
	var parts []string
	add := func(property, value string) {
		if value = cssValue(value); value != "" {
			parts = append(parts, property+":"+value)
		}
	}
	add("background-color", d.BackgroundColor)
	add("color", d.TextColor)
	add("padding", d.Padding)
	add("margin", d.Margin)
	if d.BackgroundImage != "" {
		if url := cssValue(d.BackgroundImage); url != "" {
			parts = append(parts, "background-image:url('"+strings.ReplaceAll(url, "'", "")+"')")
		}
	}
	return strings.Join(parts, ";")
}

// cssValue drops characters that could end a declaration or the attribute.
func cssValue(value string) string {
	value = strings.TrimSpace(value)
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '"', '\\':
			return -1
		}
		return r
	}, value)
}

func columnsOf(section models.Section) int {
	if section.Layout == nil || section.Layout.Columns <= 0 {
		return 1
	}
	return section.Layout.Columns
}

func writeHeading(sb *strings.Builder, prefix string, section models.Section) {
	if title := strings.TrimSpace(section.Title); title != "" {
		sb.WriteString(`<h2 class="` + prefix + `__title">` + template.HTMLEscapeString(title) + `</h2>`)
	}
	if subtitle := strings.TrimSpace(section.Subtitle); subtitle != "" {
		sb.WriteString(`<p class="` + prefix + `__subtitle">` + template.HTMLEscapeString(subtitle) + `</p>`)
	}
}

func writeContent(sb *strings.Builder, ctx RenderContext, prefix string, section models.Section) {
	if content := strings.TrimSpace(section.Content); content != "" {
		sb.WriteString(`<div class="` + prefix + `__content">` + ctx.SanitizeHTML(content) + `</div>`)
	}
}

func writeButton(sb *strings.Builder, prefix string, section models.Section) {
	text := strings.TrimSpace(section.CTAText)
	if text == "" {
		return
	}
	link := strings.TrimSpace(section.CTALink)
	if link == "" {
		link = "#"
	}
	sb.WriteString(`<a class="` + prefix + `__button" href="` + template.HTMLEscapeString(link) + `">`)
	sb.WriteString(template.HTMLEscapeString(text))
	sb.WriteString(`</a>`)
}

func renderGeneric(ctx RenderContext, prefix string, section models.Section) string {
	var sb strings.Builder
	sb.WriteString(`<div class="` + prefix + `__container">`)
	writeHeading(&sb, prefix, section)
	writeContent(&sb, ctx, prefix, section)
	sb.WriteString(`</div>`)
	return sb.String()
}
