package sections

import (
	"fmt"
	"html/template"
	"strings"

	"landing-builder-backend/internal/models"
)

func renderHero(ctx RenderContext, prefix string, section models.Section) string {
	heroClass := fmt.Sprintf("%s__hero", prefix)
	heroContentClass := fmt.Sprintf("%s__hero-content", prefix)
	heroTitleClass := fmt.Sprintf("%s__hero-title", prefix)
	heroSubtitleClass := fmt.Sprintf("%s__hero-subtitle", prefix)
	heroTextClass := fmt.Sprintf("%s__hero-text", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + heroClass + `">`)
	sb.WriteString(`<div class="` + heroContentClass + `">`)

	if title := strings.TrimSpace(section.Title); title != "" {
		sb.WriteString(`<h1 class="` + heroTitleClass + `">` + template.HTMLEscapeString(title) + `</h1>`)
	}
	if subtitle := strings.TrimSpace(section.Subtitle); subtitle != "" {
		sb.WriteString(`<p class="` + heroSubtitleClass + `">` + template.HTMLEscapeString(subtitle) + `</p>`)
	}
	if text := strings.TrimSpace(section.Content); text != "" {
		sb.WriteString(`<div class="` + heroTextClass + `">` + ctx.SanitizeHTML(text) + `</div>`)
	}
	writeButton(&sb, prefix, section)

	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderCTA(ctx RenderContext, prefix string, section models.Section) string {
	var sb strings.Builder
	sb.WriteString(`<div class="` + prefix + `__cta">`)
	writeHeading(&sb, prefix, section)
	writeContent(&sb, ctx, prefix, section)
	writeButton(&sb, prefix, section)
	sb.WriteString(`</div>`)
	return sb.String()
}
