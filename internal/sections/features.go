package sections

import (
	"fmt"
	"html/template"
	"strings"

	"landing-builder-backend/internal/models"
)

func renderFeatures(ctx RenderContext, prefix string, section models.Section) string {
	containerClass := fmt.Sprintf("%s__features", prefix)
	listClass := fmt.Sprintf("%s__features-list", prefix)

	var items []string
	for _, feature := range section.Features {
		if itemHTML := renderFeatureItem(ctx, prefix, feature); itemHTML != "" {
			items = append(items, itemHTML)
		}
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + containerClass + `">`)
	writeHeading(&sb, prefix, section)
	if len(items) > 0 {
		sb.WriteString(fmt.Sprintf(`<div class="%s" data-columns="%d">`, listClass, columnsOf(section)))
		for _, item := range items {
			sb.WriteString(item)
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderFeatureItem(ctx RenderContext, prefix string, feature models.Feature) string {
	title := strings.TrimSpace(feature.Title)
	text := strings.TrimSpace(feature.Description)
	icon := strings.TrimSpace(feature.Icon)

	if title == "" && text == "" {
		return ""
	}

	itemClass := fmt.Sprintf("%s__feature-item", prefix)
	iconClass := fmt.Sprintf("%s__feature-icon", prefix)
	titleClass := fmt.Sprintf("%s__feature-title", prefix)
	textClass := fmt.Sprintf("%s__feature-text", prefix)

	var sb strings.Builder
	sb.WriteString(`<article class="` + itemClass + `">`)
	if icon != "" {
		sb.WriteString(`<span class="` + iconClass + `" data-icon="` + template.HTMLEscapeString(icon) + `"></span>`)
	}
	if title != "" {
		sb.WriteString(`<h3 class="` + titleClass + `">` + template.HTMLEscapeString(title) + `</h3>`)
	}
	if text != "" {
		sb.WriteString(`<p class="` + textClass + `">` + ctx.SanitizeHTML(text) + `</p>`)
	}
	sb.WriteString(`</article>`)
	return sb.String()
}
