package sections

import (
	"html/template"
	"strings"

	"landing-builder-backend/internal/models"
)

func renderFAQ(ctx RenderContext, prefix string, section models.Section) string {
	var sb strings.Builder
	sb.WriteString(`<div class="` + prefix + `__faq">`)
	writeHeading(&sb, prefix, section)
	for _, item := range section.FAQItems {
		question := strings.TrimSpace(item.Question)
		if question == "" {
			continue
		}
		sb.WriteString(`<details class="` + prefix + `__faq-item">`)
		sb.WriteString(`<summary class="` + prefix + `__faq-question">` + template.HTMLEscapeString(question) + `</summary>`)
		if answer := strings.TrimSpace(item.Answer); answer != "" {
			sb.WriteString(`<div class="` + prefix + `__faq-answer">` + ctx.SanitizeHTML(answer) + `</div>`)
		}
		sb.WriteString(`</details>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}
