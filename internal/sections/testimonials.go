package sections

import (
	"fmt"
	"html/template"
	"strings"

	"landing-builder-backend/internal/models"
)

const maxRating = 5

func renderTestimonials(ctx RenderContext, prefix string, section models.Section) string {
	var sb strings.Builder
	sb.WriteString(`<div class="` + prefix + `__testimonials">`)
	writeHeading(&sb, prefix, section)
	sb.WriteString(fmt.Sprintf(`<div class="%s__testimonials-list" data-columns="%d">`, prefix, columnsOf(section)))
	for _, item := range section.Testimonials {
		sb.WriteString(renderTestimonial(ctx, prefix, item))
	}
	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderTestimonial(ctx RenderContext, prefix string, item models.Testimonial) string {
	var sb strings.Builder
	sb.WriteString(`<figure class="` + prefix + `__testimonial">`)
	if avatar := strings.TrimSpace(item.Avatar); avatar != "" {
		sb.WriteString(`<img class="` + prefix + `__testimonial-avatar" src="` + template.HTMLEscapeString(avatar) + `" alt="` + template.HTMLEscapeString(item.Name) + `" />`)
	}
	if stars := ratingStars(item.Rating); stars != "" {
		sb.WriteString(fmt.Sprintf(`<div class="%s__testimonial-rating" aria-label="%d out of %d">%s</div>`, prefix, clampRating(item.Rating), maxRating, stars))
	}
	if content := strings.TrimSpace(item.Content); content != "" {
		sb.WriteString(`<blockquote class="` + prefix + `__testimonial-content">` + ctx.SanitizeHTML(content) + `</blockquote>`)
	}
	sb.WriteString(`<figcaption class="` + prefix + `__testimonial-author">`)
	sb.WriteString(template.HTMLEscapeString(item.Name))
	if role := strings.TrimSpace(item.Role); role != "" {
		sb.WriteString(`<span class="` + prefix + `__testimonial-role">` + template.HTMLEscapeString(role) + `</span>`)
	}
	sb.WriteString(`</figcaption>`)
	sb.WriteString(`</figure>`)
	return sb.String()
}

// clampRating bounds a stored rating for display only; the stored value is
// never corrected.
func clampRating(rating int) int {
	switch {
	case rating < 0:
		return 0
	case rating > maxRating:
		return maxRating
	default:
		return rating
	}
}

func ratingStars(rating int) string {
	filled := clampRating(rating)
	if filled == 0 {
		return ""
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", maxRating-filled)
}
