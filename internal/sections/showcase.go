package sections

import (
	"html/template"
	"sort"
	"strings"

	"landing-builder-backend/internal/models"
)

func renderProjectShowcase(ctx RenderContext, prefix string, section models.Section) string {
	var sb strings.Builder
	sb.WriteString(`<div class="` + prefix + `__showcase">`)
	if image := strings.TrimSpace(section.Image); image != "" {
		sb.WriteString(`<img class="` + prefix + `__showcase-image" src="` + template.HTMLEscapeString(image) + `" alt="` + template.HTMLEscapeString(section.Title) + `" />`)
	}
	sb.WriteString(`<div class="` + prefix + `__showcase-body">`)
	writeHeading(&sb, prefix, section)
	if developer := strings.TrimSpace(section.Developer); developer != "" {
		sb.WriteString(`<p class="` + prefix + `__showcase-developer">` + template.HTMLEscapeString(developer) + `</p>`)
	}
	writeContent(&sb, ctx, prefix, section)
	writeRecord(&sb, prefix+"__showcase-details", section.ProjectDetails)
	writeRecord(&sb, prefix+"__showcase-contact", section.ContactInfo)
	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

// writeRecord renders the non-empty entries of a flat record as a definition
// list, keys sorted for stable output.
func writeRecord(sb *strings.Builder, class string, record models.KeyValues) {
	keys := make([]string, 0, len(record))
	for key, value := range record {
		if strings.TrimSpace(value) != "" {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return
	}
	sort.Strings(keys)

	sb.WriteString(`<dl class="` + class + `">`)
	for _, key := range keys {
		sb.WriteString(`<dt>` + template.HTMLEscapeString(key) + `</dt>`)
		sb.WriteString(`<dd>` + template.HTMLEscapeString(record[key]) + `</dd>`)
	}
	sb.WriteString(`</dl>`)
}
