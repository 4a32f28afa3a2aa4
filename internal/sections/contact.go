package sections

import (
	"fmt"
	"html/template"
	"strings"

	"landing-builder-backend/internal/models"
)

func renderContact(ctx RenderContext, prefix string, section models.Section) string {
	contactClass := fmt.Sprintf("%s__contact", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + contactClass + `">`)
	sb.WriteString(`<div class="` + contactClass + `-details">`)
	writeHeading(&sb, prefix, section)
	writeContent(&sb, ctx, prefix, section)
	writeRecord(&sb, contactClass+"-info", section.ContactInfo)
	sb.WriteString(`</div>`)
	writeForm(&sb, prefix, section.FormConfig)
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderForm(ctx RenderContext, prefix string, section models.Section) string {
	var sb strings.Builder
	sb.WriteString(`<div class="` + prefix + `__form-section">`)
	writeHeading(&sb, prefix, section)
	writeContent(&sb, ctx, prefix, section)
	writeForm(&sb, prefix, section.FormConfig)
	sb.WriteString(`</div>`)
	return sb.String()
}

func writeForm(sb *strings.Builder, prefix string, config *models.FormConfig) {
	if config == nil {
		return
	}
	formClass := fmt.Sprintf("%s__form", prefix)

	sb.WriteString(`<form class="` + formClass + `" onsubmit="return false">`)
	for _, field := range config.Fields {
		writeFormField(sb, formClass, field)
	}
	submit := strings.TrimSpace(config.SubmitText)
	if submit == "" {
		submit = "Submit"
	}
	sb.WriteString(`<button type="submit" class="` + formClass + `-submit">` + template.HTMLEscapeString(submit) + `</button>`)
	sb.WriteString(`</form>`)
}

func writeFormField(sb *strings.Builder, formClass string, field models.FormField) {
	name := template.HTMLEscapeString(field.Name)
	id := template.HTMLEscapeString(field.ID)
	placeholder := template.HTMLEscapeString(field.Placeholder)
	required := ""
	if field.Required {
		required = " required"
	}

	sb.WriteString(`<div class="` + formClass + `-field">`)
	if field.Type != FieldCheckbox || len(field.Options) > 0 {
		sb.WriteString(`<label class="` + formClass + `-label" for="` + id + `">` + template.HTMLEscapeString(field.Label) + `</label>`)
	}

	switch field.Type {
	case FieldTextarea:
		sb.WriteString(`<textarea id="` + id + `" name="` + name + `" placeholder="` + placeholder + `"` + required + `></textarea>`)
	case FieldSelect:
		sb.WriteString(`<select id="` + id + `" name="` + name + `"` + required + `>`)
		for _, option := range field.Options {
			escaped := template.HTMLEscapeString(option)
			sb.WriteString(`<option value="` + escaped + `">` + escaped + `</option>`)
		}
		sb.WriteString(`</select>`)
	case FieldRadio, FieldCheckbox:
		if len(field.Options) == 0 {
			sb.WriteString(`<label><input type="` + field.Type + `" id="` + id + `" name="` + name + `"` + required + ` /> ` + template.HTMLEscapeString(field.Label) + `</label>`)
			break
		}
		for _, option := range field.Options {
			escaped := template.HTMLEscapeString(option)
			sb.WriteString(`<label><input type="` + field.Type + `" name="` + name + `" value="` + escaped + `" /> ` + escaped + `</label>`)
		}
	default:
		sb.WriteString(`<input type="` + inputType(field.Type) + `" id="` + id + `" name="` + name + `" placeholder="` + placeholder + `"` + required + ` />`)
	}
	sb.WriteString(`</div>`)
}

func inputType(fieldType string) string {
	switch fieldType {
	case FieldEmail, FieldNumber, FieldDate:
		return fieldType
	case FieldPhone:
		return "tel"
	default:
		return "text"
	}
}
