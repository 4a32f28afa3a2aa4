package builder

import (
	"fmt"
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
)

// Form sub-builder. Every operation takes the fields of one form and returns a
// new slice; the input is never modified. Unknown ids and out-of-range option
// indexes are no-ops.

// NewField builds a field of the given type with a generated id and name, a
// default label and, for choice types, two placeholder options.
func NewField(fieldType string, ids IDAllocator) models.FormField {
	fieldType = strings.TrimSpace(strings.ToLower(fieldType))
	id := fmt.Sprintf("%s_%s", fieldType, token(ids))
	return models.FormField{
		ID:       id,
		Name:     id,
		Type:     fieldType,
		Label:    "New " + sections.FieldTypeLabel(fieldType),
		Required: false,
		Options:  seedOptions(fieldType),
	}
}

// AddField appends a new field and returns its id.
func AddField(fields []models.FormField, fieldType string, ids IDAllocator) ([]models.FormField, string) {
	updated := cloneFields(fields)
	field := NewField(fieldType, ids)
	for indexOfItem(updated, field.ID) >= 0 {
		field = NewField(fieldType, ids)
	}
	return append(updated, field), field.ID
}

// UpdateField shallow-merges patch into the field. Switching to a choice type
// seeds the placeholder options when the field has none.
func UpdateField(fields []models.FormField, id string, patch models.FormFieldPatch) []models.FormField {
	updated := cloneFields(fields)
	i := indexOfItem(updated, id)
	if i < 0 {
		return updated
	}
	field := updated[i].Update(patch)
	if patch.Type != nil && patch.Options == nil && len(field.Options) == 0 {
		field.Options = seedOptions(field.Type)
	}
	updated[i] = field
	return updated
}

func DeleteField(fields []models.FormField, id string) []models.FormField {
	return deleteAt(cloneFields(fields), id)
}

// MoveField swaps the field with its neighbour; array position is the order.
func MoveField(fields []models.FormField, id string, direction Direction) []models.FormField {
	return moveAt(cloneFields(fields), id, direction)
}

// AddOption appends "Option {n+1}" to the field's options.
func AddOption(fields []models.FormField, fieldID string) []models.FormField {
	return withOptions(fields, fieldID, func(options []string) []string {
		return append(options, optionLabel(len(options)+1))
	})
}

func UpdateOption(fields []models.FormField, fieldID string, index int, value string) []models.FormField {
	return withOptions(fields, fieldID, func(options []string) []string {
		if index >= 0 && index < len(options) {
			options[index] = value
		}
		return options
	})
}

// RemoveOption deletes the option at index. The last option may be removed.
func RemoveOption(fields []models.FormField, fieldID string, index int) []models.FormField {
	return withOptions(fields, fieldID, func(options []string) []string {
		if index < 0 || index >= len(options) {
			return options
		}
		return append(options[:index], options[index+1:]...)
	})
}

// WithForm applies fn to the fields of a form-builder section, creating the
// form configuration when it is missing. Sections without the form builder
// are returned unchanged.
func WithForm(section models.Section, fn func([]models.FormField) []models.FormField) models.Section {
	updated := section.Clone()
	if !sections.HasTab(updated.Type, sections.TabFormBuilder) {
		return updated
	}
	if updated.FormConfig == nil {
		updated.FormConfig = &models.FormConfig{
			SubmitText:     constants.DefaultFormSubmitText,
			SuccessMessage: constants.DefaultFormSuccessMessage,
		}
	}
	updated.FormConfig.Fields = fn(updated.FormConfig.Fields)
	if updated.FormConfig.Fields == nil {
		updated.FormConfig.Fields = []models.FormField{}
	}
	return updated
}

// FieldsOf returns a copy of the section's form fields.
func FieldsOf(section models.Section) []models.FormField {
	if section.FormConfig == nil {
		return []models.FormField{}
	}
	return cloneFields(section.FormConfig.Fields)
}

func withOptions(fields []models.FormField, fieldID string, fn func([]string) []string) []models.FormField {
	updated := cloneFields(fields)
	if i := indexOfItem(updated, fieldID); i >= 0 {
		options := fn(updated[i].Options)
		if options == nil {
			options = []string{}
		}
		updated[i].Options = options
	}
	return updated
}

func seedOptions(fieldType string) []string {
	if !sections.IsChoice(fieldType) {
		return []string{}
	}
	options := make([]string, constants.SeededChoiceOptions)
	for i := range options {
		options[i] = optionLabel(i + 1)
	}
	return options
}

func optionLabel(n int) string {
	return fmt.Sprintf(constants.OptionLabelFormat, n)
}

func cloneFields(fields []models.FormField) []models.FormField {
	cloned := make([]models.FormField, len(fields))
	for i, field := range fields {
		cloned[i] = field.Clone()
	}
	return cloned
}
