package sections

import "strings"

// Field primitive types supported by the embedded form builder.
const (
	FieldText     = "text"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldTextarea = "textarea"
	FieldSelect   = "select"
	FieldCheckbox = "checkbox"
	FieldRadio    = "radio"
	FieldNumber   = "number"
	FieldDate     = "date"
)

// FieldType is one row of the field schema catalog.
type FieldType struct {
	Type  string
	Label string
	// HasOptions marks choice types that carry an options list.
	HasOptions bool
}

var fieldTypes = []FieldType{
	{Type: FieldText, Label: "Text Input"},
	{Type: FieldEmail, Label: "Email"},
	{Type: FieldPhone, Label: "Phone Number"},
	{Type: FieldTextarea, Label: "Text Area"},
	{Type: FieldSelect, Label: "Dropdown", HasOptions: true},
	{Type: FieldCheckbox, Label: "Checkbox", HasOptions: true},
	{Type: FieldRadio, Label: "Radio Buttons", HasOptions: true},
	{Type: FieldNumber, Label: "Number"},
	{Type: FieldDate, Label: "Date"},
}

// FieldTypes returns the catalog in display order.
func FieldTypes() []FieldType {
	return append([]FieldType(nil), fieldTypes...)
}

// LookupFieldType finds a catalog row by type name.
func LookupFieldType(fieldType string) (FieldType, bool) {
	fieldType = strings.TrimSpace(strings.ToLower(fieldType))
	for _, ft := range fieldTypes {
		if ft.Type == fieldType {
			return ft, true
		}
	}
	return FieldType{}, false
}

// IsChoice reports whether fields of this type carry options.
func IsChoice(fieldType string) bool {
	ft, ok := LookupFieldType(fieldType)
	return ok && ft.HasOptions
}

// FieldTypeLabel returns the human-readable label of a field type. Types
// outside the catalog are labelled with their raw name.
func FieldTypeLabel(fieldType string) string {
	if ft, ok := LookupFieldType(fieldType); ok {
		return ft.Label
	}
	return fieldType
}
