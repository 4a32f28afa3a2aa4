package models

// OpenSessionRequest opens a builder session on an existing page or on a
// fresh document instantiated from a template.
type OpenSessionRequest struct {
	PageID   *uint  `json:"pageId"`
	Template string `json:"template" binding:"omitempty,slug"`
}

// AddSectionRequest represents a request to add a new section to a page.
type AddSectionRequest struct {
	Type string `json:"type" binding:"required"`
}

// MoveRequest moves a section or a field one slot up or down.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required,direction"`
}

// ReorderSectionsRequest rebuilds the section order from an id list.
type ReorderSectionsRequest struct {
	SectionIDs []string `json:"sectionIds" binding:"required"`
}

// OpenEditorRequest opens the section editor on a section or on the hero.
type OpenEditorRequest struct {
	SectionID string `json:"sectionId" binding:"required"`
}

// AddFieldRequest adds a field to a section's embedded form.
type AddFieldRequest struct {
	Type string `json:"type" binding:"required"`
}

// OptionRequest carries the new value of a choice option.
type OptionRequest struct {
	Value string `json:"value"`
}

// RecordEntryRequest sets one key of a projectDetails or contactInfo record.
type RecordEntryRequest struct {
	Key   string `json:"key" binding:"required,no_html"`
	Value string `json:"value"`
}

// BulkEditRequest starts an in-flight edit in the bulk text editor.
type BulkEditRequest struct {
	SectionID string `json:"sectionId" binding:"required"`
	Field     string `json:"field" binding:"required"`
}

// BulkDraftRequest replaces the draft value of the in-flight bulk edit.
type BulkDraftRequest struct {
	Value string `json:"value"`
}

// PageBuilderConfig contains configuration for the page builder UI.
type PageBuilderConfig struct {
	AvailableSections []SectionTypeConfig `json:"available_sections"`
	FieldTypes        []FieldTypeConfig   `json:"field_types"`
	DefaultPadding    string              `json:"default_padding"`
	DefaultMargin     string              `json:"default_margin"`
	PaddingOptions    []string            `json:"padding_options"`
	MarginOptions     []string            `json:"margin_options"`
}

// SectionTypeConfig describes a section type available in the builder.
type SectionTypeConfig struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Icon        string   `json:"icon"`
	Scalars     []string `json:"scalars"`
	Collections []string `json:"collections"`
	Tabs        []string `json:"tabs"`
}

// FieldTypeConfig describes a form field primitive type.
type FieldTypeConfig struct {
	Type       string `json:"type"`
	Label      string `json:"label"`
	HasOptions bool   `json:"has_options"`
}
