package models

// FormConfig is the embedded form of a form or contact section.
type FormConfig struct {
	Fields         []FormField `json:"fields"`
	SubmitText     string      `json:"submitText,omitempty"`
	SuccessMessage string      `json:"successMessage,omitempty"`

	Extra Attributes `json:"-"`
	blank Attributes
}

type formConfigAlias FormConfig

func (f *FormConfig) UnmarshalJSON(data []byte) error {
	var aux formConfigAlias
	extra, blank, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	*f = FormConfig(aux)
	f.Extra = extra
	f.blank = blank
	return nil
}

func (f FormConfig) MarshalJSON() ([]byte, error) {
	if f.Fields == nil {
		f.Fields = []FormField{}
	}
	return encodeWithExtra(formConfigAlias(f), f.Extra, f.blank)
}

// Clone returns a deep copy of the form configuration.
func (f *FormConfig) Clone() *FormConfig {
	if f == nil {
		return nil
	}
	cloned := *f
	cloned.Fields = cloneItems(f.Fields)
	cloned.Extra = f.Extra.Clone()
	return &cloned
}

// FormField describes one input of an embedded form.
type FormField struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder"`
	Required    bool     `json:"required"`
	Options     []string `json:"options"`

	Extra Attributes `json:"-"`
	blank Attributes
}

type formFieldAlias FormField

func (f *FormField) UnmarshalJSON(data []byte) error {
	var aux formFieldAlias
	extra, blank, err := decodeWithExtra(data, &aux)
	if err != nil {
		return err
	}
	*f = FormField(aux)
	f.Extra = extra
	f.blank = blank
	return nil
}

func (f FormField) MarshalJSON() ([]byte, error) {
	if f.Options == nil {
		f.Options = []string{}
	}
	return encodeWithExtra(formFieldAlias(f), f.Extra, f.blank)
}

func (f FormField) ItemID() string { return f.ID }

// Clone returns a deep copy of the field.
func (f FormField) Clone() FormField {
	if f.Options != nil {
		f.Options = append([]string{}, f.Options...)
	}
	f.Extra = f.Extra.Clone()
	return f
}

// FormFieldPatch carries the attributes to merge into a form field.
type FormFieldPatch struct {
	Name        *string   `json:"name,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Label       *string   `json:"label,omitempty"`
	Placeholder *string   `json:"placeholder,omitempty"`
	Required    *bool     `json:"required,omitempty"`
	Options     *[]string `json:"options,omitempty"`
}

// Update returns a copy of f with the patch merged in. The id never changes.
func (f FormField) Update(p FormFieldPatch) FormField {
	updated := f.Clone()
	assignString(&updated.Name, p.Name)
	assignString(&updated.Type, p.Type)
	assignString(&updated.Label, p.Label)
	assignString(&updated.Placeholder, p.Placeholder)
	if p.Required != nil {
		updated.Required = *p.Required
	}
	if p.Options != nil {
		updated.Options = append([]string{}, (*p.Options)...)
	}
	return updated
}
