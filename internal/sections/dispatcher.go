package sections

import (
	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
)

// RulesetFor returns the editing ruleset for a section type. Unknown types get
// the generic {title, subtitle, content} ruleset.
func RulesetFor(sectionType string) Ruleset {
	return Lookup(sectionType).Ruleset
}

// TabsFor lists the editor tabs offered for a section type, in display order.
func TabsFor(sectionType string) []Tab {
	desc := Lookup(sectionType)
	tabs := []Tab{TabContent, TabDesign, TabLayout}
	if desc.FormBuilder {
		tabs = append(tabs, TabFormBuilder)
	}
	if desc.DataEditor {
		tabs = append(tabs, TabData)
	}
	return tabs
}

// HasTab reports whether the editor of a section type offers tab.
func HasTab(sectionType string, tab Tab) bool {
	for _, candidate := range TabsFor(sectionType) {
		if candidate == tab {
			return true
		}
	}
	return false
}

// BuilderConfig assembles the palette and option lists served to the UI shell.
func BuilderConfig() models.PageBuilderConfig {
	palette := Palette()
	available := make([]models.SectionTypeConfig, 0, len(palette))
	for _, desc := range palette {
		tabs := TabsFor(desc.Type)
		tabNames := make([]string, len(tabs))
		for i, tab := range tabs {
			tabNames[i] = string(tab)
		}
		available = append(available, models.SectionTypeConfig{
			Type:        desc.Type,
			Name:        desc.Name,
			Description: desc.Description,
			Category:    desc.Category,
			Icon:        desc.Icon,
			Scalars:     desc.Ruleset.Scalars,
			Collections: desc.Ruleset.Collections,
			Tabs:        tabNames,
		})
	}

	fields := make([]models.FieldTypeConfig, 0, len(fieldTypes))
	for _, ft := range fieldTypes {
		fields = append(fields, models.FieldTypeConfig{
			Type:       ft.Type,
			Label:      ft.Label,
			HasOptions: ft.HasOptions,
		})
	}

	return models.PageBuilderConfig{
		AvailableSections: available,
		FieldTypes:        fields,
		DefaultPadding:    constants.DefaultSectionPadding,
		DefaultMargin:     constants.DefaultSectionMargin,
		PaddingOptions:    constants.SectionPaddingOptions(),
		MarginOptions:     constants.SectionMarginOptions(),
	}
}
