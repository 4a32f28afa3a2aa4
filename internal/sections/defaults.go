package sections

import (
	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
)

// Project showcase record keys seeded into a new section.
const (
	DetailLocation = "location"
	DetailPrice    = "price"
	DetailSize     = "size"
	DetailStatus   = "status"

	ContactPhone   = "phone"
	ContactEmail   = "email"
	ContactAddress = "address"
)

// DefaultSection returns the default attributes of a new section of the given
// type. ID and Order are left for the collection manager to assign; unknown
// types keep their raw type string.
func DefaultSection(sectionType string) models.Section {
	desc := Lookup(sectionType)
	section := desc.Defaults()
	if desc.Kind == KindUnknown {
		section.Type = sectionType
	} else {
		section.Type = desc.Type
	}
	section.IsVisible = true
	return section
}

// DefaultHero returns the hero of a brand-new page.
func DefaultHero() models.Hero {
	return models.HeroFromSection(defaultHero())
}

func baseSection(title string) models.Section {
	return models.Section{
		IsVisible: true,
		Display: models.Display{
			Title:           title,
			BackgroundColor: constants.DefaultSectionBackground,
			TextColor:       constants.DefaultSectionTextColor,
			Padding:         constants.DefaultSectionPadding,
			Margin:          constants.DefaultSectionMargin,
			Layout: &models.Layout{
				Columns:   constants.DefaultLayoutColumns,
				Alignment: constants.DefaultLayoutAlignment,
				Spacing:   constants.DefaultLayoutSpacing,
			},
		},
	}
}

func defaultGeneric() models.Section {
	return baseSection("New Section")
}

func defaultHero() models.Section {
	section := baseSection("Welcome to Our Platform")
	section.Subtitle = "Discover amazing features and possibilities"
	section.CTAText = "Get started"
	section.CTALink = "/"
	return section
}

func defaultFeatures() models.Section {
	section := baseSection("Features")
	section.Subtitle = "Everything you need in one place"
	section.Features = []models.Feature{}
	return section
}

func defaultFAQ() models.Section {
	section := baseSection("Frequently Asked Questions")
	section.FAQItems = []models.FAQItem{}
	return section
}

func defaultTestimonials() models.Section {
	section := baseSection("What Our Clients Say")
	section.Testimonials = []models.Testimonial{}
	return section
}

func defaultProjectShowcase() models.Section {
	section := baseSection("Our Project")
	section.ProjectDetails = models.KeyValues{
		DetailLocation: "",
		DetailPrice:    "",
		DetailSize:     "",
		DetailStatus:   "",
	}
	section.ContactInfo = defaultContactInfo()
	return section
}

func defaultText() models.Section {
	section := baseSection("Text Block")
	section.Content = "Add your text here."
	return section
}

func defaultForm() models.Section {
	section := baseSection("Get in Touch")
	section.FormConfig = defaultFormConfig()
	return section
}

func defaultContact() models.Section {
	section := baseSection("Contact Us")
	section.ContactInfo = defaultContactInfo()
	section.FormConfig = defaultFormConfig()
	return section
}

func defaultCTA() models.Section {
	section := baseSection("Ready to get started?")
	section.CTAText = "Contact us"
	section.CTALink = "#contact"
	return section
}

func defaultCustom() models.Section {
	return baseSection("Custom Section")
}

func defaultContactInfo() models.KeyValues {
	return models.KeyValues{
		ContactPhone:   "",
		ContactEmail:   "",
		ContactAddress: "",
	}
}

func defaultFormConfig() *models.FormConfig {
	return &models.FormConfig{
		Fields:         []models.FormField{},
		SubmitText:     constants.DefaultFormSubmitText,
		SuccessMessage: constants.DefaultFormSuccessMessage,
	}
}
