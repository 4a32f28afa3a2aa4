package constants

const (
	// DefaultSectionPadding defines the default padding applied to newly created sections.
	DefaultSectionPadding = "4rem 0"
	// DefaultSectionMargin defines the default margin applied to newly created sections.
	DefaultSectionMargin = "0"

	// DefaultSectionBackground is the background colour of a freshly added section.
	DefaultSectionBackground = "#ffffff"
	// DefaultSectionTextColor is the text colour of a freshly added section.
	DefaultSectionTextColor = "#1f2937"

	// DefaultLayoutColumns is the column count used by grid-like sections.
	DefaultLayoutColumns = 3
	// DefaultLayoutAlignment is the content alignment of a freshly added section.
	DefaultLayoutAlignment = "center"
	// DefaultLayoutSpacing is the spacing preset of a freshly added section.
	DefaultLayoutSpacing = "normal"

	// DuplicateTitleSuffix is appended to the title of a duplicated section.
	DuplicateTitleSuffix = " (Copy)"

	// SeededChoiceOptions is how many placeholder options a new choice field gets.
	SeededChoiceOptions = 2
	// OptionLabelFormat formats the placeholder label of the n-th option (1-based).
	OptionLabelFormat = "Option %d"

	// DefaultFormSubmitText labels the submit button of a new embedded form.
	DefaultFormSubmitText = "Submit"
	// DefaultFormSuccessMessage is shown after a successful submission.
	DefaultFormSuccessMessage = "Thank you! We will get back to you soon."
)

var sectionPaddingOptions = []string{"0", "1rem 0", "2rem 0", "4rem 0", "6rem 0", "8rem 0"}
var sectionMarginOptions = []string{"0", "1rem 0", "2rem 0", "4rem 0"}
var layoutAlignmentOptions = []string{"left", "center", "right"}
var layoutSpacingOptions = []string{"compact", "normal", "relaxed"}

// SectionPaddingOptions returns the padding presets offered by the design tab.
// A copy of the slice is returned to prevent external mutation of the internal list.
func SectionPaddingOptions() []string {
	return append([]string(nil), sectionPaddingOptions...)
}

// SectionMarginOptions returns the margin presets offered by the design tab.
func SectionMarginOptions() []string {
	return append([]string(nil), sectionMarginOptions...)
}

// LayoutAlignmentOptions returns the alignments offered by the layout tab.
func LayoutAlignmentOptions() []string {
	return append([]string(nil), layoutAlignmentOptions...)
}

// LayoutSpacingOptions returns the spacing presets offered by the layout tab.
func LayoutSpacingOptions() []string {
	return append([]string(nil), layoutSpacingOptions...)
}
