package validator

import (
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
	strict    *bluemonday.Policy
	initOnce  sync.Once
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
	spaces      = regexp.MustCompile(`\s+`)
)

// Init builds the validator and sanitising policies and registers the custom
// validations on gin's binding engine. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		validate = validator.New()

		sanitizer = bluemonday.UGCPolicy()
		strict = bluemonday.StrictPolicy()

		registerCustomValidations(validate)

		if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerCustomValidations(engine)
		}
	})
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("slug", validateSlug)
	v.RegisterValidation("no_html", validateNoHTML)
	v.RegisterValidation("direction", validateDirection)
}

func Validate(s interface{}) error {
	Init()
	return validate.Struct(s)
}

// SanitizeHTML cleans user-authored markup with the UGC policy.
func SanitizeHTML(html string) string {
	Init()
	return sanitizer.Sanitize(html)
}

// SanitizeString strips every tag.
func SanitizeString(s string) string {
	Init()
	return strict.Sanitize(s)
}

func NormalizeSpaces(s string) string {
	return spaces.ReplaceAllString(strings.TrimSpace(s), " ")
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

func validateNoHTML(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return !strings.Contains(value, "<") && !strings.Contains(value, ">")
}

func validateDirection(fl validator.FieldLevel) bool {
	switch strings.TrimSpace(strings.ToLower(fl.Field().String())) {
	case "up", "down":
		return true
	default:
		return false
	}
}
