package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/egresados/internal/pkg/helpers"
)

// Validation rule patterns
var (
	// Phone numbers: optional leading +, digits, spaces, dashes and parentheses
	PhonePattern = `^\+?[0-9 ()\-]{7,20}$`

	// Document numbers: alphanumerics and dashes
	DocumentPattern = `^[A-Za-z0-9\-]{4,20}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Phone    *regexp.Regexp
	Document *regexp.Regexp
}{
	Phone:    regexp.MustCompile(PhonePattern),
	Document: regexp.MustCompile(DocumentPattern),
}

var customRules = map[string]validator.Func{
	"date":     isDate,
	"pastdate": isPastDate,
	"phone":    isPhone,
	"document": isDocument,
	"password": isPassword,
}

// Register installs the custom tags and json field naming on a validator.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	for tag, fn := range customRules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validation: %w", tag, err)
		}
	}
	return nil
}

// RegisterWithGin installs the custom rules on gin's binding validator.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// Empty values pass; pair with required when the field is mandatory.
func isDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(helpers.DateLayout, value)
	return err == nil
}

func isPastDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	d, err := time.Parse(helpers.DateLayout, value)
	if err != nil {
		return false
	}
	return !d.After(time.Now())
}

func isPhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || CompiledPatterns.Phone.MatchString(value)
}

func isDocument(fl validator.FieldLevel) bool {
	return CompiledPatterns.Document.MatchString(fl.Field().String())
}

func isPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) < PasswordMinLength {
		return false
	}
	var letter, digit bool
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}

// Message renders a field error as a user-facing sentence.
func Message(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "required_if", "required_unless":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "date":
		return e.Field() + " must be a date in YYYY-MM-DD format"
	case "pastdate":
		return e.Field() + " cannot be in the future"
	case "phone":
		return e.Field() + " must be a valid phone number"
	case "document":
		return e.Field() + " must be a valid document number"
	case "password":
		return fmt.Sprintf("%s must have at least %d characters including letters and digits", e.Field(), PasswordMinLength)
	case "latitude", "longitude":
		return e.Field() + " must be a valid " + e.Tag()
	case "gtefield":
		return e.Field() + " must not be before " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
