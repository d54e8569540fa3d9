package validator

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
	"github.com/medcharfeddine/nutricoach/internal/utils"
)

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() *AppValidator {
	v := validator.New()
	registerDomainTags(v)
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

func (av *AppValidator) ValidateHexColor(color string) error {
	return av.validate.Var(color, "required,hexcolor")
}

func (av *AppValidator) ValidateURL(rawURL string) error {
	return av.validate.Var(rawURL, "required,url")
}

// ValidatePasswordStrength checks if the password meets the strength requirements.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !containsUppercase(password) {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !containsLowercase(password) {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !containsNumber(password) {
		return fmt.Errorf("password must contain at least one number")
	}
	if !containsSpecial(password) {
		return fmt.Errorf("password must contain at least one special character")
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerDomainTags(v)
	}
}

func registerDomainTags(v *validator.Validate) {
	_ = v.RegisterValidation("date", layoutFL("2006-01-02"))
	_ = v.RegisterValidation("clock", layoutFL("15:04"))
	_ = v.RegisterValidation("timezone", timezoneFL)
	_ = v.RegisterValidation("notblank", notBlankFL)
	_ = v.RegisterValidation("containsuppercase", containsUppercaseFL)
	_ = v.RegisterValidation("containslowercase", containsLowercaseFL)
	_ = v.RegisterValidation("containsdigit", containsNumberFL)
	_ = v.RegisterValidation("containssymbol", containsSpecialFL)
}

// layoutFL accepts strings that parse with the given time layout.
func layoutFL(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(layout, fl.Field().String())
		return err == nil
	}
}

// timezoneFL accepts IANA zone names. Empty values are left to required/omitempty.
func timezoneFL(fl validator.FieldLevel) bool {
	_, err := utils.LoadTimezone(fl.Field().String())
	return err == nil
}

func notBlankFL(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// containsUppercase checks if the string contains at least one uppercase letter.
func containsUppercase(s string) bool {
	for _, char := range s {
		if unicode.IsUpper(char) {
			return true
		}
	}
	return false
}
func containsUppercaseFL(fl validator.FieldLevel) bool {
	return containsUppercase(fl.Field().String())
}

// containsLowercase checks if the string contains at least one lowercase letter.
func containsLowercase(s string) bool {
	for _, char := range s {
		if unicode.IsLower(char) {
			return true
		}
	}
	return false
}
func containsLowercaseFL(fl validator.FieldLevel) bool {
	return containsLowercase(fl.Field().String())
}

// containsNumber checks if the string contains at least one number.
func containsNumber(s string) bool {
	for _, char := range s {
		if unicode.IsNumber(char) {
			return true
		}
	}
	return false
}
func containsNumberFL(fl validator.FieldLevel) bool {
	return containsNumber(fl.Field().String())
}

// containsSpecial checks if the string contains at least one special character.
func containsSpecial(s string) bool {
	for _, char := range s {
		if strings.ContainsRune("!@#$%^&*()_+-=[]{};:'\\|,.<>/?", char) {
			return true
		}
	}
	return false
}
func containsSpecialFL(fl validator.FieldLevel) bool {
	return containsSpecial(fl.Field().String())
}
