package usecasecontract

type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
	ValidateHexColor(color string) error
	ValidateURL(rawURL string) error
}
