package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordStrength(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		password string
		ok       bool
	}{
		{"Str0ng!pass", true},
		{"short1!", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSymbols123", false},
	}
	for _, tt := range tests {
		err := v.ValidatePasswordStrength(tt.password)
		if tt.ok {
			assert.NoError(t, err, tt.password)
		} else {
			assert.Error(t, err, tt.password)
		}
	}
}

func TestDomainTags(t *testing.T) {
	v := NewValidator()

	type booking struct {
		Date  string `validate:"date"`
		Start string `validate:"clock"`
		Goals string `validate:"notblank"`
		Zone  string `validate:"timezone"`
	}

	assert.NoError(t, v.validate.Struct(booking{Date: "2025-06-10", Start: "10:00", Goals: "eat better"}))
	assert.Error(t, v.validate.Struct(booking{Date: "2025-13-01", Start: "10:00", Goals: "x"}))
	assert.Error(t, v.validate.Struct(booking{Date: "2025-06-10", Start: "7pm", Goals: "x"}))
	assert.Error(t, v.validate.Struct(booking{Date: "2025-06-10", Start: "10:00", Goals: "   "}))
}

func TestValidateHexColorAndEmail(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateHexColor("#2E7D32"))
	assert.Error(t, v.ValidateHexColor("green"))
	assert.NoError(t, v.ValidateEmail("coach@example.com"))
	assert.Error(t, v.ValidateEmail("coach@"))
}

func TestTimezoneTag(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.validate.Var("Africa/Tunis", "timezone"))
	assert.NoError(t, v.validate.Var("", "timezone"))
	assert.Error(t, v.validate.Var("Mars/Olympus", "timezone"))
}
