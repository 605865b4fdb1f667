package validate

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Credentials is the login form.
type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, EmailRules()...),
		validation.Field(&c.Password, PasswordRules()...),
	)
}

// SignupForm is the first step of the signup wizard.
type SignupForm struct {
	Name     string
	Email    string
	Password string
}

func (f SignupForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required.Error("name is required")),
		validation.Field(&f.Email, EmailRules()...),
		validation.Field(&f.Password, PasswordRules()...),
	)
}

// ProfileForm is the editable part of the user profile. The IBAN is
// optional, but when present it must be valid.
type ProfileForm struct {
	Name  string
	Email string
	Phone string
	Bio   string
	IBAN  string
}

func (f ProfileForm) Validate() error {
	f.IBAN = NormalizeIBAN(f.IBAN)
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required.Error("name is required")),
		validation.Field(&f.Email, EmailRules()...),
		validation.Field(&f.IBAN, validation.When(f.IBAN != "", IBANRules()...)),
	)
}

// OTP validates a 6-digit verification code.
func OTP(code string) error {
	return Field(code, OTPRules()...)
}
