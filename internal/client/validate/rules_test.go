package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIBAN(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "saudi iban", input: "SA0380000000608010167519", valid: true},
		{name: "lowercase with spaces", input: "sa03 8000 0000 6080 1016 7519", valid: true},
		{name: "german iban", input: "DE89370400440532013000", valid: true},
		{name: "missing country prefix", input: "0380000000608010167519", valid: false},
		{name: "one-letter country", input: "S40380000000608010167519", valid: false},
		{name: "too short", input: "SA03", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Field(NormalizeIBAN(tc.input), IBANRules()...)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNormalizeIBAN(t *testing.T) {
	assert.Equal(t, "SA0380000000608010167519", NormalizeIBAN("sa03 8000 0000 6080 1016 7519"))
}

func TestCredentials(t *testing.T) {
	require.NoError(t, Credentials{Email: "a@b.com", Password: "secret1"}.Validate())
	require.Error(t, Credentials{Email: "not-an-email", Password: "secret1"}.Validate())
	require.Error(t, Credentials{Email: "a@b.com", Password: "short"}.Validate())
	require.Error(t, Credentials{}.Validate())
}

func TestOTP(t *testing.T) {
	assert.NoError(t, OTP("123456"))
	assert.Error(t, OTP("12345"))
	assert.Error(t, OTP("abcdef"))
	assert.Error(t, OTP(""))
}

func TestProfileForm(t *testing.T) {
	require.NoError(t, ProfileForm{Name: "A", Email: "a@b.com"}.Validate())
	require.NoError(t, ProfileForm{Name: "A", Email: "a@b.com", IBAN: "SA0380000000608010167519"}.Validate())
	require.Error(t, ProfileForm{Name: "A", Email: "a@b.com", IBAN: "bogus"}.Validate())
	require.Error(t, ProfileForm{Email: "a@b.com"}.Validate())
}
