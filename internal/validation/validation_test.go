package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{name: "valid password", password: "Password1!", wantOK: true},
		{name: "valid with other symbols", password: "Admin123$", wantOK: true},
		{name: "no digit, symbol or uppercase", password: "password", wantOK: false},
		{name: "no symbol", password: "Password1", wantOK: false},
		{name: "no uppercase", password: "password1!", wantOK: false},
		{name: "no lowercase", password: "PASSWORD1!", wantOK: false},
		{name: "too short", password: "Pa1!", wantOK: false},
		{name: "empty", password: "", wantOK: false},
		{name: "symbol outside allowed set", password: "Password1#", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePassword(tt.password)
			if tt.wantOK {
				assert.False(t, errs.HasErrors(), "expected %q to pass, got %v", tt.password, errs)
			} else {
				assert.True(t, errs.HasErrors(), "expected %q to fail", tt.password)
			}
		})
	}
}

func TestValidatePassword_TooLong(t *testing.T) {
	password := "Aa1!" + strings.Repeat("a", 60)

	errs := ValidatePassword(password)

	require.True(t, errs.HasErrors())
	assert.Equal(t, "password", errs[0].Field)
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		wantOK bool
	}{
		{name: "valid email", email: "admin@test.com", wantOK: true},
		{name: "valid with plus", email: "admin+tag@test.com", wantOK: true},
		{name: "missing at", email: "admin.test.com", wantOK: false},
		{name: "missing domain", email: "admin@", wantOK: false},
		{name: "empty", email: "", wantOK: false},
		{name: "too long", email: strings.Repeat("a", 250) + "@test.com", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateEmail(tt.email)
			if tt.wantOK {
				assert.False(t, errs.HasErrors(), "expected %q to pass, got %v", tt.email, errs)
			} else {
				assert.True(t, errs.HasErrors(), "expected %q to fail", tt.email)
			}
		})
	}
}

func TestValidateVehicle(t *testing.T) {
	tests := []struct {
		name       string
		vName      string
		brand      string
		year       int
		wantFields []string
	}{
		{name: "valid vehicle", vName: "Civic", brand: "Honda", year: 2020},
		{name: "empty name", vName: "", brand: "Honda", year: 2020, wantFields: []string{"name"}},
		{name: "whitespace name", vName: "   ", brand: "Honda", year: 2020, wantFields: []string{"name"}},
		{name: "name too short", vName: "C", brand: "Honda", year: 2020, wantFields: []string{"name"}},
		{name: "name too long", vName: strings.Repeat("a", 151), brand: "Honda", year: 2020, wantFields: []string{"name"}},
		{name: "brand too long", vName: "Civic", brand: strings.Repeat("b", 101), year: 2020, wantFields: []string{"brand"}},
		{name: "year below range", vName: "Civic", brand: "Honda", year: 1899, wantFields: []string{"year"}},
		{name: "year above range", vName: "Civic", brand: "Honda", year: 2101, wantFields: []string{"year"}},
		{name: "year boundaries valid low", vName: "Civic", brand: "Honda", year: 1900},
		{name: "year boundaries valid high", vName: "Civic", brand: "Honda", year: 2100},
		{
			name: "all fields invalid", vName: "", brand: "", year: 0,
			wantFields: []string{"name", "brand", "year"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateVehicle(tt.vName, tt.brand, tt.year)

			if len(tt.wantFields) == 0 {
				assert.False(t, errs.HasErrors(), "expected no errors, got %v", errs)
				return
			}

			require.Len(t, errs, len(tt.wantFields))
			for i, field := range tt.wantFields {
				assert.Equal(t, field, errs[i].Field)
			}
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	errs := ValidateRegistration("admin@test.com", "Password1!", "admin")
	assert.False(t, errs.HasErrors(), "got %v", errs)

	errs = ValidateRegistration("not-an-email", "password", "superuser")
	require.True(t, errs.HasErrors())

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "profile")
}

func TestValidateLogin(t *testing.T) {
	// Политика сложности на логине не применяется: пароль лишь обязателен
	errs := ValidateLogin("admin@test.com", "weak")
	assert.False(t, errs.HasErrors(), "got %v", errs)

	errs = ValidateLogin("admin@test.com", "")
	require.True(t, errs.HasErrors())
	assert.Equal(t, "password", errs[0].Field)
}
