package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() map[string]string {
	return map[string]string{
		"firstName": "Alice",
		"lastName":  "Smith",
		"email":     "alice@x.com",
		"password":  "pass1",
		"phone":     "+1234567890",
	}
}

func TestRegistration_Valid(t *testing.T) {
	assert.Nil(t, Registration(validFields()))
}

func TestRegistration_MissingFields(t *testing.T) {
	for _, field := range []string{"firstName", "lastName", "email", "password", "phone"} {
		t.Run(field, func(t *testing.T) {
			fields := validFields()
			delete(fields, field)

			errs := Registration(fields)
			require.Len(t, errs, 1)
			assert.Equal(t, field, errs[0].Field)
			assert.NotEmpty(t, errs[0].Message)
		})
	}
}

func TestRegistration_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"numeric first name", "firstName", "Al1ce"},
		{"first name with spaces", "firstName", "Alice Ann"},
		{"numeric last name", "lastName", "Sm1th"},
		{"email without domain", "email", "alice@"},
		{"email without tld", "email", "alice@x"},
		{"email without at sign", "email", "alice.x.com"},
		{"short password", "password", "pas"},
		{"phone with letters", "phone", "+123abc"},
		{"phone with plus in middle", "phone", "12+34"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			fields[tt.field] = tt.value

			errs := Registration(fields)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestRegistration_AllChecksEvaluated(t *testing.T) {
	errs := Registration(map[string]string{})
	require.Len(t, errs, 5)

	// one entry per failing field, in field order
	order := []string{"firstName", "lastName", "email", "password", "phone"}
	for i, field := range order {
		assert.Equal(t, field, errs[i].Field)
	}
}

func TestRegistration_PhoneWithoutPlus(t *testing.T) {
	fields := validFields()
	fields["phone"] = "1234567890"
	assert.Nil(t, Registration(fields))
}
