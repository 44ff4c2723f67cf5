package firebird

import (
	"github.com/Alwanly/firebird-track/pkg/validator"
)

type fieldRule struct {
	tag    string
	reason string
}

var fieldRules = map[string]fieldRule{
	FieldFirstName:    {tag: "required,alphaspace", reason: "can only contain letters and spaces"},
	FieldLastName:     {tag: "required,alphaspace", reason: "can only contain letters and spaces"},
	FieldUsername:     {tag: "required,username", reason: "can only contain letters, numbers, and underscores"},
	FieldEmail:        {tag: "required,email", reason: "has an invalid email format"},
	FieldMobileNumber: {tag: "mobile", reason: "must be 15 digits"},
}

// HasFieldRule reports whether name is a well-known field with a format rule.
func HasFieldRule(name string) bool {
	_, ok := fieldRules[name]
	return ok
}

// ValidateField applies the format rule registered for a well-known field.
// Fields without a rule always pass.
func ValidateField(name, value string) error {
	rule, ok := fieldRules[name]
	if !ok {
		return nil
	}

	err := validator.ValidateVar(value, rule.tag)
	if err == nil {
		return nil
	}

	if validator.FailedTag(err) == "required" {
		return &FieldError{Field: name, Reason: "cannot be empty"}
	}
	return &FieldError{Field: name, Reason: rule.reason}
}
