// Package contact keeps a name/phone/email directory in a CSV file and mirrors
// it to JSON on request.
package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrContactNotFound = errors.New("no contact found with that name")
	ErrNoContactsFile  = errors.New("no contacts file found, please add contacts first")
	ErrNoContacts      = errors.New("no contacts to export")
	ErrNoJSONFile      = errors.New("no JSON file found")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrMalformedCSV    = errors.New("malformed contacts file")
	ErrRequiredFields  = errors.New("all fields (Name, Phone, Email) are required")
)

var validate = validator.New()

// Contact is one directory row. The JSON keys match the CSV header.
type Contact struct {
	Name  string `json:"Name" validate:"required"`
	Phone string `json:"Phone" validate:"required"`
	Email string `json:"Email" validate:"required"`
}

// Validate checks that no field is empty.
func (c Contact) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrRequiredFields, err)
	}
	return nil
}

// Is reports whether the contact's name equals name, ignoring case.
func (c Contact) Is(name string) bool {
	return strings.EqualFold(c.Name, strings.TrimSpace(name))
}

// Matches reports whether term occurs anywhere in the name, ignoring case.
func (c Contact) Matches(term string) bool {
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(strings.TrimSpace(term)))
}
