package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var validate = validator.New()

// Person is the capability every role supplies: a validated identity and a
// fixed list of responsibilities.
type Person interface {
	ID() string
	Name() string
	Email() string
	Role() Role
	Responsibilities() []string
}

// Identity holds the validated id, name and email shared by every role.
// The zero value is not usable; build one with NewIdentity.
type Identity struct {
	id    string
	name  string
	email string
}

// NewIdentity validates all three fields and stores name title-cased and
// email lower-cased. Nothing is stored when any field is invalid.
func NewIdentity(id, name, email string) (Identity, error) {
	if err := validateID(id); err != nil {
		return Identity{}, err
	}
	var ident Identity
	if err := ident.SetName(name); err != nil {
		return Identity{}, err
	}
	if err := ident.SetEmail(email); err != nil {
		return Identity{}, err
	}
	ident.id = id
	return ident, nil
}

func (i *Identity) ID() string    { return i.id }
func (i *Identity) Name() string  { return i.name }
func (i *Identity) Email() string { return i.email }

// SetName validates and stores name in title case. Word boundaries follow
// Unicode word breaking, so an apostrophe does not start a new word:
// "o'neil" becomes "O'neil".
func (i *Identity) SetName(name string) error {
	if err := validate.Var(name, "required"); err != nil {
		return ErrInvalidName
	}
	i.name = cases.Title(language.Und).String(name)
	return nil
}

// SetEmail validates and stores email in lower case.
func (i *Identity) SetEmail(email string) error {
	if err := validate.Var(email, "contains=@"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	i.email = cases.Lower(language.Und).String(email)
	return nil
}

func validateID(id string) error {
	if err := validate.Var(id, "required"); err != nil {
		return ErrInvalidID
	}
	return nil
}
