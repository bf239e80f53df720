// Package identity guards the store-identity boundary: path identifiers are
// checked for syntactic validity before any database call is made.
package identity

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrMalformedID = errors.New("malformed document identifier")

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Parse checks that id is a syntactically valid ObjectID and converts it.
// Malformed identifiers fail fast and locally; no store round trip happens.
func (v *Validator) Parse(id string) (primitive.ObjectID, error) {
	if err := v.validate.Var(id, "required,mongodb"); err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	return oid, nil
}

func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedID)
}
