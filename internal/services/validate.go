package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/schedax/schedax/internal/model"
)

// Shared validator instance; struct rules live on the model types.
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkValid runs struct validation and wraps failures in
// model.ErrValidation so the transport layer can map them to 400s. Nothing
// is written when this fails.
func checkValid(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	return nil
}
