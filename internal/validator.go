package internal

import "github.com/go-playground/validator/v10"

// Validator is the shared validator instance used for configuration structs.
var Validator = validator.New(validator.WithRequiredStructEnabled())
