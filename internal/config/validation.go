package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance
var validate = validator.New()

// Validate validates the configuration using struct tags. Call it after
// Merge and ApplyDefaults so every field carries its effective value.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError turns the first struct-tag violation into a
// readable message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	verr := verrs[0]
	switch verr.Field() {
	case "MountTable":
		return fmt.Errorf("mount_table must be an absolute path, got %q", verr.Value())
	default:
		return fmt.Errorf("%s: failed %q validation", verr.Field(), verr.Tag())
	}
}
