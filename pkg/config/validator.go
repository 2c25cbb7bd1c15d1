package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tcdirect/direct-common/pkg/errors"
)

// Validator validates the decoded configuration resources.
// It ensures the pricing and overview data the services depend on is complete
// before the application starts serving.
type Validator struct {
	structValidator *validator.Validate
}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{
		structValidator: validator.New(),
	}
}

// Validate performs validation of the configuration.
// It checks for:
// - All five resources are present
// - Field-level rules declared on the domain types (non-negative fees, issue tracker URL)
// - A STUDIO overview category with at least one subtype
// - A studio-flagged contest fee with at least one subtype fee
//
// Returns an error describing the first validation failure encountered.
func (v *Validator) Validate(config *Config) error {
	resources := []struct {
		name  string
		value any
		isNil bool
	}{
		{OverviewFile, config.Overview, config.Overview == nil},
		{ContestFeesFile, config.ContestFees, config.ContestFees == nil},
		{FileTypesFile, config.FileTypes, config.FileTypes == nil},
		{CopilotFeesFile, config.CopilotFees, config.CopilotFees == nil},
		{IssueTrackingFile, config.IssueTrackingConfig, config.IssueTrackingConfig == nil},
	}

	for _, r := range resources {
		if r.isNil {
			return errors.ErrConfigInvalid(fmt.Sprintf("%s is not loaded", r.name))
		}
		if err := v.validateStruct(r.name, r.value); err != nil {
			return err
		}
	}

	if len(config.Overview.StudioOverviews()) == 0 {
		return errors.ErrConfigInvalid("no studio overview is defined in " + OverviewFile)
	}

	if len(config.ContestFees.StudioSubtypeContestFees()) == 0 {
		return errors.ErrConfigInvalid("no studio subtype contest fee is defined in " + ContestFeesFile)
	}

	return nil
}

// validateStruct applies the validate tags of a decoded resource.
func (v *Validator) validateStruct(resource string, value any) error {
	err := v.structValidator.Struct(value)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errors.ErrValidationFailed(
			fmt.Sprintf("%s: %s", resource, fe.Namespace()),
			fmt.Sprintf("value '%v' fails the '%s' rule", fe.Value(), fe.Tag()),
		)
	}

	return errors.NewDirectError(errors.ErrCodeValidationFailed, "validation failed for "+resource, err)
}
