// Package validation validates configuration structs using struct tags.
//
//	type AuthConfig struct {
//	    Scheme string `mapstructure:"scheme" validate:"oneof=random uuid jwt"`
//	    Secret string `mapstructure:"secret" validate:"required_if=Scheme jwt"`
//	}
//	err := validation.Validate(cfg)
//
// Failures are returned as an INVALID_INPUT *errors.AppError whose details
// list every offending field by its mapstructure name.
package validation
