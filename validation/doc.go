// Package validation validates configuration structs with go-playground
// validator tags and reports failures as VALIDATION_ERROR app errors.
//
//	type DemoConfig struct {
//	    Count int `mapstructure:"count" validate:"gte=1,lte=1000"`
//	}
//	err := validation.Validate(cfg)
package validation
