package bootstrap

import (
	"github.com/kbukum/seqkit/config"
)

// Config is the constraint for command configuration types. Any struct that
// embeds config.ServiceConfig satisfies it through promoted methods, as long as
// it is used by pointer.
//
//	type DemoConfig struct {
//	    config.ServiceConfig `mapstructure:",squash"`
//	    Demo DemoSection     `mapstructure:"demo"`
//	}
//
//	app, err := bootstrap.NewApp(&cfg)
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
