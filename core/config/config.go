// Package config loads and validates the interpreter's optional
// configuration directory.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the file looked up in the config directory.
	ConfigurationName = "config.yaml"
	// HostKeyName is the SSH host key written by Initialize.
	HostKeyName = "host_key"
)

// Color modes for builtin output.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	// Startup lines are dispatched through the normal read-eval loop
	// before the first prompt.
	Startup []string `json:"startup"`

	// Color may be empty, which means auto.
	Color string `json:"color" validate:"omitempty,oneof=always auto never"`

	// LogDir receives JSON-lines session logs; empty disables them.
	LogDir string `json:"log_dir"`

	SSH SSH `json:"ssh"`
}

type SSH struct {
	Port int `json:"port" validate:"gte=0,lte=65535"`

	// HostKey is a PEM private key path; empty means an ephemeral key
	// is generated on every start.
	HostKey string `json:"host_key"`

	// Password gates SSH logins. Empty rejects everyone.
	Password string `json:"password"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the embedded default configuration. It panics on
// failure because the default must always load.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
