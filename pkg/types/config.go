package types

import "errors"

// Environment names. Development unlocks the maintenance (doctor) entry
// points; they are unreachable in production.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds backend parameters for Store.Open.
type Config struct {
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	Environment string `json:"environment" yaml:"environment"`
}

// Config validation errors.
var (
	ErrEnvironmentUnknown = errors.New("unknown environment")
)

// validEnvironments lists the environments Validate accepts.
var validEnvironments = map[string]bool{
	EnvDevelopment: true,
	EnvProduction:  true,
}

// Validate checks that the Config is well-formed. An empty Environment is
// treated as production.
func (c Config) Validate() error {
	if c.Environment != "" && !validEnvironments[c.Environment] {
		return ErrEnvironmentUnknown
	}
	return nil
}

// IsDevelopment reports whether the config enables development-only
// maintenance entry points.
func (c Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}
