package lexer

import (
	"fmt"
)

// ConfigError describes an error which occurs while configuring the scanner, like an unsupported
// source encoding or an invalid delimiter pair.
type ConfigError struct {
	Issue Issue // Issue is a kind of the problem occurred.
	Err   error // Err contains original error created during some configuration process.
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Issue, e.Err)
}

// NewConfigError is a factory function for creating a *ConfigError.
func NewConfigError(issue Issue, err error) *ConfigError {
	return &ConfigError{
		Issue: issue,
		Err:   err,
	}
}

// FatalError means the configuration file could not be made available to the scanner at all.
// Unlike lexical issues, it stops the whole run; the driver decides how to exit.
type FatalError struct {
	Op   string // Op is the failed operation, e.g. "stat" or "read".
	Path string
	Err  error
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("cannot %s config file %q: %v", e.Op, e.Path, e.Err)
}
