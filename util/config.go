package util

import (
	"errors"
	"fmt"

	"github.com/chorpler/boxes/lexer"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ConfigName is the base name of the env file read by [LoadConfig].
const ConfigName = "boxlex"

type Config struct {
	Environment    string `mapstructure:"ENVIRONMENT" validate:"omitempty,oneof=development production test"`
	SourceEncoding string `mapstructure:"SOURCE_ENCODING" validate:"required"`
	MaxDiagnostics int    `mapstructure:"MAX_DIAGNOSTICS" validate:"gte=0"`
	BufferMargin   int    `mapstructure:"BUFFER_MARGIN" validate:"gte=0"`
}

// LoadConfig reads boxlex.env from path, if there is one, and lets environment variables override it.
// Keys missing in both places keep the scanner defaults.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	// AutomaticEnv only reaches keys viper knows about, the defaults make them known
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("SOURCE_ENCODING", lexer.DefaultEncoding)
	v.SetDefault("MAX_DIAGNOSTICS", lexer.DefaultMaxDiagnostics)
	v.SetDefault("BUFFER_MARGIN", lexer.DefaultBufferMargin)

	v.AddConfigPath(path)
	v.SetConfigName(ConfigName)
	v.SetConfigType("env")
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	err = validator.New().Struct(config)
	if err != nil {
		err = fmt.Errorf("invalid configuration: %w", err)
	}

	return
}

// LexerOptions converts the configuration into options of a scan session.
func (config Config) LexerOptions() lexer.Options {
	opts := lexer.DefaultOptions()
	opts.Encoding = config.SourceEncoding
	opts.MaxDiagnostics = config.MaxDiagnostics
	opts.BufferMargin = config.BufferMargin
	return opts
}
