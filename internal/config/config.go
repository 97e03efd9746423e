package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// RenderConfig holds configuration for the render command, merged from
// config file, environment variables, and flags.
type RenderConfig struct {
	In        string
	Out       string
	Errors    string
	RPCURL    string
	PgDSN     string
	BatchSize int
	LogLevel  string
}

// LoadRender merges config file, DESCRIPTOR_* environment variables, and
// flags into RenderConfig.
func LoadRender(cfgFile string, flags *pflag.FlagSet) (RenderConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return RenderConfig{}, err
	}

	v.SetDefault("out", "./data/descriptors.jsonl")
	v.SetDefault("errors", "./data/render_errors.jsonl")
	v.SetDefault("batch-size", 500)
	v.SetDefault("log-level", "info")

	cfg := RenderConfig{
		In:        v.GetString("in"),
		Out:       v.GetString("out"),
		Errors:    v.GetString("errors"),
		RPCURL:    v.GetString("rpc"),
		PgDSN:     v.GetString("pg-dsn"),
		BatchSize: v.GetInt("batch-size"),
		LogLevel:  v.GetString("log-level"),
	}
	return cfg, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("DESCRIPTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return v, nil
	}

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}
