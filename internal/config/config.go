package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AnalyzeConfig holds configuration for the snapshot analyzer.
type AnalyzeConfig struct {
	Input     string
	Out       string
	PGDSN     string
	BatchSize int
	LogLevel  string
}

// LoadAnalyze merges config file, environment variables, and flags into
// AnalyzeConfig.
func LoadAnalyze(cfgFile string, flags *pflag.FlagSet) (AnalyzeConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("TICKSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("out", "./data/position_metrics.jsonl")
	v.SetDefault("batch-size", 1000)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return AnalyzeConfig{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return AnalyzeConfig{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return AnalyzeConfig{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := AnalyzeConfig{
		Input:     v.GetString("in"),
		Out:       v.GetString("out"),
		PGDSN:     v.GetString("pg-dsn"),
		BatchSize: v.GetInt("batch-size"),
		LogLevel:  v.GetString("log-level"),
	}

	return cfg, nil
}
