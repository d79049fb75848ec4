package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tuannm99/bizconv/internal/criteria"
	"github.com/tuannm99/bizconv/internal/value"
)

type BizConvConfig struct {
	AppName string `mapstructure:"app_name"`

	Codec struct {
		UppercaseStrings bool `mapstructure:"uppercase_strings"`
		IntegerWidth     int  `mapstructure:"integer_width"`
	} `mapstructure:"codec"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	Output struct {
		Format string `mapstructure:"format"`
	} `mapstructure:"output"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("app_name", "bizconv")
	v.SetDefault("codec.uppercase_strings", false)
	v.SetDefault("codec.integer_width", value.DefaultIntegerWidth)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", "json")

	v.SetEnvPrefix("BIZCONV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the YAML file at path. An empty path yields the defaults
// (plus BIZCONV_* environment overrides). Flags in fs, when non-nil, override
// both; a flag named "log-level" binds to log.level.
func LoadConfig(path string, fs *pflag.FlagSet) (*BizConvConfig, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	var cfg BizConvConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Codec.IntegerWidth < 0 {
		return nil, fmt.Errorf("config: codec.integer_width must be >= 0, got %d", cfg.Codec.IntegerWidth)
	}

	return &cfg, nil
}

var flagKeys = map[string]string{
	"log-level":     "log.level",
	"log-format":    "log.format",
	"format":        "output.format",
	"uppercase":     "codec.uppercase_strings",
	"integer-width": "codec.integer_width",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// ValueCodec returns the codec described by the config.
func (c *BizConvConfig) ValueCodec() value.Codec {
	return value.Codec{
		UppercaseStrings: c.Codec.UppercaseStrings,
		IntegerWidth:     c.Codec.IntegerWidth,
	}
}

// Builder returns a criteria builder using the configured codec.
func (c *BizConvConfig) Builder() criteria.Builder {
	return criteria.Builder{Codec: c.ValueCodec()}
}
