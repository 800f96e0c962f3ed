// Package config resolves colormix settings from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jmylchreest/colormix/internal/input/file"
)

// EnvPrefix is prepended to every environment variable, e.g. COLORMIX_MODE.
const EnvPrefix = "COLORMIX"

// Keys.
const (
	KeyMode    = "mode"
	KeyFile    = "file"
	KeyFormat  = "format"
	KeyPreview = "preview"
	KeyVerbose = "verbose"
	KeyQuiet   = "quiet"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Preview settings.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// Settings is the resolved configuration for a run.
type Settings struct {
	Mode    string
	File    string
	Format  string
	Preview string
	Verbose bool
	Quiet   bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMode, "mix")
	v.SetDefault(KeyFile, file.DefaultPath)
	v.SetDefault(KeyFormat, FormatText)
	v.SetDefault(KeyPreview, PreviewAuto)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyQuiet, false)
}

// Init wires environment lookup and reads the config file. With an empty
// cfgFile, ./colormix.yaml is used if it exists. It returns the config file
// used, or "" when none was read.
func Init(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("colormix")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// FromViper extracts Settings from v.
func FromViper(v *viper.Viper) Settings {
	return Settings{
		Mode:    v.GetString(KeyMode),
		File:    v.GetString(KeyFile),
		Format:  v.GetString(KeyFormat),
		Preview: v.GetString(KeyPreview),
		Verbose: v.GetBool(KeyVerbose),
		Quiet:   v.GetBool(KeyQuiet),
	}
}

// Validate checks the enumerated settings. Mode is not checked: unknown
// modes fall back to mix.
func (s Settings) Validate() error {
	switch s.Format {
	case FormatText, FormatTable, FormatJSON:
	default:
		return fmt.Errorf("invalid format: %s (valid: %s, %s, %s)", s.Format, FormatText, FormatTable, FormatJSON)
	}
	switch s.Preview {
	case PreviewAuto, PreviewAlways, PreviewNever:
	default:
		return fmt.Errorf("invalid preview: %s (valid: %s, %s, %s)", s.Preview, PreviewAuto, PreviewAlways, PreviewNever)
	}
	return nil
}
