// Package config holds the wlbroker configuration and its loading
// rules.
//
// Precedence (lowest to highest): defaults, config file, WLBROKER_*
// environment variables, flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override
// configuration keys.
const EnvPrefix = "WLBROKER"

// Configuration keys.
const (
	KeySocket           = "socket"
	KeySeat             = "seat"
	KeyLogLevel         = "log_level"
	KeyLogFormat        = "log_format"
	KeyMaxMimeTypes     = "max_mime_types"
	KeyFocusNewSurfaces = "focus_new_surfaces"
	KeyFlushInterval    = "flush_interval"
)

// Config is the complete broker configuration.
type Config struct {
	// Socket is the path or name of the Wayland socket to listen on.
	// If it is empty, the first free wayland-N socket in
	// $XDG_RUNTIME_DIR is used.
	Socket string `toml:"socket"`

	// Seat is the name of the seat that is advertised to clients.
	Seat string `toml:"seat"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// MaxMimeTypes is the number of MIME types that a single data
	// source may offer. Zero means no limit.
	MaxMimeTypes int `toml:"max_mime_types"`

	// FocusNewSurfaces gives keyboard focus to every newly created
	// surface.
	FocusNewSurfaces bool `toml:"focus_new_surfaces"`

	// FlushInterval is how often queued requests are handled and
	// queued events are sent.
	FlushInterval Duration `toml:"flush_interval"`
}

// Duration is a time.Duration that is written to config files in its
// string form.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Seat:          "seat0",
		LogLevel:      "info",
		LogFormat:     "auto",
		MaxMimeTypes:  256,
		FlushInterval: Duration{time.Second / 60},
	}
}

// Validate checks the configuration for values that can't be used.
func (c Config) Validate() error {
	var errs []error
	if c.Seat == "" {
		errs = append(errs, errors.New("seat name must not be empty"))
	}
	if c.MaxMimeTypes < 0 {
		errs = append(errs, fmt.Errorf("max_mime_types must not be negative: %v", c.MaxMimeTypes))
	}
	if c.FlushInterval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("flush_interval must be positive: %v", c.FlushInterval))
	}
	switch c.LogFormat {
	case "auto", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log_format: %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// WriteTOML writes c to w as a config file.
func (c Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// flags maps configuration keys to their flag names.
var flags = []struct {
	key, flag string
}{
	{KeySocket, "socket"},
	{KeySeat, "seat"},
	{KeyLogLevel, "log-level"},
	{KeyLogFormat, "log-format"},
	{KeyMaxMimeTypes, "max-mime-types"},
	{KeyFocusNewSurfaces, "focus-new-surfaces"},
	{KeyFlushInterval, "flush-interval"},
}

// AddFlags declares a flag for every configuration key, along with
// --config.
func AddFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String("config", "", "path to config file (overrides auto-discovery)")
	fs.StringP("socket", "s", def.Socket, "socket path or name (default: first free wayland-N)")
	fs.String("seat", def.Seat, "seat name")
	fs.String("log-level", def.LogLevel, "log level: trace|debug|info|warn|error")
	fs.String("log-format", def.LogFormat, "log format: auto|text|json")
	fs.Int("max-mime-types", def.MaxMimeTypes, "maximum MIME types per data source, 0 for no limit")
	fs.Bool("focus-new-surfaces", def.FocusNewSurfaces, "give keyboard focus to every new surface")
	fs.Duration("flush-interval", def.FlushInterval.Duration, "interval between event queue flushes")
}

// SetDefaults registers the default value of every key with v.
func SetDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault(KeySocket, def.Socket)
	v.SetDefault(KeySeat, def.Seat)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFormat, def.LogFormat)
	v.SetDefault(KeyMaxMimeTypes, def.MaxMimeTypes)
	v.SetDefault(KeyFocusNewSurfaces, def.FocusNewSurfaces)
	v.SetDefault(KeyFlushInterval, def.FlushInterval.Duration)
}

// Bind wires fs and the environment into v and reads the config file.
// The file named by the --config flag is used if it is set. Otherwise,
// wlbroker.toml is searched for in /etc/wlbroker and
// $XDG_CONFIG_HOME/wlbroker, and it is not an error if none is found.
func Bind(v *viper.Viper, fs *pflag.FlagSet) error {
	SetDefaults(v)

	configFlag, _ := fs.GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("wlbroker")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/wlbroker/")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "wlbroker"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	for _, f := range flags {
		flag := fs.Lookup(f.flag)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(f.key, flag); err != nil {
			return fmt.Errorf("bind flag %v: %w", f.flag, err)
		}
	}
	return nil
}

// Load reads the configuration out of v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Socket:           v.GetString(KeySocket),
		Seat:             v.GetString(KeySeat),
		LogLevel:         v.GetString(KeyLogLevel),
		LogFormat:        v.GetString(KeyLogFormat),
		MaxMimeTypes:     v.GetInt(KeyMaxMimeTypes),
		FocusNewSurfaces: v.GetBool(KeyFocusNewSurfaces),
		FlushInterval:    Duration{v.GetDuration(KeyFlushInterval)},
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
