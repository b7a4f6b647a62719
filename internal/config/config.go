package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/atomicstack/xmb/internal/app"
	"github.com/atomicstack/xmb/internal/frame"
	"github.com/atomicstack/xmb/internal/gamepad"
	"github.com/atomicstack/xmb/internal/store"
)

// ErrInvalid marks configuration problems. main exits with status 2 for them.
var ErrInvalid = errors.New("invalid configuration")

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config        `json:"app"`
	Logging Logging           `json:"logging"`
	File    string            `json:"file,omitempty"`
	Flags   map[string]string `json:"-"`
	Args    []string          `json:"-"`
}

type Logging struct {
	FilePath string `json:"logFile"`
	Trace    bool   `json:"trace"`
	Level    string `json:"logLevel" validate:"oneof=trace debug info warn error"`
}

const (
	envPrefix      = "XMB"
	configName     = "xmb"
	userConfigPath = "~/.config/xmb"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		// Report fields by their flag names.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// RegisterFlags adds every option to fs. Values not given on the command
// line fall back to XMB_* environment variables, then the config file.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file (default ./xmb.yaml or ~/.config/xmb/xmb.yaml)")
	fs.String("store", string(store.BackendDisk), "state backend: disk, sqlite or memory")
	fs.String("store-path", store.DefaultPath, "directory for persisted navigation state")
	fs.Bool("ephemeral", false, "keep navigation state in memory only (same as --store memory)")
	fs.String("catalog", "", "catalog YAML file (built-in catalog when empty)")
	fs.String("category", "", "category to open on start, fuzzy matched")
	fs.String("gamepad", gamepad.DefaultPath, "joystick device path, or none to disable")
	fs.String("mapping", "standard", "gamepad layout: standard or linux")
	fs.Int("fps", frame.DefaultFPS, "frame rate for gamepad polling and motion (1-240)")
	fs.String("sound", "bell", "audio cues: bell or none")
	fs.Bool("footer", false, "show the footer hint row")
	fs.Int("width", 0, "fixed width in cells (0 uses terminal width)")
	fs.Int("height", 0, "fixed height in rows (0 uses terminal height)")
	fs.Bool("trace", false, "enable verbose JSON trace logging")
	fs.String("log-file", "", "path to the log file")
	fs.String("log-level", "info", "log level: trace, debug, info, warn or error")
}

// Resolve merges parsed flags with the environment and config file and
// validates the result. args are recorded for startup tracing only.
func Resolve(fs *pflag.FlagSet, args []string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	file, err := readConfigFile(v)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	cfg := Config{
		App: app.Config{
			Store:      v.GetString("store"),
			StorePath:  v.GetString("store-path"),
			Catalog:    v.GetString("catalog"),
			Category:   v.GetString("category"),
			Gamepad:    v.GetString("gamepad"),
			Mapping:    v.GetString("mapping"),
			FPS:        v.GetInt("fps"),
			Sound:      v.GetString("sound"),
			ShowFooter: v.GetBool("footer"),
			Width:      v.GetInt("width"),
			Height:     v.GetInt("height"),
		},
		Logging: Logging{
			FilePath: v.GetString("log-file"),
			Trace:    v.GetBool("trace"),
			Level:    strings.ToLower(v.GetString("log-level")),
		},
		File:  file,
		Flags: make(map[string]string),
		Args:  append([]string(nil), args...),
	}
	if v.GetBool("ephemeral") {
		cfg.App.Store = string(store.BackendMemory)
	}
	fs.VisitAll(func(f *pflag.Flag) {
		cfg.Flags[f.Name] = v.GetString(f.Name)
	})

	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// readConfigFile loads an explicit config file, or the first xmb.yaml found
// in the working directory or user config directory. Only an explicit file
// is required to exist.
func readConfigFile(v *viper.Viper) (string, error) {
	explicit := v.GetString("config")
	if explicit != "" {
		path, err := homedir.Expand(explicit)
		if err != nil {
			return "", err
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := homedir.Expand(userConfigPath); err == nil {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Validate checks option ranges and enumerations.
func Validate(cfg Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "oneof":
			return fmt.Errorf("%w: %s must be one of [%s] (got %v)", ErrInvalid, fe.Field(), fe.Param(), fe.Value())
		case "min", "max":
			return fmt.Errorf("%w: %s must be %s %s (got %v)", ErrInvalid, fe.Field(), boundWord(fe.Tag()), fe.Param(), fe.Value())
		default:
			return fmt.Errorf("%w: %s is %s", ErrInvalid, fe.Field(), fe.Tag())
		}
	}
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

func boundWord(tag string) string {
	if tag == "min" {
		return ">="
	}
	return "<="
}
