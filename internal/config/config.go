package config // import "github.com/Xunop/gutenshelf/internal/config"

import (
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GUTENSHELF_PORT.
const EnvPrefix = "GUTENSHELF"

// Loader layers defaults, an optional config file, the environment and
// command line flags, in increasing order of precedence.
type Loader struct {
	v *viper.Viper
}

func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	d := DefaultOptions()
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file_max_size", d.LogFileMaxSize)
	v.SetDefault("log_file_max_backups", d.LogFileMaxBackups)
	v.SetDefault("log_file_max_age", d.LogFileMaxAge)
	v.SetDefault("log_compress", d.LogCompress)
	v.SetDefault("port", d.Port)
	v.SetDefault("host", d.Host)
	v.SetDefault("api_base_url", d.APIBaseURL)
	v.SetDefault("api_timeout", d.APITimeout)
	v.SetDefault("api_rate_limit", d.APIRateLimit)
	v.SetDefault("api_user_agent", d.APIUserAgent)
	v.SetDefault("search_debounce", d.SearchDebounce)
	v.SetDefault("preview_size", d.PreviewSize)
	v.SetDefault("shutdown_timeout", d.ShutdownTimeout)

	return &Loader{v: v}
}

// BindFlag lets a command line flag override the option stored under key.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return errors.Errorf("no flag to bind for %s", key)
	}
	return errors.Wrapf(l.v.BindPFlag(key, flag), "unable to bind flag %s", flag.Name)
}

// Load resolves the options, reading file when it is not empty, and validates
// them.
func (l *Loader) Load(file string) (*Options, error) {
	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return nil, errors.Wrapf(err, "unable to access config file %s", file)
		}
		l.v.SetConfigFile(file)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "unable to read config file %s", file)
		}
	}

	opts := DefaultOptions()
	if err := l.v.Unmarshal(opts); err != nil {
		return nil, errors.Wrap(err, "unable to decode options")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// LoadDotEnv exports the variables of every existing dotenv file. Variables
// already present in the environment win. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return errors.Wrapf(err, "unable to access env file %s", file)
		}
		if err := godotenv.Load(file); err != nil {
			return errors.Wrapf(err, "unable to load env file %s", file)
		}
	}
	return nil
}

// Validate reports the first option that cannot work.
func (o *Options) Validate() error {
	u, err := url.Parse(o.APIBaseURL)
	if err != nil {
		return errors.Wrapf(err, "invalid api_base_url %q", o.APIBaseURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Errorf("api_base_url %q must be an absolute http(s) URL", o.APIBaseURL)
	}
	if o.Port < 1 || o.Port > 65535 {
		return errors.Errorf("port %d out of range", o.Port)
	}
	if o.APITimeout < 0 {
		return errors.New("api_timeout must not be negative")
	}
	if o.APIRateLimit < 0 {
		return errors.New("api_rate_limit must not be negative")
	}
	if o.SearchDebounce < 0 {
		return errors.New("search_debounce must not be negative")
	}
	if o.ShutdownTimeout < 0 {
		return errors.New("shutdown_timeout must not be negative")
	}
	if o.PreviewSize < 0 {
		return errors.New("preview_size must not be negative")
	}
	return nil
}
