package config // import "github.com/Xunop/gutenshelf/internal/config"

import (
	"net"
	"strconv"
	"time"
)

const (
	defaultLogFile           = "gutenshelf.log"
	defaultLogLevel          = "info"
	defaultLogFileMaxSize    = 20
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28
	defaultLogCompress       = false
	defaultPort              = 8080
	defaultHost              = "0.0.0.0"
	defaultAPIBaseURL        = "http://skunkworks.ignitesol.com:8000/"
	defaultAPITimeout        = 0
	defaultAPIRateLimit      = 0
	defaultAPIUserAgent      = "gutenshelf"
	defaultSearchDebounce    = 300 * time.Millisecond
	defaultPreviewSize       = 6
	defaultShutdownTimeout   = 10 * time.Second
)

// Why use mapstructure instead of json: viper decodes through mapstructure and
// ignores json tags.
// see: https://pkg.go.dev/github.com/mitchellh/mapstructure#hdr-Field_Tags
type Options struct {
	// LogFile is the file to write logs to, empty disables the file sink
	LogFile string `mapstructure:"log_file"`
	// LogLevel is the level of logging to show
	LogLevel string `mapstructure:"log_level"`
	// LogFileMaxSize is the maximum size of the log file before it is rotated, in megabytes
	LogFileMaxSize int `mapstructure:"log_file_max_size"`
	// LogFileMaxBackups is the maximum number of log files to keep
	LogFileMaxBackups int `mapstructure:"log_file_max_backups"`
	// LogFileMaxAge is the maximum number of days to keep a log file
	LogFileMaxAge int `mapstructure:"log_file_max_age"`
	// LogCompress is whether or not to compress the log files
	LogCompress bool `mapstructure:"log_compress"`
	// Port is the port to listen on
	Port int `mapstructure:"port"`
	// Host is the host to listen on
	Host string `mapstructure:"host"`
	// APIBaseURL is the root of the upstream book API
	APIBaseURL string `mapstructure:"api_base_url"`
	// APITimeout bounds one upstream request, 0 leaves it to the network stack
	APITimeout time.Duration `mapstructure:"api_timeout"`
	// APIRateLimit caps upstream requests per second, 0 disables the limiter
	APIRateLimit float64 `mapstructure:"api_rate_limit"`
	APIUserAgent string  `mapstructure:"api_user_agent"`
	// SearchDebounce is the quiet period after the last keystroke before the
	// list view rewrites its URL
	SearchDebounce time.Duration `mapstructure:"search_debounce"`
	// PreviewSize is the number of books shown on the home page
	PreviewSize     int           `mapstructure:"preview_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DefaultOptions returns a fresh set of built-in defaults.
func DefaultOptions() *Options {
	return &Options{
		LogFile:           defaultLogFile,
		LogLevel:          defaultLogLevel,
		LogFileMaxSize:    defaultLogFileMaxSize,
		LogFileMaxBackups: defaultLogFileMaxBackups,
		LogFileMaxAge:     defaultLogFileMaxAge,
		LogCompress:       defaultLogCompress,
		Port:              defaultPort,
		Host:              defaultHost,
		APIBaseURL:        defaultAPIBaseURL,
		APITimeout:        defaultAPITimeout,
		APIRateLimit:      defaultAPIRateLimit,
		APIUserAgent:      defaultAPIUserAgent,
		SearchDebounce:    defaultSearchDebounce,
		PreviewSize:       defaultPreviewSize,
		ShutdownTimeout:   defaultShutdownTimeout,
	}
}

// ListenAddr returns the host:port pair the HTTP server binds to.
func (o *Options) ListenAddr() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}
