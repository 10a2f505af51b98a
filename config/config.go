package config

import (
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"path"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/gwos/syncdatagen/logger"
)

// ErrUsage is returned when the input file is not provided
var ErrUsage = errors.New("missing input file")

// Variables to control the build info
// can be overridden by Go linker during the build step:
// go build -ldflags "-X 'github.com/gwos/syncdatagen/config.buildTag=<TAG>' -X 'github.com/gwos/syncdatagen/config.buildTime=`date --rfc-3339=s`'"
var (
	buildTag  = "1.x.x"
	buildTime = "Build time not provided"
)

// BuildInfo describes the build properties
type BuildInfo struct {
	Tag  string `json:"tag"`
	Time string `json:"time"`
}

// GetBuildInfo returns the build properties
func GetBuildInfo() BuildInfo {
	return BuildInfo{buildTag, buildTime}
}

func (bi BuildInfo) String() string {
	return fmt.Sprintf("%s / %s", bi.Tag, bi.Time)
}

// LogLevel defines levels in logrus-style
type LogLevel int

// Enum levels
const (
	Error LogLevel = iota
	Warn
	Info
	Debug
	Trace
)

func (l LogLevel) String() string {
	if l < Error || l > Trace {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return [...]string{"Error", "Warn", "Info", "Debug", "Trace"}[l]
}

// Generator defines what is generated and where
type Generator struct {
	// InputFile is the description file, first positional argument
	InputFile string `env:"INPUTFILE" yaml:"-"`
	// OutputDir accepts the directory for generated files,
	// second positional argument, work directory if empty
	OutputDir string `env:"OUTPUTDIR" yaml:"outputDir"`
	// Namespace is the C++ namespace of generated code
	Namespace string `env:"NAMESPACE" yaml:"namespace"`
	// LicenseFile overrides the license text placed on top of generated files
	LicenseFile string `env:"LICENSEFILE" yaml:"licenseFile"`
	// Check compares generated files with existing ones without writing
	Check bool `env:"CHECK" yaml:"check"`
}

// Log defines logging configuration
type Log struct {
	// File accepts file path to log in addition to stderr
	File        string `env:"FILE" yaml:"file"`
	FileMaxSize int64  `env:"FILEMAXSIZE" yaml:"fileMaxSize"`
	// Log files are rotated count times before being removed.
	// If count is 0, old versions are removed rather than rotated.
	FileRotate int      `env:"FILEROTATE" yaml:"fileRotate"`
	Level      LogLevel `env:"LEVEL" yaml:"level"`
	NoColor    bool     `env:"NOCOLOR" yaml:"noColor"`
	TimeFormat string   `env:"TIMEFORMAT" yaml:"timeFormat"`
}

// Config defines generator configuration
type Config struct {
	Generator Generator `envPrefix:"GENERATOR_" yaml:"generator"`
	Log       Log       `envPrefix:"LOG_" yaml:"log"`

	ShowVersion bool `yaml:"-"`
}

func defaults() Config {
	return Config{
		Generator: Generator{
			Namespace: "WebCore",
		},
		Log: Log{
			FileMaxSize: 1024 * 1024 * 10, // 10MB
			FileRotate:  5,
			Level:       Warn,
			NoColor:     false,
			TimeFormat:  time.RFC3339,
		},
	}
}

// Load merges defaults, config file, environment, and command line arguments.
// It returns ErrUsage if the input file is not provided.
func Load(args []string) (*Config, error) {
	/* buffer the logging while configuring */
	logBuf := &logger.LogBuffer{
		Level: zerolog.TraceLevel,
		Size:  16,
	}
	log.Logger = zerolog.New(logBuf).
		With().Timestamp().Logger()
	log.Info().Msgf("Build info: %s", GetBuildInfo())

	flags, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := new(Config)
	*cfg = defaults()
	if data, err := os.ReadFile(cfg.ConfigPath()); err != nil {
		log.Debug().Err(err).
			Str("configPath", cfg.ConfigPath()).
			Msg("could not read config")
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %s: %w", cfg.ConfigPath(), err)
	}
	if err := applyEnv(cfg); err != nil {
		log.Warn().Err(err).
			Msg("could not apply env vars")
	}
	flags.apply(cfg)

	/* init logger and flush buffer */
	cfg.initLogger()
	logger.WriteLogBuffer(logBuf)

	if !cfg.ShowVersion && cfg.Generator.InputFile == "" {
		return cfg, ErrUsage
	}
	log.Debug().Interface("config", cfg).Msg("loaded config")
	return cfg, nil
}

// ConfigPath returns config file path
func (cfg Config) ConfigPath() string {
	configPath := os.Getenv(ConfigEnv)
	if configPath == "" {
		configPath = ConfigName
		if wd, err := os.Getwd(); err == nil {
			configPath = path.Join(wd, ConfigName)
		}
	}
	return configPath
}

// License returns the license text from LicenseFile or empty string if not set
func (cfg Config) License() (string, error) {
	if cfg.Generator.LicenseFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(cfg.Generator.LicenseFile)
	if err != nil {
		return "", fmt.Errorf("could not read license: %w", err)
	}
	return string(data), nil
}

// Hashsum calculates FNV non-cryptographic hash suitable for checking the equality
func (cfg Config) Hashsum() ([]byte, error) {
	return Hashsum(cfg)
}

func (cfg Config) initLogger() {
	level := cfg.Log.Level
	if level > Trace {
		level = Trace
	}
	if level < Error {
		level = Error
	}
	lvl := [...]zerolog.Level{3, 2, 1, 0, -1}[level]
	opts := []logger.Option{
		logger.WithLevel(lvl),
		logger.WithNoColor(cfg.Log.NoColor),
		logger.WithTimeFormat(cfg.Log.TimeFormat),
	}
	if cfg.Log.File != "" {
		opts = append(opts, logger.WithLogFile(&logger.LogFile{
			FilePath: cfg.Log.File,
			MaxSize:  cfg.Log.FileMaxSize,
			Rotate:   cfg.Log.FileRotate,
		}))
	}
	logger.SetLogger(opts...)
	/* set as standard logger output */
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)
}
