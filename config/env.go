package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

var (
	// EnvPrefix defines name prefix for environment variables
	// with struct-path selector and value, for example:
	//    SYNCDATAGEN_GENERATOR_NAMESPACE=WebCore
	EnvPrefix = "SYNCDATAGEN_"
	// ConfigEnv defines environment variable for config file path, overrides the ConfigName
	ConfigEnv = "SYNCDATAGEN_CONFIG"
	// ConfigName defines default filename for look in work directory if ConfigEnv is empty
	ConfigName = "syncdatagen.yaml"
	// ProgramName is used in usage output
	ProgramName = "syncdatagen"
)

// cliFlags keeps values given on the command line,
// applied over config file and environment only if set
type cliFlags struct {
	set *pflag.FlagSet

	check       bool
	logFile     string
	logLevel    int
	namespace   string
	noColor     bool
	showVersion bool
}

func newFlagSet(f *cliFlags) *pflag.FlagSet {
	flags := pflag.NewFlagSet(ProgramName, pflag.ContinueOnError)
	flags.SortFlags = false
	flags.Usage = func() { PrintUsage(os.Stderr) }
	flags.StringVar(&EnvPrefix, "env-prefix", EnvPrefix,
		`prefix for environment variables`)
	flags.StringVar(&ConfigEnv, "config-env", ConfigEnv,
		`environment variable for config file path`)
	flags.StringVar(&f.namespace, "namespace", "",
		`C++ namespace of generated code, "WebCore" by default`)
	flags.BoolVar(&f.check, "check", false,
		`compare generated files with existing ones without writing`)
	flags.IntVarP(&f.logLevel, "log-level", "l", int(Warn),
		`log level 0..4: error, warn, info, debug, trace`)
	flags.StringVar(&f.logFile, "log-file", "",
		`file path to log in addition to stderr`)
	flags.BoolVar(&f.noColor, "no-color", false,
		`disable colored log output`)
	flags.BoolVarP(&f.showVersion, "version", "v", false,
		`print version and exit`)
	return flags
}

// PrintUsage writes command line help
func PrintUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "usage:  %s [flags] <input-file> [<output-directory>]\n", ProgramName)
	flags := newFlagSet(new(cliFlags))
	flags.SetOutput(w)
	flags.PrintDefaults()
}

func parseFlags(args []string) (*cliFlags, error) {
	f := new(cliFlags)
	f.set = newFlagSet(f)
	if err := f.set.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("could not parse options: %w", err)
	}
	for _, s := range []*string{&ConfigEnv} {
		*s = strings.TrimPrefix(*s, "SYNCDATAGEN_")
		*s = strings.TrimPrefix(*s, EnvPrefix)
		*s = EnvPrefix + *s
	}
	return f, nil
}

// apply sets changed flags and positional arguments
func (f *cliFlags) apply(cfg *Config) {
	if f.set.Changed("namespace") {
		cfg.Generator.Namespace = f.namespace
	}
	if f.set.Changed("check") {
		cfg.Generator.Check = f.check
	}
	if f.set.Changed("log-level") {
		cfg.Log.Level = LogLevel(f.logLevel)
	}
	if f.set.Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if f.set.Changed("no-color") {
		cfg.Log.NoColor = f.noColor
	}
	cfg.ShowVersion = f.showVersion

	args := f.set.Args()
	if len(args) > 0 {
		cfg.Generator.InputFile = args[0]
	}
	if len(args) > 1 {
		cfg.Generator.OutputDir = args[1]
	}
	if len(args) > 2 {
		log.Warn().Strs("args", args[2:]).Msg("ignoring extra arguments")
	}
}

func applyEnv(v ...any) error {
	var ee []error
	for i := range v {
		if err := env.ParseWithOptions(v[i], env.Options{Prefix: EnvPrefix}); err != nil {
			ee = append(ee, err)
		}
	}
	if len(ee) > 0 {
		return errors.Join(ee...)
	}
	return nil
}
