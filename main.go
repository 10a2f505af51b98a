// syncdatagen reads a process sync data description and generates the
// ProcessSyncClient, ProcessSyncData, and DocumentSyncData sources.
//
//	syncdatagen [flags] <input-file> [<output-directory>]
//
// Each description line has the form
//
//	Name : [Namespace::]Type [Option ...]
//
// with options DocumentSyncData, Conditional=<expr>, and Header=<path>.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/gwos/syncdatagen/config"
	"github.com/gwos/syncdatagen/emitter"
	"github.com/gwos/syncdatagen/syncdata"
	"github.com/gwos/syncdatagen/writer"
)

// exitUsage mirrors the -1 status of a missing input file
const exitUsage = 255

func main() {
	cfg, err := config.Load(os.Args[1:])
	switch {
	case errors.Is(err, pflag.ErrHelp):
		os.Exit(0)
	case errors.Is(err, config.ErrUsage):
		config.PrintUsage(os.Stderr)
		os.Exit(exitUsage)
	case err != nil:
		fmt.Fprintf(os.Stderr, "ERROR:  %s\n", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Fprintf(os.Stdout, "%s version %s\n", config.ProgramName, config.GetBuildInfo())
		return
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).
			Str("input", cfg.Generator.InputFile).
			Msg("could not generate")
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	license, err := cfg.License()
	if err != nil {
		return err
	}
	files, err := generate(cfg.Generator.InputFile, emitter.Options{
		Namespace: cfg.Generator.Namespace,
		License:   license,
	})
	if err != nil {
		return err
	}
	if cfg.Generator.Check {
		return writer.Check(cfg.Generator.OutputDir, files)
	}
	return writer.Write(cfg.Generator.OutputDir, files)
}

// generate parses, validates, and orders the whole description
// before rendering, so input errors never leave partial output
func generate(inputFile string, opts emitter.Options) ([]emitter.File, error) {
	datas, err := syncdata.ParseFile(inputFile)
	if err != nil {
		return nil, err
	}
	if err := syncdata.Validate(datas); err != nil {
		return nil, err
	}
	ordered, err := syncdata.Order(datas, syncdata.ByFullyQualifiedType)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("records", len(ordered)).
		Str("input", inputFile).
		Msg("ordered records")
	return emitter.All(opts, ordered), nil
}
