// Package writer puts rendered artifacts on disk
package writer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog/log"

	"github.com/gwos/syncdatagen/config"
	"github.com/gwos/syncdatagen/emitter"
	"github.com/gwos/syncdatagen/errors"
)

// FileMode is applied to created files
const FileMode = 0644

// Write truncates and creates each file in dir, in order.
// It stops on the first failure and leaves already written files in place.
func Write(dir string, files []emitter.File) error {
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Content, FileMode); err != nil {
			return fmt.Errorf("%w: %w", errors.ErrOutput, err)
		}
		hashsum, _ := config.Hashsum(f.Content)
		log.Info().
			Str("path", path).
			Int("bytes", len(f.Content)).
			Hex("hashsum", hashsum).
			Msg("wrote file")
	}
	return nil
}

// Check compares files with their counterparts in dir without writing.
// It returns ErrStale naming every missing or differing file.
func Check(dir string, files []emitter.File) error {
	var stale []string
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		current, err := os.ReadFile(path)
		if err != nil {
			if !errors.IsErrorNotExist(err) {
				return fmt.Errorf("%w: %w", errors.ErrOutput, err)
			}
			log.Warn().Str("path", path).Msg("missing file")
			stale = append(stale, f.Name)
			continue
		}
		if bytes.Equal(current, f.Content) {
			log.Debug().Str("path", path).Msg("up to date")
			continue
		}
		log.Warn().Str("path", path).
			Str("diff", cmp.Diff(string(current), string(f.Content))).
			Msg("stale file")
		stale = append(stale, f.Name)
	}
	if len(stale) > 0 {
		return fmt.Errorf("%w: %s", errors.ErrStale, strings.Join(stale, ", "))
	}
	return nil
}
