package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/bootsync/internal/config"
	"github.com/danieljhkim/bootsync/internal/efibootmgr"
	"github.com/danieljhkim/bootsync/internal/engine"
	"github.com/danieljhkim/bootsync/internal/mounts"
)

// newLogger creates the run's diagnostic logger. Warnings only by default,
// debug with --verbose; always to stderr so stdout stays machine-readable.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// newEngine wires real implementations of all dependencies: the located and
// parsed configuration, the disk/partition resolved from flags or the mount
// table, and an exec-backed efibootmgr client.
func newEngine() (*engine.Engine, *config.Config, error) {
	log := newLogger()

	path := configPath
	if path == "" {
		var err error
		path, err = config.Find()
		if err != nil {
			return nil, nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	disk, part, err := resolveTarget(path)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().
		Str("config", path).
		Str("disk", disk).
		Str("part", part).
		Msg("resolved reconciliation target")

	client := efibootmgr.NewClient(efibootmgr.NewExecRunner(), disk, part, log)
	return engine.New(client, log), cfg, nil
}

// resolveTarget decides which disk and partition every efibootmgr call is
// scoped to: explicit flags win, anything missing is derived from the mount
// backing the configuration file.
func resolveTarget(cfgPath string) (string, string, error) {
	disk, part := diskFlag, partFlag
	if disk != "" && part != "" {
		return disk, part, nil
	}

	abs, err := filepath.Abs(cfgPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	rdisk, rpart, err := mounts.NewProcResolver().Resolve(abs)
	if err != nil {
		return "", "", err
	}
	if disk == "" {
		disk = rdisk
	}
	if part == "" {
		part = rpart
	}
	return disk, part, nil
}
