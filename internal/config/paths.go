package config

import (
	"fmt"
	"os"
)

// searchPaths are the fixed locations probed for the configuration file,
// most specific first.
var searchPaths = []string{
	"/boot/efi/bootsync.toml",
	"/boot/bootsync.toml",
	"/bootsync.toml",
}

// Find locates the configuration file.
//
// The BOOTSYNC_CONFIG environment variable takes precedence over the fixed
// search paths; when set, it must point at an existing file.
func Find() (string, error) {
	if path := os.Getenv("BOOTSYNC_CONFIG"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%w: BOOTSYNC_CONFIG points at %s: %v", ErrNotFound, path, err)
		}
		return path, nil
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}
