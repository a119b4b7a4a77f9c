package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
)

// SpecNone disables caching.
const SpecNone = "none"

// New opens the cache described by spec:
//
//	"" or "none"              NullCache
//	"redis://..." "rediss://" RedisCache
//	anything else             FileCache rooted at that directory
//
// A leading "~/" in a directory spec is expanded to the home directory.
func New(ctx context.Context, spec string) (Cache, error) {
	spec = strings.TrimSpace(spec)
	switch {
	case spec == "" || spec == SpecNone:
		return NewNullCache(), nil
	case strings.HasPrefix(spec, "redis://") || strings.HasPrefix(spec, "rediss://"):
		if err := gerrors.ValidateCacheURL(spec); err != nil {
			return nil, err
		}
		c, err := NewRedisCache(ctx, spec)
		if err != nil {
			return nil, gerrors.Wrap(gerrors.ErrCodeInvalidConfig, err, "connect to redis cache")
		}
		return c, nil
	}

	dir, err := expandHome(spec)
	if err != nil {
		return nil, err
	}
	c, err := NewFileCache(dir)
	if err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeInvalidConfig, err, "open cache directory %s", dir)
	}
	return c, nil
}

// DefaultDir returns $HOME/.cache/gridgen.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "gridgen"), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
