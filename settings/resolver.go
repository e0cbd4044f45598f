package settings

import (
	"os"
	"path/filepath"
)

type resolver interface {
	resolve() (string, error)
}

type defaultResolver struct {
}

func newDefaultResolver() defaultResolver {
	return defaultResolver{}
}

func (r defaultResolver) resolve() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "ecdhprobe", "configuration.json"), nil
}
