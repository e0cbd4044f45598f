package settings

import (
	"os"
)

type ConfigurationManager interface {
	Configuration() (*Configuration, error)
}

type Manager struct {
	resolver resolver
}

func NewManager() ConfigurationManager {
	return &Manager{
		resolver: newDefaultResolver(),
	}
}

// Configuration resolves and reads the configuration file. A missing file is
// not an error: the probe runs with defaults. A present but unreadable or
// malformed file is a fatal setup error.
func (m *Manager) Configuration() (*Configuration, error) {
	path, pathErr := m.resolver.resolve()
	if pathErr != nil {
		return nil, pathErr
	}

	_, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return defaultConfiguration(), nil
		}
		return nil, statErr
	}

	return newReader(path).read()
}
