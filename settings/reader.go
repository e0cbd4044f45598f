package settings

import (
	"encoding/json"
	"fmt"
	"os"
)

type reader struct {
	path string
}

func newReader(path string) reader {
	return reader{path: path}
}

func (r reader) read() (*Configuration, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}
	var conf Configuration
	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", r.path, err)
	}
	return &conf, nil
}
