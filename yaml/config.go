// Package yaml loads spafrag configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/spafrag"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML configuration file. Keys missing from the file
// keep the values of spafrag.DefaultConfig; a list given in the file
// replaces the default list entirely.
func LoadConfig(path string) (*spafrag.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration over the defaults and validates it.
// Unknown keys are rejected.
func ParseConfig(data []byte) (*spafrag.Config, error) {
	cfg := spafrag.DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, spafrag.Errorf(spafrag.EINVALID, "invalid config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
