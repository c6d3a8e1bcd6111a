package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/validator"
)

// ClientConfigFileName is looked up in the user's home directory.
const ClientConfigFileName = ".leavectl.yaml"

// ClientConfig configures the leavectl terminal client.
type ClientConfig struct {
	APIURL   string        `yaml:"apiUrl" json:"apiUrl" validate:"required,url"`
	StateDir string        `yaml:"stateDir" json:"stateDir" validate:"required"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" validate:"gte=0"`
}

// DefaultClientConfig is used for every field the file leaves out.
func DefaultClientConfig() ClientConfig {
	stateDir := ".leavectl"
	if home, err := os.UserHomeDir(); err == nil {
		stateDir = filepath.Join(home, ".leavectl")
	}
	return ClientConfig{
		APIURL:   "http://localhost:5000",
		StateDir: stateDir,
		Timeout:  30 * time.Second,
	}
}

// DefaultClientConfigPath is ~/.leavectl.yaml.
func DefaultClientConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ClientConfigFileName
	}
	return filepath.Join(home, ClientConfigFileName)
}

// LoadClient reads the YAML file at path over the defaults. A missing file
// is not an error when optional is set.
func LoadClient(path string, optional bool) (*ClientConfig, error) {
	cfg := DefaultClientConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *ClientConfig) Validate() error {
	if err := validator.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
