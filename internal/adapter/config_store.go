package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/listedit/internal/model"
)

// DefaultConfigFile is the configuration file looked up in the working directory.
const DefaultConfigFile = ".listedit.yaml"

// ConfigStore loads list editor configuration.
type ConfigStore interface {
	Load(path m.FilePath) (m.Config, error)
}

// LocalConfigStore reads configuration from YAML files.
type LocalConfigStore struct{}

// NewLocalConfigStore constructs a LocalConfigStore.
func NewLocalConfigStore() *LocalConfigStore {
	return &LocalConfigStore{}
}

// Load reads the configuration at path. A missing file yields the defaults;
// fields left empty in the file keep their default values.
func (s *LocalConfigStore) Load(path m.FilePath) (m.Config, error) {
	cfg := m.DefaultConfig()

	// #nosec G304 - path is the configuration file chosen by the user
	data, err := os.ReadFile(string(path))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var file m.Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := validateMergePolicy(file.MergePolicy); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return mergeConfig(cfg, file), nil
}

// ErrUnknownMergePolicy is returned for merge policies other than the known ones.
var ErrUnknownMergePolicy = errors.New("unknown merge policy")

func validateMergePolicy(policy m.MergePolicy) error {
	switch policy {
	case "", m.MergeSameType, m.MergeAlways, m.MergeNever:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMergePolicy, policy)
	}
}

func mergeConfig(base, file m.Config) m.Config {
	if len(file.ListTypes) > 0 {
		base.ListTypes = file.ListTypes
	}

	if file.ItemType != "" {
		base.ItemType = file.ItemType
	}

	if len(file.SeparatorTypes) > 0 {
		base.SeparatorTypes = file.SeparatorTypes
	}

	if file.MergePolicy != "" {
		base.MergePolicy = file.MergePolicy
	}

	if file.DefaultListType != "" {
		base.DefaultListType = file.DefaultListType
	}

	return base
}
