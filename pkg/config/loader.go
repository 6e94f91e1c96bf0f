package config

import (
	"github.com/shuldan/errorhandler/pkg/contracts"
	"github.com/shuldan/errorhandler/pkg/errors"
)

type Loader interface {
	Load() (map[string]any, error)
}

var (
	_ Loader = (*EnvConfigLoader)(nil)
	_ Loader = (*YamlConfigLoader)(nil)
	_ Loader = (*JSONConfigLoader)(nil)
	_ Loader = (*chainLoader)(nil)
)

func NewEnvConfigLoader(prefix string) *EnvConfigLoader {
	return &EnvConfigLoader{prefix: prefix}
}

func NewYamlConfigLoader(paths ...string) *YamlConfigLoader {
	return &YamlConfigLoader{paths: paths}
}

func NewJSONConfigLoader(paths ...string) *JSONConfigLoader {
	return &JSONConfigLoader{paths: paths}
}

// NewChainLoader merges the output of loaders, later ones winning.
func NewChainLoader(loaders ...Loader) Loader {
	return &chainLoader{loaders: loaders}
}

func NewMapConfig(values map[string]any) contracts.Config {
	if values == nil {
		values = make(map[string]any)
	}
	return &MapConfig{values: values}
}

// Load reads the first YAML and the first JSON file found in paths and
// overlays environment variables starting with envPrefix. Having no
// source at all yields an empty configuration.
func Load(envPrefix string, paths ...string) (contracts.Config, error) {
	loader := NewChainLoader(
		NewYamlConfigLoader(paths...),
		NewJSONConfigLoader(paths...),
		NewEnvConfigLoader(envPrefix),
	)

	values, err := loader.Load()
	if err != nil && !errors.Is(err, ErrNoConfigSource) {
		return nil, err
	}
	return NewMapConfig(values), nil
}
