package config

import "github.com/shuldan/errorhandler/pkg/errors"

type chainLoader struct {
	loaders []Loader
}

func (c *chainLoader) Load() (map[string]any, error) {
	final := make(map[string]any)

	for _, loader := range c.loaders {
		config, err := loader.Load()
		if errors.Is(err, ErrNoConfigSource) {
			continue
		}
		if err != nil {
			return nil, err
		}
		mergeMaps(final, config)
	}

	if len(final) == 0 {
		return nil, ErrNoConfigSource.WithDetail("loader", "chain")
	}

	return final, nil
}

func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if vMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				mergeMaps(dstMap, vMap)
				continue
			}
		}
		dst[k] = v
	}
}
