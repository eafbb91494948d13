package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
	"gopkg.in/yaml.v3"
)

var _ datasources.FeatureConfigLoader = (*FeatureConfig)(nil)

// FeatureConfig loads the feature configuration once and serves it for the process lifetime.
// A document that cannot be read or decoded yields the defaults, and so do keys it omits.
type FeatureConfig struct {
	Path string

	once   sync.Once
	config domain.FeatureConfig
}

func NewFeatureConfig(path string) *FeatureConfig {
	return &FeatureConfig{Path: path}
}

func (f *FeatureConfig) LoadFeatureConfig(ctx context.Context) domain.FeatureConfig {
	f.once.Do(func() {
		config, err := ReadFeatureConfig(f.Path)
		if err != nil {
			logger := domain.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "unable to load feature config, using defaults",
				"path", f.Path,
				"error", err,
			)
			config = domain.DefaultFeatureConfig()
		}
		f.config = config
	})
	return f.config
}

// ReadFeatureConfig decodes a .json document with encoding/json and anything else as YAML.
func ReadFeatureConfig(path string) (domain.FeatureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.FeatureConfig{}, fmt.Errorf("reading feature config: %w", err)
	}

	config := domain.DefaultFeatureConfig()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &config)
	} else {
		err = yaml.Unmarshal(data, &config)
	}
	if err != nil {
		return domain.FeatureConfig{}, fmt.Errorf("decoding feature config %s: %w", path, err)
	}
	return config, nil
}
