package config

import (
	"github.com/adrianliechti/wingman-speak/pkg/storage"
)

type storageConfig struct {
	Dir string `yaml:"dir"`
}

// Dir returns the resolved audio save directory.
func (cfg *Config) Dir() string {
	return cfg.dir
}

func (cfg *Config) registerStorage(f *configFile) error {
	dir, err := storage.ResolveDir(f.Storage.Dir)

	if err != nil {
		return err
	}

	cfg.dir = dir

	return nil
}
