package config

import (
	"fmt"

	"github.com/kbukum/searchkit/client"
	"github.com/kbukum/searchkit/logger"
)

// Settings is the canonical configuration shape for applications using
// the search client. Projects with extra sections embed it:
//
//	type AppConfig struct {
//	    config.Settings `yaml:",inline" mapstructure:",squash"`
//	    Indexer         IndexerConfig `yaml:"indexer" mapstructure:"indexer"`
//	}
type Settings struct {
	Client  client.Config `yaml:"client" mapstructure:"client"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to all sections.
func (s *Settings) ApplyDefaults() {
	s.Client.ApplyDefaults()
	s.Logging.ApplyDefaults()
}

// Validate validates all sections.
func (s *Settings) Validate() error {
	if err := s.Client.Validate(); err != nil {
		return err
	}
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
