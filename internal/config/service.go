package config

import (
	"errors"

	"github.com/netdash/netdash/internal/exception"
)

// ConfigService implementation of the config Service interface
type ConfigService struct {
	repo Repo
}

// NewConfigService returns a new instance of ConfigService
func NewConfigService(repo Repo) *ConfigService {
	return &ConfigService{repo: repo}
}

// Get returns the stored config, creating and persisting the default
// config when none exists yet
func (s *ConfigService) Get() (*Config, error) {
	conf, err := s.repo.Get()

	if err != nil {
		if errors.Is(err, exception.ErrRecordNotFound) {
			return s.repo.Update(Default())
		}

		return nil, err
	}

	return conf, nil
}

// Update persists a new config
func (s *ConfigService) Update(conf *Config) (*Config, error) {
	return s.repo.Update(conf)
}
