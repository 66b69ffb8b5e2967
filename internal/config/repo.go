package config

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/netdash/netdash/internal/exception"
)

// JSONRepo is our config repo implementation backed by a json file
type JSONRepo struct {
	path string
}

// NewJSONRepo returns a new json config repo for the given file path
func NewJSONRepo(path string) *JSONRepo {
	return &JSONRepo{
		path: path,
	}
}

// Get reads and unmarshals the config file
func (r *JSONRepo) Get() (*Config, error) {
	raw, err := os.ReadFile(r.path)

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, err
	}

	conf := &Config{}

	if err := json.Unmarshal(raw, conf); err != nil {
		return nil, err
	}

	return conf, nil
}

// Update writes the config file, replacing any previous content
func (r *JSONRepo) Update(conf *Config) (*Config, error) {
	if conf == nil {
		return nil, errors.New("config cannot be nil")
	}

	raw, err := json.MarshalIndent(conf, "", "  ")

	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(r.path, raw, 0644); err != nil {
		return nil, err
	}

	return conf, nil
}
