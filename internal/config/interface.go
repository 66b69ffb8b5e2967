package config

//go:generate mockgen -destination=../mock/config/mock_config.go -package=mock_config . Repo,Service

// Config represents the data structure of our persisted json settings.
// Only the fields the probing core needs live here; everything else is
// derived at runtime.
type Config struct {
	ScanConcurrency int    `json:"scanConcurrency"`
	PingTarget      string `json:"pingTarget"`
	PingIntervalMs  int    `json:"pingIntervalMs"`
	PingTimeoutMs   int    `json:"pingTimeoutMs"`
	PingPacketSize  int    `json:"pingPacketSize"`
}

// Repo interface representing access to the stored config
type Repo interface {
	Get() (*Config, error)
	Update(conf *Config) (*Config, error)
}

// Service interface for manipulating the configuration
type Service interface {
	Get() (*Config, error)
	Update(conf *Config) (*Config, error)
}
