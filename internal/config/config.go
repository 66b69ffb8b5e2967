package config

const (
	// DefaultScanConcurrency default number of parallel host probes
	DefaultScanConcurrency = 50
	// DefaultPingTarget default ping destination
	DefaultPingTarget = "8.8.8.8"
	// DefaultPingIntervalMs default interval between echo requests
	DefaultPingIntervalMs = 1000
	// DefaultPingTimeoutMs default per-request timeout
	DefaultPingTimeoutMs = 2000
	// DefaultPingPacketSize default echo payload size in bytes
	DefaultPingPacketSize = 32
)

// Default returns a config populated with default values
func Default() *Config {
	return &Config{
		ScanConcurrency: DefaultScanConcurrency,
		PingTarget:      DefaultPingTarget,
		PingIntervalMs:  DefaultPingIntervalMs,
		PingTimeoutMs:   DefaultPingTimeoutMs,
		PingPacketSize:  DefaultPingPacketSize,
	}
}
