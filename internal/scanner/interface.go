package scanner

import (
	"context"
	"net"
)

//go:generate mockgen -destination=../mock/scanner/mock_scanner.go -package=mock_scanner . HostProber,HostnameResolver

// Status represents the lifecycle of a scan run
type Status string

const (
	// StatusIdle no run has been started yet
	StatusIdle Status = "idle"
	// StatusScanning a run is in flight
	StatusScanning Status = "scanning"
	// StatusDone the run completed or was stopped
	StatusDone Status = "done"
)

// Result represents one discovered host on the network
type Result struct {
	IP       net.IP
	MAC      string
	Hostname string
}

// HostProber resolves low-level reachability for a single host. A probe
// that misses returns ok = false; the host is then skipped entirely.
type HostProber interface {
	Probe(ctx context.Context, ip net.IP) (mac string, ok bool)
}

// HostnameResolver best-effort reverse lookup for a reachable host.
// Returns the empty string when nothing resolves.
type HostnameResolver interface {
	Resolve(ctx context.Context, ip net.IP) string
}
