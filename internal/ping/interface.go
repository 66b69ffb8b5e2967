package ping

import (
	"context"
	"net"
	"time"
)

//go:generate mockgen -destination=../mock/ping/mock_ping.go -package=mock_ping . Prober

// Reply holds the outcome of a single answered echo request
type Reply struct {
	// Latency round trip time in whole milliseconds
	Latency uint64
	// TTL of the reply packet
	TTL int
	// Size of the payload in bytes
	Size int
}

// Prober sends a single echo request. A lost probe returns (nil, nil);
// an error return is fatal for the session (permission denied, handle
// creation failure) and terminates the probing loop.
type Prober interface {
	Probe(ctx context.Context, seq int) (*Reply, error)
}

// ProberFactory builds a platform prober for a resolved target. The
// factory runs once per session; a factory error surfaces as a single
// error event and the session returns to stopped.
type ProberFactory func(target net.IP, timeout time.Duration, size int) (Prober, error)
