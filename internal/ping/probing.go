package ping

import (
	"context"
	"net"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// icmp echo payloads carry a timestamp in the first 8 bytes
const minPayloadSize = 8

// ProBingProber implements Prober on top of the portable pro-bing icmp
// library. One echo request is outstanding at a time so latency
// attribution stays unambiguous.
type ProBingProber struct {
	addr    string
	timeout time.Duration
	size    int
}

// NewProber is the ProberFactory for the pro-bing backend
func NewProber(target net.IP, timeout time.Duration, size int) (Prober, error) {
	if size < minPayloadSize {
		size = minPayloadSize
	}

	return &ProBingProber{
		addr:    target.String(),
		timeout: timeout,
		size:    size,
	}, nil
}

// Probe sends a single echo request. Returns (nil, nil) on timeout; a
// setup failure such as missing raw socket permission returns an error
// and terminates the session.
func (p *ProBingProber) Probe(ctx context.Context, seq int) (*Reply, error) {
	pinger, err := probing.NewPinger(p.addr)

	if err != nil {
		return nil, err
	}

	pinger.Count = 1
	pinger.Timeout = p.timeout
	pinger.Size = p.size
	pinger.SetPrivileged(true)

	var reply *Reply

	pinger.OnRecv = func(pkt *probing.Packet) {
		reply = &Reply{
			Latency: uint64(pkt.Rtt.Milliseconds()),
			TTL:     pkt.TTL,
			Size:    pkt.Nbytes,
		}
	}

	if err := pinger.RunWithContext(ctx); err != nil {
		return nil, err
	}

	return reply, nil
}
