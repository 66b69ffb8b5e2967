package scanner

import (
	"context"
	"net"
	"net/netip"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/mdlayher/arp"
	"github.com/netdash/netdash/internal/logger"
)

// DefaultProbeTimeout per-host deadline for an arp request
const DefaultProbeTimeout = time.Second

// ARPProber implements HostProber using arp requests on a single
// interface, falling back to the OS neighbor cache when the raw socket
// is unavailable (no root).
type ARPProber struct {
	ifaceName string
	timeout   time.Duration
	log       logger.Logger
}

// NewARPProber returns a new ARPProber bound to the given interface
func NewARPProber(ifaceName string, timeout time.Duration) *ARPProber {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	return &ARPProber{
		ifaceName: ifaceName,
		timeout:   timeout,
		log:       logger.New(),
	}
}

// Probe resolves the mac address for a host. A miss or timeout returns
// ok = false; the caller treats that as an unreachable host.
func (p *ARPProber) Probe(ctx context.Context, ip net.IP) (string, bool) {
	v4 := ip.To4()

	if v4 == nil {
		return "", false
	}

	iface, err := net.InterfaceByName(p.ifaceName)

	if err != nil {
		return "", false
	}

	client, err := arp.Dial(iface)

	if err != nil {
		// AF_PACKET sockets need privileges; the neighbor cache is the
		// best we can do without them
		return lookupNeighborCache(v4)
	}

	defer client.Close()

	if err := client.SetDeadline(time.Now().Add(p.timeout)); err != nil {
		return "", false
	}

	addr, ok := netip.AddrFromSlice(v4)

	if !ok {
		return "", false
	}

	mac, err := client.Resolve(addr)

	if err != nil {
		return lookupNeighborCache(v4)
	}

	return mac.String(), true
}

// lookupNeighborCache reads the OS arp table for a previously observed
// neighbor. Only implemented for linux; other platforms report a miss.
func lookupNeighborCache(ip net.IP) (string, bool) {
	if runtime.GOOS != "linux" {
		return "", false
	}

	raw, err := os.ReadFile("/proc/net/arp")

	if err != nil {
		return "", false
	}

	target := ip.String()

	for i, line := range strings.Split(string(raw), "\n") {
		if i == 0 {
			// header row
			continue
		}

		fields := strings.Fields(line)

		if len(fields) < 4 || fields[0] != target {
			continue
		}

		mac := strings.ToLower(fields[3])

		if mac == "" || mac == "00:00:00:00:00:00" {
			return "", false
		}

		return mac, true
	}

	return "", false
}
