package scanner

import (
	"context"
	"net"
	"strings"
	"time"
)

// DefaultResolveTimeout per-host deadline for a reverse lookup
const DefaultResolveTimeout = 2 * time.Second

// DNSResolver implements HostnameResolver using reverse dns lookups
type DNSResolver struct {
	timeout time.Duration
}

// NewDNSResolver returns a new DNSResolver
func NewDNSResolver(timeout time.Duration) *DNSResolver {
	if timeout <= 0 {
		timeout = DefaultResolveTimeout
	}

	return &DNSResolver{timeout: timeout}
}

// Resolve returns the first ptr record for the host or the empty string
func (r *DNSResolver) Resolve(ctx context.Context, ip net.IP) string {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	names, err := net.DefaultResolver.LookupAddr(ctx, ip.String())

	if err != nil || len(names) == 0 {
		return ""
	}

	return strings.TrimSuffix(names[0], ".")
}
