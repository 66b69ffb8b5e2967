package netinfo

import (
	"fmt"
	"net"

	"github.com/jackpal/gateway"
	"github.com/netdash/netdash/internal/logger"
)

// FallbackCIDR is scanned when no adapter yields a usable network.
const FallbackCIDR = "192.168.1.0/24"

// Catalog holds the current adapter snapshots and the cursor for the
// interface list view. Read-mostly; refreshed on demand from the tick
// loop.
type Catalog struct {
	source     Source
	log        logger.Logger
	interfaces []InterfaceInfo
	selected   int
}

func NewCatalog(source Source) *Catalog {
	return &Catalog{
		source: source,
		log:    logger.New(),
	}
}

// Reload replaces the adapter snapshots wholesale, clamping the
// selection cursor into the new range.
func (c *Catalog) Reload() {
	infos, err := c.source.Interfaces()

	if err != nil {
		c.log.Error().Err(err).Msg("failed to enumerate interfaces")
		return
	}

	c.interfaces = infos

	if c.selected >= len(infos) {
		c.selected = len(infos) - 1
	}

	if c.selected < 0 && len(infos) > 0 {
		c.selected = 0
	}
}

func (c *Catalog) Interfaces() []InterfaceInfo {
	values := make([]InterfaceInfo, len(c.interfaces))

	copy(values, c.interfaces)

	return values
}

func (c *Catalog) Selected() int {
	return c.selected
}

func (c *Catalog) SelectNext() {
	if len(c.interfaces) == 0 {
		return
	}

	c.selected = (c.selected + 1) % len(c.interfaces)
}

func (c *Catalog) SelectPrevious() {
	if len(c.interfaces) == 0 {
		return
	}

	c.selected = (c.selected - 1 + len(c.interfaces)) % len(c.interfaces)
}

// Active returns the adapter most likely to carry the machine's
// traffic. Adapters are scored on state, physicality, and addressing;
// the highest score wins, ties going to the reload sort order.
func (c *Catalog) Active() (InterfaceInfo, bool) {
	best := InterfaceInfo{}
	bestScore := -1

	for _, info := range c.interfaces {
		s := score(info)

		if s > bestScore {
			best = info
			bestScore = s
		}
	}

	return best, bestScore >= 0
}

// DefaultCIDR derives a /24 scan target from the active adapter's
// first IPv4 address.
func (c *Catalog) DefaultCIDR() string {
	active, ok := c.Active()

	if !ok || len(active.IPv4) == 0 {
		return FallbackCIDR
	}

	ip := net.ParseIP(active.IPv4[0])

	if ip == nil {
		return FallbackCIDR
	}

	_, ipnet, err := net.ParseCIDR(fmt.Sprintf("%s/24", ip.String()))

	if err != nil {
		return FallbackCIDR
	}

	return ipnet.String()
}

// Gateway returns the default route's gateway address, or empty when
// discovery fails.
func (c *Catalog) Gateway() string {
	ip, err := gateway.DiscoverGateway()

	if err != nil {
		c.log.Debug().Err(err).Msg("gateway discovery failed")
		return ""
	}

	return ip.String()
}

func score(info InterfaceInfo) int {
	s := 0

	if info.IsUp {
		s += 10
	}

	if info.IsPhysical {
		s += 5
	}

	if len(info.IPv4) > 0 {
		s += 5
	}

	if info.DHCPEnabled {
		s++
	}

	return s
}
