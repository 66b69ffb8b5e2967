package netinfo

import (
	"net"
	"sort"
	"strings"

	psnet "github.com/shirou/gopsutil/v3/net"
)

var virtualPrefixes = []string{
	"docker",
	"veth",
	"br-",
	"virbr",
	"vbox",
	"vmnet",
	"tun",
	"tap",
	"wg",
	"zt",
	"tailscale",
}

// SystemSource enumerates adapters via gopsutil.
type SystemSource struct{}

func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

func (s *SystemSource) Interfaces() ([]InterfaceInfo, error) {
	stats, err := psnet.Interfaces()

	if err != nil {
		return nil, err
	}

	infos := make([]InterfaceInfo, 0, len(stats))

	for _, stat := range stats {
		flags := flagSet(stat.Flags)

		if flags["loopback"] {
			continue
		}

		var ipv4, ipv6 []string

		cidr := ""

		for _, addr := range stat.Addrs {
			ip, ipnet, parseErr := net.ParseCIDR(addr.Addr)

			if parseErr != nil {
				ip = net.ParseIP(addr.Addr)
				ipnet = nil
			}

			if ip == nil {
				continue
			}

			if v4 := ip.To4(); v4 != nil {
				ipv4 = append(ipv4, v4.String())

				if cidr == "" && ipnet != nil {
					cidr = ipnet.String()
				}
			} else {
				ipv6 = append(ipv6, ip.String())
			}
		}

		ifaceType, physical := classify(stat.Name)

		infos = append(infos, InterfaceInfo{
			Name:        stat.Name,
			Description: stat.Name,
			MAC:         stat.HardwareAddr,
			IPv4:        ipv4,
			IPv6:        ipv6,
			IsUp:        flags["up"],
			IsPhysical:  physical,
			Type:        ifaceType,
			CIDR:        cidr,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].IsUp != infos[j].IsUp {
			return infos[i].IsUp
		}

		return infos[i].Name < infos[j].Name
	})

	return infos, nil
}

func flagSet(flags []string) map[string]bool {
	set := map[string]bool{}

	for _, f := range flags {
		set[strings.ToLower(f)] = true
	}

	return set
}

// classify guesses the adapter type from its name. Linux and macOS
// only expose the kernel name, so prefix conventions are the best
// signal available.
func classify(name string) (string, bool) {
	lower := strings.ToLower(name)

	for _, prefix := range virtualPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return "Virtual", false
		}
	}

	switch {
	case strings.HasPrefix(lower, "wl") || strings.HasPrefix(lower, "wifi") || strings.HasPrefix(lower, "ath"):
		return "Wi-Fi", true
	case strings.HasPrefix(lower, "en") || strings.HasPrefix(lower, "eth"):
		return "Ethernet", true
	case strings.HasPrefix(lower, "ppp") || strings.HasPrefix(lower, "wwan"):
		return "Mobile", true
	}

	return "Other", false
}
