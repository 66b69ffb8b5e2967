package scanner

import (
	"errors"
	"net"

	"github.com/projectdiscovery/mapcidr"
)

// Hosts expands a cidr into the list of host addresses a scan run will
// dispatch. For prefixes shorter than /31 the network and broadcast
// addresses are excluded; /31 and /32 include every address. The length
// of the returned slice is exactly the progress denominator for the run.
func Hosts(cidr string) ([]net.IP, error) {
	_, ipnet, err := net.ParseCIDR(cidr)

	if err != nil {
		return nil, err
	}

	ones, bits := ipnet.Mask.Size()

	if bits != 32 {
		return nil, errors.New("only ipv4 cidr ranges are scannable")
	}

	addrs, err := mapcidr.IPAddresses(ipnet.String())

	if err != nil {
		return nil, err
	}

	if ones < 31 && len(addrs) > 2 {
		addrs = addrs[1 : len(addrs)-1]
	}

	ips := make([]net.IP, 0, len(addrs))

	for _, a := range addrs {
		ip := net.ParseIP(a)

		if ip == nil {
			continue
		}

		if v4 := ip.To4(); v4 != nil {
			ips = append(ips, v4)
		}
	}

	return ips, nil
}
