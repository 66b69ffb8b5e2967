package netinfo

//go:generate mockgen -destination=../mock/netinfo/mock_netinfo.go -package=mock_netinfo . Source

// InterfaceInfo is one network adapter as reported by the OS. The
// catalog replaces these wholesale on reload; consumers only ever see
// copies.
type InterfaceInfo struct {
	Name        string
	Description string
	MAC         string
	IPv4        []string
	IPv6        []string
	IsUp        bool
	SSID        string
	DHCPEnabled bool
	IsPhysical  bool
	Type        string
	CIDR        string
}

// Source queries the OS for network adapters
type Source interface {
	Interfaces() ([]InterfaceInfo, error)
}
