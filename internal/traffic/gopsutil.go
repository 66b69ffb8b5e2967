package traffic

import (
	psnet "github.com/shirou/gopsutil/v3/net"
)

// SystemCounterSource reads cumulative counters from the OS via
// gopsutil.
type SystemCounterSource struct{}

func NewSystemCounterSource() *SystemCounterSource {
	return &SystemCounterSource{}
}

func (s *SystemCounterSource) Read() ([]Counters, error) {
	stats, err := psnet.IOCounters(true)

	if err != nil {
		return nil, err
	}

	counters := make([]Counters, 0, len(stats))

	for _, stat := range stats {
		counters = append(counters, Counters{
			Name:      stat.Name,
			BytesRecv: stat.BytesRecv,
			BytesSent: stat.BytesSent,
		})
	}

	return counters, nil
}
