package traffic

//go:generate mockgen -destination=../mock/traffic/mock_traffic.go -package=mock_traffic . CounterSource

// Counters holds one adapter's cumulative byte counts as reported by
// the operating system.
type Counters struct {
	Name      string
	BytesRecv uint64
	BytesSent uint64
}

// CounterSource reads cumulative per-adapter counters
type CounterSource interface {
	Read() ([]Counters, error)
}
