package ping

import "github.com/netdash/netdash/internal/ring"

const (
	// HistorySize bound on the latency history ring
	HistorySize = 100
	// LogSize bound on the session log ring
	LogSize = 20
)

// Stats aggregate session statistics. Mutated only by the engine's
// drain step; safe to read from the tick loop.
type Stats struct {
	Sent         uint64
	Received     uint64
	MinLatency   uint64
	MaxLatency   uint64
	TotalLatency uint64
	JitterSum    uint64
	LastLatency  uint64
	PrevLatency  uint64

	hasReply bool

	// History holds the last round trip times in ms; 0 encodes a
	// timeout so the sparkline visibly dips
	History *ring.Ring[uint64]
	// Logs holds human readable lines for the session log pane
	Logs *ring.Ring[string]
}

// NewStats returns zeroed stats with empty bounded rings
func NewStats() *Stats {
	return &Stats{
		History: ring.New[uint64](HistorySize),
		Logs:    ring.New[string](LogSize),
	}
}

// AvgLatency mean round trip time in ms, 0 before the first reply
func (s *Stats) AvgLatency() uint64 {
	if s.Received == 0 {
		return 0
	}

	return s.TotalLatency / s.Received
}

// AvgJitter mean absolute successive latency difference in ms. Defined
// as 0 until at least two replies have arrived.
func (s *Stats) AvgJitter() uint64 {
	if s.Received <= 1 {
		return 0
	}

	return s.JitterSum / (s.Received - 1)
}

// LossPercent fraction of sent probes with no reply, as a percentage
func (s *Stats) LossPercent() float64 {
	if s.Sent == 0 {
		return 0
	}

	return float64(s.Sent-s.Received) / float64(s.Sent) * 100
}
