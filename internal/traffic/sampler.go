package traffic

import (
	"sort"
	"strings"
	"time"

	"github.com/netdash/netdash/internal/logger"
)

// DebounceThreshold is the minimum elapsed time between two counter
// reads before a fresh rate is computed. Below it the previous rate is
// retained to avoid division-by-near-zero jitter.
const DebounceThreshold = 100 * time.Millisecond

// ignoreKeywords filters adapters that only exist as loopbacks,
// tunnels, capture drivers, or duplicate driver mappings.
var ignoreKeywords = []string{
	"loopback",
	"pseudo",
	"isatap",
	"teredo",
	"npcap",
	"packet driver",
	"tpacket",
	"driver-",
	"lltdio",
	"rspndr",
	"virtual box",
	"vmware",
}

// Snapshot is one adapter's traffic state as of the last sample.
type Snapshot struct {
	Name      string
	BytesRecv uint64
	BytesSent uint64
	RxRate    float64
	TxRate    float64
	SessionRx uint64
	SessionTx uint64
}

type adapterState struct {
	lastRecv    uint64
	lastSent    uint64
	lastSample  time.Time
	rxRate      float64
	txRate      float64
	sessionRecv uint64
	sessionSent uint64
}

// Sampler diffs cumulative adapter counters into instantaneous rates.
// All methods are called from the tick loop; nothing here is safe for
// concurrent use.
type Sampler struct {
	source    CounterSource
	log       logger.Logger
	states    map[string]*adapterState
	snapshots []Snapshot
}

func NewSampler(source CounterSource) *Sampler {
	return &Sampler{
		source: source,
		log:    logger.New(),
		states: map[string]*adapterState{},
	}
}

// Update reads the counters and recomputes the per-adapter rates.
// Adapters seen for the first time get a zero rate and a session
// baseline equal to their current cumulative counters.
func (s *Sampler) Update() {
	counters, err := s.source.Read()

	if err != nil {
		s.log.Error().Err(err).Msg("failed to read interface counters")
		return
	}

	now := time.Now()
	snapshots := make([]Snapshot, 0, len(counters))

	for _, c := range counters {
		if ignored(c.Name) {
			continue
		}

		state, ok := s.states[c.Name]

		if !ok {
			state = &adapterState{
				lastRecv:    c.BytesRecv,
				lastSent:    c.BytesSent,
				lastSample:  now,
				sessionRecv: c.BytesRecv,
				sessionSent: c.BytesSent,
			}

			s.states[c.Name] = state
		} else if now.Sub(state.lastSample) > DebounceThreshold {
			elapsed := now.Sub(state.lastSample).Seconds()

			state.rxRate = rate(c.BytesRecv, state.lastRecv, elapsed)
			state.txRate = rate(c.BytesSent, state.lastSent, elapsed)
			state.lastRecv = c.BytesRecv
			state.lastSent = c.BytesSent
			state.lastSample = now
		}

		snapshots = append(snapshots, Snapshot{
			Name:      c.Name,
			BytesRecv: c.BytesRecv,
			BytesSent: c.BytesSent,
			RxRate:    state.rxRate,
			TxRate:    state.txRate,
			SessionRx: saturatingSub(c.BytesRecv, state.sessionRecv),
			SessionTx: saturatingSub(c.BytesSent, state.sessionSent),
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		if snapshots[i].RxRate != snapshots[j].RxRate {
			return snapshots[i].RxRate > snapshots[j].RxRate
		}

		return snapshots[i].Name < snapshots[j].Name
	})

	s.snapshots = snapshots
}

// Snapshots returns the adapters from the last update, sorted by
// receive rate descending then name.
func (s *Sampler) Snapshots() []Snapshot {
	values := make([]Snapshot, len(s.snapshots))

	copy(values, s.snapshots)

	return values
}

// Snapshot returns the snapshot for a single adapter by name.
func (s *Sampler) Snapshot(name string) (Snapshot, bool) {
	for _, snap := range s.snapshots {
		if snap.Name == name {
			return snap, true
		}
	}

	return Snapshot{}, false
}

// rate clamps to zero when the cumulative counter moved backwards,
// which happens when the OS resets it.
func rate(current, previous uint64, elapsed float64) float64 {
	if current < previous || elapsed <= 0 {
		return 0
	}

	return float64(current-previous) / elapsed
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}

	return a - b
}

func ignored(name string) bool {
	lower := strings.ToLower(name)

	for _, keyword := range ignoreKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}
