package scanner

import (
	"context"
	"encoding/binary"
	"net"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/netdash/netdash/internal/logger"
)

const (
	// DefaultConcurrency bounded parallelism used when none is configured
	DefaultConcurrency = 50
	// MinConcurrency lowest allowed probe parallelism
	MinConcurrency = 10
	// MaxConcurrency highest allowed probe parallelism
	MaxConcurrency = 500

	resultBufferSize = 256
)

// Scanner concurrently probes every host in a cidr range for
// reachability and resolves hostnames for the hosts that answer.
// Start/Stop may be called from the input side at any time; Update and
// all read accessors belong to the tick loop and are single-threaded.
type Scanner struct {
	prober   HostProber
	resolver HostnameResolver
	log      logger.Logger

	cidr     string
	status   Status
	results  []*Result
	seen     map[string]struct{}
	selected int

	total      uint64
	completed  *atomic.Uint64
	cancelled  *atomic.Bool
	resultChan chan *Result
	superseded chan struct{}
}

// New returns a new Scanner in the idle state
func New(prober HostProber, resolver HostnameResolver) *Scanner {
	return &Scanner{
		prober:   prober,
		resolver: resolver,
		log:      logger.New(),
		status:   StatusIdle,
		seen:     map[string]struct{}{},
		selected: -1,
	}
}

// SetTarget sets the cidr range for the next run. Validation happens
// lazily on Start.
func (s *Scanner) SetTarget(cidr string) {
	s.cidr = cidr
}

// Target returns the currently configured cidr range
func (s *Scanner) Target() string {
	return s.cidr
}

// Start begins a new run, superseding any prior run. The result channel
// and counters are recreated and the prior run's supersede channel is
// closed, releasing any of its probes still blocked on a send; their
// results are discarded. A malformed cidr yields a run with zero hosts
// that completes immediately as done.
func (s *Scanner) Start(concurrency int) {
	if s.status == StatusScanning {
		return
	}

	concurrency = clampConcurrency(concurrency)

	hosts, err := Hosts(s.cidr)

	if err != nil {
		s.log.Warn().Str("cidr", s.cidr).Err(err).Msg("scan target did not parse")
		hosts = nil
	}

	s.results = nil
	s.seen = map[string]struct{}{}
	s.selected = -1
	s.total = uint64(len(hosts))

	if s.superseded != nil {
		close(s.superseded)
		s.cancelled.Store(true)
	}

	completed := &atomic.Uint64{}
	cancelled := &atomic.Bool{}
	resultChan := make(chan *Result, resultBufferSize)
	superseded := make(chan struct{})

	s.completed = completed
	s.cancelled = cancelled
	s.resultChan = resultChan
	s.superseded = superseded
	s.status = StatusScanning

	s.log.Info().
		Str("cidr", s.cidr).
		Uint64("hosts", s.total).
		Int("concurrency", concurrency).
		Msg("starting subnet scan")

	go s.dispatch(hosts, concurrency, resultChan, superseded, completed, cancelled)
}

// Stop raises the cancellation flag for the current run. In-flight
// probes finish naturally; only scheduling of new probes stops. Safe to
// call at any time, including on an already-done run.
func (s *Scanner) Stop() {
	if s.cancelled != nil {
		s.cancelled.Store(true)
	}
}

// Update drains all available results and advances run status. Called
// once per tick; all status transitions happen here so they are
// race-free from the consumer's point of view.
func (s *Scanner) Update() {
	if s.resultChan == nil {
		return
	}

	added := 0

	for {
		done := false

		select {
		case r := <-s.resultChan:
			key := r.IP.String()

			if _, ok := s.seen[key]; !ok {
				s.seen[key] = struct{}{}
				s.results = append(s.results, r)
				added++
			}
		default:
			done = true
		}

		if done {
			break
		}
	}

	if added > 0 {
		sort.Slice(s.results, func(i, j int) bool {
			return ipValue(s.results[i].IP) < ipValue(s.results[j].IP)
		})

		if s.selected < 0 {
			s.selected = 0
		}
	}

	if s.status == StatusScanning {
		if s.completed.Load() >= s.total {
			s.status = StatusDone
		}

		if s.cancelled.Load() {
			s.status = StatusDone
		}
	}
}

// Status returns the current run status
func (s *Scanner) Status() Status {
	return s.status
}

// Results returns the hosts discovered so far, ordered by ascending ip
func (s *Scanner) Results() []*Result {
	return s.results
}

// Progress returns hosts completed and the precomputed total for the
// current run
func (s *Scanner) Progress() (uint64, uint64) {
	if s.completed == nil {
		return 0, 0
	}

	completed := s.completed.Load()

	// completed can never pass total but guard the display anyway
	if completed > s.total {
		completed = s.total
	}

	return completed, s.total
}

// ProgressRatio returns scan completion as a value in [0,1]
func (s *Scanner) ProgressRatio() float64 {
	completed, total := s.Progress()

	if total == 0 {
		return 0
	}

	ratio := float64(completed) / float64(total)

	if ratio > 1 {
		ratio = 1
	}

	return ratio
}

// Selected returns the cursor index into Results, -1 when empty
func (s *Scanner) Selected() int {
	return s.selected
}

// SelectNext moves the result cursor down, wrapping at the end
func (s *Scanner) SelectNext() {
	if len(s.results) == 0 {
		return
	}

	if s.selected >= len(s.results)-1 {
		s.selected = 0
		return
	}

	s.selected++
}

// SelectPrevious moves the result cursor up, wrapping at the start
func (s *Scanner) SelectPrevious() {
	if len(s.results) == 0 {
		return
	}

	if s.selected <= 0 {
		s.selected = len(s.results) - 1
		return
	}

	s.selected--
}

// dispatch schedules one bounded probe goroutine per host. The loop
// stops scheduling as soon as the cancellation flag is observed;
// already-dispatched probes run to completion.
func (s *Scanner) dispatch(
	hosts []net.IP,
	concurrency int,
	resultChan chan *Result,
	superseded chan struct{},
	completed *atomic.Uint64,
	cancelled *atomic.Bool,
) {
	semaphore := make(chan struct{}, concurrency)
	wg := &sync.WaitGroup{}

	for _, ip := range hosts {
		if cancelled.Load() {
			break
		}

		semaphore <- struct{}{} // acquire
		wg.Add(1)

		go func(ip net.IP) {
			defer func() {
				<-semaphore // release
				wg.Done()
			}()

			s.probe(ip, resultChan, superseded, completed, cancelled)
		}(ip)
	}

	wg.Wait()
}

// probe runs the two-stage pipeline for a single host. Completion is
// counted exactly once per dispatched host regardless of which stage it
// stopped at, cancellation included. The send blocks under backpressure
// so every reachable host reports; it is abandoned only when a newer
// run supersedes this one and nothing will drain the channel again.
func (s *Scanner) probe(
	ip net.IP,
	resultChan chan *Result,
	superseded chan struct{},
	completed *atomic.Uint64,
	cancelled *atomic.Bool,
) {
	defer completed.Add(1)

	ctx := context.Background()

	mac, ok := s.prober.Probe(ctx, ip)

	if !ok {
		return
	}

	if cancelled.Load() {
		return
	}

	hostname := s.resolver.Resolve(ctx, ip)

	select {
	case resultChan <- &Result{IP: ip, MAC: mac, Hostname: hostname}:
	case <-superseded:
	}
}

func clampConcurrency(concurrency int) int {
	if concurrency == 0 {
		return DefaultConcurrency
	}

	if concurrency < MinConcurrency {
		return MinConcurrency
	}

	if concurrency > MaxConcurrency {
		return MaxConcurrency
	}

	return concurrency
}

func ipValue(ip net.IP) uint32 {
	v4 := ip.To4()

	if v4 == nil {
		return 0
	}

	return binary.BigEndian.Uint32(v4)
}
