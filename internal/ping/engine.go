package ping

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/netdash/netdash/internal/logger"
)

const (
	// MinIntervalMs lowest allowed send interval
	MinIntervalMs = 100
	// MaxIntervalMs highest allowed send interval
	MaxIntervalMs = 10000
	// MinTimeoutMs lowest allowed per-probe timeout
	MinTimeoutMs = 100
	// MaxTimeoutMs highest allowed per-probe timeout
	MaxTimeoutMs = 10000
	// MaxPacketSize largest allowed echo payload
	MaxPacketSize = 65500

	eventBufferSize = 100
)

type eventKind int

const (
	resultEvent eventKind = iota
	timeoutEvent
	errorEvent
)

// sessionEvent one outcome of one probing-loop iteration
type sessionEvent struct {
	kind    eventKind
	seq     uint64
	latency uint64
	ttl     int
	size    int
	err     string
}

// Engine continuously pings a single target and aggregates latency,
// jitter and loss statistics. The probing loop runs on its own
// goroutine and communicates exclusively through a bounded event
// channel plus an atomic cancellation flag; Update drains events on the
// tick loop where all shared state lives.
type Engine struct {
	log logger.Logger

	target     string
	intervalMs int
	timeoutMs  int
	packetSize int

	running   bool
	stats     *Stats
	cancelled *atomic.Bool
	events    chan sessionEvent
	newProber ProberFactory
}

// NewEngine returns a stopped engine with default settings
func NewEngine(factory ProberFactory) *Engine {
	return &Engine{
		log:        logger.New(),
		target:     "8.8.8.8",
		intervalMs: 1000,
		timeoutMs:  2000,
		packetSize: 32,
		stats:      NewStats(),
		newProber:  factory,
	}
}

// Running reports whether a session is active
func (e *Engine) Running() bool {
	return e.running
}

// Target returns the configured target
func (e *Engine) Target() string {
	return e.target
}

// IntervalMs returns the configured send interval
func (e *Engine) IntervalMs() int {
	return e.intervalMs
}

// TimeoutMs returns the configured per-probe timeout
func (e *Engine) TimeoutMs() int {
	return e.timeoutMs
}

// PacketSize returns the configured payload size
func (e *Engine) PacketSize() int {
	return e.packetSize
}

// Stats returns the current session statistics
func (e *Engine) Stats() *Stats {
	return e.stats
}

// SetTarget sets the ping destination; ignored while running
func (e *Engine) SetTarget(target string) {
	if e.running {
		return
	}

	e.target = target
}

// SetIntervalMs sets the send interval, clamped to [100,10000]
func (e *Engine) SetIntervalMs(ms int) {
	if e.running {
		return
	}

	e.intervalMs = clamp(ms, MinIntervalMs, MaxIntervalMs)
}

// SetTimeoutMs sets the per-probe timeout, clamped to [100,10000]
func (e *Engine) SetTimeoutMs(ms int) {
	if e.running {
		return
	}

	e.timeoutMs = clamp(ms, MinTimeoutMs, MaxTimeoutMs)
}

// SetPacketSize sets the echo payload size, clamped to [0,65500]
func (e *Engine) SetPacketSize(size int) {
	if e.running {
		return
	}

	e.packetSize = clamp(size, 0, MaxPacketSize)
}

// Start resets statistics and spawns the probing loop. No-op when a
// session is already running.
func (e *Engine) Start() {
	if e.running {
		return
	}

	e.running = true
	e.stats = NewStats()

	cancelled := &atomic.Bool{}
	events := make(chan sessionEvent, eventBufferSize)

	e.cancelled = cancelled
	e.events = events

	e.log.Info().
		Str("target", e.target).
		Int("intervalMs", e.intervalMs).
		Int("timeoutMs", e.timeoutMs).
		Int("size", e.packetSize).
		Msg("starting ping session")

	go e.loop(
		e.target,
		time.Duration(e.intervalMs)*time.Millisecond,
		time.Duration(e.timeoutMs)*time.Millisecond,
		e.packetSize,
		events,
		cancelled,
	)
}

// Stop raises the cancellation flag. The loop observes it before the
// next send and terminates within one interval period.
func (e *Engine) Stop() {
	if e.cancelled != nil {
		e.cancelled.Store(true)
	}

	e.running = false
}

// Update drains all available events into the statistics. Called once
// per tick.
func (e *Engine) Update() {
	if e.events == nil {
		return
	}

	for {
		select {
		case evt := <-e.events:
			e.apply(evt)
		default:
			return
		}
	}
}

func (e *Engine) apply(evt sessionEvent) {
	s := e.stats

	switch evt.kind {
	case resultEvent:
		s.Received++
		s.Sent = evt.seq + 1

		if !s.hasReply || evt.latency < s.MinLatency {
			s.MinLatency = evt.latency
		}

		if !s.hasReply || evt.latency > s.MaxLatency {
			s.MaxLatency = evt.latency
		}

		s.TotalLatency += evt.latency

		if s.hasReply {
			if evt.latency > s.PrevLatency {
				s.JitterSum += evt.latency - s.PrevLatency
			} else {
				s.JitterSum += s.PrevLatency - evt.latency
			}
		}

		s.hasReply = true
		s.PrevLatency = evt.latency
		s.LastLatency = evt.latency

		s.History.Push(evt.latency)
		s.Logs.Push(fmt.Sprintf(
			"Seq=%d bytes=%d ttl=%d time=%dms",
			evt.seq, evt.size, evt.ttl, evt.latency,
		))
	case timeoutEvent:
		s.Sent = evt.seq + 1
		s.History.Push(0)
		s.Logs.Push(fmt.Sprintf("Seq=%d Request timed out", evt.seq))
	case errorEvent:
		s.Logs.Push(fmt.Sprintf("Error: %s", evt.err))
		e.log.Warn().Str("target", e.target).Str("error", evt.err).Msg("ping session terminated")
		e.Stop()
	}
}

// loop is the probing task. It owns no shared state; outcomes travel
// through the event channel only.
func (e *Engine) loop(
	target string,
	interval time.Duration,
	timeout time.Duration,
	size int,
	events chan sessionEvent,
	cancelled *atomic.Bool,
) {
	ip, err := resolveTarget(target)

	if err != nil {
		send(events, sessionEvent{kind: errorEvent, err: err.Error()})
		return
	}

	prober, err := e.newProber(ip, timeout, size)

	if err != nil {
		send(events, sessionEvent{kind: errorEvent, err: err.Error()})
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for seq := uint64(0); ; seq++ {
		if cancelled.Load() {
			return
		}

		reply, err := prober.Probe(context.Background(), int(seq))

		switch {
		case err != nil:
			send(events, sessionEvent{kind: errorEvent, err: err.Error()})
			return
		case reply == nil:
			send(events, sessionEvent{kind: timeoutEvent, seq: seq})
		default:
			send(events, sessionEvent{
				kind:    resultEvent,
				seq:     seq,
				latency: reply.Latency,
				ttl:     reply.TTL,
				size:    reply.Size,
			})
		}

		<-ticker.C
	}
}

// send never blocks; an event dropped during a shutdown race is
// expected, not an error
func send(events chan sessionEvent, evt sessionEvent) {
	select {
	case events <- evt:
	default:
	}
}

// resolveTarget parses a literal address or resolves a hostname,
// first answer wins
func resolveTarget(target string) (net.IP, error) {
	if ip := net.ParseIP(target); ip != nil {
		return ip, nil
	}

	ips, err := net.LookupIP(target)

	if err != nil {
		return nil, fmt.Errorf("dns lookup failed: %w", err)
	}

	if len(ips) == 0 {
		return nil, fmt.Errorf("dns lookup returned no results for %s", target)
	}

	return ips[0], nil
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}

	if v > max {
		return max
	}

	return v
}
