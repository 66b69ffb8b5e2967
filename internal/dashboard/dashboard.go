package dashboard

import (
	"context"
	"os"
	"time"

	"github.com/netdash/netdash/internal/logger"
	"github.com/netdash/netdash/internal/netinfo"
	"github.com/netdash/netdash/internal/traffic"
	"github.com/shirou/gopsutil/v3/host"
)

// RateDebounce is the minimum elapsed time between rate recomputations
// for the active adapter shown on the dashboard.
const RateDebounce = 500 * time.Millisecond

const fetchTimeout = 10 * time.Second

// FetchState tracks the public address lookup lifecycle.
type FetchState string

const (
	FetchLoading FetchState = "loading"
	FetchSuccess FetchState = "success"
	FetchFailed  FetchState = "failed"
)

// HostInfo describes the local machine.
type HostInfo struct {
	Hostname  string
	OS        string
	Platform  string
	OSVersion string
}

type fetchResult struct {
	info *PublicInfo
	err  error
}

type rateState struct {
	lastRecv   uint64
	lastSent   uint64
	lastSample time.Time
	rxRate     float64
	txRate     float64
}

// Dashboard composes the interface catalog, the active adapter's
// traffic rates, the host identity, and a best-effort public address
// lookup into one snapshot the overview page renders.
type Dashboard struct {
	log      logger.Logger
	catalog  *netinfo.Catalog
	counters traffic.CounterSource
	client   Client

	hostInfo HostInfo
	proxy    string

	fetchState FetchState
	publicInfo *PublicInfo
	fetchErr   string
	results    chan fetchResult

	activeName string
	rates      *rateState
}

func New(catalog *netinfo.Catalog, counters traffic.CounterSource, client Client) *Dashboard {
	d := &Dashboard{
		log:        logger.New(),
		catalog:    catalog,
		counters:   counters,
		client:     client,
		fetchState: FetchLoading,
		results:    make(chan fetchResult, 1),
	}

	d.loadHostInfo()
	d.detectProxy()

	return d
}

func (d *Dashboard) HostInfo() HostInfo {
	return d.hostInfo
}

// Proxy returns the detected proxy setting, empty when none is
// configured.
func (d *Dashboard) Proxy() string {
	return d.proxy
}

func (d *Dashboard) FetchState() FetchState {
	return d.fetchState
}

func (d *Dashboard) PublicInfo() *PublicInfo {
	return d.publicInfo
}

func (d *Dashboard) FetchError() string {
	return d.fetchErr
}

// ActiveInterface returns the adapter the dashboard tracks rates for.
func (d *Dashboard) ActiveInterface() (netinfo.InterfaceInfo, bool) {
	return d.catalog.Active()
}

// Rates returns the active adapter's receive and transmit rates in
// bytes per second.
func (d *Dashboard) Rates() (float64, float64) {
	if d.rates == nil {
		return 0, 0
	}

	return d.rates.rxRate, d.rates.txRate
}

// FetchPublicIP starts an asynchronous public address lookup. The
// result lands in the next Update that follows its completion.
func (d *Dashboard) FetchPublicIP() {
	d.fetchState = FetchLoading
	d.fetchErr = ""

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)

		defer cancel()

		info, err := d.client.Fetch(ctx)

		select {
		case d.results <- fetchResult{info: info, err: err}:
		default:
		}
	}()
}

// Refresh re-detects the proxy and restarts the public lookup. Bound
// to the overview page's refresh key.
func (d *Dashboard) Refresh() {
	d.detectProxy()
	d.FetchPublicIP()
}

// Update drains any completed lookup and recomputes the active
// adapter's traffic rates.
func (d *Dashboard) Update() {
	select {
	case result := <-d.results:
		if result.err != nil {
			d.fetchState = FetchFailed
			d.fetchErr = result.err.Error()
			d.log.Warn().Err(result.err).Msg("public ip lookup failed")
		} else {
			d.fetchState = FetchSuccess
			d.publicInfo = result.info
		}
	default:
	}

	d.updateRates()
}

func (d *Dashboard) updateRates() {
	active, ok := d.catalog.Active()

	if !ok {
		return
	}

	if active.Name != d.activeName {
		d.activeName = active.Name
		d.rates = nil
	}

	counters, err := d.counters.Read()

	if err != nil {
		d.log.Error().Err(err).Msg("failed to read interface counters")
		return
	}

	for _, c := range counters {
		if c.Name != active.Name {
			continue
		}

		now := time.Now()

		if d.rates == nil {
			d.rates = &rateState{
				lastRecv:   c.BytesRecv,
				lastSent:   c.BytesSent,
				lastSample: now,
			}

			return
		}

		if now.Sub(d.rates.lastSample) > RateDebounce {
			elapsed := now.Sub(d.rates.lastSample).Seconds()

			d.rates.rxRate = rateOver(c.BytesRecv, d.rates.lastRecv, elapsed)
			d.rates.txRate = rateOver(c.BytesSent, d.rates.lastSent, elapsed)
			d.rates.lastRecv = c.BytesRecv
			d.rates.lastSent = c.BytesSent
			d.rates.lastSample = now
		}

		return
	}
}

func (d *Dashboard) loadHostInfo() {
	info, err := host.Info()

	if err != nil {
		d.log.Warn().Err(err).Msg("failed to read host info")
		return
	}

	d.hostInfo = HostInfo{
		Hostname:  info.Hostname,
		OS:        info.OS,
		Platform:  info.Platform,
		OSVersion: info.PlatformVersion,
	}
}

func (d *Dashboard) detectProxy() {
	for _, key := range []string{"HTTP_PROXY", "http_proxy", "HTTPS_PROXY", "https_proxy"} {
		if value := os.Getenv(key); value != "" {
			d.proxy = value
			return
		}
	}

	d.proxy = ""
}

func rateOver(current, previous uint64, elapsed float64) float64 {
	if current < previous || elapsed <= 0 {
		return 0
	}

	return float64(current-previous) / elapsed
}
