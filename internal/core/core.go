package core

import (
	"time"

	"github.com/netdash/netdash/internal/config"
	"github.com/netdash/netdash/internal/dashboard"
	"github.com/netdash/netdash/internal/event"
	"github.com/netdash/netdash/internal/history"
	"github.com/netdash/netdash/internal/logger"
	"github.com/netdash/netdash/internal/netinfo"
	"github.com/netdash/netdash/internal/ping"
	"github.com/netdash/netdash/internal/scanner"
	"github.com/netdash/netdash/internal/traffic"
)

// Core composes the diagnostic components and drives them from a
// single tick. UI commands call into Core; Core never calls back into
// rendering.
type Core struct {
	log            logger.Logger
	conf           config.Config
	configService  config.Service
	events         event.Manager
	catalog        *netinfo.Catalog
	sampler        *traffic.Sampler
	scanner        *scanner.Scanner
	ping           *ping.Engine
	dash           *dashboard.Dashboard
	historyService history.Service

	prevScanStatus scanner.Status
	scanStarted    time.Time
}

// New returns a new core module for the given configuration
func New(
	conf config.Config,
	configService config.Service,
	events event.Manager,
	catalog *netinfo.Catalog,
	sampler *traffic.Sampler,
	netScanner *scanner.Scanner,
	pingEngine *ping.Engine,
	dash *dashboard.Dashboard,
	historyService history.Service,
) *Core {
	c := &Core{
		log:            logger.New(),
		conf:           conf,
		configService:  configService,
		events:         events,
		catalog:        catalog,
		sampler:        sampler,
		scanner:        netScanner,
		ping:           pingEngine,
		dash:           dash,
		historyService: historyService,
		prevScanStatus: netScanner.Status(),
	}

	c.applyConf()

	return c
}

func (c *Core) Conf() config.Config {
	return c.conf
}

// UpdateConfig persists the new configuration and applies it to the
// probing components.
func (c *Core) UpdateConfig(conf config.Config) error {
	updated, err := c.configService.Update(&conf)

	if err != nil {
		return err
	}

	c.conf = *updated

	c.applyConf()

	return nil
}

func (c *Core) Catalog() *netinfo.Catalog {
	return c.catalog
}

func (c *Core) Traffic() *traffic.Sampler {
	return c.sampler
}

func (c *Core) Scanner() *scanner.Scanner {
	return c.scanner
}

func (c *Core) Ping() *ping.Engine {
	return c.ping
}

func (c *Core) Dashboard() *dashboard.Dashboard {
	return c.dash
}

func (c *Core) History() history.Service {
	return c.historyService
}

func (c *Core) Events() event.Manager {
	return c.events
}

// StartScan begins a new scan run against the given network
func (c *Core) StartScan(cidr string) {
	c.scanner.SetTarget(cidr)
	c.scanStarted = time.Now()
	c.scanner.Start(c.conf.ScanConcurrency)
}

func (c *Core) StopScan() {
	c.scanner.Stop()
}

func (c *Core) StartPing() {
	c.ping.Start()
}

func (c *Core) StopPing() {
	c.ping.Stop()
	c.events.Send(event.Event{Type: event.PingStoppedEventType})
}

// Stop terminates all background probing activity
func (c *Core) Stop() {
	c.scanner.Stop()
	c.ping.Stop()
}

// Update is the tick driver. It drains every component's pending
// events into visible state and persists a scan run the tick it
// completes.
func (c *Core) Update() {
	c.sampler.Update()
	c.scanner.Update()
	c.ping.Update()
	c.dash.Update()

	status := c.scanner.Status()

	if c.prevScanStatus == scanner.StatusScanning && status == scanner.StatusDone {
		c.saveScanRun()
		c.events.Send(event.Event{Type: event.ScanCompleteEventType})
	}

	c.prevScanStatus = status
}

func (c *Core) applyConf() {
	c.ping.SetTarget(c.conf.PingTarget)
	c.ping.SetIntervalMs(c.conf.PingIntervalMs)
	c.ping.SetTimeoutMs(c.conf.PingTimeoutMs)
	c.ping.SetPacketSize(c.conf.PingPacketSize)
}

func (c *Core) saveScanRun() {
	results := c.scanner.Results()
	hosts := make([]history.Host, 0, len(results))

	for _, r := range results {
		hosts = append(hosts, history.Host{
			IP:       r.IP.String(),
			MAC:      r.MAC,
			Hostname: r.Hostname,
		})
	}

	_, total := c.scanner.Progress()

	_, err := c.historyService.SaveRun(
		c.scanner.Target(),
		int(total),
		time.Since(c.scanStarted),
		hosts,
	)

	if err != nil {
		c.log.Error().Err(err).Msg("failed to save scan record")
		c.events.ReportError(err)
	}
}
