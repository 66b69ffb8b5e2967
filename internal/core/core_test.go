package core_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/netdash/netdash/internal/config"
	"github.com/netdash/netdash/internal/core"
	"github.com/netdash/netdash/internal/dashboard"
	"github.com/netdash/netdash/internal/event"
	"github.com/netdash/netdash/internal/history"
	mock_config "github.com/netdash/netdash/internal/mock/config"
	mock_dashboard "github.com/netdash/netdash/internal/mock/dashboard"
	mock_history "github.com/netdash/netdash/internal/mock/history"
	mock_netinfo "github.com/netdash/netdash/internal/mock/netinfo"
	mock_scanner "github.com/netdash/netdash/internal/mock/scanner"
	mock_traffic "github.com/netdash/netdash/internal/mock/traffic"
	"github.com/netdash/netdash/internal/netinfo"
	"github.com/netdash/netdash/internal/ping"
	"github.com/netdash/netdash/internal/scanner"
	"github.com/netdash/netdash/internal/traffic"
	"github.com/stretchr/testify/assert"
)

type coreFixture struct {
	core           *core.Core
	events         *event.EventManager
	configService  *mock_config.MockService
	historyService *mock_history.MockService
}

func newFixture(ctrl *gomock.Controller, conf config.Config) *coreFixture {
	mockProber := mock_scanner.NewMockHostProber(ctrl)

	mockProber.EXPECT().
		Probe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ip net.IP) (string, bool) {
			return "aa:bb:cc:dd:ee:ff", true
		}).
		AnyTimes()

	mockResolver := mock_scanner.NewMockHostnameResolver(ctrl)

	mockResolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return("host.local").
		AnyTimes()

	mockSource := mock_netinfo.NewMockSource(ctrl)

	mockSource.EXPECT().Interfaces().Return([]netinfo.InterfaceInfo{}, nil).AnyTimes()

	mockCounters := mock_traffic.NewMockCounterSource(ctrl)

	mockCounters.EXPECT().Read().Return([]traffic.Counters{}, nil).AnyTimes()

	mockClient := mock_dashboard.NewMockClient(ctrl)

	mockPingProber := &timeoutProber{}

	factory := func(net.IP, time.Duration, int) (ping.Prober, error) {
		return mockPingProber, nil
	}

	configService := mock_config.NewMockService(ctrl)
	historyService := mock_history.NewMockService(ctrl)

	catalog := netinfo.NewCatalog(mockSource)
	sampler := traffic.NewSampler(mockCounters)
	netScanner := scanner.New(mockProber, mockResolver)
	pingEngine := ping.NewEngine(factory)
	dash := dashboard.New(catalog, mockCounters, mockClient)
	events := event.NewEventManager()

	c := core.New(
		conf,
		configService,
		events,
		catalog,
		sampler,
		netScanner,
		pingEngine,
		dash,
		historyService,
	)

	return &coreFixture{
		core:           c,
		events:         events,
		configService:  configService,
		historyService: historyService,
	}
}

type timeoutProber struct{}

func (p *timeoutProber) Probe(ctx context.Context, seq int) (*ping.Reply, error) {
	return nil, nil
}

func TestCore(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	conf := *config.Default()

	t.Run("applies configuration to the ping engine", func(st *testing.T) {
		fixture := newFixture(ctrl, conf)

		assert.Equal(st, conf.PingTarget, fixture.core.Ping().Target())
		assert.Equal(st, conf.PingIntervalMs, fixture.core.Ping().IntervalMs())
		assert.Equal(st, conf.PingTimeoutMs, fixture.core.Ping().TimeoutMs())
		assert.Equal(st, conf.PingPacketSize, fixture.core.Ping().PacketSize())
	})

	t.Run("persists a completed scan run", func(st *testing.T) {
		fixture := newFixture(ctrl, conf)

		saved := false

		fixture.historyService.EXPECT().
			SaveRun("10.10.0.0/30", 2, gomock.Any(), gomock.Any()).
			DoAndReturn(func(
				cidr string,
				total int,
				duration time.Duration,
				hosts []history.Host,
			) (*history.Record, error) {
				saved = true

				assert.Equal(st, 2, len(hosts))
				assert.Equal(st, "aa:bb:cc:dd:ee:ff", hosts[0].MAC)
				assert.Equal(st, "host.local", hosts[0].Hostname)

				return &history.Record{ID: 1}, nil
			})

		completeChan := make(chan event.Event, 1)

		fixture.events.RegisterListener(event.ScanCompleteEventType, completeChan)

		fixture.core.StartScan("10.10.0.0/30")

		done := false

		for i := 0; i < 200; i++ {
			fixture.core.Update()

			if fixture.core.Scanner().Status() == scanner.StatusDone && saved {
				done = true
				break
			}

			time.Sleep(10 * time.Millisecond)
		}

		assert.True(st, done)

		select {
		case evt := <-completeChan:
			assert.Equal(st, event.ScanCompleteEventType, evt.Type)
		case <-time.After(time.Second):
			st.Fatal("scan complete event never arrived")
		}
	})

	t.Run("update config persists and reapplies", func(st *testing.T) {
		fixture := newFixture(ctrl, conf)

		updated := conf
		updated.PingTarget = "1.1.1.1"
		updated.PingIntervalMs = 500

		fixture.configService.EXPECT().
			Update(&updated).
			Return(&updated, nil)

		err := fixture.core.UpdateConfig(updated)

		assert.NoError(st, err)
		assert.Equal(st, "1.1.1.1", fixture.core.Conf().PingTarget)
		assert.Equal(st, "1.1.1.1", fixture.core.Ping().Target())
		assert.Equal(st, 500, fixture.core.Ping().IntervalMs())
	})

	t.Run("stop ping emits event", func(st *testing.T) {
		fixture := newFixture(ctrl, conf)

		stoppedChan := make(chan event.Event, 1)

		fixture.events.RegisterListener(event.PingStoppedEventType, stoppedChan)

		fixture.core.StartPing()
		fixture.core.StopPing()

		select {
		case evt := <-stoppedChan:
			assert.Equal(st, event.PingStoppedEventType, evt.Type)
		case <-time.After(time.Second):
			st.Fatal("ping stopped event never arrived")
		}

		assert.False(st, fixture.core.Ping().Running())

		time.Sleep(150 * time.Millisecond)
	})
}
