package dashboard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/netdash/netdash/internal/dashboard"
	mock_dashboard "github.com/netdash/netdash/internal/mock/dashboard"
	mock_netinfo "github.com/netdash/netdash/internal/mock/netinfo"
	mock_traffic "github.com/netdash/netdash/internal/mock/traffic"
	"github.com/netdash/netdash/internal/netinfo"
	"github.com/netdash/netdash/internal/traffic"
	"github.com/stretchr/testify/assert"
)

func waitForFetch(st *testing.T, d *dashboard.Dashboard) {
	for i := 0; i < 200; i++ {
		d.Update()

		if d.FetchState() != dashboard.FetchLoading {
			return
		}

		time.Sleep(10 * time.Millisecond)
	}

	st.Fatal("public ip lookup never completed")
}

func newCatalog(ctrl *gomock.Controller, infos []netinfo.InterfaceInfo) *netinfo.Catalog {
	mockSource := mock_netinfo.NewMockSource(ctrl)

	mockSource.EXPECT().Interfaces().Return(infos, nil).AnyTimes()

	catalog := netinfo.NewCatalog(mockSource)
	catalog.Reload()

	return catalog
}

func TestDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	activeInfos := []netinfo.InterfaceInfo{
		{
			Name:       "eth0",
			IsUp:       true,
			IsPhysical: true,
			IPv4:       []string{"192.168.1.10"},
		},
	}

	t.Run("successful lookup lands on update", func(st *testing.T) {
		mockClient := mock_dashboard.NewMockClient(ctrl)
		mockCounters := mock_traffic.NewMockCounterSource(ctrl)

		mockCounters.EXPECT().Read().Return([]traffic.Counters{}, nil).AnyTimes()

		mockClient.EXPECT().Fetch(gomock.Any()).Return(&dashboard.PublicInfo{
			IP:      "203.0.113.9",
			Country: "Netherlands",
			City:    "Amsterdam",
			ISP:     "ExampleNet",
		}, nil)

		d := dashboard.New(newCatalog(ctrl, activeInfos), mockCounters, mockClient)

		assert.Equal(st, dashboard.FetchLoading, d.FetchState())

		d.FetchPublicIP()

		waitForFetch(st, d)

		assert.Equal(st, dashboard.FetchSuccess, d.FetchState())
		assert.Equal(st, "203.0.113.9", d.PublicInfo().IP)
		assert.Equal(st, "Amsterdam", d.PublicInfo().City)
	})

	t.Run("failed lookup records the error", func(st *testing.T) {
		mockClient := mock_dashboard.NewMockClient(ctrl)
		mockCounters := mock_traffic.NewMockCounterSource(ctrl)

		mockCounters.EXPECT().Read().Return([]traffic.Counters{}, nil).AnyTimes()

		mockClient.EXPECT().
			Fetch(gomock.Any()).
			Return(nil, errors.New("connection refused"))

		d := dashboard.New(newCatalog(ctrl, activeInfos), mockCounters, mockClient)
		d.FetchPublicIP()

		waitForFetch(st, d)

		assert.Equal(st, dashboard.FetchFailed, d.FetchState())
		assert.Contains(st, d.FetchError(), "connection refused")
		assert.Nil(st, d.PublicInfo())
	})

	t.Run("active adapter rates respect the debounce window", func(st *testing.T) {
		mockClient := mock_dashboard.NewMockClient(ctrl)
		mockCounters := mock_traffic.NewMockCounterSource(ctrl)

		var recv uint64 = 1000

		mockCounters.EXPECT().Read().DoAndReturn(func() ([]traffic.Counters, error) {
			recv += 30000
			return []traffic.Counters{
				{Name: "eth0", BytesRecv: recv, BytesSent: recv / 2},
			}, nil
		}).AnyTimes()

		d := dashboard.New(newCatalog(ctrl, activeInfos), mockCounters, mockClient)

		d.Update()

		rx, tx := d.Rates()

		assert.Equal(st, 0.0, rx)
		assert.Equal(st, 0.0, tx)

		d.Update()

		rx, _ = d.Rates()

		assert.Equal(st, 0.0, rx)

		time.Sleep(600 * time.Millisecond)

		d.Update()

		rx, tx = d.Rates()

		assert.Greater(st, rx, 0.0)
		assert.Greater(st, tx, 0.0)

		active, ok := d.ActiveInterface()

		assert.True(st, ok)
		assert.Equal(st, "eth0", active.Name)
	})

	t.Run("no active adapter leaves rates at zero", func(st *testing.T) {
		mockClient := mock_dashboard.NewMockClient(ctrl)
		mockCounters := mock_traffic.NewMockCounterSource(ctrl)

		d := dashboard.New(newCatalog(ctrl, []netinfo.InterfaceInfo{}), mockCounters, mockClient)

		d.Update()

		rx, tx := d.Rates()

		assert.Equal(st, 0.0, rx)
		assert.Equal(st, 0.0, tx)
	})

	t.Run("detects proxy from environment", func(st *testing.T) {
		st.Setenv("HTTP_PROXY", "http://127.0.0.1:7890")

		mockClient := mock_dashboard.NewMockClient(ctrl)
		mockCounters := mock_traffic.NewMockCounterSource(ctrl)

		d := dashboard.New(newCatalog(ctrl, activeInfos), mockCounters, mockClient)

		assert.Equal(st, "http://127.0.0.1:7890", d.Proxy())
	})

	t.Run("host info is populated", func(st *testing.T) {
		mockClient := mock_dashboard.NewMockClient(ctrl)
		mockCounters := mock_traffic.NewMockCounterSource(ctrl)

		d := dashboard.New(newCatalog(ctrl, activeInfos), mockCounters, mockClient)

		assert.NotEmpty(st, d.HostInfo().Hostname)
	})
}
