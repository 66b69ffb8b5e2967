package traffic_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	mock_traffic "github.com/netdash/netdash/internal/mock/traffic"
	"github.com/netdash/netdash/internal/traffic"
	"github.com/stretchr/testify/assert"
)

func TestSampler(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("first sighting reports zero rate", func(st *testing.T) {
		mockSource := mock_traffic.NewMockCounterSource(ctrl)

		mockSource.EXPECT().Read().Return([]traffic.Counters{
			{Name: "eth0", BytesRecv: 1000, BytesSent: 500},
		}, nil)

		sampler := traffic.NewSampler(mockSource)
		sampler.Update()

		snapshots := sampler.Snapshots()

		assert.Equal(st, 1, len(snapshots))
		assert.Equal(st, "eth0", snapshots[0].Name)
		assert.Equal(st, 0.0, snapshots[0].RxRate)
		assert.Equal(st, 0.0, snapshots[0].TxRate)
		assert.Equal(st, uint64(0), snapshots[0].SessionRx)
		assert.Equal(st, uint64(0), snapshots[0].SessionTx)
	})

	t.Run("computes rates after the debounce threshold", func(st *testing.T) {
		mockSource := mock_traffic.NewMockCounterSource(ctrl)

		mockSource.EXPECT().Read().Return([]traffic.Counters{
			{Name: "eth0", BytesRecv: 1000, BytesSent: 500},
		}, nil)

		mockSource.EXPECT().Read().Return([]traffic.Counters{
			{Name: "eth0", BytesRecv: 2500, BytesSent: 1100},
		}, nil)

		sampler := traffic.NewSampler(mockSource)
		sampler.Update()

		time.Sleep(150 * time.Millisecond)

		sampler.Update()

		snap, ok := sampler.Snapshot("eth0")

		assert.True(st, ok)
		assert.Greater(st, snap.RxRate, 0.0)
		assert.Greater(st, snap.TxRate, 0.0)

		// 1500 bytes over roughly 0.15s
		assert.InDelta(st, 10000.0, snap.RxRate, 5000.0)
		assert.Equal(st, uint64(1500), snap.SessionRx)
		assert.Equal(st, uint64(600), snap.SessionTx)
	})

	t.Run("sub-threshold update retains the previous rate", func(st *testing.T) {
		mockSource := mock_traffic.NewMockCounterSource(ctrl)

		mockSource.EXPECT().Read().Return([]traffic.Counters{
			{Name: "eth0", BytesRecv: 1000, BytesSent: 500},
		}, nil)

		mockSource.EXPECT().Read().Return([]traffic.Counters{
			{Name: "eth0", BytesRecv: 2000, BytesSent: 1000},
		}, nil).Times(2)

		sampler := traffic.NewSampler(mockSource)
		sampler.Update()

		time.Sleep(150 * time.Millisecond)

		sampler.Update()

		before, _ := sampler.Snapshot("eth0")

		sampler.Update()

		after, ok := sampler.Snapshot("eth0")

		assert.True(st, ok)
		assert.Equal(st, before.RxRate, after.RxRate)
		assert.Equal(st, before.TxRate, after.TxRate)
	})

	t.Run("counter reset clamps the rate to zero", func(st *testing.T) {
		mockSource := mock_traffic.NewMockCounterSource(ctrl)

		mockSource.EXPECT().Read().Return([]traffic.Counters{
			{Name: "eth0", BytesRecv: 10000, BytesSent: 10000},
		}, nil)

		mockSource.EXPECT().Read().Return([]traffic.Counters{
			{Name: "eth0", BytesRecv: 100, BytesSent: 100},
		}, nil)

		sampler := traffic.NewSampler(mockSource)
		sampler.Update()

		time.Sleep(150 * time.Millisecond)

		sampler.Update()

		snap, ok := sampler.Snapshot("eth0")

		assert.True(st, ok)
		assert.Equal(st, 0.0, snap.RxRate)
		assert.Equal(st, 0.0, snap.TxRate)
		assert.Equal(st, uint64(0), snap.SessionRx)
	})

	t.Run("filters synthetic adapters", func(st *testing.T) {
		mockSource := mock_traffic.NewMockCounterSource(ctrl)

		mockSource.EXPECT().Read().Return([]traffic.Counters{
			{Name: "Software Loopback Interface"},
			{Name: "Teredo Tunneling Pseudo-Interface"},
			{Name: "Npcap Loopback Adapter"},
			{Name: "VMware Network Adapter"},
			{Name: "eth0", BytesRecv: 1, BytesSent: 1},
		}, nil)

		sampler := traffic.NewSampler(mockSource)
		sampler.Update()

		snapshots := sampler.Snapshots()

		assert.Equal(st, 1, len(snapshots))
		assert.Equal(st, "eth0", snapshots[0].Name)
	})

	t.Run("sorts by receive rate then name", func(st *testing.T) {
		mockSource := mock_traffic.NewMockCounterSource(ctrl)

		mockSource.EXPECT().Read().Return([]traffic.Counters{
			{Name: "eth1", BytesRecv: 1000},
			{Name: "eth0", BytesRecv: 1000},
			{Name: "wlan0", BytesRecv: 1000},
		}, nil)

		mockSource.EXPECT().Read().Return([]traffic.Counters{
			{Name: "eth1", BytesRecv: 1000},
			{Name: "eth0", BytesRecv: 1000},
			{Name: "wlan0", BytesRecv: 50000},
		}, nil)

		sampler := traffic.NewSampler(mockSource)
		sampler.Update()

		time.Sleep(150 * time.Millisecond)

		sampler.Update()

		snapshots := sampler.Snapshots()

		assert.Equal(st, 3, len(snapshots))
		assert.Equal(st, "wlan0", snapshots[0].Name)
		assert.Equal(st, "eth0", snapshots[1].Name)
		assert.Equal(st, "eth1", snapshots[2].Name)
	})

	t.Run("read failure keeps previous snapshots", func(st *testing.T) {
		mockSource := mock_traffic.NewMockCounterSource(ctrl)

		mockSource.EXPECT().Read().Return([]traffic.Counters{
			{Name: "eth0", BytesRecv: 1000, BytesSent: 500},
		}, nil)

		mockSource.EXPECT().Read().Return(nil, errors.New("proc read failed"))

		sampler := traffic.NewSampler(mockSource)
		sampler.Update()
		sampler.Update()

		snapshots := sampler.Snapshots()

		assert.Equal(st, 1, len(snapshots))
		assert.Equal(st, "eth0", snapshots[0].Name)
	})
}
