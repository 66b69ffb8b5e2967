package netinfo_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	mock_netinfo "github.com/netdash/netdash/internal/mock/netinfo"
	"github.com/netdash/netdash/internal/netinfo"
	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	infos := []netinfo.InterfaceInfo{
		{
			Name:       "eth0",
			IsUp:       true,
			IsPhysical: true,
			IPv4:       []string{"192.168.10.42"},
			CIDR:       "192.168.10.0/24",
		},
		{
			Name:       "docker0",
			IsUp:       true,
			IsPhysical: false,
			IPv4:       []string{"172.17.0.1"},
		},
		{
			Name:       "eth1",
			IsUp:       false,
			IsPhysical: true,
		},
	}

	t.Run("reload replaces interfaces", func(st *testing.T) {
		mockSource := mock_netinfo.NewMockSource(ctrl)

		mockSource.EXPECT().Interfaces().Return(infos, nil)

		catalog := netinfo.NewCatalog(mockSource)
		catalog.Reload()

		assert.Equal(st, 3, len(catalog.Interfaces()))
	})

	t.Run("reload failure keeps previous snapshot", func(st *testing.T) {
		mockSource := mock_netinfo.NewMockSource(ctrl)

		mockSource.EXPECT().Interfaces().Return(infos, nil)
		mockSource.EXPECT().Interfaces().Return(nil, errors.New("enumeration failed"))

		catalog := netinfo.NewCatalog(mockSource)
		catalog.Reload()
		catalog.Reload()

		assert.Equal(st, 3, len(catalog.Interfaces()))
	})

	t.Run("active prefers up physical adapters with addresses", func(st *testing.T) {
		mockSource := mock_netinfo.NewMockSource(ctrl)

		mockSource.EXPECT().Interfaces().Return(infos, nil)

		catalog := netinfo.NewCatalog(mockSource)
		catalog.Reload()

		active, ok := catalog.Active()

		assert.True(st, ok)
		assert.Equal(st, "eth0", active.Name)
	})

	t.Run("active reports absence when no adapters exist", func(st *testing.T) {
		mockSource := mock_netinfo.NewMockSource(ctrl)

		mockSource.EXPECT().Interfaces().Return([]netinfo.InterfaceInfo{}, nil)

		catalog := netinfo.NewCatalog(mockSource)
		catalog.Reload()

		_, ok := catalog.Active()

		assert.False(st, ok)
	})

	t.Run("default cidr derives a /24 from the active adapter", func(st *testing.T) {
		mockSource := mock_netinfo.NewMockSource(ctrl)

		mockSource.EXPECT().Interfaces().Return(infos, nil)

		catalog := netinfo.NewCatalog(mockSource)
		catalog.Reload()

		assert.Equal(st, "192.168.10.0/24", catalog.DefaultCIDR())
	})

	t.Run("default cidr falls back when nothing is usable", func(st *testing.T) {
		mockSource := mock_netinfo.NewMockSource(ctrl)

		mockSource.EXPECT().Interfaces().Return([]netinfo.InterfaceInfo{}, nil)

		catalog := netinfo.NewCatalog(mockSource)
		catalog.Reload()

		assert.Equal(st, netinfo.FallbackCIDR, catalog.DefaultCIDR())
	})

	t.Run("selection wraps in both directions", func(st *testing.T) {
		mockSource := mock_netinfo.NewMockSource(ctrl)

		mockSource.EXPECT().Interfaces().Return(infos, nil)

		catalog := netinfo.NewCatalog(mockSource)
		catalog.Reload()

		assert.Equal(st, 0, catalog.Selected())

		catalog.SelectPrevious()
		assert.Equal(st, 2, catalog.Selected())

		catalog.SelectNext()
		assert.Equal(st, 0, catalog.Selected())

		catalog.SelectNext()
		assert.Equal(st, 1, catalog.Selected())
	})

	t.Run("selection clamps to the last entry when the list shrinks", func(st *testing.T) {
		mockSource := mock_netinfo.NewMockSource(ctrl)

		mockSource.EXPECT().Interfaces().Return(infos, nil)
		mockSource.EXPECT().Interfaces().Return(infos[:2], nil)

		catalog := netinfo.NewCatalog(mockSource)
		catalog.Reload()
		catalog.SelectNext()
		catalog.SelectNext()

		assert.Equal(st, 2, catalog.Selected())

		catalog.Reload()

		assert.Equal(st, 1, catalog.Selected())
	})

	t.Run("selection stays valid when the list empties and refills", func(st *testing.T) {
		mockSource := mock_netinfo.NewMockSource(ctrl)

		mockSource.EXPECT().Interfaces().Return(infos, nil)
		mockSource.EXPECT().Interfaces().Return([]netinfo.InterfaceInfo{}, nil)
		mockSource.EXPECT().Interfaces().Return(infos, nil)

		catalog := netinfo.NewCatalog(mockSource)
		catalog.Reload()
		catalog.SelectNext()
		catalog.Reload()
		catalog.Reload()

		assert.Equal(st, 0, catalog.Selected())
	})
}
