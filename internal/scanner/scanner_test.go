package scanner_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	mock_scanner "github.com/netdash/netdash/internal/mock/scanner"
	"github.com/netdash/netdash/internal/scanner"
	"github.com/stretchr/testify/assert"
)

func waitForDone(st *testing.T, s *scanner.Scanner) {
	for i := 0; i < 200; i++ {
		s.Update()

		if s.Status() == scanner.StatusDone {
			return
		}

		time.Sleep(10 * time.Millisecond)
	}

	st.Fatal("scan did not complete")
}

func TestScanner(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("completes with no results when all hosts unreachable", func(st *testing.T) {
		mockProber := mock_scanner.NewMockHostProber(ctrl)
		mockResolver := mock_scanner.NewMockHostnameResolver(ctrl)

		mockProber.EXPECT().
			Probe(gomock.Any(), gomock.Any()).
			Return("", false).
			Times(2)

		s := scanner.New(mockProber, mockResolver)
		s.SetTarget("10.0.0.0/30")
		s.Start(1)

		assert.Equal(st, scanner.StatusScanning, s.Status())

		waitForDone(st, s)

		completed, total := s.Progress()

		assert.Equal(st, scanner.StatusDone, s.Status())
		assert.Equal(st, 0, len(s.Results()))
		assert.Equal(st, uint64(2), completed)
		assert.Equal(st, uint64(2), total)
		assert.Equal(st, 1.0, s.ProgressRatio())
	})

	t.Run("collects results ordered by ascending ip", func(st *testing.T) {
		mockProber := mock_scanner.NewMockHostProber(ctrl)
		mockResolver := mock_scanner.NewMockHostnameResolver(ctrl)

		mockProber.EXPECT().
			Probe(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ip net.IP) (string, bool) {
				return "aa:bb:cc:dd:ee:ff", true
			}).
			Times(6)

		mockResolver.EXPECT().
			Resolve(gomock.Any(), gomock.Any()).
			Return("host.local").
			Times(6)

		s := scanner.New(mockProber, mockResolver)
		s.SetTarget("10.0.0.0/29")
		s.Start(50)

		waitForDone(st, s)

		results := s.Results()

		assert.Equal(st, 6, len(results))

		for i, ip := range []string{
			"10.0.0.1", "10.0.0.2", "10.0.0.3",
			"10.0.0.4", "10.0.0.5", "10.0.0.6",
		} {
			assert.Equal(st, ip, results[i].IP.String())
		}

		assert.Equal(st, "aa:bb:cc:dd:ee:ff", results[0].MAC)
		assert.Equal(st, "host.local", results[0].Hostname)
		assert.Equal(st, 0, s.Selected())
	})

	t.Run("delivers every reachable host past the channel buffer", func(st *testing.T) {
		mockProber := mock_scanner.NewMockHostProber(ctrl)
		mockResolver := mock_scanner.NewMockHostnameResolver(ctrl)

		mockProber.EXPECT().
			Probe(gomock.Any(), gomock.Any()).
			Return("aa:bb:cc:dd:ee:ff", true).
			Times(510)

		mockResolver.EXPECT().
			Resolve(gomock.Any(), gomock.Any()).
			Return("").
			Times(510)

		s := scanner.New(mockProber, mockResolver)
		s.SetTarget("10.0.0.0/23")
		s.Start(500)

		for i := 0; i < 200; i++ {
			s.Update()

			if s.Status() == scanner.StatusDone && len(s.Results()) == 510 {
				break
			}

			time.Sleep(10 * time.Millisecond)
		}

		completed, total := s.Progress()

		assert.Equal(st, scanner.StatusDone, s.Status())
		assert.Equal(st, 510, len(s.Results()))
		assert.Equal(st, uint64(510), completed)
		assert.Equal(st, uint64(510), total)
	})

	t.Run("malformed cidr completes immediately with zero hosts", func(st *testing.T) {
		mockProber := mock_scanner.NewMockHostProber(ctrl)
		mockResolver := mock_scanner.NewMockHostnameResolver(ctrl)

		s := scanner.New(mockProber, mockResolver)
		s.SetTarget("definitely-not-a-cidr")
		s.Start(0)

		assert.Equal(st, scanner.StatusScanning, s.Status())

		s.Update()

		completed, total := s.Progress()

		assert.Equal(st, scanner.StatusDone, s.Status())
		assert.Equal(st, uint64(0), completed)
		assert.Equal(st, uint64(0), total)
		assert.Equal(st, 0, len(s.Results()))
	})

	t.Run("starting a new run supersedes prior results", func(st *testing.T) {
		mockProber := mock_scanner.NewMockHostProber(ctrl)
		mockResolver := mock_scanner.NewMockHostnameResolver(ctrl)

		mockProber.EXPECT().
			Probe(gomock.Any(), gomock.Any()).
			Return("aa:bb:cc:dd:ee:ff", true).
			Times(2)

		mockResolver.EXPECT().
			Resolve(gomock.Any(), gomock.Any()).
			Return("").
			Times(2)

		s := scanner.New(mockProber, mockResolver)
		s.SetTarget("10.0.0.0/30")
		s.Start(10)

		waitForDone(st, s)

		assert.Equal(st, 2, len(s.Results()))

		s.SetTarget("bad-input")
		s.Start(10)

		assert.Equal(st, 0, len(s.Results()))

		s.Update()

		assert.Equal(st, scanner.StatusDone, s.Status())
		assert.Equal(st, 0, len(s.Results()))
	})

	t.Run("stop on a done run has no effect on results", func(st *testing.T) {
		mockProber := mock_scanner.NewMockHostProber(ctrl)
		mockResolver := mock_scanner.NewMockHostnameResolver(ctrl)

		mockProber.EXPECT().
			Probe(gomock.Any(), gomock.Any()).
			Return("aa:bb:cc:dd:ee:ff", true).
			Times(2)

		mockResolver.EXPECT().
			Resolve(gomock.Any(), gomock.Any()).
			Return("").
			Times(2)

		s := scanner.New(mockProber, mockResolver)
		s.SetTarget("10.0.0.0/30")
		s.Start(10)

		waitForDone(st, s)

		results := s.Results()

		s.Stop()
		s.Update()

		assert.Equal(st, scanner.StatusDone, s.Status())
		assert.Equal(st, results, s.Results())
	})

	t.Run("cursor wraps in both directions", func(st *testing.T) {
		mockProber := mock_scanner.NewMockHostProber(ctrl)
		mockResolver := mock_scanner.NewMockHostnameResolver(ctrl)

		mockProber.EXPECT().
			Probe(gomock.Any(), gomock.Any()).
			Return("aa:bb:cc:dd:ee:ff", true).
			Times(2)

		mockResolver.EXPECT().
			Resolve(gomock.Any(), gomock.Any()).
			Return("").
			Times(2)

		s := scanner.New(mockProber, mockResolver)
		s.SetTarget("10.0.0.0/30")
		s.Start(10)

		waitForDone(st, s)

		assert.Equal(st, 0, s.Selected())

		s.SelectNext()
		assert.Equal(st, 1, s.Selected())

		s.SelectNext()
		assert.Equal(st, 0, s.Selected())

		s.SelectPrevious()
		assert.Equal(st, 1, s.Selected())
	})
}
