package history_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/netdash/netdash/internal/history"
	mock_history "github.com/netdash/netdash/internal/mock/history"
	"github.com/stretchr/testify/assert"
)

func TestHistoryService(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("saves a completed run", func(st *testing.T) {
		mockRepo := mock_history.NewMockRepo(ctrl)

		var saved *history.Record

		mockRepo.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(record *history.Record) (*history.Record, error) {
				saved = record
				return record, nil
			})

		service := history.NewService(mockRepo)

		hosts := []history.Host{
			{IP: "192.168.1.1", MAC: "aa:bb:cc:dd:ee:ff", Hostname: "router"},
			{IP: "192.168.1.20", MAC: "11:22:33:44:55:66", Hostname: ""},
		}

		record, err := service.SaveRun("192.168.1.0/24", 254, 3*time.Second, hosts)

		assert.NoError(st, err)
		assert.NotNil(st, record)
		assert.Equal(st, "192.168.1.0/24", saved.CIDR)
		assert.Equal(st, 254, saved.TotalHosts)
		assert.Equal(st, 2, saved.HostsFound)
		assert.Equal(st, int64(3000), saved.DurationMs)
		assert.Contains(st, string(saved.Hosts), "192.168.1.1")
	})

	t.Run("saves an empty run as an empty host list", func(st *testing.T) {
		mockRepo := mock_history.NewMockRepo(ctrl)

		var saved *history.Record

		mockRepo.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(record *history.Record) (*history.Record, error) {
				saved = record
				return record, nil
			})

		service := history.NewService(mockRepo)

		_, err := service.SaveRun("10.0.0.0/30", 2, time.Second, nil)

		assert.NoError(st, err)
		assert.Equal(st, 0, saved.HostsFound)
		assert.Equal(st, "[]", string(saved.Hosts))
	})

	t.Run("propagates repo errors", func(st *testing.T) {
		mockRepo := mock_history.NewMockRepo(ctrl)

		mockRepo.EXPECT().
			Add(gomock.Any()).
			Return(nil, errors.New("disk full"))

		service := history.NewService(mockRepo)

		_, err := service.SaveRun("10.0.0.0/30", 2, time.Second, nil)

		assert.Error(st, err)
	})

	t.Run("delegates reads and deletes", func(st *testing.T) {
		mockRepo := mock_history.NewMockRepo(ctrl)

		mockRepo.EXPECT().GetAll().Return([]*history.Record{}, nil)
		mockRepo.EXPECT().Remove(7).Return(nil)
		mockRepo.EXPECT().Clear().Return(nil)

		service := history.NewService(mockRepo)

		records, err := service.GetAll()

		assert.NoError(st, err)
		assert.Empty(st, records)

		assert.NoError(st, service.Remove(7))
		assert.NoError(st, service.Clear())
	})
}
