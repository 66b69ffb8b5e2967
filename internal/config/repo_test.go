package config_test

import (
	"path"
	"testing"

	"github.com/netdash/netdash/internal/config"
	"github.com/netdash/netdash/internal/exception"
	"github.com/stretchr/testify/assert"
)

func TestJSONRepo(t *testing.T) {
	confPath := path.Join(t.TempDir(), "config.json")

	repo := config.NewJSONRepo(confPath)

	t.Run("Get returns record not found error for missing file", func(st *testing.T) {
		_, err := repo.Get()

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("Update rejects nil config", func(st *testing.T) {
		_, err := repo.Update(nil)

		assert.Error(st, err)
	})

	t.Run("round trips config", func(st *testing.T) {
		conf := &config.Config{
			ScanConcurrency: 100,
			PingTarget:      "1.1.1.1",
			PingIntervalMs:  500,
			PingTimeoutMs:   1000,
			PingPacketSize:  64,
		}

		written, err := repo.Update(conf)

		assert.NoError(st, err)
		assert.Equal(st, conf, written)

		found, err := repo.Get()

		assert.NoError(st, err)
		assert.Equal(st, conf, found)
	})
}
