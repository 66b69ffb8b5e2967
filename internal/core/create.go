package core

import (
	"errors"

	"github.com/netdash/netdash/internal/config"
	"github.com/netdash/netdash/internal/dashboard"
	"github.com/netdash/netdash/internal/event"
	"github.com/netdash/netdash/internal/history"
	"github.com/netdash/netdash/internal/netinfo"
	"github.com/netdash/netdash/internal/ping"
	"github.com/netdash/netdash/internal/scanner"
	"github.com/netdash/netdash/internal/traffic"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// CreateNewAppCore creates and returns a new instance of *core.Core
func CreateNewAppCore() (*Core, error) {
	configPath, ok := viper.Get("config-path").(string)

	if !ok {
		return nil, errors.New("failed to find config file path setting")
	}

	dbFile, ok := viper.Get("database-file").(string)

	if !ok {
		return nil, errors.New("failed to find database file path setting")
	}

	configRepo := config.NewJSONRepo(configPath)
	configService := config.NewConfigService(configRepo)

	conf, err := configService.Get()

	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&history.Record{}); err != nil {
		return nil, err
	}

	historyRepo := history.NewSqliteRepo(db)
	historyService := history.NewService(historyRepo)

	catalog := netinfo.NewCatalog(netinfo.NewSystemSource())
	catalog.Reload()

	ifaceName := ""

	if active, ok := catalog.Active(); ok {
		ifaceName = active.Name
	}

	prober := scanner.NewARPProber(ifaceName, scanner.DefaultProbeTimeout)
	resolver := scanner.NewDNSResolver(scanner.DefaultResolveTimeout)

	netScanner := scanner.New(prober, resolver)
	netScanner.SetTarget(catalog.DefaultCIDR())

	pingEngine := ping.NewEngine(ping.NewProber)

	counters := traffic.NewSystemCounterSource()
	sampler := traffic.NewSampler(counters)

	dash := dashboard.New(catalog, counters, dashboard.NewIPAPIClient())
	dash.FetchPublicIP()

	events := event.NewEventManager()

	return New(
		*conf,
		configService,
		events,
		catalog,
		sampler,
		netScanner,
		pingEngine,
		dash,
		historyService,
	), nil
}
