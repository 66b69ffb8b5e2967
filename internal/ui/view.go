package ui

import (
	"strings"

	"github.com/rivo/tview"
	"github.com/netdash/netdash/internal/config"
	"github.com/netdash/netdash/internal/core"
	"github.com/netdash/netdash/internal/history"
	"github.com/netdash/netdash/internal/logger"
	"github.com/netdash/netdash/internal/ui/component"
)

type view struct {
	appCore *core.Core
	log     logger.Logger

	root  *tview.Flex
	pages *tview.Pages

	header         *component.Header
	overview       *component.OverviewPanel
	interfaceTable *component.InterfaceTable
	trafficTable   *component.TrafficTable
	scanPage       *component.ScanPage
	pingPage       *component.PingPage
	historyTable   *component.HistoryTable
	settingsForm   *component.SettingsForm

	historyRecords []*history.Record
	gatewayIP      string

	focused     tview.Primitive
	focusedName string
	viewNames   []string

	setFocus func(p tview.Primitive)
}

func newView(appCore *core.Core, setFocus func(p tview.Primitive)) *view {
	v := &view{
		appCore:  appCore,
		log:      logger.New(),
		setFocus: setFocus,
		viewNames: []string{
			"overview", "interfaces", "traffic", "scan", "ping", "history", "settings",
		},
	}

	root := tview.NewFlex().SetDirection(tview.FlexRow)
	pages := tview.NewPages()

	header := component.NewHeader(v.onViewSwitch)
	overview := component.NewOverviewPanel()
	interfaceTable := component.NewInterfaceTable()
	trafficTable := component.NewTrafficTable()
	scanPage := component.NewScanPage(appCore.Scanner().Target(), v.onScanStart)
	pingPage := component.NewPingPage()
	historyTable := component.NewHistoryTable()
	settingsForm := component.NewSettingsForm(appCore.Conf(), v.onSettingsSubmit)

	pages.AddPage("overview", overview.Primitive(), true, true)
	pages.AddPage("interfaces", interfaceTable.Primitive(), true, false)
	pages.AddPage("traffic", trafficTable.Primitive(), true, false)
	pages.AddPage("scan", scanPage.Primitive(), true, false)
	pages.AddPage("ping", pingPage.Primitive(), true, false)
	pages.AddPage("history", historyTable.Primitive(), true, false)
	pages.AddPage("settings", settingsForm.Primitive(), true, false)

	root.
		AddItem(header.Primitive(), 15, 1, false).
		AddItem(pages, 0, 1, true)

	v.root = root
	v.pages = pages
	v.header = header
	v.overview = overview
	v.interfaceTable = interfaceTable
	v.trafficTable = trafficTable
	v.scanPage = scanPage
	v.pingPage = pingPage
	v.historyTable = historyTable
	v.settingsForm = settingsForm

	v.focused = overview.Primitive()
	v.focusedName = "overview"

	v.gatewayIP = appCore.Catalog().Gateway()

	v.reloadHistory()
	v.updateHeader()

	return v
}

func (v *view) onViewSwitch(text string) {
	for _, name := range v.viewNames {
		if strings.HasPrefix(name, text) {
			v.focusedName = name

			switch name {
			case "overview":
				v.focused = v.overview.Primitive()
			case "interfaces":
				v.appCore.Catalog().Reload()
				v.focused = v.interfaceTable.Primitive()
			case "traffic":
				v.focused = v.trafficTable.Primitive()
			case "scan":
				v.focused = v.scanPage.Primitive()
			case "ping":
				v.focused = v.pingPage.Primitive()
			case "history":
				v.reloadHistory()
				v.focused = v.historyTable.Primitive()
			case "settings":
				v.focused = v.settingsForm.Primitive()
			}

			break
		}
	}

	v.focus()
}

func (v *view) onScanStart(cidr string) {
	v.appCore.StartScan(cidr)
	v.focus()
}

func (v *view) onSettingsSubmit(conf config.Config) {
	if err := v.appCore.UpdateConfig(conf); err != nil {
		v.log.Error().Err(err).Msg("failed to write config file")
	}
}

func (v *view) focus() {
	v.pages.SwitchToPage(v.focusedName)
	v.setFocus(v.focused)
}

func (v *view) reloadHistory() {
	records, err := v.appCore.History().GetAll()

	if err != nil {
		v.log.Error().Err(err).Msg("failed to load scan history")
		return
	}

	v.historyRecords = records
}

func (v *view) updateHeader() {
	if active, ok := v.appCore.Catalog().Active(); ok {
		v.header.SetNetworkInfo(active.Name, v.appCore.Catalog().DefaultCIDR())
	} else {
		v.header.SetNetworkInfo("", "")
	}
}

// render refreshes the currently visible page from core state. Called
// once per tick from the draw queue, never concurrently with input
// handling.
func (v *view) render() {
	switch v.focusedName {
	case "overview":
		v.overview.Update(v.appCore.Dashboard(), v.gatewayIP)
	case "interfaces":
		v.interfaceTable.Update(v.appCore.Catalog())
	case "traffic":
		v.trafficTable.Update(v.appCore.Traffic())
	case "scan":
		v.scanPage.Update(v.appCore.Scanner())
	case "ping":
		v.pingPage.Update(v.appCore.Ping())
	case "history":
		v.historyTable.Update(v.historyRecords)
	}
}
