package component

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
	"github.com/netdash/netdash/internal/dashboard"
	"github.com/netdash/netdash/internal/ui/style"
)

// OverviewPanel is the landing page: host identity, active adapter,
// live rates, and the public address lookup.
type OverviewPanel struct {
	root   *tview.Flex
	local  *tview.TextView
	public *tview.TextView
}

func NewOverviewPanel() *OverviewPanel {
	local := tview.NewTextView()
	local.SetDynamicColors(true)
	local.SetBorder(true)
	local.SetTitle("local")
	local.SetTitleColor(style.ColorLightGreen)
	local.SetBorderPadding(1, 1, 2, 2)

	public := tview.NewTextView()
	public.SetDynamicColors(true)
	public.SetBorder(true)
	public.SetTitle("public")
	public.SetTitleColor(style.ColorLightGreen)
	public.SetBorderPadding(1, 1, 2, 2)

	root := tview.NewFlex().SetDirection(tview.FlexColumn)
	root.AddItem(local, 0, 1, false)
	root.AddItem(public, 0, 1, false)

	return &OverviewPanel{
		root:   root,
		local:  local,
		public: public,
	}
}

func (o *OverviewPanel) Primitive() tview.Primitive {
	return o.root
}

func (o *OverviewPanel) Update(dash *dashboard.Dashboard, gatewayIP string) {
	o.local.SetText(o.localText(dash, gatewayIP))
	o.public.SetText(o.publicText(dash))
}

func (o *OverviewPanel) localText(dash *dashboard.Dashboard, gatewayIP string) string {
	var b strings.Builder

	info := dash.HostInfo()

	fmt.Fprintf(&b, "Host:      %s\n", info.Hostname)
	fmt.Fprintf(&b, "OS:        %s %s\n\n", info.Platform, info.OSVersion)

	if active, ok := dash.ActiveInterface(); ok {
		connection := "Virtual"

		if active.IsPhysical {
			connection = "Physical"
		}

		ipv4 := "-"

		if len(active.IPv4) > 0 {
			ipv4 = active.IPv4[0]
		}

		rx, tx := dash.Rates()

		fmt.Fprintf(&b, "Interface: %s (%s, %s)\n", active.Name, active.Type, connection)
		fmt.Fprintf(&b, "IPv4:      %s\n", ipv4)
		fmt.Fprintf(&b, "Gateway:   %s\n", valueOrDash(gatewayIP))
		fmt.Fprintf(&b, "Rx/Tx:     %s / %s\n", formatRate(rx), formatRate(tx))
	} else {
		b.WriteString("No active interface found\n")
	}

	fmt.Fprintf(&b, "Proxy:     %s\n", valueOrDash(dash.Proxy()))

	return b.String()
}

func (o *OverviewPanel) publicText(dash *dashboard.Dashboard) string {
	switch dash.FetchState() {
	case dashboard.FetchLoading:
		return "Looking up public address…"
	case dashboard.FetchFailed:
		return fmt.Sprintf(
			"Lookup failed: %s\n\nPress \"r\" to retry",
			dash.FetchError(),
		)
	}

	info := dash.PublicInfo()

	if info == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "IP:       %s\n", info.IP)
	fmt.Fprintf(&b, "Country:  %s\n", info.Country)
	fmt.Fprintf(&b, "Region:   %s\n", info.Region)
	fmt.Fprintf(&b, "City:     %s\n", info.City)
	fmt.Fprintf(&b, "ISP:      %s\n", info.ISP)

	return b.String()
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}

	return v
}
