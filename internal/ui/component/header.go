package component

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/netdash/netdash/internal/ui/style"
)

const appText = `
███╗   ██╗███████╗████████╗██████╗  █████╗ ███████╗██╗  ██╗
████╗  ██║██╔════╝╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██║  ██║
██╔██╗ ██║█████╗     ██║   ██║  ██║███████║███████╗███████║
██║╚██╗██║██╔══╝     ██║   ██║  ██║██╔══██║╚════██║██╔══██║
██║ ╚████║███████╗   ██║   ██████╔╝██║  ██║███████║██║  ██║
╚═╝  ╚═══╝╚══════╝   ╚═╝   ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝`

type Header struct {
	root            *tview.Flex
	networkInfo     *tview.TextView
	switchViewInput *SwitchViewInput
}

func NewHeader(onViewSwitch func(text string)) *Header {
	h := &Header{}

	h.root = tview.NewFlex().SetDirection(tview.FlexRow)

	banner := tview.NewTextView().SetText(appText)
	banner.SetTextColor(style.ColorMediumGreen)
	banner.SetTextAlign(tview.AlignCenter)

	legend := tview.NewFlex().SetDirection(tview.FlexRow)

	lines := []string{
		"\":\" switch view",
		"\"s\" start / stop probing on scan and ping views",
		"views: " + strings.Join([]string{
			"overview", "interfaces", "traffic", "scan", "ping", "history", "settings",
		}, ", "),
	}

	for _, line := range lines {
		text := tview.NewTextView()
		text.SetTextStyle(style.StyleDefault.Attributes(tcell.AttrDim))
		text.SetText(line)
		text.SetBorderPadding(0, 0, 3, 0)
		legend.AddItem(text, 1, 1, false)
	}

	networkInfo := tview.NewTextView()
	networkInfo.SetTextColor(style.ColorLightGreen)
	networkInfo.SetTextAlign(tview.AlignLeft)
	networkInfo.SetBorderPadding(0, 0, 3, 0)

	h.networkInfo = networkInfo
	h.switchViewInput = NewSwitchViewInput(onViewSwitch)

	h.root.AddItem(banner, 7, 1, false)
	h.root.AddItem(legend, 3, 1, false)
	h.root.AddItem(networkInfo, 1, 1, false)
	h.root.AddItem(h.switchViewInput.Primitive(), 3, 1, false)

	return h
}

func (h *Header) Primitive() tview.Primitive {
	return h.root
}

func (h *Header) SwitchViewInput() *SwitchViewInput {
	return h.switchViewInput
}

// SetNetworkInfo updates the active interface line under the banner
func (h *Header) SetNetworkInfo(ifaceName, cidr string) {
	if ifaceName == "" {
		h.networkInfo.SetText("No active interface detected")
		return
	}

	h.networkInfo.SetText(
		fmt.Sprintf("Interface: %s, Network: %s", ifaceName, cidr),
	)
}
