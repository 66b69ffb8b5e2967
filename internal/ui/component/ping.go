package component

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
	"github.com/netdash/netdash/internal/ping"
	"github.com/netdash/netdash/internal/ui/style"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// PingPage is the latency view: target line, aggregate statistics, a
// latency sparkline, and the rolling log.
type PingPage struct {
	root      *tview.Flex
	status    *tview.TextView
	stats     *tview.TextView
	sparkline *tview.TextView
	logs      *tview.TextView
}

func NewPingPage() *PingPage {
	p := &PingPage{}

	status := tview.NewTextView()
	status.SetTextColor(style.ColorLightGreen)
	status.SetBorderPadding(0, 0, 1, 0)

	stats := tview.NewTextView()
	stats.SetTextColor(style.ColorOrange)
	stats.SetBorderPadding(0, 0, 1, 0)

	sparkline := tview.NewTextView()
	sparkline.SetTextColor(style.ColorMediumGreen)
	sparkline.SetBorder(true)
	sparkline.SetTitle("latency")
	sparkline.SetTitleColor(style.ColorLightGreen)

	logs := tview.NewTextView()
	logs.SetBorder(true)
	logs.SetTitle("log")
	logs.SetTitleColor(style.ColorLightGreen)

	root := tview.NewFlex().SetDirection(tview.FlexRow)
	root.AddItem(status, 1, 1, false)
	root.AddItem(stats, 2, 1, false)
	root.AddItem(sparkline, 5, 1, false)
	root.AddItem(logs, 0, 1, true)

	p.root = root
	p.status = status
	p.stats = stats
	p.sparkline = sparkline
	p.logs = logs

	return p
}

func (p *PingPage) Primitive() tview.Primitive {
	return p.root
}

// Update re-renders the session from the engine's current statistics
func (p *PingPage) Update(e *ping.Engine) {
	state := "Stopped"

	if e.Running() {
		state = "Running"
	}

	p.status.SetText(fmt.Sprintf("Target: %s  [%s]", e.Target(), state))

	stats := e.Stats()

	p.stats.SetText(fmt.Sprintf(
		"sent=%d recv=%d loss=%.1f%%\nmin=%dms avg=%dms max=%dms jitter=%dms",
		stats.Sent,
		stats.Received,
		stats.LossPercent(),
		stats.MinLatency,
		stats.AvgLatency(),
		stats.MaxLatency,
		stats.AvgJitter(),
	))

	p.sparkline.SetText(sparkline(stats.History.Values(), stats.MaxLatency))
	p.logs.SetText(strings.Join(stats.Logs.Values(), "\n"))
	p.logs.ScrollToEnd()
}

// sparkline maps latencies onto block runes. A zero value encodes a
// timeout and always renders as the lowest block.
func sparkline(values []uint64, max uint64) string {
	if max == 0 {
		max = 1
	}

	var b strings.Builder

	for _, v := range values {
		idx := 0

		if v > 0 {
			idx = int(v * uint64(len(sparkRunes)-1) / max)

			if idx >= len(sparkRunes) {
				idx = len(sparkRunes) - 1
			}
		}

		b.WriteRune(sparkRunes[idx])
	}

	return b.String()
}
