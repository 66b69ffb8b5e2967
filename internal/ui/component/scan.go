package component

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/netdash/netdash/internal/scanner"
	"github.com/netdash/netdash/internal/ui/style"
)

// ScanPage is the subnet scan view: a CIDR input, a progress line, and
// the discovered host table.
type ScanPage struct {
	root      *tview.Flex
	cidrInput *tview.InputField
	progress  *tview.TextView
	table     *tview.Table
	onStart   func(cidr string)
}

func NewScanPage(defaultCIDR string, onStart func(cidr string)) *ScanPage {
	p := &ScanPage{onStart: onStart}

	cidrInput := tview.NewInputField()
	cidrInput.SetLabel("Target CIDR: ")
	cidrInput.SetLabelColor(style.ColorOrange)
	cidrInput.SetFieldBackgroundColor(style.ColorDefault)
	cidrInput.SetText(defaultCIDR)

	cidrInput.SetDoneFunc(func(k tcell.Key) {
		if k == tcell.KeyEnter {
			p.onStart(cidrInput.GetText())
		}
	})

	progress := tview.NewTextView()
	progress.SetTextColor(style.ColorLightGreen)
	progress.SetText("Idle")
	progress.SetBorderPadding(0, 0, 1, 0)

	table := createTable("hosts", []string{"IP", "MAC", "HOSTNAME"})

	root := tview.NewFlex().SetDirection(tview.FlexRow)
	root.AddItem(cidrInput, 1, 1, false)
	root.AddItem(progress, 1, 1, false)
	root.AddItem(table, 0, 1, true)

	p.root = root
	p.cidrInput = cidrInput
	p.progress = progress
	p.table = table

	return p
}

func (p *ScanPage) Primitive() tview.Primitive {
	return p.root
}

func (p *ScanPage) CIDRInput() tview.Primitive {
	return p.cidrInput
}

// CIDR returns the current contents of the target input
func (p *ScanPage) CIDR() string {
	return p.cidrInput.GetText()
}

// Update re-renders the progress line and host table from the scanner
func (p *ScanPage) Update(s *scanner.Scanner) {
	completed, total := s.Progress()

	switch s.Status() {
	case scanner.StatusIdle:
		p.progress.SetText("Idle")
	case scanner.StatusScanning:
		p.progress.SetText(fmt.Sprintf(
			"Scanning %s: %d/%d (%.0f%%)",
			s.Target(),
			completed,
			total,
			s.ProgressRatio()*100,
		))
	case scanner.StatusDone:
		p.progress.SetText(fmt.Sprintf(
			"Done: %d hosts found in %s",
			len(s.Results()),
			s.Target(),
		))
	}

	clearRows(p.table)

	for i, result := range s.Results() {
		hostname := result.Hostname

		if hostname == "" {
			hostname = "-"
		}

		setRowCell(p.table, i+1, 0, result.IP.String())
		setRowCell(p.table, i+1, 1, result.MAC)
		setRowCell(p.table, i+1, 2, hostname)
	}

	if len(s.Results()) > 0 {
		p.table.Select(s.Selected()+1, 0)
	}
}
