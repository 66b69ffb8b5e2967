package component

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
	"github.com/netdash/netdash/internal/history"
)

// HistoryTable lists previously completed scan runs.
type HistoryTable struct {
	table *tview.Table
}

func NewHistoryTable() *HistoryTable {
	return &HistoryTable{
		table: createTable("scan history", []string{
			"WHEN", "NETWORK", "SCANNED", "FOUND", "DURATION",
		}),
	}
}

func (t *HistoryTable) Primitive() tview.Primitive {
	return t.table
}

func (t *HistoryTable) Update(records []*history.Record) {
	clearRows(t.table)

	for i, record := range records {
		duration := time.Duration(record.DurationMs) * time.Millisecond

		setRowCell(t.table, i+1, 0, record.CreatedAt.Format("2006-01-02 15:04:05"))
		setRowCell(t.table, i+1, 1, record.CIDR)
		setRowCell(t.table, i+1, 2, fmt.Sprintf("%d", record.TotalHosts))
		setRowCell(t.table, i+1, 3, fmt.Sprintf("%d", record.HostsFound))
		setRowCell(t.table, i+1, 4, duration.Round(time.Millisecond).String())
	}
}
