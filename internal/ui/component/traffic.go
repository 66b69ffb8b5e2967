package component

import (
	"github.com/rivo/tview"
	"github.com/netdash/netdash/internal/traffic"
)

// TrafficTable lists per-adapter rates sorted by receive rate.
type TrafficTable struct {
	table *tview.Table
}

func NewTrafficTable() *TrafficTable {
	return &TrafficTable{
		table: createTable("traffic", []string{
			"ADAPTER", "RX/S", "TX/S", "SESSION RX", "SESSION TX", "TOTAL RX", "TOTAL TX",
		}),
	}
}

func (t *TrafficTable) Primitive() tview.Primitive {
	return t.table
}

func (t *TrafficTable) Update(sampler *traffic.Sampler) {
	clearRows(t.table)

	for i, snap := range sampler.Snapshots() {
		setRowCell(t.table, i+1, 0, snap.Name)
		setRowCell(t.table, i+1, 1, formatRate(snap.RxRate))
		setRowCell(t.table, i+1, 2, formatRate(snap.TxRate))
		setRowCell(t.table, i+1, 3, formatBytes(snap.SessionRx))
		setRowCell(t.table, i+1, 4, formatBytes(snap.SessionTx))
		setRowCell(t.table, i+1, 5, formatBytes(snap.BytesRecv))
		setRowCell(t.table, i+1, 6, formatBytes(snap.BytesSent))
	}
}
