package component

import (
	"strings"

	"github.com/rivo/tview"
	"github.com/netdash/netdash/internal/netinfo"
)

// InterfaceTable lists the machine's network adapters.
type InterfaceTable struct {
	table *tview.Table
}

func NewInterfaceTable() *InterfaceTable {
	return &InterfaceTable{
		table: createTable("interfaces", []string{
			"NAME", "TYPE", "STATE", "MAC", "IPV4", "NETWORK",
		}),
	}
}

func (t *InterfaceTable) Primitive() tview.Primitive {
	return t.table
}

func (t *InterfaceTable) Update(catalog *netinfo.Catalog) {
	clearRows(t.table)

	for i, info := range catalog.Interfaces() {
		state := "down"

		if info.IsUp {
			state = "up"
		}

		ipv4 := strings.Join(info.IPv4, ", ")

		if ipv4 == "" {
			ipv4 = "-"
		}

		network := info.CIDR

		if network == "" {
			network = "-"
		}

		setRowCell(t.table, i+1, 0, info.Name)
		setRowCell(t.table, i+1, 1, info.Type)
		setRowCell(t.table, i+1, 2, state)
		setRowCell(t.table, i+1, 3, info.MAC)
		setRowCell(t.table, i+1, 4, ipv4)
		setRowCell(t.table, i+1, 5, network)
	}

	if len(catalog.Interfaces()) > 0 {
		t.table.Select(catalog.Selected()+1, 0)
	}
}
