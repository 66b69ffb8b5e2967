package commands

import (
	"fmt"

	app_info "github.com/netdash/netdash/internal/app-info"
	"github.com/spf13/cobra"
)

func version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the netdash version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", app_info.NAME, app_info.VERSION)
		},
	}
}
