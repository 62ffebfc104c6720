// wlbroker: a Wayland server that only brokers clipboard and
// drag-and-drop transfers between its clients.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "wlbroker",
		Short: "Wayland clipboard and drag-and-drop broker",
		Long: `wlbroker listens on a Wayland socket and implements wl_data_device_manager
along with the minimum of wl_seat and wl_compositor needed to use it. Clients
connected to it can copy, paste, and drag data between each other.

Config file search order (first found wins):
  /etc/wlbroker/wlbroker.toml
  $XDG_CONFIG_HOME/wlbroker/wlbroker.toml
  path supplied via --config

All flags can be set via WLBROKER_<KEY> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newConfigCmd(),
		newProtocolCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wlbroker %s\n", Version)
		},
	}
}
