package main

import (
	"fmt"

	"deedles.dev/wldnd/internal/config"
	"deedles.dev/wldnd/protocol"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.Default().WriteTOML(cmd.OutOrStdout())
		},
	}
}

func newProtocolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "protocol",
		Short: "List the protocol interfaces that the broker implements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			proto, err := protocol.Core()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, i := range proto.Interfaces {
				fmt.Fprintf(w, "%v v%v\n", i.Name, i.Version)
				for op, r := range i.Requests {
					fmt.Fprintf(w, "  -> %v %v%v\n", op, r.Name, since(r))
				}
				for op, e := range i.Events {
					fmt.Fprintf(w, "  <- %v %v%v\n", op, e.Name, since(e))
				}
			}
			return nil
		},
	}
}

func since(op protocol.Op) string {
	if op.Since <= 1 {
		return ""
	}
	return fmt.Sprintf(" (since %v)", op.Since)
}
