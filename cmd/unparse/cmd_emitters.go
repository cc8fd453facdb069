package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhamidi/unparser/unparser"
)

func newEmittersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "emitters",
		Short: "List the node types the unparser handles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, info := range unparser.Emitters() {
				fmt.Fprintf(w, "%s\t%s\n", info.Type, info.Terminated)
			}
			return w.Flush()
		},
	}
}
