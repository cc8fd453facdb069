package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/unparser/document"
	"github.com/dhamidi/unparser/ruby/ast"
)

func newDumpCmd() *cobra.Command {
	var dumpFormat string
	var positions bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the tree of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}
			node, comments, err := doc.Build()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			switch dumpFormat {
			case "json":
				if err := ast.NewJSONEncoder(out).Encode(node); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Fprintln(out)
			case "tree":
				fmt.Fprintln(out, node.Inspect())
			case "sexp":
				if positions {
					fmt.Fprintln(out, node.StringWithPositions())
				} else {
					fmt.Fprintln(out, node.String())
				}
			default:
				return fmt.Errorf("unknown format: %s (expected json, tree, or sexp)", dumpFormat)
			}

			for _, c := range comments {
				fmt.Fprintf(out, "; %s\n", c)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "tree", "output format (json, tree, sexp)")
	cmd.Flags().BoolVar(&positions, "positions", true, "include locations in sexp output")

	return cmd
}
