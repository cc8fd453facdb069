package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func newRootCmd() *cobra.Command {
	var verbosity int
	var logFile string

	rootCmd := &cobra.Command{
		Use:          "unparse",
		Short:        "Turn Ruby parser trees back into Ruby source",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logFile == "" {
				commonlog.Configure(verbosity, nil)
			} else {
				commonlog.Configure(verbosity, &logFile)
			}
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log more (repeat for debug output)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write the log to this file instead of stderr")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newEmittersCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
