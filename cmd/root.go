// SPDX-License-Identifier: MIT
//
// root.go — cobra command wiring for the konig CLI.
//
// Grounded on nektos-act/cmd/root.go: a single rootCmd with persistent
// flags, subcommands registered in init(), and a verbose flag that raises
// logrus to DebugLevel.

package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:          "konig",
	Short:        "konig generates random graphs for competitive-programming test data.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	}
	rootCmd.AddCommand(buildCmd, sampleCmd, dsuCmd)
}

// Execute runs the root command, exiting the process with status 1 on
// error.
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
