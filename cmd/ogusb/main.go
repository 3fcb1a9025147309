package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ogusb/ogusb/internal/app"
	"github.com/ogusb/ogusb/internal/platform"
	"github.com/ogusb/ogusb/internal/shell"
)

var rootCmd = &cobra.Command{
	Use:          "ogusb",
	Short:        "USB formatting and partitioning tool",
	Long:         "ogusb detects USB storage devices and formats them interactively with intelligent filesystem selection",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !platform.NewPrivilege().Elevated() {
			fmt.Fprintln(os.Stderr, "ERROR: This tool requires root/administrator privileges")
			fmt.Fprintln(os.Stderr, "Please run with sudo: sudo ogusb")
			os.Exit(1)
		}

		log := logrus.StandardLogger()
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

		session := app.NewSession(shell.NewExecRunner(), log)
		return session.Run(cmd.Context())
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
