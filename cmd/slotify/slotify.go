package main

import (
	"os"

	"github.com/slotify/cli/cmd/slotify/backup"
	"github.com/slotify/cli/pkg/cli"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "slotify",
		Short: "Slotify export/import client",
	}
)

func init() {
	rootCmd.AddCommand(backup.GetCommands()...)
}

func main() {
	cli.CloseHandler()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
