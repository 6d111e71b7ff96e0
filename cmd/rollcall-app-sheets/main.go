package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rollcall/rollcall-app-sheets/commands"
)

func main() {
	root := &cobra.Command{
		Use:           commands.APP,
		Short:         "Reconciles classroom attendance logs against a spreadsheet gradebook",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&commands.Options.Debug, "debug", commands.Options.Debug, "Enable debugging information")
	root.PersistentFlags().StringVar(&commands.Options.Config, "config", commands.Options.Config, "Configuration file path")

	root.AddCommand(commands.UpdateCmd)
	root.AddCommand(commands.GetCmd)
	root.AddCommand(commands.PutCmd)
	root.AddCommand(commands.AuthoriseCmd)
	root.AddCommand(commands.VersionCmd)

	if err := root.Execute(); err != nil {
		log.Printf("%-5s %v", "ERROR", err)
		os.Exit(1)
	}
}
