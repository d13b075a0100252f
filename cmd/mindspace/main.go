package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mindspace/cmd/mindspace/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "mindspace",
		Short: "Personal wellness tracker",
		Long:  "Daily tasks with recurrence, mood journaling, an AI companion, and report export. All data stays in a local database.",
	}

	rootCmd.AddCommand(commands.NewTaskCmd())
	rootCmd.AddCommand(commands.NewMoodCmd())
	rootCmd.AddCommand(commands.NewChatCmd())
	rootCmd.AddCommand(commands.NewReportCmd())
	rootCmd.AddCommand(commands.NewBackupCmd())
	rootCmd.AddCommand(commands.NewSettingsCmd())
	rootCmd.AddCommand(commands.NewRunCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
