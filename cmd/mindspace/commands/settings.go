package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mindspace/internal/model"
)

// NewSettingsCmd creates the settings command tree.
func NewSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change application settings",
	}
	cmd.AddCommand(newSettingsShowCmd())
	cmd.AddCommand(newSettingsSetCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			settings, err := a.settingsRepo.Get(context.Background())
			if err != nil {
				return err
			}
			state := "off"
			if settings.NotificationsEnabled {
				state = "on"
			}
			fmt.Printf("Horário de reinício diário: %s\n", settings.DailyResetTime)
			fmt.Printf("Notificações: %s\n", state)
			fmt.Printf("Último reinício: %s\n", settings.LastTaskReset.Format("2006-01-02 15:04"))
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var resetTime string
	var notifications string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the daily reset time or toggle notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if resetTime == "" && notifications == "" {
				return fmt.Errorf("nothing to change; pass --reset-time and/or --notifications")
			}
			if resetTime != "" {
				if _, _, err := model.ParseResetTime(resetTime); err != nil {
					return err
				}
			}
			if notifications != "" && notifications != "on" && notifications != "off" {
				return fmt.Errorf("notifications must be on or off")
			}

			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()
			ctx := context.Background()

			settings, err := a.settingsRepo.Get(ctx)
			if err != nil {
				return err
			}
			if resetTime != "" {
				settings.DailyResetTime = resetTime
			}
			if notifications != "" {
				settings.NotificationsEnabled = notifications == "on"
			}
			if err := a.settingsRepo.Update(ctx, settings); err != nil {
				return err
			}
			fmt.Println("Configurações salvas.")
			return nil
		},
	}
	cmd.Flags().StringVar(&resetTime, "reset-time", "", "daily reset time (HH:MM)")
	cmd.Flags().StringVar(&notifications, "notifications", "", "on or off")
	return cmd
}
