package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dompref "example.com/vibe-storefront/app/internal/domain/preference"
)

var themeCmd = &cobra.Command{
	Use:       "theme [toggle|light|dark]",
	Short:     "Show or change the color theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"toggle", string(dompref.ThemeLight), string(dompref.ThemeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openClient(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer c.close()

		ctx := cmd.Context()
		var theme dompref.Theme
		switch {
		case len(args) == 0:
			theme, err = c.theme.Theme(ctx, localOwner)
		case args[0] == "toggle":
			theme, err = c.theme.ToggleTheme(ctx, localOwner)
		default:
			theme, err = dompref.ParseTheme(args[0])
			if err == nil {
				err = c.theme.SetTheme(ctx, localOwner, theme)
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme)
		return nil
	},
}
