package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage favorite products",
	Args:    cobra.NoArgs,
	RunE:    runFavoritesList,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite products",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesList,
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	c, err := openClient(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer c.close()

	items, err := c.favorites.Products(cmd.Context(), localOwner)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet.")
		return nil
	}
	printProducts(cmd.OutOrStdout(), items)
	return nil
}

// favoriteCommand builds the add, remove and toggle subcommands, which differ
// only in the service call.
func favoriteCommand(use, short string, apply func(cmd *cobra.Command, c *client, id int64) (bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := openClient(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer c.close()

			fav, err := apply(cmd, c, id)
			if err != nil {
				return err
			}
			if fav {
				fmt.Fprintf(cmd.OutOrStdout(), "Product %d is a favorite.\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Product %d is not a favorite.\n", id)
			}
			return nil
		},
	}
}

func init() {
	favoritesCmd.AddCommand(
		favoritesListCmd,
		favoriteCommand("add", "Mark a product as favorite", func(cmd *cobra.Command, c *client, id int64) (bool, error) {
			return true, c.favorites.AddFavorite(cmd.Context(), localOwner, id)
		}),
		favoriteCommand("remove", "Unmark a favorite product", func(cmd *cobra.Command, c *client, id int64) (bool, error) {
			return false, c.favorites.RemoveFavorite(cmd.Context(), localOwner, id)
		}),
		favoriteCommand("toggle", "Flip a product's favorite flag", func(cmd *cobra.Command, c *client, id int64) (bool, error) {
			return c.favorites.ToggleFavorite(cmd.Context(), localOwner, id)
		}),
	)
}
