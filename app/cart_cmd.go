package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var cartQuantity int64

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show or change the shopping cart",
	Args:  cobra.NoArgs,
	RunE:  runCartShow,
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cart lines and totals",
	Args:  cobra.NoArgs,
	RunE:  runCartShow,
}

func runCartShow(cmd *cobra.Command, args []string) error {
	c, err := openClient(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer c.close()
	return showCart(cmd, c)
}

func showCart(cmd *cobra.Command, c *client) error {
	summary, err := c.cart.Summary(cmd.Context(), localOwner)
	if err != nil {
		return err
	}
	printCart(cmd.OutOrStdout(), summary)
	return nil
}

var cartAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a catalog product to the cart",
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

		p, err := c.catalog.GetItem(cmd.Context(), id)
		if err != nil {
			return userError(err)
		}
		if err := c.cart.AddItem(cmd.Context(), localOwner, *p, cartQuantity); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %d x %s to cart.\n", cartQuantity, p.Name)
		return nil
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <id> <quantity>",
	Short: "Set a line quantity; zero or less removes the line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		qty, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		c, err := openClient(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer c.close()

		if err := c.cart.SetQuantity(cmd.Context(), localOwner, id, qty); err != nil {
			return err
		}
		return showCart(cmd, c)
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a line from the cart",
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

		if err := c.cart.RemoveItem(cmd.Context(), localOwner, id); err != nil {
			return err
		}
		return showCart(cmd, c)
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openClient(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer c.close()

		if err := c.cart.Clear(cmd.Context(), localOwner); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared.")
		return nil
	},
}

func init() {
	cartAddCmd.Flags().Int64VarP(&cartQuantity, "qty", "n", 1, "quantity to add")
	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartSetCmd, cartRemoveCmd, cartClearCmd)
}
