package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domproduct "example.com/vibe-storefront/app/internal/domain/product"
	"example.com/vibe-storefront/app/internal/usecase/search"
)

var (
	itemsText       string
	itemsCategories []string
	itemsSort       string
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Search the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := domproduct.ParseSortKey(itemsSort)
		if err != nil {
			return fmt.Errorf("%w: %q", err, itemsSort)
		}

		ctrl := search.NewController(newCatalogClient(cfg), search.Options{
			Debounce: cfg.Debounce,
			Logger:   logger.Named("search"),
		})
		defer ctrl.Close()

		ctrl.SetText(itemsText)
		ctrl.SetCategories(itemsCategories)
		if err := ctrl.SetSort(key); err != nil {
			return err
		}
		printSearchState(cmd.OutOrStdout(), ctrl.Refresh(cmd.Context()))
		return nil
	},
}

var itemCmd = &cobra.Command{
	Use:   "item <id>",
	Short: "Show a product with related items",
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

		d, err := c.detail.Load(cmd.Context(), localOwner, id)
		if err != nil {
			return userError(err)
		}

		w := cmd.OutOrStdout()
		p := d.Product
		fmt.Fprintf(w, "%s (#%d)\n", p.Name, p.ID)
		fmt.Fprintf(w, "Category: %s\n", p.Category)
		fmt.Fprintf(w, "Price: %s\n", money(p.Price))
		if d.Favorite {
			fmt.Fprintln(w, "Favorite: yes")
		}
		fmt.Fprintf(w, "\n%s\n", p.Description)
		if len(d.Related) > 0 {
			fmt.Fprintln(w, "\nRelated:")
			printProducts(w, d.Related)
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := newCatalogClient(cfg).ListCategories(cmd.Context())
		if err != nil {
			return userError(err)
		}
		for _, name := range cats {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

const browseHelp = `Commands:
  q <text>      set the search text (empty clears it)
  cat <name>    toggle a category filter
  sort <key>    name, price_asc, price_desc or newest
  reset         clear all filters
  quit          exit`

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive search; input is debounced like typing in a search box",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		ctrl := search.NewController(newCatalogClient(cfg), search.Options{
			Debounce: cfg.Debounce,
			Logger:   logger.Named("search"),
			OnChange: func(st search.State) {
				if st.Loading {
					return
				}
				printSearchState(w, st)
			},
		})
		defer ctrl.Close()

		fmt.Fprintln(w, browseHelp)
		ctrl.Start(cmd.Context())

		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			verb, arg, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
			arg = strings.TrimSpace(arg)
			switch verb {
			case "":
			case "q":
				ctrl.SetText(arg)
			case "cat":
				ctrl.ToggleCategory(arg)
			case "sort":
				if err := ctrl.SetSort(domproduct.SortKey(arg)); err != nil {
					fmt.Fprintf(w, "unknown sort key %q\n", arg)
				}
			case "reset":
				ctrl.Start(cmd.Context())
			case "quit", "exit":
				return nil
			default:
				fmt.Fprintln(w, browseHelp)
			}
		}
		return sc.Err()
	},
}

func init() {
	itemsCmd.Flags().StringVarP(&itemsText, "query", "q", "", "free-text search")
	itemsCmd.Flags().StringSliceVar(&itemsCategories, "category", nil, "category filter (repeatable or comma-separated)")
	itemsCmd.Flags().StringVar(&itemsSort, "sort", string(domproduct.SortByName), "sort key: name, price_asc, price_desc, newest")
}
