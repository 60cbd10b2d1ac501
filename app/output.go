package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	domcart "example.com/vibe-storefront/app/internal/domain/cart"
	domproduct "example.com/vibe-storefront/app/internal/domain/product"
	"example.com/vibe-storefront/app/internal/infra/catalog"
	cartuc "example.com/vibe-storefront/app/internal/usecase/cart"
	"example.com/vibe-storefront/app/internal/usecase/search"
)

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return id, nil
}

// userError turns catalog failures into the messages shown to the user.
func userError(err error) error {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound):
		return errors.New("product not found")
	case errors.Is(err, catalog.ErrUnavailable):
		return errors.New(search.ConnectivityMessage)
	}
	return err
}

func printProducts(w io.Writer, items []domproduct.Product) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE")
	for _, p := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, money(p.Price))
	}
	tw.Flush()
}

func printSearchState(w io.Writer, st search.State) {
	if st.Loading {
		fmt.Fprintln(w, "Searching...")
		return
	}
	if st.Err != "" {
		fmt.Fprintln(w, st.Err)
		return
	}
	printProducts(w, st.Items)
	fmt.Fprintf(w, "%d product(s)\n", len(st.Items))
}

func printCart(w io.Writer, summary *cartuc.Summary) {
	if len(summary.Items) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tPRICE\tLINE")
	for _, it := range summary.Items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", it.ID, it.Name, it.Quantity, money(it.Price), money(lineTotal(it)))
	}
	tw.Flush()
	fmt.Fprintf(w, "Items: %d\n", summary.Count)
	fmt.Fprintf(w, "Subtotal: %s\n", money(summary.Totals.Subtotal))
	fmt.Fprintf(w, "Tax (%d%%): %s\n", int(domcart.TaxRate*100), money(summary.Totals.Tax))
	fmt.Fprintf(w, "Total: %s\n", money(summary.Totals.Total))
}

func lineTotal(it domcart.LineItem) float64 {
	return domcart.ComputeTotals([]domcart.LineItem{it}).Subtotal
}
