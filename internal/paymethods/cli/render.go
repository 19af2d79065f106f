package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aussiebroadwan/paymethods/pkg/registry"
)

const (
	viewTitle    = "Payment Methods"
	viewSubtitle = "Manage and select your preferred payment options"
)

// renderView prints the parent's methods with their available controls.
func renderView(w io.Writer, v registry.View) error {
	fmt.Fprintln(w, viewTitle)
	fmt.Fprintln(w, viewSubtitle)
	fmt.Fprintln(w)

	if !v.Loaded {
		if v.Err != nil {
			fmt.Fprintf(w, "Could not load payment methods: %v\n", v.Err)
		} else {
			fmt.Fprintln(w, "Loading...")
		}
		return nil
	}

	if v.Stale {
		fmt.Fprintf(w, "Showing the last loaded list, refresh failed: %v\n\n", v.Err)
	}

	if len(v.Rows) == 0 {
		fmt.Fprintln(w, "No payment methods yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL\tSTATUS\tCREATED\tACTIONS")
	for _, row := range v.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\tCreated %s\t%s\n",
			row.ID, row.Label, row.Status, row.Created, actions(row))
	}
	return tw.Flush()
}

func actions(row registry.Row) string {
	var out string
	if row.CanActivate {
		out = "activate, "
	}
	if row.DeleteVisible {
		if row.DeleteEnabled {
			out += "delete"
		} else {
			out += "delete (disabled: active method)"
		}
	}
	return out
}
