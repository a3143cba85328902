package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/alpenpass"
)

// Run executes the catalog command.
func (c *CatalogCmd) Run(deps *Dependencies) error {
	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tROUTE\tELEVATION")
	for _, e := range alpenpass.Catalog() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d m\n", e.Key, e.Name, e.Route, e.Elevation)
	}
	return w.Flush()
}
