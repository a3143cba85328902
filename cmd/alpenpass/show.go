package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/alpenpass"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	p, err := deps.Passes.FindPassByName(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", alpenpass.ErrorMessage(err))
		return err
	}

	temp := "N/A"
	if p.Temperature != nil {
		temp = strconv.FormatFloat(*p.Temperature, 'f', -1, 64) + "°C"
	}

	w := deps.Stdout
	fmt.Fprintf(w, "Name:        %s\n", p.Name)
	fmt.Fprintf(w, "Route:       %s\n", p.Route)
	fmt.Fprintf(w, "Status:      %s\n", p.Status)
	fmt.Fprintf(w, "Temperature: %s\n", temp)
	if p.LastUpdate != "" {
		fmt.Fprintf(w, "Updated:     %s\n", p.LastUpdate)
	}
	if entry, ok := catalogEntryFor(p.Name); ok {
		fmt.Fprintf(w, "Elevation:   %d m\n", entry.Elevation)
	}
	if p.URL != "" {
		fmt.Fprintf(w, "URL:         %s\n", p.URL)
	}
	if p.Notes != "" {
		fmt.Fprintf(w, "Notes:       %s\n", p.Notes)
	}
	return nil
}

// catalogEntryFor returns the first catalog entry matching a scraped name.
func catalogEntryFor(name string) (alpenpass.CatalogEntry, bool) {
	for _, e := range alpenpass.Catalog() {
		if e.MatchesName(name) {
			return e, true
		}
	}
	return alpenpass.CatalogEntry{}, false
}
