package main

import (
	"fmt"

	"github.com/fwojciec/alpenpass"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var passes []*alpenpass.Pass
	var err error
	switch {
	case c.Open:
		passes, err = deps.Passes.FindOpenPasses(deps.Ctx)
	case c.Restricted:
		passes, err = deps.Passes.FindPassesWithRestrictions(deps.Ctx)
	default:
		passes, err = deps.Passes.FindPasses(deps.Ctx)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", alpenpass.ErrorMessage(err))
		return err
	}

	if len(passes) == 0 {
		fmt.Fprintln(deps.Stdout, "No passes found.")
		return nil
	}

	for _, p := range passes {
		fmt.Fprintln(deps.Stdout, p.String())
	}
	return nil
}
