package main

import (
	"fmt"

	"github.com/fwojciec/busroutes"
)

// Run executes the cities command.
func (c *CitiesCmd) Run(deps *Dependencies) error {
	if err := busroutes.ValidateInitial(c.Letter); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", busroutes.ErrorMessage(err))
		return err
	}

	cities, err := deps.Schedules.FindCities(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", busroutes.ErrorMessage(err))
		return err
	}

	showCities(deps, cities, c.Letter)
	return nil
}
