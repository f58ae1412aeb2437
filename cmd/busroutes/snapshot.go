package main

import (
	"fmt"

	"github.com/fwojciec/busroutes"
)

// Run executes the snapshot command.
func (c *SnapshotCmd) Run(deps *Dependencies) error {
	cities, err := deps.Schedules.FindCities(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", busroutes.ErrorMessage(err))
		return err
	}

	routeIDs := c.Routes
	if c.All {
		routeIDs = busNumbers(cities)
	}

	snapshot := &busroutes.Snapshot{
		BaseURL: deps.BaseURL,
		Cities:  cities,
	}
	for _, id := range routeIDs {
		route, err := deps.Schedules.FindRoute(deps.Ctx, id)
		rejected := busroutes.AlignmentErrors(err)
		if err != nil && len(rejected) == 0 {
			fmt.Fprintf(deps.Stderr, "error: route %s: %s\n", id, busroutes.ErrorMessage(err))
			return err
		}
		for _, ae := range rejected {
			fmt.Fprintf(deps.Stderr, "warning: route %s: skipped %s\n", id, ae.Error())
		}
		if route != nil {
			snapshot.Routes = append(snapshot.Routes, *route)
		}
	}

	if err := deps.Snapshots.CreateSnapshot(deps.Ctx, snapshot); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", busroutes.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved snapshot %s (%d cities, %d routes)\n", snapshot.ID, len(snapshot.Cities), len(snapshot.Routes))
	return nil
}

// busNumbers returns the distinct bus numbers across cities in first-seen order.
func busNumbers(cities []busroutes.City) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, c := range cities {
		for _, n := range c.BusNumbers {
			if seen[n] {
				continue
			}
			seen[n] = true
			ids = append(ids, n)
		}
	}
	return ids
}
