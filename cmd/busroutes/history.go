package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/busroutes"
)

// Run executes the history list command.
func (c *HistoryListCmd) Run(deps *Dependencies) error {
	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, busroutes.SnapshotFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", busroutes.ErrorMessage(err))
		return err
	}

	if len(snapshots) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'busroutes snapshot' to create one.")
		return nil
	}

	for _, s := range snapshots {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", s.ID, s.TakenAt.Format(time.RFC3339), s.ContentHash, s.BaseURL)
	}

	return nil
}

// Run executes the history show command.
func (c *HistoryShowCmd) Run(deps *Dependencies) error {
	snapshot, err := deps.Snapshots.FindSnapshotByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", busroutes.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Snapshot: %s\n", snapshot.ID)
	fmt.Fprintf(deps.Stdout, "Taken:    %s\n", snapshot.TakenAt.Format(time.RFC3339))
	fmt.Fprintf(deps.Stdout, "Source:   %s\n", snapshot.BaseURL)
	fmt.Fprintf(deps.Stdout, "Hash:     %s\n\n", snapshot.ContentHash)

	fmt.Fprint(deps.Stdout, busroutes.FormatCities(snapshot.Cities))
	for i := range snapshot.Routes {
		text, err := busroutes.FormatRoute(&snapshot.Routes[i])
		fmt.Fprint(deps.Stdout, text)
		for _, ae := range busroutes.AlignmentErrors(err) {
			fmt.Fprintf(deps.Stderr, "warning: route %s: skipped %s\n", snapshot.Routes[i].ID, ae.Error())
		}
	}

	return nil
}

// Run executes the history rm command.
func (c *HistoryRmCmd) Run(deps *Dependencies) error {
	if err := deps.Snapshots.DeleteSnapshot(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", busroutes.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted snapshot %s\n", c.ID)
	return nil
}
