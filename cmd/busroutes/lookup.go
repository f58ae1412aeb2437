package main

import (
	"fmt"

	"github.com/fwojciec/busroutes"
)

const (
	letterPrompt  = "Please enter the letter your destination starts with: "
	invalidPrompt = "Not valid.\n" + letterPrompt
	routePrompt   = "Please enter a route ID as a string (ex. 111, 230):"
)

// Run executes the interactive lookup: a letter selects cities, then a
// route ID selects the route whose stops are shown.
func (c *LookupCmd) Run(deps *Dependencies) error {
	cities, err := deps.Schedules.FindCities(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", busroutes.ErrorMessage(err))
		return err
	}

	letter, err := promptLetter(deps)
	if err != nil {
		return err
	}

	if !showCities(deps, cities, letter) {
		return nil
	}

	routeID, err := deps.Prompter.Prompt(deps.Ctx, routePrompt)
	if err != nil {
		return err
	}
	return showRoute(deps, routeID)
}

// promptLetter asks until the user enters a single letter.
func promptLetter(deps *Dependencies) (string, error) {
	message := letterPrompt
	for {
		token, err := deps.Prompter.Prompt(deps.Ctx, message)
		if err != nil {
			return "", err
		}
		if busroutes.ValidateInitial(token) == nil {
			return token, nil
		}
		message = invalidPrompt
	}
}

// showCities prints the cities starting with letter and reports whether
// there were any.
func showCities(deps *Dependencies, cities []busroutes.City, letter string) bool {
	matches, found := busroutes.CitiesByInitial(cities, letter)
	if !found {
		fmt.Fprintf(deps.Stdout, "No destinations start with: %s\n", letter)
		return false
	}
	fmt.Fprint(deps.Stdout, busroutes.FormatCities(matches))
	return true
}

// showRoute prints a route's destinations. Destinations rejected because
// their stops could not be paired are reported as warnings.
func showRoute(deps *Dependencies, routeID string) error {
	route, err := deps.Schedules.FindRoute(deps.Ctx, routeID)
	rejected := busroutes.AlignmentErrors(err)
	if err != nil && len(rejected) == 0 {
		fmt.Fprintf(deps.Stderr, "error: %s\n", busroutes.ErrorMessage(err))
		return err
	}

	text, ferr := busroutes.FormatRoute(route)
	rejected = append(rejected, busroutes.AlignmentErrors(ferr)...)
	fmt.Fprint(deps.Stdout, text)
	if route == nil || (len(route.Destinations) == 0 && len(rejected) == 0) {
		fmt.Fprintf(deps.Stdout, "No destinations found for route %s.\n", routeID)
	}
	for _, ae := range rejected {
		fmt.Fprintf(deps.Stderr, "warning: skipped %s\n", ae.Error())
	}
	return nil
}
