package busroutes

import (
	"errors"
	"strings"
)

// Delimiter separates blocks of output.
const Delimiter = "+++++++++++++++++++++++++++++++++++"

// FormatCities formats cities with their bus numbers for display.
// Each city is followed by a delimiter line.
func FormatCities(cities []City) string {
	var b strings.Builder
	for _, c := range cities {
		b.WriteString("Destination: " + c.Name + "\n")
		for _, n := range c.BusNumbers {
			b.WriteString("Bus Number: " + n + "\n")
		}
		b.WriteString(Delimiter + "\n")
	}
	return b.String()
}

// FormatRoute formats a route link followed by each destination and its
// stops for display. Destinations whose stops cannot be paired are left out
// and returned as joined *AlignmentError values.
func FormatRoute(route *Route) (string, error) {
	if route == nil {
		return "", nil
	}

	var b strings.Builder
	var errs []error
	b.WriteString("The link for your route is: " + route.URL + "\n\n")
	for _, d := range route.Destinations {
		stops, err := d.Stops()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		b.WriteString("Destination: " + d.Name + "\n")
		for _, s := range stops {
			b.WriteString("Stop number: " + s.Number + " is " + s.Name + "\n")
		}
		b.WriteString(Delimiter + "\n")
	}
	return b.String(), errors.Join(errs...)
}
