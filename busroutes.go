// Package busroutes looks up bus routes and stops published on a transit
// agency's schedule pages. It fetches the schedule index and individual route
// pages, extracts cities, bus numbers, destinations and stops from the raw
// HTML text, and presents them through an interactive CLI.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, sqlite/, prometheus/).
package busroutes
