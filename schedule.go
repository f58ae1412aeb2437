package busroutes

import (
	"context"
	"net/url"
	"strings"
	"unicode"
)

// DefaultBaseURL is the site the schedule pages are fetched from.
const DefaultBaseURL = "https://www.communitytransit.org"

// Route is a bus route page: its link and the destinations it serves.
type Route struct {
	ID           string             `json:"id"`
	URL          string             `json:"url"`
	Destinations []RouteDestination `json:"destinations"`
}

// ScheduleService looks up cities and routes on the schedule site.
type ScheduleService interface {
	// FindCities fetches the schedule index and returns every city with its
	// bus numbers, in page order.
	FindCities(ctx context.Context) ([]City, error)

	// FindRoute fetches a route page and returns its destinations.
	// Returns EINVALID if routeID is not a single token.
	// Destinations whose stops cannot be paired are left out and reported
	// as *AlignmentError alongside the remaining route.
	FindRoute(ctx context.Context, routeID string) (*Route, error)
}

// CityExtractor turns schedule index text into cities.
type CityExtractor interface {
	ExtractCities(text string) []City
}

// DestinationExtractor turns route page text into destinations.
// Misaligned destination blocks are omitted from the result and returned
// joined as the error.
type DestinationExtractor interface {
	ExtractDestinations(text string) ([]RouteDestination, error)
}

// IndexURL returns the URL of the schedule index page.
func IndexURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/busservice/schedules/"
}

// RouteURL returns the URL of the schedule page for routeID.
func RouteURL(baseURL, routeID string) string {
	return strings.TrimSuffix(baseURL, "/") + "/busservice/schedules/route/" + url.PathEscape(routeID)
}

// ValidateRouteID returns an error unless id is one non-empty token with no
// whitespace.
func ValidateRouteID(id string) error {
	if id == "" {
		return Errorf(EINVALID, "route ID required")
	}
	if strings.IndexFunc(id, unicode.IsSpace) >= 0 {
		return Errorf(EINVALID, "route ID %q must be a single token", id)
	}
	return nil
}
