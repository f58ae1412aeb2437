// Package schedule implements busroutes.ScheduleService by fetching schedule
// pages and running them through the extraction pipelines.
package schedule

import (
	"context"

	"github.com/fwojciec/busroutes"
)

// Ensure Service implements busroutes.ScheduleService at compile time.
var _ busroutes.ScheduleService = (*Service)(nil)

// Service looks up cities and routes on the schedule site.
// Each lookup fetches its page once; nothing is kept between calls.
type Service struct {
	Fetcher      busroutes.Fetcher
	Cities       busroutes.CityExtractor
	Destinations busroutes.DestinationExtractor

	// BaseURL is the site root. Defaults to busroutes.DefaultBaseURL.
	BaseURL string
}

// FindCities fetches the schedule index and extracts its cities.
func (s *Service) FindCities(ctx context.Context) ([]busroutes.City, error) {
	text, err := s.Fetcher.Fetch(ctx, busroutes.IndexURL(s.baseURL()))
	if err != nil {
		return nil, err
	}
	return s.Cities.ExtractCities(text), nil
}

// FindRoute fetches the page for routeID and extracts its destinations.
// When some destination blocks are misaligned, the route holding the
// remaining destinations is returned together with the alignment errors.
func (s *Service) FindRoute(ctx context.Context, routeID string) (*busroutes.Route, error) {
	if err := busroutes.ValidateRouteID(routeID); err != nil {
		return nil, err
	}

	url := busroutes.RouteURL(s.baseURL(), routeID)
	text, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	destinations, err := s.Destinations.ExtractDestinations(text)
	return &busroutes.Route{
		ID:           routeID,
		URL:          url,
		Destinations: destinations,
	}, err
}

func (s *Service) baseURL() string {
	if s.BaseURL == "" {
		return busroutes.DefaultBaseURL
	}
	return s.BaseURL
}
