package mock

import (
	"context"

	"github.com/fwojciec/busroutes"
)

// Compile-time interface verification.
var (
	_ busroutes.ScheduleService      = (*ScheduleService)(nil)
	_ busroutes.CityExtractor        = (*CityExtractor)(nil)
	_ busroutes.DestinationExtractor = (*DestinationExtractor)(nil)
)

// ScheduleService is a mock implementation of busroutes.ScheduleService.
type ScheduleService struct {
	FindCitiesFn func(ctx context.Context) ([]busroutes.City, error)
	FindRouteFn  func(ctx context.Context, routeID string) (*busroutes.Route, error)
}

func (s *ScheduleService) FindCities(ctx context.Context) ([]busroutes.City, error) {
	return s.FindCitiesFn(ctx)
}

func (s *ScheduleService) FindRoute(ctx context.Context, routeID string) (*busroutes.Route, error) {
	return s.FindRouteFn(ctx, routeID)
}

// CityExtractor is a mock implementation of busroutes.CityExtractor.
type CityExtractor struct {
	ExtractCitiesFn func(text string) []busroutes.City
}

func (e *CityExtractor) ExtractCities(text string) []busroutes.City {
	return e.ExtractCitiesFn(text)
}

// DestinationExtractor is a mock implementation of busroutes.DestinationExtractor.
type DestinationExtractor struct {
	ExtractDestinationsFn func(text string) ([]busroutes.RouteDestination, error)
}

func (e *DestinationExtractor) ExtractDestinations(text string) ([]busroutes.RouteDestination, error) {
	return e.ExtractDestinationsFn(text)
}
