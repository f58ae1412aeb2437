package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/busroutes"
)

// Ensure LoggingScheduleService implements busroutes.ScheduleService.
var _ busroutes.ScheduleService = (*LoggingScheduleService)(nil)

// LoggingScheduleService wraps a ScheduleService with debug logging.
type LoggingScheduleService struct {
	next   busroutes.ScheduleService
	logger *slog.Logger
}

// NewLoggingScheduleService creates a new LoggingScheduleService.
func NewLoggingScheduleService(next busroutes.ScheduleService, logger *slog.Logger) *LoggingScheduleService {
	return &LoggingScheduleService{next: next, logger: logger}
}

// FindCities delegates to the wrapped service and logs the number of cities.
func (s *LoggingScheduleService) FindCities(ctx context.Context) (cities []busroutes.City, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find cities",
			"cities", len(cities),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCities(ctx)
}

// FindRoute delegates to the wrapped service and logs the number of destinations.
func (s *LoggingScheduleService) FindRoute(ctx context.Context, routeID string) (route *busroutes.Route, err error) {
	defer func(begin time.Time) {
		destinations := 0
		if route != nil {
			destinations = len(route.Destinations)
		}
		s.logger.Info("find route",
			"route", routeID,
			"destinations", destinations,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRoute(ctx, routeID)
}
