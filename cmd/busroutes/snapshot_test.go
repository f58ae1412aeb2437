package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/busroutes"
	main "github.com/fwojciec/busroutes/cmd/busroutes"
	"github.com/fwojciec/busroutes/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("archives cities and the listed routes", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		schedules := &mock.ScheduleService{
			FindCitiesFn: func(_ context.Context) ([]busroutes.City, error) {
				return testCities(), nil
			},
			FindRouteFn: func(_ context.Context, routeID string) (*busroutes.Route, error) {
				fetched = append(fetched, routeID)
				return testRoute(routeID), nil
			},
		}

		var saved *busroutes.Snapshot
		snapshots := &mock.SnapshotService{
			CreateSnapshotFn: func(_ context.Context, s *busroutes.Snapshot) error {
				s.ID = "snap-1"
				saved = s
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			BaseURL:   "https://www.communitytransit.org",
			Schedules: schedules,
			Snapshots: snapshots,
		}

		err := (&main.SnapshotCmd{Routes: []string{"105", "220"}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"105", "220"}, fetched)
		require.NotNil(t, saved)
		assert.Equal(t, "https://www.communitytransit.org", saved.BaseURL)
		assert.Len(t, saved.Cities, 3)
		require.Len(t, saved.Routes, 2)
		assert.Equal(t, "220", saved.Routes[1].ID)
		assert.Equal(t, "Saved snapshot snap-1 (3 cities, 2 routes)\n", stdout.String())
	})

	t.Run("all archives each distinct bus number once", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		schedules := &mock.ScheduleService{
			FindCitiesFn: func(_ context.Context) ([]busroutes.City, error) {
				return []busroutes.City{
					{Name: "Bothell", BusNumbers: []string{"105", "106"}},
					{Name: "Brier", BusNumbers: []string{"106", "111"}},
				}, nil
			},
			FindRouteFn: func(_ context.Context, routeID string) (*busroutes.Route, error) {
				fetched = append(fetched, routeID)
				return testRoute(routeID), nil
			},
		}
		snapshots := &mock.SnapshotService{
			CreateSnapshotFn: func(_ context.Context, _ *busroutes.Snapshot) error {
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			BaseURL:   "https://www.communitytransit.org",
			Schedules: schedules,
			Snapshots: snapshots,
		}

		err := (&main.SnapshotCmd{All: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"105", "106", "111"}, fetched)
	})

	t.Run("keeps a route with rejected destinations", func(t *testing.T) {
		t.Parallel()

		schedules := &mock.ScheduleService{
			FindCitiesFn: func(_ context.Context) ([]busroutes.City, error) {
				return testCities(), nil
			},
			FindRouteFn: func(_ context.Context, routeID string) (*busroutes.Route, error) {
				return testRoute(routeID), errors.Join(&busroutes.AlignmentError{Destination: "To Everett", Numbers: 1, Names: 0})
			},
		}

		var saved *busroutes.Snapshot
		snapshots := &mock.SnapshotService{
			CreateSnapshotFn: func(_ context.Context, s *busroutes.Snapshot) error {
				saved = s
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			BaseURL:   "https://www.communitytransit.org",
			Schedules: schedules,
			Snapshots: snapshots,
		}

		err := (&main.SnapshotCmd{Routes: []string{"105"}}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Len(t, saved.Routes, 1)
		assert.Contains(t, stderr.String(), "warning: route 105: skipped")
	})

	t.Run("does not save when a route fetch fails", func(t *testing.T) {
		t.Parallel()

		schedules := &mock.ScheduleService{
			FindCitiesFn: func(_ context.Context) ([]busroutes.City, error) {
				return testCities(), nil
			},
			FindRouteFn: func(_ context.Context, routeID string) (*busroutes.Route, error) {
				return nil, &busroutes.FetchError{URL: "https://example.com/r/" + routeID, StatusCode: 404}
			},
		}

		saveCalled := false
		snapshots := &mock.SnapshotService{
			CreateSnapshotFn: func(_ context.Context, _ *busroutes.Snapshot) error {
				saveCalled = true
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			BaseURL:   "https://www.communitytransit.org",
			Schedules: schedules,
			Snapshots: snapshots,
		}

		err := (&main.SnapshotCmd{Routes: []string{"105"}}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, busroutes.EFETCH, busroutes.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: route 105:")
		assert.False(t, saveCalled)
	})
}
