package sqlite

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/busroutes"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ busroutes.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements busroutes.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// ContentHash returns the hex xxhash of the snapshot's cities and routes.
// Snapshots with identical records have identical hashes.
func ContentHash(cities []busroutes.City, routes []busroutes.Route) (string, error) {
	b, err := json.Marshal(struct {
		Cities []busroutes.City  `json:"cities"`
		Routes []busroutes.Route `json:"routes"`
	}{cities, routes})
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(b), 16), nil
}

// CreateSnapshot stores a snapshot with its cities and routes in one transaction.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *busroutes.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	hash, err := ContentHash(snapshot.Cities, snapshot.Routes)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.New().String()
	takenAt := time.Now().UTC()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, base_url, content_hash, taken_at)
		VALUES (?, ?, ?, ?)
	`, id, snapshot.BaseURL, hash, takenAt.Format(timeFormat)); err != nil {
		return err
	}

	for i, c := range snapshot.Cities {
		buses, err := encodeList(c.BusNumbers)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO cities (snapshot_id, position, name, bus_numbers)
			VALUES (?, ?, ?, ?)
		`, id, i, c.Name, buses); err != nil {
			return err
		}
	}

	for i, r := range snapshot.Routes {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO routes (snapshot_id, position, route_id, url)
			VALUES (?, ?, ?, ?)
		`, id, i, r.ID, r.URL); err != nil {
			return err
		}
		for j, d := range r.Destinations {
			numbers, err := encodeList(d.StopNumbers)
			if err != nil {
				return err
			}
			names, err := encodeList(d.StopNames)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO destinations (snapshot_id, route_position, position, name, stop_numbers, stop_names)
				VALUES (?, ?, ?, ?, ?, ?)
			`, id, i, j, d.Name, numbers, names); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	snapshot.ID = id
	snapshot.ContentHash = hash
	snapshot.TakenAt = takenAt
	return nil
}

// FindSnapshotByID retrieves a snapshot with its cities and routes.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*busroutes.Snapshot, error) {
	snapshots, err := s.FindSnapshots(ctx, busroutes.SnapshotFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, busroutes.Errorf(busroutes.ENOTFOUND, "snapshot not found")
	}
	snapshot := snapshots[0]

	if snapshot.Cities, err = s.findCities(ctx, id); err != nil {
		return nil, err
	}
	if snapshot.Routes, err = s.findRoutes(ctx, id); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// FindSnapshots retrieves snapshot headers matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter busroutes.SnapshotFilter) ([]*busroutes.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, base_url, content_hash, taken_at FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.BaseURL != nil {
		query.WriteString(" AND base_url = ?")
		args = append(args, *filter.BaseURL)
	}

	query.WriteString(" ORDER BY taken_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*busroutes.Snapshot
	for rows.Next() {
		var snapshot busroutes.Snapshot
		var takenAt string

		if err := rows.Scan(&snapshot.ID, &snapshot.BaseURL, &snapshot.ContentHash, &takenAt); err != nil {
			return nil, err
		}
		if snapshot.TakenAt, err = parseTime(takenAt, "taken_at"); err != nil {
			return nil, err
		}

		snapshots = append(snapshots, &snapshot)
	}

	return snapshots, rows.Err()
}

// DeleteSnapshot permanently removes a snapshot. Its records are removed by
// cascading foreign keys.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return busroutes.Errorf(busroutes.ENOTFOUND, "snapshot not found")
	}

	return nil
}

func (s *SnapshotService) findCities(ctx context.Context, snapshotID string) ([]busroutes.City, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, bus_numbers FROM cities
		WHERE snapshot_id = ?
		ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []busroutes.City
	for rows.Next() {
		var c busroutes.City
		var buses string
		if err := rows.Scan(&c.Name, &buses); err != nil {
			return nil, err
		}
		if c.BusNumbers, err = decodeList(buses, "bus_numbers"); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (s *SnapshotService) findRoutes(ctx context.Context, snapshotID string) ([]busroutes.Route, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT route_id, url FROM routes
		WHERE snapshot_id = ?
		ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []busroutes.Route
	for rows.Next() {
		var r busroutes.Route
		if err := rows.Scan(&r.ID, &r.URL); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range routes {
		if routes[i].Destinations, err = s.findDestinations(ctx, snapshotID, i); err != nil {
			return nil, err
		}
	}
	return routes, nil
}

func (s *SnapshotService) findDestinations(ctx context.Context, snapshotID string, routePosition int) ([]busroutes.RouteDestination, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, stop_numbers, stop_names FROM destinations
		WHERE snapshot_id = ? AND route_position = ?
		ORDER BY position
	`, snapshotID, routePosition)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var destinations []busroutes.RouteDestination
	for rows.Next() {
		var name, numbers, names string
		if err := rows.Scan(&name, &numbers, &names); err != nil {
			return nil, err
		}
		stopNumbers, err := decodeList(numbers, "stop_numbers")
		if err != nil {
			return nil, err
		}
		stopNames, err := decodeList(names, "stop_names")
		if err != nil {
			return nil, err
		}
		d, err := busroutes.NewRouteDestination(name, stopNumbers, stopNames)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}
