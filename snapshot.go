package busroutes

import (
	"context"
	"time"
)

// Snapshot is an archived copy of the records extracted from the schedule
// site at one point in time.
type Snapshot struct {
	ID          string    `json:"id"`
	BaseURL     string    `json:"baseUrl"`
	ContentHash string    `json:"contentHash"`
	Cities      []City    `json:"cities"`
	Routes      []Route   `json:"routes"`
	TakenAt     time.Time `json:"takenAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.BaseURL == "" {
		return Errorf(EINVALID, "snapshot base URL required")
	}
	for i := range s.Cities {
		if err := s.Cities[i].Validate(); err != nil {
			return err
		}
	}
	for _, r := range s.Routes {
		if err := ValidateRouteID(r.ID); err != nil {
			return err
		}
	}
	return nil
}

// SnapshotService archives extracted records.
type SnapshotService interface {
	// CreateSnapshot stores a snapshot and sets its ID, ContentHash and
	// TakenAt fields.
	CreateSnapshot(ctx context.Context, snapshot *Snapshot) error

	// FindSnapshotByID retrieves a snapshot with its cities and routes.
	// Returns ENOTFOUND if the snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	// Only the snapshot header fields are populated.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot and its records.
	// Returns ENOTFOUND if the snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID      *string `json:"id"`
	BaseURL *string `json:"baseUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
