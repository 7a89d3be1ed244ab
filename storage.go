package osm2lanes

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

// LanesRepository Optional Postgres sink for inferred lane specifications.
/*
	Tooling-only collaborator: the engine itself keeps no state between
	calls. One row per way, the lane sequence stored as JSON.
*/
type LanesRepository struct {
	db *sqlx.DB
}

// NewLanesRepository Connects to Postgres and prepares the target table
func NewLanesRepository(connStr string) (*LanesRepository, error) {
	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, errors.Wrap(err, "Postgres connect")
	}
	repo := &LanesRepository{db: db}
	if err := repo.migrate(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (repo *LanesRepository) migrate(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS way_lanes (
			osm_way_id bigint PRIMARY KEY,
			highway text NOT NULL,
			oneway boolean NOT NULL,
			lanes_total integer NOT NULL,
			travel_lanes integer NOT NULL,
			width_m double precision,
			lanes jsonb NOT NULL,
			warnings integer NOT NULL,
			geom text,
			inferred_at timestamptz NOT NULL DEFAULT NOW()
		)`
	_, err := repo.db.ExecContext(ctx, query)
	return errors.Wrap(err, "Table migrate")
}

// SaveWayLanes Upserts the inference result for one way
func (repo *LanesRepository) SaveWayLanes(ctx context.Context, way WayLanes) error {
	lanes, err := json.Marshal(way.Road.Lanes)
	if err != nil {
		return errors.Wrap(err, "Lanes encode")
	}
	var width *float64
	if way.Road.Width != nil {
		w := float64(*way.Road.Width)
		width = &w
	}
	const query = `
		INSERT INTO way_lanes (
			osm_way_id, highway, oneway, lanes_total, travel_lanes,
			width_m, lanes, warnings, geom, inferred_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (osm_way_id) DO UPDATE SET
			highway = EXCLUDED.highway,
			oneway = EXCLUDED.oneway,
			lanes_total = EXCLUDED.lanes_total,
			travel_lanes = EXCLUDED.travel_lanes,
			width_m = EXCLUDED.width_m,
			lanes = EXCLUDED.lanes,
			warnings = EXCLUDED.warnings,
			geom = EXCLUDED.geom,
			inferred_at = NOW()`
	_, err = repo.db.ExecContext(ctx, query,
		int64(way.ID),
		way.Road.Highway.String(),
		way.Road.Oneway,
		len(way.Road.Lanes),
		way.Road.TravelLanes(),
		width,
		lanes,
		len(way.Warnings),
		PrepareWKTLinestring(way.Geom),
	)
	return errors.Wrap(err, "Row upsert")
}

// Close Releases the underlying connection pool
func (repo *LanesRepository) Close() error {
	return repo.db.Close()
}
