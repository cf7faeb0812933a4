package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/theoremus-urban-solutions/bikeshare-ingest/archive"
	"github.com/theoremus-urban-solutions/bikeshare-ingest/daytable"
)

// Store exports built day archives into a SQLite database so downstream
// analysis can query resampled series without decoding gob archives.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open station store: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS stations (
		terminal_id INTEGER PRIMARY KEY,
		name        TEXT NOT NULL,
		lat         REAL NOT NULL,
		lon         REAL NOT NULL,
		installed   INTEGER NOT NULL,
		locked      INTEGER NOT NULL,
		public      INTEGER NOT NULL,
		temporary   INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS day_points (
		date        TEXT NOT NULL,
		terminal_id INTEGER NOT NULL,
		minute      INTEGER NOT NULL,
		bikes       REAL NOT NULL,
		max_bikes   REAL NOT NULL,
		PRIMARY KEY (date, terminal_id, minute)
	);
	CREATE INDEX IF NOT EXISTS idx_day_points_station ON day_points(terminal_id, date);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate station store: %w", err)
	}
	return nil
}

// SaveDay upserts one built day: station metadata plus every grid point of
// the resampled bike and capacity series. The write is transactional so a
// failed export never leaves a partial day behind.
func (s *Store) SaveDay(d *archive.Day, grid []int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	metaStmt, err := tx.Prepare(`INSERT INTO stations
		(terminal_id, name, lat, lon, installed, locked, public, temporary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(terminal_id) DO UPDATE SET
		name=excluded.name, lat=excluded.lat, lon=excluded.lon,
		installed=excluded.installed, locked=excluded.locked,
		public=excluded.public, temporary=excluded.temporary`)
	if err != nil {
		return err
	}
	defer metaStmt.Close()
	for id, m := range d.Metadata {
		if _, err := metaStmt.Exec(id, m.Name, m.Lat, m.Lon, m.Installed, m.Locked, m.Public, m.Temporary); err != nil {
			return fmt.Errorf("failed to save station %d: %w", id, err)
		}
	}

	pointStmt, err := tx.Prepare(`INSERT INTO day_points
		(date, terminal_id, minute, bikes, max_bikes)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date, terminal_id, minute) DO UPDATE SET
		bikes=excluded.bikes, max_bikes=excluded.max_bikes`)
	if err != nil {
		return err
	}
	defer pointStmt.Close()
	for id, bikes := range d.Bikes {
		maxBikes := d.MaxBikes[id]
		for i, minute := range grid {
			if i >= len(bikes) || i >= len(maxBikes) {
				break
			}
			if _, err := pointStmt.Exec(d.Key, id, minute, bikes[i], maxBikes[i]); err != nil {
				return fmt.Errorf("failed to save day point %s/%d/%d: %w", d.Key, id, minute, err)
			}
		}
	}

	return tx.Commit()
}

// LoadDay reads one exported day back out of the store.
func (s *Store) LoadDay(key string) (*archive.Day, error) {
	d := &archive.Day{
		Key:      key,
		Bikes:    map[int][]float64{},
		MaxBikes: map[int][]float64{},
		Metadata: map[int]daytable.StationMeta{},
	}

	rows, err := s.db.Query(`SELECT terminal_id, minute, bikes, max_bikes
		FROM day_points WHERE date = ? ORDER BY terminal_id, minute`, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id, minute int
		var bikes, maxBikes float64
		if err := rows.Scan(&id, &minute, &bikes, &maxBikes); err != nil {
			return nil, err
		}
		d.Bikes[id] = append(d.Bikes[id], bikes)
		d.MaxBikes[id] = append(d.MaxBikes[id], maxBikes)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(d.Bikes) == 0 {
		return nil, fmt.Errorf("no exported data for day %s", key)
	}

	for id := range d.Bikes {
		var m daytable.StationMeta
		err := s.db.QueryRow(`SELECT name, lat, lon, installed, locked, public, temporary
			FROM stations WHERE terminal_id = ?`, id).
			Scan(&m.Name, &m.Lat, &m.Lon, &m.Installed, &m.Locked, &m.Public, &m.Temporary)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, err
		}
		d.Metadata[id] = m
	}
	return d, nil
}
