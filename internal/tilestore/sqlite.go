package tilestore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/girarda/civ/internal/hexgrid"
	"github.com/girarda/civ/internal/mapgen"
	"github.com/girarda/civ/internal/tile"
)

// DB wraps a SQLite connection storing generated maps. Each map is
// saved under a UUID together with its full MapConfig, so a stored map
// can be either reloaded directly or regenerated from its config.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		config_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tiles (
		map_id TEXT NOT NULL REFERENCES maps(id),
		q INTEGER NOT NULL,
		r INTEGER NOT NULL,
		terrain TEXT NOT NULL,
		feature TEXT,
		resource TEXT,
		food INTEGER NOT NULL,
		production INTEGER NOT NULL,
		gold INTEGER NOT NULL,
		science INTEGER NOT NULL,
		culture INTEGER NOT NULL,
		faith INTEGER NOT NULL,
		rivers INTEGER NOT NULL,
		PRIMARY KEY (map_id, q, r)
	);

	CREATE INDEX IF NOT EXISTS idx_tiles_map ON tiles(map_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveMap stores a generated map with its configuration and returns the
// new map ID.
func (db *DB) SaveMap(cfg mapgen.MapConfig, tiles []tile.Tile) (string, error) {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	id := uuid.NewString()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO maps (id, created_at, config_json) VALUES (?, ?, ?)",
		id, time.Now().UTC().Format(time.RFC3339), string(cfgJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert map: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO tiles
		(map_id, q, r, terrain, feature, resource,
		 food, production, gold, science, culture, faith, rivers)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, t := range tiles {
		var feature, resource any
		if t.Feature != nil {
			feature = t.Feature.String()
		}
		if t.Resource != nil {
			resource = t.Resource.String()
		}

		_, err := stmt.Exec(
			id, t.Position.Q, t.Position.R, t.Terrain.String(), feature, resource,
			t.Yields.Food, t.Yields.Production, t.Yields.Gold,
			t.Yields.Science, t.Yields.Culture, t.Yields.Faith,
			t.Rivers.Bits(),
		)
		if err != nil {
			return "", fmt.Errorf("insert tile %v: %w", t.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("map saved", "id", id, "tiles", len(tiles))
	return id, nil
}

type tileRow struct {
	Q          int            `db:"q"`
	R          int            `db:"r"`
	Terrain    string         `db:"terrain"`
	Feature    sql.NullString `db:"feature"`
	Resource   sql.NullString `db:"resource"`
	Food       int            `db:"food"`
	Production int            `db:"production"`
	Gold       int            `db:"gold"`
	Science    int            `db:"science"`
	Culture    int            `db:"culture"`
	Faith      int            `db:"faith"`
	Rivers     uint8          `db:"rivers"`
}

// LoadMap restores a stored map: its configuration and every tile, in
// q-outer/r-inner order.
func (db *DB) LoadMap(id string) (mapgen.MapConfig, []tile.Tile, error) {
	var cfgJSON string
	err := db.conn.Get(&cfgJSON, "SELECT config_json FROM maps WHERE id = ?", id)
	if err != nil {
		return mapgen.MapConfig{}, nil, fmt.Errorf("load map %s: %w", id, err)
	}

	var cfg mapgen.MapConfig
	if err := json.Unmarshal([]byte(cfgJSON), &cfg); err != nil {
		return mapgen.MapConfig{}, nil, fmt.Errorf("unmarshal config: %w", err)
	}

	var rows []tileRow
	err = db.conn.Select(&rows,
		"SELECT q, r, terrain, feature, resource, food, production, gold, science, culture, faith, rivers FROM tiles WHERE map_id = ? ORDER BY q, r",
		id,
	)
	if err != nil {
		return mapgen.MapConfig{}, nil, fmt.Errorf("load tiles: %w", err)
	}

	tiles := make([]tile.Tile, 0, len(rows))
	for _, row := range rows {
		terrain, err := tile.ParseTerrain(row.Terrain)
		if err != nil {
			return mapgen.MapConfig{}, nil, fmt.Errorf("tile (%d, %d): %w", row.Q, row.R, err)
		}

		var feature *tile.Feature
		if row.Feature.Valid {
			f, err := tile.ParseFeature(row.Feature.String)
			if err != nil {
				return mapgen.MapConfig{}, nil, fmt.Errorf("tile (%d, %d): %w", row.Q, row.R, err)
			}
			feature = &f
		}

		var resource *tile.Resource
		if row.Resource.Valid {
			r, err := tile.ParseResource(row.Resource.String)
			if err != nil {
				return mapgen.MapConfig{}, nil, fmt.Errorf("tile (%d, %d): %w", row.Q, row.R, err)
			}
			resource = &r
		}

		tiles = append(tiles, tile.Tile{
			Position: hexgrid.At(row.Q, row.R),
			Terrain:  terrain,
			Feature:  feature,
			Resource: resource,
			Yields: tile.Yields{
				Food:       row.Food,
				Production: row.Production,
				Gold:       row.Gold,
				Science:    row.Science,
				Culture:    row.Culture,
				Faith:      row.Faith,
			},
			Rivers: tile.NewRiverEdges(row.Rivers),
		})
	}

	return cfg, tiles, nil
}

// MapIDs returns the IDs of all stored maps, oldest first.
func (db *DB) MapIDs() ([]string, error) {
	var ids []string
	err := db.conn.Select(&ids, "SELECT id FROM maps ORDER BY created_at")
	return ids, err
}
