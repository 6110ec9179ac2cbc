package gallery

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Project is one inventory item in the project gallery
type Project struct {
	ID          int64
	Title       string
	Tagline     string
	Description string
	Tech        string
	URL         string
	Year        int
}

// ErrNotFound is returned when a project id does not exist
var ErrNotFound = errors.New("project not found")

// Store is the sqlite-backed project inventory
// Read-only at runtime; the schema is migrated and seeded on open
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	tagline     TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	tech        TEXT NOT NULL DEFAULT '',
	url         TEXT NOT NULL DEFAULT '',
	year        INTEGER NOT NULL DEFAULT 0
);`

// Open opens (creating if needed) the gallery database at path and
// ensures the schema and seed data exist
// Use ":memory:" for an ephemeral store
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open gallery db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate gallery schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedIfEmpty(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// Projects lists all projects, newest year first
func (s *Store) Projects() ([]Project, error) {
	rows, err := s.db.Query(
		`SELECT id, title, tagline, description, tech, url, year
		 FROM projects ORDER BY year DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Tagline, &p.Description, &p.Tech, &p.URL, &p.Year); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Project fetches one project by id
func (s *Store) Project(id int64) (Project, error) {
	var p Project
	err := s.db.QueryRow(
		`SELECT id, title, tagline, description, tech, url, year
		 FROM projects WHERE id = ?`, id).
		Scan(&p.ID, &p.Title, &p.Tagline, &p.Description, &p.Tech, &p.URL, &p.Year)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, ErrNotFound
	}
	if err != nil {
		return Project{}, fmt.Errorf("get project %d: %w", id, err)
	}
	return p, nil
}

// seedIfEmpty inserts the built-in portfolio entries on first open
func (s *Store) seedIfEmpty() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return fmt.Errorf("count projects: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO projects (title, tagline, description, tech, url, year)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	defer stmt.Close()

	for _, p := range seedProjects {
		if _, err := stmt.Exec(p.Title, p.Tagline, p.Description, p.Tech, p.URL, p.Year); err != nil {
			return fmt.Errorf("seed project %q: %w", p.Title, err)
		}
	}
	return tx.Commit()
}

var seedProjects = []Project{
	{
		Title:       "driftwood",
		Tagline:     "log shipping over unreliable links",
		Description: "A store-and-forward log shipper for field devices with flaky uplinks. Batches, compresses and replays on reconnect.",
		Tech:        "Go, SQLite, zstd",
		URL:         "https://github.com/hexworth/driftwood",
		Year:        2024,
	},
	{
		Title:       "hexmap",
		Tagline:     "terminal hex-grid strategy sandbox",
		Description: "A tcell-based hex map renderer with pathfinding and fog of war, built to learn terminal rendering tricks.",
		Tech:        "Go, tcell",
		URL:         "https://github.com/hexworth/hexmap",
		Year:        2023,
	},
	{
		Title:       "chord",
		Tagline:     "tiny DHT, faithfully boring",
		Description: "A from-the-paper Chord implementation with stabilization, successor lists and a simulation harness.",
		Tech:        "Go, gRPC",
		URL:         "https://github.com/hexworth/chord",
		Year:        2022,
	},
	{
		Title:       "beeps",
		Tagline:     "procedural sound effects library",
		Description: "Small synthesized-effect toolkit: chirps, cracks and arpeggios as composable streamers.",
		Tech:        "Go, beep",
		URL:         "https://github.com/hexworth/beeps",
		Year:        2022,
	},
	{
		Title:       "this site",
		Tagline:     "the thing you are looking at",
		Description: "A portfolio that boots into a terminal game: biomes, hotbar, toasts, parkour and a trivia mine.",
		Tech:        "Go, tcell, beep, SQLite",
		URL:         "https://github.com/hexworth/blockfolio",
		Year:        2025,
	},
}
