package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/syllo/pkg/syllo/logic"
	"github.com/cognicore/syllo/pkg/syllo/store"
	"github.com/cognicore/syllo/pkg/syllo/template"
)

// sqliteStore implements store.Store using SQLite. Statements are kept
// in their compact textual form; conclusions as a JSON array of those.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS templates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	figure TEXT NOT NULL,
	premise1 TEXT NOT NULL,
	premise2 TEXT NOT NULL,
	conclusions TEXT NOT NULL
);`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveTemplates replaces the stored library inside one transaction.
func (s *sqliteStore) SaveTemplates(ctx context.Context, templates []template.Template) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM templates"); err != nil {
		return err
	}

	for _, t := range templates {
		figure, err := t.Figure()
		if err != nil {
			return err
		}

		conclusions := make([]string, len(t.Correct))
		for i, c := range t.Correct {
			conclusions[i] = c.String()
		}
		encoded, err := json.Marshal(conclusions)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO templates (figure, premise1, premise2, conclusions) VALUES (?, ?, ?, ?)",
			figure.String(), t.Premises[0].String(), t.Premises[1].String(), string(encoded))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadTemplates returns every stored template in insertion order.
func (s *sqliteStore) LoadTemplates(ctx context.Context) ([]template.Template, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, premise1, premise2, conclusions FROM templates ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []template.Template
	for rows.Next() {
		var id int64
		var premise1, premise2, encoded string
		if err := rows.Scan(&id, &premise1, &premise2, &encoded); err != nil {
			return nil, err
		}

		t, err := decodeTemplate(premise1, premise2, encoded)
		if err != nil {
			return nil, fmt.Errorf("template row %d: %w", id, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func decodeTemplate(premise1, premise2, encoded string) (template.Template, error) {
	p1, err := logic.Parse(premise1)
	if err != nil {
		return template.Template{}, err
	}
	p2, err := logic.Parse(premise2)
	if err != nil {
		return template.Template{}, err
	}

	var lines []string
	if err := json.Unmarshal([]byte(encoded), &lines); err != nil {
		return template.Template{}, err
	}
	correct := make([]logic.Statement, len(lines))
	for i, line := range lines {
		c, err := logic.Parse(line)
		if err != nil {
			return template.Template{}, err
		}
		correct[i] = c
	}

	return template.Template{Premises: [2]logic.Statement{p1, p2}, Correct: correct}, nil
}
