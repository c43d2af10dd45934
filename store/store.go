/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package store persists manipulator documents in SQLite.
//
// Documents are stored as YAML under a (holder, kind) pair. Kind is the
// manipulator's Go type name unless the caller chooses another label.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/processor"
	"dirpx.dev/dmx/view"
)

// ErrNotConfigured is returned by operations on a nil or closed store.
var ErrNotConfigured = errors.New("dmx(store): storage is not configured")

// SQLite is a document store backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

// Open opens the database at path, creating the schema when missing.
// ":memory:" opens a private in-memory database.
func Open(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps an in-memory database alive and serializes
	// writers.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS documents (
		holder TEXT NOT NULL,
		kind TEXT NOT NULL,
		doc TEXT NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (holder, kind)
	);
	CREATE INDEX IF NOT EXISTS idx_documents_holder ON documents(holder);
	`)
	return err
}

// Close closes the database handle.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return ErrNotConfigured
	}
	return nil
}

// Save stores n for holder under kind, replacing any previous document.
func (s *SQLite) Save(ctx context.Context, holder, kind string, n *view.Node) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if holder == "" || kind == "" {
		return fmt.Errorf("holder and kind are required")
	}
	doc, err := view.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", holder, kind, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (holder, kind, doc, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (holder, kind) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`,
		holder, kind, string(doc), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save %s/%s: %w", holder, kind, err)
	}
	return nil
}

// Load returns the document stored for holder under kind.
func (s *SQLite) Load(ctx context.Context, holder, kind string) (*view.Node, bool, error) {
	if err := s.ready(ctx); err != nil {
		return nil, false, err
	}
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM documents WHERE holder = ? AND kind = ?`, holder, kind,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s/%s: %w", holder, kind, err)
	}
	n, err := view.Unmarshal([]byte(doc))
	if err != nil {
		return nil, false, fmt.Errorf("decode %s/%s: %w", holder, kind, err)
	}
	return n, true, nil
}

// Delete removes the document and reports whether one existed.
func (s *SQLite) Delete(ctx context.Context, holder, kind string) (bool, error) {
	if err := s.ready(ctx); err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE holder = ? AND kind = ?`, holder, kind)
	if err != nil {
		return false, fmt.Errorf("delete %s/%s: %w", holder, kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s/%s: %w", holder, kind, err)
	}
	return n > 0, nil
}

// Kinds lists the kinds stored for holder in lexical order.
func (s *SQLite) Kinds(ctx context.Context, holder string) ([]string, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT kind FROM documents WHERE holder = ? ORDER BY kind`, holder)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", holder, err)
	}
	defer rows.Close()

	var kinds []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan kind: %w", err)
		}
		kinds = append(kinds, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", holder, err)
	}
	return kinds, nil
}

// KindOf is the kind label SaveData and LoadData use for M.
func KindOf[M apis.Manipulator]() string { return reflect.TypeFor[M]().String() }

// SaveData stores m's container for holder.
func SaveData[M apis.Manipulator](ctx context.Context, s *SQLite, holder string, m M) error {
	return s.Save(ctx, holder, KindOf[M](), m.ToContainer())
}

// LoadData reads M for holder, decoding it with reg's processor for M.
func LoadData[M apis.Manipulator](ctx context.Context, s *SQLite, reg *processor.Registry, holder string) (M, bool, error) {
	var zero M
	n, ok, err := s.Load(ctx, holder, KindOf[M]())
	if err != nil || !ok {
		return zero, false, err
	}
	return processor.Build[M](reg, n)
}
