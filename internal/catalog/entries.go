package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"namesake/internal/name"
)

const entryColumns = "id, kind, english, non_eng, romanized, lit_translation, extra_json, added_at"

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Add stores n under kind and returns the new entry. Adding a second entry
// with the same kind, English and NonEng returns ErrDuplicate.
func (s *Store) Add(ctx context.Context, kind Kind, n *name.Name) (Entry, error) {
	ctx = ensureContext(ctx)
	if err := validateEntry(kind, n); err != nil {
		return Entry{}, err
	}
	entry := newEntry(kind, n)
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		inserted, err := insertEntry(ctx, tx, entry)
		if err != nil {
			return err
		}
		if !inserted {
			return fmt.Errorf("%w: %s %s", ErrDuplicate, kind, n)
		}
		return nil
	})
	if err != nil {
		return Entry{}, fmt.Errorf("add entry: %w", err)
	}
	return entry, nil
}

// Get fetches one entry by ID.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get entry: %w", err)
	}
	versions, err := loadVersions(ctx, s.db, `WHERE entry_id = ?`, id)
	if err != nil {
		return Entry{}, err
	}
	attachVersions(&entry, versions[entry.ID])
	return entry, nil
}

// List returns entries of the given kind, or every entry when kind is empty,
// ordered by kind, English, and NonEng.
func (s *Store) List(ctx context.Context, kind Kind) ([]Entry, error) {
	ctx = ensureContext(ctx)
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE (? = '' OR kind = ?) ORDER BY kind, english, non_eng, id`,
		string(kind), string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	_ = rows.Close()

	versions, err := loadVersions(ctx, s.db,
		`WHERE entry_id IN (SELECT id FROM entries WHERE (? = '' OR kind = ?))`,
		string(kind), string(kind),
	)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		attachVersions(&entries[i], versions[entries[i].ID])
	}
	return entries, nil
}

// Remove deletes the entry with id along with its versions.
func (s *Store) Remove(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)
	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("remove entry: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("remove entry: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil
	})
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	ctx = ensureContext(ctx)
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM entries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

// ImportStats summarises an Import call.
type ImportStats struct {
	Added   int
	Skipped int
}

// Import reads a JSON array of {"kind", "name"} records and stores them in a
// single transaction. Records whose kind and name key already exist, in the
// catalog or earlier in the same input, are skipped.
func (s *Store) Import(ctx context.Context, r io.Reader) (ImportStats, error) {
	ctx = ensureContext(ctx)
	var records []importRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return ImportStats{}, fmt.Errorf("decode import: %w", err)
	}
	for i, rec := range records {
		if err := validateEntry(rec.Kind, rec.Name); err != nil {
			return ImportStats{}, fmt.Errorf("import record %d: %w", i, err)
		}
	}

	var stats ImportStats
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		stats = ImportStats{}
		seen := make(map[importKey]struct{}, len(records))
		for _, rec := range records {
			key := importKey{kind: rec.Kind, key: rec.Name.Key()}
			if _, dup := seen[key]; dup {
				stats.Skipped++
				continue
			}
			seen[key] = struct{}{}

			inserted, err := insertEntry(ctx, tx, newEntry(rec.Kind, rec.Name))
			if err != nil {
				return err
			}
			if inserted {
				stats.Added++
			} else {
				stats.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return ImportStats{}, fmt.Errorf("import entries: %w", err)
	}
	return stats, nil
}

type importKey struct {
	kind Kind
	key  name.Key
}

func validateEntry(kind Kind, n *name.Name) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	if n.IsZero() {
		return ErrEmptyName
	}
	return nil
}

func newEntry(kind Kind, n *name.Name) Entry {
	return Entry{
		ID:      uuid.NewString(),
		Kind:    kind,
		Name:    n,
		AddedAt: time.Now().UTC(),
	}
}

// insertEntry writes entry and its versions. It reports false without error
// when the (kind, english, non_eng) key is already taken.
func insertEntry(ctx context.Context, q querier, entry Entry) (bool, error) {
	n := entry.Name
	extra, err := marshalExtra(n.Extra)
	if err != nil {
		return false, err
	}
	res, err := q.ExecContext(ctx,
		`INSERT INTO entries (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT (kind, english, non_eng) DO NOTHING`,
		entry.ID,
		string(entry.Kind),
		n.English,
		n.NonEng,
		nullableString(n.Romanized),
		nullableString(n.LitTranslation),
		extra,
		entry.AddedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("insert entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert entry: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	position := 0
	for _, v := range n.Versions {
		if v.IsZero() {
			continue
		}
		if _, err := q.ExecContext(ctx,
			`INSERT INTO versions (entry_id, position, english, non_eng, romanized, lit_translation)
             VALUES (?, ?, ?, ?, ?, ?)`,
			entry.ID,
			position,
			v.English,
			v.NonEng,
			nullableString(v.Romanized),
			nullableString(v.LitTranslation),
		); err != nil {
			return false, fmt.Errorf("insert version: %w", err)
		}
		position++
	}
	return true, nil
}

type versionRow struct {
	english        string
	nonEng         string
	romanized      string
	litTranslation string
}

func loadVersions(ctx context.Context, q querier, where string, args ...any) (map[string][]versionRow, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT entry_id, english, non_eng, romanized, lit_translation FROM versions `+where+` ORDER BY entry_id, position`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("load versions: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]versionRow)
	for rows.Next() {
		var (
			entryID        string
			v              versionRow
			romanized      sql.NullString
			litTranslation sql.NullString
		)
		if err := rows.Scan(&entryID, &v.english, &v.nonEng, &romanized, &litTranslation); err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		v.romanized = romanized.String
		v.litTranslation = litTranslation.String
		out[entryID] = append(out[entryID], v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate versions: %w", err)
	}
	return out, nil
}

func attachVersions(entry *Entry, versions []versionRow) {
	for _, v := range versions {
		entry.Name.Versions = append(entry.Name.Versions, name.New(v.english, v.nonEng,
			name.WithRomanized(v.romanized),
			name.WithLitTranslation(v.litTranslation),
		))
	}
}
